package transform

import "chartviz/internal/model"

func transformKPICards(t model.Table) (*model.KPICardsResult, error) {
	// An empty table yields an empty card list, not a failure.
	if t.NumRows() == 0 {
		return &model.KPICardsResult{ChartType: model.ChartKPICards, Data: []model.KPICard{}}, nil
	}
	if t.NumRows() > 1 {
		return nil, &Error{
			Message:   "KPI cards expect a single-row table",
			ChartType: model.ChartKPICards,
			Shape:     shapeOf(t),
		}
	}

	cards := make([]model.KPICard, 0, t.NumCols())
	for _, name := range t.ColumnNames() {
		v, err := t.Cell(0, name)
		if err != nil {
			return nil, failure(model.ChartKPICards, t, err)
		}
		cards = append(cards, model.KPICard{
			Key:   name,
			Label: FormatLabel(name),
			Value: Normalize(v),
		})
	}
	return &model.KPICardsResult{ChartType: model.ChartKPICards, Data: cards}, nil
}
