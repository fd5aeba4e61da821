package utils

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseValue(t *testing.T) {
	assert.Nil(t, ParseValue(""))
	assert.Nil(t, ParseValue("   "))
	assert.Equal(t, 42, ParseValue("42"))
	assert.Equal(t, 3.14, ParseValue("3.14"))
	assert.Equal(t, true, ParseValue("TRUE"))
	assert.Equal(t, false, ParseValue("false"))
	assert.Equal(t, "hello", ParseValue("hello"))

	ts, ok := ParseValue("2024-05-17T10:30:00Z").(time.Time)
	assert.True(t, ok)
	assert.Equal(t, 2024, ts.Year())

	d, ok := ParseValue("2024-05-17").(time.Time)
	assert.True(t, ok)
	assert.Equal(t, time.May, d.Month())
}

func TestQueryInt(t *testing.T) {
	req := httptest.NewRequest("GET", "/?page=3&bad=x", nil)
	assert.Equal(t, 3, QueryInt(req, "page", 1))
	assert.Equal(t, 1, QueryInt(req, "bad", 1))
	assert.Equal(t, 7, QueryInt(req, "missing", 7))
}

func TestQueryList(t *testing.T) {
	req := httptest.NewRequest("GET", "/?cols=a,%20b%20,,c&empty=", nil)
	assert.Equal(t, []string{"a", "b", "c"}, QueryList(req, "cols"))
	assert.Nil(t, QueryList(req, "empty"))
	assert.Nil(t, QueryList(req, "missing"))
}
