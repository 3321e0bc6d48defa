package domain_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srgjo27/catering_booking/internal/core/domain"
)

func TestParseDate(t *testing.T) {
	d, err := domain.ParseDate("2026-05-02")
	require.NoError(t, err)
	assert.Equal(t, domain.Date{Year: 2026, Month: time.May, Day: 2}, d)
	assert.Equal(t, time.Saturday, d.Weekday())
	assert.Equal(t, "2026-05", d.MonthKey())

	_, err = domain.ParseDate("02/05/2026")
	assert.Error(t, err)
}

func TestDate_JSON(t *testing.T) {
	var v struct {
		D domain.Date `json:"d"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"d":"2026-12-31"}`), &v))
	assert.Equal(t, "2026-12-31", v.D.String())

	out, err := json.Marshal(v)
	require.NoError(t, err)
	assert.JSONEq(t, `{"d":"2026-12-31"}`, string(out))
}

func TestDate_Scan(t *testing.T) {
	var d domain.Date
	require.NoError(t, d.Scan(time.Date(2026, 5, 2, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2026-05-02", d.String())

	require.NoError(t, d.Scan([]byte("2026-06-01")))
	assert.Equal(t, "2026-06-01", d.String())

	assert.Error(t, d.Scan(42))
}

func TestMonthRange(t *testing.T) {
	first, last, err := domain.MonthRange("2028-02")
	require.NoError(t, err)
	assert.Equal(t, "2028-02-01", first.String())
	assert.Equal(t, "2028-02-29", last.String())

	_, _, err = domain.MonthRange("2028-13")
	assert.Error(t, err)
}
