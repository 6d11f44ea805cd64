package models

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmountSeries_UnmarshalPreservesKeyOrder(t *testing.T) {
	var series AmountSeries

	err := json.Unmarshal([]byte(`{"RENT": 15000, "FOOD": 4200.5, "BILLS": 0, "TRAVEL": 1e3}`), &series)

	require.NoError(t, err)
	require.Len(t, series, 4)
	labels := make([]string, 0, len(series))
	for _, p := range series {
		labels = append(labels, p.Label)
	}
	assert.Equal(t, []string{"RENT", "FOOD", "BILLS", "TRAVEL"}, labels)
	assert.True(t, decimal.RequireFromString("4200.5").Equal(series[1].Value))
	assert.True(t, decimal.NewFromInt(1000).Equal(series[3].Value))
}

func TestAmountSeries_UnmarshalNullAndEmpty(t *testing.T) {
	var series AmountSeries
	require.NoError(t, json.Unmarshal([]byte(`null`), &series))
	assert.Nil(t, series)

	require.NoError(t, json.Unmarshal([]byte(`{}`), &series))
	assert.NotNil(t, series)
	assert.Empty(t, series)
}

func TestAmountSeries_UnmarshalRejectsNonObject(t *testing.T) {
	var series AmountSeries

	assert.Error(t, json.Unmarshal([]byte(`[1,2]`), &series))
	assert.Error(t, json.Unmarshal([]byte(`{"CASH": "lots"}`), &series))
}

func TestAmountSeries_MarshalKeepsOrder(t *testing.T) {
	series := AmountSeries{
		{Label: "ONLINE", Value: decimal.NewFromInt(700)},
		{Label: "CASH", Value: decimal.RequireFromString("12.25")},
	}

	data, err := json.Marshal(series)

	require.NoError(t, err)
	assert.Equal(t, `{"ONLINE":700,"CASH":12.25}`, string(data))
}

func TestAmountSeries_Get(t *testing.T) {
	series := AmountSeries{{Label: "CASH", Value: decimal.NewFromInt(5)}}

	v, ok := series.Get("CASH")
	assert.True(t, ok)
	assert.True(t, decimal.NewFromInt(5).Equal(v))

	_, ok = series.Get("ONLINE")
	assert.False(t, ok)
}

func TestDailyPoint_AcceptsNumericAndStringDays(t *testing.T) {
	var points []DailyPoint

	err := json.Unmarshal([]byte(`[{"day": 3, "amount": 120}, {"day": "2026-02-04", "amount": 80.5}]`), &points)

	require.NoError(t, err)
	require.Len(t, points, 2)
	assert.Equal(t, Label("3"), points[0].Day)
	assert.Equal(t, Label("2026-02-04"), points[1].Day)
	assert.True(t, decimal.RequireFromString("80.5").Equal(points[1].Amount))
}
