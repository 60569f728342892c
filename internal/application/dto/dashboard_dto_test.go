package dto

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Los montos se serializan como números JSON, no como strings: el cliente los
// opera directamente sin parsear.
func TestSalesSummaryDTO_MontosComoNumerosJSON(t *testing.T) {
	s := SalesSummaryDTO{
		TotalNetSales: decimal.NewFromInt(1200),
		AverageCheck:  decimal.NewFromFloat(20.5),
		TotalChecks:   60,
	}

	raw, err := json.Marshal(s)
	require.NoError(t, err)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &body))

	_, isNumber := body["total_net_sales"].(float64)
	assert.True(t, isNumber, "total_net_sales debe ser número JSON, no string")
	assert.Equal(t, float64(1200), body["total_net_sales"])
	assert.Equal(t, float64(20.5), body["average_check"])
}

func TestKPIsDTO_MontosComoNumerosJSON(t *testing.T) {
	k := KPIsDTO{
		TotalSales: decimal.NewFromInt(800),
		AvgCheck:   decimal.NewFromFloat(21.33),
	}

	raw, err := json.Marshal(k)
	require.NoError(t, err)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &body))

	assert.Equal(t, float64(800), body["total_sales"])
	assert.Equal(t, float64(21.33), body["avg_check"])
}
