package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateCostBaseBand(t *testing.T) {
	base, final, err := CalculateCost("Retail Store / Showroom", 800, 1)
	require.NoError(t, err)
	assert.Equal(t, 5999, base)
	assert.Equal(t, 5999, final)
}

func TestCalculateCostFloorSurchargeTruncates(t *testing.T) {
	// 9999 * 1.1 = 10998.9, truncated toward zero
	base, final, err := CalculateCost("Retail Store / Showroom", 1200, 2)
	require.NoError(t, err)
	assert.Equal(t, 9999, base)
	assert.Equal(t, 10998, final)
}

func TestCalculateCostBandEdges(t *testing.T) {
	// band upper bounds are inclusive
	_, final, err := CalculateCost("Restaurants & Cafes", 1000, 1)
	require.NoError(t, err)
	assert.Equal(t, 7999, final)

	_, final, err = CalculateCost("Restaurants & Cafes", 1001, 1)
	require.NoError(t, err)
	assert.Equal(t, 11999, final)

	_, final, err = CalculateCost("Restaurants & Cafes", 50000, 1)
	require.NoError(t, err)
	assert.Equal(t, 25999, final)
}

func TestCalculateCostCustomQuote(t *testing.T) {
	_, _, err := CalculateCost("Retail Store / Showroom", 60000, 1)
	assert.ErrorIs(t, err, ErrCustomQuote)
}

func TestCalculateCostInvalidCategory(t *testing.T) {
	_, _, err := CalculateCost("Underwater Basket Weaving", 500, 1)
	assert.ErrorIs(t, err, ErrInvalidCategory)
}

func TestCalculateCostMissingFloorsDefaultsToOne(t *testing.T) {
	_, withZero, err := CalculateCost("Gaming & Entertainment Zones", 8000, 0)
	require.NoError(t, err)
	_, withOne, err := CalculateCost("Gaming & Entertainment Zones", 8000, 1)
	require.NoError(t, err)
	assert.Equal(t, withOne, withZero)
}

func TestCalculateCostAllCategoriesPriced(t *testing.T) {
	for category := range costTable {
		base, final, err := CalculateCost(category, 500, 1)
		require.NoError(t, err, category)
		assert.Positive(t, base, category)
		assert.Equal(t, base, final, category)
	}
}
