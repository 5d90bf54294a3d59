package quotes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrentPriceKnownSymbol(t *testing.T) {
	src := NewMockSource(nil)

	for i := 0; i < 100; i++ {
		price := src.CurrentPrice("TCS")
		assert.GreaterOrEqual(t, price, 4125.80*0.98)
		assert.LessOrEqual(t, price, 4125.80*1.02)
	}
}

func TestCurrentPriceCaseInsensitive(t *testing.T) {
	src := NewMockSource(nil)

	price := src.CurrentPrice("reliance")
	assert.GreaterOrEqual(t, price, 2875.50*0.98)
	assert.LessOrEqual(t, price, 2875.50*1.02)
}

func TestCurrentPriceUnknownSymbol(t *testing.T) {
	src := NewMockSource(nil)

	for i := 0; i < 100; i++ {
		price := src.CurrentPrice("NOSUCH")
		assert.GreaterOrEqual(t, price, 100.0)
		assert.Less(t, price, 5000.0)
	}
}

func TestSuggestionsOrderAndContent(t *testing.T) {
	src := NewMockSource(nil)

	got := src.Suggestions()
	require.Len(t, got, 20)
	assert.Equal(t, "RELIANCE", got[0].Symbol)
	assert.Equal(t, "TCS", got[1].Symbol)
	assert.Equal(t, "SUNPHARMA", got[19].Symbol)
	assert.Equal(t, 4125.80, got[1].Price)
	assert.Equal(t, "Tata Consultancy Services Ltd", got[1].Name)
}
