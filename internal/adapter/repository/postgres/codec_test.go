package postgres

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodec_RoundTripExactForBinaryFractions(t *testing.T) {
	// Values with exact binary representations survive the double precision
	// column unchanged.
	values := []string{"0", "1", "10", "-3", "0.5", "0.25", "0.125", "2.75", "-42.5", "1024"}

	for _, raw := range values {
		t.Run(raw, func(t *testing.T) {
			d := decimal.RequireFromString(raw)

			back, err := fromStorage(toStorage(d))
			require.NoError(t, err)
			assert.True(t, back.Equal(d), "expected %s, got %s", d, back)
		})
	}
}

func TestCodec_RoundTripLossyForDecimalFractions(t *testing.T) {
	// 0.1 has no exact binary representation, so the round trip must NOT be
	// exact; only a bounded error can be asserted.
	values := []string{"0.1", "0.3", "0.60", "123.456"}

	for _, raw := range values {
		t.Run(raw, func(t *testing.T) {
			d := decimal.RequireFromString(raw)

			back, err := fromStorage(toStorage(d))
			require.NoError(t, err)

			assert.False(t, back.Equal(d), "round trip of %s should not be exact", d)

			diff := back.Sub(d).Abs()
			assert.True(t, diff.LessThan(decimal.RequireFromString("0.000000000001")),
				"round trip error for %s too large: %s", d, diff)
		})
	}
}

func TestCodec_RejectsUnrepresentableValues(t *testing.T) {
	for name, f := range map[string]float64{
		"NaN":  math.NaN(),
		"+Inf": math.Inf(1),
		"-Inf": math.Inf(-1),
	} {
		t.Run(name, func(t *testing.T) {
			_, err := fromStorage(f)
			assert.ErrorIs(t, err, ErrUnrepresentable)
		})
	}
}

func TestCodec_ToStorageNearestDouble(t *testing.T) {
	assert.Equal(t, 0.5, toStorage(decimal.RequireFromString("0.5")))
	assert.Equal(t, 0.1, toStorage(decimal.RequireFromString("0.1")))
	assert.Equal(t, -7.0, toStorage(decimal.NewFromInt(-7)))
}
