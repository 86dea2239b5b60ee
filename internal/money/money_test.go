package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{name: "integer amount", input: "100", want: "100.00"},
		{name: "one fractional digit", input: "42.5", want: "42.50"},
		{name: "two fractional digits", input: "19.99", want: "19.99"},
		{name: "zero", input: "0", want: "0.00"},
		{name: "maximum amount", input: "9999999999999.99", want: "9999999999999.99"},
		{name: "negative", input: "-5", wantErr: ErrInvalidAmount},
		{name: "negative fraction", input: "-0.01", wantErr: ErrInvalidAmount},
		{name: "three fractional digits", input: "1.234", wantErr: ErrInvalidAmount},
		{name: "not a number", input: "abc", wantErr: ErrInvalidAmount},
		{name: "empty", input: "", wantErr: ErrInvalidAmount},
		{name: "infinity", input: "Inf", wantErr: ErrInvalidAmount},
		{name: "past the maximum", input: "10000000000000.00", wantErr: ErrOverflow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestFromMinorUnits(t *testing.T) {
	m, err := FromMinorUnits(12345)
	require.NoError(t, err)
	assert.Equal(t, "123.45", m.String())
	assert.Equal(t, int64(12345), m.MinorUnits())

	_, err = FromMinorUnits(-1)
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestAdd_ExactArithmetic(t *testing.T) {
	// 0.1 + 0.2 must be exactly 0.30, not a float approximation.
	a := MustParse("0.1")
	b := MustParse("0.2")

	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.Equal(t, "0.30", sum.String())
}

func TestAdd_Overflow(t *testing.T) {
	max := MustParse("9999999999999.99")
	cent := MustParse("0.01")

	_, err := max.Add(cent)
	assert.ErrorIs(t, err, ErrOverflow)
}

func TestSub(t *testing.T) {
	a := MustParse("50.00")
	b := MustParse("20.50")

	diff, err := a.Sub(b)
	require.NoError(t, err)
	assert.Equal(t, "29.50", diff.String())

	_, err = b.Sub(a)
	assert.ErrorIs(t, err, ErrNegativeResult)
}

func TestComparisons(t *testing.T) {
	small := MustParse("1.00")
	big := MustParse("2.00")

	assert.True(t, small.LessThan(big))
	assert.False(t, big.LessThan(small))
	assert.Equal(t, -1, small.Cmp(big))
	assert.Equal(t, 0, small.Cmp(MustParse("1")))
	assert.True(t, small.Equal(MustParse("1.0")))
	assert.True(t, Zero.IsZero())
	assert.False(t, Zero.IsPositive())
	assert.True(t, small.IsPositive())
}
