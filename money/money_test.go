package money

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name     string
		amount   int64
		currency string
		wantErr  error
	}{
		{name: "valid GBP", amount: 1050, currency: "GBP"},
		{name: "negative amount allowed", amount: -200, currency: "USD"},
		{name: "empty currency", amount: 100, currency: "", wantErr: ErrInvalidCurrency},
		{name: "too short", amount: 100, currency: "GB", wantErr: ErrInvalidCurrency},
		{name: "too long", amount: 100, currency: "GBPX", wantErr: ErrInvalidCurrency},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := New(tt.amount, tt.currency)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.amount, m.Amount())
			assert.Equal(t, tt.currency, m.Currency())
		})
	}
}

func TestAdd(t *testing.T) {
	a := MustNew(1000, "GBP")
	b := MustNew(250, "GBP")

	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.Equal(t, MustNew(1250, "GBP"), sum)

	_, err = a.Add(MustNew(250, "USD"))
	require.ErrorIs(t, err, ErrCurrencyMismatch)

	_, err = MustNew(math.MaxInt64, "GBP").Add(MustNew(1, "GBP"))
	require.ErrorIs(t, err, ErrInvalidOperation)
}

func TestSub(t *testing.T) {
	a := MustNew(1000, "GBP")

	diff, err := a.Sub(MustNew(1200, "GBP"))
	require.NoError(t, err)
	assert.Equal(t, int64(-200), diff.Amount(), "subtraction may go negative")

	_, err = a.Sub(MustNew(100, "EUR"))
	require.ErrorIs(t, err, ErrCurrencyMismatch)

	_, err = MustNew(math.MinInt64, "GBP").Sub(MustNew(1, "GBP"))
	require.ErrorIs(t, err, ErrInvalidOperation)
}

func TestMul(t *testing.T) {
	m := MustNew(1050, "GBP")

	product, err := m.Mul(3)
	require.NoError(t, err)
	assert.Equal(t, MustNew(3150, "GBP"), product)

	zero, err := m.Mul(0)
	require.NoError(t, err)
	assert.True(t, zero.IsZero())
	assert.Equal(t, "GBP", zero.Currency())

	_, err = MustNew(math.MaxInt64/2, "GBP").Mul(3)
	require.ErrorIs(t, err, ErrInvalidOperation)
}

func TestCompare(t *testing.T) {
	low := MustNew(100, "GBP")
	high := MustNew(200, "GBP")

	cmp, err := low.Compare(high)
	require.NoError(t, err)
	assert.Equal(t, -1, cmp)

	cmp, err = high.Compare(low)
	require.NoError(t, err)
	assert.Equal(t, 1, cmp)

	cmp, err = low.Compare(MustNew(100, "GBP"))
	require.NoError(t, err)
	assert.Equal(t, 0, cmp)

	_, err = low.Compare(MustNew(100, "USD"))
	require.ErrorIs(t, err, ErrCurrencyMismatch)
}

func TestMinMax(t *testing.T) {
	low := MustNew(100, "GBP")
	high := MustNew(200, "GBP")

	got, err := Min(high, low)
	require.NoError(t, err)
	assert.Equal(t, low, got)

	got, err = Max(low, high)
	require.NoError(t, err)
	assert.Equal(t, high, got)

	_, err = Min(low, MustNew(100, "USD"))
	require.ErrorIs(t, err, ErrCurrencyMismatch)
}

func TestFromDecimal(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int64
	}{
		{name: "exact", input: "200", want: 200},
		{name: "half rounds up", input: "0.5", want: 1},
		{name: "just below half rounds down", input: "160.4", want: 160},
		{name: "half at larger amount rounds up", input: "160.5", want: 161},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := FromDecimal(decimal.RequireFromString(tt.input), "GBP")
			require.NoError(t, err)
			assert.Equal(t, tt.want, m.Amount())
		})
	}

	_, err := FromDecimal(decimal.RequireFromString("99999999999999999999999999"), "GBP")
	require.ErrorIs(t, err, ErrInvalidOperation)
}

func TestEqual(t *testing.T) {
	assert.True(t, MustNew(100, "GBP").Equal(MustNew(100, "GBP")))
	assert.False(t, MustNew(100, "GBP").Equal(MustNew(100, "USD")))
	assert.False(t, MustNew(100, "GBP").Equal(MustNew(101, "GBP")))
}

func TestString(t *testing.T) {
	assert.Equal(t, "1050 GBP", MustNew(1050, "GBP").String())
}
