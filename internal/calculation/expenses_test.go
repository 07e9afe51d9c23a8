package calculation

import (
	"errors"
	"testing"

	"github.com/rpgo/finplan/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBreakdownExpenses(t *testing.T) {
	categories := []domain.ExpenseCategory{
		{Name: "Rent", Amount: d("1500")},
		{Name: "Food", Amount: d("600")},
		{Name: "Transport", Amount: d("300")},
		{Name: "Others", Amount: d("600")},
	}

	breakdown, err := BreakdownExpenses(categories)
	require.NoError(t, err)
	assert.True(t, breakdown.Total.Equal(d("3000")))
	require.Len(t, breakdown.Items, 4)

	assert.Equal(t, "Rent", breakdown.Items[0].Name)
	assert.True(t, breakdown.Items[0].Share.Equal(d("0.5")))
	assert.True(t, breakdown.Items[1].Share.Equal(d("0.2")))
	assert.True(t, breakdown.Items[2].Share.Equal(d("0.1")))
	assert.Equal(t, "Others", breakdown.Items[3].Name)
}

func TestBreakdownExpenses_ZeroTotal(t *testing.T) {
	breakdown, err := BreakdownExpenses([]domain.ExpenseCategory{{Name: "Rent", Amount: d("0")}})
	require.NoError(t, err)
	assert.True(t, breakdown.Items[0].Share.IsZero())

	empty, err := BreakdownExpenses(nil)
	require.NoError(t, err)
	assert.Empty(t, empty.Items)
	assert.True(t, empty.Total.IsZero())
}

func TestBreakdownExpenses_Invalid(t *testing.T) {
	tests := map[string][]domain.ExpenseCategory{
		"negative amount": {{Name: "Rent", Amount: d("-1")}},
		"empty name":      {{Name: "", Amount: d("10")}},
	}
	for name, categories := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := BreakdownExpenses(categories)
			assert.True(t, errors.Is(err, domain.ErrInvalidInput))
		})
	}
}
