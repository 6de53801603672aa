package db

import (
	"testing"

	"github.com/cristiano1098/socializeAPP/models"
	"github.com/stretchr/testify/assert"
)

func owedByUser(shares []models.ExpenseParticipant) map[int64]float64 {
	out := make(map[int64]float64, len(shares))
	for _, s := range shares {
		out[s.UserID] = s.OwedAmount
	}
	return out
}

func TestSplitExpense(t *testing.T) {
	tests := []struct {
		name         string
		amount       float64
		participants []int64
		want         map[int64]float64
	}{
		{
			name:         "even split",
			amount:       30,
			participants: []int64{2, 3},
			want:         map[int64]float64{1: -20, 2: 10, 3: 10},
		},
		{
			name:         "payer keeps the odd cent",
			amount:       10,
			participants: []int64{2, 3},
			want:         map[int64]float64{1: -6.66, 2: 3.33, 3: 3.33},
		},
		{
			name:         "payer listed and repeated ids",
			amount:       12,
			participants: []int64{1, 2, 2},
			want:         map[int64]float64{1: -6, 2: 6},
		},
		{
			name:   "payer alone",
			amount: 5,
			want:   map[int64]float64{1: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expense := models.Expense{ExpenseID: 9, GroupID: 4, Amount: tt.amount, PaidByUserID: 1}

			shares := splitExpense(expense, tt.participants)

			assert.Equal(t, tt.want, owedByUser(shares))
			assert.Equal(t, int64(1), shares[0].UserID, "payer share comes first")

			var total float64
			for _, s := range shares {
				assert.Equal(t, int64(9), s.ExpenseID)
				assert.Equal(t, int64(4), s.GroupID)
				total += s.OwedAmount
			}
			assert.InDelta(t, 0, total, 0.001)
		})
	}
}

func TestExpenseOrderBy(t *testing.T) {
	assert.Equal(t, "e.description, e.expense_id", expenseOrderBy(models.ExpenseOrderTitle))
	assert.Equal(t, "e.date_of_expense, e.expense_id", expenseOrderBy(models.ExpenseOrderDate))
	assert.Equal(t, "e.date_of_expense, e.expense_id", expenseOrderBy(""))
}
