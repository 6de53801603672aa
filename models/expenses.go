package models

import (
	"fmt"
	"strings"
	"time"
)

// Expense is a purchase paid by one member on behalf of a group.
type Expense struct {
	ExpenseID     int64     `json:"expenseId" db:"expense_id"`
	GroupID       int64     `json:"groupId" db:"group_id"`
	Description   string    `json:"description" db:"description"`
	Location      string    `json:"location" db:"location"`
	Amount        float64   `json:"amount" db:"amount"`
	DateOfExpense time.Time `json:"dateOfExpense" db:"date_of_expense"`
	ReceiptPhoto  string    `json:"receiptPhoto" db:"receipt_photo"`
	PaidByUserID  int64     `json:"paidByUserId" db:"paid_by_user_id"`
}

// ExpenseParticipant is one user's share of an expense. A positive
// OwedAmount is what the user still owes; the payer carries the negative sum
// of everyone else's shares.
type ExpenseParticipant struct {
	ExpenseID  int64   `json:"expenseId" db:"expense_id"`
	UserID     int64   `json:"userId" db:"user_id"`
	GroupID    int64   `json:"groupId" db:"group_id"`
	OwedAmount float64 `json:"owedAmount" db:"owed_amount"`
}

// Payment records money a participant paid back to the user who paid an expense.
type Payment struct {
	PaymentID   int64     `json:"paymentId" db:"payment_id"`
	ExpenseID   *int64    `json:"expenseId" db:"expense_id"`
	GroupID     int64     `json:"groupId" db:"group_id"`
	PayerUserID int64     `json:"payerUserId" db:"payer_user_id"`
	PayeeUserID int64     `json:"payeeUserId" db:"payee_user_id"`
	Amount      float64   `json:"amount" db:"amount"`
	DatePaid    time.Time `json:"datePaid" db:"date_paid"`
}

// Balance summarises what a user owes and is owed, across all groups or one.
type Balance struct {
	UserID  int64   `json:"userId"`
	GroupID int64   `json:"groupId,omitempty"`
	Owes    float64 `json:"owes" db:"owes"`
	OwedTo  float64 `json:"owedTo" db:"owed_to"`
	Net     float64 `json:"net"`
}

// ExpenseOrder selects how expense lists are sorted.
type ExpenseOrder string

const (
	ExpenseOrderDate  ExpenseOrder = "date"
	ExpenseOrderTitle ExpenseOrder = "title"
)

// ParseExpenseOrder parses a sort query value. An empty value means date order.
func ParseExpenseOrder(s string) (ExpenseOrder, error) {
	switch ExpenseOrder(strings.ToLower(strings.TrimSpace(s))) {
	case "", ExpenseOrderDate:
		return ExpenseOrderDate, nil
	case ExpenseOrderTitle:
		return ExpenseOrderTitle, nil
	}
	return "", fmt.Errorf("unknown expense order %q", s)
}

// CreateExpenseRequest is the payload for adding an expense to a group. The
// amount is split evenly between the payer and every participant.
type CreateExpenseRequest struct {
	Description   string    `json:"description"`
	Location      string    `json:"location"`
	Amount        float64   `json:"amount"`
	DateOfExpense time.Time `json:"dateOfExpense"`
	ReceiptPhoto  string    `json:"receiptPhoto"`
	PaidByUserID  int64     `json:"paidByUserId"`
	Participants  []int64   `json:"participants"`
}

// ExpenseDetail is an expense with its participant shares.
type ExpenseDetail struct {
	Expense      Expense              `json:"expense"`
	Participants []ExpenseParticipant `json:"participants"`
}

// ExpensesResponse holds a list of expenses.
type ExpensesResponse struct {
	Expenses []Expense `json:"expenses"`
}

// SettleRequest is the payload for paying back part of an expense.
type SettleRequest struct {
	PayerUserID int64   `json:"payerUserId"`
	Amount      float64 `json:"amount"`
}

// PaymentsResponse holds a list of payments.
type PaymentsResponse struct {
	Payments []Payment `json:"payments"`
}

// DebtsResponse holds the shares a user still owes.
type DebtsResponse struct {
	Debts []ExpenseParticipant `json:"debts"`
}
