package db

import (
	"context"
	"fmt"
	"math"

	"github.com/cristiano1098/socializeAPP/models"
	"github.com/jmoiron/sqlx"
)

const expenseColumns = `e.expense_id, e.group_id, e.description, e.location, e.amount,
	e.date_of_expense, e.receipt_photo, e.paid_by_user_id`

const participantColumns = `expense_id, user_id, group_id, owed_amount`

// expenseOrderBy returns the ORDER BY expression for expenses aliased as e.
func expenseOrderBy(order models.ExpenseOrder) string {
	if order == models.ExpenseOrderTitle {
		return `e.description, e.expense_id`
	}
	return `e.date_of_expense, e.expense_id`
}

// splitExpense divides amount evenly, in cents, between the payer and every
// other participant. Each other participant owes one share; the payer keeps
// any remainder and carries the negated total of the other shares, so the
// owed amounts of one expense always sum to zero.
func splitExpense(expense models.Expense, participantIDs []int64) []models.ExpenseParticipant {
	seen := map[int64]struct{}{expense.PaidByUserID: {}}
	others := make([]int64, 0, len(participantIDs))
	for _, id := range participantIDs {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		others = append(others, id)
	}

	cents := int64(math.Round(expense.Amount * 100))
	share := cents / int64(len(others)+1)

	shares := make([]models.ExpenseParticipant, 0, len(others)+1)
	shares = append(shares, models.ExpenseParticipant{
		ExpenseID:  expense.ExpenseID,
		UserID:     expense.PaidByUserID,
		GroupID:    expense.GroupID,
		OwedAmount: float64(-share*int64(len(others))) / 100,
	})
	for _, id := range others {
		shares = append(shares, models.ExpenseParticipant{
			ExpenseID:  expense.ExpenseID,
			UserID:     id,
			GroupID:    expense.GroupID,
			OwedAmount: float64(share) / 100,
		})
	}
	return shares
}

// CreateExpense inserts an expense and its split in one transaction. The
// payer and every participant must be members of the expense's group,
// otherwise nothing is written and ErrNotFound is returned. A zero
// DateOfExpense means now.
func (s *SocializeDB) CreateExpense(ctx context.Context, expense models.Expense, participantIDs []int64) (*models.ExpenseDetail, error) {
	if expense.Amount <= 0 {
		return nil, fmt.Errorf("expense amount must be positive: %w", ErrInvalidArgument)
	}

	var date interface{}
	if !expense.DateOfExpense.IsZero() {
		date = expense.DateOfExpense
	}

	var detail models.ExpenseDetail
	err := s.withTx(ctx, nil, func(tx *sqlx.Tx) error {
		err := tx.QueryRowxContext(ctx, `
			INSERT INTO expenses AS e (group_id, description, location, amount, date_of_expense, receipt_photo, paid_by_user_id)
			VALUES ($1, $2, $3, $4, COALESCE($5::timestamptz, NOW()), $6, $7)
			RETURNING `+expenseColumns,
			expense.GroupID, expense.Description, expense.Location, expense.Amount,
			date, expense.ReceiptPhoto, expense.PaidByUserID).StructScan(&detail.Expense)
		if err != nil {
			return fmt.Errorf("error inserting expense in group %d: %w", expense.GroupID, matchSentinelError(err))
		}

		detail.Participants = splitExpense(detail.Expense, participantIDs)
		for _, p := range detail.Participants {
			_, err := tx.ExecContext(ctx, `
				INSERT INTO expense_participants (`+participantColumns+`) VALUES ($1, $2, $3, $4)`,
				p.ExpenseID, p.UserID, p.GroupID, p.OwedAmount)
			if err != nil {
				return fmt.Errorf("error adding user %d to expense %d: %w", p.UserID, p.ExpenseID, matchSentinelError(err))
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.Log.Debug().Int64("expense_id", detail.Expense.ExpenseID).
		Int("participants", len(detail.Participants)).Msg("Expense created")
	return &detail, nil
}

// GetExpense retrieves a single expense by ID.
func (s *SocializeDB) GetExpense(ctx context.Context, expenseID int64) (*models.Expense, error) {
	var expense models.Expense
	query := `SELECT ` + expenseColumns + ` FROM expenses e WHERE e.expense_id = $1`
	if err := s.DB.GetContext(ctx, &expense, query, expenseID); err != nil {
		return nil, fmt.Errorf("error retrieving expense %d: %w", expenseID, matchSentinelError(err))
	}
	return &expense, nil
}

// ListGroupExpenses retrieves the expenses of a group in the requested order.
func (s *SocializeDB) ListGroupExpenses(ctx context.Context, groupID int64, order models.ExpenseOrder) ([]models.Expense, error) {
	expenses := []models.Expense{}
	query := `SELECT ` + expenseColumns + ` FROM expenses e WHERE e.group_id = $1 ORDER BY ` + expenseOrderBy(order)
	if err := s.DB.SelectContext(ctx, &expenses, query, groupID); err != nil {
		return nil, fmt.Errorf("error retrieving expenses of group %d: %w", groupID, err)
	}
	return expenses, nil
}

// ExpenseParticipants retrieves the shares of an expense.
func (s *SocializeDB) ExpenseParticipants(ctx context.Context, expenseID int64) ([]models.ExpenseParticipant, error) {
	participants := []models.ExpenseParticipant{}
	query := `SELECT ` + participantColumns + ` FROM expense_participants WHERE expense_id = $1 ORDER BY owed_amount, user_id`
	if err := s.DB.SelectContext(ctx, &participants, query, expenseID); err != nil {
		return nil, fmt.Errorf("error retrieving participants of expense %d: %w", expenseID, err)
	}
	return participants, nil
}

// DeleteExpense deletes an expense and its shares. Payments made against it
// are kept and lose their expense reference.
func (s *SocializeDB) DeleteExpense(ctx context.Context, expenseID int64) error {
	res, err := s.DB.ExecContext(ctx, `DELETE FROM expenses WHERE expense_id = $1`, expenseID)
	if err := mustHaveAffectedRows(res, err); err != nil {
		return fmt.Errorf("error deleting expense %d: %w", expenseID, matchSentinelError(err))
	}
	return nil
}

// UserBalance sums the shares a user owes and is owed. A zero groupID
// covers every group.
func (s *SocializeDB) UserBalance(ctx context.Context, userID, groupID int64) (*models.Balance, error) {
	balance := models.Balance{UserID: userID, GroupID: groupID}
	query := `
		SELECT
			COALESCE(SUM(owed_amount) FILTER (WHERE owed_amount > 0), 0) AS owes,
			COALESCE(-SUM(owed_amount) FILTER (WHERE owed_amount < 0), 0) AS owed_to
		FROM expense_participants
		WHERE user_id = $1 AND ($2::bigint = 0 OR group_id = $2)`
	if err := s.DB.GetContext(ctx, &balance, query, userID, groupID); err != nil {
		return nil, fmt.Errorf("error computing balance of user %d: %w", userID, err)
	}
	balance.Net = math.Round((balance.OwedTo-balance.Owes)*100) / 100
	return &balance, nil
}

// DebtsForUser retrieves the shares a user still owes. A zero groupID
// covers every group.
func (s *SocializeDB) DebtsForUser(ctx context.Context, userID, groupID int64) ([]models.ExpenseParticipant, error) {
	debts := []models.ExpenseParticipant{}
	query := `
		SELECT ` + participantColumns + `
		FROM expense_participants
		WHERE user_id = $1 AND ($2::bigint = 0 OR group_id = $2) AND owed_amount > 0
		ORDER BY group_id, expense_id`
	if err := s.DB.SelectContext(ctx, &debts, query, userID, groupID); err != nil {
		return nil, fmt.Errorf("error retrieving debts of user %d: %w", userID, err)
	}
	return debts, nil
}

// SettleExpense records that payerUserID paid amount back to whoever paid the
// expense. The payer's share shrinks and the payee's credit shrinks by the
// same amount. Paying more than is owed, or paying one's own expense, is
// ErrInvalidArgument.
func (s *SocializeDB) SettleExpense(ctx context.Context, expenseID, payerUserID int64, amount float64) (*models.Payment, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("payment amount must be positive: %w", ErrInvalidArgument)
	}

	var payment models.Payment
	err := s.withTx(ctx, nil, func(tx *sqlx.Tx) error {
		var expense models.Expense
		err := tx.GetContext(ctx, &expense,
			`SELECT `+expenseColumns+` FROM expenses e WHERE e.expense_id = $1 FOR UPDATE`, expenseID)
		if err != nil {
			return fmt.Errorf("error retrieving expense %d: %w", expenseID, matchSentinelError(err))
		}
		if expense.PaidByUserID == payerUserID {
			return fmt.Errorf("user %d paid expense %d: %w", payerUserID, expenseID, ErrInvalidArgument)
		}

		var owed float64
		err = tx.GetContext(ctx, &owed, `
			SELECT owed_amount FROM expense_participants
			WHERE expense_id = $1 AND user_id = $2 FOR UPDATE`, expenseID, payerUserID)
		if err != nil {
			return fmt.Errorf("error retrieving share of user %d: %w", payerUserID, matchSentinelError(err))
		}
		if math.Round(amount*100) > math.Round(owed*100) {
			return fmt.Errorf("user %d owes %.2f on expense %d: %w", payerUserID, owed, expenseID, ErrInvalidArgument)
		}

		_, err = tx.ExecContext(ctx, `
			UPDATE expense_participants SET owed_amount = owed_amount - $3
			WHERE expense_id = $1 AND user_id = $2`, expenseID, payerUserID, amount)
		if err != nil {
			return fmt.Errorf("error reducing share of user %d: %w", payerUserID, err)
		}

		_, err = tx.ExecContext(ctx, `
			UPDATE expense_participants SET owed_amount = owed_amount + $3
			WHERE expense_id = $1 AND user_id = $2`, expenseID, expense.PaidByUserID, amount)
		if err != nil {
			return fmt.Errorf("error reducing credit of user %d: %w", expense.PaidByUserID, err)
		}

		err = tx.QueryRowxContext(ctx, `
			INSERT INTO payments (expense_id, group_id, payer_user_id, payee_user_id, amount)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING payment_id, expense_id, group_id, payer_user_id, payee_user_id, amount, date_paid`,
			expenseID, expense.GroupID, payerUserID, expense.PaidByUserID, amount).StructScan(&payment)
		if err != nil {
			return fmt.Errorf("error recording payment: %w", matchSentinelError(err))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.Log.Debug().Int64("payment_id", payment.PaymentID).Int64("expense_id", expenseID).Msg("Payment recorded")
	return &payment, nil
}

// UserPayments retrieves every payment a user made or received.
func (s *SocializeDB) UserPayments(ctx context.Context, userID int64) ([]models.Payment, error) {
	payments := []models.Payment{}
	query := `
		SELECT payment_id, expense_id, group_id, payer_user_id, payee_user_id, amount, date_paid
		FROM payments
		WHERE payer_user_id = $1 OR payee_user_id = $1
		ORDER BY date_paid, payment_id`
	if err := s.DB.SelectContext(ctx, &payments, query, userID); err != nil {
		return nil, fmt.Errorf("error retrieving payments of user %d: %w", userID, err)
	}
	return payments, nil
}
