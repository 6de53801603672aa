package services

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/cristiano1098/socializeAPP/models"
	"github.com/rs/zerolog"
)

// CreateExpenseService records an expense paid by one member and splits it
// evenly with the listed participants.
func CreateExpenseService(svc *Service, w http.ResponseWriter, r *http.Request) {

	logger := zerolog.Ctx(r.Context())

	groupID, err := pathID(r, "group-id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_id", err.Error())
		return
	}

	var payload models.CreateExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		logger.Warn().Err(err).Msg("Invalid request payload")
		writeError(w, http.StatusBadRequest, "invalid_payload", err.Error())
		return
	}

	description := strings.TrimSpace(payload.Description)
	switch {
	case description == "":
		writeError(w, http.StatusBadRequest, "invalid_payload", "description is required")
		return
	case payload.Amount <= 0:
		writeError(w, http.StatusBadRequest, "invalid_payload", "amount must be positive")
		return
	case payload.PaidByUserID <= 0:
		writeError(w, http.StatusBadRequest, "invalid_payload", "paidByUserId is required")
		return
	}

	expense := models.Expense{
		GroupID:       groupID,
		Description:   description,
		Location:      strings.TrimSpace(payload.Location),
		Amount:        payload.Amount,
		DateOfExpense: payload.DateOfExpense,
		ReceiptPhoto:  payload.ReceiptPhoto,
		PaidByUserID:  payload.PaidByUserID,
	}

	detail, err := svc.DB.CreateExpense(r.Context(), expense, uniqueIDs(payload.Participants))
	if err != nil {
		writeStoreError(w, logger, err, "Failed to create expense")
		return
	}

	logger.Info().Int64("group_id", groupID).Int64("expense_id", detail.Expense.ExpenseID).
		Msg("Expense created successfully")

	location := fmt.Sprintf("%s/%d", r.URL.Path, detail.Expense.ExpenseID)
	WriteResponse(w, http.StatusCreated, *detail, location)
}

// GetExpensesService lists the expenses of a group by date or title.
func GetExpensesService(svc *Service, w http.ResponseWriter, r *http.Request) {

	logger := zerolog.Ctx(r.Context())

	groupID, err := pathID(r, "group-id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_id", err.Error())
		return
	}

	order, err := models.ParseExpenseOrder(r.URL.Query().Get("sort"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_sort", err.Error())
		return
	}

	if _, err := svc.DB.GetGroup(r.Context(), groupID); err != nil {
		writeStoreError(w, logger, err, "Failed to get group")
		return
	}

	expenses, err := svc.DB.ListGroupExpenses(r.Context(), groupID, order)
	if err != nil {
		writeStoreError(w, logger, err, "Failed to list expenses")
		return
	}

	WriteResponse(w, http.StatusOK, models.ExpensesResponse{Expenses: expenses})
}

// GetExpenseService retrieves an expense with its shares.
func GetExpenseService(svc *Service, w http.ResponseWriter, r *http.Request) {

	logger := zerolog.Ctx(r.Context())

	expense, ok := groupExpense(svc, w, r, logger)
	if !ok {
		return
	}

	participants, err := svc.DB.ExpenseParticipants(r.Context(), expense.ExpenseID)
	if err != nil {
		writeStoreError(w, logger, err, "Failed to list expense participants")
		return
	}

	WriteResponse(w, http.StatusOK, models.ExpenseDetail{Expense: *expense, Participants: participants})
}

// DeleteExpenseService removes an expense and its shares.
func DeleteExpenseService(svc *Service, w http.ResponseWriter, r *http.Request) {

	logger := zerolog.Ctx(r.Context())

	expense, ok := groupExpense(svc, w, r, logger)
	if !ok {
		return
	}

	if err := svc.DB.DeleteExpense(r.Context(), expense.ExpenseID); err != nil {
		writeStoreError(w, logger, err, "Failed to delete expense")
		return
	}

	logger.Info().Int64("expense_id", expense.ExpenseID).Msg("Expense deleted successfully")
	WriteResponse(w, http.StatusNoContent, nil)
}

// SettleExpenseService records a participant paying back part or all of
// their share to the user who paid the expense.
func SettleExpenseService(svc *Service, w http.ResponseWriter, r *http.Request) {

	logger := zerolog.Ctx(r.Context())

	expense, ok := groupExpense(svc, w, r, logger)
	if !ok {
		return
	}

	var payload models.SettleRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		logger.Warn().Err(err).Msg("Invalid request payload")
		writeError(w, http.StatusBadRequest, "invalid_payload", err.Error())
		return
	}
	if payload.PayerUserID <= 0 || payload.Amount <= 0 {
		writeError(w, http.StatusBadRequest, "invalid_payload", "payerUserId and a positive amount are required")
		return
	}

	payment, err := svc.DB.SettleExpense(r.Context(), expense.ExpenseID, payload.PayerUserID, payload.Amount)
	if err != nil {
		writeStoreError(w, logger, err, "Failed to settle expense")
		return
	}

	logger.Info().Int64("expense_id", expense.ExpenseID).Int64("payment_id", payment.PaymentID).
		Float64("amount", payment.Amount).Msg("Payment recorded")

	WriteResponse(w, http.StatusCreated, *payment)
}

// GetUserBalanceService reports what a user owes and is owed, optionally
// within one group.
func GetUserBalanceService(svc *Service, w http.ResponseWriter, r *http.Request) {

	logger := zerolog.Ctx(r.Context())

	userID, groupID, ok := userGroupScope(w, r)
	if !ok {
		return
	}

	if _, err := svc.DB.GetUser(r.Context(), userID); err != nil {
		writeStoreError(w, logger, err, "Failed to get user")
		return
	}

	balance, err := svc.DB.UserBalance(r.Context(), userID, groupID)
	if err != nil {
		writeStoreError(w, logger, err, "Failed to compute balance")
		return
	}

	WriteResponse(w, http.StatusOK, *balance)
}

// GetUserDebtsService lists the shares a user still owes, optionally within
// one group.
func GetUserDebtsService(svc *Service, w http.ResponseWriter, r *http.Request) {

	logger := zerolog.Ctx(r.Context())

	userID, groupID, ok := userGroupScope(w, r)
	if !ok {
		return
	}

	if _, err := svc.DB.GetUser(r.Context(), userID); err != nil {
		writeStoreError(w, logger, err, "Failed to get user")
		return
	}

	debts, err := svc.DB.DebtsForUser(r.Context(), userID, groupID)
	if err != nil {
		writeStoreError(w, logger, err, "Failed to list debts")
		return
	}

	WriteResponse(w, http.StatusOK, models.DebtsResponse{Debts: debts})
}

// GetUserPaymentsService lists the payments a user made or received.
func GetUserPaymentsService(svc *Service, w http.ResponseWriter, r *http.Request) {

	logger := zerolog.Ctx(r.Context())

	userID, err := pathID(r, "user-id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_id", err.Error())
		return
	}

	if _, err := svc.DB.GetUser(r.Context(), userID); err != nil {
		writeStoreError(w, logger, err, "Failed to get user")
		return
	}

	payments, err := svc.DB.UserPayments(r.Context(), userID)
	if err != nil {
		writeStoreError(w, logger, err, "Failed to list payments")
		return
	}

	WriteResponse(w, http.StatusOK, models.PaymentsResponse{Payments: payments})
}

// groupExpense loads the expense named by the path and checks it belongs to
// the group in the path.
func groupExpense(svc *Service, w http.ResponseWriter, r *http.Request, logger *zerolog.Logger) (*models.Expense, bool) {
	groupID, err := pathID(r, "group-id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_id", err.Error())
		return nil, false
	}
	expenseID, err := pathID(r, "expense-id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_id", err.Error())
		return nil, false
	}

	expense, err := svc.DB.GetExpense(r.Context(), expenseID)
	if err != nil {
		writeStoreError(w, logger, err, "Failed to get expense")
		return nil, false
	}
	if expense.GroupID != groupID {
		writeError(w, http.StatusNotFound, "not_found",
			fmt.Sprintf("expense %d is not in group %d", expenseID, groupID))
		return nil, false
	}
	return expense, true
}

// userGroupScope reads the user from the path and an optional group filter
// from the query. A missing group means every group.
func userGroupScope(w http.ResponseWriter, r *http.Request) (int64, int64, bool) {
	userID, err := pathID(r, "user-id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_id", err.Error())
		return 0, 0, false
	}

	raw := r.URL.Query().Get("group")
	if raw == "" {
		return userID, 0, true
	}
	groupID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || groupID <= 0 {
		writeError(w, http.StatusBadRequest, "invalid_id", fmt.Sprintf("invalid group %q", raw))
		return 0, 0, false
	}
	return userID, groupID, true
}
