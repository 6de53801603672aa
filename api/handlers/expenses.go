package handlers

import (
	"net/http"

	services "github.com/cristiano1098/socializeAPP/api/services"
)

// @Summary Add an expense to a group
// @Tags expenses
// @Accept json
// @Produce json
// @Param group-id path int true "Group ID"
// @Param expense body models.CreateExpenseRequest true "Expense to split"
// @Success 201 {object} models.ExpenseDetail
// @Failure 400 {object} models.Response
// @Failure 404 {object} models.Response
// @Failure 500 {object} models.Response
// @Router /groups/{group-id}/expenses [post]
func CreateExpense(svc *services.Service) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		services.CreateExpenseService(svc, w, r)
	}
}

// @Summary List the expenses of a group
// @Tags expenses
// @Produce json
// @Param group-id path int true "Group ID"
// @Param sort query string false "Expense order" Enums(date, title)
// @Success 200 {object} models.ExpensesResponse
// @Failure 400 {object} models.Response
// @Failure 404 {object} models.Response
// @Failure 500 {object} models.Response
// @Router /groups/{group-id}/expenses [get]
func GetExpenses(svc *services.Service) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		services.GetExpensesService(svc, w, r)
	}
}

// @Summary Get an expense with its shares
// @Tags expenses
// @Produce json
// @Param group-id path int true "Group ID"
// @Param expense-id path int true "Expense ID"
// @Success 200 {object} models.ExpenseDetail
// @Failure 400 {object} models.Response
// @Failure 404 {object} models.Response
// @Failure 500 {object} models.Response
// @Router /groups/{group-id}/expenses/{expense-id} [get]
func GetExpense(svc *services.Service) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		services.GetExpenseService(svc, w, r)
	}
}

// @Summary Delete an expense
// @Tags expenses
// @Produce json
// @Param group-id path int true "Group ID"
// @Param expense-id path int true "Expense ID"
// @Success 204
// @Failure 400 {object} models.Response
// @Failure 404 {object} models.Response
// @Failure 500 {object} models.Response
// @Router /groups/{group-id}/expenses/{expense-id} [delete]
func DeleteExpense(svc *services.Service) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		services.DeleteExpenseService(svc, w, r)
	}
}

// @Summary Pay back part of an expense share
// @Tags expenses payments
// @Accept json
// @Produce json
// @Param group-id path int true "Group ID"
// @Param expense-id path int true "Expense ID"
// @Param payment body models.SettleRequest true "Payment"
// @Success 201 {object} models.Payment
// @Failure 400 {object} models.Response
// @Failure 404 {object} models.Response
// @Failure 500 {object} models.Response
// @Router /groups/{group-id}/expenses/{expense-id}/payments [post]
func SettleExpense(svc *services.Service) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		services.SettleExpenseService(svc, w, r)
	}
}
