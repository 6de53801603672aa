package handlers

import (
	services "github.com/cristiano1098/socializeAPP/api/services"
	"github.com/gorilla/mux"
)

// RegisterRoutes mounts the user, group and expense endpoints on api.
func RegisterRoutes(api *mux.Router, svc *services.Service) {

	// Users
	api.HandleFunc("/users", CreateUser(svc)).Methods("POST")
	api.HandleFunc("/users", GetUsers(svc)).Methods("GET")
	api.HandleFunc("/users/{user-id}", GetUser(svc)).Methods("GET")
	api.HandleFunc("/users/{user-id}", UpdateUser(svc)).Methods("PUT")
	api.HandleFunc("/users/{user-id}", DeleteUser(svc)).Methods("DELETE")
	api.HandleFunc("/users/{user-id}/groups", GetUserWithGroups(svc)).Methods("GET")
	api.HandleFunc("/me/groups", GetMyGroups(svc)).Methods("GET")
	api.HandleFunc("/users/{user-id}/balance", GetUserBalance(svc)).Methods("GET")
	api.HandleFunc("/users/{user-id}/debts", GetUserDebts(svc)).Methods("GET")
	api.HandleFunc("/users/{user-id}/payments", GetUserPayments(svc)).Methods("GET")

	// Groups
	api.HandleFunc("/groups", CreateGroup(svc)).Methods("POST")
	api.HandleFunc("/groups", GetGroups(svc)).Methods("GET")
	api.HandleFunc("/groups/{group-id}", GetGroup(svc)).Methods("GET")
	api.HandleFunc("/groups/{group-id}", RenameGroup(svc)).Methods("PATCH")
	api.HandleFunc("/groups/{group-id}", DeleteGroup(svc)).Methods("DELETE")

	// Group members
	api.HandleFunc("/groups/{group-id}/members", GetGroupMembers(svc)).Methods("GET")
	api.HandleFunc("/groups/{group-id}/members/{user-id}", AddGroupMember(svc)).Methods("PUT")
	api.HandleFunc("/groups/{group-id}/members/{user-id}", RemoveGroupMember(svc)).Methods("DELETE")

	// Expenses
	api.HandleFunc("/groups/{group-id}/expenses", CreateExpense(svc)).Methods("POST")
	api.HandleFunc("/groups/{group-id}/expenses", GetExpenses(svc)).Methods("GET")
	api.HandleFunc("/groups/{group-id}/expenses/{expense-id}", GetExpense(svc)).Methods("GET")
	api.HandleFunc("/groups/{group-id}/expenses/{expense-id}", DeleteExpense(svc)).Methods("DELETE")
	api.HandleFunc("/groups/{group-id}/expenses/{expense-id}/payments", SettleExpense(svc)).Methods("POST")
}
