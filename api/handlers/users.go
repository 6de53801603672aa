package handlers

import (
	"net/http"

	services "github.com/cristiano1098/socializeAPP/api/services"
)

// @Summary Create a user
// @Tags users
// @Accept json
// @Produce json
// @Param user body models.User true "User to create"
// @Success 201 {object} models.User
// @Failure 400 {object} models.Response
// @Failure 409 {object} models.Response
// @Failure 500 {object} models.Response
// @Router /users [post]
func CreateUser(svc *services.Service) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		services.CreateUserService(svc, w, r)
	}
}

// @Summary List users
// @Tags users
// @Produce json
// @Success 200 {object} models.UsersResponse
// @Failure 500 {object} models.Response
// @Router /users [get]
func GetUsers(svc *services.Service) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		services.GetUsersService(svc, w, r)
	}
}

// @Summary Get a user
// @Tags users
// @Produce json
// @Param user-id path int true "User ID"
// @Success 200 {object} models.User
// @Failure 400 {object} models.Response
// @Failure 404 {object} models.Response
// @Failure 500 {object} models.Response
// @Router /users/{user-id} [get]
func GetUser(svc *services.Service) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		services.GetUserService(svc, w, r)
	}
}

// @Summary Update a user
// @Tags users
// @Accept json
// @Produce json
// @Param user-id path int true "User ID"
// @Param user body models.User true "New user details"
// @Success 200 {object} models.User
// @Failure 400 {object} models.Response
// @Failure 404 {object} models.Response
// @Failure 409 {object} models.Response
// @Failure 500 {object} models.Response
// @Router /users/{user-id} [put]
func UpdateUser(svc *services.Service) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		services.UpdateUserService(svc, w, r)
	}
}

// @Summary Delete a user
// @Tags users
// @Produce json
// @Param user-id path int true "User ID"
// @Success 204
// @Failure 400 {object} models.Response
// @Failure 404 {object} models.Response
// @Failure 500 {object} models.Response
// @Router /users/{user-id} [delete]
func DeleteUser(svc *services.Service) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		services.DeleteUserService(svc, w, r)
	}
}

// @Summary Get a user with the groups they belong to
// @Tags users groups
// @Produce json
// @Param user-id path int true "User ID"
// @Param sort query string false "Group order" Enums(date, name)
// @Success 200 {object} models.UserWithGroups
// @Failure 400 {object} models.Response
// @Failure 404 {object} models.Response
// @Failure 500 {object} models.Response
// @Router /users/{user-id}/groups [get]
func GetUserWithGroups(svc *services.Service) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		services.GetUserWithGroupsService(svc, w, r)
	}
}

// @Summary Get the token owner with their groups
// @Tags users groups
// @Produce json
// @Param sort query string false "Group order" Enums(date, name)
// @Success 200 {object} models.UserWithGroups
// @Failure 400 {object} models.Response
// @Failure 401 {object} models.Response
// @Failure 404 {object} models.Response
// @Failure 500 {object} models.Response
// @Router /me/groups [get]
func GetMyGroups(svc *services.Service) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		services.GetMyGroupsService(svc, w, r)
	}
}

// @Summary Get what a user owes and is owed
// @Tags users expenses
// @Produce json
// @Param user-id path int true "User ID"
// @Param group query int false "Limit to one group"
// @Success 200 {object} models.Balance
// @Failure 400 {object} models.Response
// @Failure 404 {object} models.Response
// @Failure 500 {object} models.Response
// @Router /users/{user-id}/balance [get]
func GetUserBalance(svc *services.Service) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		services.GetUserBalanceService(svc, w, r)
	}
}

// @Summary List the expense shares a user still owes
// @Tags users expenses
// @Produce json
// @Param user-id path int true "User ID"
// @Param group query int false "Limit to one group"
// @Success 200 {object} models.DebtsResponse
// @Failure 400 {object} models.Response
// @Failure 404 {object} models.Response
// @Failure 500 {object} models.Response
// @Router /users/{user-id}/debts [get]
func GetUserDebts(svc *services.Service) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		services.GetUserDebtsService(svc, w, r)
	}
}

// @Summary List payments a user made or received
// @Tags users payments
// @Produce json
// @Param user-id path int true "User ID"
// @Success 200 {object} models.PaymentsResponse
// @Failure 400 {object} models.Response
// @Failure 404 {object} models.Response
// @Failure 500 {object} models.Response
// @Router /users/{user-id}/payments [get]
func GetUserPayments(svc *services.Service) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		services.GetUserPaymentsService(svc, w, r)
	}
}
