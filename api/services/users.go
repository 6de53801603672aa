package services

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/cristiano1098/socializeAPP/api/middleware"
	"github.com/cristiano1098/socializeAPP/internal/authn"
	"github.com/cristiano1098/socializeAPP/models"
	"github.com/rs/zerolog"
)

// CreateUserService registers a new user.
func CreateUserService(svc *Service, w http.ResponseWriter, r *http.Request) {

	logger := zerolog.Ctx(r.Context())

	var payload models.User
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		logger.Warn().Err(err).Msg("Invalid request payload")
		writeError(w, http.StatusBadRequest, "invalid_payload", err.Error())
		return
	}

	payload.Email = strings.TrimSpace(payload.Email)
	if payload.Email == "" || strings.TrimSpace(payload.Name) == "" {
		writeError(w, http.StatusBadRequest, "invalid_payload", "name and email are required")
		return
	}

	user, err := svc.DB.CreateUser(r.Context(), payload)
	if err != nil {
		writeStoreError(w, logger, err, "Failed to create user")
		return
	}

	logger.Info().Int64("user_id", user.UserID).Msg("User created successfully")

	location := fmt.Sprintf("%s/%d", r.URL.Path, user.UserID)
	WriteResponse(w, http.StatusCreated, *user, location)
}

// GetUsersService lists every user.
func GetUsersService(svc *Service, w http.ResponseWriter, r *http.Request) {

	logger := zerolog.Ctx(r.Context())

	users, err := svc.DB.ListUsers(r.Context())
	if err != nil {
		writeStoreError(w, logger, err, "Failed to list users")
		return
	}

	WriteResponse(w, http.StatusOK, models.UsersResponse{Users: users})
}

// GetUserService retrieves a single user.
func GetUserService(svc *Service, w http.ResponseWriter, r *http.Request) {

	logger := zerolog.Ctx(r.Context())

	userID, err := pathID(r, "user-id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_id", err.Error())
		return
	}

	user, err := svc.DB.GetUser(r.Context(), userID)
	if err != nil {
		writeStoreError(w, logger, err, "Failed to get user")
		return
	}

	WriteResponse(w, http.StatusOK, *user)
}

// UpdateUserService replaces the profile fields of a user.
func UpdateUserService(svc *Service, w http.ResponseWriter, r *http.Request) {

	logger := zerolog.Ctx(r.Context())

	userID, err := pathID(r, "user-id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_id", err.Error())
		return
	}

	var payload models.User
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		logger.Warn().Err(err).Msg("Invalid request payload")
		writeError(w, http.StatusBadRequest, "invalid_payload", err.Error())
		return
	}

	// The path is authoritative for the key. Balance is derived from
	// expense shares and never written.
	payload.UserID = userID
	payload.Balance = 0

	user, err := svc.DB.UpdateUser(r.Context(), payload)
	if err != nil {
		writeStoreError(w, logger, err, "Failed to update user")
		return
	}

	logger.Info().Int64("user_id", userID).Msg("User updated successfully")
	WriteResponse(w, http.StatusOK, *user)
}

// DeleteUserService removes a user and, through the cascade, its memberships.
func DeleteUserService(svc *Service, w http.ResponseWriter, r *http.Request) {

	logger := zerolog.Ctx(r.Context())

	userID, err := pathID(r, "user-id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_id", err.Error())
		return
	}

	if err := svc.DB.DeleteUser(r.Context(), userID); err != nil {
		writeStoreError(w, logger, err, "Failed to delete user")
		return
	}

	logger.Info().Int64("user_id", userID).Msg("User deleted successfully")
	WriteResponse(w, http.StatusNoContent, nil)
}

// GetUserWithGroupsService returns the user together with every group the
// user belongs to.
func GetUserWithGroupsService(svc *Service, w http.ResponseWriter, r *http.Request) {

	logger := zerolog.Ctx(r.Context())

	userID, err := pathID(r, "user-id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_id", err.Error())
		return
	}

	writeUserWithGroups(svc, w, r, logger, userID)
}

// GetMyGroupsService resolves the caller from the token email and returns
// their groups.
func GetMyGroupsService(svc *Service, w http.ResponseWriter, r *http.Request) {

	logger := zerolog.Ctx(r.Context())

	claims, ok := r.Context().Value(middleware.ClaimsKey).(authn.Claims)
	if !ok || claims.Email == "" {
		logger.Warn().Msg("Unauthorized request: missing claims")
		WriteResponse(w, http.StatusUnauthorized, nil)
		return
	}

	user, err := svc.DB.GetUserByEmail(r.Context(), claims.Email)
	if err != nil {
		writeStoreError(w, logger, err, "Failed to resolve caller")
		return
	}

	writeUserWithGroups(svc, w, r, logger, user.UserID)
}

func writeUserWithGroups(svc *Service, w http.ResponseWriter, r *http.Request, logger *zerolog.Logger, userID int64) {

	order, err := models.ParseGroupOrder(r.URL.Query().Get("sort"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_sort", err.Error())
		return
	}

	projection, err := svc.DB.LoadUserWithGroups(r.Context(), userID, order)
	if err != nil {
		writeStoreError(w, logger, err, "Failed to load user groups")
		return
	}

	if svc.Metrics != nil {
		svc.Metrics.RecordProjectionLoad(len(projection.Groups))
	}

	WriteResponse(w, http.StatusOK, *projection)
}
