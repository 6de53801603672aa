package services

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/cristiano1098/socializeAPP/internal/events"
	"github.com/cristiano1098/socializeAPP/models"
	"github.com/rs/zerolog"
)

func groupEvent(action events.Action, group models.Group) events.GroupEvent {
	event := events.NewGroupEvent(action, group.GroupID)
	event.Name = group.Name
	event.DateAdded = group.DateAdded
	return event
}

func memberEvent(action events.Action, groupID, userID int64) events.GroupEvent {
	event := events.NewGroupEvent(action, groupID)
	event.UserID = userID
	return event
}

// CreateGroupService creates a group together with its initial members.
func CreateGroupService(svc *Service, w http.ResponseWriter, r *http.Request) {

	logger := zerolog.Ctx(r.Context())

	var payload models.CreateGroupRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		logger.Warn().Err(err).Msg("Invalid request payload")
		writeError(w, http.StatusBadRequest, "invalid_payload", err.Error())
		return
	}

	name := strings.TrimSpace(payload.Name)
	if name == "" {
		writeError(w, http.StatusBadRequest, "invalid_payload", "name is required")
		return
	}

	members := uniqueIDs(payload.Members)

	group, err := svc.DB.CreateGroup(r.Context(), name, members...)
	if err != nil {
		writeStoreError(w, logger, err, "Failed to create group")
		return
	}

	logger.Info().Int64("group_id", group.GroupID).Int("members", len(members)).
		Msg("Group created successfully")

	svc.publish(logger, groupEvent(events.GroupCreated, *group))
	for _, userID := range members {
		svc.publish(logger, memberEvent(events.MemberAdded, group.GroupID, userID))
	}

	location := fmt.Sprintf("%s/%d", r.URL.Path, group.GroupID)
	WriteResponse(w, http.StatusCreated, *group, location)
}

// GetGroupsService lists all groups in the requested order.
func GetGroupsService(svc *Service, w http.ResponseWriter, r *http.Request) {

	logger := zerolog.Ctx(r.Context())

	order, err := models.ParseGroupOrder(r.URL.Query().Get("sort"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_sort", err.Error())
		return
	}

	groups, err := svc.DB.ListGroups(r.Context(), order)
	if err != nil {
		writeStoreError(w, logger, err, "Failed to list groups")
		return
	}

	WriteResponse(w, http.StatusOK, models.GroupsResponse{Groups: groups})
}

// GetGroupService retrieves a single group.
func GetGroupService(svc *Service, w http.ResponseWriter, r *http.Request) {

	logger := zerolog.Ctx(r.Context())

	groupID, err := pathID(r, "group-id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_id", err.Error())
		return
	}

	group, err := svc.DB.GetGroup(r.Context(), groupID)
	if err != nil {
		writeStoreError(w, logger, err, "Failed to get group")
		return
	}

	WriteResponse(w, http.StatusOK, *group)
}

// RenameGroupService changes the name of a group.
func RenameGroupService(svc *Service, w http.ResponseWriter, r *http.Request) {

	logger := zerolog.Ctx(r.Context())

	groupID, err := pathID(r, "group-id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_id", err.Error())
		return
	}

	var payload models.RenameGroupRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		logger.Warn().Err(err).Msg("Invalid request payload")
		writeError(w, http.StatusBadRequest, "invalid_payload", err.Error())
		return
	}

	name := strings.TrimSpace(payload.Name)
	if name == "" {
		writeError(w, http.StatusBadRequest, "invalid_payload", "name is required")
		return
	}

	group, err := svc.DB.RenameGroup(r.Context(), groupID, name)
	if err != nil {
		writeStoreError(w, logger, err, "Failed to rename group")
		return
	}

	logger.Info().Int64("group_id", groupID).Msg("Group renamed successfully")
	svc.publish(logger, groupEvent(events.GroupRenamed, *group))

	WriteResponse(w, http.StatusOK, *group)
}

// DeleteGroupService removes a group and its memberships.
func DeleteGroupService(svc *Service, w http.ResponseWriter, r *http.Request) {

	logger := zerolog.Ctx(r.Context())

	groupID, err := pathID(r, "group-id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_id", err.Error())
		return
	}

	if err := svc.DB.DeleteGroup(r.Context(), groupID); err != nil {
		writeStoreError(w, logger, err, "Failed to delete group")
		return
	}

	logger.Info().Int64("group_id", groupID).Msg("Group deleted successfully")
	svc.publish(logger, events.NewGroupEvent(events.GroupDeleted, groupID))

	WriteResponse(w, http.StatusNoContent, nil)
}

// GetGroupMembersService lists the users of a group.
func GetGroupMembersService(svc *Service, w http.ResponseWriter, r *http.Request) {

	logger := zerolog.Ctx(r.Context())

	groupID, err := pathID(r, "group-id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_id", err.Error())
		return
	}

	// An empty member list is ambiguous, so confirm the group exists.
	if _, err := svc.DB.GetGroup(r.Context(), groupID); err != nil {
		writeStoreError(w, logger, err, "Failed to get group")
		return
	}

	members, err := svc.DB.GroupMembers(r.Context(), groupID)
	if err != nil {
		writeStoreError(w, logger, err, "Failed to list group members")
		return
	}

	WriteResponse(w, http.StatusOK, models.GroupMembersResponse{Members: members})
}

// AddGroupMemberService adds a user to a group. Adding an existing member is
// a no-op.
func AddGroupMemberService(svc *Service, w http.ResponseWriter, r *http.Request) {

	logger := zerolog.Ctx(r.Context())

	groupID, userID, ok := memberPath(w, r)
	if !ok {
		return
	}

	if err := svc.DB.AddMembers(r.Context(), groupID, userID); err != nil {
		writeStoreError(w, logger, err, "Failed to add group member")
		return
	}

	logger.Info().Int64("group_id", groupID).Int64("user_id", userID).Msg("Member added")
	svc.publish(logger, memberEvent(events.MemberAdded, groupID, userID))

	WriteResponse(w, http.StatusNoContent, nil)
}

// RemoveGroupMemberService removes a user from a group.
func RemoveGroupMemberService(svc *Service, w http.ResponseWriter, r *http.Request) {

	logger := zerolog.Ctx(r.Context())

	groupID, userID, ok := memberPath(w, r)
	if !ok {
		return
	}

	if err := svc.DB.RemoveMember(r.Context(), groupID, userID); err != nil {
		writeStoreError(w, logger, err, "Failed to remove group member")
		return
	}

	logger.Info().Int64("group_id", groupID).Int64("user_id", userID).Msg("Member removed")
	svc.publish(logger, memberEvent(events.MemberRemoved, groupID, userID))

	WriteResponse(w, http.StatusNoContent, nil)
}

func memberPath(w http.ResponseWriter, r *http.Request) (int64, int64, bool) {
	groupID, err := pathID(r, "group-id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_id", err.Error())
		return 0, 0, false
	}
	userID, err := pathID(r, "user-id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_id", err.Error())
		return 0, 0, false
	}
	return groupID, userID, true
}
