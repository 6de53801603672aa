package handlers

import (
	"net/http"

	services "github.com/cristiano1098/socializeAPP/api/services"
)

// @Summary Create a group with its initial members
// @Tags groups
// @Accept json
// @Produce json
// @Param group body models.CreateGroupRequest true "Group to create"
// @Success 201 {object} models.Group
// @Failure 400 {object} models.Response
// @Failure 404 {object} models.Response
// @Failure 500 {object} models.Response
// @Router /groups [post]
func CreateGroup(svc *services.Service) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		services.CreateGroupService(svc, w, r)
	}
}

// @Summary List groups
// @Tags groups
// @Produce json
// @Param sort query string false "Group order" Enums(date, name)
// @Success 200 {object} models.GroupsResponse
// @Failure 400 {object} models.Response
// @Failure 500 {object} models.Response
// @Router /groups [get]
func GetGroups(svc *services.Service) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		services.GetGroupsService(svc, w, r)
	}
}

// @Summary Get a group
// @Tags groups
// @Produce json
// @Param group-id path int true "Group ID"
// @Success 200 {object} models.Group
// @Failure 400 {object} models.Response
// @Failure 404 {object} models.Response
// @Failure 500 {object} models.Response
// @Router /groups/{group-id} [get]
func GetGroup(svc *services.Service) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		services.GetGroupService(svc, w, r)
	}
}

// @Summary Rename a group
// @Tags groups
// @Accept json
// @Produce json
// @Param group-id path int true "Group ID"
// @Param group body models.RenameGroupRequest true "New name"
// @Success 200 {object} models.Group
// @Failure 400 {object} models.Response
// @Failure 404 {object} models.Response
// @Failure 500 {object} models.Response
// @Router /groups/{group-id} [patch]
func RenameGroup(svc *services.Service) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		services.RenameGroupService(svc, w, r)
	}
}

// @Summary Delete a group
// @Tags groups
// @Produce json
// @Param group-id path int true "Group ID"
// @Success 204
// @Failure 400 {object} models.Response
// @Failure 404 {object} models.Response
// @Failure 500 {object} models.Response
// @Router /groups/{group-id} [delete]
func DeleteGroup(svc *services.Service) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		services.DeleteGroupService(svc, w, r)
	}
}

// @Summary List the members of a group
// @Tags groups members
// @Produce json
// @Param group-id path int true "Group ID"
// @Success 200 {object} models.GroupMembersResponse
// @Failure 400 {object} models.Response
// @Failure 404 {object} models.Response
// @Failure 500 {object} models.Response
// @Router /groups/{group-id}/members [get]
func GetGroupMembers(svc *services.Service) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		services.GetGroupMembersService(svc, w, r)
	}
}

// @Summary Add a user to a group
// @Tags groups members
// @Produce json
// @Param group-id path int true "Group ID"
// @Param user-id path int true "User ID"
// @Success 204
// @Failure 400 {object} models.Response
// @Failure 404 {object} models.Response
// @Failure 500 {object} models.Response
// @Router /groups/{group-id}/members/{user-id} [put]
func AddGroupMember(svc *services.Service) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		services.AddGroupMemberService(svc, w, r)
	}
}

// @Summary Remove a user from a group
// @Tags groups members
// @Produce json
// @Param group-id path int true "Group ID"
// @Param user-id path int true "User ID"
// @Success 204
// @Failure 400 {object} models.Response
// @Failure 404 {object} models.Response
// @Failure 500 {object} models.Response
// @Router /groups/{group-id}/members/{user-id} [delete]
func RemoveGroupMember(svc *services.Service) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		services.RemoveGroupMemberService(svc, w, r)
	}
}
