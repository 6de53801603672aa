package services

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/cristiano1098/socializeAPP/db"
	"github.com/cristiano1098/socializeAPP/internal/events"
	"github.com/cristiano1098/socializeAPP/models"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func eventMatching(action events.Action, groupID, userID int64) interface{} {
	return mock.MatchedBy(func(e events.GroupEvent) bool {
		return e.Action == action && e.GroupID == groupID && e.UserID == userID
	})
}

func TestCreateGroupService(t *testing.T) {

	svc, mockDB, mockPublisher, _ := newTestService()

	group := &models.Group{GroupID: 4, Name: "Trip", DateAdded: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)}
	mockDB.On("CreateGroup", mock.Anything, "Trip", []int64{1, 2}).Return(group, nil)

	mockPublisher.On("Notify", mock.MatchedBy(func(e events.GroupEvent) bool {
		return e.Action == events.GroupCreated && e.GroupID == 4 && e.Name == "Trip" && e.DateAdded.Equal(group.DateAdded)
	})).Return(nil).Once()
	mockPublisher.On("Notify", eventMatching(events.MemberAdded, 4, 1)).Return(nil).Once()
	mockPublisher.On("Notify", eventMatching(events.MemberAdded, 4, 2)).Return(nil).Once()

	req := httptest.NewRequest(http.MethodPost, "/api/groups", bytes.NewBufferString(`{"name":" Trip ","members":[1,2]}`))
	rr := httptest.NewRecorder()

	CreateGroupService(svc, rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "/api/groups/4", rr.Header().Get("Location"))
	mockDB.AssertExpectations(t)
	mockPublisher.AssertExpectations(t)
}

func TestCreateGroupService_UnknownMember(t *testing.T) {

	svc, mockDB, mockPublisher, _ := newTestService()

	mockDB.On("CreateGroup", mock.Anything, "Trip", []int64{99}).
		Return(nil, fmt.Errorf("error adding members: %w", db.ErrNotFound))

	req := httptest.NewRequest(http.MethodPost, "/api/groups", bytes.NewBufferString(`{"name":"Trip","members":[99]}`))
	rr := httptest.NewRecorder()

	CreateGroupService(svc, rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	mockPublisher.AssertNotCalled(t, "Notify", mock.Anything)
}

func TestCreateGroupService_MissingName(t *testing.T) {

	svc, mockDB, _, _ := newTestService()

	req := httptest.NewRequest(http.MethodPost, "/api/groups", bytes.NewBufferString(`{"members":[1]}`))
	rr := httptest.NewRecorder()

	CreateGroupService(svc, rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	mockDB.AssertNotCalled(t, "CreateGroup", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateGroupService_PublishFailureDoesNotFailRequest(t *testing.T) {

	svc, mockDB, mockPublisher, mockRecorder := newTestService()

	mockDB.On("CreateGroup", mock.Anything, "Trip", []int64(nil)).Return(&models.Group{GroupID: 1, Name: "Trip"}, nil)
	mockPublisher.On("Notify", mock.Anything).Return(errors.New("broker down"))
	mockRecorder.On("RecordPublishFailure").Return().Once()

	req := httptest.NewRequest(http.MethodPost, "/api/groups", bytes.NewBufferString(`{"name":"Trip"}`))
	rr := httptest.NewRecorder()

	CreateGroupService(svc, rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
	mockRecorder.AssertExpectations(t)
}

func TestGetGroupsService(t *testing.T) {

	svc, mockDB, _, _ := newTestService()

	groups := []models.Group{{GroupID: 2, Name: "A"}, {GroupID: 1, Name: "B"}}
	mockDB.On("ListGroups", mock.Anything, models.GroupOrderName).Return(groups, nil)

	rr := httptest.NewRecorder()
	GetGroupsService(svc, rr, httptest.NewRequest(http.MethodGet, "/api/groups?sort=NAME", nil))

	assert.Equal(t, http.StatusOK, rr.Code)

	var got models.GroupsResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
	assert.Equal(t, groups, got.Groups)

	rr = httptest.NewRecorder()
	GetGroupsService(svc, rr, httptest.NewRequest(http.MethodGet, "/api/groups?sort=size", nil))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestGetGroupService(t *testing.T) {

	svc, mockDB, _, _ := newTestService()
	mockDB.On("GetGroup", mock.Anything, int64(3)).Return(&models.Group{GroupID: 3, Name: "Flat"}, nil)
	mockDB.On("GetGroup", mock.Anything, int64(8)).Return(nil, db.ErrNotFound)

	req := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/api/groups/3", nil), map[string]string{"group-id": "3"})
	rr := httptest.NewRecorder()
	GetGroupService(svc, rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)

	req = mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/api/groups/8", nil), map[string]string{"group-id": "8"})
	rr = httptest.NewRecorder()
	GetGroupService(svc, rr, req)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestRenameGroupService(t *testing.T) {

	svc, mockDB, mockPublisher, _ := newTestService()

	renamed := &models.Group{GroupID: 3, Name: "Holiday"}
	mockDB.On("RenameGroup", mock.Anything, int64(3), "Holiday").Return(renamed, nil)
	mockPublisher.On("Notify", mock.MatchedBy(func(e events.GroupEvent) bool {
		return e.Action == events.GroupRenamed && e.GroupID == 3 && e.Name == "Holiday"
	})).Return(nil).Once()

	req := httptest.NewRequest(http.MethodPatch, "/api/groups/3", bytes.NewBufferString(`{"name":"Holiday"}`))
	req = mux.SetURLVars(req, map[string]string{"group-id": "3"})
	rr := httptest.NewRecorder()

	RenameGroupService(svc, rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	mockPublisher.AssertExpectations(t)
}

func TestDeleteGroupService(t *testing.T) {

	svc, mockDB, mockPublisher, _ := newTestService()

	mockDB.On("DeleteGroup", mock.Anything, int64(3)).Return(nil)
	mockPublisher.On("Notify", eventMatching(events.GroupDeleted, 3, 0)).Return(nil).Once()

	req := mux.SetURLVars(httptest.NewRequest(http.MethodDelete, "/api/groups/3", nil), map[string]string{"group-id": "3"})
	rr := httptest.NewRecorder()

	DeleteGroupService(svc, rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	mockPublisher.AssertExpectations(t)
}

func TestGetGroupMembersService(t *testing.T) {

	svc, mockDB, _, _ := newTestService()

	members := []models.User{{UserID: 1, Name: "Ana"}}
	mockDB.On("GetGroup", mock.Anything, int64(3)).Return(&models.Group{GroupID: 3}, nil)
	mockDB.On("GroupMembers", mock.Anything, int64(3)).Return(members, nil)
	mockDB.On("GetGroup", mock.Anything, int64(4)).Return(nil, db.ErrNotFound)

	req := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/api/groups/3/members", nil), map[string]string{"group-id": "3"})
	rr := httptest.NewRecorder()
	GetGroupMembersService(svc, rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var got models.GroupMembersResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
	assert.Equal(t, members, got.Members)

	req = mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/api/groups/4/members", nil), map[string]string{"group-id": "4"})
	rr = httptest.NewRecorder()
	GetGroupMembersService(svc, rr, req)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	mockDB.AssertNotCalled(t, "GroupMembers", mock.Anything, int64(4))
}

func TestAddGroupMemberService(t *testing.T) {

	svc, mockDB, mockPublisher, _ := newTestService()

	mockDB.On("AddMembers", mock.Anything, int64(3), []int64{7}).Return(nil)
	mockPublisher.On("Notify", eventMatching(events.MemberAdded, 3, 7)).Return(nil).Once()

	req := httptest.NewRequest(http.MethodPut, "/api/groups/3/members/7", nil)
	req = mux.SetURLVars(req, map[string]string{"group-id": "3", "user-id": "7"})
	rr := httptest.NewRecorder()

	AddGroupMemberService(svc, rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	mockDB.AssertExpectations(t)
	mockPublisher.AssertExpectations(t)
}

func TestAddGroupMemberService_BadPath(t *testing.T) {

	svc, mockDB, _, _ := newTestService()

	req := httptest.NewRequest(http.MethodPut, "/api/groups/3/members/x", nil)
	req = mux.SetURLVars(req, map[string]string{"group-id": "3", "user-id": "x"})
	rr := httptest.NewRecorder()

	AddGroupMemberService(svc, rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	mockDB.AssertNotCalled(t, "AddMembers", mock.Anything, mock.Anything, mock.Anything)
}

func TestRemoveGroupMemberService(t *testing.T) {

	svc, mockDB, mockPublisher, _ := newTestService()

	mockDB.On("RemoveMember", mock.Anything, int64(3), int64(7)).Return(nil)
	mockDB.On("RemoveMember", mock.Anything, int64(3), int64(8)).Return(db.ErrNotFound)
	mockPublisher.On("Notify", eventMatching(events.MemberRemoved, 3, 7)).Return(nil).Once()

	req := mux.SetURLVars(httptest.NewRequest(http.MethodDelete, "/api/groups/3/members/7", nil),
		map[string]string{"group-id": "3", "user-id": "7"})
	rr := httptest.NewRecorder()
	RemoveGroupMemberService(svc, rr, req)
	assert.Equal(t, http.StatusNoContent, rr.Code)

	req = mux.SetURLVars(httptest.NewRequest(http.MethodDelete, "/api/groups/3/members/8", nil),
		map[string]string{"group-id": "3", "user-id": "8"})
	rr = httptest.NewRecorder()
	RemoveGroupMemberService(svc, rr, req)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	mockPublisher.AssertExpectations(t)
}

func TestCreateGroupService_RepeatedMembersPublishOnce(t *testing.T) {

	svc, mockDB, mockPublisher, _ := newTestService()

	mockDB.On("CreateGroup", mock.Anything, "Trip", []int64{5, 6}).Return(&models.Group{GroupID: 4, Name: "Trip"}, nil)
	mockPublisher.On("Notify", eventMatching(events.GroupCreated, 4, 0)).Return(nil).Once()
	mockPublisher.On("Notify", eventMatching(events.MemberAdded, 4, 5)).Return(nil).Once()
	mockPublisher.On("Notify", eventMatching(events.MemberAdded, 4, 6)).Return(nil).Once()

	req := httptest.NewRequest(http.MethodPost, "/api/groups", bytes.NewBufferString(`{"name":"Trip","members":[5,5,6,5]}`))
	rr := httptest.NewRecorder()

	CreateGroupService(svc, rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
	mockDB.AssertExpectations(t)
	mockPublisher.AssertExpectations(t)
	mockPublisher.AssertNumberOfCalls(t, "Notify", 3)
}

func TestUniqueIDs(t *testing.T) {
	assert.Nil(t, uniqueIDs(nil))
	assert.Equal(t, []int64{3, 1, 2}, uniqueIDs([]int64{3, 1, 3, 2, 1}))
}
