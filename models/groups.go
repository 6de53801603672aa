package models

import (
	"fmt"
	"strings"
	"time"
)

// Group represents a group of users sharing expenses.
type Group struct {
	GroupID   int64     `json:"groupId" db:"group_id"`
	Name      string    `json:"name" db:"name"`
	DateAdded time.Time `json:"dateAdded" db:"date_added"`
}

// GroupMember links one user to one group.
type GroupMember struct {
	UserID  int64 `json:"userId" db:"user_id"`
	GroupID int64 `json:"groupId" db:"group_id"`
}

// GroupOrder selects how group lists are sorted.
type GroupOrder string

const (
	GroupOrderDate GroupOrder = "date"
	GroupOrderName GroupOrder = "name"
)

// ParseGroupOrder parses a sort query value. An empty value means date order.
func ParseGroupOrder(s string) (GroupOrder, error) {
	switch GroupOrder(strings.ToLower(strings.TrimSpace(s))) {
	case "", GroupOrderDate:
		return GroupOrderDate, nil
	case GroupOrderName:
		return GroupOrderName, nil
	}
	return "", fmt.Errorf("unknown group order %q", s)
}

// GroupsResponse holds a list of groups.
type GroupsResponse struct {
	Groups []Group `json:"groups"`
}

// GroupMembersResponse represents a response with a list of group members.
type GroupMembersResponse struct {
	Members []User `json:"members"`
}

// CreateGroupRequest is the payload for creating a group with its first members.
type CreateGroupRequest struct {
	Name    string  `json:"name"`
	Members []int64 `json:"members"`
}

// RenameGroupRequest is the payload for renaming a group.
type RenameGroupRequest struct {
	Name string `json:"name"`
}
