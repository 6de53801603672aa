package db

import (
	"context"
	"fmt"

	"github.com/cristiano1098/socializeAPP/models"
	"github.com/jmoiron/sqlx"
)

// AddMembers adds users to a group. Existing memberships are left as they are,
// so the call is idempotent. An unknown group or user aborts the whole call
// with ErrNotFound.
func (s *SocializeDB) AddMembers(ctx context.Context, groupID int64, userIDs ...int64) error {
	return s.withTx(ctx, nil, func(tx *sqlx.Tx) error {
		if len(userIDs) == 0 {
			var exists bool
			err := tx.QueryRowxContext(ctx,
				`SELECT EXISTS(SELECT 1 FROM groups WHERE group_id = $1)`, groupID).Scan(&exists)
			if err != nil {
				return fmt.Errorf("error checking group existence: %w", err)
			}
			if !exists {
				return fmt.Errorf("group %d: %w", groupID, ErrNotFound)
			}
			return nil
		}
		return addMembersTx(ctx, tx, groupID, userIDs)
	})
}

func addMembersTx(ctx context.Context, tx *sqlx.Tx, groupID int64, userIDs []int64) error {
	for _, userID := range userIDs {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO group_members (user_id, group_id) VALUES ($1, $2)
			ON CONFLICT DO NOTHING`, userID, groupID)
		if err != nil {
			return fmt.Errorf("error adding user %d to group %d: %w", userID, groupID, matchSentinelError(err))
		}
	}
	return nil
}

// RemoveMember removes a user from a group. ErrNotFound if the user was not a member.
func (s *SocializeDB) RemoveMember(ctx context.Context, groupID, userID int64) error {
	res, err := s.DB.ExecContext(ctx,
		`DELETE FROM group_members WHERE user_id = $1 AND group_id = $2`, userID, groupID)
	if err := mustHaveAffectedRows(res, err); err != nil {
		return fmt.Errorf("error removing user %d from group %d: %w", userID, groupID, matchSentinelError(err))
	}
	return nil
}

// GroupMembers retrieves the users that belong to a group, ordered by name.
func (s *SocializeDB) GroupMembers(ctx context.Context, groupID int64) ([]models.User, error) {
	users := []models.User{}
	query := userSelect + `
		INNER JOIN group_members gm ON gm.user_id = u.user_id
		WHERE gm.group_id = $1
		ORDER BY u.name, u.user_id`
	if err := s.DB.SelectContext(ctx, &users, query, groupID); err != nil {
		return nil, fmt.Errorf("error retrieving members of group %d: %w", groupID, err)
	}
	return users, nil
}

// GroupsForUser retrieves the groups a user belongs to. It does not check
// that the user exists; see LoadUserWithGroups for that.
func (s *SocializeDB) GroupsForUser(ctx context.Context, userID int64, order models.GroupOrder) ([]models.Group, error) {
	groups, err := selectGroupsForUser(ctx, s.DB, userID, order)
	if err != nil {
		return nil, err
	}
	return groups, nil
}

// ListMemberships retrieves every membership row.
func (s *SocializeDB) ListMemberships(ctx context.Context) ([]models.GroupMember, error) {
	members := []models.GroupMember{}
	query := `SELECT user_id, group_id FROM group_members ORDER BY group_id, user_id`
	if err := s.DB.SelectContext(ctx, &members, query); err != nil {
		return nil, fmt.Errorf("error retrieving memberships: %w", err)
	}
	return members, nil
}

// selectGroupsForUser joins the membership table to the group table for one
// user. Memberships whose group row is missing drop out of the inner join.
func selectGroupsForUser(ctx context.Context, q sqlx.QueryerContext, userID int64, order models.GroupOrder) ([]models.Group, error) {
	groups := []models.Group{}
	query := `
		SELECT ` + groupColumns + `
		FROM group_members gm
		INNER JOIN groups g ON g.group_id = gm.group_id
		WHERE gm.user_id = $1
		ORDER BY ` + groupOrderBy(order)
	if err := sqlx.SelectContext(ctx, q, &groups, query, userID); err != nil {
		return nil, fmt.Errorf("error retrieving groups for user %d: %w", userID, err)
	}
	return groups, nil
}
