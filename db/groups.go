package db

import (
	"context"
	"fmt"

	"github.com/cristiano1098/socializeAPP/models"
	"github.com/jmoiron/sqlx"
)

const groupColumns = `g.group_id, g.name, g.date_added`

// groupOrderBy returns the ORDER BY expression for groups aliased as g.
// group_id breaks ties so the order is total.
func groupOrderBy(order models.GroupOrder) string {
	if order == models.GroupOrderName {
		return `g.name, g.group_id`
	}
	return `g.date_added, g.group_id`
}

// CreateGroup inserts a group and its initial members in one transaction.
// If any member does not exist nothing is written and ErrNotFound is returned.
func (s *SocializeDB) CreateGroup(ctx context.Context, name string, memberIDs ...int64) (*models.Group, error) {
	var group models.Group

	err := s.withTx(ctx, nil, func(tx *sqlx.Tx) error {
		err := tx.QueryRowxContext(ctx, `
			INSERT INTO groups (name) VALUES ($1)
			RETURNING group_id, name, date_added`, name).StructScan(&group)
		if err != nil {
			return fmt.Errorf("error inserting group %q: %w", name, matchSentinelError(err))
		}

		return addMembersTx(ctx, tx, group.GroupID, memberIDs)
	})
	if err != nil {
		return nil, err
	}

	s.Log.Debug().Int64("group_id", group.GroupID).Int("members", len(memberIDs)).Msg("Group created")
	return &group, nil
}

// SaveGroup inserts a group with a known ID, or renames it if it already exists.
// The ID sequence is moved past the saved ID so later local inserts do not collide.
func (s *SocializeDB) SaveGroup(ctx context.Context, group models.Group) error {
	return s.withTx(ctx, nil, func(tx *sqlx.Tx) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO groups (group_id, name, date_added) VALUES ($1, $2, $3)
			ON CONFLICT (group_id) DO UPDATE SET name = EXCLUDED.name`,
			group.GroupID, group.Name, group.DateAdded)
		if err != nil {
			return fmt.Errorf("error saving group %d: %w", group.GroupID, matchSentinelError(err))
		}

		_, err = tx.ExecContext(ctx, `
			SELECT setval(pg_get_serial_sequence('groups', 'group_id'), (SELECT MAX(group_id) FROM groups))`)
		if err != nil {
			return fmt.Errorf("error advancing group sequence: %w", err)
		}
		return nil
	})
}

// GetGroup retrieves a single group by ID.
func (s *SocializeDB) GetGroup(ctx context.Context, groupID int64) (*models.Group, error) {
	var group models.Group
	query := `SELECT ` + groupColumns + ` FROM groups g WHERE g.group_id = $1`
	if err := s.DB.GetContext(ctx, &group, query, groupID); err != nil {
		return nil, fmt.Errorf("error retrieving group %d: %w", groupID, matchSentinelError(err))
	}
	return &group, nil
}

// ListGroups retrieves all groups in the requested order.
func (s *SocializeDB) ListGroups(ctx context.Context, order models.GroupOrder) ([]models.Group, error) {
	groups := []models.Group{}
	query := `SELECT ` + groupColumns + ` FROM groups g ORDER BY ` + groupOrderBy(order)
	if err := s.DB.SelectContext(ctx, &groups, query); err != nil {
		return nil, fmt.Errorf("error retrieving groups: %w", err)
	}
	return groups, nil
}

// RenameGroup changes the name of a group and returns the updated row.
func (s *SocializeDB) RenameGroup(ctx context.Context, groupID int64, name string) (*models.Group, error) {
	var group models.Group
	err := s.DB.QueryRowxContext(ctx, `
		UPDATE groups g SET name = $1 WHERE g.group_id = $2
		RETURNING `+groupColumns, name, groupID).StructScan(&group)
	if err != nil {
		return nil, fmt.Errorf("error renaming group %d: %w", groupID, matchSentinelError(err))
	}
	return &group, nil
}

// DeleteGroup deletes a group. Its memberships are removed by the cascade.
func (s *SocializeDB) DeleteGroup(ctx context.Context, groupID int64) error {
	res, err := s.DB.ExecContext(ctx, `DELETE FROM groups WHERE group_id = $1`, groupID)
	if err := mustHaveAffectedRows(res, err); err != nil {
		return fmt.Errorf("error deleting group %d: %w", groupID, matchSentinelError(err))
	}
	return nil
}
