package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/cristiano1098/socializeAPP/models"
	"github.com/jmoiron/sqlx"
)

// LoadUserWithGroups loads a user together with every group the user belongs
// to. Both reads share one repeatable-read snapshot. ErrNotFound is returned
// if the user does not exist.
func (s *SocializeDB) LoadUserWithGroups(ctx context.Context, userID int64, order models.GroupOrder) (*models.UserWithGroups, error) {
	var (
		user   models.User
		groups []models.Group
	)

	opts := &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true}
	err := s.withTx(ctx, opts, func(tx *sqlx.Tx) error {
		query := userSelect + ` WHERE u.user_id = $1`
		if err := tx.GetContext(ctx, &user, query, userID); err != nil {
			return fmt.Errorf("error retrieving user %d: %w", userID, matchSentinelError(err))
		}

		var err error
		groups, err = selectGroupsForUser(ctx, tx, userID, order)
		return err
	})
	if err != nil {
		return nil, err
	}

	return assembleUserWithGroups(user, groups), nil
}

// assembleUserWithGroups builds the projection, keeping the first occurrence
// of each group key. Groups is never nil.
func assembleUserWithGroups(user models.User, groups []models.Group) *models.UserWithGroups {
	seen := make(map[int64]struct{}, len(groups))
	out := make([]models.Group, 0, len(groups))
	for _, g := range groups {
		if _, ok := seen[g.GroupID]; ok {
			continue
		}
		seen[g.GroupID] = struct{}{}
		out = append(out, g)
	}

	return &models.UserWithGroups{User: user, Groups: out}
}
