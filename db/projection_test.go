package db

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/cristiano1098/socializeAPP/models"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeResult struct {
	rows int64
	err  error
}

func (f fakeResult) LastInsertId() (int64, error) { return 0, nil }
func (f fakeResult) RowsAffected() (int64, error) { return f.rows, f.err }

func TestAssembleUserWithGroups_NoGroups(t *testing.T) {
	user := models.User{UserID: 7, Name: "ana"}

	out := assembleUserWithGroups(user, nil)

	require.NotNil(t, out.Groups, "groups should be an empty slice, not nil")
	assert.Empty(t, out.Groups)
	assert.Equal(t, user, out.User)
}

func TestAssembleUserWithGroups_DropsDuplicateKeys(t *testing.T) {
	now := time.Now().UTC()
	groups := []models.Group{
		{GroupID: 2, Name: "trip", DateAdded: now},
		{GroupID: 1, Name: "flat", DateAdded: now.Add(time.Hour)},
		{GroupID: 2, Name: "trip", DateAdded: now},
	}

	out := assembleUserWithGroups(models.User{UserID: 1}, groups)

	require.Len(t, out.Groups, 2)
	assert.Equal(t, int64(2), out.Groups[0].GroupID, "first-seen order should be kept")
	assert.Equal(t, int64(1), out.Groups[1].GroupID)
}

func TestAssembleUserWithGroups_DoesNotAliasInput(t *testing.T) {
	groups := []models.Group{{GroupID: 1, Name: "flat"}}

	out := assembleUserWithGroups(models.User{UserID: 1}, groups)
	groups[0].Name = "changed"

	assert.Equal(t, "flat", out.Groups[0].Name)
}

func TestGroupOrderBy(t *testing.T) {
	assert.Equal(t, "g.date_added, g.group_id", groupOrderBy(models.GroupOrderDate))
	assert.Equal(t, "g.name, g.group_id", groupOrderBy(models.GroupOrderName))
	assert.Equal(t, "g.date_added, g.group_id", groupOrderBy(""))
}

func TestMatchSentinelError(t *testing.T) {
	other := errors.New("boom")

	tests := []struct {
		name string
		in   error
		want error
	}{
		{"no rows", sql.ErrNoRows, ErrNotFound},
		{"wrapped no rows", fmt.Errorf("scan: %w", sql.ErrNoRows), ErrNotFound},
		{"foreign key", &pq.Error{Code: "23503"}, ErrNotFound},
		{"unique", &pq.Error{Code: "23505"}, ErrDuplicate},
		{"check", &pq.Error{Code: "23514"}, ErrInvalidArgument},
		{"other pq", &pq.Error{Code: "42P01"}, nil},
		{"other", other, other},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := matchSentinelError(tt.in)
			if tt.want == nil {
				assert.Equal(t, tt.in, got)
				return
			}
			assert.ErrorIs(t, got, tt.want)
		})
	}
}

func TestMustHaveAffectedRows(t *testing.T) {
	assert.NoError(t, mustHaveAffectedRows(fakeResult{rows: 1}, nil))
	assert.ErrorIs(t, mustHaveAffectedRows(fakeResult{rows: 0}, nil), ErrNotFound)

	execErr := errors.New("exec failed")
	assert.ErrorIs(t, mustHaveAffectedRows(nil, execErr), execErr)

	countErr := errors.New("count failed")
	assert.ErrorIs(t, mustHaveAffectedRows(fakeResult{err: countErr}, nil), countErr)
}
