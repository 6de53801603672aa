package cmd

import (
	"errors"
	"testing"

	"github.com/cristiano1098/socializeAPP/internal/events"
	"github.com/cristiano1098/socializeAPP/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

type recordingNotifier struct {
	events []events.GroupEvent
	fail   map[int64]bool
}

func (n *recordingNotifier) Notify(event events.GroupEvent) error {
	if n.fail[event.GroupID] {
		return errors.New("publish failed")
	}
	n.events = append(n.events, event)
	return nil
}

func (n *recordingNotifier) Close() {}

func TestReconcile(t *testing.T) {
	groups := []models.Group{{GroupID: 1, Name: "Trip"}, {GroupID: 2, Name: "Flat"}}
	memberships := []models.GroupMember{{UserID: 5, GroupID: 1}, {UserID: 6, GroupID: 2}}

	n := &recordingNotifier{}
	failed := reconcile(n, groups, memberships)

	assert.Equal(t, 0, failed)
	if assert.Len(t, n.events, 4) {
		assert.Equal(t, events.GroupCreated, n.events[0].Action)
		assert.Equal(t, "Trip", n.events[0].Name)
		assert.Equal(t, events.GroupCreated, n.events[1].Action)
		assert.Equal(t, events.MemberAdded, n.events[2].Action)
		assert.Equal(t, int64(5), n.events[2].UserID)
		assert.Equal(t, int64(2), n.events[3].GroupID)
	}
}

func TestReconcile_CountsFailures(t *testing.T) {
	groups := []models.Group{{GroupID: 1}, {GroupID: 2}}
	memberships := []models.GroupMember{{UserID: 5, GroupID: 2}}

	n := &recordingNotifier{fail: map[int64]bool{2: true}}
	failed := reconcile(n, groups, memberships)

	assert.Equal(t, 2, failed)
	assert.Len(t, n.events, 1)
}

func TestSetLogging(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.GlobalLevel())
	setLogging("debug")
	assert.Equal(t, "debug", zerolog.GlobalLevel().String())
	setLogging("nonsense")
	assert.Equal(t, "warn", zerolog.GlobalLevel().String())
}
