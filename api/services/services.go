package services

import (
	"context"

	"github.com/cristiano1098/socializeAPP/db"
	"github.com/cristiano1098/socializeAPP/internal/appconfig"
	"github.com/cristiano1098/socializeAPP/internal/events"
	"github.com/cristiano1098/socializeAPP/internal/metrics"
	"github.com/cristiano1098/socializeAPP/models"
)

// SocializeStore is the persistence surface the HTTP services depend on.
type SocializeStore interface {
	CreateUser(ctx context.Context, user models.User) (*models.User, error)
	GetUser(ctx context.Context, userID int64) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	UpdateUser(ctx context.Context, user models.User) (*models.User, error)
	DeleteUser(ctx context.Context, userID int64) error

	CreateGroup(ctx context.Context, name string, memberIDs ...int64) (*models.Group, error)
	GetGroup(ctx context.Context, groupID int64) (*models.Group, error)
	ListGroups(ctx context.Context, order models.GroupOrder) ([]models.Group, error)
	RenameGroup(ctx context.Context, groupID int64, name string) (*models.Group, error)
	DeleteGroup(ctx context.Context, groupID int64) error

	AddMembers(ctx context.Context, groupID int64, userIDs ...int64) error
	RemoveMember(ctx context.Context, groupID, userID int64) error
	GroupMembers(ctx context.Context, groupID int64) ([]models.User, error)
	LoadUserWithGroups(ctx context.Context, userID int64, order models.GroupOrder) (*models.UserWithGroups, error)

	CreateExpense(ctx context.Context, expense models.Expense, participantIDs []int64) (*models.ExpenseDetail, error)
	GetExpense(ctx context.Context, expenseID int64) (*models.Expense, error)
	ListGroupExpenses(ctx context.Context, groupID int64, order models.ExpenseOrder) ([]models.Expense, error)
	ExpenseParticipants(ctx context.Context, expenseID int64) ([]models.ExpenseParticipant, error)
	DeleteExpense(ctx context.Context, expenseID int64) error
	SettleExpense(ctx context.Context, expenseID, payerUserID int64, amount float64) (*models.Payment, error)
	UserBalance(ctx context.Context, userID, groupID int64) (*models.Balance, error)
	DebtsForUser(ctx context.Context, userID, groupID int64) ([]models.ExpenseParticipant, error)
	UserPayments(ctx context.Context, userID int64) ([]models.Payment, error)
}

// compile-time interface check
var _ SocializeStore = (*db.SocializeDB)(nil)

// Service contains all shared dependencies for handlers.
type Service struct {
	Config    *appconfig.Config
	DB        SocializeStore
	Publisher events.Notifier
	Metrics   metrics.Recorder
}
