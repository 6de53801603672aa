package services

import (
	"context"

	"github.com/cristiano1098/socializeAPP/internal/events"
	"github.com/cristiano1098/socializeAPP/models"
	"github.com/stretchr/testify/mock"
)

type MockSocializeDB struct {
	mock.Mock
}

type MockEventPublisher struct {
	mock.Mock
}

type MockRecorder struct {
	mock.Mock
}

// compile-time interface checks
var (
	_ SocializeStore  = (*MockSocializeDB)(nil)
	_ events.Notifier = (*MockEventPublisher)(nil)
)

func (m *MockSocializeDB) CreateUser(ctx context.Context, user models.User) (*models.User, error) {
	args := m.Called(ctx, user)
	u, _ := args.Get(0).(*models.User)
	return u, args.Error(1)
}

func (m *MockSocializeDB) GetUser(ctx context.Context, userID int64) (*models.User, error) {
	args := m.Called(ctx, userID)
	u, _ := args.Get(0).(*models.User)
	return u, args.Error(1)
}

func (m *MockSocializeDB) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*models.User)
	return u, args.Error(1)
}

func (m *MockSocializeDB) ListUsers(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	users, _ := args.Get(0).([]models.User)
	return users, args.Error(1)
}

func (m *MockSocializeDB) UpdateUser(ctx context.Context, user models.User) (*models.User, error) {
	args := m.Called(ctx, user)
	u, _ := args.Get(0).(*models.User)
	return u, args.Error(1)
}

func (m *MockSocializeDB) DeleteUser(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockSocializeDB) CreateGroup(ctx context.Context, name string, memberIDs ...int64) (*models.Group, error) {
	args := m.Called(ctx, name, memberIDs)
	g, _ := args.Get(0).(*models.Group)
	return g, args.Error(1)
}

func (m *MockSocializeDB) GetGroup(ctx context.Context, groupID int64) (*models.Group, error) {
	args := m.Called(ctx, groupID)
	g, _ := args.Get(0).(*models.Group)
	return g, args.Error(1)
}

func (m *MockSocializeDB) ListGroups(ctx context.Context, order models.GroupOrder) ([]models.Group, error) {
	args := m.Called(ctx, order)
	groups, _ := args.Get(0).([]models.Group)
	return groups, args.Error(1)
}

func (m *MockSocializeDB) RenameGroup(ctx context.Context, groupID int64, name string) (*models.Group, error) {
	args := m.Called(ctx, groupID, name)
	g, _ := args.Get(0).(*models.Group)
	return g, args.Error(1)
}

func (m *MockSocializeDB) DeleteGroup(ctx context.Context, groupID int64) error {
	args := m.Called(ctx, groupID)
	return args.Error(0)
}

func (m *MockSocializeDB) AddMembers(ctx context.Context, groupID int64, userIDs ...int64) error {
	args := m.Called(ctx, groupID, userIDs)
	return args.Error(0)
}

func (m *MockSocializeDB) RemoveMember(ctx context.Context, groupID, userID int64) error {
	args := m.Called(ctx, groupID, userID)
	return args.Error(0)
}

func (m *MockSocializeDB) GroupMembers(ctx context.Context, groupID int64) ([]models.User, error) {
	args := m.Called(ctx, groupID)
	users, _ := args.Get(0).([]models.User)
	return users, args.Error(1)
}

func (m *MockSocializeDB) LoadUserWithGroups(ctx context.Context, userID int64, order models.GroupOrder) (*models.UserWithGroups, error) {
	args := m.Called(ctx, userID, order)
	p, _ := args.Get(0).(*models.UserWithGroups)
	return p, args.Error(1)
}

func (m *MockSocializeDB) CreateExpense(ctx context.Context, expense models.Expense, participantIDs []int64) (*models.ExpenseDetail, error) {
	args := m.Called(ctx, expense, participantIDs)
	d, _ := args.Get(0).(*models.ExpenseDetail)
	return d, args.Error(1)
}

func (m *MockSocializeDB) GetExpense(ctx context.Context, expenseID int64) (*models.Expense, error) {
	args := m.Called(ctx, expenseID)
	e, _ := args.Get(0).(*models.Expense)
	return e, args.Error(1)
}

func (m *MockSocializeDB) ListGroupExpenses(ctx context.Context, groupID int64, order models.ExpenseOrder) ([]models.Expense, error) {
	args := m.Called(ctx, groupID, order)
	expenses, _ := args.Get(0).([]models.Expense)
	return expenses, args.Error(1)
}

func (m *MockSocializeDB) ExpenseParticipants(ctx context.Context, expenseID int64) ([]models.ExpenseParticipant, error) {
	args := m.Called(ctx, expenseID)
	shares, _ := args.Get(0).([]models.ExpenseParticipant)
	return shares, args.Error(1)
}

func (m *MockSocializeDB) DeleteExpense(ctx context.Context, expenseID int64) error {
	args := m.Called(ctx, expenseID)
	return args.Error(0)
}

func (m *MockSocializeDB) SettleExpense(ctx context.Context, expenseID, payerUserID int64, amount float64) (*models.Payment, error) {
	args := m.Called(ctx, expenseID, payerUserID, amount)
	p, _ := args.Get(0).(*models.Payment)
	return p, args.Error(1)
}

func (m *MockSocializeDB) UserBalance(ctx context.Context, userID, groupID int64) (*models.Balance, error) {
	args := m.Called(ctx, userID, groupID)
	b, _ := args.Get(0).(*models.Balance)
	return b, args.Error(1)
}

func (m *MockSocializeDB) DebtsForUser(ctx context.Context, userID, groupID int64) ([]models.ExpenseParticipant, error) {
	args := m.Called(ctx, userID, groupID)
	debts, _ := args.Get(0).([]models.ExpenseParticipant)
	return debts, args.Error(1)
}

func (m *MockSocializeDB) UserPayments(ctx context.Context, userID int64) ([]models.Payment, error) {
	args := m.Called(ctx, userID)
	payments, _ := args.Get(0).([]models.Payment)
	return payments, args.Error(1)
}

func (m *MockEventPublisher) Notify(event events.GroupEvent) error {
	args := m.Called(event)
	return args.Error(0)
}

func (m *MockEventPublisher) Close() {
	m.Called()
}

func (m *MockRecorder) RecordHTTPStatus(statusCode int) {
	m.Called(statusCode)
}

func (m *MockRecorder) RecordProjectionLoad(groupCount int) {
	m.Called(groupCount)
}

func (m *MockRecorder) RecordPublishFailure() {
	m.Called()
}
