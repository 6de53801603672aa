package db

import (
	"context"
	"fmt"

	"github.com/cristiano1098/socializeAPP/models"
)

// userSelect reads users aliased as u. Balance is what the user is owed
// minus what they owe across every expense share.
const userSelect = `
	SELECT u.user_id, u.name, u.email, u.phone, u.photo,
		COALESCE((SELECT -SUM(ep.owed_amount) FROM expense_participants ep WHERE ep.user_id = u.user_id), 0) AS balance
	FROM users u`

// CreateUser inserts a new user and returns it with its generated ID. A new
// user has no expense shares, so its balance is zero.
func (s *SocializeDB) CreateUser(ctx context.Context, user models.User) (*models.User, error) {
	query := `
		INSERT INTO users (name, email, phone, photo)
		VALUES ($1, $2, $3, $4)
		RETURNING user_id`
	user.Balance = 0
	err := s.DB.QueryRowxContext(ctx, query,
		user.Name, user.Email, user.Phone, user.Photo).Scan(&user.UserID)
	if err != nil {
		return nil, fmt.Errorf("error inserting user %q: %w", user.Email, matchSentinelError(err))
	}

	s.Log.Debug().Int64("user_id", user.UserID).Msg("User created")
	return &user, nil
}

// GetUser retrieves a single user by ID.
func (s *SocializeDB) GetUser(ctx context.Context, userID int64) (*models.User, error) {
	var user models.User
	query := userSelect + ` WHERE u.user_id = $1`
	if err := s.DB.GetContext(ctx, &user, query, userID); err != nil {
		return nil, fmt.Errorf("error retrieving user %d: %w", userID, matchSentinelError(err))
	}
	return &user, nil
}

// GetUserByEmail retrieves a single user by email address.
func (s *SocializeDB) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	query := userSelect + ` WHERE u.email = $1`
	if err := s.DB.GetContext(ctx, &user, query, email); err != nil {
		return nil, fmt.Errorf("error retrieving user %q: %w", email, matchSentinelError(err))
	}
	return &user, nil
}

// ListUsers retrieves all users ordered by ID.
func (s *SocializeDB) ListUsers(ctx context.Context) ([]models.User, error) {
	users := []models.User{}
	query := userSelect + ` ORDER BY u.user_id`
	if err := s.DB.SelectContext(ctx, &users, query); err != nil {
		return nil, fmt.Errorf("error retrieving users: %w", err)
	}
	return users, nil
}

// UpdateUser overwrites the profile fields of an existing user. The balance
// is derived, so it is ignored here and read back with the rest of the row.
func (s *SocializeDB) UpdateUser(ctx context.Context, user models.User) (*models.User, error) {
	res, err := s.DB.ExecContext(ctx, `
		UPDATE users
		SET name = $1, email = $2, phone = $3, photo = $4
		WHERE user_id = $5`,
		user.Name, user.Email, user.Phone, user.Photo, user.UserID)
	if err := mustHaveAffectedRows(res, err); err != nil {
		return nil, fmt.Errorf("error updating user %d: %w", user.UserID, matchSentinelError(err))
	}

	s.Log.Debug().Int64("user_id", user.UserID).Msg("User updated")
	return s.GetUser(ctx, user.UserID)
}

// DeleteUser deletes a user. Its memberships are removed by the cascade.
func (s *SocializeDB) DeleteUser(ctx context.Context, userID int64) error {
	res, err := s.DB.ExecContext(ctx, `DELETE FROM users WHERE user_id = $1`, userID)
	if err := mustHaveAffectedRows(res, err); err != nil {
		return fmt.Errorf("error deleting user %d: %w", userID, matchSentinelError(err))
	}
	return nil
}
