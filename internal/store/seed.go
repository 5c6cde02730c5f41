package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/olegiv/aisite/internal/auth"
	"github.com/olegiv/aisite/internal/model"
)

// DefaultAdminUsername is used when no bootstrap username is configured.
const DefaultAdminUsername = "admin"

// SeedAdmin creates the bootstrap admin user on an empty users table.
// It does nothing when password is empty or any user already exists.
func SeedAdmin(ctx context.Context, db *sql.DB, username, password string) error {
	if password == "" {
		return nil
	}
	if username == "" {
		username = DefaultAdminUsername
	}

	queries := New(db)

	count, err := queries.CountUsers(ctx)
	if err != nil {
		return fmt.Errorf("counting users: %w", err)
	}
	if count > 0 {
		slog.Info("users already exist, skipping admin seed")
		return nil
	}

	passwordHash, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}

	now := time.Now().UTC()
	user, err := queries.CreateUser(ctx, CreateUserParams{
		Username:     username,
		PasswordHash: passwordHash,
		Role:         model.RoleAdmin,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return fmt.Errorf("creating admin user: %w", err)
	}

	slog.Info("created bootstrap admin user", "id", user.ID, "username", user.Username)
	return nil
}
