// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/olegiv/aisite/internal/auth"
	"github.com/olegiv/aisite/internal/model"
	"github.com/olegiv/aisite/internal/store"
)

// ErrInvalidCredentials is returned for a failed login, whatever the cause.
var ErrInvalidCredentials = errors.New("invalid username or password")

// UserService authenticates staff and resolves session users.
type UserService struct {
	queries *store.Queries
	logger  *slog.Logger
	now     clock
}

// NewUserService creates a new UserService.
func NewUserService(db *sql.DB, logger *slog.Logger) *UserService {
	return &UserService{queries: store.New(db), logger: logger, now: utcNow}
}

// Authenticate checks a username and password. Unknown users, wrong
// passwords and inactive accounts all yield ErrInvalidCredentials.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (store.User, error) {
	user, err := s.queries.GetUserByUsername(ctx, username)
	if err != nil {
		if store.IsNotFound(err) {
			auth.SpendCheckTime(password)
			return store.User{}, ErrInvalidCredentials
		}
		return store.User{}, fmt.Errorf("loading user: %w", err)
	}

	ok, err := auth.CheckPassword(password, user.PasswordHash)
	if err != nil {
		s.logger.Error("password check error", "error", err, "user_id", user.ID)
		return store.User{}, ErrInvalidCredentials
	}
	if !ok || !user.IsActive {
		return store.User{}, ErrInvalidCredentials
	}

	now := s.now()
	if err := s.queries.UpdateUserLastLogin(ctx, store.UpdateUserLastLoginParams{
		LastLoginAt: sql.NullTime{Time: now, Valid: true},
		ID:          user.ID,
	}); err != nil {
		s.logger.Warn("failed to record last login", "error", err, "user_id", user.ID)
	}
	user.LastLoginAt = sql.NullTime{Time: now, Valid: true}

	if auth.NeedsRehash(user.PasswordHash) {
		if hash, err := auth.HashPassword(password); err == nil {
			if err := s.queries.UpdateUserPassword(ctx, store.UpdateUserPasswordParams{
				PasswordHash: hash,
				UpdatedAt:    now,
				ID:           user.ID,
			}); err != nil {
				s.logger.Warn("failed to rehash password", "error", err, "user_id", user.ID)
			}
		}
	}
	return user, nil
}

// Get returns an active user by id. Inactive users are reported as not
// found so that their sessions stop working.
func (s *UserService) Get(ctx context.Context, id int64) (store.User, error) {
	user, err := s.queries.GetUserByID(ctx, id)
	if err != nil {
		return store.User{}, mapStoreErr(err)
	}
	if !user.IsActive {
		return store.User{}, model.ErrNotFound
	}
	return user, nil
}

// ListUsers returns every user.
func (s *AdminService) ListUsers(ctx context.Context, actor Actor) ([]store.User, error) {
	if !model.CanEdit(actor.Role, model.EntityUser) {
		return nil, model.ErrUnauthorized
	}
	return s.queries.ListUsers(ctx)
}

// CreateUser creates a staff user with an argon2id password hash.
func (s *AdminService) CreateUser(ctx context.Context, actor Actor, in model.UserInput) (store.User, error) {
	var out store.User
	err := s.mutate(ctx, actor, model.OpCreate, model.EntityUser, func(q *store.Queries) (int64, string, error) {
		if err := in.Validate(true); err != nil {
			return 0, "", err
		}
		hash, err := auth.HashPassword(in.Password)
		if err != nil {
			return 0, "", fmt.Errorf("hashing password: %w", err)
		}
		now := s.now()
		out, err = q.CreateUser(ctx, store.CreateUserParams{
			Username:     in.Username,
			Email:        in.Email,
			FirstName:    in.FirstName,
			LastName:     in.LastName,
			PasswordHash: hash,
			Role:         in.Role,
			IsActive:     in.IsActive,
			Phone:        in.Phone,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
		return out.ID, out.Username, err
	})
	return out, err
}

// UpdateUser replaces a user's profile. The password changes only when a
// new one is given.
func (s *AdminService) UpdateUser(ctx context.Context, actor Actor, id int64, in model.UserInput) (store.User, error) {
	var out store.User
	err := s.mutate(ctx, actor, model.OpEdit, model.EntityUser, func(q *store.Queries) (int64, string, error) {
		if err := in.Validate(false); err != nil {
			return 0, "", err
		}
		if id == actor.UserID && (in.Role != model.RoleAdmin || !in.IsActive) {
			return 0, "", model.NewValidationError("role", "You cannot demote or deactivate your own account.")
		}
		now := s.now()
		var err error
		out, err = q.UpdateUser(ctx, store.UpdateUserParams{
			Username:  in.Username,
			Email:     in.Email,
			FirstName: in.FirstName,
			LastName:  in.LastName,
			Role:      in.Role,
			IsActive:  in.IsActive,
			Phone:     in.Phone,
			UpdatedAt: now,
			ID:        id,
		})
		if err != nil || in.Password == "" {
			return out.ID, out.Username, err
		}
		hash, err := auth.HashPassword(in.Password)
		if err != nil {
			return 0, "", fmt.Errorf("hashing password: %w", err)
		}
		err = q.UpdateUserPassword(ctx, store.UpdateUserPasswordParams{PasswordHash: hash, UpdatedAt: now, ID: id})
		return out.ID, out.Username, err
	})
	return out, err
}

// DeleteUser deletes a user. Records they authored keep a NULL author.
func (s *AdminService) DeleteUser(ctx context.Context, actor Actor, id int64) error {
	return s.mutate(ctx, actor, model.OpDelete, model.EntityUser, func(q *store.Queries) (int64, string, error) {
		if id == actor.UserID {
			return 0, "", model.NewValidationError("id", "You cannot delete your own account.")
		}
		user, err := q.GetUserByID(ctx, id)
		if err != nil {
			return 0, "", err
		}
		return user.ID, user.Username, requireRows(q.DeleteUser(ctx, id))
	})
}
