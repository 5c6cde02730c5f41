// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package service holds the site's business rules: the settings singleton,
// public content queries, visitor intake and the audited admin layer.
package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/olegiv/aisite/internal/model"
	"github.com/olegiv/aisite/internal/store"
)

// Actor is the authenticated staff member performing an admin operation.
type Actor struct {
	UserID   int64
	Username string
	Role     string
	IP       string
}

// clock is overridden in tests.
type clock func() time.Time

func utcNow() time.Time { return time.Now().UTC() }

// mapStoreErr translates driver errors into the model taxonomy.
func mapStoreErr(err error) error {
	switch {
	case err == nil:
		return nil
	case store.IsNotFound(err):
		return model.ErrNotFound
	case store.IsUniqueViolation(err), store.IsCheckViolation(err):
		return fmt.Errorf("%w: %v", model.ErrConstraintViolation, err)
	}
	return err
}

// requireRows turns a zero rows-affected result into ErrNotFound.
func requireRows(n int64, err error) error {
	if err != nil {
		return mapStoreErr(err)
	}
	if n == 0 {
		return model.ErrNotFound
	}
	return nil
}

// inTx runs fn in a transaction and commits when fn succeeds.
func inTx(ctx context.Context, db *sql.DB, fn func(q *store.Queries) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := fn(store.New(db).WithTx(tx)); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// IsNotFound reports whether err is or wraps model.ErrNotFound.
func IsNotFound(err error) bool { return errors.Is(err, model.ErrNotFound) }
