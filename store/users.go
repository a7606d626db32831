// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/danielhkuo/nc-news/db"
	"github.com/danielhkuo/nc-news/models"
)

func (s *Store) ListTopics(ctx context.Context) ([]models.Topic, error) {
	rows, err := s.q.QueryContext(ctx, `SELECT slug, description FROM topics ORDER BY slug`)
	if err != nil {
		return nil, db.Classify(fmt.Errorf("list topics: %w", err))
	}
	defer rows.Close()

	topics := []models.Topic{}
	for rows.Next() {
		var t models.Topic
		if err := rows.Scan(&t.Slug, &t.Description); err != nil {
			return nil, fmt.Errorf("scan topic: %w", err)
		}
		topics = append(topics, t)
	}
	return topics, rows.Err()
}

func (s *Store) ListUsers(ctx context.Context) ([]models.User, error) {
	rows, err := s.q.QueryContext(ctx, `SELECT username, name, avatar_url FROM users ORDER BY username`)
	if err != nil {
		return nil, db.Classify(fmt.Errorf("list users: %w", err))
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		var u models.User
		if err := scanUser(rows, &u); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// GetUser returns apierr.ErrNotFound for an unknown username.
func (s *Store) GetUser(ctx context.Context, username string) (models.User, error) {
	row := s.q.QueryRowContext(ctx,
		`SELECT username, name, avatar_url FROM users WHERE username = $1`, username)

	var u models.User
	if err := scanUser(row, &u); err != nil {
		return models.User{}, db.Classify(fmt.Errorf("user %q: %w", username, err))
	}
	return u, nil
}

func scanUser(sc scanner, u *models.User) error {
	var avatar sql.NullString
	err := sc.Scan(&u.Username, &u.Name, &avatar)
	u.AvatarURL = avatar.String
	return err
}
