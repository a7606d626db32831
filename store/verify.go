// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/danielhkuo/nc-news/apierr"
	"github.com/danielhkuo/nc-news/db"
)

// Kind names an entity that other rows reference.
type Kind int

const (
	KindArticle Kind = iota
	KindUser
	KindTopic
)

var existsQueries = map[Kind]string{
	KindArticle: `SELECT 1 FROM articles WHERE article_id = $1`,
	KindUser:    `SELECT 1 FROM users WHERE username = $1`,
	KindTopic:   `SELECT 1 FROM topics WHERE slug = $1`,
}

func (k Kind) String() string {
	switch k {
	case KindArticle:
		return "article"
	case KindUser:
		return "user"
	case KindTopic:
		return "topic"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Check is one reference to verify.
type Check struct {
	Kind Kind
	Key  any
}

// Verify reports whether the entity of kind k identified by key exists.
// A missing entity is an apierr.ErrNotFound.
func (s *Store) Verify(ctx context.Context, k Kind, key any) error {
	stmt, ok := existsQueries[k]
	if !ok {
		return fmt.Errorf("verify: unknown kind %v", k)
	}

	var one int
	err := s.q.QueryRowContext(ctx, stmt, key).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %v %v", apierr.ErrNotFound, k, key)
	}
	if err != nil {
		return db.Classify(fmt.Errorf("verify %v: %w", k, err))
	}
	return nil
}

// VerifyAll runs checks in order and stops at the first failure.
func (s *Store) VerifyAll(ctx context.Context, checks ...Check) error {
	for _, c := range checks {
		if err := s.Verify(ctx, c.Kind, c.Key); err != nil {
			return err
		}
	}
	return nil
}
