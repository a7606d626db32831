// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/danielhkuo/nc-news/apierr"
	"github.com/danielhkuo/nc-news/db"
	"github.com/danielhkuo/nc-news/models"
	"github.com/danielhkuo/nc-news/query"
)

// ListComments returns one page of an article's comments, newest first.
// An unknown article is apierr.ErrNotFound; an article without comments
// yields an empty slice.
func (s *Store) ListComments(ctx context.Context, articleID int, p query.CommentParams) ([]models.Comment, error) {
	if err := s.Verify(ctx, KindArticle, articleID); err != nil {
		return nil, err
	}

	stmt, args := query.CommentsByArticle(articleID, p).Build()
	rows, err := s.q.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, db.Classify(fmt.Errorf("list comments: %w", err))
	}
	defer rows.Close()

	comments := []models.Comment{}
	for rows.Next() {
		var c models.Comment
		if err := scanComment(rows, &c); err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, db.Classify(fmt.Errorf("list comments: %w", err))
	}

	if p.Page.Exhausted(len(comments)) {
		return nil, fmt.Errorf("%w: page %d of comments", apierr.ErrNotFound, p.Page.Number)
	}

	return comments, nil
}

// CreateComment adds a comment to an article. Missing fields fail before
// anything is read; then the article and the author must exist.
func (s *Store) CreateComment(ctx context.Context, articleID int, nc models.NewComment) (models.Comment, error) {
	if err := nc.Validate(); err != nil {
		return models.Comment{}, err
	}

	if err := s.VerifyAll(ctx,
		Check{KindArticle, articleID},
		Check{KindUser, nc.Username},
	); err != nil {
		return models.Comment{}, err
	}

	var id int
	err := s.q.QueryRowContext(ctx, `
		INSERT INTO comments (article_id, author, body, votes, created_at)
		VALUES ($1, $2, $3, 0, $4)
		RETURNING comment_id
	`, articleID, nc.Username, nc.Body, now(ctx)).Scan(&id)
	if err != nil {
		return models.Comment{}, db.Classify(fmt.Errorf("insert comment: %w", err))
	}

	slog.Info("comment created", "comment_id", id, "article_id", articleID, "author", nc.Username)

	return s.getComment(ctx, id)
}

// UpdateCommentVotes adds delta to a comment's votes in one statement
// and returns the updated comment.
func (s *Store) UpdateCommentVotes(ctx context.Context, id, delta int) (models.Comment, error) {
	res, err := s.q.ExecContext(ctx,
		`UPDATE comments SET votes = votes + $1 WHERE comment_id = $2`, delta, id)
	if err := affectedOne(res, err, "comment", id); err != nil {
		return models.Comment{}, err
	}

	return s.getComment(ctx, id)
}

// DeleteComment removes a comment. Deleting an absent comment is
// apierr.ErrNotFound.
func (s *Store) DeleteComment(ctx context.Context, id int) error {
	res, err := s.q.ExecContext(ctx, `DELETE FROM comments WHERE comment_id = $1`, id)
	if err := affectedOne(res, err, "comment", id); err != nil {
		return err
	}

	slog.Info("comment deleted", "comment_id", id)
	return nil
}

func (s *Store) getComment(ctx context.Context, id int) (models.Comment, error) {
	stmt, args := query.From("comments", query.CommentColumns...).
		Where(query.CommentID, id).
		Build()

	var c models.Comment
	if err := scanComment(s.q.QueryRowContext(ctx, stmt, args...), &c); err != nil {
		return models.Comment{}, db.Classify(fmt.Errorf("comment %d: %w", id, err))
	}
	return c, nil
}

func scanComment(sc scanner, c *models.Comment) error {
	return sc.Scan(&c.CommentID, &c.ArticleID, &c.Body, &c.Author, &c.Votes, &c.CreatedAt)
}
