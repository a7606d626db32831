// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/danielhkuo/nc-news/apierr"
	"github.com/danielhkuo/nc-news/db"
	"github.com/danielhkuo/nc-news/models"
	"github.com/danielhkuo/nc-news/query"
)

// ListArticles returns one page of articles with their comment counts.
// An unknown topic, or an empty page past the first, is apierr.ErrNotFound.
// A known topic without articles yields an empty slice.
func (s *Store) ListArticles(ctx context.Context, p query.ArticleParams) ([]models.ArticleSummary, error) {
	if p.Topic != "" {
		if err := s.Verify(ctx, KindTopic, p.Topic); err != nil {
			return nil, err
		}
	}

	stmt, args := query.ArticleList(p).Build()
	rows, err := s.q.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, db.Classify(fmt.Errorf("list articles: %w", err))
	}
	defer rows.Close()

	articles := []models.ArticleSummary{}
	for rows.Next() {
		var a models.ArticleSummary
		if err := scanArticleSummary(rows, &a); err != nil {
			return nil, fmt.Errorf("scan article: %w", err)
		}
		articles = append(articles, a)
	}
	if err := rows.Err(); err != nil {
		return nil, db.Classify(fmt.Errorf("list articles: %w", err))
	}

	if p.Page.Exhausted(len(articles)) {
		return nil, fmt.Errorf("%w: page %d of articles", apierr.ErrNotFound, p.Page.Number)
	}

	return articles, nil
}

// GetArticle returns a single article with its body and comment count.
func (s *Store) GetArticle(ctx context.Context, id int) (models.Article, error) {
	stmt, args := query.ArticleByID(id).Build()

	var a models.Article
	if err := scanArticle(s.q.QueryRowContext(ctx, stmt, args...), &a); err != nil {
		return models.Article{}, db.Classify(fmt.Errorf("article %d: %w", id, err))
	}
	return a, nil
}

// CreateArticle inserts an article once its author and topic are known
// to exist, and returns it with a comment_count of 0.
func (s *Store) CreateArticle(ctx context.Context, na models.NewArticle) (models.Article, error) {
	if err := na.Validate(); err != nil {
		return models.Article{}, err
	}

	if err := s.VerifyAll(ctx,
		Check{KindUser, na.Author},
		Check{KindTopic, na.Topic},
	); err != nil {
		return models.Article{}, err
	}

	img := na.ArticleImgURL
	if img == "" {
		img = db.DefaultArticleImageURL
	}

	var id int
	err := s.q.QueryRowContext(ctx, `
		INSERT INTO articles (title, topic, author, body, created_at, votes, article_img_url)
		VALUES ($1, $2, $3, $4, $5, 0, $6)
		RETURNING article_id
	`, na.Title, na.Topic, na.Author, na.Body, now(ctx), img).Scan(&id)
	if err != nil {
		return models.Article{}, db.Classify(fmt.Errorf("insert article: %w", err))
	}

	slog.Info("article created", "article_id", id, "author", na.Author, "topic", na.Topic)

	a, err := s.GetArticle(ctx, id)
	if err != nil {
		return models.Article{}, err
	}
	a.CommentCount = 0
	return a, nil
}

// UpdateArticleVotes adds delta to an article's votes in one statement
// and returns the updated article.
func (s *Store) UpdateArticleVotes(ctx context.Context, id, delta int) (models.Article, error) {
	res, err := s.q.ExecContext(ctx,
		`UPDATE articles SET votes = votes + $1 WHERE article_id = $2`, delta, id)
	if err := affectedOne(res, err, "article", id); err != nil {
		return models.Article{}, err
	}

	return s.GetArticle(ctx, id)
}

func scanArticleSummary(sc scanner, a *models.ArticleSummary) error {
	var img sql.NullString
	err := sc.Scan(&a.ArticleID, &a.Title, &a.Topic, &a.Author, &a.CreatedAt, &a.Votes, &img, &a.CommentCount)
	a.ArticleImgURL = img.String
	return err
}

func scanArticle(sc scanner, a *models.Article) error {
	var img sql.NullString
	err := sc.Scan(&a.ArticleID, &a.Title, &a.Topic, &a.Author, &a.CreatedAt, &a.Votes, &img, &a.CommentCount, &a.Body)
	a.ArticleImgURL = img.String
	return err
}

// affectedOne turns an UPDATE or DELETE that touched no row into
// apierr.ErrNotFound.
func affectedOne(res sql.Result, err error, what string, id int) error {
	if err != nil {
		return db.Classify(fmt.Errorf("%s %d: %w", what, id, err))
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s %d: %w", what, id, err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s %d", apierr.ErrNotFound, what, id)
	}
	return nil
}
