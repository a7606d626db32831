// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package query

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/danielhkuo/nc-news/apierr"
)

// DefaultLimit is the page size used when no limit is given.
const DefaultLimit = 10

// SortField enumerates the fields an article listing may be ordered by.
// The zero value is the default ordering, created_at.
type SortField int

const (
	SortCreatedAt SortField = iota
	SortArticleID
	SortTitle
	SortTopic
	SortAuthor
	SortVotes
	SortCommentCount
)

// article_id is kept as a synonym of id for existing clients
var sortFields = map[string]SortField{
	"created_at":    SortCreatedAt,
	"id":            SortArticleID,
	"article_id":    SortArticleID,
	"title":         SortTitle,
	"topic":         SortTopic,
	"author":        SortAuthor,
	"votes":         SortVotes,
	"comment_count": SortCommentCount,
}

// ParseSortField resolves a sort_by value. An empty value selects created_at.
func ParseSortField(s string) (SortField, error) {
	if s == "" {
		return SortCreatedAt, nil
	}
	f, ok := sortFields[s]
	if !ok {
		return 0, fmt.Errorf("%w: sort_by %q", apierr.ErrInvalidQuery, s)
	}
	return f, nil
}

// Column returns the expression a listing is ordered by.
// comment_count is the aggregate alias and is never table-qualified.
func (f SortField) Column() Column {
	switch f {
	case SortArticleID:
		return ArticleID
	case SortTitle:
		return ArticleTitle
	case SortTopic:
		return ArticleTopic
	case SortAuthor:
		return ArticleAuthor
	case SortVotes:
		return ArticleVotes
	case SortCommentCount:
		return CommentCount
	default:
		return ArticleCreatedAt
	}
}

func (f SortField) String() string {
	switch f {
	case SortArticleID:
		return "article_id"
	case SortTitle:
		return "title"
	case SortTopic:
		return "topic"
	case SortAuthor:
		return "author"
	case SortVotes:
		return "votes"
	case SortCommentCount:
		return "comment_count"
	default:
		return "created_at"
	}
}

// Order is a sort direction. The zero value is descending.
type Order int

const (
	Desc Order = iota
	Asc
)

// ParseOrder resolves an order value case-insensitively.
// An empty value selects descending.
func ParseOrder(s string) (Order, error) {
	switch strings.ToUpper(s) {
	case "", "DESC":
		return Desc, nil
	case "ASC":
		return Asc, nil
	default:
		return 0, fmt.Errorf("%w: order %q", apierr.ErrInvalidQuery, s)
	}
}

// SQL returns the ORDER BY keyword for the direction.
func (o Order) SQL() string {
	if o == Asc {
		return "ASC"
	}
	return "DESC"
}

// Page is a validated limit/page pair. Offset is Limit × Number.
type Page struct {
	Limit  int
	Number int

	// Requested is set when the caller supplied a page number.
	Requested bool
}

// ParsePage validates the raw limit and p query values.
func ParsePage(limit, page string) (Page, error) {
	p := Page{Limit: DefaultLimit}

	if limit != "" {
		n, err := parseCount("limit", limit)
		if err != nil {
			return Page{}, err
		}
		p.Limit = n
	}

	if page != "" {
		n, err := parseCount("p", page)
		if err != nil {
			return Page{}, err
		}
		p.Number = n
		p.Requested = true
	}

	return p, nil
}

func parseCount(name, raw string) (int, error) {
	n, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: %s %q", apierr.ErrInvalidQuery, name, raw)
	}
	return int(n), nil
}

// Offset returns the number of rows skipped before this page.
func (p Page) Offset() int {
	return p.Limit * p.Number
}

// Exhausted reports whether a result of n rows means the requested page
// lies past the last row. An empty first page is a legitimately empty
// result, not a missing page.
func (p Page) Exhausted(n int) bool {
	return n == 0 && p.Requested && p.Offset() > 0
}

// ArticleParams holds the validated query of GET /api/articles.
type ArticleParams struct {
	Sort  SortField
	Order Order
	Topic string
	Page  Page
}

// ParseArticleParams validates sort_by, order, topic, limit and p.
// Whether topic exists is checked against the store, not here.
func ParseArticleParams(v url.Values) (ArticleParams, error) {
	sort, err := ParseSortField(v.Get("sort_by"))
	if err != nil {
		return ArticleParams{}, err
	}
	order, err := ParseOrder(v.Get("order"))
	if err != nil {
		return ArticleParams{}, err
	}
	page, err := ParsePage(v.Get("limit"), v.Get("p"))
	if err != nil {
		return ArticleParams{}, err
	}

	return ArticleParams{
		Sort:  sort,
		Order: order,
		Topic: v.Get("topic"),
		Page:  page,
	}, nil
}

// CommentParams holds the validated query of GET /api/articles/{id}/comments.
type CommentParams struct {
	Page Page
}

// ParseCommentParams validates limit and p.
func ParseCommentParams(v url.Values) (CommentParams, error) {
	page, err := ParsePage(v.Get("limit"), v.Get("p"))
	if err != nil {
		return CommentParams{}, err
	}
	return CommentParams{Page: page}, nil
}
