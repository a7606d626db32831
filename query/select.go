// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package query

import (
	"strconv"
	"strings"
)

// Column is a column reference usable in WHERE, GROUP BY and ORDER BY
// clauses. Only the constants below are ever interpolated into SQL; values
// always travel as bind parameters.
type Column string

const (
	ArticleID        Column = "articles.article_id"
	ArticleTitle     Column = "articles.title"
	ArticleTopic     Column = "articles.topic"
	ArticleAuthor    Column = "articles.author"
	ArticleCreatedAt Column = "articles.created_at"
	ArticleVotes     Column = "articles.votes"
	CommentCount     Column = "comment_count"

	CommentID        Column = "comments.comment_id"
	CommentArticleID Column = "comments.article_id"
	CommentCreatedAt Column = "comments.created_at"
)

type orderTerm struct {
	col   Column
	order Order
}

// Select is a pending SELECT statement.
// All builder methods return a new Select; the receiver is never modified.
type Select struct {
	columns []string
	from    string
	joins   []string
	wheres  []Column
	args    []any
	groupBy []Column
	orderBy []orderTerm
	limit   *int
	offset  *int
}

// From starts a SELECT of columns from table.
func From(table string, columns ...string) *Select {
	return &Select{from: table, columns: columns}
}

func (s *Select) clone() *Select {
	s2 := *s
	s2.columns = append([]string(nil), s.columns...)
	s2.joins = append([]string(nil), s.joins...)
	s2.wheres = append([]Column(nil), s.wheres...)
	s2.args = append([]any(nil), s.args...)
	s2.groupBy = append([]Column(nil), s.groupBy...)
	s2.orderBy = append([]orderTerm(nil), s.orderBy...)
	return &s2
}

// LeftJoin adds a LEFT OUTER JOIN of table on left = right.
func (s *Select) LeftJoin(table string, left, right Column) *Select {
	s2 := s.clone()
	s2.joins = append(s2.joins, "LEFT OUTER JOIN "+table+" ON "+string(left)+" = "+string(right))
	return s2
}

// Where adds an equality filter. Filters are joined with AND.
func (s *Select) Where(col Column, value any) *Select {
	s2 := s.clone()
	s2.wheres = append(s2.wheres, col)
	s2.args = append(s2.args, value)
	return s2
}

func (s *Select) GroupBy(col Column) *Select {
	s2 := s.clone()
	s2.groupBy = append(s2.groupBy, col)
	return s2
}

func (s *Select) OrderBy(col Column, o Order) *Select {
	s2 := s.clone()
	s2.orderBy = append(s2.orderBy, orderTerm{col, o})
	return s2
}

func (s *Select) Limit(n int) *Select {
	s2 := s.clone()
	s2.limit = &n
	return s2
}

func (s *Select) Offset(n int) *Select {
	s2 := s.clone()
	s2.offset = &n
	return s2
}

// Build renders the statement with $n placeholders and returns its args.
func (s *Select) Build() (string, []any) {
	var b strings.Builder
	args := append([]any(nil), s.args...)

	b.WriteString("SELECT ")
	b.WriteString(strings.Join(s.columns, ", "))
	b.WriteString(" FROM ")
	b.WriteString(s.from)

	for _, j := range s.joins {
		b.WriteByte(' ')
		b.WriteString(j)
	}

	for i, col := range s.wheres {
		if i == 0 {
			b.WriteString(" WHERE ")
		} else {
			b.WriteString(" AND ")
		}
		b.WriteString(string(col))
		b.WriteString(" = ?")
	}

	if len(s.groupBy) > 0 {
		cols := make([]string, len(s.groupBy))
		for i, c := range s.groupBy {
			cols[i] = string(c)
		}
		b.WriteString(" GROUP BY ")
		b.WriteString(strings.Join(cols, ", "))
	}

	if len(s.orderBy) > 0 {
		terms := make([]string, len(s.orderBy))
		for i, t := range s.orderBy {
			terms[i] = string(t.col) + " " + t.order.SQL()
		}
		b.WriteString(" ORDER BY ")
		b.WriteString(strings.Join(terms, ", "))
	}

	if s.limit != nil {
		b.WriteString(" LIMIT ?")
		args = append(args, *s.limit)
	}
	if s.offset != nil {
		b.WriteString(" OFFSET ?")
		args = append(args, *s.offset)
	}

	return rewrite(b.String()), args
}

// rewrite converts ? placeholders to $1, $2, ... which both PostgreSQL
// and SQLite accept.
func rewrite(query string) string {
	var b strings.Builder
	b.Grow(len(query) + 8)
	idx := 1
	for i := range len(query) {
		if query[i] == '?' {
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(idx))
			idx++
		} else {
			b.WriteByte(query[i])
		}
	}
	return b.String()
}
