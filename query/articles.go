// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package query

// commentCountColumn is recomputed on every read; it is never stored.
const commentCountColumn = "CAST(COUNT(comments.comment_id) AS INT) AS " + string(CommentCount)

// ArticleSummaryColumns is the listing projection; body is detail-only.
var ArticleSummaryColumns = []string{
	string(ArticleID),
	string(ArticleTitle),
	string(ArticleTopic),
	string(ArticleAuthor),
	string(ArticleCreatedAt),
	string(ArticleVotes),
	"articles.article_img_url",
	commentCountColumn,
}

// ArticleDetailColumns is ArticleSummaryColumns plus body.
var ArticleDetailColumns = append(append([]string(nil), ArticleSummaryColumns...), "articles.body")

// CommentColumns is the projection of a comment row.
var CommentColumns = []string{
	string(CommentID),
	string(CommentArticleID),
	"comments.body",
	"comments.author",
	"comments.votes",
	string(CommentCreatedAt),
}

func articlesWithCommentCount(columns []string) *Select {
	return From("articles", columns...).
		LeftJoin("comments", CommentArticleID, ArticleID)
}

// ArticleList builds the listing query for p. Ties are broken by
// ascending id so consecutive pages do not overlap.
func ArticleList(p ArticleParams) *Select {
	s := articlesWithCommentCount(ArticleSummaryColumns)
	if p.Topic != "" {
		s = s.Where(ArticleTopic, p.Topic)
	}
	s = s.GroupBy(ArticleID).OrderBy(p.Sort.Column(), p.Order)
	if p.Sort != SortArticleID {
		s = s.OrderBy(ArticleID, Asc)
	}
	s = s.Limit(p.Page.Limit)
	if p.Page.Requested {
		s = s.Offset(p.Page.Offset())
	}
	return s
}

// ArticleByID builds the single-article query, body included.
func ArticleByID(id int) *Select {
	return articlesWithCommentCount(ArticleDetailColumns).
		Where(ArticleID, id).
		GroupBy(ArticleID)
}

// CommentsByArticle builds the newest-first comment page of an article.
func CommentsByArticle(articleID int, p CommentParams) *Select {
	return From("comments", CommentColumns...).
		Where(CommentArticleID, articleID).
		OrderBy(CommentCreatedAt, Desc).
		OrderBy(CommentID, Desc).
		Limit(p.Page.Limit).
		Offset(p.Page.Offset())
}
