// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// Fixture sizes
const (
	TopicCount   = 3
	UserCount    = 4
	ArticleCount = 13
	CommentCount = 18
)

// Well-known fixture rows
const (
	// Article 1 has 100 votes and the most comments.
	MostCommentedArticleID = 1
	MostCommentedCount     = 11
	// Article 2 has no comments and 0 votes.
	UncommentedArticleID = 2
	// Article 3 is the newest.
	NewestArticleID = 3
	// Comment 5 is the newest comment on article 1.
	NewestCommentOnMostCommented = 5
	// Article 5 is the only one in topic "cats".
	CatsArticleID = 5
)

type seedTopic struct{ slug, description string }

type seedUser struct{ username, name, avatarURL string }

type seedArticle struct {
	title, topic, author, body string
	createdAt                  time.Time
	votes                      int
	img                        string
}

type seedComment struct {
	articleID int
	author    string
	body      string
	votes     int
	createdAt time.Time
}

func at(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

var topics = []seedTopic{
	{"mitch", "The man, the Mitch, the legend"},
	{"cats", "Not dogs"},
	{"paper", "what books are made of"},
}

var users = []seedUser{
	{"butter_bridge", "jonny", "https://www.healthytherapies.com/wp-content/uploads/2016/06/Lime3.jpg"},
	{"icellusedkars", "sam", "https://avatars2.githubusercontent.com/u/24604688?s=460&v=4"},
	{"rogersop", "paul", "https://avatars2.githubusercontent.com/u/24394918?s=400&v=4"},
	{"lurker", "do_nothing", "https://www.golenbock.com/wp-content/uploads/2015/01/placeholder-user.png"},
}

const img = "https://images.pexels.com/photos/158651/news-newsletter-newspaper-information-158651.jpeg?w=700&h=700"

// Inserted in order, so article_id is the 1-based index.
var articles = []seedArticle{
	{"Living in the shadow of a great man", "mitch", "butter_bridge", "I find this existence challenging", at("2020-07-09T20:11:00Z"), 100, img},
	{"Sony Vaio; or, The Laptop", "mitch", "icellusedkars", "Call me Mitchell.", at("2020-10-16T05:03:00Z"), 0, img},
	{"Eight pug gifs that remind me of mitch", "mitch", "icellusedkars", "some gifs", at("2020-11-03T09:12:00Z"), 0, img},
	{"Student SUES Mitch!", "mitch", "rogersop", "We all love Mitch and his wonderful, unique typing style.", at("2020-05-06T01:14:00Z"), 0, img},
	{"UNCOVERED: catspiracy to bring down democracy", "cats", "rogersop", "Bastet walks amongst us, and the cats are taking arms!", at("2020-08-03T13:14:00Z"), 0, img},
	{"A", "mitch", "icellusedkars", "Delicious tin of cat food", at("2020-10-18T01:00:00Z"), 0, img},
	{"Z", "mitch", "icellusedkars", "I was hungry.", at("2020-01-07T14:08:00Z"), 0, img},
	{"Does Mitch predate civilisation?", "mitch", "icellusedkars", "Archaeologists have uncovered a gigantic statue.", at("2020-04-17T01:08:00Z"), 0, img},
	{"They're not exactly dogs, are they?", "mitch", "butter_bridge", "Well? Think about it.", at("2020-06-06T09:10:00Z"), 0, img},
	{"Seven inspirational thought leaders from Manchester UK", "mitch", "rogersop", "Who are we kidding, there is only one, and it's Mitch!", at("2020-05-14T04:15:00Z"), 0, img},
	{"Am I a cat?", "mitch", "icellusedkars", "Having run out of ideas for articles, I am staring at the wall.", at("2020-01-15T22:21:00Z"), 0, img},
	{"Moustache", "mitch", "butter_bridge", "Have you seen the size of that thing?", at("2020-10-11T11:24:00Z"), 0, img},
	{"Another article about Mitch", "mitch", "butter_bridge", "There will never be enough articles about Mitch!", at("2020-10-11T11:24:00Z"), 0, img},
}

// Inserted in order, so comment_id is the 1-based index.
var comments = []seedComment{
	{9, "butter_bridge", "Oh, I've got compassion running out of my nose, pal!", 16, at("2020-04-06T12:17:00Z")},
	{1, "butter_bridge", "The beautiful thing about treasure is that it exists.", 14, at("2020-10-31T03:03:00Z")},
	{1, "icellusedkars", "Replacing the quiet elegance of the dark suit and tie.", 100, at("2020-03-01T01:13:00Z")},
	{1, "icellusedkars", "I carry a log. Is it funny to you? It is not to me.", -100, at("2020-02-23T12:01:00Z")},
	{1, "icellusedkars", "I hate streaming noses", 0, at("2020-11-03T21:00:00Z")},
	{1, "icellusedkars", "I hate streaming eyes even more", 0, at("2020-04-11T21:02:00Z")},
	{1, "icellusedkars", "Lobster pot", 0, at("2020-05-15T20:19:00Z")},
	{1, "icellusedkars", "Delicious crackerbreads", 0, at("2020-04-14T20:19:00Z")},
	{1, "icellusedkars", "Superficially charming", 0, at("2020-01-01T03:08:00Z")},
	{3, "icellusedkars", "git push origin master", 0, at("2020-06-20T07:24:00Z")},
	{3, "icellusedkars", "Ambidextrous marsupial", 0, at("2020-09-19T23:10:00Z")},
	{1, "icellusedkars", "Massive intercranial brain haemorrhage", 0, at("2020-03-02T07:10:00Z")},
	{1, "icellusedkars", "Fruit pastilles", 0, at("2020-06-15T10:25:00Z")},
	{5, "icellusedkars", "What do you see? I have no idea where this will lead us.", 16, at("2020-06-09T05:00:00Z")},
	{5, "butter_bridge", "I am 100% sure that we're not completely sure.", 1, at("2020-11-24T00:08:00Z")},
	{6, "butter_bridge", "This is a bad article name", 1, at("2020-10-11T15:23:00Z")},
	{9, "icellusedkars", "The owls are not what they seem.", 20, at("2020-03-14T17:02:00Z")},
	{1, "butter_bridge", "This morning, I showered for nine minutes.", 16, at("2020-07-21T00:20:00Z")},
}

// Seed inserts the fixture into an empty schema.
func Seed(ctx context.Context, conn *sql.DB) error {
	for _, t := range topics {
		if _, err := conn.ExecContext(ctx,
			`INSERT INTO topics (slug, description) VALUES ($1, $2)`,
			t.slug, t.description); err != nil {
			return fmt.Errorf("seed topic %s: %w", t.slug, err)
		}
	}

	for _, u := range users {
		if _, err := conn.ExecContext(ctx,
			`INSERT INTO users (username, name, avatar_url) VALUES ($1, $2, $3)`,
			u.username, u.name, u.avatarURL); err != nil {
			return fmt.Errorf("seed user %s: %w", u.username, err)
		}
	}

	for i, a := range articles {
		if _, err := conn.ExecContext(ctx, `
			INSERT INTO articles (title, topic, author, body, created_at, votes, article_img_url)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`, a.title, a.topic, a.author, a.body, a.createdAt, a.votes, a.img); err != nil {
			return fmt.Errorf("seed article %d: %w", i+1, err)
		}
	}

	for i, c := range comments {
		if _, err := conn.ExecContext(ctx, `
			INSERT INTO comments (article_id, author, body, votes, created_at)
			VALUES ($1, $2, $3, $4, $5)
		`, c.articleID, c.author, c.body, c.votes, c.createdAt); err != nil {
			return fmt.Errorf("seed comment %d: %w", i+1, err)
		}
	}

	return nil
}
