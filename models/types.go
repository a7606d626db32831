package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/danielhkuo/nc-news/apierr"
)

// Domain types

type Topic struct {
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

type User struct {
	Username  string `json:"username"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url"`
}

// ArticleSummary is an article as listed; body is omitted.
type ArticleSummary struct {
	ArticleID     int       `json:"article_id"`
	Title         string    `json:"title"`
	Topic         string    `json:"topic"`
	Author        string    `json:"author"`
	CreatedAt     time.Time `json:"created_at"`
	Votes         int       `json:"votes"`
	ArticleImgURL string    `json:"article_img_url"`
	CommentCount  int       `json:"comment_count"`
}

type Article struct {
	ArticleSummary
	Body string `json:"body"`
}

type Comment struct {
	CommentID int       `json:"comment_id"`
	ArticleID int       `json:"article_id"`
	Body      string    `json:"body"`
	Author    string    `json:"author"`
	Votes     int       `json:"votes"`
	CreatedAt time.Time `json:"created_at"`
}

// Request types

type NewComment struct {
	Username string `json:"username"`
	Body     string `json:"body"`
}

func (c NewComment) Validate() error {
	if c.Username == "" || c.Body == "" {
		return fmt.Errorf("%w: username and body are required", apierr.ErrInvalidInput)
	}
	return nil
}

type NewArticle struct {
	Author        string `json:"author"`
	Title         string `json:"title"`
	Body          string `json:"body"`
	Topic         string `json:"topic"`
	ArticleImgURL string `json:"article_img_url"`
}

func (a NewArticle) Validate() error {
	if a.Author == "" || a.Title == "" || a.Body == "" || a.Topic == "" {
		return fmt.Errorf("%w: author, title, body and topic are required", apierr.ErrInvalidInput)
	}
	return nil
}

// VoteRequest carries a signed vote delta. json.Number keeps "1.5" and
// "1e3" from silently truncating.
type VoteRequest struct {
	IncVotes json.Number `json:"inc_votes"`
}

// Delta returns inc_votes as an integer.
func (v VoteRequest) Delta() (int, error) {
	if v.IncVotes == "" {
		return 0, fmt.Errorf("%w: inc_votes is required", apierr.ErrInvalidInput)
	}
	n, err := strconv.ParseInt(string(v.IncVotes), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: inc_votes %q is not an integer", apierr.ErrInvalidInput, v.IncVotes)
	}
	return int(n), nil
}

// Response types

type EndpointsResponse struct {
	Endpoints json.RawMessage `json:"endpoints"`
}

type TopicsResponse struct {
	Topics []Topic `json:"topics"`
}

type ArticlesResponse struct {
	Articles   []ArticleSummary `json:"articles"`
	TotalCount int              `json:"total_count"`
}

type ArticleResponse struct {
	Article Article `json:"article"`
}

type CommentsResponse struct {
	Comments []Comment `json:"comments"`
}

type CommentResponse struct {
	Comment Comment `json:"comment"`
}

type UsersResponse struct {
	Users []User `json:"users"`
}

type UserResponse struct {
	User User `json:"user"`
}

type ErrorResponse struct {
	Msg string `json:"msg"`
}
