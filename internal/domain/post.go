package domain

import "time"

// Post is the aggregate for published articles. Every post has exactly one
// author; AuthorID is the ownership fact consulted by permission checks.
type Post struct {
	ID         int64
	Title      string
	Content    string
	AuthorID   int64
	CategoryID *int64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
