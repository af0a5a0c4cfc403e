package entity

import "time"

// Post is a single blog entry.
type Post struct {
	ID        int64
	Subject   string
	Content   string
	CreatedAt time.Time
}
