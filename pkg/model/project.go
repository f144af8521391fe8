package model

import "time"

// Project is a portfolio entry.
type Project struct {
	ID        string    `json:"id"`
	Slug      string    `json:"slug"`
	Title     string    `json:"title"`
	Summary   string    `json:"summary"`
	Body      string    `json:"body,omitempty"`
	ImageURL  string    `json:"image_url,omitempty"`
	Tags      []string  `json:"tags,omitempty"`
	RepoURL   string    `json:"repo_url,omitempty"`
	LiveURL   string    `json:"live_url,omitempty"`
	Featured  bool      `json:"featured"`
	SortOrder int       `json:"sort_order"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Client is a testimonial from a past client or collaborator.
type Client struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Company   string    `json:"company,omitempty"`
	Quote     string    `json:"quote"`
	AvatarURL string    `json:"avatar_url,omitempty"`
	Website   string    `json:"website,omitempty"`
	SortOrder int       `json:"sort_order"`
	CreatedAt time.Time `json:"created_at"`
}
