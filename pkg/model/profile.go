package model

import "time"

// Profile is the site owner's public profile. There is exactly one row;
// updates replace it in place.
type Profile struct {
	Name      string       `json:"name"`
	Headline  string       `json:"headline"`
	Bio       string       `json:"bio"`
	AvatarURL string       `json:"avatar_url,omitempty"`
	Skills    []Skill      `json:"skills,omitempty"`
	Services  []Service    `json:"services,omitempty"`
	Socials   []SocialLink `json:"socials,omitempty"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// Skill is a named proficiency shown on the home page.
type Skill struct {
	Name  string `json:"name"`
	Level int    `json:"level"` // 0-100
}

// Service is an offering listed in the services section.
type Service struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon,omitempty"`
}

// SocialLink points at an external profile (GitHub, LinkedIn, ...).
type SocialLink struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}
