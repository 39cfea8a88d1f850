package models

import "time"

type Service struct {
	ID          string   `gorm:"primaryKey;type:varchar(36)"        json:"id"`
	Title       string   `gorm:"not null"                           json:"title"`
	Description string   `gorm:"not null"                           json:"description"`
	Price       int64    `gorm:"not null"                           json:"price"`
	ImageURL    string   `gorm:"column:image_url;not null"          json:"imageUrl"`
	Category    string   `gorm:"not null;index"                     json:"category"`
	Features    []string `gorm:"serializer:json;type:text;not null" json:"features"`
	Badge       *string  `gorm:"default:null"                       json:"badge"`
	Seq         int64    `gorm:"not null;index"                     json:"-"`
}

type User struct {
	ID           string `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Username     string `gorm:"unique;not null"             json:"username"`
	PasswordHash string `gorm:"not null"                    json:"-"`
}

// BadgeName returns the badge label or "" when the service has none.
func (s Service) BadgeName() string {
	if s.Badge == nil {
		return ""
	}
	return *s.Badge
}

// NewBadge returns nil for an empty label so absence is never stored as "".
func NewBadge(label string) *string {
	if label == "" {
		return nil
	}
	return &label
}

// ContactEvent is published for every contact form submission.
type ContactEvent struct {
	Type      string    `json:"type"`
	Reference string    `json:"reference"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Service   string    `json:"service,omitempty"`
	At        time.Time `json:"at"`
}

const ContactReceived = "contact_received"
