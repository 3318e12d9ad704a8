package notification

import (
	"errors"
	"strings"
	"time"
)

// Domain errors
var (
	ErrMissingFields        = errors.New("title and message are required")
	ErrNotificationNotFound = errors.New("notification not found")
)

// Notification is a site-wide announcement delivered to users until
// they mark it read.
type Notification struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	Priority  string    `json:"priority"`
	Link      string    `json:"link"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}

// New validates and defaults a notification. Type defaults to "info"
// and priority to "normal". The ID is assigned by the service.
func New(title, message, typ, priority, link string) (Notification, error) {
	title = strings.TrimSpace(title)
	message = strings.TrimSpace(message)
	if title == "" || message == "" {
		return Notification{}, ErrMissingFields
	}

	if typ == "" {
		typ = "info"
	}
	if priority == "" {
		priority = "normal"
	}

	return Notification{
		Title:     title,
		Message:   message,
		Type:      typ,
		Priority:  priority,
		Link:      link,
		CreatedAt: time.Now().UTC(),
	}, nil
}
