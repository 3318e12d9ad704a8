package ticker

import (
	"errors"
	"strings"
	"time"
)

// Domain errors
var (
	ErrEmptyText       = errors.New("ticker text cannot be empty")
	ErrMessageNotFound = errors.New("ticker message not found")
)

// Message is one scrolling announcement shown on the site. Inactive
// messages stay stored but are not served to users.
type Message struct {
	ID        int       `json:"id"`
	Text      string    `json:"text"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
}

// New validates a ticker message. The ID is assigned by the service.
func New(text string, active bool) (Message, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Message{}, ErrEmptyText
	}

	return Message{
		Text:      text,
		Active:    active,
		CreatedAt: time.Now().UTC(),
	}, nil
}
