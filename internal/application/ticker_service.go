package application

import (
	"context"

	"tvstream/internal/port/driven"
	"tvstream/internal/ticker"
)

// TickerService provides use cases for the scrolling-text messages.
type TickerService struct {
	repo driven.TickerRepository
}

// NewTickerService creates a new TickerService with the given
// repository.
func NewTickerService(repo driven.TickerRepository) *TickerService {
	return &TickerService{repo: repo}
}

// MessagePatch carries a partial update. Nil fields keep the stored
// value.
type MessagePatch struct {
	Text   *string `json:"text"`
	Active *bool   `json:"active"`
}

// ListAll retrieves every message for the admin dashboard.
func (s *TickerService) ListAll(ctx context.Context) ([]ticker.Message, error) {
	messages, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if messages == nil {
		messages = []ticker.Message{}
	}
	return messages, nil
}

// ListActive retrieves the messages currently shown to viewers.
func (s *TickerService) ListActive(ctx context.Context) ([]ticker.Message, error) {
	all, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	active := []ticker.Message{}
	for _, m := range all {
		if m.Active {
			active = append(active, m)
		}
	}
	return active, nil
}

// Create validates and persists a message with the next sequential ID.
// Returns ticker.ErrEmptyText when the text is blank.
func (s *TickerService) Create(ctx context.Context, text string, active bool) (ticker.Message, error) {
	m, err := ticker.New(text, active)
	if err != nil {
		return ticker.Message{}, err
	}

	existing, err := s.repo.FindAll(ctx)
	if err != nil {
		return ticker.Message{}, err
	}

	maxID := 0
	for _, e := range existing {
		if e.ID > maxID {
			maxID = e.ID
		}
	}
	m.ID = maxID + 1

	if err := s.repo.Save(ctx, m); err != nil {
		return ticker.Message{}, err
	}

	return m, nil
}

// Update applies a partial update to a stored message.
// Returns ticker.ErrMessageNotFound if no message has that ID.
func (s *TickerService) Update(ctx context.Context, id int, patch MessagePatch) (ticker.Message, error) {
	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return ticker.Message{}, err
	}

	if patch.Text != nil {
		current.Text = *patch.Text
	}
	if patch.Active != nil {
		current.Active = *patch.Active
	}

	if err := s.repo.Update(ctx, current); err != nil {
		return ticker.Message{}, err
	}

	return current, nil
}

// Delete removes a message by ID.
// Returns ticker.ErrMessageNotFound if no message has that ID.
func (s *TickerService) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}
