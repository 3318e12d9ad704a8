package application

import (
	"context"
	"errors"
	"testing"

	"tvstream/internal/ticker"
)

func TestTickerService_ListActive(t *testing.T) {
	ctx := context.Background()

	repo := &mockTickerRepository{
		FindAllFunc: func(ctx context.Context) ([]ticker.Message, error) {
			return []ticker.Message{
				{ID: 1, Text: "Breaking news", Active: true},
				{ID: 2, Text: "Draft", Active: false},
			}, nil
		},
	}

	service := NewTickerService(repo)

	active, err := service.ListActive(ctx)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if len(active) != 1 {
		t.Fatalf("expected 1 active message, got %d", len(active))
	}
	if active[0].Text != "Breaking news" {
		t.Errorf("expected Breaking news, got %v", active[0].Text)
	}
}

func TestTickerService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("assigns next sequential ID", func(t *testing.T) {
		var saved ticker.Message
		repo := &mockTickerRepository{
			FindAllFunc: func(ctx context.Context) ([]ticker.Message, error) {
				return []ticker.Message{{ID: 2}}, nil
			},
			SaveFunc: func(ctx context.Context, m ticker.Message) error {
				saved = m
				return nil
			},
		}

		service := NewTickerService(repo)

		created, err := service.Create(ctx, "Welcome back", true)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if created.ID != 3 {
			t.Errorf("expected ID 3, got %d", created.ID)
		}
		if saved.Text != "Welcome back" {
			t.Errorf("expected saved text, got %v", saved.Text)
		}
	})

	t.Run("rejects empty text", func(t *testing.T) {
		service := NewTickerService(&mockTickerRepository{})

		_, err := service.Create(ctx, "   ", true)
		if !errors.Is(err, ticker.ErrEmptyText) {
			t.Errorf("expected ErrEmptyText, got %v", err)
		}
	})
}

func TestTickerService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("applies only provided fields", func(t *testing.T) {
		repo := &mockTickerRepository{
			FindByIDFunc: func(ctx context.Context, id int) (ticker.Message, error) {
				return ticker.Message{ID: id, Text: "Original", Active: true}, nil
			},
			UpdateFunc: func(ctx context.Context, m ticker.Message) error {
				return nil
			},
		}

		service := NewTickerService(repo)

		active := false
		updated, err := service.Update(ctx, 1, MessagePatch{Active: &active})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if updated.Active {
			t.Error("expected message to be deactivated")
		}
		if updated.Text != "Original" {
			t.Errorf("expected untouched text, got %v", updated.Text)
		}
	})

	t.Run("returns error for missing message", func(t *testing.T) {
		repo := &mockTickerRepository{
			FindByIDFunc: func(ctx context.Context, id int) (ticker.Message, error) {
				return ticker.Message{}, ticker.ErrMessageNotFound
			},
		}

		service := NewTickerService(repo)

		_, err := service.Update(ctx, 42, MessagePatch{})
		if !errors.Is(err, ticker.ErrMessageNotFound) {
			t.Errorf("expected ErrMessageNotFound, got %v", err)
		}
	})
}
