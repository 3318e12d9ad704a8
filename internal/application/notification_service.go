package application

import (
	"context"
	"errors"

	"tvstream/internal/notification"
	"tvstream/internal/port/driven"
)

// NotificationService provides use cases for viewer notifications.
type NotificationService struct {
	repo driven.NotificationRepository
}

// NewNotificationService creates a new NotificationService with the
// given repository.
func NewNotificationService(repo driven.NotificationRepository) *NotificationService {
	return &NotificationService{repo: repo}
}

// ListAll retrieves every notification for the admin dashboard.
func (s *NotificationService) ListAll(ctx context.Context) ([]notification.Notification, error) {
	notifications, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if notifications == nil {
		notifications = []notification.Notification{}
	}
	return notifications, nil
}

// ListUnread retrieves the notifications a viewer has not read yet.
func (s *NotificationService) ListUnread(ctx context.Context) ([]notification.Notification, error) {
	all, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	unread := []notification.Notification{}
	for _, n := range all {
		if !n.Read {
			unread = append(unread, n)
		}
	}
	return unread, nil
}

// Create validates and persists a notification with the next
// sequential ID.
// Returns notification.ErrMissingFields when title or message is empty.
func (s *NotificationService) Create(ctx context.Context, title, message, typ, priority, link string) (notification.Notification, error) {
	n, err := notification.New(title, message, typ, priority, link)
	if err != nil {
		return notification.Notification{}, err
	}

	existing, err := s.repo.FindAll(ctx)
	if err != nil {
		return notification.Notification{}, err
	}

	maxID := 0
	for _, e := range existing {
		if e.ID > maxID {
			maxID = e.ID
		}
	}
	n.ID = maxID + 1

	if err := s.repo.Save(ctx, n); err != nil {
		return notification.Notification{}, err
	}

	return n, nil
}

// Delete removes a notification by ID and returns the removed value.
func (s *NotificationService) Delete(ctx context.Context, id int) (notification.Notification, error) {
	return s.repo.Delete(ctx, id)
}

// MarkRead flags a notification as read. Marking an unknown or
// already-read ID succeeds without effect.
func (s *NotificationService) MarkRead(ctx context.Context, id int) error {
	n, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, notification.ErrNotificationNotFound) {
			return nil
		}
		return err
	}

	if n.Read {
		return nil
	}

	n.Read = true
	return s.repo.Update(ctx, n)
}
