package driven

import (
	"context"
	"encoding/json"
	"errors"

	"go.etcd.io/bbolt"

	"tvstream/internal/notification"
)

const notificationsBucket = "notifications"

// NotificationBoltDBRepository implements the NotificationRepository
// port using BoltDB.
type NotificationBoltDBRepository struct {
	db *bbolt.DB
}

// NewNotificationBoltDBRepository creates a new BoltDB-backed
// notification repository and initializes its bucket.
func NewNotificationBoltDBRepository(db *bbolt.DB) (*NotificationBoltDBRepository, error) {
	if db == nil {
		return nil, errors.New("db cannot be nil")
	}

	err := db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(notificationsBucket))
		return err
	})
	if err != nil {
		return nil, err
	}

	return &NotificationBoltDBRepository{db: db}, nil
}

// Save persists a new notification to BoltDB.
func (r *NotificationBoltDBRepository) Save(ctx context.Context, n notification.Notification) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return r.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(notificationsBucket))
		if bucket == nil {
			return errors.New("notifications bucket not found")
		}

		data, err := json.Marshal(n)
		if err != nil {
			return err
		}

		return bucket.Put(itob(n.ID), data)
	})
}

// Update replaces an existing notification in BoltDB.
func (r *NotificationBoltDBRepository) Update(ctx context.Context, n notification.Notification) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return r.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(notificationsBucket))
		if bucket == nil {
			return errors.New("notifications bucket not found")
		}

		key := itob(n.ID)
		if bucket.Get(key) == nil {
			return notification.ErrNotificationNotFound
		}

		data, err := json.Marshal(n)
		if err != nil {
			return err
		}

		return bucket.Put(key, data)
	})
}

// FindByID retrieves a notification by its ID from BoltDB.
func (r *NotificationBoltDBRepository) FindByID(ctx context.Context, id int) (notification.Notification, error) {
	if err := ctx.Err(); err != nil {
		return notification.Notification{}, err
	}

	var n notification.Notification

	err := r.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(notificationsBucket))
		if bucket == nil {
			return errors.New("notifications bucket not found")
		}

		data := bucket.Get(itob(id))
		if data == nil {
			return notification.ErrNotificationNotFound
		}

		return json.Unmarshal(data, &n)
	})

	return n, err
}

// FindAll retrieves all notifications from BoltDB in ascending ID
// order.
func (r *NotificationBoltDBRepository) FindAll(ctx context.Context) ([]notification.Notification, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var notifications []notification.Notification

	err := r.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(notificationsBucket))
		if bucket == nil {
			return errors.New("notifications bucket not found")
		}

		return bucket.ForEach(func(_, data []byte) error {
			var n notification.Notification
			if err := json.Unmarshal(data, &n); err != nil {
				return err
			}
			notifications = append(notifications, n)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	return notifications, nil
}

// Delete removes a notification by ID from BoltDB and returns it.
func (r *NotificationBoltDBRepository) Delete(ctx context.Context, id int) (notification.Notification, error) {
	if err := ctx.Err(); err != nil {
		return notification.Notification{}, err
	}

	var removed notification.Notification

	err := r.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(notificationsBucket))
		if bucket == nil {
			return errors.New("notifications bucket not found")
		}

		data := bucket.Get(itob(id))
		if data == nil {
			return notification.ErrNotificationNotFound
		}

		if err := json.Unmarshal(data, &removed); err != nil {
			return err
		}

		return bucket.Delete(itob(id))
	})

	return removed, err
}
