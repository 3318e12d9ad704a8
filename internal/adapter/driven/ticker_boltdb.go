package driven

import (
	"context"
	"encoding/json"
	"errors"

	"go.etcd.io/bbolt"

	"tvstream/internal/ticker"
)

const tickerBucket = "ticker"

// TickerBoltDBRepository implements the TickerRepository port using
// BoltDB.
type TickerBoltDBRepository struct {
	db *bbolt.DB
}

// NewTickerBoltDBRepository creates a new BoltDB-backed ticker
// repository and initializes its bucket.
func NewTickerBoltDBRepository(db *bbolt.DB) (*TickerBoltDBRepository, error) {
	if db == nil {
		return nil, errors.New("db cannot be nil")
	}

	err := db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(tickerBucket))
		return err
	})
	if err != nil {
		return nil, err
	}

	return &TickerBoltDBRepository{db: db}, nil
}

// Save persists a new ticker message to BoltDB.
func (r *TickerBoltDBRepository) Save(ctx context.Context, m ticker.Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return r.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(tickerBucket))
		if bucket == nil {
			return errors.New("ticker bucket not found")
		}

		data, err := json.Marshal(m)
		if err != nil {
			return err
		}

		return bucket.Put(itob(m.ID), data)
	})
}

// Update replaces an existing ticker message in BoltDB.
func (r *TickerBoltDBRepository) Update(ctx context.Context, m ticker.Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return r.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(tickerBucket))
		if bucket == nil {
			return errors.New("ticker bucket not found")
		}

		key := itob(m.ID)
		if bucket.Get(key) == nil {
			return ticker.ErrMessageNotFound
		}

		data, err := json.Marshal(m)
		if err != nil {
			return err
		}

		return bucket.Put(key, data)
	})
}

// FindByID retrieves a ticker message by its ID from BoltDB.
func (r *TickerBoltDBRepository) FindByID(ctx context.Context, id int) (ticker.Message, error) {
	if err := ctx.Err(); err != nil {
		return ticker.Message{}, err
	}

	var m ticker.Message

	err := r.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(tickerBucket))
		if bucket == nil {
			return errors.New("ticker bucket not found")
		}

		data := bucket.Get(itob(id))
		if data == nil {
			return ticker.ErrMessageNotFound
		}

		return json.Unmarshal(data, &m)
	})

	return m, err
}

// FindAll retrieves all ticker messages from BoltDB in ascending ID
// order.
func (r *TickerBoltDBRepository) FindAll(ctx context.Context) ([]ticker.Message, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var messages []ticker.Message

	err := r.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(tickerBucket))
		if bucket == nil {
			return errors.New("ticker bucket not found")
		}

		return bucket.ForEach(func(_, data []byte) error {
			var m ticker.Message
			if err := json.Unmarshal(data, &m); err != nil {
				return err
			}
			messages = append(messages, m)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	return messages, nil
}

// Delete removes a ticker message by ID from BoltDB.
func (r *TickerBoltDBRepository) Delete(ctx context.Context, id int) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return r.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(tickerBucket))
		if bucket == nil {
			return errors.New("ticker bucket not found")
		}

		if bucket.Get(itob(id)) == nil {
			return ticker.ErrMessageNotFound
		}

		return bucket.Delete(itob(id))
	})
}
