package driven

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"errors"

	"go.etcd.io/bbolt"

	"tvstream/internal/stream"
)

const streamsBucket = "streams"

// itob encodes an int as a big-endian key so BoltDB iterates streams
// in ascending ID order.
func itob(id int) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, uint64(id))
	return b
}

// StreamBoltDBRepository implements the StreamRepository port using
// BoltDB.
type StreamBoltDBRepository struct {
	db *bbolt.DB
}

// NewStreamBoltDBRepository creates a new BoltDB-backed stream
// repository and initializes its bucket.
func NewStreamBoltDBRepository(db *bbolt.DB) (*StreamBoltDBRepository, error) {
	if db == nil {
		return nil, errors.New("db cannot be nil")
	}

	err := db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(streamsBucket))
		return err
	})
	if err != nil {
		return nil, err
	}

	return &StreamBoltDBRepository{db: db}, nil
}

// Save persists a new stream to BoltDB.
func (r *StreamBoltDBRepository) Save(ctx context.Context, s stream.Stream) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return r.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(streamsBucket))
		if bucket == nil {
			return errors.New("streams bucket not found")
		}

		key := itob(s.ID)
		if bucket.Get(key) != nil {
			return stream.ErrStreamAlreadyExists
		}

		data, err := json.Marshal(s)
		if err != nil {
			return err
		}

		return bucket.Put(key, data)
	})
}

// Update replaces an existing stream in BoltDB.
func (r *StreamBoltDBRepository) Update(ctx context.Context, s stream.Stream) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return r.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(streamsBucket))
		if bucket == nil {
			return errors.New("streams bucket not found")
		}

		key := itob(s.ID)
		if bucket.Get(key) == nil {
			return stream.ErrStreamNotFound
		}

		data, err := json.Marshal(s)
		if err != nil {
			return err
		}

		return bucket.Put(key, data)
	})
}

// FindByID retrieves a stream by its ID from BoltDB.
func (r *StreamBoltDBRepository) FindByID(ctx context.Context, id int) (stream.Stream, error) {
	if err := ctx.Err(); err != nil {
		return stream.Stream{}, err
	}

	var s stream.Stream

	err := r.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(streamsBucket))
		if bucket == nil {
			return errors.New("streams bucket not found")
		}

		data := bucket.Get(itob(id))
		if data == nil {
			return stream.ErrStreamNotFound
		}

		return json.Unmarshal(data, &s)
	})

	return s, err
}

// FindAll retrieves all streams from BoltDB in ascending ID order.
func (r *StreamBoltDBRepository) FindAll(ctx context.Context) ([]stream.Stream, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var streams []stream.Stream

	err := r.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(streamsBucket))
		if bucket == nil {
			return errors.New("streams bucket not found")
		}

		return bucket.ForEach(func(_, data []byte) error {
			var s stream.Stream
			if err := json.Unmarshal(data, &s); err != nil {
				return err
			}
			streams = append(streams, s)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	return streams, nil
}

// Delete removes a stream by ID from BoltDB and returns it.
func (r *StreamBoltDBRepository) Delete(ctx context.Context, id int) (stream.Stream, error) {
	if err := ctx.Err(); err != nil {
		return stream.Stream{}, err
	}

	var removed stream.Stream

	err := r.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(streamsBucket))
		if bucket == nil {
			return errors.New("streams bucket not found")
		}

		data := bucket.Get(itob(id))
		if data == nil {
			return stream.ErrStreamNotFound
		}

		if err := json.Unmarshal(data, &removed); err != nil {
			return err
		}

		return bucket.Delete(itob(id))
	})

	return removed, err
}
