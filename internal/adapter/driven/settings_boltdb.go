package driven

import (
	"context"
	"encoding/json"
	"errors"

	"go.etcd.io/bbolt"

	"tvstream/internal/settings"
)

const (
	settingsBucket = "settings"
	settingsKey    = "site"
)

// SettingsBoltDBRepository implements the SettingsRepository port
// using BoltDB. Settings are stored as a single record under a fixed
// key.
type SettingsBoltDBRepository struct {
	db *bbolt.DB
}

// NewSettingsBoltDBRepository creates a new BoltDB-backed settings
// repository and initializes its bucket.
func NewSettingsBoltDBRepository(db *bbolt.DB) (*SettingsBoltDBRepository, error) {
	if db == nil {
		return nil, errors.New("db cannot be nil")
	}

	err := db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(settingsBucket))
		return err
	})
	if err != nil {
		return nil, err
	}

	return &SettingsBoltDBRepository{db: db}, nil
}

// Get retrieves the stored site settings. It returns
// settings.ErrNotConfigured when nothing has been saved yet.
func (r *SettingsBoltDBRepository) Get(ctx context.Context) (settings.Settings, error) {
	if err := ctx.Err(); err != nil {
		return settings.Settings{}, err
	}

	var s settings.Settings

	err := r.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(settingsBucket))
		if bucket == nil {
			return errors.New("settings bucket not found")
		}

		data := bucket.Get([]byte(settingsKey))
		if data == nil {
			return settings.ErrNotConfigured
		}

		return json.Unmarshal(data, &s)
	})

	return s, err
}

// Save persists the site settings, replacing any previous record.
func (r *SettingsBoltDBRepository) Save(ctx context.Context, s settings.Settings) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return r.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(settingsBucket))
		if bucket == nil {
			return errors.New("settings bucket not found")
		}

		data, err := json.Marshal(s)
		if err != nil {
			return err
		}

		return bucket.Put([]byte(settingsKey), data)
	})
}
