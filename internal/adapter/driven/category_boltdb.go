package driven

import (
	"context"
	"encoding/json"
	"errors"

	"go.etcd.io/bbolt"

	"tvstream/internal/category"
)

const categoriesBucket = "categories"

// CategoryBoltDBRepository implements the CategoryRepository port using
// BoltDB.
type CategoryBoltDBRepository struct {
	db *bbolt.DB
}

// NewCategoryBoltDBRepository creates a new BoltDB-backed category
// repository and initializes its bucket.
func NewCategoryBoltDBRepository(db *bbolt.DB) (*CategoryBoltDBRepository, error) {
	if db == nil {
		return nil, errors.New("db cannot be nil")
	}

	err := db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(categoriesBucket))
		return err
	})
	if err != nil {
		return nil, err
	}

	return &CategoryBoltDBRepository{db: db}, nil
}

// channelDTO is used for JSON serialization of manual channels.
// Only canonical field names are stored; alias resolution happens
// before persistence.
type channelDTO struct {
	Title    string `json:"title"`
	URL      string `json:"url"`
	Logo     string `json:"logo"`
	Group    string `json:"group"`
	Language string `json:"language,omitempty"`
}

// categoryDTO is used for JSON serialization.
type categoryDTO struct {
	Key         string       `json:"key"`
	Label       string       `json:"label"`
	PlaylistURL string       `json:"playlistUrl"`
	Channels    []channelDTO `json:"channels"`
	Count       int          `json:"count"`
}

func toCategoryDTO(cat category.Category) categoryDTO {
	channels := make([]channelDTO, 0, len(cat.Channels()))
	for _, ch := range cat.Channels() {
		channels = append(channels, channelDTO{
			Title:    ch.Title(),
			URL:      ch.URL(),
			Logo:     ch.Logo(),
			Group:    ch.Group(),
			Language: ch.Language(),
		})
	}
	return categoryDTO{
		Key:         cat.Key(),
		Label:       cat.Label(),
		PlaylistURL: cat.PlaylistURL(),
		Channels:    channels,
		Count:       cat.Count(),
	}
}

func fromCategoryDTO(dto categoryDTO) (category.Category, error) {
	var channels []category.Channel
	for _, ch := range dto.Channels {
		rebuilt, err := category.NewChannel(ch.Title, ch.URL, ch.Logo, ch.Group, ch.Language)
		if err != nil {
			// Stored records always carry a URL; skip anything that
			// predates that guarantee instead of failing the read.
			continue
		}
		channels = append(channels, rebuilt)
	}
	return category.New(dto.Label, dto.Key, dto.PlaylistURL, channels, dto.Count)
}

// Save persists a new category to BoltDB.
func (r *CategoryBoltDBRepository) Save(ctx context.Context, cat category.Category) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return r.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(categoriesBucket))
		if bucket == nil {
			return errors.New("categories bucket not found")
		}

		key := []byte(cat.Key())
		if bucket.Get(key) != nil {
			return category.ErrCategoryAlreadyExists
		}

		data, err := json.Marshal(toCategoryDTO(cat))
		if err != nil {
			return err
		}

		return bucket.Put(key, data)
	})
}

// Update replaces an existing category in BoltDB.
func (r *CategoryBoltDBRepository) Update(ctx context.Context, cat category.Category) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return r.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(categoriesBucket))
		if bucket == nil {
			return errors.New("categories bucket not found")
		}

		key := []byte(cat.Key())
		if bucket.Get(key) == nil {
			return category.ErrCategoryNotFound
		}

		data, err := json.Marshal(toCategoryDTO(cat))
		if err != nil {
			return err
		}

		return bucket.Put(key, data)
	})
}

// FindByKey retrieves a category by its key from BoltDB.
func (r *CategoryBoltDBRepository) FindByKey(ctx context.Context, key string) (category.Category, error) {
	if err := ctx.Err(); err != nil {
		return category.Category{}, err
	}

	var cat category.Category

	err := r.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(categoriesBucket))
		if bucket == nil {
			return errors.New("categories bucket not found")
		}

		data := bucket.Get([]byte(key))
		if data == nil {
			return category.ErrCategoryNotFound
		}

		var dto categoryDTO
		if err := json.Unmarshal(data, &dto); err != nil {
			return err
		}

		reconstructed, err := fromCategoryDTO(dto)
		if err != nil {
			return err
		}

		cat = reconstructed
		return nil
	})

	return cat, err
}

// FindAll retrieves all categories from BoltDB in key order.
func (r *CategoryBoltDBRepository) FindAll(ctx context.Context) ([]category.Category, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var categories []category.Category

	err := r.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(categoriesBucket))
		if bucket == nil {
			return errors.New("categories bucket not found")
		}

		return bucket.ForEach(func(_, data []byte) error {
			var dto categoryDTO
			if err := json.Unmarshal(data, &dto); err != nil {
				return err
			}

			cat, err := fromCategoryDTO(dto)
			if err != nil {
				return err
			}

			categories = append(categories, cat)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	return categories, nil
}

// Delete removes a category by key from BoltDB and returns it.
func (r *CategoryBoltDBRepository) Delete(ctx context.Context, key string) (category.Category, error) {
	if err := ctx.Err(); err != nil {
		return category.Category{}, err
	}

	var removed category.Category

	err := r.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(categoriesBucket))
		if bucket == nil {
			return errors.New("categories bucket not found")
		}

		data := bucket.Get([]byte(key))
		if data == nil {
			return category.ErrCategoryNotFound
		}

		var dto categoryDTO
		if err := json.Unmarshal(data, &dto); err != nil {
			return err
		}

		cat, err := fromCategoryDTO(dto)
		if err != nil {
			return err
		}

		removed = cat
		return bucket.Delete([]byte(key))
	})

	return removed, err
}
