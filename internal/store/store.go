// Package store implements a generic indexed key-value repository over
// named entity collections. Entities are persisted as JSON documents in a
// single records table; one generic implementation is instantiated per
// collection. The store guarantees nothing about iteration order and
// nothing about atomicity across collections: callers sort, and
// multi-entity operations are sequences of independent single-key writes.
package store

import (
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"fintrack/internal/models"
	"fintrack/internal/uuid"
)

// ErrNotFound is returned when an id has no record in the collection.
var ErrNotFound = errors.New("store: record not found")

// Entity constrains collection element pointers: every stored entity
// exposes its key and accepts a generated one.
type Entity[T any] interface {
	*T
	EntityID() string
	SetEntityID(id string)
}

// Collection is a typed view over one named collection of records.
type Collection[T any, P Entity[T]] struct {
	db   *gorm.DB
	name string
}

// NewCollection creates a typed collection bound to the given name.
func NewCollection[T any, P Entity[T]](db *gorm.DB, name string) *Collection[T, P] {
	return &Collection[T, P]{db: db, name: name}
}

// Name returns the collection name.
func (c *Collection[T, P]) Name() string { return c.name }

// Create stores a new entity, assigning a UUIDv7 key when the entity does
// not carry one, and adds it to the collection index.
func (c *Collection[T, P]) Create(item P) error {
	if item.EntityID() == "" {
		item.SetEntityID(uuid.New())
	}

	data, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("store: encoding %s record: %w", c.name, err)
	}

	rec := Record{Collection: c.name, Key: item.EntityID(), Data: data}
	if err := c.db.Create(&rec).Error; err != nil {
		return fmt.Errorf("store: creating %s record: %w", c.name, err)
	}
	return nil
}

// List returns every entity in the collection. Order is unspecified.
func (c *Collection[T, P]) List() ([]T, error) {
	var recs []Record
	if err := c.db.Where("collection = ?", c.name).Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("store: listing %s records: %w", c.name, err)
	}

	items := make([]T, 0, len(recs))
	for _, rec := range recs {
		var item T
		if err := json.Unmarshal(rec.Data, &item); err != nil {
			return nil, fmt.Errorf("store: decoding %s record %s: %w", c.name, rec.Key, err)
		}
		items = append(items, item)
	}
	return items, nil
}

// Get loads a single entity by id. Returns ErrNotFound when absent.
func (c *Collection[T, P]) Get(id string) (P, error) {
	rec, err := c.record(id)
	if err != nil {
		return nil, err
	}

	item := P(new(T))
	if err := json.Unmarshal(rec.Data, item); err != nil {
		return nil, fmt.Errorf("store: decoding %s record %s: %w", c.name, id, err)
	}
	return item, nil
}

// Exists reports whether an id has a record in the collection.
func (c *Collection[T, P]) Exists(id string) (bool, error) {
	var count int64
	err := c.db.Model(&Record{}).
		Where("collection = ? AND key = ?", c.name, id).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("store: checking %s record %s: %w", c.name, id, err)
	}
	return count > 0, nil
}

// Patch merges partial fields into the stored entity and returns the
// updated value. The id field is immutable and silently skipped. Returns
// ErrNotFound when the id has no record.
func (c *Collection[T, P]) Patch(id string, fields map[string]any) (P, error) {
	rec, err := c.record(id)
	if err != nil {
		return nil, err
	}

	var merged map[string]any
	if err := json.Unmarshal(rec.Data, &merged); err != nil {
		return nil, fmt.Errorf("store: decoding %s record %s: %w", c.name, id, err)
	}
	for k, v := range fields {
		if k == "id" {
			continue
		}
		merged[k] = v
	}

	raw, err := json.Marshal(merged)
	if err != nil {
		return nil, fmt.Errorf("store: encoding %s patch for %s: %w", c.name, id, err)
	}
	item := P(new(T))
	if err := json.Unmarshal(raw, item); err != nil {
		return nil, fmt.Errorf("store: applying %s patch for %s: %w", c.name, id, err)
	}

	// Re-marshal the typed entity so the stored document stays canonical.
	data, err := json.Marshal(item)
	if err != nil {
		return nil, fmt.Errorf("store: encoding %s record %s: %w", c.name, id, err)
	}
	err = c.db.Model(&Record{}).
		Where("collection = ? AND key = ?", c.name, id).
		Update("data", data).Error
	if err != nil {
		return nil, fmt.Errorf("store: updating %s record %s: %w", c.name, id, err)
	}
	return item, nil
}

// Delete removes a record and its index entry, reporting whether the
// record previously existed.
func (c *Collection[T, P]) Delete(id string) (bool, error) {
	res := c.db.Where("collection = ? AND key = ?", c.name, id).Delete(&Record{})
	if res.Error != nil {
		return false, fmt.Errorf("store: deleting %s record %s: %w", c.name, id, res.Error)
	}
	return res.RowsAffected > 0, nil
}

// Seed populates the collection with initial records exactly once: when the
// collection already holds any record the call is a no-op, so repeated
// startup seeding neither duplicates nor resets data.
func (c *Collection[T, P]) Seed(items []P) error {
	var count int64
	err := c.db.Model(&Record{}).Where("collection = ?", c.name).Count(&count).Error
	if err != nil {
		return fmt.Errorf("store: counting %s records: %w", c.name, err)
	}
	if count > 0 {
		return nil
	}

	for _, item := range items {
		if err := c.Create(item); err != nil {
			return err
		}
	}
	return nil
}

func (c *Collection[T, P]) record(id string) (*Record, error) {
	var rec Record
	err := c.db.Where("collection = ? AND key = ?", c.name, id).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("store: loading %s record %s: %w", c.name, id, err)
	}
	return &rec, nil
}

// Store bundles the typed collections backing the API.
type Store struct {
	Categories   *Collection[models.Category, *models.Category]
	Transactions *Collection[models.Transaction, *models.Transaction]
	Commitments  *Collection[models.Commitment, *models.Commitment]
	Emis         *Collection[models.EmiBorrowing, *models.EmiBorrowing]
	Goals        *Collection[models.Goal, *models.Goal]
}

// New creates the collection set over the given database handle.
func New(db *gorm.DB) *Store {
	return &Store{
		Categories:   NewCollection[models.Category, *models.Category](db, "categories"),
		Transactions: NewCollection[models.Transaction, *models.Transaction](db, "transactions"),
		Commitments:  NewCollection[models.Commitment, *models.Commitment](db, "commitments"),
		Emis:         NewCollection[models.EmiBorrowing, *models.EmiBorrowing](db, "emis"),
		Goals:        NewCollection[models.Goal, *models.Goal](db, "goals"),
	}
}
