package database

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repo is a generic repository over a single gorm model. Every resource
// endpoint is served by an instance of this type; per-entity behavior
// (embedded associations, a mandatory ordering) comes in through options
// rather than per-entity repo structs.
type Repo[T any] struct {
	db       *gorm.DB
	preloads []string
	orderBy  string
}

type RepoOption[T any] func(*Repo[T])

// WithPreload eagerly loads the named associations on every read.
func WithPreload[T any](associations ...string) RepoOption[T] {
	return func(r *Repo[T]) {
		r.preloads = append(r.preloads, associations...)
	}
}

// WithOrder applies a fixed ordering to FindAll and First.
func WithOrder[T any](order string) RepoOption[T] {
	return func(r *Repo[T]) {
		r.orderBy = order
	}
}

func NewRepo[T any](db *gorm.DB, opts ...RepoOption[T]) *Repo[T] {
	repo := &Repo[T]{db: db}
	for _, opt := range opts {
		opt(repo)
	}
	return repo
}

// GetDB returns the underlying database connection for debugging purposes
func (r *Repo[T]) GetDB() *gorm.DB {
	return r.db
}

func (r *Repo[T]) reads() *gorm.DB {
	query := r.db
	for _, association := range r.preloads {
		query = query.Preload(association)
	}
	if r.orderBy != "" {
		query = query.Order(r.orderBy)
	}
	return query
}

// FindAll returns every record of the entity
func (r *Repo[T]) FindAll() ([]*T, error) {
	var entities []*T
	err := r.reads().Find(&entities).Error
	return entities, err
}

// FindByID returns one record by primary key, or nil when none exists
func (r *Repo[T]) FindByID(id uint) (*T, error) {
	var entity T
	err := r.reads().First(&entity, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entity, nil
}

// First returns the lowest-id record, or nil when the table is empty
func (r *Repo[T]) First() (*T, error) {
	var entity T
	query := r.db
	for _, association := range r.preloads {
		query = query.Preload(association)
	}
	err := query.Order("id ASC").First(&entity).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entity, nil
}

// Add inserts a new record
func (r *Repo[T]) Add(entity *T) error {
	return r.db.Create(entity).Error
}

// Update saves the full record, replacing scalar fields wholesale
func (r *Repo[T]) Update(entity *T) error {
	return r.db.Save(entity).Error
}

// Delete removes a record by id along with its owned associations,
// so SkillCategory deletion cascades to its Skills even on drivers
// where the FK constraint is not enforced by default.
func (r *Repo[T]) Delete(id uint) error {
	var entity T
	if err := r.db.First(&entity, id).Error; err != nil {
		return err
	}
	return r.db.Select(clause.Associations).Delete(&entity).Error
}

// Count returns the number of stored records
func (r *Repo[T]) Count() (int64, error) {
	var count int64
	err := r.db.Model(new(T)).Count(&count).Error
	return count, err
}
