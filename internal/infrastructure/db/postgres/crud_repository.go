package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/arcadia-zoo/zoo-api/internal/core/domain"
	"github.com/arcadia-zoo/zoo-api/internal/core/ports"
)

// crudRepository is the GORM implementation shared by every plain catalog
// entity. The entities carry their own gorm tags, so a single generic
// repository covers them all.
type crudRepository[T any] struct {
	db *gorm.DB
}

// NewCrudRepository returns a repository for one entity type.
func NewCrudRepository[T any](db *gorm.DB) ports.CrudRepository[T] {
	return &crudRepository[T]{db: db}
}

func (r *crudRepository[T]) Create(ctx context.Context, entity *T) error {
	if err := r.db.WithContext(ctx).Create(entity).Error; err != nil {
		return fmt.Errorf("insert: %w", err)
	}
	return nil
}

func (r *crudRepository[T]) FindByID(ctx context.Context, id uint) (*T, error) {
	var entity T
	if err := r.db.WithContext(ctx).First(&entity, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("find by id: %w", err)
	}
	return &entity, nil
}

func (r *crudRepository[T]) FindAll(ctx context.Context) ([]T, error) {
	var entities []T
	if err := r.db.WithContext(ctx).Find(&entities).Error; err != nil {
		return nil, fmt.Errorf("find all: %w", err)
	}
	return entities, nil
}

func (r *crudRepository[T]) Update(ctx context.Context, entity *T) error {
	if err := r.db.WithContext(ctx).Save(entity).Error; err != nil {
		return fmt.Errorf("update: %w", err)
	}
	return nil
}

func (r *crudRepository[T]) Delete(ctx context.Context, id uint) error {
	var entity T
	res := r.db.WithContext(ctx).Delete(&entity, id)
	if res.Error != nil {
		return fmt.Errorf("delete: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
