package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	pkgerrors "github.com/narwhalmedia/catalog/pkg/errors"
)

// Scope narrows a query.
type Scope func(*gorm.DB) *gorm.DB

// Create creates a new entity in the database.
func Create[T any](ctx context.Context, db *gorm.DB, entity *T) error {
	if err := db.WithContext(ctx).Create(entity).Error; err != nil {
		if pkgerrors.IsDuplicateError(err) {
			return pkgerrors.Conflict("entity already exists")
		}
		return err
	}
	return nil
}

// Upsert inserts entity or, when the conflict columns match an existing row,
// overwrites the listed update columns.
func Upsert[T any](ctx context.Context, db *gorm.DB, entity *T, conflictColumns, updateColumns []string) error {
	columns := make([]clause.Column, len(conflictColumns))
	for i, name := range conflictColumns {
		columns[i] = clause.Column{Name: name}
	}

	return db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   columns,
		DoUpdates: clause.AssignmentColumns(updateColumns),
	}).Create(entity).Error
}

// FindOneBy finds a single entity by a query condition.
func FindOneBy[T any](ctx context.Context, db *gorm.DB, query string, args ...interface{}) (*T, error) {
	var entity T
	if err := db.WithContext(ctx).Where(query, args...).First(&entity).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.NotFound("entity not found")
		}
		return nil, err
	}
	return &entity, nil
}

// DeleteWhere removes every entity matching the condition and reports how many went.
func DeleteWhere[T any](ctx context.Context, db *gorm.DB, query string, args ...interface{}) (int64, error) {
	var entity T
	result := db.WithContext(ctx).Where(query, args...).Delete(&entity)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// List retrieves one page of entities matching the scopes, plus the total match count.
func List[T any](ctx context.Context, db *gorm.DB, limit, offset int, order string, scopes ...Scope) ([]*T, int64, error) {
	var entity T
	query := db.WithContext(ctx).Model(&entity)
	for _, scope := range scopes {
		query = scope(query)
	}
	query = query.Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var entities []*T
	if order != "" {
		query = query.Order(order)
	}
	if err := query.Limit(limit).Offset(offset).Find(&entities).Error; err != nil {
		return nil, 0, err
	}
	return entities, total, nil
}
