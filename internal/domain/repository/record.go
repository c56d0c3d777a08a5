package repository

import (
	"context"

	"github.com/bnema/glyphpick/internal/domain/entity"
)

// RecordRepository defines operations for record persistence.
type RecordRepository interface {
	// Save creates or updates a record.
	Save(ctx context.Context, rec *entity.Record) error

	// FindByID retrieves a record by its ID.
	FindByID(ctx context.Context, id entity.RecordID) (*entity.Record, error)

	// ListByCollection retrieves all records in a collection, most
	// recently updated first.
	ListByCollection(ctx context.Context, collection string) ([]*entity.Record, error)

	// Delete removes a record by ID.
	Delete(ctx context.Context, id entity.RecordID) error
}
