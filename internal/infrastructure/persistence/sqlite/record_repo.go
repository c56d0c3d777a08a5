package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/bnema/glyphpick/internal/domain/entity"
	"github.com/bnema/glyphpick/internal/domain/repository"
	"github.com/bnema/glyphpick/internal/logging"
	"github.com/google/uuid"
)

type recordRepo struct {
	db *sql.DB
}

// NewRecordRepository creates a new SQLite-backed record repository.
func NewRecordRepository(db *sql.DB) repository.RecordRepository {
	return &recordRepo{db: db}
}

func (r *recordRepo) Save(ctx context.Context, rec *entity.Record) error {
	log := logging.FromContext(ctx)

	if rec.ID == "" {
		rec.ID = entity.RecordID(uuid.NewString())
	}
	if rec.Collection == "" {
		return fmt.Errorf("record collection cannot be empty")
	}

	fields, err := json.Marshal(rec.Fields)
	if err != nil {
		return fmt.Errorf("failed to encode record fields: %w", err)
	}

	now := time.Now().UTC()
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = now
	}
	rec.UpdatedAt = now

	log.Debug().
		Str("record_id", string(rec.ID)).
		Str("collection", rec.Collection).
		Msg("saving record")

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO records (id, collection, fields, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			collection = excluded.collection,
			fields = excluded.fields,
			updated_at = excluded.updated_at`,
		string(rec.ID), rec.Collection, string(fields), rec.CreatedAt, rec.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save record: %w", err)
	}
	return nil
}

func (r *recordRepo) FindByID(ctx context.Context, id entity.RecordID) (*entity.Record, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, collection, fields, created_at, updated_at
		FROM records WHERE id = ?`,
		string(id),
	)

	rec, err := scanRecord(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return rec, nil
}

func (r *recordRepo) ListByCollection(ctx context.Context, collection string) ([]*entity.Record, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, collection, fields, created_at, updated_at
		FROM records WHERE collection = ?
		ORDER BY updated_at DESC`,
		collection,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var records []*entity.Record
	for rows.Next() {
		rec, scanErr := scanRecord(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate records: %w", err)
	}
	return records, nil
}

func (r *recordRepo) Delete(ctx context.Context, id entity.RecordID) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM records WHERE id = ?`, string(id))
	if err != nil {
		return fmt.Errorf("failed to delete record: %w", err)
	}
	return nil
}

// rowScanner covers *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (*entity.Record, error) {
	var (
		id         string
		collection string
		fields     string
		createdAt  time.Time
		updatedAt  time.Time
	)
	if err := row.Scan(&id, &collection, &fields, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	rec := &entity.Record{
		ID:         entity.RecordID(id),
		Collection: collection,
		Fields:     make(map[string]any),
		CreatedAt:  createdAt,
		UpdatedAt:  updatedAt,
	}
	if fields != "" {
		if err := json.Unmarshal([]byte(fields), &rec.Fields); err != nil {
			return nil, fmt.Errorf("failed to decode record fields: %w", err)
		}
	}
	return rec, nil
}
