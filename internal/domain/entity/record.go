package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// RecordID uniquely identifies a stored record.
type RecordID string

// Record is a schemaless document edited through the form field widgets.
// Fields holds the JSON document; nested values are addressed with
// dot-separated paths (e.g., "profile.icon").
type Record struct {
	ID         RecordID
	Collection string
	Fields     map[string]any
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewRecord creates an empty record in the given collection.
func NewRecord(collection string) *Record {
	now := time.Now()
	return &Record{
		ID:         RecordID(uuid.NewString()),
		Collection: collection,
		Fields:     make(map[string]any),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// GetField resolves a dot-separated path inside the record document.
// Returns the value and true, or nil and false when any segment is
// missing or a non-object is traversed.
func (r *Record) GetField(path string) (any, bool) {
	if r.Fields == nil {
		return nil, false
	}
	segments := strings.Split(path, ".")
	var current any = r.Fields
	for _, seg := range segments {
		obj, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		current, ok = obj[seg]
		if !ok {
			return nil, false
		}
	}
	return current, true
}

// SetField writes a value at a dot-separated path, creating intermediate
// objects as needed. An existing non-object segment is replaced.
func (r *Record) SetField(path string, value any) {
	if r.Fields == nil {
		r.Fields = make(map[string]any)
	}
	segments := strings.Split(path, ".")
	obj := r.Fields
	for _, seg := range segments[:len(segments)-1] {
		child, ok := obj[seg].(map[string]any)
		if !ok {
			child = make(map[string]any)
			obj[seg] = child
		}
		obj = child
	}
	obj[segments[len(segments)-1]] = value
	r.UpdatedAt = time.Now()
}

// DeleteField removes the value at a dot-separated path. Missing paths
// are a no-op.
func (r *Record) DeleteField(path string) {
	if r.Fields == nil {
		return
	}
	segments := strings.Split(path, ".")
	obj := r.Fields
	for _, seg := range segments[:len(segments)-1] {
		child, ok := obj[seg].(map[string]any)
		if !ok {
			return
		}
		obj = child
	}
	delete(obj, segments[len(segments)-1])
	r.UpdatedAt = time.Now()
}
