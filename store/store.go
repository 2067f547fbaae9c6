// Package store gives the dialogue core a narrow view of the record store:
// create an empty response row, patch single fields onto it, and introspect a
// table's field schema.
package store

import (
	"context"
	"errors"

	"github.com/gverri/call-survey/model"
)

var (
	// ErrTableNotFound reports that the named survey table does not exist.
	ErrTableNotFound = errors.New("store: table not found")
	// ErrUpstream reports a transport or non-success HTTP failure of the store.
	ErrUpstream = errors.New("store: upstream unavailable")
)

type RecordStore interface {
	// CreateEmptyRecord inserts a new response row with no fields set and
	// returns its store-assigned id.
	CreateEmptyRecord(ctx context.Context, table string) (string, error)
	// UpdateRecord merges the given field values into an existing row.
	UpdateRecord(ctx context.Context, table, recordID string, fields map[string]any) error
	// GetSchema returns the table's full field definitions in declared order.
	GetSchema(ctx context.Context, table string) (model.Schema, error)

	Close() error
}
