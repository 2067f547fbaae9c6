package dialogue

import (
	"context"

	"github.com/gverri/call-survey/model"
	"github.com/gverri/call-survey/store"
)

// Resolver reads a survey table's field metadata from the record store
// schema. It is read-only and keeps no cache; each dialogue turn that needs
// field metadata resolves it fresh.
type Resolver struct {
	Store store.RecordStore
}

func (r Resolver) Resolve(ctx context.Context, table string) (fieldNames []string, schema model.Schema, err error) {
	schema, err = r.Store.GetSchema(ctx, table)
	if err != nil {
		return nil, model.Schema{}, err
	}
	return schema.FieldNames(), schema, nil
}
