package routes

import (
	"context"
	"strconv"

	"github.com/gverri/call-survey/model"
	"github.com/gverri/call-survey/store"
)

type recordUpdate struct {
	table    string
	recordID string
	fields   map[string]any
}

// fakeStore serves a fixed schema catalog and records every write.
type fakeStore struct {
	schemas     map[string]model.Schema
	created     []string
	updates     []recordUpdate
	updateErr   error
	schemaCalls int
}

func (f *fakeStore) CreateEmptyRecord(_ context.Context, table string) (string, error) {
	if _, ok := f.schemas[table]; !ok {
		return "", store.ErrTableNotFound
	}
	f.created = append(f.created, table)
	return "rec" + strconv.Itoa(len(f.created)), nil
}

func (f *fakeStore) UpdateRecord(_ context.Context, table, recordID string, fields map[string]any) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updates = append(f.updates, recordUpdate{table: table, recordID: recordID, fields: fields})
	return nil
}

func (f *fakeStore) GetSchema(_ context.Context, table string) (model.Schema, error) {
	f.schemaCalls++
	schema, ok := f.schemas[table]
	if !ok {
		return model.Schema{}, store.ErrTableNotFound
	}
	return schema, nil
}

func (f *fakeStore) Close() error { return nil }

// fakeCompletions replays scripted candidate lists in order.
type fakeCompletions struct {
	replies [][]string
	err     error
	prompts []string
}

func (f *fakeCompletions) Complete(_ context.Context, prompt string) ([]string, error) {
	f.prompts = append(f.prompts, prompt)
	if f.err != nil {
		return nil, f.err
	}
	if len(f.replies) == 0 {
		return nil, nil
	}
	next := f.replies[0]
	f.replies = f.replies[1:]
	return next, nil
}
