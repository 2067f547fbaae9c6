package dialogue

import (
	"context"

	"github.com/gverri/call-survey/model"
	"github.com/gverri/call-survey/store"
)

// fakeCompletions replays scripted candidate lists and records the prompts
// it was given.
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

// fakeStore serves a fixed schema catalog.
type fakeStore struct {
	schemas     map[string]model.Schema
	schemaCalls int
}

func (f *fakeStore) CreateEmptyRecord(_ context.Context, table string) (string, error) {
	if _, ok := f.schemas[table]; !ok {
		return "", store.ErrTableNotFound
	}
	return "rec1", nil
}

func (f *fakeStore) UpdateRecord(_ context.Context, table, _ string, _ map[string]any) error {
	if _, ok := f.schemas[table]; !ok {
		return store.ErrTableNotFound
	}
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
