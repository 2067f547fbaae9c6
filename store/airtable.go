package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gverri/call-survey/model"
)

// AirtableStore talks to an Airtable-style REST API: rows live under
// /v0/{baseID}/{table}, table schemas under /v0/meta/bases/{baseID}/tables.
type AirtableStore struct {
	baseURL string
	baseID  string
	apiKey  string
	client  *http.Client
}

func NewAirtable(baseURL, baseID, apiKey string) *AirtableStore {
	return &AirtableStore{
		baseURL: strings.TrimRight(baseURL, "/"),
		baseID:  baseID,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

type airtableRecord struct {
	ID     string         `json:"id,omitempty"`
	Fields map[string]any `json:"fields"`
}

type airtableTable struct {
	Name   string `json:"name"`
	Fields []struct {
		Name    string `json:"name"`
		Type    string `json:"type"`
		Options *struct {
			Choices []struct {
				Name string `json:"name"`
			} `json:"choices"`
		} `json:"options,omitempty"`
	} `json:"fields"`
}

func (s *AirtableStore) CreateEmptyRecord(ctx context.Context, table string) (string, error) {
	var created airtableRecord
	err := s.doJSON(ctx, http.MethodPost, s.tablePath(table), airtableRecord{Fields: map[string]any{}}, &created)
	if err != nil {
		return "", err
	}
	return created.ID, nil
}

func (s *AirtableStore) UpdateRecord(ctx context.Context, table, recordID string, fields map[string]any) error {
	path := s.tablePath(table) + "/" + url.PathEscape(recordID)
	return s.doJSON(ctx, http.MethodPatch, path, airtableRecord{Fields: fields}, nil)
}

func (s *AirtableStore) GetSchema(ctx context.Context, table string) (model.Schema, error) {
	var out struct {
		Tables []airtableTable `json:"tables"`
	}
	err := s.doJSON(ctx, http.MethodGet, "/v0/meta/bases/"+url.PathEscape(s.baseID)+"/tables", nil, &out)
	if err != nil {
		return model.Schema{}, err
	}

	for _, t := range out.Tables {
		if t.Name != table {
			continue
		}
		schema := model.Schema{Table: table, Fields: make([]model.Field, 0, len(t.Fields))}
		for _, f := range t.Fields {
			field := model.Field{Name: f.Name, Type: f.Type}
			if f.Options != nil {
				for _, c := range f.Options.Choices {
					field.Options = append(field.Options, c.Name)
				}
			}
			schema.Fields = append(schema.Fields, field)
		}
		return schema, nil
	}
	return model.Schema{}, fmt.Errorf("%w: %s", ErrTableNotFound, table)
}

func (s *AirtableStore) Close() error {
	return nil
}

func (s *AirtableStore) tablePath(table string) string {
	return "/v0/" + url.PathEscape(s.baseID) + "/" + url.PathEscape(table)
}

func (s *AirtableStore) doJSON(ctx context.Context, method, path string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		buf, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, s.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrUpstream, err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	switch {
	case resp.StatusCode == http.StatusNotFound, resp.StatusCode == http.StatusUnprocessableEntity:
		// Airtable answers 404 for unknown record paths and 422 for writes
		// against a table that does not exist.
		return fmt.Errorf("%w: status %d: %s", ErrTableNotFound, resp.StatusCode, respBody)
	case resp.StatusCode >= 300:
		return fmt.Errorf("%w: status %d: %s", ErrUpstream, resp.StatusCode, respBody)
	}

	if out == nil || len(respBody) == 0 {
		return nil
	}
	return json.Unmarshal(respBody, out)
}
