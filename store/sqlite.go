package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/gverri/call-survey/model"
)

// SQLiteStore is a local record store backend for development and tests. It
// serves the same narrow contract as the hosted store: survey tables and
// their field definitions are seeded externally, this code only reads the
// schema and writes response rows.
type SQLiteStore struct {
	db *sql.DB
}

func OpenSQLite(path string) (s *SQLiteStore, err error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return
	}

	_, err = db.Exec("PRAGMA foreign_keys = ON")
	if err != nil {
		db.Close()
		return
	}

	// db tuning options
	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(10)
	db.SetConnMaxIdleTime(5 * time.Minute)
	db.SetConnMaxLifetime(2 * time.Hour)

	err = migrateDB(db)
	if err != nil {
		db.Close()
		return
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) CreateEmptyRecord(ctx context.Context, table string) (string, error) {
	tableID, err := s.tableID(ctx, table)
	if err != nil {
		return "", err
	}

	var id int64
	err = s.db.QueryRowContext(ctx, `
		INSERT INTO response (table_id, time) VALUES (?, ?)
		RETURNING id`,
		tableID,
		time.Now(),
	).Scan(&id)
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(id, 10), nil
}

func (s *SQLiteStore) UpdateRecord(ctx context.Context, table, recordID string, fields map[string]any) error {
	tableID, err := s.tableID(ctx, table)
	if err != nil {
		return err
	}

	responseID, err := strconv.ParseInt(recordID, 10, 64)
	if err != nil {
		return err
	}

	var exists bool
	err = s.db.QueryRowContext(ctx, `
		SELECT 1 FROM response
		WHERE id = ?
			AND table_id = ?`,
		responseID,
		tableID,
	).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("store: no record %s in table %s", recordID, table)
	}
	if err != nil {
		return err
	}

	for name, value := range fields {
		valueJson, err := json.Marshal(value)
		if err != nil {
			return err
		}
		_, err = s.db.ExecContext(ctx, `
			INSERT INTO response_field (response_id, name, value) VALUES (?, ?, ?)
			ON CONFLICT (response_id, name) DO UPDATE SET value = excluded.value`,
			responseID,
			name,
			string(valueJson),
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *SQLiteStore) GetSchema(ctx context.Context, table string) (model.Schema, error) {
	tableID, err := s.tableID(ctx, table)
	if err != nil {
		return model.Schema{}, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT name, type, options
		FROM survey_field
		WHERE table_id = ?
		ORDER BY position`,
		tableID,
	)
	if err != nil {
		return model.Schema{}, err
	}
	defer rows.Close()

	schema := model.Schema{Table: table}
	for rows.Next() {
		f := model.Field{}
		var opts string
		err = rows.Scan(&f.Name, &f.Type, &opts)
		if err != nil {
			return model.Schema{}, err
		}

		if opts != "" {
			err = json.Unmarshal([]byte(opts), &f.Options)
			if err != nil {
				return model.Schema{}, err
			}
		}

		schema.Fields = append(schema.Fields, f)
	}
	return schema, rows.Err()
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) tableID(ctx context.Context, table string) (id int64, err error) {
	err = s.db.QueryRowContext(ctx, `
		SELECT id FROM survey_table WHERE name = ?`,
		table,
	).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		err = ErrTableNotFound
	}
	return
}
