package store

import (
	"context"
	"database/sql"
	"fmt"
	"slices"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/roach88/storable/internal/fixture"
	"github.com/roach88/storable/internal/values"
)

// Record is a stored property value.
type Record struct {
	ID       string       `json:"id"`
	Property string       `json:"property"`
	Value    values.Value `json:"-"`
	Hash     string       `json:"hash"`
	Seq      int64        `json:"seq"` // Insertion order within the store
}

// Put stores v under property unless an equal value is already stored.
// Returns the stored record and whether v was a duplicate. A nil v is
// stored as NoValue. Values whose literal would not decode back are
// rejected before anything is written.
func (s *Store) Put(ctx context.Context, property string, v values.Value) (Record, bool, error) {
	if v == nil {
		v = values.NoValue
	}
	hash := values.Hash(v)
	literal, err := marshalValue(v)
	if err != nil {
		return Record{}, false, fmt.Errorf("put %s: %w", property, err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return Record{}, false, fmt.Errorf("put %s: begin: %w", property, err)
	}
	defer tx.Rollback()

	candidates, err := queryRecords(ctx, tx, `
		SELECT id, property, value_hash, literal, seq
		FROM property_values
		WHERE property = ? AND value_hash = ?
		ORDER BY seq ASC
	`, property, hash)
	if err != nil {
		return Record{}, false, fmt.Errorf("put %s: %w", property, err)
	}
	for _, rec := range candidates {
		if values.Equals(rec.Value, v) {
			s.logger.Debug("duplicate property value",
				"property", property,
				"id", rec.ID,
				"value", v.String(),
			)
			return rec, true, nil
		}
	}
	if len(candidates) > 0 {
		s.logger.Warn("value hash collision", "property", property, "hash", hash)
	}

	var seq int64
	if err := tx.QueryRowContext(ctx, `SELECT COALESCE(MAX(seq), 0) + 1 FROM property_values`).Scan(&seq); err != nil {
		return Record{}, false, fmt.Errorf("put %s: next seq: %w", property, err)
	}

	rec := Record{
		ID:       uuid.NewString(),
		Property: property,
		Value:    v,
		Hash:     hash,
		Seq:      seq,
	}
	_, err = tx.ExecContext(ctx, `
		INSERT INTO property_values (id, property, value_group, value_hash, literal, seq)
		VALUES (?, ?, ?, ?, ?, ?)
	`, rec.ID, rec.Property, v.Group().String(), rec.Hash, literal, rec.Seq)
	if err != nil {
		return Record{}, false, fmt.Errorf("put %s: insert: %w", property, err)
	}

	if err := tx.Commit(); err != nil {
		return Record{}, false, fmt.Errorf("put %s: commit: %w", property, err)
	}

	s.logger.Debug("stored property value", "property", property, "id", rec.ID, "seq", rec.Seq)
	return rec, false, nil
}

// List returns the values of property in comparator order.
// Equal-ordered values keep insertion order. Returns an empty slice (not nil)
// if the property has no values.
func (s *Store) List(ctx context.Context, property string) ([]Record, error) {
	records, err := queryRecords(ctx, s.db, `
		SELECT id, property, value_hash, literal, seq
		FROM property_values
		WHERE property = ?
		ORDER BY seq ASC
	`, property)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", property, err)
	}

	slices.SortStableFunc(records, func(a, b Record) int {
		return s.comparator.Compare(a.Value, b.Value).Sign()
	})
	return records, nil
}

// Count returns the number of distinct values stored for property.
func (s *Store) Count(ctx context.Context, property string) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM property_values WHERE property = ?`, property).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count %s: %w", property, err)
	}
	return n, nil
}

type querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

func queryRecords(ctx context.Context, q querier, query string, args ...any) ([]Record, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query property values: %w", err)
	}
	defer rows.Close()

	records := []Record{}
	for rows.Next() {
		var (
			rec     Record
			literal string
		)
		if err := rows.Scan(&rec.ID, &rec.Property, &rec.Hash, &literal, &rec.Seq); err != nil {
			return nil, fmt.Errorf("scan property value: %w", err)
		}
		rec.Value, err = unmarshalValue(literal)
		if err != nil {
			return nil, fmt.Errorf("decode property value %s: %w", rec.ID, err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate property values: %w", err)
	}
	return records, nil
}

func marshalValue(v values.Value) (string, error) {
	entry, err := fixture.Encode(v)
	if err != nil {
		return "", err
	}
	data, err := yaml.Marshal(entry)
	if err != nil {
		return "", fmt.Errorf("marshal literal: %w", err)
	}
	back, err := unmarshalValue(string(data))
	if err != nil {
		return "", err
	}
	if !values.Equals(back, v) {
		return "", fmt.Errorf("literal for %s reads back as %s", v, back)
	}
	return string(data), nil
}

func unmarshalValue(literal string) (values.Value, error) {
	var entry fixture.Entry
	if err := yaml.Unmarshal([]byte(literal), &entry); err != nil {
		return nil, fmt.Errorf("unmarshal literal: %w", err)
	}
	return fixture.Decode(entry)
}
