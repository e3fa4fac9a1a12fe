// Package store holds the generic data-access primitives every generated
// table accessor delegates to.
//
// This file doubles as the generator's canonical template: on first run it
// is copied next to the output file (as store.go.tpl), where it can be
// edited by hand, and generated method groups are spliced in at the marker
// comment near the end of the file.
package store

import (
	"context"
	"errors"
	"fmt"
)

// Row is a single record keyed by column name.
type Row = map[string]any

// Filter maps column names to match expressions. An expression is an
// "op.value" string; supported operators are eq, neq, gt, gte, lt, lte,
// in (comma-separated list), is (null / not_null), like and ilike. A value
// without a recognized operator prefix matches by equality. Translation to
// actual queries is the Querier's job.
type Filter = map[string]string

// Querier executes table operations against the backing data store. The
// accessor class is constructed around one, so application code can plug
// in a real client or a test double. Implementations signal "record not
// found" with an error exposing NotFound() bool; other failures are
// returned as-is.
type Querier interface {
	Select(ctx context.Context, table string, columns []string, filter Filter, limit, offset int) ([]Row, error)
	Insert(ctx context.Context, table string, rows []Row, returning []string) ([]Row, error)
	Update(ctx context.Context, table string, values Row, filter Filter, returning []string) ([]Row, error)
	Delete(ctx context.Context, table string, filter Filter) error
}

// ListOptions narrows a list query.
type ListOptions struct {
	Select  []string // columns to return; nil means all
	IDField string   // identifier column, "id" when empty
	Limit   int      // page size; 0 disables paging
	Page    int      // zero-based page index
	Filter  Filter
}

// GetOptions narrows a single-row operation.
type GetOptions struct {
	Select  []string
	IDField string
}

// UpdateRequest pairs a record identifier with the values to set on it.
type UpdateRequest struct {
	ID   any
	Data Row
}

// Store exposes one generic primitive per CRUD operation. Generated
// per-table methods bind the table name and forward their arguments here,
// adding no logic of their own.
type Store struct {
	q Querier
}

// New returns a Store backed by q.
func New(q Querier) *Store {
	return &Store{q: q}
}

const defaultIDField = "id"

func idField(field string) string {
	if field == "" {
		return defaultIDField
	}
	return field
}

func idFilter(field string, id any) Filter {
	return Filter{idField(field): fmt.Sprintf("eq.%v", id)}
}

// notFound reports whether err carries the collaborator's "record not
// found" code. Such errors become a nil row rather than a failure.
func notFound(err error) bool {
	var nf interface{ NotFound() bool }
	return errors.As(err, &nf) && nf.NotFound()
}

func (s *Store) getAll(ctx context.Context, table string, opts *ListOptions) ([]Row, error) {
	if opts == nil {
		opts = &ListOptions{}
	}
	limit, offset := opts.Limit, 0
	if limit > 0 {
		offset = opts.Page * limit
	}
	return s.q.Select(ctx, table, opts.Select, opts.Filter, limit, offset)
}

func (s *Store) getByID(ctx context.Context, table string, id any, opts *GetOptions) (Row, error) {
	if opts == nil {
		opts = &GetOptions{}
	}
	rows, err := s.q.Select(ctx, table, opts.Select, idFilter(opts.IDField, id), 1, 0)
	if err != nil {
		if notFound(err) {
			return nil, nil
		}
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0], nil
}

func (s *Store) createOne(ctx context.Context, table string, data Row) (Row, error) {
	rows, err := s.q.Insert(ctx, table, []Row{data}, nil)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0], nil
}

func (s *Store) createMany(ctx context.Context, table string, data []Row) ([]Row, error) {
	return s.q.Insert(ctx, table, data, nil)
}

func (s *Store) updateOne(ctx context.Context, table string, id any, data Row, opts *GetOptions) (Row, error) {
	if opts == nil {
		opts = &GetOptions{}
	}
	rows, err := s.q.Update(ctx, table, data, idFilter(opts.IDField, id), opts.Select)
	if err != nil {
		if notFound(err) {
			return nil, nil
		}
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0], nil
}

// updateMany applies each request in order, one round trip per record; the
// querier cannot express distinct values per row in a single call. The
// first failure stops the sequence and is returned as-is, with no
// partial-success reporting for the records already written.
func (s *Store) updateMany(ctx context.Context, table string, updates []UpdateRequest, opts *GetOptions) ([]Row, error) {
	out := make([]Row, 0, len(updates))
	for _, u := range updates {
		row, err := s.updateOne(ctx, table, u.ID, u.Data, opts)
		if err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, nil
}

func (s *Store) deleteOne(ctx context.Context, table string, id any, opts *GetOptions) error {
	if opts == nil {
		opts = &GetOptions{}
	}
	if err := s.q.Delete(ctx, table, idFilter(opts.IDField, id)); err != nil && !notFound(err) {
		return err
	}
	return nil
}

// Generated table accessors follow, one method group per table, in schema
// declaration order.

// indium:generated
