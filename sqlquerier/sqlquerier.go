// Package sqlquerier adapts a database/sql handle to the Querier interface
// the generated store code expects. It translates the "op.value" filter
// encoding into SQL, so the generated methods never build queries
// themselves.
//
// Placeholders use the ? style, which fits sqlite and mysql drivers.
package sqlquerier

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"strings"
)

// Error is a structured failure from the backing database. Code carries
// the condition callers branch on.
type Error struct {
	Code string
	Op   string
	Err  error
}

const (
	// CodeNotFound marks a single-row operation that matched nothing.
	CodeNotFound = "not_found"
	// CodeQuery marks a failure executing SQL.
	CodeQuery = "query"
)

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Code, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Code)
}

func (e *Error) Unwrap() error { return e.Err }

// NotFound reports whether the error is the distinguished no-row
// condition. The store layer translates such errors to a nil row.
func (e *Error) NotFound() bool { return e.Code == CodeNotFound }

// Querier runs the generic table operations over a *sql.DB.
type Querier struct {
	db *sql.DB
}

// New returns a Querier over db.
func New(db *sql.DB) *Querier {
	return &Querier{db: db}
}

// Select returns the rows of table matching filter, projected to columns
// (all columns when empty), with LIMIT/OFFSET paging when limit > 0.
func (q *Querier) Select(ctx context.Context, table string, columns []string, filter map[string]string, limit, offset int) ([]map[string]any, error) {
	cols := "*"
	if len(columns) > 0 {
		cols = joinIdents(columns)
	}
	where, args := whereClause(filter)
	query := fmt.Sprintf("SELECT %s FROM %s%s", cols, quoteIdent(table), where)
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT %d OFFSET %d", limit, offset)
	}
	rows, err := q.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, &Error{Code: CodeQuery, Op: "select " + table, Err: err}
	}
	defer rows.Close()
	return scanRows("select "+table, rows)
}

// Insert writes rows in one statement and returns them as stored. All rows
// must share the key set of the first one.
func (q *Querier) Insert(ctx context.Context, table string, rows []map[string]any, returning []string) ([]map[string]any, error) {
	if len(rows) == 0 {
		return nil, nil
	}
	cols := sortedKeys(rows[0])
	placeholder := "(" + strings.TrimSuffix(strings.Repeat("?, ", len(cols)), ", ") + ")"
	values := make([]string, len(rows))
	args := make([]any, 0, len(rows)*len(cols))
	for i, row := range rows {
		values[i] = placeholder
		for _, c := range cols {
			args = append(args, row[c])
		}
	}
	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES %s RETURNING %s",
		quoteIdent(table), joinIdents(cols), strings.Join(values, ", "), returningClause(returning))
	out, err := q.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, &Error{Code: CodeQuery, Op: "insert " + table, Err: err}
	}
	defer out.Close()
	return scanRows("insert "+table, out)
}

// Update sets values on every row matching filter and returns the updated
// rows. Matching nothing is reported as a not-found error.
func (q *Querier) Update(ctx context.Context, table string, values map[string]any, filter map[string]string, returning []string) ([]map[string]any, error) {
	cols := sortedKeys(values)
	sets := make([]string, len(cols))
	args := make([]any, 0, len(cols))
	for i, c := range cols {
		sets[i] = quoteIdent(c) + " = ?"
		args = append(args, values[c])
	}
	where, whereArgs := whereClause(filter)
	args = append(args, whereArgs...)
	query := fmt.Sprintf("UPDATE %s SET %s%s RETURNING %s",
		quoteIdent(table), strings.Join(sets, ", "), where, returningClause(returning))
	out, err := q.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, &Error{Code: CodeQuery, Op: "update " + table, Err: err}
	}
	defer out.Close()
	updated, err := scanRows("update "+table, out)
	if err != nil {
		return nil, err
	}
	if len(updated) == 0 {
		return nil, &Error{Code: CodeNotFound, Op: "update " + table}
	}
	return updated, nil
}

// Delete removes every row matching filter. Matching nothing is reported
// as a not-found error.
func (q *Querier) Delete(ctx context.Context, table string, filter map[string]string) error {
	where, args := whereClause(filter)
	res, err := q.db.ExecContext(ctx, fmt.Sprintf("DELETE FROM %s%s", quoteIdent(table), where), args...)
	if err != nil {
		return &Error{Code: CodeQuery, Op: "delete " + table, Err: err}
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return &Error{Code: CodeNotFound, Op: "delete " + table}
	}
	return nil
}

// sqlOps maps comparison operator names to their SQL spelling.
var sqlOps = map[string]string{
	"eq":  "=",
	"neq": "<>",
	"gt":  ">",
	"gte": ">=",
	"lt":  "<",
	"lte": "<=",
}

// condition translates one filter expression into a SQL predicate with
// bind arguments. An expression without a recognized operator prefix is an
// equality match on the whole string.
func condition(column, expr string) (string, []any) {
	op, val, ok := strings.Cut(expr, ".")
	if !ok {
		return column + " = ?", []any{expr}
	}
	switch {
	case sqlOps[op] != "":
		return fmt.Sprintf("%s %s ?", column, sqlOps[op]), []any{val}
	case op == "in":
		items := strings.Split(val, ",")
		args := make([]any, len(items))
		for i, it := range items {
			args[i] = strings.TrimSpace(it)
		}
		ph := strings.TrimSuffix(strings.Repeat("?, ", len(items)), ", ")
		return fmt.Sprintf("%s IN (%s)", column, ph), args
	case op == "is" && val == "null":
		return column + " IS NULL", nil
	case op == "is" && val == "not_null":
		return column + " IS NOT NULL", nil
	case op == "like":
		return column + " LIKE ?", []any{val}
	case op == "ilike":
		return fmt.Sprintf("LOWER(%s) LIKE LOWER(?)", column), []any{val}
	default:
		// the dot was part of the value, not an operator
		return column + " = ?", []any{expr}
	}
}

// whereClause renders filter as a WHERE clause with predicates in sorted
// column order, so the same filter always yields the same SQL.
func whereClause(filter map[string]string) (string, []any) {
	if len(filter) == 0 {
		return "", nil
	}
	var conds []string
	var args []any
	for _, k := range sortedKeysStr(filter) {
		c, a := condition(quoteIdent(k), filter[k])
		conds = append(conds, c)
		args = append(args, a...)
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func returningClause(returning []string) string {
	if len(returning) == 0 {
		return "*"
	}
	return joinIdents(returning)
}

func scanRows(op string, rows *sql.Rows) ([]map[string]any, error) {
	cols, err := rows.Columns()
	if err != nil {
		return nil, &Error{Code: CodeQuery, Op: op, Err: err}
	}
	var out []map[string]any
	for rows.Next() {
		vals := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, &Error{Code: CodeQuery, Op: op, Err: err}
		}
		row := make(map[string]any, len(cols))
		for i, c := range cols {
			row[c] = vals[i]
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, &Error{Code: CodeQuery, Op: op, Err: err}
	}
	return out, nil
}

// quoteIdent double-quotes an identifier unless it is already a plain
// lower-case name.
func quoteIdent(s string) string {
	for _, r := range s {
		if r == '_' || (r >= '0' && r <= '9') || (r >= 'a' && r <= 'z') {
			continue
		}
		return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
	}
	return s
}

func joinIdents(names []string) string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = quoteIdent(n)
	}
	return strings.Join(quoted, ", ")
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedKeysStr(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
