package schema

import (
	"fmt"

	pgquery "github.com/pganalyze/pg_query_go/v6"
)

// extractSQL collects the relation names of CREATE TABLE statements, in
// statement order. Everything else in the file (inserts, indexes, other
// DDL) is ignored.
func extractSQL(src string) ([]string, error) {
	result, err := pgquery.Parse(src)
	if err != nil {
		return nil, fmt.Errorf("parse schema: %w", err)
	}
	var tables []string
	for _, raw := range result.Stmts {
		create := raw.Stmt.GetCreateStmt()
		if create == nil || create.Relation == nil {
			continue
		}
		tables = append(tables, create.Relation.Relname)
	}
	return tables, nil
}
