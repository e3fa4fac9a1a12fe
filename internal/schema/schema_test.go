package schema

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestExtractGoDeclarationOrder(t *testing.T) {
	path := writeFile(t, "schema.go", `package schema

type Database struct {
	Public struct {
		Tables struct {
			post struct {
				ID    int64
				Title string
			}
			user_type struct {
				ID   int64
				Name string
			}
			comment struct{ ID int64 }
		}
	}
}
`)
	tables, err := Extract(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"post", "user_type", "comment"}, tables)
}

func TestExtractGoEmptyTables(t *testing.T) {
	path := writeFile(t, "schema.go", `package schema

type Database struct {
	Public struct {
		Tables struct{}
	}
}
`)
	tables, err := Extract(path)
	require.NoError(t, err)
	assert.Empty(t, tables)
}

func TestExtractGoTablesMustBeNestedInFieldLiteral(t *testing.T) {
	// Tables declared directly in a top-level type is one nesting level
	// short of the required shape and matches nothing.
	path := writeFile(t, "schema.go", `package schema

type Database struct {
	Tables struct {
		post struct{ ID int64 }
	}
}
`)
	tables, err := Extract(path)
	require.NoError(t, err)
	assert.Empty(t, tables)
}

func TestExtractGoNamedTablesTypeDoesNotMatch(t *testing.T) {
	path := writeFile(t, "schema.go", `package schema

type tableSet struct {
	post struct{ ID int64 }
}

type Database struct {
	Public struct {
		Tables tableSet
	}
}
`)
	tables, err := Extract(path)
	require.NoError(t, err)
	assert.Empty(t, tables)
}

func TestExtractGoMultiNameAndEmbeddedFields(t *testing.T) {
	path := writeFile(t, "schema.go", `package schema

type shared struct{ ID int64 }

type Database struct {
	Public struct {
		Tables struct {
			post, comment struct{ ID int64 }
			shared
		}
	}
}
`)
	tables, err := Extract(path)
	require.NoError(t, err)
	// embedded entries have no declared name and are skipped
	assert.Equal(t, []string{"post", "comment"}, tables)
}

func TestExtractGoParseError(t *testing.T) {
	path := writeFile(t, "schema.go", "package schema\n\ntype Database struct {")
	_, err := Extract(path)
	assert.Error(t, err)
}

func TestExtractYAML(t *testing.T) {
	path := writeFile(t, "schema.yaml", `public:
  Tables:
    post:
      id: int64
    user_type:
      id: int64
`)
	tables, err := Extract(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"post", "user_type"}, tables)
}

func TestExtractYAMLRootTablesDoesNotMatch(t *testing.T) {
	path := writeFile(t, "schema.yaml", `Tables:
  post:
    id: int64
`)
	tables, err := Extract(path)
	require.NoError(t, err)
	assert.Empty(t, tables)
}

func TestExtractSQL(t *testing.T) {
	path := writeFile(t, "schema.sql", `
create table post (id bigint primary key, title text);
insert into post (id, title) values (1, 'hello');
create table user_type (id bigint primary key, name text);
create index idx_post_title on post (title);
`)
	tables, err := Extract(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"post", "user_type"}, tables)
}

func TestExtractUnsupportedExtension(t *testing.T) {
	path := writeFile(t, "schema.toml", "[Tables]\n")
	_, err := Extract(path)
	assert.Error(t, err)
}

func TestExtractMissingFile(t *testing.T) {
	_, err := Extract(filepath.Join(t.TempDir(), "nope.go"))
	assert.Error(t, err)
}
