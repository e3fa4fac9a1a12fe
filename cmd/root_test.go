package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSchema = `package schema

type Database struct {
	Public struct {
		Tables struct {
			post struct{ ID int64 }
		}
	}
}
`

func TestRootCommandRequiresTwoArgs(t *testing.T) {
	err := rootCmd.Args(rootCmd, nil)
	assert.Error(t, err)
	err = rootCmd.Args(rootCmd, []string{"schema.go"})
	assert.Error(t, err)
	err = rootCmd.Args(rootCmd, []string{"schema.go", "out.go"})
	assert.NoError(t, err)
}

func TestRootCommandGenerates(t *testing.T) {
	dir := t.TempDir()
	schemaPath := filepath.Join(dir, "schema.go")
	require.NoError(t, os.WriteFile(schemaPath, []byte(testSchema), 0o644))
	outPath := filepath.Join(dir, "store_gen.go")

	rootCmd.SetArgs([]string{schemaPath, outPath})
	require.NoError(t, rootCmd.Execute())

	out, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(out), "func (s *Store) GetPosts(")

	// the template landed next to the output
	_, err = os.Stat(filepath.Join(dir, "store.go.tpl"))
	assert.NoError(t, err)
}

func TestRootCommandMissingSchemaFails(t *testing.T) {
	dir := t.TempDir()
	rootCmd.SetArgs([]string{filepath.Join(dir, "absent.go"), filepath.Join(dir, "out.go")})
	assert.Error(t, rootCmd.Execute())
}
