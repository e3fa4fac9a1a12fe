package generator

import (
	"fmt"
	"go/token"
	"strings"
	"text/template"

	"shireesh.com/indium/internal/naming"
)

// methodsTmpl renders the seven accessor methods for one table. Every
// method is a plain forwarding call into the generic primitives with the
// raw table name bound as the first argument.
var methodsTmpl = template.Must(template.New("methods").Parse(`// {{.Singular}} accessors for table "{{.Table}}".

func (s *Store) Get{{.Plural}}(ctx context.Context, opts *ListOptions) ([]Row, error) {
	return s.getAll(ctx, {{printf "%q" .Table}}, opts)
}

func (s *Store) Get{{.Singular}}(ctx context.Context, id any, opts *GetOptions) (Row, error) {
	return s.getByID(ctx, {{printf "%q" .Table}}, id, opts)
}

func (s *Store) Create{{.Singular}}(ctx context.Context, {{.SingularArg}} Row) (Row, error) {
	return s.createOne(ctx, {{printf "%q" .Table}}, {{.SingularArg}})
}

func (s *Store) CreateMany{{.Plural}}(ctx context.Context, {{.PluralArg}} []Row) ([]Row, error) {
	return s.createMany(ctx, {{printf "%q" .Table}}, {{.PluralArg}})
}

func (s *Store) Update{{.Singular}}(ctx context.Context, id any, {{.SingularArg}} Row, opts *GetOptions) (Row, error) {
	return s.updateOne(ctx, {{printf "%q" .Table}}, id, {{.SingularArg}}, opts)
}

func (s *Store) UpdateMany{{.Plural}}(ctx context.Context, updates []UpdateRequest, opts *GetOptions) ([]Row, error) {
	return s.updateMany(ctx, {{printf "%q" .Table}}, updates, opts)
}

func (s *Store) Delete{{.Singular}}(ctx context.Context, id any, opts *GetOptions) error {
	return s.deleteOne(ctx, {{printf "%q" .Table}}, id, opts)
}`))

type blockData struct {
	Table       string
	Singular    string
	Plural      string
	SingularArg string
	PluralArg   string
}

// synthesize renders the method group for one table.
func synthesize(table string, forms naming.Forms) (string, error) {
	data := blockData{
		Table:       table,
		Singular:    forms.Singular,
		Plural:      forms.Plural,
		SingularArg: argName(forms.Camel),
		PluralArg:   argName(naming.LowerFirst(forms.Plural)),
	}
	var b strings.Builder
	if err := methodsTmpl.Execute(&b, data); err != nil {
		return "", fmt.Errorf("render methods for table %q: %w", table, err)
	}
	return b.String(), nil
}

// argName keeps derived parameter names out of the way of Go keywords and
// the identifiers the method bodies already use.
func argName(s string) string {
	switch s {
	case "ctx", "id", "opts", "updates", "s":
		return s + "Row"
	}
	if token.IsKeyword(s) {
		return s + "Row"
	}
	return s
}
