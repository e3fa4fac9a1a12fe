// Package naming derives the lexical forms of a raw table identifier that
// the generated accessor methods are built from.
package naming

import "strings"

// Forms holds the derived variants of one raw snake_case table name.
type Forms struct {
	Camel    string // first segment lowered, rest capitalized: user_type -> userType
	Pascal   string // every segment capitalized: user_type -> UserType
	Singular string
	Plural   string
}

// overrides maps raw table names whose singular/plural pair the general
// rule gets wrong. Keyed by the raw name, not the Pascal form, so an entry
// keeps working even if the casing rules change. Overrides always win.
var overrides = map[string]struct{ Singular, Plural string }{
	"user_type": {"UserType", "UserTypes"},
	"status":    {"Status", "Statuses"},
	"person":    {"Person", "People"},
	"analysis":  {"Analysis", "Analyses"},
}

// Derive computes all name forms for a raw table identifier.
func Derive(raw string) Forms {
	f := Forms{Camel: toCamel(raw), Pascal: toPascal(raw)}
	f.Singular, f.Plural = inflect(f.Pascal)
	if o, ok := overrides[raw]; ok {
		f.Singular, f.Plural = o.Singular, o.Plural
	}
	return f
}

// inflect applies the general singular/plural rule to a Pascal-cased name.
// A name ending in s is taken to be already plural, except for the ss, us
// and is suffixes, which usually end singular words (address, status,
// analysis). Anything that rule mangles belongs in the overrides table.
func inflect(pascal string) (singular, plural string) {
	if strings.HasSuffix(pascal, "s") &&
		!strings.HasSuffix(pascal, "ss") &&
		!strings.HasSuffix(pascal, "us") &&
		!strings.HasSuffix(pascal, "is") {
		return strings.TrimSuffix(pascal, "s"), pascal
	}
	return pascal, pascal + "s"
}

func toPascal(raw string) string {
	parts := strings.Split(raw, "_")
	for i, p := range parts {
		parts[i] = capitalize(p)
	}
	return strings.Join(parts, "")
}

func toCamel(raw string) string {
	parts := strings.Split(raw, "_")
	for i, p := range parts {
		if i == 0 {
			parts[i] = strings.ToLower(p)
		} else {
			parts[i] = capitalize(p)
		}
	}
	return strings.Join(parts, "")
}

// capitalize uppercases the first letter and lowers the rest.
func capitalize(seg string) string {
	if seg == "" {
		return seg
	}
	return strings.ToUpper(seg[:1]) + strings.ToLower(seg[1:])
}

// LowerFirst lowers the first letter, turning a Pascal name into a
// parameter-friendly identifier.
func LowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
