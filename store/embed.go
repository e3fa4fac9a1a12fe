package store

import _ "embed"

// Template is the canonical template content: this package's own source,
// marker comment included. The generator materializes it beside the output
// file on first run and never rewrites it afterwards.
//
//go:embed store.go
var Template string
