package terms

import (
	_ "embed"
)

//go:embed data/terms.json
var termsJSON []byte

// defaultTerms returns a copy of the embedded term database bytes.
func defaultTerms() []byte {
	return append([]byte(nil), termsJSON...)
}
