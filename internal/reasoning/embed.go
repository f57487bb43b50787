package reasoning

import (
	_ "embed"
	"sort"
)

//go:embed data/frameworks.json
var frameworksJSON []byte

// defaultFrameworks returns a copy of the embedded framework catalog bytes.
func defaultFrameworks() []byte {
	return append([]byte(nil), frameworksJSON...)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
