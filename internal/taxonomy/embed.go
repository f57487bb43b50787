package taxonomy

import (
	_ "embed"
)

//go:embed data/roles.json
var rolesJSON []byte

// defaultRoles returns a copy of the embedded catalog bytes.
func defaultRoles() []byte {
	return append([]byte(nil), rolesJSON...)
}
