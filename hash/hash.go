// Package hash implements the gateway's shared-secret integrity digest:
// SHA-512 over the concatenated field values plus the integration key.
// The digest covers values only, in field order, so both sides must
// assemble fields in the agreed order before hashing.
package hash

import (
	"crypto/sha512"
	"fmt"
	"strings"

	"paynow-go/form"
)

// Field is the reserved name carrying the digest itself. It is always
// excluded from the hashed input.
const Field = "hash"

// Make computes the uppercase hex digest over the values in their current
// iteration order, skipping any existing hash field.
func Make(values *form.Values, integrationKey string) string {
	var b strings.Builder
	for _, key := range values.Keys() {
		if key == Field {
			continue
		}
		b.WriteString(values.Get(key))
	}
	b.WriteString(integrationKey)

	sum := sha512.Sum512([]byte(b.String()))
	return strings.ToUpper(fmt.Sprintf("%x", sum))
}

// Verify recomputes the digest and compares it, case-insensitively, to
// the hash field. Values without a hash field never verify.
func Verify(values *form.Values, integrationKey string) bool {
	if !values.Has(Field) {
		return false
	}
	return strings.EqualFold(values.Get(Field), Make(values, integrationKey))
}
