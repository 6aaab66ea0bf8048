package fixture

import (
	"bytes"
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

// Fingerprint returns a hex BLAKE2b-256 digest of the table's canonical
// fixture encoding. Equal tables always produce equal fingerprints.
func (t *Table) Fingerprint() string {
	var buf bytes.Buffer
	if err := Encode(&buf, t); err != nil {
		return ""
	}
	sum := blake2b.Sum256(buf.Bytes())
	return hex.EncodeToString(sum[:])
}
