package util

import (
	"crypto/sha256"
	"encoding/hex"
)

// Fingerprint computes a short stable identifier for a record's raw JSON,
// used to cross-reference drop log lines with the audit report.
func Fingerprint(raw []byte) string {
	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:6])
}
