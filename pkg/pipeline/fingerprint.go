package pipeline

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// Fingerprint returns a SHA-256 hex digest of the rendered output: the path
// string and the label coordinates. Two results with the same fingerprint
// draw identically.
func (r *Result) Fingerprint() string {
	data, _ := json.Marshal([]any{r.Path, r.LabelX, r.LabelY})
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
