package content

import (
	"encoding/hex"
	"encoding/json"

	"github.com/zeebo/blake3"
)

// Hash returns a deterministic BLAKE3 digest of the post's canonical JSON.
func (b BlogPost) Hash() string { return hashJSON(b) }

// Hash returns a deterministic BLAKE3 digest of the project's canonical JSON.
func (p Project) Hash() string { return hashJSON(p) }

// Hash returns a deterministic BLAKE3 digest of the landing content.
func (l Landing) Hash() string { return hashJSON(l) }

// encoding/json writes struct fields in declaration order, so the encoding is
// stable for equal values.
func hashJSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	sum := blake3.Sum256(b)
	return hex.EncodeToString(sum[:])
}
