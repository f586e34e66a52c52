package cache

import (
	"crypto/sha256"
	"encoding/hex"
)

// Key derives a fixed-length cache key from content. Inputs are hashed so
// large programs do not become map keys verbatim. Scope parts separate
// entries computed under different settings; without scope the key is the
// plain content digest.
func Key(content string, scope ...string) string {
	h := sha256.New()
	h.Write([]byte(content))
	for _, part := range scope {
		h.Write([]byte{0})
		h.Write([]byte(part))
	}
	return hex.EncodeToString(h.Sum(nil))
}
