package identity

import (
	"strings"

	hashid "github.com/goliatone/hashid/pkg/hashid"
	"github.com/google/uuid"
)

const tokenLength = 8

// Token returns a short random alphanumeric token suitable for namespacing
// nested block identifiers. Tokens are a convenience, not a uniqueness
// guarantee: two calls are overwhelmingly unlikely to collide within one
// conversion but nothing enforces it.
func Token() string {
	id := uuid.NewString()
	compact := strings.ReplaceAll(id, "-", "")
	return compact[:tokenLength]
}

// DeterministicUUID derives a stable UUID from a key using go-hashid.
//
// Callers must ensure key construction prevents cross-entity collisions (prefix by domain/type).
func DeterministicUUID(key string) uuid.UUID {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		return uuid.Nil
	}
	uid, err := hashid.NewUUID(trimmed, hashid.WithHashAlgorithm(hashid.SHA256), hashid.WithNormalization(true))
	if err != nil || uid == uuid.Nil {
		return uuid.NewSHA1(uuid.NameSpaceOID, []byte(trimmed))
	}
	return uid
}

// ProductToken derives a stable short token for a product roundup entry so
// re-running the expander over the same product yields identical markup.
func ProductToken(productID string) string {
	uid := DeterministicUUID("go-gutenberg:product:" + strings.TrimSpace(productID))
	compact := strings.ReplaceAll(uid.String(), "-", "")
	return compact[:tokenLength]
}
