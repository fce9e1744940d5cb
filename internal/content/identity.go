package content

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ResolveCartID produces a stable cart identifier for the current identity.
//
// Authenticated users get a deterministic id derived from their user id, so the
// same user reattaches to the same server-side cart across devices. Anonymous
// sessions reuse a persisted token, synthesizing and persisting one on first
// use. Resolution is idempotent for an unchanged identity.
func ResolveCartID(userID string, tokens TokenStore) string {
	if userID != "" {
		return "cart_" + userID
	}
	if tok, ok := tokens.Get(AnonTokenKey); ok && tok != "" {
		return tok
	}
	tok := newAnonToken()
	tokens.Set(AnonTokenKey, tok)
	return tok
}

func newAnonToken() string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("guest_%d_%s", time.Now().UnixMilli(), suffix)
}
