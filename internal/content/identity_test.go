package content

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveCartIDAuthenticated(t *testing.T) {
	tokens := NewMemoryTokenStore()

	got := ResolveCartID("user-42", tokens)

	assert.Equal(t, "cart_user-42", got)
	_, ok := tokens.Get(AnonTokenKey)
	assert.False(t, ok, "authenticated resolution must not persist an anonymous token")
}

func TestResolveCartIDAnonymousPersistsToken(t *testing.T) {
	tokens := NewMemoryTokenStore()

	first := ResolveCartID("", tokens)
	require.True(t, strings.HasPrefix(first, "guest_"))

	persisted, ok := tokens.Get(AnonTokenKey)
	require.True(t, ok)
	assert.Equal(t, first, persisted)

	second := ResolveCartID("", tokens)
	assert.Equal(t, first, second, "resolution must be idempotent for unchanged identity")
}

func TestResolveCartIDIdempotentAuthenticated(t *testing.T) {
	tokens := NewMemoryTokenStore()

	assert.Equal(t, ResolveCartID("u1", tokens), ResolveCartID("u1", tokens))
}

func TestResolveCartIDLoginKeepsAnonymousToken(t *testing.T) {
	tokens := NewMemoryTokenStore()

	anon := ResolveCartID("", tokens)
	authed := ResolveCartID("u1", tokens)

	assert.Equal(t, "cart_u1", authed)
	persisted, ok := tokens.Get(AnonTokenKey)
	require.True(t, ok)
	assert.Equal(t, anon, persisted, "login must not delete the anonymous token")
}
