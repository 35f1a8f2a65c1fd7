package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGate() *Gate {
	return NewGate("admin",
		map[string]string{
			"cogp":      "ws-1",
			"bluepoint": "ws-2",
			"broken":    "",
		},
		map[string]string{
			"bluepoint": "tulip",
		},
	)
}

func TestAuthenticate_Admin(t *testing.T) {
	ctx, err := newTestGate().Authenticate("admin", "")
	require.NoError(t, err)
	assert.True(t, ctx.IsAdmin())
	assert.Equal(t, ScopeUnrestricted, ctx.Scope)
	assert.Empty(t, ctx.WorkspaceID)
}

func TestAuthenticate_Restricted(t *testing.T) {
	ctx, err := newTestGate().Authenticate("cogp", "")
	require.NoError(t, err)
	assert.False(t, ctx.IsAdmin())
	assert.Equal(t, ScopeRestricted, ctx.Scope)
	assert.Equal(t, "ws-1", ctx.WorkspaceID)
}

func TestAuthenticate_TrimsAndLowercases(t *testing.T) {
	ctx, err := newTestGate().Authenticate("  CoGP \n", "")
	require.NoError(t, err)
	assert.Equal(t, "cogp", ctx.Alias)
	assert.Equal(t, "ws-1", ctx.WorkspaceID)
}

func TestAuthenticate_UnknownAlias(t *testing.T) {
	_, err := newTestGate().Authenticate("nobody", "")
	assert.ErrorIs(t, err, ErrUnknownWorkspace)
}

func TestAuthenticate_EmptyAlias(t *testing.T) {
	_, err := newTestGate().Authenticate("   ", "")
	assert.ErrorIs(t, err, ErrUnknownWorkspace)
}

func TestAuthenticate_WrongPassword(t *testing.T) {
	g := newTestGate()

	_, err := g.Authenticate("bluepoint", "rose")
	assert.ErrorIs(t, err, ErrWrongPassword)

	ctx, err := g.Authenticate("bluepoint", "tulip")
	require.NoError(t, err)
	assert.Equal(t, "ws-2", ctx.WorkspaceID)
}

func TestAuthenticate_EmptyWorkspaceIDIsUnknown(t *testing.T) {
	// A restricted context must always carry a non-empty identifier.
	_, err := newTestGate().Authenticate("broken", "")
	assert.ErrorIs(t, err, ErrUnknownWorkspace)
}
