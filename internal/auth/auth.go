// Package auth implements the workspace login gate.
//
// A session is scoped either to a single workspace (restricted) or to the
// whole dataset (unrestricted, admin only). The alias and password tables
// are injected configuration; this package never reads them from disk.
package auth

import (
	"errors"
	"strings"
)

// Authentication failures. Both render inline on the login surface and
// never enter the conversation transcript.
var (
	ErrUnknownWorkspace = errors.New("unknown workspace alias")
	ErrWrongPassword    = errors.New("wrong password")
)

// Scope is the data-visibility boundary of a session.
type Scope int

const (
	// ScopeUnrestricted sees every workspace; outbound requests carry no
	// scoping header.
	ScopeUnrestricted Scope = iota
	// ScopeRestricted sees one workspace; outbound requests must carry its
	// identifier.
	ScopeRestricted
)

// Context is the authenticated identity of a session. It is immutable for
// the session lifetime and discarded on logout.
type Context struct {
	Alias       string
	Scope       Scope
	WorkspaceID string
}

// IsAdmin reports whether the context is unrestricted.
func (c Context) IsAdmin() bool { return c.Scope == ScopeUnrestricted }

// Gate authenticates workspace aliases against the injected tables.
type Gate struct {
	adminAlias string
	workspaces map[string]string
	passwords  map[string]string
}

// NewGate builds a gate from configuration tables. An empty admin alias
// defaults to "admin".
func NewGate(adminAlias string, workspaces, passwords map[string]string) *Gate {
	if adminAlias == "" {
		adminAlias = "admin"
	}
	return &Gate{
		adminAlias: strings.ToLower(adminAlias),
		workspaces: workspaces,
		passwords:  passwords,
	}
}

// Authenticate resolves an alias (and password, when the alias is
// password-protected) to a workspace context.
//
// The alias is trimmed and lower-cased before lookup. The password check
// runs first so a protected admin alias cannot be entered with a bad
// password; the reserved admin alias then yields an unrestricted context;
// a mapped alias yields a restricted one. A restricted context always
// carries a non-empty workspace identifier, so an alias mapped to an empty
// id is treated as unknown.
func (g *Gate) Authenticate(alias, password string) (Context, error) {
	alias = strings.ToLower(strings.TrimSpace(alias))
	if alias == "" {
		return Context{}, ErrUnknownWorkspace
	}

	if secret, protected := g.passwords[alias]; protected && password != secret {
		return Context{}, ErrWrongPassword
	}

	if alias == g.adminAlias {
		return Context{Alias: alias, Scope: ScopeUnrestricted}, nil
	}

	if id, ok := g.workspaces[alias]; ok && id != "" {
		return Context{Alias: alias, Scope: ScopeRestricted, WorkspaceID: id}, nil
	}

	return Context{}, ErrUnknownWorkspace
}
