// Package transcript keeps the append-only conversation log of a session.
//
// Turns are immutable once appended and replayed in insertion order on
// every redraw. Assistant turns store the raw payload together with its
// classified variant, so replay never re-classifies and renders
// identically every time.
package transcript

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"lattice/internal/search"
)

// Kind distinguishes the two turn sub-kinds.
type Kind int

const (
	// KindUser is a submitted query.
	KindUser Kind = iota
	// KindAssistant is one classified backend outcome.
	KindAssistant
)

// Turn is a single exchange unit.
type Turn struct {
	Kind Kind
	At   time.Time

	// User turns
	Text string

	// Assistant turns
	Status   int
	Raw      json.RawMessage
	Envelope *search.Envelope
	Variant  search.Variant
}

// Store is the ordered, append-only turn log of one session. It is owned
// by the driving loop and never shared across sessions, so it needs no
// locking.
type Store struct {
	sessionID string
	turns     []Turn
}

// New creates an empty store with a fresh session id.
func New() *Store {
	return &Store{sessionID: uuid.NewString()}
}

// SessionID identifies this transcript in logs.
func (s *Store) SessionID() string { return s.sessionID }

// AppendUser records a submitted query.
func (s *Store) AppendUser(text string) {
	s.turns = append(s.turns, Turn{Kind: KindUser, At: time.Now(), Text: text})
}

// AppendAssistant records a classified backend outcome. Transport failures
// never reach this method; they produce no assistant turn at all.
func (s *Store) AppendAssistant(raw []byte, env *search.Envelope, status int, variant search.Variant) {
	s.turns = append(s.turns, Turn{
		Kind:     KindAssistant,
		At:       time.Now(),
		Status:   status,
		Raw:      append(json.RawMessage(nil), raw...),
		Envelope: env,
		Variant:  variant,
	})
}

// All returns the turns in insertion order. The slice is a copy; appending
// to it cannot disturb the store.
func (s *Store) All() []Turn {
	out := make([]Turn, len(s.turns))
	copy(out, s.turns)
	return out
}

// Len returns the number of turns.
func (s *Store) Len() int { return len(s.turns) }

// Reset drops every turn and renews the session id. Called on login and
// logout; it is the only non-append operation.
func (s *Store) Reset() {
	s.turns = nil
	s.sessionID = uuid.NewString()
}
