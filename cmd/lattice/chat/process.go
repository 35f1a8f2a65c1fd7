package chat

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"lattice/internal/search"
)

// processQuery returns the command that performs the backend call. The
// client applies the configured request timeout; there is no user-driven
// cancellation, the call completes, times out or transport-fails.
func (m Model) processQuery(query string) tea.Cmd {
	client := m.client
	wctx := m.wctx
	return func() tea.Msg {
		resp, err := client.Search(context.Background(), query, wctx)
		if err != nil {
			var terr *search.TransportError
			if !errors.As(err, &terr) {
				terr = &search.TransportError{Kind: search.FailureUnexpected, Detail: err.Error(), Err: err}
			}
			return searchFailedMsg{err: terr}
		}
		return searchDoneMsg{resp: resp}
	}
}
