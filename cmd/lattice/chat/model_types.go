package chat

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/glamour"
	"go.uber.org/zap"

	"lattice/internal/auth"
	"lattice/internal/config"
	"lattice/internal/search"
	"lattice/internal/transcript"
	"lattice/internal/ui"
)

// ViewMode determines which surface is focused/active.
type ViewMode int

const (
	LoginView ViewMode = iota
	ChatView
)

// loginField tracks which login input has focus.
type loginField int

const (
	fieldAlias loginField = iota
	fieldPassword
)

// Model is the main model for the interactive chat interface.
type Model struct {
	cfg    *config.Config
	styles ui.Styles
	logger *zap.Logger

	// Backend
	client *search.Client
	gate   *auth.Gate
	store  *transcript.Store

	viewMode ViewMode
	wctx     auth.Context

	// Login surface
	aliasInput    textinput.Model
	passwordInput textinput.Model
	loginFocus    loginField
	loginErr      string

	// Chat surface
	textarea textarea.Model
	viewport viewport.Model
	spinner  spinner.Model
	renderer *glamour.TermRenderer

	// banner is rendered above the transcript: the welcome text after
	// login, or help output after /help. It is display state, never a turn.
	banner string

	// notice is a one-off line below the transcript, used for transport
	// failures and command feedback. Cleared on the next submit.
	notice string

	isLoading bool
	width     int
	height    int
	ready     bool
}

// searchDoneMsg carries a backend response, including non-200 responses.
type searchDoneMsg struct {
	resp *search.Response
}

// searchFailedMsg carries a transport failure. No assistant turn is
// recorded for these; the user resubmits.
type searchFailedMsg struct {
	err *search.TransportError
}
