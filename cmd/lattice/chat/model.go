// Package chat provides the interactive TUI for the Lattice search client.
package chat

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"lattice/internal/auth"
	"lattice/internal/config"
	"lattice/internal/search"
	"lattice/internal/transcript"
	"lattice/internal/ui"
)

// New builds the chat model in the login view. The model owns its
// conversation store and workspace context exclusively.
func New(cfg *config.Config, logger *zap.Logger) Model {
	styles := ui.NewStyles(ui.ThemeFor(cfg.UI.Theme))

	alias := textinput.New()
	alias.Placeholder = "워크스페이스 ID 입력"
	alias.CharLimit = 64
	alias.Focus()

	password := textinput.New()
	password.Placeholder = "비밀번호 (없으면 비워두기)"
	password.CharLimit = 128
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	ta := textarea.New()
	ta.Placeholder = "예: 서울에 있는 핀테크"
	ta.Prompt = "┃ "
	ta.SetHeight(1)
	ta.ShowLineNumbers = false
	ta.KeyMap.InsertNewline.SetEnabled(false)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.Info

	return Model{
		cfg:           cfg,
		styles:        styles,
		logger:        logger,
		client:        search.NewClient(cfg.API, logger),
		gate:          auth.NewGate(cfg.Auth.AdminAlias, cfg.Auth.Workspaces, cfg.Auth.Passwords),
		store:         transcript.New(),
		viewMode:      LoginView,
		aliasInput:    alias,
		passwordInput: password,
		textarea:      ta,
		spinner:       sp,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick)
}

// Run starts the chat TUI and blocks until the user quits.
func Run(cfg *config.Config, logger *zap.Logger) error {
	p := tea.NewProgram(New(cfg, logger), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running chat interface: %w", err)
	}
	return nil
}
