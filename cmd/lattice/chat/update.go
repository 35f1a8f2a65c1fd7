package chat

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"go.uber.org/zap"

	"lattice/internal/auth"
	"lattice/internal/search"
)

// verticalChrome is the number of terminal rows taken by everything that
// is not the transcript viewport: header, input box, notice and footer.
const verticalChrome = 9

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		tiCmd tea.Cmd
		vpCmd tea.Cmd
		spCmd tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		vpHeight := msg.Height - verticalChrome
		if vpHeight < 1 {
			vpHeight = 1
		}
		if !m.ready {
			m.viewport = viewport.New(msg.Width, vpHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = vpHeight
		}
		m.textarea.SetWidth(msg.Width - 4)
		m.aliasInput.Width = 40
		m.passwordInput.Width = 40

		if r, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(msg.Width-4),
		); err == nil {
			m.renderer = r
		}
		if m.viewMode == ChatView && m.banner == "" {
			m.banner = m.renderMarkdown(welcomeMarkdown)
		}
		m.viewport.SetContent(m.renderHistory())
		m.viewport.GotoBottom()
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.viewMode == LoginView {
			return m.updateLogin(msg)
		}
		switch msg.Type {
		case tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			if msg.Alt || msg.Paste {
				break
			}
			if !m.isLoading {
				return m.handleSubmit()
			}
			return m, nil
		}

	case spinner.TickMsg:
		if m.isLoading {
			m.spinner, spCmd = m.spinner.Update(msg)
			return m, spCmd
		}
		return m, nil

	case searchDoneMsg:
		m.isLoading = false
		variant := search.Classify(msg.resp.Status, msg.resp.Envelope)
		m.store.AppendAssistant(msg.resp.Raw, msg.resp.Envelope, msg.resp.Status, variant)
		m.logger.Info("turn recorded",
			zap.String("session_id", m.store.SessionID()),
			zap.Int("status", msg.resp.Status),
			zap.String("variant", variant.String()))
		m.viewport.SetContent(m.renderHistory())
		m.viewport.GotoBottom()
		return m, nil

	case searchFailedMsg:
		m.isLoading = false
		switch msg.err.Kind {
		case search.FailureTimeout:
			m.notice = "요청 시간 초과. 다시 시도해주세요."
		case search.FailureNetwork:
			m.notice = fmt.Sprintf("네트워크 오류: %s", msg.err.Detail)
		default:
			m.notice = fmt.Sprintf("오류 발생: %s", msg.err.Detail)
		}
		m.logger.Warn("search failed",
			zap.String("session_id", m.store.SessionID()),
			zap.String("kind", msg.err.Kind.String()))
		return m, nil
	}

	if m.viewMode == LoginView {
		return m.updateLogin(msg)
	}

	m.textarea, tiCmd = m.textarea.Update(msg)
	m.viewport, vpCmd = m.viewport.Update(msg)
	return m, tea.Batch(tiCmd, vpCmd)
}

// updateLogin drives the two-field login form.
func (m Model) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyTab, tea.KeyShiftTab, tea.KeyUp, tea.KeyDown:
			if m.loginFocus == fieldAlias {
				m.loginFocus = fieldPassword
				m.aliasInput.Blur()
				return m, m.passwordInput.Focus()
			}
			m.loginFocus = fieldAlias
			m.passwordInput.Blur()
			return m, m.aliasInput.Focus()
		case tea.KeyEnter:
			return m.handleLogin()
		}
	}

	var cmd tea.Cmd
	if m.loginFocus == fieldAlias {
		m.aliasInput, cmd = m.aliasInput.Update(msg)
	} else {
		m.passwordInput, cmd = m.passwordInput.Update(msg)
	}
	return m, cmd
}

// handleLogin authenticates the entered alias. Failures stay inline on the
// login surface and never touch the transcript.
func (m Model) handleLogin() (tea.Model, tea.Cmd) {
	alias := strings.TrimSpace(m.aliasInput.Value())
	if alias == "" {
		m.loginErr = "워크스페이스 ID를 입력하세요."
		return m, nil
	}

	wctx, err := m.gate.Authenticate(alias, m.passwordInput.Value())
	switch {
	case errors.Is(err, auth.ErrWrongPassword):
		m.loginErr = "비밀번호가 올바르지 않습니다."
		return m, nil
	case errors.Is(err, auth.ErrUnknownWorkspace):
		m.loginErr = "존재하지 않는 워크스페이스입니다."
		return m, nil
	case err != nil:
		m.loginErr = err.Error()
		return m, nil
	}

	m.wctx = wctx
	m.viewMode = ChatView
	m.loginErr = ""
	m.notice = ""
	m.store.Reset()
	m.banner = m.renderMarkdown(welcomeMarkdown)
	m.passwordInput.Reset()
	m.logger.Info("login",
		zap.String("alias", wctx.Alias),
		zap.Bool("admin", wctx.IsAdmin()),
		zap.String("session_id", m.store.SessionID()))

	m.viewport.SetContent(m.renderHistory())
	m.viewport.GotoBottom()
	return m, m.textarea.Focus()
}

// handleSubmit records the user turn and starts the one outstanding
// backend call. A second submission is rejected while a call is in flight.
func (m Model) handleSubmit() (tea.Model, tea.Cmd) {
	text := strings.TrimSpace(m.textarea.Value())
	if text == "" {
		return m, nil
	}

	if strings.HasPrefix(text, "/") {
		return m.handleCommand(text)
	}

	m.store.AppendUser(text)
	m.textarea.Reset()
	m.notice = ""
	m.isLoading = true
	m.viewport.SetContent(m.renderHistory())
	m.viewport.GotoBottom()

	return m, tea.Batch(m.spinner.Tick, m.processQuery(text))
}
