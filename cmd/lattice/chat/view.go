// View rendering for the chat TUI: login surface, header, transcript
// replay and footer.
package chat

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"lattice/internal/render"
	"lattice/internal/transcript"
)

func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}
	if m.viewMode == LoginView {
		return m.renderLogin()
	}

	header := m.renderHeader()
	chatView := m.styles.Content.Render(m.viewport.View())

	noticeLine := ""
	if m.notice != "" {
		noticeLine = m.styles.Error.Render(m.notice)
	}

	inputStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.styles.Theme.Accent).
		Padding(0, 1)
	inputArea := inputStyle.Render(m.textarea.View())

	return lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		chatView,
		noticeLine,
		inputArea,
		m.renderFooter(),
	)
}

func (m Model) renderLogin() string {
	title := m.styles.Header.Render(" 🔐 Lattice 로그인 ")

	aliasLabel := m.styles.Bold.Render("워크스페이스 ID")
	passwordLabel := m.styles.Bold.Render("비밀번호")

	errLine := ""
	if m.loginErr != "" {
		errLine = m.styles.Error.Render(m.loginErr)
	}

	hint := m.styles.Muted.Render("Enter: 로그인 │ Tab: 이동 │ Esc: 종료")

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.styles.Theme.Border).
		Padding(1, 2).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			title,
			"",
			aliasLabel,
			m.aliasInput.View(),
			"",
			passwordLabel,
			m.passwordInput.View(),
			"",
			errLine,
			hint,
		))

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

func (m Model) renderHeader() string {
	title := m.styles.Header.Render(" 🔍 Lattice 스타트업 검색 ")

	var who string
	if m.wctx.IsAdmin() {
		who = m.styles.Badge.Render("🔑 Admin")
	} else {
		who = m.styles.Badge.Render(m.wctx.Alias)
	}

	var status string
	if m.isLoading {
		status = lipgloss.JoinHorizontal(lipgloss.Center, m.spinner.View(), " ", m.styles.Muted.Render("검색 중..."))
	} else {
		status = m.styles.Success.Render("Ready")
	}

	headerLine := lipgloss.JoinHorizontal(lipgloss.Center, title, "  ", who, "  ", status)
	return lipgloss.JoinVertical(lipgloss.Left, headerLine, m.styles.RenderDivider(m.width))
}

func (m Model) renderFooter() string {
	timestamp := time.Now().Format("15:04")
	help := fmt.Sprintf("Enter: 검색 │ /help │ /clear │ /logout │ Ctrl+C: 종료 │ %s", timestamp)
	return lipgloss.NewStyle().MarginTop(1).Render(m.styles.Muted.Render(help))
}

// renderHistory replays the stored transcript. Assistant turns render from
// their stored payload and variant, so replay is idempotent.
func (m Model) renderHistory() string {
	var sb strings.Builder

	if m.banner != "" {
		sb.WriteString(m.banner)
		sb.WriteString("\n")
	}

	userStyle := m.styles.Bold.Foreground(m.styles.Theme.Primary).MarginTop(1)
	assistantStyle := m.styles.Bold.Foreground(m.styles.Theme.Accent).MarginTop(1)

	for _, turn := range m.store.All() {
		switch turn.Kind {
		case transcript.KindUser:
			sb.WriteString(userStyle.Render(m.wctx.Alias) + "\n")
			sb.WriteString(m.styles.UserInput.Render(turn.Text))
			sb.WriteString("\n")
		case transcript.KindAssistant:
			sb.WriteString(assistantStyle.Render("Lattice") + "\n")
			sb.WriteString(render.Result(turn.Variant, turn.Envelope, m.styles))
			sb.WriteString("\n")
		}
	}

	return sb.String()
}

// renderMarkdown renders markdown through glamour, falling back to the raw
// text when no renderer is available yet.
func (m Model) renderMarkdown(content string) (result string) {
	defer func() {
		if r := recover(); r != nil {
			result = content
		}
	}()

	if m.renderer != nil && content != "" {
		if rendered, err := m.renderer.Render(content); err == nil {
			return rendered
		}
	}
	return content
}
