package chat

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"lattice/internal/auth"
)

const welcomeMarkdown = `# 🔍 Lattice 스타트업 검색

검색 예시:

- **키워드**: ` + "`토스`, `카카오`" + ` (회사명 직접 검색)
- **조건**: ` + "`핀테크`, `서울 스타트업`, `시리즈A`" + ` (산업/지역/라운드)
- **유사**: ` + "`토스랑 비슷한`, `A기업과 유사한`" + ` (임베딩 검색)
- **복합**: ` + "`서울에서 토스랑 비슷한`" + ` (조건 + 유사)
- **통계**: ` + "`산업별 분포`, `평균 밸류에이션`" + ` (집계)

` + "`/help`" + ` 로 명령어 목록을 볼 수 있습니다.
`

const helpMarkdown = `# 도움말

## 검색 예시

- **키워드**: ` + "`토스`, `카카오`" + ` (회사명 직접 검색)
- **조건**: ` + "`핀테크`, `서울 스타트업`, `시리즈A`" + ` (산업/지역/라운드)
- **유사**: ` + "`토스랑 비슷한`, `A기업과 유사한`" + ` (임베딩 검색)
- **복합**: ` + "`서울에서 토스랑 비슷한`" + ` (조건 + 유사)
- **통계**: ` + "`산업별 분포`, `평균 밸류에이션`" + ` (집계)

## 명령어

| 명령어 | 설명 |
|--------|------|
| /help | 이 도움말 표시 |
| /clear | 대화 내역 초기화 |
| /logout | 로그아웃 후 로그인 화면으로 |
| /quit | 종료 |
`

// handleCommand runs a slash command. Commands never enter the transcript.
func (m Model) handleCommand(input string) (tea.Model, tea.Cmd) {
	m.textarea.Reset()

	cmd := strings.Fields(input)[0]
	switch cmd {
	case "/help":
		m.banner = m.renderMarkdown(helpMarkdown)
		m.notice = ""
		m.viewport.SetContent(m.renderHistory())
		m.viewport.GotoTop()
		return m, nil

	case "/clear":
		m.store.Reset()
		m.banner = m.renderMarkdown(welcomeMarkdown)
		m.notice = ""
		m.viewport.SetContent(m.renderHistory())
		m.viewport.GotoTop()
		return m, nil

	case "/logout":
		m.store.Reset()
		m.wctx = auth.Context{}
		m.viewMode = LoginView
		m.loginFocus = fieldAlias
		m.loginErr = ""
		m.notice = ""
		m.banner = ""
		m.aliasInput.Reset()
		m.passwordInput.Reset()
		m.passwordInput.Blur()
		return m, m.aliasInput.Focus()

	case "/quit", "/exit":
		return m, tea.Quit

	default:
		m.notice = fmt.Sprintf("알 수 없는 명령어: %s (/help 참고)", cmd)
		return m, nil
	}
}
