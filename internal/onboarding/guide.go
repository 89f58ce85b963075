// Package onboarding renders first-run guidance (API key setup, progress
// and status messages) for the CLI, adapted from the teacher's
// internal/onboarding.Guide.
package onboarding

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/fatih/color"
)

// Guide provides user onboarding assistance.
type Guide struct {
	writer   io.Writer
	useColor bool
}

// NewGuide creates a guide writing to stderr, colored if it's a terminal.
func NewGuide() *Guide {
	return &Guide{
		writer:   os.Stderr,
		useColor: isTerminal() && !isColorDisabled(),
	}
}

// NewGuideWithWriter creates a guide with a custom writer, for testing.
func NewGuideWithWriter(w io.Writer, useColor bool) *Guide {
	return &Guide{writer: w, useColor: useColor}
}

// ShowAPIKeySetup displays the NLIC API key setup guide.
func (g *Guide) ShowAPIKeySetup() {
	if g.useColor {
		g.showColoredAPIKeySetup()
	} else {
		g.showPlainAPIKeySetup()
	}
}

func (g *Guide) showColoredAPIKeySetup() {
	red := color.New(color.FgRed, color.Bold)
	yellow := color.New(color.FgYellow)
	cyan := color.New(color.FgCyan)
	bold := color.New(color.Bold)

	if g.useColor {
		color.NoColor = false
	}

	red.Fprintln(g.writer, "🔐 API 설정이 필요합니다")
	fmt.Fprintln(g.writer)
	fmt.Fprintln(g.writer, "국가법령정보센터 오픈 API를 사용하려면 이메일 인증이 필요합니다.")
	fmt.Fprintln(g.writer)

	bold.Fprintln(g.writer, "📋 설정 방법:")
	fmt.Fprintln(g.writer)

	yellow.Fprintln(g.writer, "1️⃣  Open API 신청하기")
	fmt.Fprint(g.writer, "   → ")
	cyan.Fprintln(g.writer, "https://open.law.go.kr")
	fmt.Fprintln(g.writer, "   • 회원가입 및 로그인")
	fmt.Fprintln(g.writer, "   • [OPEN API] → [OPEN API 신청] 메뉴에서 '법령' 체크")
	fmt.Fprint(g.writer, "   ")
	red.Fprintln(g.writer, "⚠️  중요: 도메인 주소는 반드시 \"도메인 없음\"으로 설정")
	fmt.Fprintln(g.writer)

	yellow.Fprintln(g.writer, "2️⃣  이메일 ID 설정하기")
	fmt.Fprintln(g.writer, "   → gaejeong config set law.key <이메일ID>")
	fmt.Fprintln(g.writer, "   예: example@gmail.com → example")
	fmt.Fprintln(g.writer)
	fmt.Fprintln(g.writer, "💡 팁: 위 명령어를 복사하여 사용하세요!")

	g.showCopyHint()
}

func (g *Guide) showPlainAPIKeySetup() {
	fmt.Fprintln(g.writer, "❌ API 설정이 필요합니다")
	fmt.Fprintln(g.writer)
	fmt.Fprintln(g.writer, "국가법령정보센터 오픈 API를 사용하려면 이메일 인증이 필요합니다.")
	fmt.Fprintln(g.writer)
	fmt.Fprintln(g.writer, "📋 설정 방법:")
	fmt.Fprintln(g.writer)
	fmt.Fprintln(g.writer, "1. Open API 신청하기")
	fmt.Fprintln(g.writer, "   → https://open.law.go.kr")
	fmt.Fprintln(g.writer, "   • 회원가입 및 로그인")
	fmt.Fprintln(g.writer, "   • [OPEN API] → [OPEN API 신청] 메뉴에서 '법령' 체크")
	fmt.Fprintln(g.writer, "   ⚠️  중요: 도메인 주소는 반드시 \"도메인 없음\"으로 설정")
	fmt.Fprintln(g.writer)
	fmt.Fprintln(g.writer, "2. 이메일 ID 설정하기")
	fmt.Fprintln(g.writer, "   → gaejeong config set law.key <이메일ID>")
	fmt.Fprintln(g.writer, "   예: example@gmail.com → example")
	fmt.Fprintln(g.writer)
	fmt.Fprintln(g.writer, "💡 팁: 위 명령어를 복사하여 사용하세요!")

	g.showCopyHint()
}

func (g *Guide) showCopyHint() {
	switch runtime.GOOS {
	case "darwin":
		fmt.Fprintln(g.writer, "   (Mac: Cmd+C로 복사)")
	case "windows":
		fmt.Fprintln(g.writer, "   (Windows: Ctrl+C로 복사 또는 마우스 우클릭)")
	default:
		fmt.Fprintln(g.writer, "   (Linux: Ctrl+Shift+C로 복사)")
	}
}

// ShowSearchProgress displays a search-in-progress message.
func (g *Guide) ShowSearchProgress(query string) {
	if g.useColor {
		color.New(color.FgCyan).Fprintf(g.writer, "🔍 검색 중... (%s)\n", query)
	} else {
		fmt.Fprintf(g.writer, "검색 중... (%s)\n", query)
	}
}

// ShowSuccess displays a success message.
func (g *Guide) ShowSuccess(message string) {
	if g.useColor {
		color.New(color.FgGreen, color.Bold).Fprintf(g.writer, "✅ %s\n", message)
	} else {
		fmt.Fprintf(g.writer, "✅ %s\n", message)
	}
}

// ShowError displays an error message.
func (g *Guide) ShowError(message string) {
	if g.useColor {
		color.New(color.FgRed, color.Bold).Fprintf(g.writer, "❌ %s\n", message)
	} else {
		fmt.Fprintf(g.writer, "❌ %s\n", message)
	}
}

// ShowWarning displays a warning message.
func (g *Guide) ShowWarning(message string) {
	if g.useColor {
		color.New(color.FgYellow).Fprintf(g.writer, "⚠️  %s\n", message)
	} else {
		fmt.Fprintf(g.writer, "! %s\n", message)
	}
}

func isTerminal() bool {
	fileInfo, err := os.Stderr.Stat()
	if err != nil {
		return false
	}
	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}

func isColorDisabled() bool {
	if os.Getenv("NO_COLOR") != "" {
		return true
	}
	return os.Getenv("TERM") == "dumb"
}
