package onboarding

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewGuide(t *testing.T) {
	guide := NewGuide()
	if guide == nil || guide.writer == nil {
		t.Error("Expected guide and writer to be set")
	}
}

func TestShowAPIKeySetupPlain(t *testing.T) {
	var buf bytes.Buffer
	guide := NewGuideWithWriter(&buf, false)
	guide.ShowAPIKeySetup()

	output := buf.String()
	for _, expected := range []string{
		"API 설정이 필요합니다",
		"국가법령정보센터 오픈 API",
		"설정 방법:",
		"Open API 신청하기",
		"https://open.law.go.kr",
		"도메인 없음",
		"이메일 ID 설정하기",
		"gaejeong config set law.key",
	} {
		if !strings.Contains(output, expected) {
			t.Errorf("Output should contain %q, got %q", expected, output)
		}
	}
}

func TestShowAPIKeySetupColored(t *testing.T) {
	var buf bytes.Buffer
	guide := NewGuideWithWriter(&buf, true)
	guide.ShowAPIKeySetup()

	output := buf.String()
	for _, expected := range []string{"API 설정이 필요합니다", "Open API 신청하기", "도메인 없음"} {
		if !strings.Contains(output, expected) {
			t.Errorf("Output should contain %q", expected)
		}
	}
}

func TestShowSuccessAndError(t *testing.T) {
	var buf bytes.Buffer
	guide := NewGuideWithWriter(&buf, false)

	guide.ShowSuccess("완료")
	if !strings.Contains(buf.String(), "✅ 완료") {
		t.Errorf("ShowSuccess output = %q", buf.String())
	}

	buf.Reset()
	guide.ShowError("실패")
	if !strings.Contains(buf.String(), "❌ 실패") {
		t.Errorf("ShowError output = %q", buf.String())
	}

	buf.Reset()
	guide.ShowWarning("주의")
	if !strings.Contains(buf.String(), "주의") {
		t.Errorf("ShowWarning output = %q", buf.String())
	}
}

func TestShowSearchProgress(t *testing.T) {
	var buf bytes.Buffer
	guide := NewGuideWithWriter(&buf, false)
	guide.ShowSearchProgress("지방법원")
	if !strings.Contains(buf.String(), "지방법원") {
		t.Errorf("ShowSearchProgress output = %q", buf.String())
	}
}
