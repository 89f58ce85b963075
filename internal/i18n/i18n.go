// Package i18n loads the CLI's Korean/English message catalogs and exposes
// a small translation helper, adapted from the teacher's internal/i18n
// package (go-i18n/v2 bundle + golang.org/x/text/language, catalogs
// embedded with go:embed).
package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed messages/*.json
var messagesFS embed.FS

var (
	bundle    *i18n.Bundle
	localizer *i18n.Localizer
	langFlag  string // language set by --lang flag
)

// Init initializes the i18n system, loading both catalogs.
func Init() error {
	bundle = i18n.NewBundle(language.Korean)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	koData, err := messagesFS.ReadFile("messages/ko.json")
	if err != nil {
		return fmt.Errorf("failed to read Korean messages: %w", err)
	}
	bundle.MustParseMessageFileBytes(koData, "ko.json")

	enData, err := messagesFS.ReadFile("messages/en.json")
	if err != nil {
		return fmt.Errorf("failed to read English messages: %w", err)
	}
	bundle.MustParseMessageFileBytes(enData, "en.json")

	lang := detectLanguage()
	localizer = i18n.NewLocalizer(bundle, lang)

	return nil
}

// SetLanguage sets the language for the application.
func SetLanguage(lang string) {
	langFlag = lang
	localizer = i18n.NewLocalizer(bundle, lang)
}

func detectLanguage() string {
	if langFlag != "" {
		return langFlag
	}

	if envLang := os.Getenv("LANG"); envLang != "" {
		parts := strings.Split(envLang, "_")
		if len(parts) > 0 {
			lang := strings.ToLower(parts[0])
			if lang == "ko" || lang == "en" {
				return lang
			}
		}
	}

	if lcAll := os.Getenv("LC_ALL"); lcAll != "" {
		parts := strings.Split(lcAll, "_")
		if len(parts) > 0 {
			lang := strings.ToLower(parts[0])
			if lang == "ko" || lang == "en" {
				return lang
			}
		}
	}

	return "ko"
}

// T translates messageID, optionally interpolating the first data map.
func T(messageID string, data ...map[string]interface{}) string {
	if localizer == nil {
		return messageID
	}

	var templateData map[string]interface{}
	if len(data) > 0 {
		templateData = data[0]
	}

	msg, err := localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    messageID,
		TemplateData: templateData,
	})
	if err != nil {
		return messageID
	}
	return msg
}

// Tf translates messageID and applies fmt.Sprintf-style formatting to it.
func Tf(messageID string, args ...interface{}) string {
	translated := T(messageID)
	if len(args) > 0 {
		return fmt.Sprintf(translated, args...)
	}
	return translated
}

// GetCurrentLanguage returns the current language code.
func GetCurrentLanguage() string {
	if langFlag != "" {
		return langFlag
	}
	return detectLanguage()
}
