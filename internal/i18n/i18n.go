// Copyright (c) 2026 liuyuxun, 1225
// bigcalc - arbitrary-precision integer calculator
// This source code is licensed under the MIT license found in the LICENSE file.

// package i18n provides internationalization for bigcalc. Translation
// files are embedded YAML loaded through go-i18n; the calculator ships
// English and Simplified Chinese.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"
	"sync"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var localeFS embed.FS

var (
	mu        sync.RWMutex
	bundle    *i18n.Bundle
	localizer *i18n.Localizer
	current   string
)

// displayNames maps locale codes to their self-described names for the
// language picker.
var displayNames = map[string]string{
	"en": "English",
	"zh": "中文（简体）",
}

// Init loads all embedded locale files and activates the given language.
func Init(lang string) {
	mu.Lock()
	defer mu.Unlock()

	bundle = i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)

	files, _ := fs.ReadDir(localeFS, "locales")
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		data, err := localeFS.ReadFile("locales/" + f.Name())
		if err != nil {
			continue
		}
		if _, err := bundle.ParseMessageFileBytes(data, f.Name()); err != nil {
			// A broken locale file should not take the app down; the
			// message IDs simply fall through untranslated.
			continue
		}
	}

	localizer = i18n.NewLocalizer(bundle, lang)
	current = lang
}

// T translates a message by ID. Extra args are applied fmt-style to the
// translated text. Unknown IDs come back verbatim so missing translations
// stay visible instead of crashing.
func T(messageID string, args ...any) string {
	mu.RLock()
	l := localizer
	mu.RUnlock()
	if l == nil {
		Init("en")
		mu.RLock()
		l = localizer
		mu.RUnlock()
	}

	msg, err := l.Localize(&i18n.LocalizeConfig{MessageID: messageID})
	if err != nil {
		msg = messageID
	}
	if len(args) > 0 {
		return fmt.Sprintf(msg, args...)
	}
	return msg
}

// SetLang switches the active language.
func SetLang(lang string) {
	Init(lang)
}

// GetLang returns the active language code.
func GetLang() string {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// GetAvailableLocales returns the embedded locale codes mapped to their
// display names, for the language selection view.
func GetAvailableLocales() map[string]string {
	out := map[string]string{}
	files, _ := fs.ReadDir(localeFS, "locales")
	for _, f := range files {
		code := strings.TrimSuffix(f.Name(), ".yaml")
		if name, ok := displayNames[code]; ok {
			out[code] = name
		} else {
			out[code] = code
		}
	}
	return out
}

// SortedLocaleCodes returns the available locale codes in stable order.
func SortedLocaleCodes() []string {
	codes := make([]string, 0, 2)
	for code := range GetAvailableLocales() {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
