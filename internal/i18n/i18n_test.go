// Copyright (c) 2026 liuyuxun, 1225
// bigcalc - arbitrary-precision integer calculator
// This source code is licensed under the MIT license found in the LICENSE file.

package i18n

import "testing"

func TestInitAndAvailableLocales(t *testing.T) {
	Init("en")
	if GetLang() != "en" {
		t.Fatalf("expected lang 'en', got %q", GetLang())
	}

	av := GetAvailableLocales()
	for _, k := range []string{"en", "zh"} {
		if _, ok := av[k]; !ok {
			t.Fatalf("expected available locale %q to be present", k)
		}
	}
	if av["zh"] != "中文（简体）" {
		t.Fatalf("unexpected display name for zh: %q", av["zh"])
	}
}

func TestT_BasicAndFormatting(t *testing.T) {
	Init("en")

	if got := T("menu.calculator"); got != "Calculator" {
		t.Fatalf("expected 'Calculator', got %q", got)
	}
	if got := T("dashboard.history_count", 7); got != "Calculations stored: 7" {
		t.Fatalf("unexpected formatted translation: %q", got)
	}

	SetLang("zh")
	if GetLang() != "zh" {
		t.Fatalf("expected lang 'zh', got %q", GetLang())
	}
	if got := T("menu.calculator"); got != "计算器" {
		t.Fatalf("expected Chinese translation, got %q", got)
	}
	if got := T("errors.division_by_zero"); got != "错误：除数不能为0！" {
		t.Fatalf("unexpected Chinese error text: %q", got)
	}

	SetLang("en")
}

func TestT_UnknownIDFallsThrough(t *testing.T) {
	Init("en")
	if got := T("no.such.id"); got != "no.such.id" {
		t.Fatalf("expected message ID fallback, got %q", got)
	}
}

func TestSortedLocaleCodes(t *testing.T) {
	codes := SortedLocaleCodes()
	if len(codes) < 2 {
		t.Fatalf("expected at least 2 locales, got %v", codes)
	}
	for i := 1; i < len(codes); i++ {
		if codes[i-1] >= codes[i] {
			t.Fatalf("codes not sorted: %v", codes)
		}
	}
}
