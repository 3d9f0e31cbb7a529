package i18n

import "testing"

func TestNormalize(t *testing.T) {
	if got := Normalize("").Code(); got != DefaultLanguage.Code() {
		t.Fatalf("empty normalize should fall back to default, got %q", got)
	}
	if got := Normalize("EN-us"); got != LanguageEnglish {
		t.Fatalf("expected english normalization, got %q", got)
	}
	if got := Normalize("ru_RU"); got != LanguageRussian {
		t.Fatalf("expected russian normalization, got %q", got)
	}
	if got := Normalize("ja"); got != Language("ja") {
		t.Fatalf("expected passthrough for unknown language, got %q", got)
	}
}

func TestDisplayName(t *testing.T) {
	if name := LanguageRussian.DisplayName(); name != "Русский" {
		t.Fatalf("unexpected russian display name: %q", name)
	}
	if name := LanguageEnglish.DisplayName(); name != "English" {
		t.Fatalf("unexpected english display name: %q", name)
	}
	if name := Language("fr").DisplayName(); name != "fr" {
		t.Fatalf("unexpected passthrough display name: %q", name)
	}
}

func TestT(t *testing.T) {
	cases := []struct {
		lang Language
		key  Key
		args []any
		want string
	}{
		{LanguageEnglish, HistoryEmpty, nil, "Empty"},
		{LanguageRussian, HistoryEmpty, nil, "Пусто"},
		{LanguageRussian, NetworkError, []any{"timeout"}, "Ошибка сети: timeout"},
		{Language("fr"), VariablesHeader, nil, "Variables:"},
		{LanguageEnglish, Key("missing"), nil, "missing"},
	}
	for _, tc := range cases {
		if got := T(tc.lang, tc.key, tc.args...); got != tc.want {
			t.Fatalf("T(%q, %q) = %q, want %q", tc.lang, tc.key, got, tc.want)
		}
	}
}

func TestCatalogsCoverSameKeys(t *testing.T) {
	for key := range catalog[LanguageEnglish] {
		if _, ok := catalog[LanguageRussian][key]; !ok {
			t.Fatalf("russian catalog missing %q", key)
		}
	}
}
