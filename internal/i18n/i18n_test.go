package i18n

import "testing"

func TestTranslatorLookup(t *testing.T) {
	es := "es"
	tr := New(&es)

	if got := tr.T("habits.sleep"); got != "Sueño" {
		t.Errorf("T(habits.sleep) = %q", got)
	}
	// Missing key falls back to English, then the key itself.
	if got := tr.T("no.such.key"); got != "no.such.key" {
		t.Errorf("T(no.such.key) = %q", got)
	}
}

func TestTranslatorUnsupportedLanguageFallsBack(t *testing.T) {
	fr := "fr"
	tr := New(&fr)

	if got := tr.T("habits.sleep"); got != "Sleep" {
		t.Errorf("expected English fallback, got %q", got)
	}
}

func TestNormalizeLocaleStrings(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"es", "es"},
		{"ES", "es"},
		{"es_MX.UTF-8", "es"},
		{"de-DE", "de"},
		{"en_US", "en"},
	}
	for _, tt := range tests {
		if got := normalize(tt.in); got != tt.want {
			t.Errorf("normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDetectFromEnvironment(t *testing.T) {
	t.Setenv("LC_ALL", "")
	t.Setenv("LANG", "de_DE.UTF-8")
	if got := Detect(); got != "de" {
		t.Errorf("Detect() = %q, want de", got)
	}

	t.Setenv("LANG", "pt_BR")
	if got := Detect(); got != FallbackLanguage {
		t.Errorf("Detect() = %q, want fallback", got)
	}

	// LC_ALL wins over LANG.
	t.Setenv("LC_ALL", "es_ES")
	if got := Detect(); got != "es" {
		t.Errorf("Detect() = %q, want es", got)
	}
}

func TestIsSupported(t *testing.T) {
	for _, lang := range Supported() {
		if !IsSupported(lang) {
			t.Errorf("Supported language %q not recognized", lang)
		}
	}
	if IsSupported("zz") {
		t.Error("expected zz to be unsupported")
	}
}
