package ui

import (
	"testing"

	"github.com/ytget/countdown/internal/model"
)

func TestLocalization_GetText(t *testing.T) {
	l := NewLocalization()

	if got := l.GetText(KeyAppTitle); got != "Countdown" {
		t.Errorf("Expected English title, got %s", got)
	}

	l.SetLanguage("ru")
	if got := l.GetText(KeySave); got != "Сохранить" {
		t.Errorf("Expected Russian save label, got %s", got)
	}

	// Unknown keys fall back to the key itself
	if got := l.GetText("missing_key"); got != "missing_key" {
		t.Errorf("Expected key fallback, got %s", got)
	}
}

func TestLocalization_SetLanguage(t *testing.T) {
	l := NewLocalization()

	l.SetLanguage("pt")
	if l.GetCurrentLanguage() != "pt" {
		t.Errorf("Expected language 'pt', got %s", l.GetCurrentLanguage())
	}

	l.SetLanguage("xx")
	if l.GetCurrentLanguage() != "en" {
		t.Errorf("Unknown language should fall back to 'en', got %s", l.GetCurrentLanguage())
	}

	l.SetLanguage("system")
	if _, ok := l.texts[l.GetCurrentLanguage()]; !ok {
		t.Errorf("System language resolved to unsupported code %s", l.GetCurrentLanguage())
	}
}

func TestLocalization_StateText(t *testing.T) {
	l := NewLocalization()

	tests := []struct {
		state    model.TimerState
		expected string
	}{
		{model.StateIdle, "Ready"},
		{model.StateRunning, "Running"},
		{model.StatePaused, "Paused"},
		{model.StateExpired, "Time's up"},
	}

	for _, test := range tests {
		if got := l.StateText(test.state); got != test.expected {
			t.Errorf("StateText(%s) = %s, expected %s", test.state, got, test.expected)
		}
	}
}

func TestLocalization_AllLanguagesComplete(t *testing.T) {
	l := NewLocalization()

	for code, texts := range l.texts {
		for key := range l.texts["en"] {
			if _, ok := texts[key]; !ok {
				t.Errorf("Language %s is missing key %s", code, key)
			}
		}
	}
}
