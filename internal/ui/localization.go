package ui

import (
	"strings"

	"fyne.io/fyne/v2/lang"

	"github.com/ytget/countdown/internal/model"
)

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle        = "app_title"
	KeySettings        = "settings"
	KeyLanguage        = "language"
	KeyTheme           = "theme"
	KeyThemeSystem     = "theme_system"
	KeyThemeLight      = "theme_light"
	KeyThemeDark       = "theme_dark"
	KeyAnimateProgress = "animate_progress"
	KeySave            = "save"
	KeyCancel          = "cancel"
	KeySettingsSaved   = "settings_saved"
	KeyStateIdle       = "state_idle"
	KeyStateRunning    = "state_running"
	KeyStatePaused     = "state_paused"
	KeyStateExpired    = "state_expired"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(code string) {
	if code == "system" {
		code = systemLanguage()
	}

	if _, exists := l.texts[code]; exists {
		l.currentLanguage = code
		return
	}
	l.currentLanguage = "en"
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// StateText returns the caption for a timer state
func (l *Localization) StateText(state model.TimerState) string {
	switch state {
	case model.StateRunning:
		return l.GetText(KeyStateRunning)
	case model.StatePaused:
		return l.GetText(KeyStatePaused)
	case model.StateExpired:
		return l.GetText(KeyStateExpired)
	default:
		return l.GetText(KeyStateIdle)
	}
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// systemLanguage maps the platform locale to a language code, e.g. "pt-BR" to "pt"
func systemLanguage() string {
	locale := strings.ToLower(lang.SystemLocale().LanguageString())
	if idx := strings.IndexAny(locale, "-_"); idx > 0 {
		locale = locale[:idx]
	}
	return locale
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:        "Countdown",
		KeySettings:        "Settings",
		KeyLanguage:        "Language",
		KeyTheme:           "Theme",
		KeyThemeSystem:     "System",
		KeyThemeLight:      "Light",
		KeyThemeDark:       "Dark",
		KeyAnimateProgress: "Smooth progress",
		KeySave:            "Save",
		KeyCancel:          "Cancel",
		KeySettingsSaved:   "Settings saved",
		KeyStateIdle:       "Ready",
		KeyStateRunning:    "Running",
		KeyStatePaused:     "Paused",
		KeyStateExpired:    "Time's up",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:        "Таймер",
		KeySettings:        "Настройки",
		KeyLanguage:        "Язык",
		KeyTheme:           "Тема",
		KeyThemeSystem:     "Системная",
		KeyThemeLight:      "Светлая",
		KeyThemeDark:       "Тёмная",
		KeyAnimateProgress: "Плавный прогресс",
		KeySave:            "Сохранить",
		KeyCancel:          "Отмена",
		KeySettingsSaved:   "Настройки сохранены",
		KeyStateIdle:       "Готов",
		KeyStateRunning:    "Идёт отсчёт",
		KeyStatePaused:     "Пауза",
		KeyStateExpired:    "Время вышло",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:        "Contagem regressiva",
		KeySettings:        "Configurações",
		KeyLanguage:        "Idioma",
		KeyTheme:           "Tema",
		KeyThemeSystem:     "Sistema",
		KeyThemeLight:      "Claro",
		KeyThemeDark:       "Escuro",
		KeyAnimateProgress: "Progresso suave",
		KeySave:            "Salvar",
		KeyCancel:          "Cancelar",
		KeySettingsSaved:   "Configurações salvas",
		KeyStateIdle:       "Pronto",
		KeyStateRunning:    "Em andamento",
		KeyStatePaused:     "Pausado",
		KeyStateExpired:    "Tempo esgotado",
	}
}
