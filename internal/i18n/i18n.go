package i18n

import (
	"fmt"
	"strings"
)

// Language 描述界面使用的语言。
// 使用简短的语言代码（如 en、ru），便于在配置中传递。
type Language string

const (
	LanguageEnglish Language = "en"
	LanguageRussian Language = "ru"

	// DefaultLanguage 未配置时的默认语言。
	DefaultLanguage = LanguageEnglish
)

// Normalize 将用户输入的语言值转换为统一的语言代码。
// 空字符串回退到默认语言，未知值原样返回。
func Normalize(value string) Language {
	lang := strings.ToLower(strings.TrimSpace(value))
	switch lang {
	case "":
		return DefaultLanguage
	case "en", "en-us", "en_us", "en-gb", "english":
		return LanguageEnglish
	case "ru", "ru-ru", "ru_ru", "russian", "русский":
		return LanguageRussian
	default:
		return Language(lang)
	}
}

// Code 返回规范化后的语言代码，空值回退到默认语言。
func (l Language) Code() string {
	if l == "" {
		return string(DefaultLanguage)
	}
	return string(Normalize(string(l)))
}

// DisplayName 返回适合展示的语言名称。
// 已知语言返回标准名称，未知语言则直接返回原始代码。
func (l Language) DisplayName() string {
	switch Normalize(string(l)) {
	case LanguageEnglish:
		return "English"
	case LanguageRussian:
		return "Русский"
	default:
		return strings.TrimSpace(string(l))
	}
}

// Key 标识一条界面文案。
type Key string

const (
	NetworkError       Key = "network_error"
	VariablesHeader    Key = "variables_header"
	VariablesLoadError Key = "variables_load_error"
	HistoryLoadError   Key = "history_load_error"
	HistoryTitle       Key = "history_title"
	HistoryEmpty       Key = "history_empty"
	HistoryNoMatches   Key = "history_no_matches"
	CardLabel          Key = "card_label"
	HistoryCleared     Key = "history_cleared"
	ClearHistoryError  Key = "clear_history_error"
	Exported           Key = "exported"
	ExportError        Key = "export_error"
	Copied             Key = "copied"
	CopyError          Key = "copy_error"
	InputPlaceholder   Key = "input_placeholder"
	Welcome            Key = "welcome"
	UnknownCommand     Key = "unknown_command"
	Usage              Key = "usage"
	ToolbarVars        Key = "toolbar_vars"
	ToolbarHistory     Key = "toolbar_history"
	ToolbarClear       Key = "toolbar_clear"
	FilterHint         Key = "filter_hint"
	Pending            Key = "pending"
	NothingToCopy      Key = "nothing_to_copy"
	HelpKeys           Key = "help_keys"
	HelpCommands       Key = "help_commands"
)

var catalog = map[Language]map[Key]string{
	LanguageEnglish: {
		NetworkError:       "Network error: %v",
		VariablesHeader:    "Variables:",
		VariablesLoadError: "Failed to load variables: %v",
		HistoryLoadError:   "Failed to load history: %v",
		HistoryTitle:       "History",
		HistoryEmpty:       "Empty",
		HistoryNoMatches:   "No matches",
		CardLabel:          "Command",
		HistoryCleared:     "History cleared.",
		ClearHistoryError:  "Failed to clear history: %v",
		Exported:           "Transcript exported to %s",
		ExportError:        "Export failed: %v",
		Copied:             "Copied to clipboard.",
		CopyError:          "Copy failed: %v",
		InputPlaceholder:   "Type an expression, e.g. (5 + 3) * 2",
		Welcome:            "Connected to %s. F1 help • F2 variables • F3 history • Ctrl+L clear",
		UnknownCommand:     "Unknown command %s. Try /help.",
		Usage:              "usage: %s",
		ToolbarVars:        "Vars",
		ToolbarHistory:     "History",
		ToolbarClear:       "Clear",
		FilterHint:         "type to filter",
		Pending:            "waiting for %d response(s)",
		NothingToCopy:      "Nothing to copy.",
		HelpKeys:           "Keys:",
		HelpCommands:       "Commands:",
	},
	LanguageRussian: {
		NetworkError:       "Ошибка сети: %v",
		VariablesHeader:    "Переменные:",
		VariablesLoadError: "Ошибка загрузки переменных: %v",
		HistoryLoadError:   "Ошибка загрузки истории: %v",
		HistoryTitle:       "История",
		HistoryEmpty:       "Пусто",
		HistoryNoMatches:   "Нет совпадений",
		CardLabel:          "Команда",
		HistoryCleared:     "История очищена.",
		ClearHistoryError:  "Ошибка очистки истории: %v",
		Exported:           "Журнал сохранён в %s",
		ExportError:        "Ошибка экспорта: %v",
		Copied:             "Скопировано в буфер обмена.",
		CopyError:          "Ошибка копирования: %v",
		InputPlaceholder:   "Введите выражение, например (5 + 3) * 2",
		Welcome:            "Подключено к %s. F1 справка • F2 переменные • F3 история • Ctrl+L очистить",
		UnknownCommand:     "Неизвестная команда %s. Попробуйте /help.",
		Usage:              "использование: %s",
		ToolbarVars:        "Переменные",
		ToolbarHistory:     "История",
		ToolbarClear:       "Очистить",
		FilterHint:         "введите текст для поиска",
		Pending:            "ожидание ответов: %d",
		NothingToCopy:      "Нечего копировать.",
		HelpKeys:           "Клавиши:",
		HelpCommands:       "Команды:",
	},
}

// T 返回指定语言的文案，缺失时回退到英文；args 非空时按 fmt 格式化。
func T(lang Language, key Key, args ...any) string {
	text, ok := catalog[Normalize(string(lang))][key]
	if !ok {
		text, ok = catalog[DefaultLanguage][key]
	}
	if !ok {
		return string(key)
	}
	if len(args) == 0 {
		return text
	}
	return fmt.Sprintf(text, args...)
}
