package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap 定义界面按键绑定，同时用于帮助信息。
type keyMap struct {
	Submit   key.Binding
	Focus    key.Binding
	Close    key.Binding
	Help     key.Binding
	Vars     key.Binding
	History  key.Binding
	Clear    key.Binding
	Copy     key.Binding
	Toggle   key.Binding
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Top      key.Binding
	Bottom   key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "send / pick card"),
		),
		Focus: key.NewBinding(
			key.WithKeys("ctrl+k", "alt+k"),
			key.WithHelp("ctrl+k", "focus input, select all"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close history"),
		),
		Help: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("f1", "help"),
		),
		Vars: key.NewBinding(
			key.WithKeys("f2"),
			key.WithHelp("f2", "variables"),
		),
		History: key.NewBinding(
			key.WithKeys("f3"),
			key.WithHelp("f3", "history"),
		),
		Clear: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("ctrl+l", "clear"),
		),
		Copy: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("ctrl+y", "copy card / last result"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "complete / switch panel"),
		),
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "previous"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "next"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "scroll up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdn", "scroll down"),
		),
		Top: key.NewBinding(
			key.WithKeys("ctrl+home"),
			key.WithHelp("ctrl+home", "top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("ctrl+end"),
			key.WithHelp("ctrl+end", "bottom"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// ShortHelp 用于状态栏。
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Vars, k.History, k.Clear, k.Quit}
}

// FullHelp 按列分组：输入、面板、滚动、全局。
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Submit, k.Focus, k.Up, k.Down},
		{k.History, k.Close, k.Toggle, k.Copy},
		{k.PageUp, k.PageDown, k.Top, k.Bottom},
		{k.Help, k.Vars, k.Clear, k.Quit},
	}
}
