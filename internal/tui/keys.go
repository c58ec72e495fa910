package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the board's key bindings
type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	Delete key.Binding

	NewTask     key.Binding
	NewCategory key.Binding
	NewTag      key.Binding

	Search         key.Binding
	CategoryFilter key.Binding
	StatusFilter   key.Binding
	Refresh        key.Binding

	// Form navigation
	Next   key.Binding
	Prev   key.Binding
	Left   key.Binding
	Right  key.Binding
	Select key.Binding
	Submit key.Binding
	Cancel key.Binding

	Quit key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Toggle: key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space", "toggle")),
		Delete: key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d", "delete")),

		NewTask:     key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new task")),
		NewCategory: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "new category")),
		NewTag:      key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "new tag")),

		Search:         key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		CategoryFilter: key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "category")),
		StatusFilter:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "status")),
		Refresh:        key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),

		Next:   key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "next field")),
		Prev:   key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "prev field")),
		Left:   key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "previous")),
		Right:  key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "next")),
		Select: key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "select")),
		Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
		Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),

		Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp returns the bindings shown in the list footer
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.Up, k.Down, k.Toggle, k.Delete, k.NewTask, k.NewCategory, k.NewTag,
		k.Search, k.CategoryFilter, k.StatusFilter, k.Refresh, k.Quit,
	}
}
