// Package tui renders the task board in the terminal.
package tui

import (
	"context"
	"strconv"
	"strings"

	"taskboard/internal/board"
	"taskboard/internal/domain"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Mode is the part of the board that receives key presses
type Mode int

const (
	ModeList Mode = iota
	ModeSearch
	ModeTaskForm
	ModeCategoryForm
	ModeTagForm
)

// Task form fields, in tab order
const (
	fieldTitle = iota
	fieldDescription
	fieldCategory
	fieldTags
	taskFieldCount
)

type refreshedMsg struct{ err error }

type mutationMsg struct {
	mode Mode
	err  error
}

// Model is the bubbletea model for the board
type Model struct {
	ctx    context.Context
	store  *board.Store
	keys   KeyMap
	styles *Styles

	width  int
	height int

	mode   Mode
	cursor int
	err    error

	search textinput.Model

	// task form
	title       textinput.Model
	description textinput.Model
	field       int
	tagCursor   int

	// category and tag forms share these inputs
	labelName  textinput.Model
	labelColor textinput.Model
	labelField int
}

// New creates the board model. ctx bounds every request the board makes.
func New(ctx context.Context, store *board.Store) *Model {
	search := textinput.New()
	search.Placeholder = "Search tasks..."
	search.CharLimit = 100

	title := textinput.New()
	title.Placeholder = "Task title..."
	title.CharLimit = 200

	description := textinput.New()
	description.Placeholder = "Description (optional)..."
	description.CharLimit = 1000

	labelName := textinput.New()
	labelName.Placeholder = "Name"
	labelName.CharLimit = 100

	labelColor := textinput.New()
	labelColor.Placeholder = "#rrggbb"
	labelColor.CharLimit = 7

	return &Model{
		ctx:         ctx,
		store:       store,
		keys:        DefaultKeyMap(),
		styles:      NewStyles(DefaultTheme),
		search:      search,
		title:       title,
		description: description,
		labelName:   labelName,
		labelColor:  labelColor,
	}
}

// Mode returns the active mode
func (m *Model) Mode() Mode {
	return m.mode
}

// Err returns the last request error, if any
func (m *Model) Err() error {
	return m.err
}

func (m *Model) Init() tea.Cmd {
	return m.refresh
}

func (m *Model) refresh() tea.Msg {
	return refreshedMsg{err: m.store.Refresh(m.ctx)}
}

func (m *Model) mutate(fn func(ctx context.Context) error) tea.Cmd {
	mode := m.mode
	return func() tea.Msg {
		return mutationMsg{mode: mode, err: fn(m.ctx)}
	}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case refreshedMsg:
		m.err = msg.err
		m.clampCursor()
		return m, nil

	case mutationMsg:
		m.err = msg.err
		m.clampCursor()
		if msg.err == nil && msg.mode == m.mode {
			m.closeForm()
		}
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case ModeSearch:
			return m.updateSearch(msg)
		case ModeTaskForm:
			return m.updateTaskForm(msg)
		case ModeCategoryForm, ModeTagForm:
			return m.updateLabelForm(msg)
		default:
			return m.updateList(msg)
		}
	}
	return m, nil
}

func (m *Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	st := m.store.Snapshot()
	visible := st.Visible()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(visible)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Toggle):
		if task, ok := m.selected(visible); ok {
			return m, m.mutate(func(ctx context.Context) error { return m.store.ToggleTask(ctx, task.ID) })
		}

	case key.Matches(msg, m.keys.Delete):
		if task, ok := m.selected(visible); ok {
			return m, m.mutate(func(ctx context.Context) error { return m.store.DeleteTask(ctx, task.ID) })
		}

	case key.Matches(msg, m.keys.Refresh):
		return m, m.refresh

	case key.Matches(msg, m.keys.Search):
		m.mode = ModeSearch
		return m, m.search.Focus()

	case key.Matches(msg, m.keys.CategoryFilter):
		m.store.SetCategoryFilter(cycleCategory(st.Filter.CategoryID, st.Categories, 1))
		m.cursor = 0

	case key.Matches(msg, m.keys.StatusFilter):
		m.store.SetStatusFilter(st.Filter.Status.Next())
		m.cursor = 0

	case key.Matches(msg, m.keys.NewTask):
		m.mode = ModeTaskForm
		m.field = fieldTitle
		m.tagCursor = 0
		m.title.SetValue(st.TaskDraft.Title)
		m.description.SetValue(st.TaskDraft.Description)
		return m, m.focusTaskField()

	case key.Matches(msg, m.keys.NewCategory):
		m.openLabelForm(ModeCategoryForm, st.CategoryDraft, st.ShowCategoryForm)
		return m, m.labelName.Focus()

	case key.Matches(msg, m.keys.NewTag):
		m.openLabelForm(ModeTagForm, st.TagDraft, st.ShowTagForm)
		return m, m.labelName.Focus()
	}

	return m, nil
}

func (m *Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.search.SetValue("")
		m.store.SetSearch("")
		m.search.Blur()
		m.mode = ModeList
		return m, nil
	case key.Matches(msg, m.keys.Submit):
		m.search.Blur()
		m.mode = ModeList
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.store.SetSearch(m.search.Value())
	m.cursor = 0
	return m, cmd
}

func (m *Model) updateTaskForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	st := m.store.Snapshot()

	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.syncTaskDraft()
		m.mode = ModeList
		m.blurTaskInputs()
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		m.syncTaskDraft()
		if strings.TrimSpace(m.title.Value()) == "" {
			return m, nil
		}
		return m, m.mutate(m.store.CreateTask)

	case key.Matches(msg, m.keys.Next):
		m.field = (m.field + 1) % taskFieldCount
		return m, m.focusTaskField()

	case key.Matches(msg, m.keys.Prev):
		m.field = (m.field + taskFieldCount - 1) % taskFieldCount
		return m, m.focusTaskField()
	}

	switch m.field {
	case fieldCategory:
		switch {
		case key.Matches(msg, m.keys.Right):
			m.store.SetDraftCategory(cycleCategory(st.TaskDraft.CategoryID, st.Categories, 1))
		case key.Matches(msg, m.keys.Left):
			m.store.SetDraftCategory(cycleCategory(st.TaskDraft.CategoryID, st.Categories, -1))
		}
		return m, nil

	case fieldTags:
		switch {
		case key.Matches(msg, m.keys.Right):
			if m.tagCursor < len(st.Tags)-1 {
				m.tagCursor++
			}
		case key.Matches(msg, m.keys.Left):
			if m.tagCursor > 0 {
				m.tagCursor--
			}
		case key.Matches(msg, m.keys.Select):
			if m.tagCursor < len(st.Tags) {
				m.store.ToggleDraftTag(st.Tags[m.tagCursor].ID)
			}
		}
		return m, nil
	}

	var cmd tea.Cmd
	if m.field == fieldTitle {
		m.title, cmd = m.title.Update(msg)
	} else {
		m.description, cmd = m.description.Update(msg)
	}
	m.syncTaskDraft()
	return m, cmd
}

func (m *Model) updateLabelForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.syncLabelDraft()
		m.closeForm()
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		m.syncLabelDraft()
		if strings.TrimSpace(m.labelName.Value()) == "" {
			return m, nil
		}
		if m.mode == ModeCategoryForm {
			return m, m.mutate(m.store.CreateCategory)
		}
		return m, m.mutate(m.store.CreateTag)

	case key.Matches(msg, m.keys.Next), key.Matches(msg, m.keys.Prev):
		m.labelField = 1 - m.labelField
		if m.labelField == 0 {
			m.labelColor.Blur()
			return m, m.labelName.Focus()
		}
		m.labelName.Blur()
		return m, m.labelColor.Focus()
	}

	var cmd tea.Cmd
	if m.labelField == 0 {
		m.labelName, cmd = m.labelName.Update(msg)
	} else {
		m.labelColor, cmd = m.labelColor.Update(msg)
	}
	m.syncLabelDraft()
	return m, cmd
}

func (m *Model) openLabelForm(mode Mode, draft board.LabelDraft, shown bool) {
	m.mode = mode
	m.labelField = 0
	m.labelName.SetValue(draft.Name)
	m.labelColor.SetValue(draft.Color)
	m.labelColor.Blur()
	if !shown {
		if mode == ModeCategoryForm {
			m.store.ToggleCategoryForm()
		} else {
			m.store.ToggleTagForm()
		}
	}
}

// closeForm returns to the list, hiding whichever form was open
func (m *Model) closeForm() {
	st := m.store.Snapshot()
	switch m.mode {
	case ModeTaskForm:
		m.title.SetValue(st.TaskDraft.Title)
		m.description.SetValue(st.TaskDraft.Description)
		m.blurTaskInputs()
	case ModeCategoryForm:
		if st.ShowCategoryForm {
			m.store.ToggleCategoryForm()
		}
	case ModeTagForm:
		if st.ShowTagForm {
			m.store.ToggleTagForm()
		}
	}
	m.labelName.Blur()
	m.labelColor.Blur()
	m.mode = ModeList
}

func (m *Model) syncTaskDraft() {
	m.store.SetDraftTitle(m.title.Value())
	m.store.SetDraftDescription(m.description.Value())
}

func (m *Model) syncLabelDraft() {
	if m.mode == ModeCategoryForm {
		m.store.SetCategoryDraft(m.labelName.Value(), m.labelColor.Value())
	} else {
		m.store.SetTagDraft(m.labelName.Value(), m.labelColor.Value())
	}
}

func (m *Model) focusTaskField() tea.Cmd {
	m.blurTaskInputs()
	switch m.field {
	case fieldTitle:
		return m.title.Focus()
	case fieldDescription:
		return m.description.Focus()
	}
	return nil
}

func (m *Model) blurTaskInputs() {
	m.title.Blur()
	m.description.Blur()
}

func (m *Model) selected(visible []domain.Task) (domain.Task, bool) {
	if m.cursor < 0 || m.cursor >= len(visible) {
		return domain.Task{}, false
	}
	return visible[m.cursor], true
}

func (m *Model) clampCursor() {
	n := len(m.store.Visible())
	if m.cursor >= n {
		m.cursor = max(0, n-1)
	}
}

// cycleCategory steps through "" followed by each category id
func cycleCategory(current string, categories []domain.Category, delta int) string {
	options := make([]string, 0, len(categories)+1)
	options = append(options, "")
	for _, c := range categories {
		options = append(options, strconv.FormatInt(c.ID, 10))
	}

	idx := 0
	for i, opt := range options {
		if opt == current {
			idx = i
			break
		}
	}
	idx = (idx + delta + len(options)) % len(options)
	return options[idx]
}
