package tui

import (
	"fmt"
	"strconv"
	"strings"

	"taskboard/internal/board"
	"taskboard/internal/domain"

	"github.com/charmbracelet/lipgloss"
)

func (m *Model) View() string {
	st := m.store.Snapshot()
	if st.Loading {
		return "Loading..."
	}

	s := m.styles
	var b strings.Builder

	b.WriteString(s.Title.Render("Task Management"))
	b.WriteString("\n")
	if st.Stats != nil {
		b.WriteString(m.renderStats(*st.Stats))
		b.WriteString("\n")
	}

	switch m.mode {
	case ModeTaskForm:
		b.WriteString(m.renderTaskForm(st))
	case ModeCategoryForm:
		b.WriteString(m.renderLabelForm("New Category"))
	case ModeTagForm:
		b.WriteString(m.renderLabelForm("New Tag"))
	default:
		b.WriteString(m.renderFilters(st))
		b.WriteString("\n")
		b.WriteString(m.renderTasks(st))
		b.WriteString(m.renderLabels(st))
	}

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(s.Error.Render(m.err.Error()))
	}

	b.WriteString("\n\n")
	b.WriteString(m.renderHelp())

	return lipgloss.NewStyle().MaxWidth(ContentWidth(m.width)).Render(b.String())
}

func (m *Model) renderStats(stats domain.Stats) string {
	s := m.styles
	card := func(value, label string) string {
		return s.Card.Render(s.CardValue.Render(value) + "\n" + s.CardLabel.Render(label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		card(strconv.FormatInt(stats.TotalTasks, 10), "Total Tasks"),
		card(strconv.FormatInt(stats.CompletedTasks, 10), "Completed"),
		card(strconv.FormatInt(stats.ActiveTasks, 10), "Active"),
		card(fmt.Sprintf("%d%%", stats.CompletionRate), "Progress"),
	)
}

func (m *Model) renderFilters(st board.State) string {
	s := m.styles

	searchStyle := s.Input
	if m.mode == ModeSearch {
		searchStyle = s.InputFocused
	}
	search := searchStyle.Width(30).Render(m.search.View())

	category := "All Categories"
	if st.Filter.CategoryID != "" {
		category = st.Filter.CategoryID
		if id, err := strconv.ParseInt(st.Filter.CategoryID, 10, 64); err == nil {
			if name := st.CategoryName(id); name != "" {
				category = name
			}
		}
	}

	status := st.Filter.Status
	if status == "" {
		status = board.StatusAll
	}

	return lipgloss.JoinHorizontal(lipgloss.Center,
		search,
		s.TitleMuted.Render(fmt.Sprintf("  category: %s  status: %s", category, status)),
	)
}

func (m *Model) renderTasks(st board.State) string {
	s := m.styles
	visible := st.Visible()

	var b strings.Builder
	b.WriteString(s.Section.Render(fmt.Sprintf("Tasks (%d)", len(visible))))
	b.WriteString("\n")

	if len(visible) == 0 {
		b.WriteString(s.TitleMuted.Render("  No tasks found. Create one to get started!"))
		b.WriteString("\n")
		return b.String()
	}

	for i, task := range visible {
		b.WriteString(m.renderTask(task, i == m.cursor))
		b.WriteString("\n")
	}
	return b.String()
}

func (m *Model) renderTask(task domain.Task, selected bool) string {
	s := m.styles

	check := "[ ]"
	title := task.Title
	if task.Completed {
		check = "[x]"
		title = s.Done.Render(title)
	}

	parts := []string{check, title}
	if task.Category != nil {
		parts = append(parts, Swatch(task.Category.Name, task.Category.Color))
	}
	for _, tt := range task.Tags {
		parts = append(parts, Swatch("#"+tt.Tag.Name, tt.Tag.Color))
	}

	style := s.ListItem
	if selected {
		style = s.ListSelected
	}
	line := style.Render(strings.Join(parts, " "))
	if task.Description != nil && *task.Description != "" {
		line += "\n" + s.Description.Render(*task.Description)
	}
	return line
}

func (m *Model) renderLabels(st board.State) string {
	s := m.styles
	var b strings.Builder

	b.WriteString(s.Section.Render(fmt.Sprintf("Categories (%d)", len(st.Categories))))
	b.WriteString("\n")
	for _, c := range st.Categories {
		b.WriteString("  " + Swatch(c.Name, c.Color) + "\n")
	}

	b.WriteString(s.Section.Render(fmt.Sprintf("Tags (%d)", len(st.Tags))))
	b.WriteString("\n")
	names := make([]string, 0, len(st.Tags))
	for _, t := range st.Tags {
		names = append(names, Swatch(t.Name, t.Color))
	}
	if len(names) > 0 {
		b.WriteString("  " + strings.Join(names, "  ") + "\n")
	}
	return b.String()
}

func (m *Model) renderTaskForm(st board.State) string {
	s := m.styles
	field := func(idx int, content string) string {
		style := s.Input
		if m.field == idx {
			style = s.InputFocused
		}
		return style.Width(50).Render(content)
	}

	category := "No Category"
	if st.TaskDraft.CategoryID != "" {
		if id, err := strconv.ParseInt(st.TaskDraft.CategoryID, 10, 64); err == nil {
			if name := st.CategoryName(id); name != "" {
				category = name
			}
		}
	}

	tags := make([]string, 0, len(st.Tags))
	for i, t := range st.Tags {
		mark := "[ ]"
		if st.TaskDraft.HasTag(t.ID) {
			mark = "[x]"
		}
		label := mark + " " + Swatch(t.Name, t.Color)
		if m.field == fieldTags && i == m.tagCursor {
			label = s.ListSelected.Render(mark + " " + t.Name)
		}
		tags = append(tags, label)
	}
	tagLine := s.TitleMuted.Render("no tags yet")
	if len(tags) > 0 {
		tagLine = strings.Join(tags, " ")
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		s.Section.Render("Create Task"),
		field(fieldTitle, m.title.View()),
		field(fieldDescription, m.description.View()),
		field(fieldCategory, "◀ "+category+" ▶"),
		field(fieldTags, tagLine),
	)
}

func (m *Model) renderLabelForm(heading string) string {
	s := m.styles
	name, color := s.Input, s.Input
	if m.labelField == 0 {
		name = s.InputFocused
	} else {
		color = s.InputFocused
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		s.Section.Render(heading),
		name.Width(40).Render(m.labelName.View()),
		color.Width(40).Render(m.labelColor.View()),
	)
}

func (m *Model) renderHelp() string {
	s := m.styles
	bindings := m.keys.ShortHelp()
	if m.mode != ModeList {
		bindings = append(bindings[:0:0], m.keys.Next, m.keys.Submit, m.keys.Cancel)
		if m.mode == ModeTaskForm {
			bindings = append(bindings, m.keys.Left, m.keys.Right, m.keys.Select)
		}
	}

	parts := make([]string, 0, len(bindings))
	for _, k := range bindings {
		h := k.Help()
		parts = append(parts, s.HelpKey.Render(h.Key)+" "+s.HelpDesc.Render(h.Desc))
	}
	return strings.Join(parts, "  ")
}
