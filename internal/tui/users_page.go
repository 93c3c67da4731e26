package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/majadash/admin-console/internal/core/domain"
	"github.com/majadash/admin-console/internal/core/service"
)

// usersModel is the user management page, admin-only. Same shape as the
// products page, with the confirmed status toggle standing in for delete
// and a role cycler instead of free text.
type usersModel struct {
	editor *service.UserEditor
	styles Styles

	cursor int
	inputs []textinput.Model
	focus  int
	busy   bool
	loaded bool
}

const (
	userInputName = iota
	userInputEmail
	userInputPassword
	userInputRole
	userInputCount
)

func newUsersModel(editor *service.UserEditor, styles Styles) usersModel {
	inputs := make([]textinput.Model, userInputCount)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].CharLimit = 120
	}
	inputs[userInputName].Placeholder = "nombre"
	inputs[userInputEmail].Placeholder = "correo@maja.com"
	inputs[userInputPassword].Placeholder = "contraseña"
	inputs[userInputPassword].EchoMode = textinput.EchoPassword
	inputs[userInputPassword].EchoCharacter = '•'

	return usersModel{editor: editor, styles: styles, inputs: inputs}
}

func (m usersModel) loadCmd() tea.Cmd {
	editor := m.editor
	return func() tea.Msg {
		ctx, cancel := opCtx()
		defer cancel()
		return usersLoadedMsg{err: editor.Load(ctx)}
	}
}

func (m usersModel) submitCmd() tea.Cmd {
	editor := m.editor
	return func() tea.Msg {
		ctx, cancel := opCtx()
		defer cancel()
		return userOpDoneMsg{err: editor.Submit(ctx)}
	}
}

func (m usersModel) confirmToggleCmd() tea.Cmd {
	editor := m.editor
	return func() tea.Msg {
		ctx, cancel := opCtx()
		defer cancel()
		return userOpDoneMsg{err: editor.ConfirmToggle(ctx)}
	}
}

func (m *usersModel) seedForm() {
	draft := m.editor.Draft()
	m.inputs[userInputName].SetValue(draft.Name)
	m.inputs[userInputEmail].SetValue(draft.Email)
	m.inputs[userInputPassword].SetValue("")
	m.setFocus(0)
}

func (m *usersModel) setFocus(i int) {
	m.focus = i
	for j := range m.inputs {
		if j == i {
			m.inputs[j].Focus()
		} else {
			m.inputs[j].Blur()
		}
	}
}

// moveFocus advances the focus, skipping the password row on edit since the
// form never shows it there.
func (m *usersModel) moveFocus(dir int) {
	next := (m.focus + dir + userInputCount) % userInputCount
	if next == userInputPassword && m.editor.Mode() == service.ModeEdit {
		next = (next + dir + userInputCount) % userInputCount
	}
	m.setFocus(next)
}

// syncFocused pushes the focused input back into the draft. Only a real
// change reaches SetField, so tabbing past a field never marks it touched.
func (m *usersModel) syncFocused() {
	draft := m.editor.Draft()
	value := m.inputs[m.focus].Value()
	switch m.focus {
	case userInputName:
		if value != draft.Name {
			m.editor.SetField(service.UserFieldName, value)
		}
	case userInputEmail:
		if value != draft.Email {
			m.editor.SetField(service.UserFieldEmail, value)
		}
	case userInputPassword:
		if value != draft.Password {
			m.editor.SetField(service.UserFieldPassword, value)
		}
	}
}

func (m *usersModel) cycleRole() {
	if m.editor.Draft().Role == string(domain.RoleAdmin) {
		m.editor.SetField(service.UserFieldRole, string(domain.RoleUser))
	} else {
		m.editor.SetField(service.UserFieldRole, string(domain.RoleAdmin))
	}
}

func (m *usersModel) selectedID() string {
	users := m.editor.Users()
	if m.cursor < 0 || m.cursor >= len(users) {
		return ""
	}
	return users[m.cursor].ID
}

func (m usersModel) Update(msg tea.Msg) (usersModel, tea.Cmd) {
	switch msg := msg.(type) {
	case usersLoadedMsg:
		m.busy = false
		m.loaded = true
		if m.cursor >= len(m.editor.Users()) {
			m.cursor = 0
		}
		return m, nil

	case userOpDoneMsg:
		m.busy = false
		return m, nil

	case tea.KeyMsg:
		if m.busy {
			return m, nil
		}
		switch m.editor.State() {
		case service.StateIdle:
			return m.updateIdle(msg)
		case service.StateFormOpen:
			return m.updateForm(msg)
		case service.StateConfirmingStatusToggle:
			return m.updateConfirmToggle(msg)
		}
	}
	return m, nil
}

func (m usersModel) updateIdle(msg tea.KeyMsg) (usersModel, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.editor.Users())-1 {
			m.cursor++
		}
	case "n":
		m.editor.OpenCreate()
		m.seedForm()
	case "e":
		if id := m.selectedID(); id != "" {
			if err := m.editor.OpenEdit(id); err == nil {
				m.seedForm()
			}
		}
	case "t":
		if id := m.selectedID(); id != "" {
			m.editor.RequestToggle(id)
		}
	case "r":
		m.busy = true
		return m, m.loadCmd()
	}
	return m, nil
}

func (m usersModel) updateForm(msg tea.KeyMsg) (usersModel, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.editor.Cancel()
		return m, nil
	case tea.KeyTab, tea.KeyDown:
		m.moveFocus(1)
		return m, nil
	case tea.KeyShiftTab, tea.KeyUp:
		m.moveFocus(-1)
		return m, nil
	case tea.KeyEnter:
		if !m.editor.CanSubmit() {
			return m, nil
		}
		m.busy = true
		return m, m.submitCmd()
	}

	// The role field is a two-value cycler, not free text.
	if m.focus == userInputRole {
		if msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace {
			m.cycleRole()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	m.syncFocused()
	return m, cmd
}

func (m usersModel) updateConfirmToggle(msg tea.KeyMsg) (usersModel, tea.Cmd) {
	switch msg.String() {
	case "y", "enter":
		m.busy = true
		return m, m.confirmToggleCmd()
	case "n", "esc":
		m.editor.DeclineToggle()
	}
	return m, nil
}

func (m usersModel) View() string {
	var sb strings.Builder

	if err := m.editor.LoadError(); err != "" {
		sb.WriteString(m.styles.ErrorBox.Render(err))
		sb.WriteString("\n")
		sb.WriteString(m.styles.Help.Render("r: reintentar"))
		sb.WriteString("\n")
		return sb.String()
	}

	if m.busy {
		sb.WriteString(m.styles.Muted.Render("Procesando..."))
		sb.WriteString("\n")
		return sb.String()
	}

	switch m.editor.State() {
	case service.StateFormOpen:
		return m.viewForm()
	case service.StateConfirmingStatusToggle:
		return m.viewConfirmToggle()
	}

	table := NewSimpleTable("Usuarios", "Nombre", "Email", "Rol", "Estado")
	for i, u := range m.editor.Users() {
		marker := "  "
		if i == m.cursor {
			marker = "> "
		}
		status := "Inactivo"
		if u.IsActive {
			status = "Activo"
		}
		table.AddRow(marker+u.Name, u.Email, string(u.Role), status)
	}
	sb.WriteString(table.View(m.styles))
	sb.WriteString("\n")
	sb.WriteString(m.styles.Help.Render("n: nuevo · e: editar · t: activar/desactivar · r: recargar"))
	sb.WriteString("\n")
	return sb.String()
}

func (m usersModel) viewForm() string {
	var sb strings.Builder
	title := "Nuevo Usuario"
	if m.editor.Mode() == service.ModeEdit {
		title = "Editar Usuario"
	}
	sb.WriteString(m.styles.Title.Render(title))
	sb.WriteString("\n\n")

	labels := []string{"Nombre", "Email", "Contraseña", "Rol"}
	fields := []service.UserField{
		service.UserFieldName,
		service.UserFieldEmail,
		service.UserFieldPassword,
		service.UserFieldRole,
	}
	for i, label := range labels {
		if i == userInputPassword && m.editor.Mode() == service.ModeEdit {
			continue
		}
		sb.WriteString(m.styles.Label.Render(label))
		if i == userInputRole {
			role := m.editor.Draft().Role
			marker := " "
			if m.focus == userInputRole {
				marker = ">"
			}
			sb.WriteString(fmt.Sprintf("\n%s %s (espacio: cambiar)\n", marker, role))
		} else {
			sb.WriteString("\n" + m.inputs[i].View() + "\n")
		}
		if inline := m.editor.InlineError(fields[i]); inline != "" {
			sb.WriteString(m.styles.Inline.Render(inline))
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}

	if m.editor.CanSubmit() {
		sb.WriteString(m.styles.Help.Render("enter: guardar · esc: cancelar"))
	} else {
		sb.WriteString(m.styles.Help.Render("completa el formulario · esc: cancelar"))
	}
	sb.WriteString("\n")
	return m.styles.Modal.Render(sb.String())
}

func (m usersModel) viewConfirmToggle() string {
	target := m.editor.ToggleTarget()
	if target == nil {
		return ""
	}
	action := "activar"
	if target.IsActive {
		action = "desactivar"
	}
	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render("Cambiar Estado"))
	sb.WriteString("\n\n")
	sb.WriteString(fmt.Sprintf("¿Deseas %s a %q?\n\n", action, target.Name))
	sb.WriteString(m.styles.Danger.Render("y: confirmar") + m.styles.Help.Render(" · n: cancelar"))
	sb.WriteString("\n")
	return m.styles.Modal.Render(sb.String())
}
