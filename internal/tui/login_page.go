package tui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/majadash/admin-console/internal/core/domain"
	"github.com/majadash/admin-console/internal/core/service"
)

// loginModel is the login page: email and password fields, an inline error
// block, and an in-flight lock while the request runs.
type loginModel struct {
	sessions *service.SessionService
	styles   Styles

	email    textinput.Model
	password textinput.Model
	focus    int
	loading  bool
	errMsg   string
}

func newLoginModel(sessions *service.SessionService, styles Styles) loginModel {
	email := textinput.New()
	email.Placeholder = "correo@maja.com"
	email.CharLimit = 120
	email.Focus()

	password := textinput.New()
	password.Placeholder = "contraseña"
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'
	password.CharLimit = 120

	return loginModel{
		sessions: sessions,
		styles:   styles,
		email:    email,
		password: password,
	}
}

func (m loginModel) submitCmd() tea.Cmd {
	email := strings.TrimSpace(m.email.Value())
	password := m.password.Value()
	sessions := m.sessions
	return func() tea.Msg {
		ctx, cancel := opCtx()
		defer cancel()
		_, err := sessions.Login(ctx, email, password)
		return loginDoneMsg{err: err}
	}
}

func (m loginModel) Update(msg tea.Msg) (loginModel, tea.Cmd) {
	switch msg := msg.(type) {
	case loginDoneMsg:
		m.loading = false
		if msg.err != nil {
			if errors.Is(msg.err, domain.ErrInvalidCredentials) {
				m.errMsg = "Credenciales inválidas"
			} else {
				m.errMsg = "No se pudo conectar con el servidor"
			}
			return m, nil
		}
		m.errMsg = ""
		m.password.SetValue("")
		return m, nil

	case tea.KeyMsg:
		if m.loading {
			return m, nil
		}
		switch msg.Type {
		case tea.KeyTab, tea.KeyShiftTab, tea.KeyUp, tea.KeyDown:
			m.focus = (m.focus + 1) % 2
			if m.focus == 0 {
				m.email.Focus()
				m.password.Blur()
			} else {
				m.password.Focus()
				m.email.Blur()
			}
			return m, nil
		case tea.KeyEnter:
			if m.focus == 0 {
				m.focus = 1
				m.email.Blur()
				m.password.Focus()
				return m, nil
			}
			if strings.TrimSpace(m.email.Value()) == "" || m.password.Value() == "" {
				return m, nil
			}
			m.loading = true
			m.errMsg = ""
			return m, m.submitCmd()
		}
	}

	var cmd tea.Cmd
	if m.focus == 0 {
		m.email, cmd = m.email.Update(msg)
	} else {
		m.password, cmd = m.password.Update(msg)
	}
	return m, cmd
}

func (m loginModel) View() string {
	var sb strings.Builder
	sb.WriteString(m.styles.Header.Render("MAJA Dashboard"))
	sb.WriteString("\n")
	sb.WriteString(m.styles.Muted.Render("Ingresa a tu cuenta para continuar"))
	sb.WriteString("\n\n")

	if m.errMsg != "" {
		sb.WriteString(m.styles.ErrorBox.Render(m.errMsg))
		sb.WriteString("\n\n")
	}

	sb.WriteString(m.styles.Label.Render("Correo Electrónico"))
	sb.WriteString("\n" + m.email.View() + "\n\n")
	sb.WriteString(m.styles.Label.Render("Contraseña"))
	sb.WriteString("\n" + m.password.View() + "\n\n")

	if m.loading {
		sb.WriteString(m.styles.Muted.Render("Iniciando sesión..."))
	} else {
		sb.WriteString(m.styles.Help.Render("enter: iniciar sesión · tab: cambiar campo · ctrl+c: salir"))
	}
	sb.WriteString("\n")
	return m.styles.Modal.Render(sb.String())
}
