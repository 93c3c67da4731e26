package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/majadash/admin-console/internal/core/domain"
	"github.com/majadash/admin-console/internal/core/service"
)

// page identifies the active view. Every transition into a protected page
// goes through the gate; no page renders before that decision.
type page int

const (
	pageLogin page = iota
	pageDashboard
	pageProducts
	pageUsers
)

// pageRequirement maps each protected page to the capability it demands.
func pageRequirement(p page) service.Requirement {
	if p == pageUsers {
		return service.RequireAdmin
	}
	return service.RequireAuth
}

// App is the root model. The session is restored before the first
// navigation decision, so a stored credential pair lands the user on the
// dashboard without flashing the login view.
type App struct {
	sessions *service.SessionService
	gate     *service.Gate
	snackbar *Snackbar
	styles   Styles
	log      zerolog.Logger

	page     page
	login    loginModel
	products productsModel
	users    usersModel

	width  int
	height int
}

func NewApp(
	sessions *service.SessionService,
	gate *service.Gate,
	products *service.ProductEditor,
	users *service.UserEditor,
	snackbar *Snackbar,
	log zerolog.Logger,
) *App {
	styles := DefaultStyles()
	app := &App{
		sessions: sessions,
		gate:     gate,
		snackbar: snackbar,
		styles:   styles,
		log:      log,
		login:    newLoginModel(sessions, styles),
		products: newProductsModel(products, styles),
		users:    newUsersModel(users, styles),
	}

	sessions.Restore()
	if gate.Check(service.RequireAuth) == service.Allow {
		app.page = pageDashboard
	} else {
		app.page = pageLogin
	}
	return app
}

func (a *App) Init() tea.Cmd {
	return tickCmd()
}

// navigate applies the gate to a requested page and lands wherever the
// decision says. Role denial redirects silently; it is not an error.
func (a *App) navigate(target page) tea.Cmd {
	if target == pageLogin {
		a.page = pageLogin
		return nil
	}
	switch a.gate.Check(pageRequirement(target)) {
	case service.Allow:
		a.page = target
	case service.RedirectLogin:
		a.page = pageLogin
		return nil
	case service.RedirectHome:
		a.page = pageDashboard
		return nil
	}

	switch target {
	case pageProducts:
		if !a.products.loaded {
			a.products.busy = true
			return a.products.loadCmd()
		}
	case pageUsers:
		if !a.users.loaded {
			a.users.busy = true
			return a.users.loadCmd()
		}
	}
	return nil
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tickMsg:
		// Keeps the snackbar expiry visible without user input.
		return a, tickCmd()

	case loginDoneMsg:
		var cmd tea.Cmd
		a.login, cmd = a.login.Update(msg)
		if msg.err == nil {
			return a, tea.Batch(cmd, a.navigate(pageDashboard))
		}
		return a, cmd

	case productsLoadedMsg, productOpDoneMsg:
		var cmd tea.Cmd
		a.products, cmd = a.products.Update(msg)
		return a, cmd

	case usersLoadedMsg, userOpDoneMsg:
		var cmd tea.Cmd
		a.users, cmd = a.users.Update(msg)
		return a, cmd

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return a, tea.Quit
		}
		return a.updateKey(msg)
	}

	return a, nil
}

func (a *App) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global navigation only works outside a modal, so a form never loses
	// keystrokes to it.
	if a.page != pageLogin && a.modalClosed() {
		switch msg.String() {
		case "1":
			return a, a.navigate(pageDashboard)
		case "2":
			return a, a.navigate(pageProducts)
		case "3":
			return a, a.navigate(pageUsers)
		case "q":
			return a, tea.Quit
		case "ctrl+l":
			a.sessions.Logout()
			a.resetPages()
			return a, a.navigate(pageLogin)
		}
	}

	var cmd tea.Cmd
	switch a.page {
	case pageLogin:
		a.login, cmd = a.login.Update(msg)
	case pageProducts:
		a.products, cmd = a.products.Update(msg)
	case pageUsers:
		a.users, cmd = a.users.Update(msg)
	}
	return a, cmd
}

// resetPages discards everything the pages loaded for the ended session.
// The editors drop their lists and the rebuilt page models lose the loaded
// flag, so the next visit fetches fresh for whoever logs in next.
func (a *App) resetPages() {
	a.products.editor.Reset()
	a.users.editor.Reset()
	a.products = newProductsModel(a.products.editor, a.styles)
	a.users = newUsersModel(a.users.editor, a.styles)
}

// modalClosed reports whether the active page is showing its plain list.
func (a *App) modalClosed() bool {
	switch a.page {
	case pageProducts:
		return a.products.editor.State() == service.StateIdle && !a.products.busy
	case pageUsers:
		return a.users.editor.State() == service.StateIdle && !a.users.busy
	}
	return true
}

func (a *App) View() string {
	if a.page == pageLogin {
		return a.login.View() + "\n" + a.snackbar.View(a.styles)
	}

	var sb strings.Builder
	sb.WriteString(a.header())
	sb.WriteString("\n\n")

	switch a.page {
	case pageDashboard:
		sb.WriteString(a.dashboardView())
	case pageProducts:
		sb.WriteString(a.products.View())
	case pageUsers:
		sb.WriteString(a.users.View())
	}

	if note := a.snackbar.View(a.styles); note != "" {
		sb.WriteString("\n")
		sb.WriteString(note)
		sb.WriteString("\n")
	}
	return sb.String()
}

// header renders the brand and the nav. The Usuarios entry only appears for
// admins; everyone else never sees it.
func (a *App) header() string {
	session := a.sessions.Current()

	entries := []struct {
		p     page
		label string
	}{
		{pageDashboard, "1 Inicio"},
		{pageProducts, "2 Productos"},
	}
	if session.IsAuthenticated() && session.User.Role == domain.RoleAdmin {
		entries = append(entries, struct {
			p     page
			label string
		}{pageUsers, "3 Usuarios"})
	}

	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.p == a.page {
			parts = append(parts, a.styles.NavOn.Render(e.label))
		} else {
			parts = append(parts, a.styles.NavOff.Render(e.label))
		}
	}

	who := ""
	if session.IsAuthenticated() {
		who = a.styles.Muted.Render("  " + session.User.Name + " · ctrl+l: cerrar sesión · q: salir")
	}
	return a.styles.Header.Render("MAJA") + "  " + strings.Join(parts, "  ") + who
}

func (a *App) dashboardView() string {
	session := a.sessions.Current()
	var sb strings.Builder
	sb.WriteString(a.styles.Title.Render("Bienvenido"))
	sb.WriteString("\n\n")
	if session.IsAuthenticated() {
		sb.WriteString("Hola, " + a.styles.Bold.Render(session.User.Name) + "\n\n")
	}
	sb.WriteString("Desde aquí puedes administrar el catálogo de productos")
	if session.IsAuthenticated() && session.User.Role == domain.RoleAdmin {
		sb.WriteString(" y las cuentas de usuario")
	}
	sb.WriteString(".\n\n")
	sb.WriteString(a.styles.Help.Render("usa los números para navegar"))
	sb.WriteString("\n")
	return sb.String()
}
