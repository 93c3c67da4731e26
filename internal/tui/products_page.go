package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/majadash/admin-console/internal/core/service"
)

// productsModel is the product management page. All form and confirmation
// state lives in the editor; the page keeps only cursor position, the
// textinput widgets and the in-flight flag.
type productsModel struct {
	editor *service.ProductEditor
	styles Styles

	cursor int
	inputs []textinput.Model
	focus  int
	delta  textinput.Model
	busy   bool
	loaded bool
}

const (
	productInputName = iota
	productInputDescription
	productInputPrice
	productInputStock
	productInputCount
)

func newProductsModel(editor *service.ProductEditor, styles Styles) productsModel {
	inputs := make([]textinput.Model, productInputCount)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].CharLimit = 200
	}
	inputs[productInputName].Placeholder = "nombre"
	inputs[productInputDescription].Placeholder = "descripción"
	inputs[productInputPrice].Placeholder = "0.00"
	inputs[productInputStock].Placeholder = "0"

	delta := textinput.New()
	delta.Placeholder = "+/- cantidad"
	delta.CharLimit = 10

	return productsModel{editor: editor, styles: styles, inputs: inputs, delta: delta}
}

func (m productsModel) loadCmd() tea.Cmd {
	editor := m.editor
	return func() tea.Msg {
		ctx, cancel := opCtx()
		defer cancel()
		return productsLoadedMsg{err: editor.Load(ctx)}
	}
}

func (m productsModel) submitCmd() tea.Cmd {
	editor := m.editor
	return func() tea.Msg {
		ctx, cancel := opCtx()
		defer cancel()
		return productOpDoneMsg{err: editor.Submit(ctx)}
	}
}

func (m productsModel) confirmDeleteCmd() tea.Cmd {
	editor := m.editor
	return func() tea.Msg {
		ctx, cancel := opCtx()
		defer cancel()
		return productOpDoneMsg{err: editor.ConfirmDelete(ctx)}
	}
}

func (m productsModel) submitStockCmd() tea.Cmd {
	editor := m.editor
	return func() tea.Msg {
		ctx, cancel := opCtx()
		defer cancel()
		return productOpDoneMsg{err: editor.SubmitStock(ctx)}
	}
}

// seedForm copies the editor draft into the widgets after an open.
func (m *productsModel) seedForm() {
	draft := m.editor.Draft()
	m.inputs[productInputName].SetValue(draft.Name)
	m.inputs[productInputDescription].SetValue(draft.Description)
	m.inputs[productInputPrice].SetValue(draft.Price)
	m.inputs[productInputStock].SetValue(draft.Stock)
	m.setFocus(0)
}

func (m *productsModel) setFocus(i int) {
	m.focus = i
	for j := range m.inputs {
		if j == i {
			m.inputs[j].Focus()
		} else {
			m.inputs[j].Blur()
		}
	}
}

// syncFocused pushes the focused input back into the draft. Only a real
// change reaches SetField, so a field stays untouched until the user edits
// it and inline errors never appear on fields that were merely tabbed past.
func (m *productsModel) syncFocused() {
	draft := m.editor.Draft()
	value := m.inputs[m.focus].Value()
	switch m.focus {
	case productInputName:
		if value != draft.Name {
			m.editor.SetField(service.ProductFieldName, value)
		}
	case productInputDescription:
		if value != draft.Description {
			m.editor.SetField(service.ProductFieldDescription, value)
		}
	case productInputPrice:
		if value != draft.Price {
			m.editor.SetField(service.ProductFieldPrice, value)
		}
	case productInputStock:
		if value != draft.Stock {
			m.editor.SetField(service.ProductFieldStock, value)
		}
	}
}

func (m *productsModel) selectedID() string {
	products := m.editor.Products()
	if m.cursor < 0 || m.cursor >= len(products) {
		return ""
	}
	return products[m.cursor].ID
}

func (m productsModel) Update(msg tea.Msg) (productsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case productsLoadedMsg:
		m.busy = false
		m.loaded = true
		if m.cursor >= len(m.editor.Products()) {
			m.cursor = 0
		}
		return m, nil

	case productOpDoneMsg:
		m.busy = false
		if m.cursor >= len(m.editor.Products()) && m.cursor > 0 {
			m.cursor = len(m.editor.Products()) - 1
		}
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
		case service.StateConfirmingDelete:
			return m.updateConfirmDelete(msg)
		case service.StateAdjustingStock:
			return m.updateStock(msg)
		}
	}
	return m, nil
}

func (m productsModel) updateIdle(msg tea.KeyMsg) (productsModel, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.editor.Products())-1 {
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
	case "d":
		if id := m.selectedID(); id != "" {
			m.editor.RequestDelete(id)
		}
	case "s":
		if id := m.selectedID(); id != "" {
			if err := m.editor.OpenStockAdjust(id); err == nil {
				m.delta.SetValue("")
				m.delta.Focus()
			}
		}
	case "r":
		m.busy = true
		return m, m.loadCmd()
	}
	return m, nil
}

func (m productsModel) updateForm(msg tea.KeyMsg) (productsModel, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.editor.Cancel()
		return m, nil
	case tea.KeyTab, tea.KeyDown:
		m.setFocus((m.focus + 1) % productInputCount)
		return m, nil
	case tea.KeyShiftTab, tea.KeyUp:
		m.setFocus((m.focus + productInputCount - 1) % productInputCount)
		return m, nil
	case tea.KeyEnter:
		// The draft is already current: every change synced on arrival.
		if !m.editor.CanSubmit() {
			return m, nil
		}
		m.busy = true
		return m, m.submitCmd()
	case tea.KeyRunes:
		// Numeric fields ignore everything but digits, a decimal point for
		// the price, and never a sign or exponent.
		switch m.focus {
		case productInputPrice:
			msg.Runes = filterRunes(msg.Runes, "0123456789.")
		case productInputStock:
			msg.Runes = filterRunes(msg.Runes, "0123456789")
		}
		if len(msg.Runes) == 0 {
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	m.syncFocused()
	return m, cmd
}

func (m productsModel) updateConfirmDelete(msg tea.KeyMsg) (productsModel, tea.Cmd) {
	switch msg.String() {
	case "y", "enter":
		m.busy = true
		return m, m.confirmDeleteCmd()
	case "n", "esc":
		m.editor.DeclineDelete()
	}
	return m, nil
}

func (m productsModel) updateStock(msg tea.KeyMsg) (productsModel, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.editor.CloseStockAdjust()
		return m, nil
	case tea.KeyEnter:
		if !m.editor.CanSubmitStock() {
			return m, nil
		}
		m.busy = true
		return m, m.submitStockCmd()
	case tea.KeyRunes:
		// A sign is only meaningful as the first character of the delta.
		allowed := "0123456789"
		if m.delta.Value() == "" {
			allowed = "+-0123456789"
		}
		msg.Runes = filterRunes(msg.Runes, allowed)
		if len(msg.Runes) == 0 {
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.delta, cmd = m.delta.Update(msg)
	m.editor.SetStockDelta(strings.TrimPrefix(m.delta.Value(), "+"))
	return m, cmd
}

func (m productsModel) View() string {
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
	case service.StateConfirmingDelete:
		return m.viewConfirmDelete()
	case service.StateAdjustingStock:
		return m.viewStock()
	}

	table := NewSimpleTable("Productos", "Nombre", "Descripción", "Precio", "Stock")
	for i, p := range m.editor.Products() {
		marker := "  "
		if i == m.cursor {
			marker = "> "
		}
		table.AddRow(marker+p.Name, p.Description, fmt.Sprintf("$%.2f", p.Price), fmt.Sprintf("%d", p.Stock))
	}
	sb.WriteString(table.View(m.styles))
	sb.WriteString("\n")
	sb.WriteString(m.styles.Help.Render("n: nuevo · e: editar · d: eliminar · s: stock · r: recargar"))
	sb.WriteString("\n")
	return sb.String()
}

func (m productsModel) viewForm() string {
	var sb strings.Builder
	title := "Nuevo Producto"
	if m.editor.Mode() == service.ModeEdit {
		title = "Editar Producto"
	}
	sb.WriteString(m.styles.Title.Render(title))
	sb.WriteString("\n\n")

	labels := []string{"Nombre", "Descripción", "Precio", "Stock"}
	fields := []service.ProductField{
		service.ProductFieldName,
		service.ProductFieldDescription,
		service.ProductFieldPrice,
		service.ProductFieldStock,
	}
	for i, label := range labels {
		sb.WriteString(m.styles.Label.Render(label))
		sb.WriteString("\n" + m.inputs[i].View() + "\n")
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

func (m productsModel) viewConfirmDelete() string {
	target := m.editor.DeleteTarget()
	if target == nil {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render("Eliminar Producto"))
	sb.WriteString("\n\n")
	sb.WriteString(fmt.Sprintf("¿Eliminar %q? Esta acción no se puede deshacer.\n\n", target.Name))
	sb.WriteString(m.styles.Danger.Render("y: eliminar") + m.styles.Help.Render(" · n: cancelar"))
	sb.WriteString("\n")
	return m.styles.Modal.Render(sb.String())
}

func (m productsModel) viewStock() string {
	target := m.editor.StockTarget()
	if target == nil {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render("Ajustar Stock"))
	sb.WriteString("\n\n")
	sb.WriteString(m.styles.Bold.Render(target.Name))
	sb.WriteString(fmt.Sprintf("\nStock actual: %d\n\n", m.editor.Baseline()))
	sb.WriteString(m.styles.Label.Render("Ajuste"))
	sb.WriteString("\n" + m.delta.View() + "\n\n")
	sb.WriteString(fmt.Sprintf("Stock resultante: %d\n\n", m.editor.ResultingStock()))
	if m.editor.ResultingStock() < 0 {
		sb.WriteString(m.styles.Inline.Render("No puede reducir el stock por debajo de 0"))
		sb.WriteString("\n\n")
	}
	if m.editor.CanSubmitStock() {
		sb.WriteString(m.styles.Help.Render("enter: aplicar · esc: cancelar"))
	} else {
		sb.WriteString(m.styles.Help.Render("ingresa un ajuste distinto de 0 · esc: cancelar"))
	}
	sb.WriteString("\n")
	return m.styles.Modal.Render(sb.String())
}

// filterRunes keeps only runes present in allowed.
func filterRunes(runes []rune, allowed string) []rune {
	kept := runes[:0]
	for _, r := range runes {
		if strings.ContainsRune(allowed, r) {
			kept = append(kept, r)
		}
	}
	return kept
}
