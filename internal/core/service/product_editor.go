package service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/majadash/admin-console/internal/core/domain"
	"github.com/majadash/admin-console/internal/core/ports"
)

// ProductEditor is the form-state machine behind the products view: list
// loading, create/edit drafts, delete confirmation and stock adjustment.
// It owns its in-memory list exclusively; the view reads, never writes.
type ProductEditor struct {
	client   ports.ResourceClient
	notifier ports.Notifier
	log      zerolog.Logger

	state    EditorState
	products []domain.Product
	loadErr  string

	mode       FormMode
	draft      ProductDraft
	touched    map[ProductField]bool
	editTarget *domain.Product

	deleteTarget *domain.Product

	stockTarget *domain.Product
	baseline    int
	deltaText   string
}

func NewProductEditor(client ports.ResourceClient, notifier ports.Notifier, log zerolog.Logger) *ProductEditor {
	return &ProductEditor{
		client:   client,
		notifier: notifier,
		log:      log,
		touched:  make(map[ProductField]bool),
	}
}

func (e *ProductEditor) State() EditorState        { return e.state }
func (e *ProductEditor) Mode() FormMode            { return e.mode }
func (e *ProductEditor) Products() []domain.Product { return e.products }
func (e *ProductEditor) LoadError() string          { return e.loadErr }
func (e *ProductEditor) Draft() ProductDraft        { return e.draft }
func (e *ProductEditor) Touched(f ProductField) bool { return e.touched[f] }

// Load fetches the full list. On failure the previous list is kept off
// screen: the view shows the persistent error block instead, no partial
// fallback.
func (e *ProductEditor) Load(ctx context.Context) error {
	products, err := e.client.ListProducts(ctx)
	if err != nil {
		e.loadErr = domain.UserMessage(err, "Error al cargar los productos")
		e.log.Error().Err(err).Msg("product list load failed")
		return err
	}
	e.products = products
	e.loadErr = ""
	return nil
}

// OpenCreate opens a blank draft. Numeric fields start unset so validation
// begins untouched.
func (e *ProductEditor) OpenCreate() {
	if e.state != StateIdle {
		return
	}
	e.mode = ModeCreate
	e.draft = ProductDraft{}
	e.touched = make(map[ProductField]bool)
	e.editTarget = nil
	e.state = StateFormOpen
}

// OpenEdit opens a draft cloned from the target product.
func (e *ProductEditor) OpenEdit(id string) error {
	if e.state != StateIdle {
		return nil
	}
	target := e.find(id)
	if target == nil {
		return domain.ErrProductNotFound
	}
	e.mode = ModeEdit
	e.editTarget = target
	e.draft = ProductDraft{
		Name:        target.Name,
		Description: target.Description,
		Price:       strconv.FormatFloat(target.Price, 'f', -1, 64),
		Stock:       strconv.Itoa(target.Stock),
	}
	e.touched = make(map[ProductField]bool)
	e.state = StateFormOpen
	return nil
}

// SetField updates one draft field and marks it touched. Touched state only
// gates inline error display; submit eligibility depends on the draft alone.
func (e *ProductEditor) SetField(f ProductField, value string) {
	if e.state != StateFormOpen {
		return
	}
	switch f {
	case ProductFieldName:
		e.draft.Name = value
	case ProductFieldDescription:
		e.draft.Description = value
	case ProductFieldPrice:
		e.draft.Price = value
	case ProductFieldStock:
		e.draft.Stock = value
	}
	e.touched[f] = true
}

// InlineError returns the inline message for a field, empty until the field
// has been touched.
func (e *ProductEditor) InlineError(f ProductField) string {
	if !e.touched[f] {
		return ""
	}
	return e.draft.fieldError(f)
}

func (e *ProductEditor) CanSubmit() bool {
	return e.state == StateFormOpen && e.draft.IsValid()
}

// Submit sends the draft. Success closes the form and reconciles the list
// (append on create, replace by identity on edit); failure keeps the form
// open with the draft intact and reports the best available message.
func (e *ProductEditor) Submit(ctx context.Context) error {
	if !e.CanSubmit() {
		return domain.ErrInvalidDraft
	}
	payload := e.draft.Payload()
	if err := domain.ValidatePayload(payload); err != nil {
		return err
	}

	e.state = StateSubmitting
	if e.mode == ModeEdit {
		updated, err := e.client.UpdateProduct(ctx, e.editTarget.ID, payload)
		if err != nil {
			e.state = StateFormOpen
			e.notifier.Error(domain.UserMessage(err, "Error al actualizar el producto"))
			return err
		}
		e.replace(*updated)
		e.closeForm()
		e.notifier.Success("Producto actualizado exitosamente")
		return nil
	}

	created, err := e.client.CreateProduct(ctx, payload)
	if err != nil {
		e.state = StateFormOpen
		e.notifier.Error(domain.UserMessage(err, "Error al crear el producto"))
		return err
	}
	e.products = append(e.products, *created)
	e.closeForm()
	e.notifier.Success("Producto creado exitosamente")
	return nil
}

// Reset drops the loaded list and whatever modal is open, returning the
// editor to its pre-load state. Called when the session ends so the next
// session starts from a fresh fetch, never the previous operator's list.
func (e *ProductEditor) Reset() {
	e.products = nil
	e.loadErr = ""
	e.deleteTarget = nil
	e.stockTarget = nil
	e.deltaText = ""
	e.closeForm()
}

// Cancel discards whatever modal is open, with no side effect.
func (e *ProductEditor) Cancel() {
	switch e.state {
	case StateFormOpen:
		e.closeForm()
	case StateConfirmingDelete:
		e.DeclineDelete()
	case StateAdjustingStock:
		e.CloseStockAdjust()
	}
}

// RequestDelete stages a product for deletion pending confirmation.
func (e *ProductEditor) RequestDelete(id string) error {
	if e.state != StateIdle {
		return nil
	}
	target := e.find(id)
	if target == nil {
		return domain.ErrProductNotFound
	}
	e.deleteTarget = target
	e.state = StateConfirmingDelete
	return nil
}

func (e *ProductEditor) DeleteTarget() *domain.Product { return e.deleteTarget }

// ConfirmDelete performs the staged deletion and removes exactly the
// matching entity from the list.
func (e *ProductEditor) ConfirmDelete(ctx context.Context) error {
	if e.state != StateConfirmingDelete || e.deleteTarget == nil {
		return nil
	}
	target := e.deleteTarget
	e.state = StateSubmitting
	if err := e.client.DeleteProduct(ctx, target.ID); err != nil {
		e.state = StateConfirmingDelete
		e.notifier.Error(domain.UserMessage(err, "Error al eliminar el producto"))
		return err
	}

	// target points into the backing array the filter rewrites, so the id
	// must be captured before any slot moves.
	id := target.ID
	kept := e.products[:0]
	for _, p := range e.products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	e.products = kept
	e.deleteTarget = nil
	e.state = StateIdle
	e.notifier.Success("Producto eliminado exitosamente")
	return nil
}

// DeclineDelete discards the pending target with no side effect.
func (e *ProductEditor) DeclineDelete() {
	if e.state != StateConfirmingDelete {
		return
	}
	e.deleteTarget = nil
	e.state = StateIdle
}

// OpenStockAdjust captures the baseline stock for the delta flow.
func (e *ProductEditor) OpenStockAdjust(id string) error {
	if e.state != StateIdle {
		return nil
	}
	target := e.find(id)
	if target == nil {
		return domain.ErrProductNotFound
	}
	e.stockTarget = target
	e.baseline = target.Stock
	e.deltaText = ""
	e.state = StateAdjustingStock
	return nil
}

func (e *ProductEditor) StockTarget() *domain.Product { return e.stockTarget }
func (e *ProductEditor) Baseline() int                { return e.baseline }
func (e *ProductEditor) StockDelta() string           { return e.deltaText }

// SetStockDelta records the signed delta text as entered.
func (e *ProductEditor) SetStockDelta(text string) {
	if e.state != StateAdjustingStock {
		return
	}
	e.deltaText = text
}

// ResultingStock is baseline+delta as currently entered; unparsable input
// counts as delta 0, mirroring the live preview of the form.
func (e *ProductEditor) ResultingStock() int {
	delta, err := strconv.Atoi(e.deltaText)
	if err != nil {
		return e.baseline
	}
	return e.baseline + delta
}

// CanSubmitStock is true iff a non-zero delta is entered and the resulting
// stock stays non-negative.
func (e *ProductEditor) CanSubmitStock() bool {
	if e.state != StateAdjustingStock {
		return false
	}
	delta, err := strconv.Atoi(e.deltaText)
	return err == nil && delta != 0 && e.baseline+delta >= 0
}

// SubmitStock sends the absolute resulting value (baseline+delta), never the
// delta. A delta that would drive stock below zero is rejected here without
// any request.
func (e *ProductEditor) SubmitStock(ctx context.Context) error {
	if e.state != StateAdjustingStock || e.stockTarget == nil || e.deltaText == "" {
		return domain.ErrInvalidDraft
	}
	delta, err := strconv.Atoi(e.deltaText)
	if err != nil || delta == 0 {
		return domain.ErrInvalidDraft
	}
	if e.baseline+delta < 0 {
		e.notifier.Error("No puede reducir el stock por debajo de 0")
		return domain.ErrNegativeStock
	}

	target := e.stockTarget
	e.state = StateSubmitting
	updated, err := e.client.UpdateProductStock(ctx, target.ID, domain.StockUpdateData{Stock: e.baseline + delta})
	if err != nil {
		e.state = StateAdjustingStock
		e.notifier.Error(domain.UserMessage(err, "Error al actualizar el stock"))
		return err
	}
	e.replace(*updated)
	e.stockTarget = nil
	e.deltaText = ""
	e.state = StateIdle

	direction := "aumentado"
	amount := delta
	if delta < 0 {
		direction = "reducido"
		amount = -delta
	}
	e.notifier.Success(fmt.Sprintf("Stock %s en %d unidades", direction, amount))
	return nil
}

// CloseStockAdjust abandons the flow without a request.
func (e *ProductEditor) CloseStockAdjust() {
	if e.state != StateAdjustingStock {
		return
	}
	e.stockTarget = nil
	e.deltaText = ""
	e.state = StateIdle
}

func (e *ProductEditor) closeForm() {
	e.draft = ProductDraft{}
	e.touched = make(map[ProductField]bool)
	e.editTarget = nil
	e.mode = ModeCreate
	e.state = StateIdle
}

func (e *ProductEditor) find(id string) *domain.Product {
	for i := range e.products {
		if e.products[i].ID == id {
			return &e.products[i]
		}
	}
	return nil
}

// replace swaps exactly the entity with matching identity, preserving the
// order and every other entry.
func (e *ProductEditor) replace(p domain.Product) {
	for i := range e.products {
		if e.products[i].ID == p.ID {
			e.products[i] = p
			return
		}
	}
}
