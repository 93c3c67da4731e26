package service

import (
	"strconv"
	"strings"

	"github.com/majadash/admin-console/internal/core/domain"
)

// FormMode distinguishes a blank create draft from one cloned off an
// existing entity.
type FormMode int

const (
	ModeCreate FormMode = iota
	ModeEdit
)

// EditorState is the single modal state of an editor. One modal at a time:
// user interaction serialises every transition.
type EditorState int

const (
	StateIdle EditorState = iota
	StateFormOpen
	StateSubmitting
	StateConfirmingDelete
	StateConfirmingStatusToggle
	StateAdjustingStock
)

// ProductField / UserField identify draft fields for the touched set.
type ProductField int

const (
	ProductFieldName ProductField = iota
	ProductFieldDescription
	ProductFieldPrice
	ProductFieldStock
)

type UserField int

const (
	UserFieldName UserField = iota
	UserFieldEmail
	UserFieldPassword
	UserFieldRole
)

// ProductDraft holds the raw text of each form field. Numeric fields keep
// the entered text so "unset" ("") is distinguishable from an explicit 0.
type ProductDraft struct {
	Name        string
	Description string
	Price       string
	Stock       string
}

// IsValid is a pure function of the draft, independent of the touched set:
// name and description non-empty after trimming, price > 0, stock >= 0.
func (d ProductDraft) IsValid() bool {
	price, perr := strconv.ParseFloat(d.Price, 64)
	stock, serr := strconv.Atoi(d.Stock)
	return strings.TrimSpace(d.Name) != "" &&
		strings.TrimSpace(d.Description) != "" &&
		perr == nil && price > 0 &&
		serr == nil && stock >= 0
}

// Payload converts a valid draft into the wire payload.
func (d ProductDraft) Payload() domain.CreateProductData {
	price, _ := strconv.ParseFloat(d.Price, 64)
	stock, _ := strconv.Atoi(d.Stock)
	return domain.CreateProductData{
		Name:        strings.TrimSpace(d.Name),
		Description: strings.TrimSpace(d.Description),
		Price:       price,
		Stock:       stock,
	}
}

// fieldError returns the inline message for an invalid field, or "".
// Display gating by the touched set happens in InlineError, not here.
func (d ProductDraft) fieldError(f ProductField) string {
	switch f {
	case ProductFieldName:
		if strings.TrimSpace(d.Name) == "" {
			return "El nombre es requerido"
		}
	case ProductFieldDescription:
		if strings.TrimSpace(d.Description) == "" {
			return "La descripción es requerida"
		}
	case ProductFieldPrice:
		if price, err := strconv.ParseFloat(d.Price, 64); err != nil || price <= 0 {
			return "El precio debe ser mayor a 0"
		}
	case ProductFieldStock:
		if stock, err := strconv.Atoi(d.Stock); err != nil || stock < 0 {
			return "El stock no puede ser negativo"
		}
	}
	return ""
}

// UserDraft holds the raw text of the user form. Password is only relevant
// in create mode and is never pre-filled on edit.
type UserDraft struct {
	Name     string
	Email    string
	Password string
	Role     string
}

// IsValid applies the mode-dependent rule: create requires every field,
// edit waives the password.
func (d UserDraft) IsValid(mode FormMode) bool {
	base := strings.TrimSpace(d.Name) != "" &&
		strings.TrimSpace(d.Email) != "" &&
		strings.TrimSpace(d.Role) != ""
	if mode == ModeEdit {
		return base
	}
	return base && strings.TrimSpace(d.Password) != ""
}

func (d UserDraft) createPayload() domain.CreateUserData {
	return domain.CreateUserData{
		Name:     strings.TrimSpace(d.Name),
		Email:    strings.TrimSpace(d.Email),
		Password: d.Password,
		Role:     domain.ParseRole(strings.TrimSpace(d.Role)),
	}
}

func (d UserDraft) updatePayload() domain.UpdateUserData {
	return domain.UpdateUserData{
		Name:  strings.TrimSpace(d.Name),
		Email: strings.TrimSpace(d.Email),
		Role:  domain.ParseRole(strings.TrimSpace(d.Role)),
	}
}

func (d UserDraft) fieldError(f UserField, mode FormMode) string {
	switch f {
	case UserFieldName:
		if strings.TrimSpace(d.Name) == "" {
			return "El nombre es requerido"
		}
	case UserFieldEmail:
		if strings.TrimSpace(d.Email) == "" {
			return "El email es requerido"
		}
	case UserFieldPassword:
		if mode == ModeCreate && strings.TrimSpace(d.Password) == "" {
			return "La contraseña es requerida"
		}
	case UserFieldRole:
		if strings.TrimSpace(d.Role) == "" {
			return "El rol es requerido"
		}
	}
	return ""
}
