package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/majadash/admin-console/internal/core/domain"
	"github.com/majadash/admin-console/internal/core/ports"
)

// UserEditor is the form-state machine behind the user management view.
// Accounts are never deleted from here, only deactivated, so its delete
// analogue is the confirmed status toggle.
type UserEditor struct {
	client   ports.ResourceClient
	notifier ports.Notifier
	log      zerolog.Logger

	state   EditorState
	users   []domain.User
	loadErr string

	mode       FormMode
	draft      UserDraft
	touched    map[UserField]bool
	editTarget *domain.User

	toggleTarget *domain.User
}

func NewUserEditor(client ports.ResourceClient, notifier ports.Notifier, log zerolog.Logger) *UserEditor {
	return &UserEditor{
		client:   client,
		notifier: notifier,
		log:      log,
		touched:  make(map[UserField]bool),
	}
}

func (e *UserEditor) State() EditorState       { return e.state }
func (e *UserEditor) Mode() FormMode           { return e.mode }
func (e *UserEditor) Users() []domain.User     { return e.users }
func (e *UserEditor) LoadError() string        { return e.loadErr }
func (e *UserEditor) Draft() UserDraft         { return e.draft }
func (e *UserEditor) Touched(f UserField) bool { return e.touched[f] }

func (e *UserEditor) Load(ctx context.Context) error {
	users, err := e.client.ListUsers(ctx)
	if err != nil {
		e.loadErr = domain.UserMessage(err, "Error al cargar los usuarios")
		e.log.Error().Err(err).Msg("user list load failed")
		return err
	}
	e.users = users
	e.loadErr = ""
	return nil
}

func (e *UserEditor) OpenCreate() {
	if e.state != StateIdle {
		return
	}
	e.mode = ModeCreate
	e.draft = UserDraft{Role: string(domain.RoleUser)}
	e.touched = make(map[UserField]bool)
	e.editTarget = nil
	e.state = StateFormOpen
}

// OpenEdit clones the target into the draft. The password field is always
// blank on edit, never pre-filled.
func (e *UserEditor) OpenEdit(id string) error {
	if e.state != StateIdle {
		return nil
	}
	target := e.find(id)
	if target == nil {
		return domain.ErrUserNotFound
	}
	e.mode = ModeEdit
	e.editTarget = target
	e.draft = UserDraft{
		Name:  target.Name,
		Email: target.Email,
		Role:  string(target.Role),
	}
	e.touched = make(map[UserField]bool)
	e.state = StateFormOpen
	return nil
}

func (e *UserEditor) SetField(f UserField, value string) {
	if e.state != StateFormOpen {
		return
	}
	switch f {
	case UserFieldName:
		e.draft.Name = value
	case UserFieldEmail:
		e.draft.Email = value
	case UserFieldPassword:
		e.draft.Password = value
	case UserFieldRole:
		e.draft.Role = value
	}
	e.touched[f] = true
}

func (e *UserEditor) InlineError(f UserField) string {
	if !e.touched[f] {
		return ""
	}
	return e.draft.fieldError(f, e.mode)
}

func (e *UserEditor) CanSubmit() bool {
	return e.state == StateFormOpen && e.draft.IsValid(e.mode)
}

// Submit sends the draft; the update payload never carries a password.
func (e *UserEditor) Submit(ctx context.Context) error {
	if !e.CanSubmit() {
		return domain.ErrInvalidDraft
	}

	e.state = StateSubmitting
	if e.mode == ModeEdit {
		payload := e.draft.updatePayload()
		if err := domain.ValidatePayload(payload); err != nil {
			e.state = StateFormOpen
			return err
		}
		updated, err := e.client.UpdateUser(ctx, e.editTarget.ID, payload)
		if err != nil {
			e.state = StateFormOpen
			e.notifier.Error(domain.UserMessage(err, "Error al actualizar el usuario"))
			return err
		}
		e.replace(*updated)
		e.closeForm()
		e.notifier.Success("Usuario actualizado exitosamente")
		return nil
	}

	payload := e.draft.createPayload()
	if err := domain.ValidatePayload(payload); err != nil {
		e.state = StateFormOpen
		return err
	}
	created, err := e.client.CreateUser(ctx, payload)
	if err != nil {
		e.state = StateFormOpen
		e.notifier.Error(domain.UserMessage(err, "Error al crear el usuario"))
		return err
	}
	e.users = append(e.users, *created)
	e.closeForm()
	e.notifier.Success("Usuario creado exitosamente")
	return nil
}

// Reset drops the loaded list and whatever modal is open, returning the
// editor to its pre-load state. Called when the session ends.
func (e *UserEditor) Reset() {
	e.users = nil
	e.loadErr = ""
	e.toggleTarget = nil
	e.closeForm()
}

func (e *UserEditor) Cancel() {
	switch e.state {
	case StateFormOpen:
		e.closeForm()
	case StateConfirmingStatusToggle:
		e.DeclineToggle()
	}
}

// RequestToggle stages an activate/deactivate pending confirmation.
func (e *UserEditor) RequestToggle(id string) error {
	if e.state != StateIdle {
		return nil
	}
	target := e.find(id)
	if target == nil {
		return domain.ErrUserNotFound
	}
	e.toggleTarget = target
	e.state = StateConfirmingStatusToggle
	return nil
}

func (e *UserEditor) ToggleTarget() *domain.User { return e.toggleTarget }

// ConfirmToggle flips IsActive through the dedicated status endpoint and
// replaces the entity in place.
func (e *UserEditor) ConfirmToggle(ctx context.Context) error {
	if e.state != StateConfirmingStatusToggle || e.toggleTarget == nil {
		return nil
	}
	target := e.toggleTarget
	e.state = StateSubmitting
	updated, err := e.client.SetUserActive(ctx, target.ID, !target.IsActive)
	if err != nil {
		e.state = StateConfirmingStatusToggle
		e.notifier.Error(domain.UserMessage(err, "Error al cambiar el estado del usuario"))
		return err
	}
	e.replace(*updated)
	e.toggleTarget = nil
	e.state = StateIdle

	if updated.IsActive {
		e.notifier.Success("Usuario activado exitosamente")
	} else {
		e.notifier.Success("Usuario desactivado exitosamente")
	}
	return nil
}

// DeclineToggle discards the pending target with no side effect.
func (e *UserEditor) DeclineToggle() {
	if e.state != StateConfirmingStatusToggle {
		return
	}
	e.toggleTarget = nil
	e.state = StateIdle
}

func (e *UserEditor) closeForm() {
	e.draft = UserDraft{}
	e.touched = make(map[UserField]bool)
	e.editTarget = nil
	e.mode = ModeCreate
	e.state = StateIdle
}

func (e *UserEditor) find(id string) *domain.User {
	for i := range e.users {
		if e.users[i].ID == id {
			return &e.users[i]
		}
	}
	return nil
}

func (e *UserEditor) replace(u domain.User) {
	for i := range e.users {
		if e.users[i].ID == u.ID {
			e.users[i] = u
			return
		}
	}
}
