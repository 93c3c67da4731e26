package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/majadash/admin-console/internal/core/domain"
)

func seededUsers() []domain.User {
	return []domain.User{
		{ID: "u1", Name: "Ana", Email: "ana@maja.com", Role: domain.RoleAdmin, IsActive: true},
		{ID: "u2", Name: "Beto", Email: "beto@maja.com", Role: domain.RoleUser, IsActive: true},
		{ID: "u3", Name: "Carla", Email: "carla@maja.com", Role: domain.RoleUser, IsActive: false},
	}
}

func loadedUserEditor(t *testing.T, client *stubClient, notifier *stubNotifier) *UserEditor {
	t.Helper()
	if client.users == nil {
		client.users = seededUsers()
	}
	editor := NewUserEditor(client, notifier, zerolog.Nop())
	if err := editor.Load(context.Background()); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	return editor
}

func TestUserDraft_Validity(t *testing.T) {
	complete := UserDraft{Name: "Ana", Email: "ana@maja.com", Password: "s3cret", Role: "admin"}
	if !complete.IsValid(ModeCreate) {
		t.Fatalf("complete create draft should be valid")
	}

	noPassword := UserDraft{Name: "Ana", Email: "ana@maja.com", Role: "admin"}
	if noPassword.IsValid(ModeCreate) {
		t.Fatalf("create requires a password")
	}
	if !noPassword.IsValid(ModeEdit) {
		t.Fatalf("edit must not require a password")
	}

	blankEmail := UserDraft{Name: "Ana", Password: "x", Role: "admin"}
	if blankEmail.IsValid(ModeCreate) || blankEmail.IsValid(ModeEdit) {
		t.Fatalf("email is required in both modes")
	}
}

func TestUserEditor_LoadFailure(t *testing.T) {
	client := &stubClient{listUsersErr: &domain.RequestError{StatusCode: 500}}
	editor := NewUserEditor(client, &stubNotifier{}, zerolog.Nop())

	if err := editor.Load(context.Background()); err == nil {
		t.Fatalf("expected load error")
	}
	if editor.LoadError() != "Error al cargar los usuarios" {
		t.Fatalf("unexpected load error message: %q", editor.LoadError())
	}
}

func TestUserEditor_CreateFlow(t *testing.T) {
	notifier := &stubNotifier{}
	client := &stubClient{
		createdUser: &domain.User{ID: "u4", Name: "Dario", Email: "dario@maja.com", Role: domain.RoleUser, IsActive: true},
	}
	editor := loadedUserEditor(t, client, notifier)

	editor.OpenCreate()
	if editor.Draft().Role != "user" {
		t.Fatalf("create draft should default the role selector to user")
	}
	if editor.CanSubmit() {
		t.Fatalf("incomplete draft must not be submittable")
	}

	editor.SetField(UserFieldName, "Dario")
	editor.SetField(UserFieldEmail, "dario@maja.com")
	editor.SetField(UserFieldPassword, "s3cret")
	if !editor.CanSubmit() {
		t.Fatalf("complete draft should be submittable")
	}

	if err := editor.Submit(context.Background()); err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	users := editor.Users()
	if len(users) != 4 || users[3].ID != "u4" {
		t.Fatalf("created user must be appended at the end")
	}
	if client.lastCreateUser.Password != "s3cret" {
		t.Fatalf("create payload must carry the password")
	}
	if notifier.successes[0] != "Usuario creado exitosamente" {
		t.Fatalf("unexpected notification: %v", notifier.successes)
	}
}

func TestUserEditor_EditNeverSendsPassword(t *testing.T) {
	notifier := &stubNotifier{}
	client := &stubClient{
		updatedUser: &domain.User{ID: "u2", Name: "Beto M", Email: "beto@maja.com", Role: domain.RoleAdmin, IsActive: true},
	}
	editor := loadedUserEditor(t, client, notifier)

	if err := editor.OpenEdit("u2"); err != nil {
		t.Fatalf("OpenEdit failed: %v", err)
	}
	if editor.Draft().Password != "" {
		t.Fatalf("password must never be pre-filled on edit")
	}
	if !editor.CanSubmit() {
		t.Fatalf("cloned edit draft should already be valid without a password")
	}

	editor.SetField(UserFieldName, "Beto M")
	editor.SetField(UserFieldRole, "admin")
	if err := editor.Submit(context.Background()); err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	if client.lastUpdateUser.Name != "Beto M" || client.lastUpdateUser.Role != domain.RoleAdmin {
		t.Fatalf("unexpected update payload: %+v", client.lastUpdateUser)
	}
	users := editor.Users()
	if users[1].Name != "Beto M" || users[0].ID != "u1" || users[2].ID != "u3" {
		t.Fatalf("edit must replace exactly u2, order preserved: %+v", users)
	}
	if notifier.successes[0] != "Usuario actualizado exitosamente" {
		t.Fatalf("unexpected notification: %v", notifier.successes)
	}
}

func TestUserEditor_SubmitFailureKeepsFormOpen(t *testing.T) {
	notifier := &stubNotifier{}
	client := &stubClient{userErr: &domain.RequestError{StatusCode: 409, Message: "el email ya existe"}}
	editor := loadedUserEditor(t, client, notifier)

	editor.OpenCreate()
	editor.SetField(UserFieldName, "Dario")
	editor.SetField(UserFieldEmail, "dario@maja.com")
	editor.SetField(UserFieldPassword, "s3cret")

	if err := editor.Submit(context.Background()); err == nil {
		t.Fatalf("expected submit error")
	}
	if editor.State() != StateFormOpen || editor.Draft().Email != "dario@maja.com" {
		t.Fatalf("form must stay open with the draft intact")
	}
	if notifier.errors[0] != "el email ya existe" {
		t.Fatalf("server message must be surfaced verbatim: %v", notifier.errors)
	}
}

func TestUserEditor_InlineErrorsGatedByTouched(t *testing.T) {
	editor := loadedUserEditor(t, &stubClient{}, &stubNotifier{})

	editor.OpenCreate()
	if editor.InlineError(UserFieldEmail) != "" {
		t.Fatalf("untouched field must show no inline error")
	}
	editor.SetField(UserFieldEmail, " ")
	if editor.InlineError(UserFieldEmail) != "El email es requerido" {
		t.Fatalf("touched invalid field must show its message, got %q", editor.InlineError(UserFieldEmail))
	}
	editor.SetField(UserFieldEmail, "dario@maja.com")
	if editor.InlineError(UserFieldEmail) != "" {
		t.Fatalf("valid field must clear its inline error")
	}
}

func TestUserEditor_ToggleRequiresConfirmation(t *testing.T) {
	notifier := &stubNotifier{}
	client := &stubClient{
		toggledUser: &domain.User{ID: "u2", Name: "Beto", Email: "beto@maja.com", Role: domain.RoleUser, IsActive: false},
	}
	editor := loadedUserEditor(t, client, notifier)

	if err := editor.RequestToggle("u2"); err != nil {
		t.Fatalf("RequestToggle failed: %v", err)
	}
	editor.DeclineToggle()
	if editor.State() != StateIdle || editor.Users()[1].IsActive != true {
		t.Fatalf("decline must leave the user untouched")
	}

	_ = editor.RequestToggle("u2")
	if err := editor.ConfirmToggle(context.Background()); err != nil {
		t.Fatalf("ConfirmToggle failed: %v", err)
	}
	if client.lastSetActive != false {
		t.Fatalf("toggle must request the flipped state")
	}
	if editor.Users()[1].IsActive {
		t.Fatalf("entity must be replaced with the server's response")
	}
	if notifier.successes[0] != "Usuario desactivado exitosamente" {
		t.Fatalf("unexpected notification: %v", notifier.successes)
	}
}

func TestUserEditor_ActivationMessage(t *testing.T) {
	notifier := &stubNotifier{}
	client := &stubClient{
		toggledUser: &domain.User{ID: "u3", Name: "Carla", Email: "carla@maja.com", Role: domain.RoleUser, IsActive: true},
	}
	editor := loadedUserEditor(t, client, notifier)

	_ = editor.RequestToggle("u3")
	if err := editor.ConfirmToggle(context.Background()); err != nil {
		t.Fatalf("ConfirmToggle failed: %v", err)
	}
	if client.lastSetActive != true {
		t.Fatalf("toggle of an inactive user must request activation")
	}
	if notifier.successes[0] != "Usuario activado exitosamente" {
		t.Fatalf("unexpected notification: %v", notifier.successes)
	}
}

func TestUserEditor_ToggleFailure(t *testing.T) {
	notifier := &stubNotifier{}
	client := &stubClient{userErr: &domain.RequestError{StatusCode: 500}}
	editor := loadedUserEditor(t, client, notifier)

	_ = editor.RequestToggle("u2")
	if err := editor.ConfirmToggle(context.Background()); err == nil {
		t.Fatalf("expected toggle error")
	}
	if editor.State() != StateConfirmingStatusToggle {
		t.Fatalf("confirmation modal must stay open on failure")
	}
	if notifier.errors[0] != "Error al cambiar el estado del usuario" {
		t.Fatalf("unexpected message: %v", notifier.errors)
	}
}
