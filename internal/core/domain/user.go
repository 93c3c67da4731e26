package domain

// Role is the closed set of roles the dashboard understands.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// ParseRole maps an arbitrary role string onto the closed enumeration.
// Unknown values degrade to RoleUser so an unexpected server-side role can
// never widen this client's privileges.
func ParseRole(s string) Role {
	if s == string(RoleAdmin) {
		return RoleAdmin
	}
	return RoleUser
}

// User models a managed account as the remote system exposes it.
type User struct {
	ID       string `json:"_id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`
	IsActive bool   `json:"isActive"`
}

// AuthUser is the identity projection persisted alongside the bearer token.
// It deliberately omits IsActive: an operator's own active flag is enforced
// server-side at login and never consulted locally.
type AuthUser struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// CreateUserData is the payload for creating an account.
type CreateUserData struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     Role   `json:"role" validate:"required,oneof=user admin"`
}

// UpdateUserData is the payload for editing an account. It never carries a
// password.
type UpdateUserData struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Role  Role   `json:"role" validate:"required,oneof=user admin"`
}
