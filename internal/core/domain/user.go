package domain

import (
	"errors"
	"time"
)

// Roles a validated record may carry. SuperAdmin exists only as a privilege
// tier: record validation never accepts it, the seed command writes it
// directly through the repository.
const (
	RoleInstructor = "Instructor"
	RoleAdmin      = "Admin"
	RoleSuperAdmin = "SuperAdmin"
)

var (
	ErrUserNotFound       = errors.New("Usuario no encontrado")
	ErrEmailTaken         = errors.New("El correo electrónico ya está registrado")
	ErrInvalidCredentials = errors.New("Email o contraseña inválidos")
	ErrAccessDenied       = errors.New("No tiene permisos para realizar esta operación")
	ErrProtectedRecord    = errors.New("El usuario SuperAdmin no puede ser eliminado")
)

// ValidationError carries a field or cross-field rule violation. The message
// is surfaced verbatim to the caller.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError wraps a rule failure message as an error.
func NewValidationError(message string) error {
	return &ValidationError{Message: message}
}

// User models one staff member (instructor or admin): identity, employment,
// credential, and session fields in a single flat record.
type User struct {
	ID                 string     `json:"id"`
	Name               string     `json:"name"`
	FirstLastname      string     `json:"first_lastname"`
	SecondLastname     string     `json:"second_lastname,omitempty"`
	DateBirth          *time.Time `json:"date_birth,omitempty"`
	CI                 string     `json:"ci"`
	Role               string     `json:"role"`
	HireDate           *time.Time `json:"hire_date,omitempty"`
	MonthlySalary      *float64   `json:"monthly_salary,omitempty"`
	Specialization     string     `json:"specialization,omitempty"`
	Email              string     `json:"email"`
	PasswordHash       string     `json:"-"`
	MustChangePassword bool       `json:"must_change_password"`
	IsActive           bool       `json:"is_active"`
	CreatedAt          time.Time  `json:"created_at"`
	LastModification   time.Time  `json:"last_modification"`
	Token              string     `json:"-"`
	TokenExpiresAt     *time.Time `json:"-"`
}
