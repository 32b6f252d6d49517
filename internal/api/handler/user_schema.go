package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// messageResponse is the envelope for mutations with no body to return.
type messageResponse struct {
	Message string `json:"message"`
}

// --- Request types ---

// userRequest carries the full record on create and update. No validate tags
// on the business fields: the domain rules own those checks and their
// messages must reach the client verbatim.
type userRequest struct {
	Name           string     `json:"name"`
	FirstLastname  string     `json:"first_lastname"`
	SecondLastname string     `json:"second_lastname,omitempty"`
	DateBirth      *time.Time `json:"date_birth,omitempty"`
	CI             string     `json:"ci"`
	Role           string     `json:"role,omitempty"`
	HireDate       *time.Time `json:"hire_date,omitempty"`
	MonthlySalary  *float64   `json:"monthly_salary,omitempty"`
	Specialization string     `json:"specialization,omitempty"`
	Email          string     `json:"email"`
	// Password is the temporary credential, create only.
	Password string `json:"password,omitempty"`
}

type changePasswordRequest struct {
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type tokenUpdateRequest struct {
	Token     string    `json:"token"      validate:"required"`
	ExpiresAt time.Time `json:"expires_at" validate:"required"`
}

// --- Response types (owned by the transport layer) ---

type userResponse struct {
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
	MustChangePassword bool       `json:"must_change_password"`
	IsActive           bool       `json:"is_active"`
	CreatedAt          time.Time  `json:"created_at"`
	LastModification   time.Time  `json:"last_modification"`
}

type listUsersResponse struct {
	Data []userResponse `json:"data"`
}

// loginProfile is the safe projection returned by login: no credential field.
type loginProfile struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	Email              string `json:"email"`
	Role               string `json:"role"`
	MustChangePassword bool   `json:"mustChangePassword"`
}

type loginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      loginProfile `json:"user"`
}
