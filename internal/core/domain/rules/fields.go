// Package rules implements the field-level and cross-field business rules
// for staff user records. Every rule is a pure function producing a
// domain.Result; failure messages are surfaced verbatim to the caller.
package rules

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/academia/users-service/internal/core/domain"
)

var (
	nameRe  = regexp.MustCompile(`^[A-Za-zÁÉÍÓÚáéíóúÑñ ]+$`)
	ciRe    = regexp.MustCompile(`^[0-9A-Za-z]{6,15}$`)
	emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	upperRe = regexp.MustCompile(`[A-Z]`)
	lowerRe = regexp.MustCompile(`[a-z]`)
	digitRe = regexp.MustCompile(`[0-9]`)
)

// ValidateFullName checks a name or surname: required, at least 2 characters,
// letters (including accented Latin) and spaces only.
func ValidateFullName(name string) domain.Result[string] {
	if strings.TrimSpace(name) == "" {
		return domain.Failure[string]("El nombre completo es obligatorio.")
	}
	if utf8.RuneCountInString(name) < 2 {
		return domain.Failure[string]("El nombre completo debe tener al menos 2 caracteres.")
	}
	if !nameRe.MatchString(name) {
		return domain.Failure[string]("El nombre solo puede contener letras y espacios.")
	}
	return domain.Ok(name)
}

// ValidateCI checks the identity code: required, 6 to 15 alphanumeric characters.
func ValidateCI(ci string) domain.Result[string] {
	if strings.TrimSpace(ci) == "" {
		return domain.Failure[string]("El CI es obligatorio.")
	}
	if !ciRe.MatchString(ci) {
		return domain.Failure[string]("El CI debe contener solo letras y números, entre 6 y 15 caracteres.")
	}
	return domain.Ok(ci)
}

// ValidateBirthDate checks the birth date against the reference date: it must
// be present, not in the future, and yield an age of at least 18. A birthday
// falling exactly on the reference date counts as already turned.
func ValidateBirthDate(birth *time.Time, today time.Time) domain.Result[*time.Time] {
	if birth == nil {
		return domain.Failure[*time.Time]("La fecha de nacimiento es obligatoria.")
	}
	ref := dateOnly(today)
	b := dateOnly(*birth)
	if b.After(ref) {
		return domain.Failure[*time.Time]("La fecha de nacimiento no puede ser futura.")
	}
	if ageAt(b, ref) < 18 {
		return domain.Failure[*time.Time]("El usuario debe tener al menos 18 años.")
	}
	return domain.Ok(birth)
}

// ValidateHireDate checks the hire date: both dates present, hire not in the
// future, hire strictly after birth, and an age of at least 18 at hire.
func ValidateHireDate(hire, birth *time.Time, today time.Time) domain.Result[*time.Time] {
	if hire == nil || birth == nil {
		return domain.Failure[*time.Time]("Las fechas de contratación y nacimiento son obligatorias.")
	}
	ref := dateOnly(today)
	h := dateOnly(*hire)
	b := dateOnly(*birth)
	if h.After(ref) {
		return domain.Failure[*time.Time]("La fecha de contratación no puede ser futura.")
	}
	if !h.After(b) {
		return domain.Failure[*time.Time]("La fecha de contratación debe ser posterior a la fecha de nacimiento.")
	}
	if ageAt(b, h) < 18 {
		return domain.Failure[*time.Time]("El empleado debe tener al menos 18 años al ser contratado.")
	}
	return domain.Ok(hire)
}

// ValidateRole checks the role: required, case-insensitively Instructor or Admin.
func ValidateRole(role string) domain.Result[string] {
	if strings.TrimSpace(role) == "" {
		return domain.Failure[string]("El rol es obligatorio.")
	}
	if !strings.EqualFold(role, domain.RoleInstructor) && !strings.EqualFold(role, domain.RoleAdmin) {
		return domain.Failure[string]("El rol debe ser Instructor o Admin.")
	}
	return domain.Ok(role)
}

// ValidateSpecialization checks the specialization: required, at least 3 characters.
func ValidateSpecialization(specialization string) domain.Result[string] {
	if strings.TrimSpace(specialization) == "" {
		return domain.Failure[string]("La especialización es obligatoria.")
	}
	if utf8.RuneCountInString(specialization) < 3 {
		return domain.Failure[string]("La especialización debe tener al menos 3 caracteres.")
	}
	return domain.Ok(specialization)
}

// ValidateSalary checks the monthly salary: required, not negative. Zero is valid.
func ValidateSalary(salary *float64) domain.Result[float64] {
	if salary == nil {
		return domain.Failure[float64]("El salario es obligatorio.")
	}
	if *salary < 0 {
		return domain.Failure[float64]("El salario no puede ser negativo.")
	}
	return domain.Ok(*salary)
}

// ValidateEmail checks the email against a minimal shape pattern, not full RFC.
func ValidateEmail(email string) domain.Result[string] {
	if strings.TrimSpace(email) == "" {
		return domain.Failure[string]("El correo electrónico es obligatorio.")
	}
	if !emailRe.MatchString(email) {
		return domain.Failure[string]("El formato del correo electrónico no es válido.")
	}
	return domain.Ok(email)
}

// ValidatePassword checks credential strength: at least 8 characters with one
// upper-case letter, one lower-case letter, and one digit.
func ValidatePassword(password string) domain.Result[string] {
	if strings.TrimSpace(password) == "" {
		return domain.Failure[string]("La contraseña es obligatoria.")
	}
	if utf8.RuneCountInString(password) < 8 {
		return domain.Failure[string]("La contraseña debe tener al menos 8 caracteres.")
	}
	if !upperRe.MatchString(password) {
		return domain.Failure[string]("La contraseña debe contener al menos una letra mayúscula.")
	}
	if !lowerRe.MatchString(password) {
		return domain.Failure[string]("La contraseña debe contener al menos una letra minúscula.")
	}
	if !digitRe.MatchString(password) {
		return domain.Failure[string]("La contraseña debe contener al menos un número.")
	}
	return domain.Ok(password)
}

// ageAt computes the calendar-year age at ref, decremented when the birthday
// has not yet occurred in ref's year.
func ageAt(birth, ref time.Time) int {
	age := ref.Year() - birth.Year()
	if birth.AddDate(age, 0, 0).After(ref) {
		age--
	}
	return age
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
