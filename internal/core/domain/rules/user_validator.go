package rules

import (
	"strings"
	"time"

	"github.com/academia/users-service/internal/core/domain"
)

// ValidateUser runs the full-record validation pass in fixed order, stopping
// at the first failure. Cross-field rules: the hire date is checked only when
// present (and is reached only after the birth date has already validated),
// the salary is required for any staff role, and the specialization only for
// instructors.
func ValidateUser(user *domain.User, today time.Time) domain.Result[*domain.User] {
	if user == nil {
		return domain.Failure[*domain.User]("El usuario no puede ser nulo.")
	}

	if r := ValidateFullName(user.Name); r.IsFailure() {
		return domain.Failure[*domain.User](r.Message())
	}

	if r := ValidateFullName(user.FirstLastname); r.IsFailure() {
		return domain.Failure[*domain.User]("Primer apellido: " + r.Message())
	}

	if strings.TrimSpace(user.SecondLastname) != "" {
		if r := ValidateFullName(user.SecondLastname); r.IsFailure() {
			return domain.Failure[*domain.User]("Segundo apellido: " + r.Message())
		}
	}

	if r := ValidateCI(user.CI); r.IsFailure() {
		return domain.Failure[*domain.User](r.Message())
	}

	if r := ValidateBirthDate(user.DateBirth, today); r.IsFailure() {
		return domain.Failure[*domain.User](r.Message())
	}

	if r := ValidateRole(user.Role); r.IsFailure() {
		return domain.Failure[*domain.User](r.Message())
	}

	if user.HireDate != nil {
		if r := ValidateHireDate(user.HireDate, user.DateBirth, today); r.IsFailure() {
			return domain.Failure[*domain.User](r.Message())
		}
	}

	if strings.EqualFold(user.Role, domain.RoleInstructor) || strings.EqualFold(user.Role, domain.RoleAdmin) {
		if r := ValidateSalary(user.MonthlySalary); r.IsFailure() {
			return domain.Failure[*domain.User](r.Message())
		}
	}

	if strings.EqualFold(user.Role, domain.RoleInstructor) {
		if r := ValidateSpecialization(user.Specialization); r.IsFailure() {
			return domain.Failure[*domain.User](r.Message())
		}
	}

	if r := ValidateEmail(user.Email); r.IsFailure() {
		return domain.Failure[*domain.User](r.Message())
	}

	return domain.Ok(user)
}
