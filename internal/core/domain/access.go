package domain

import "strings"

// PrivilegeLevel is the access-control rank derived from a caller's
// authenticated role claims. It is deliberately a separate type from the
// record's Role field: records hold a validated closed set, privileges form
// an ordered hierarchy that also includes SuperAdmin and None.
type PrivilegeLevel int

const (
	PrivilegeNone PrivilegeLevel = iota
	PrivilegeInstructor
	PrivilegeAdmin
	PrivilegeSuperAdmin
)

// PrivilegeFromClaims derives the effective privilege from the caller's raw
// role claim strings. The highest recognized claim wins; unrecognized claims
// contribute nothing. Recomputed on every request, never cached.
func PrivilegeFromClaims(claims []string) PrivilegeLevel {
	level := PrivilegeNone
	for _, claim := range claims {
		var p PrivilegeLevel
		switch {
		case strings.EqualFold(claim, RoleSuperAdmin):
			p = PrivilegeSuperAdmin
		case strings.EqualFold(claim, RoleAdmin):
			p = PrivilegeAdmin
		case strings.EqualFold(claim, RoleInstructor):
			p = PrivilegeInstructor
		default:
			continue
		}
		if p > level {
			level = p
		}
	}
	return level
}

// CanAssignRole reports whether a caller at this privilege may write the
// given role onto a record. Assigning Admin requires Admin or higher; any
// other role value carries no gate beyond record validation.
func (p PrivilegeLevel) CanAssignRole(role string) bool {
	if strings.EqualFold(role, RoleAdmin) {
		return p >= PrivilegeAdmin
	}
	return true
}

// CanView reports whether records with the given role are visible to a
// caller at this privilege level.
func (p PrivilegeLevel) CanView(role string) bool {
	switch p {
	case PrivilegeSuperAdmin:
		return true
	case PrivilegeAdmin:
		return strings.EqualFold(role, RoleAdmin) || strings.EqualFold(role, RoleInstructor)
	case PrivilegeInstructor:
		return strings.EqualFold(role, RoleInstructor)
	default:
		return false
	}
}

// FilterVisible returns the subset of users visible at the given privilege.
// A caller with no recognized role claim gets an empty set, not an error.
func FilterVisible(p PrivilegeLevel, users []User) []User {
	visible := make([]User, 0, len(users))
	for _, u := range users {
		if p.CanView(u.Role) {
			visible = append(visible, u)
		}
	}
	return visible
}

// CanDeleteRecord reports whether a record with the given stored role may be
// soft-deleted. SuperAdmin records are protected from every caller.
func CanDeleteRecord(role string) bool {
	return !strings.EqualFold(role, RoleSuperAdmin)
}
