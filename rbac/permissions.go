// rbac/permissions.go
package rbac

import "strings"

// Role names as stored in user_type.type, lowercased.
const (
	RoleAdmin         = "admin"
	RoleDoctor        = "doctor"
	RoleNurse         = "nurse"
	RolePatient       = "patient"
	RoleReceptionist  = "receptionist"
	RolePharmacist    = "pharmacist"
	RoleLabTechnician = "lab_technician"
)

// Wildcard grants every permission.
const Wildcard = "*"

// rolePermissions is configuration data, not branching logic. The doctor and
// patient wildcards mirror the backend's current grants.
var rolePermissions = map[string][]string{
	RoleAdmin:  {Wildcard},
	RoleDoctor: {Wildcard},
	RoleNurse: {
		"patients:read", "patients:write", "vitals:write",
		"appointments:read", "tokens:read", "tokens:write",
	},
	RolePatient: {Wildcard},
	RoleReceptionist: {
		"appointments:read", "appointments:write",
		"patients:read", "patients:write",
		"tokens:read", "tokens:write",
	},
	RolePharmacist: {
		"prescriptions:read", "medicines:read", "medicines:write",
	},
	RoleLabTechnician: {
		"lab_tests:read", "lab_tests:write", "lab_reports:write",
	},
}

// Can reports whether the role's granted set contains the wildcard or the
// exact permission string. Unknown roles have an empty set.
func Can(role, permission string) bool {
	grants, ok := rolePermissions[strings.ToLower(role)]
	if !ok {
		return false
	}
	for _, g := range grants {
		if g == Wildcard || g == permission {
			return true
		}
	}
	return false
}

// Permissions returns a copy of the role's granted set.
func Permissions(role string) []string {
	grants, ok := rolePermissions[strings.ToLower(role)]
	if !ok {
		return nil
	}
	out := make([]string, len(grants))
	copy(out, grants)
	return out
}
