// rbac/routes.go
package rbac

import "strings"

var roleRoutes = map[string]string{
	RoleAdmin:         "/admin/dashboard",
	RoleDoctor:        "/doctor/dashboard",
	RoleNurse:         "/nurse/dashboard",
	RolePatient:       "/patient/dashboard",
	RoleReceptionist:  "/receptionist/dashboard",
	RolePharmacist:    "/pharmacist/dashboard",
	RoleLabTechnician: "/lab/dashboard",
}

// RedirectPath returns the landing route for a freshly authenticated role.
func RedirectPath(role string) string {
	if path, ok := roleRoutes[strings.ToLower(role)]; ok {
		return path
	}
	return "/dashboard"
}
