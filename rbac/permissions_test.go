package rbac_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/medicore-hms/hmsctl/rbac"
)

func TestWildcardRoles(t *testing.T) {
	probes := []string{"patients:read", "billing:write", "anything:at_all", ""}
	for _, role := range []string{rbac.RoleAdmin, rbac.RoleDoctor, rbac.RolePatient} {
		for _, p := range probes {
			assert.True(t, rbac.Can(role, p), "role %q should be granted %q", role, p)
		}
	}
}

func TestNurseExactSet(t *testing.T) {
	granted := []string{
		"patients:read", "patients:write", "vitals:write",
		"appointments:read", "tokens:read", "tokens:write",
	}
	for _, p := range granted {
		assert.True(t, rbac.Can(rbac.RoleNurse, p))
	}

	denied := []string{
		"appointments:write", "prescriptions:read", "lab_tests:read",
		"patients", "patients:readx", "*",
	}
	for _, p := range denied {
		assert.False(t, rbac.Can(rbac.RoleNurse, p), "nurse should not be granted %q", p)
	}
}

func TestUnknownRoleHasEmptySet(t *testing.T) {
	assert.False(t, rbac.Can("janitor", "patients:read"))
	assert.False(t, rbac.Can("", "patients:read"))
	assert.Nil(t, rbac.Permissions("janitor"))
}

func TestRoleCaseInsensitivity(t *testing.T) {
	assert.True(t, rbac.Can("Nurse", "tokens:read"))
	assert.True(t, rbac.Can("NURSE", "tokens:write"))
	assert.True(t, rbac.Can("Admin", "whatever"))
}

func TestRedirectPaths(t *testing.T) {
	assert.Equal(t, "/admin/dashboard", rbac.RedirectPath("admin"))
	assert.Equal(t, "/lab/dashboard", rbac.RedirectPath("LAB_TECHNICIAN"))
	assert.Equal(t, "/dashboard", rbac.RedirectPath("unknown"))
	assert.Equal(t, "/dashboard", rbac.RedirectPath(""))
}
