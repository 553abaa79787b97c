package domain

import "testing"

func TestIsAllowedRole(t *testing.T) {
	for _, role := range []string{RoleUser, RoleAdmin, RoleVeterinaire, RoleEmployee} {
		if !IsAllowedRole(role) {
			t.Fatalf("%s should be allowed", role)
		}
	}
	for _, role := range []string{"ROLE_HACKER", "role_user", "", "ADMIN"} {
		if IsAllowedRole(role) {
			t.Fatalf("%q should be rejected", role)
		}
	}
}

func TestUser_HasRole(t *testing.T) {
	u := &User{Roles: []string{RoleUser, RoleEmployee}}

	if !u.HasRole(RoleEmployee) {
		t.Fatalf("expected ROLE_EMPLOYEE membership")
	}
	if u.HasRole(RoleAdmin) {
		t.Fatalf("no role implies another")
	}
	if u.HasRole("role_user") {
		t.Fatalf("membership is case-sensitive")
	}
}
