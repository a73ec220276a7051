package domain

import "testing"

func TestRoleIsValid(t *testing.T) {
	if !RoleUser.IsValid() || !RoleAdmin.IsValid() {
		t.Error("built-in roles must be valid")
	}
	if Role("ROOT").IsValid() {
		t.Error("unknown role must be invalid")
	}
	if Role("admin").IsValid() {
		t.Error("role comparison is case-sensitive")
	}
}
