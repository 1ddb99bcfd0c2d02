package domain

import "testing"

func TestRoleCapabilities(t *testing.T) {
	tests := []struct {
		role          Role
		movements     bool
		treasury      bool
	}{
		{RoleAdmin, true, true},
		{RoleTreasury, false, true},
		{RoleResident, false, false},
	}

	for _, tt := range tests {
		if got := tt.role.CanRegisterMovements(); got != tt.movements {
			t.Errorf("%s.CanRegisterMovements() = %v, want %v", tt.role, got, tt.movements)
		}
		if got := tt.role.CanRegisterTreasury(); got != tt.treasury {
			t.Errorf("%s.CanRegisterTreasury() = %v, want %v", tt.role, got, tt.treasury)
		}
	}
}

func TestRoleHasAnyRole(t *testing.T) {
	if !RoleTreasury.HasAnyRole(RoleAdmin, RoleTreasury) {
		t.Fatal("treasury should match the admin-or-treasury guard")
	}
	if RoleResident.HasAnyRole(RoleAdmin, RoleTreasury) {
		t.Fatal("resident should not match the admin-or-treasury guard")
	}
}

func TestUserCanViewUnit(t *testing.T) {
	admin := &User{Role: RoleAdmin, UnitID: 3}
	if !admin.CanViewUnit(12) {
		t.Fatal("admin should see any unit")
	}

	resident := &User{Role: RoleResident, UnitID: 7}
	if !resident.CanViewUnit(7) {
		t.Fatal("resident should see their own unit")
	}
	if resident.CanViewUnit(8) {
		t.Fatal("resident should not see another unit")
	}
}

func TestRoleIsValid(t *testing.T) {
	for _, r := range []Role{RoleAdmin, RoleTreasury, RoleResident} {
		if !r.IsValid() {
			t.Errorf("%s reported invalid", r)
		}
	}
	if Role("JANITOR").IsValid() {
		t.Error("unknown role reported valid")
	}
}
