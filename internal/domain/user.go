package domain

import "time"

// User is an authenticated account: a resident tied to a unit, or an
// administrative/treasury operator.
type User struct {
	ID             string
	NationalID     string
	Name           string
	Email          string
	Phone          string
	UnitID         int
	Role           Role
	HashedPassword string
	Active         bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Role is a user's access level.
type Role string

const (
	// RoleAdmin manages movements, dues runs and consolidation.
	RoleAdmin Role = "ADMIN"

	// RoleTreasury may register treasury transactions but nothing else.
	RoleTreasury Role = "TREASURY"

	// RoleResident may only consult their own unit's statement.
	RoleResident Role = "RESIDENT"
)

var validRoles = map[Role]bool{
	RoleAdmin:    true,
	RoleTreasury: true,
	RoleResident: true,
}

// IsValid checks if the role is a known role.
func (r Role) IsValid() bool {
	return validRoles[r]
}

// HasAnyRole reports whether r is one of the permitted roles. Endpoint
// guards are built on this single check rather than per-handler string
// comparisons.
func (r Role) HasAnyRole(permitted ...Role) bool {
	for _, p := range permitted {
		if r == p {
			return true
		}
	}
	return false
}

// CanRegisterMovements reports whether the role may record payments, fines
// and dues runs.
func (r Role) CanRegisterMovements() bool {
	return r == RoleAdmin
}

// CanRegisterTreasury reports whether the role may record treasury
// transactions.
func (r Role) CanRegisterTreasury() bool {
	return r == RoleAdmin || r == RoleTreasury
}

// CanViewUnit reports whether the role may read the statement of unitID,
// given the unit the user belongs to.
func (u *User) CanViewUnit(unitID int) bool {
	if u.Role == RoleAdmin {
		return true
	}
	return u.UnitID == unitID
}
