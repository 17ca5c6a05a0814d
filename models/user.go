// models/user.go
package models

import "time"

// Role identifies what a user may do. Staff roles (admin, barber, washer)
// belong to a branch; owners own branches; customers only book.
type Role string

const (
	RoleOwner    Role = "owner"
	RoleAdmin    Role = "admin"
	RoleBarber   Role = "barber"
	RoleWasher   Role = "washer"
	RoleCustomer Role = "customer"
)

// ValidRole reports whether r is a known role.
func ValidRole(r Role) bool {
	switch r {
	case RoleOwner, RoleAdmin, RoleBarber, RoleWasher, RoleCustomer:
		return true
	}
	return false
}

// IsStaff reports whether the role works at a branch and therefore requires
// a branchId.
func (r Role) IsStaff() bool {
	return r == RoleAdmin || r == RoleBarber || r == RoleWasher
}

// User is a platform account. Which operations array is authoritative is
// decided by the role: serviceOperations for barbers and washers,
// adminServiceOperations for admins.
type User struct {
	ID                     string      `bson:"id" json:"id"`
	Name                   string      `bson:"name" json:"name"`
	Phone                  string      `bson:"phone" json:"phone"`
	PasswordHash           string      `bson:"passwordHash" json:"-"`
	Role                   Role        `bson:"role" json:"role"`
	BranchID               string      `bson:"branchId,omitempty" json:"branchId,omitempty"`
	ServiceOperations      []Operation `bson:"serviceOperations,omitempty" json:"serviceOperations,omitempty"`
	AdminServiceOperations []Operation `bson:"adminServiceOperations,omitempty" json:"adminServiceOperations,omitempty"`
	IsActive               bool        `bson:"isActive" json:"isActive"`
	IsSuspended            bool        `bson:"isSuspended" json:"isSuspended"`
	CreatedAt              time.Time   `bson:"createdAt" json:"createdAt"`
	UpdatedAt              time.Time   `bson:"updatedAt" json:"updatedAt"`
}

// OperationsField returns the bson field name of the authoritative
// operations array for this user's role.
func (u *User) OperationsField() string {
	if u.Role == RoleAdmin {
		return "adminServiceOperations"
	}
	return "serviceOperations"
}

// Operations returns the authoritative operations array for this user's role.
func (u *User) Operations() []Operation {
	if u.Role == RoleAdmin {
		return u.AdminServiceOperations
	}
	return u.ServiceOperations
}

// SetOperations replaces the authoritative operations array in memory.
func (u *User) SetOperations(ops []Operation) {
	if u.Role == RoleAdmin {
		u.AdminServiceOperations = ops
		return
	}
	u.ServiceOperations = ops
}
