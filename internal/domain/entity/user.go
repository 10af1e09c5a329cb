package entity

import (
	"time"
)

// User represents a staff account of the agency backoffice.
// ApprovalToken is set only while Role is UserRolePending.
type User struct {
	ID            string     `bson:"_id,omitempty" json:"id"`
	Username      string     `bson:"username" json:"username"`
	Email         string     `bson:"email" json:"email"`
	PasswordHash  string     `bson:"password_hash" json:"-"`
	Role          UserRole   `bson:"role" json:"role"`
	Status        UserStatus `bson:"status" json:"status"`
	ApprovalToken *string    `bson:"approval_token,omitempty" json:"-"`
	ApprovedAt    *time.Time `bson:"approved_at,omitempty" json:"approved_at,omitempty"`
	CreatedAt     time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time  `bson:"updated_at" json:"updated_at"`
}

// UserRole represents the role of a user in the system
type UserRole string

const (
	UserRolePending    UserRole = "pending"
	UserRoleUser       UserRole = "user"
	UserRoleAdmin      UserRole = "admin"
	UserRoleSuperadmin UserRole = "superadmin"
)

// ParseUserRole maps a raw string onto the closed set of roles.
func ParseUserRole(s string) (UserRole, bool) {
	switch UserRole(s) {
	case UserRolePending:
		return UserRolePending, true
	case UserRoleUser:
		return UserRoleUser, true
	case UserRoleAdmin:
		return UserRoleAdmin, true
	case UserRoleSuperadmin:
		return UserRoleSuperadmin, true
	}
	return "", false
}

// IsManaged reports whether accounts in this role can have their role and
// status edited by administrators.
func (r UserRole) IsManaged() bool {
	switch r {
	case UserRoleUser, UserRoleAdmin:
		return true
	case UserRolePending, UserRoleSuperadmin:
		return false
	}
	return false
}

// IsApprover reports whether accounts in this role receive registration
// notifications.
func (r UserRole) IsApprover() bool {
	switch r {
	case UserRoleAdmin, UserRoleSuperadmin:
		return true
	case UserRolePending, UserRoleUser:
		return false
	}
	return false
}

// ManagedRoles are the roles an administrator may assign or edit.
func ManagedRoles() []UserRole {
	return []UserRole{UserRoleUser, UserRoleAdmin}
}

// ApproverRoles are the roles notified about new registrations.
func ApproverRoles() []UserRole {
	return []UserRole{UserRoleAdmin, UserRoleSuperadmin}
}

// UserStatus is independent of the role and only meaningful once the
// account has left the pending role.
type UserStatus string

const (
	UserStatusActive    UserStatus = "active"
	UserStatusInactive  UserStatus = "inactive"
	UserStatusSuspended UserStatus = "suspended"
)

// ParseUserStatus maps a raw string onto the closed set of statuses.
func ParseUserStatus(s string) (UserStatus, bool) {
	switch UserStatus(s) {
	case UserStatusActive:
		return UserStatusActive, true
	case UserStatusInactive:
		return UserStatusInactive, true
	case UserStatusSuspended:
		return UserStatusSuspended, true
	}
	return "", false
}

// CanAuthenticate reports whether the account may sign in to the backoffice.
func (u *User) CanAuthenticate() bool {
	return u.Role != UserRolePending && u.Status == UserStatusActive
}

// UserPatch describes a partial update of an account. RequireRoleIn, when
// non-empty, makes the update conditional on the stored role.
type UserPatch struct {
	Role          *UserRole
	Status        *UserStatus
	RequireRoleIn []UserRole
}
