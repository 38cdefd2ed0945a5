package models

type UserRole string

const (
	UserRoleStaff UserRole = "staff"
	UserRoleHR    UserRole = "hr"
	UserRoleAdmin UserRole = "admin"
)

var roleHumanName = map[UserRole]string{
	UserRoleStaff: "Staff",
	UserRoleHR:    "HR Officer",
	UserRoleAdmin: "Administrator",
}

func (r UserRole) ToHuman() string {
	if human, exist := roleHumanName[r]; exist {
		return human
	}
	return string(r)
}

func (r UserRole) IsStaff() bool {
	return r == UserRoleStaff
}

// IsValid reports whether the role is one of the seeded portal roles.
func (r UserRole) IsValid() bool {
	_, exist := roleHumanName[r]
	return exist
}

// TargetRoleAll addresses a notification to every viewer regardless of role.
const TargetRoleAll = "all"
