package constants

import "fmt"

// User roles (enum user_role)
const (
	RoleAdmin   = "admin"
	RoleTeacher = "teacher"
	RoleStudent = "student"
)

// Class statuses (enum class_status)
const (
	ClassActive   = "active"
	ClassInactive = "inactive"
	ClassArchived = "archived"
)

const (
	ErrOnlyAdminsCanAccess = "Only admins can access %s"
	ErrUnauthenticated     = "Unauthorized"
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

// ==========================
// Grouped slices
// ==========================
var (
	AllRoles = []string{
		RoleAdmin,
		RoleTeacher,
		RoleStudent,
	}

	AdminOnly = []string{
		RoleAdmin,
	}

	ClassStatuses = []string{
		ClassActive,
		ClassInactive,
		ClassArchived,
	}
)

func IsValidRole(r string) bool {
	for _, v := range AllRoles {
		if v == r {
			return true
		}
	}
	return false
}
