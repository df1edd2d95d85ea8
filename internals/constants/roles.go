package constants

import "fmt"

const (
	RoleAdmin      = "admin"
	RoleInstructor = "instructor"
	RoleStudent    = "student"
)

// Template pesan error role
const (
	ErrOnlyAdminsCanAccess       = "Hanya admin yang boleh mengakses fitur %s."
	ErrOnlyAdminOrOwnerCanAccess = "Hanya admin atau instruktur pemilik course yang boleh mengakses fitur %s."
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorAdminOrOwner(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminOrOwnerCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleAdmin,
		RoleInstructor,
		RoleStudent,
	}

	StaffRoles = []string{
		RoleAdmin,
		RoleInstructor,
	}

	AdminOnly = []string{
		RoleAdmin,
	}
)
