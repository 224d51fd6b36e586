package constants

import "fmt"

const (
	RoleCustomer = "customer"
	RoleStaff    = "staff"
	RoleAdmin    = "admin"
	RoleOwner    = "owner"
)

// Template pesan error role
const (
	ErrOnlyStaffCanAccess  = "❌ Hanya staff, admin, atau owner yang boleh mengakses fitur %s."
	ErrOnlyAdminsCanAccess = "❌ Hanya admin yang boleh mengakses fitur %s."
)

func RoleErrorStaff(feature string) string {
	return fmt.Sprintf(ErrOnlyStaffCanAccess, feature)
}

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleCustomer,
		RoleStaff,
		RoleAdmin,
		RoleOwner,
	}

	// StaffAndAbove: role yang boleh mengelola katalog & lifecycle pengujian
	StaffAndAbove = []string{
		RoleStaff,
		RoleAdmin,
		RoleOwner,
	}
)
