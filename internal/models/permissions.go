package models

// Roles
const (
	RoleUser     = "user"
	RoleMerchant = "merchant"
	RoleAdmin    = "admin"
)

// Permission constants
const (
	// Card permissions
	PermissionCardRead  = "cards:read"
	PermissionCardWrite = "cards:write"
	PermissionCardCheck = "cards:check"

	// Admin permissions
	PermissionReadAdmin = "admin:read"
)

// GetDefaultPermissions returns default permissions based on role
func GetDefaultPermissions(role string) []string {
	switch role {
	case RoleAdmin:
		return []string{PermissionCardRead, PermissionCardWrite, PermissionCardCheck, PermissionReadAdmin}
	case RoleUser:
		return []string{PermissionCardRead, PermissionCardWrite, PermissionCardCheck}
	case RoleMerchant:
		return []string{PermissionCardCheck}
	default:
		return []string{}
	}
}
