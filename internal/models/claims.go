package models

import "github.com/golang-jwt/jwt/v5"

// Application permissions
const (
	// Admin permissions
	PermissionReadAdmin  = "admin:read"
	PermissionWriteAdmin = "admin:write"

	// Document permissions
	PermissionDocumentRead  = "document:read"
	PermissionDocumentWrite = "document:write"

	// Order permissions
	PermissionOrderRead  = "order:read"
	PermissionOrderWrite = "order:write"

	// Payment permissions
	PermissionPaymentWrite = "payment:write"

	// Profile permissions
	PermissionProfileRead  = "profile:read"
	PermissionProfileWrite = "profile:write"

	// Marketplace permissions
	PermissionMarketplaceRead  = "marketplace:read"
	PermissionMarketplaceWrite = "marketplace:write"
)

type UserClaims struct {
	jwt.RegisteredClaims
	UserID       uint     `json:"user_id"`
	Email        string   `json:"email"`
	Role         string   `json:"role"`
	ProfileType  string   `json:"profile_type"`
	Permissions  []string `json:"permissions"`
	TokenVersion int      `json:"token_version"`
}

// HasPermission checks if the claims include a specific permission
func (c *UserClaims) HasPermission(permission string) bool {
	for _, p := range c.Permissions {
		if p == permission {
			return true
		}
	}
	return false
}

// GetDefaultPermissions returns default permissions based on role
func GetDefaultPermissions(role string) []string {
	switch role {
	case "admin":
		return []string{
			PermissionDocumentRead,
			PermissionDocumentWrite,
			PermissionOrderRead,
			PermissionOrderWrite,
			PermissionPaymentWrite,
			PermissionProfileRead,
			PermissionProfileWrite,
			PermissionMarketplaceRead,
			PermissionMarketplaceWrite,
			PermissionReadAdmin,
			PermissionWriteAdmin,
		}
	case "professional":
		return []string{
			PermissionDocumentRead,
			PermissionDocumentWrite,
			PermissionOrderRead,
			PermissionOrderWrite,
			PermissionPaymentWrite,
			PermissionProfileRead,
			PermissionProfileWrite,
			PermissionMarketplaceRead,
			PermissionMarketplaceWrite,
		}
	case "user":
		return []string{
			PermissionDocumentRead,
			PermissionDocumentWrite,
			PermissionOrderRead,
			PermissionOrderWrite,
			PermissionPaymentWrite,
			PermissionProfileRead,
			PermissionProfileWrite,
			PermissionMarketplaceRead,
		}
	default:
		return []string{}
	}
}
