package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// Role constants to avoid string typos
const (
	RoleSuperAdmin     = "superadmin"
	RoleTempleAdmin    = "templeadmin"
	RoleStandardUser   = "standarduser"
	RoleMonitoringUser = "monitoringuser"
	RoleDevotee        = "devotee"
	RoleVolunteer      = "volunteer"
)

// StaffRoles may render documents for any donor.
var StaffRoles = []string{RoleSuperAdmin, RoleTempleAdmin, RoleStandardUser, RoleMonitoringUser}

// Principal is the authenticated caller, built from the access token claims.
type Principal struct {
	UserID uint
	Email  string
	Role   string
}

// IsStaff reports whether the caller works for the temple.
func (p Principal) IsStaff() bool {
	return hasRole(p.Role, StaffRoles)
}

// CanViewDonor reports whether p may see documents for the donor with the
// given email. Devotees and volunteers only see their own.
func (p Principal) CanViewDonor(email string) bool {
	if p.IsStaff() {
		return true
	}
	return p.Email != "" && strings.EqualFold(strings.TrimSpace(email), p.Email)
}

// GetPrincipal retrieves the caller stored by AuthMiddleware.
func GetPrincipal(c *gin.Context) (Principal, bool) {
	v, exists := c.Get("principal")
	if !exists {
		return Principal{}, false
	}
	p, ok := v.(Principal)
	return p, ok
}

func hasRole(role string, allowed []string) bool {
	for _, r := range allowed {
		if role == r {
			return true
		}
	}
	return false
}
