package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"hotel-frontdesk/utils"
)

// Station capabilities, following the backend's permission vocabulary.
const (
	PermGuestsView   = "guests:view"
	PermGuestsEdit   = "guests:edit"
	PermGuestsExport = "guests:export"
	PermRoomsView    = "rooms:view"
	PermDashboard    = "dashboard:view"
)

// PermissionSet is the capability set granted to this station.
type PermissionSet map[string]struct{}

// ParsePermissions reads a comma-separated permission list.
func ParsePermissions(raw string) PermissionSet {
	set := make(PermissionSet)
	for _, p := range strings.Split(raw, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			set[p] = struct{}{}
		}
	}
	return set
}

func (s PermissionSet) Has(perm string) bool {
	_, ok := s[perm]
	return ok
}

// RequirePermission rejects the request up front when the station lacks
// the capability, before any handler state is touched.
func RequirePermission(perms PermissionSet, perm string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !perms.Has(perm) {
			utils.JSONError(c, http.StatusForbidden, fmt.Sprintf("station lacks permission %q", perm))
			c.Abort()
			return
		}
		c.Next()
	}
}
