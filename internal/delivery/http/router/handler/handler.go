// Package handler contains the HTTP handlers for the application.
package handler

import (
	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// currentUserID reads the authenticated account's ID set by the auth middleware.
func currentUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get("userID").(uuid.UUID)
	return userID, ok
}

// currentRole resolves the acting role for ownership checks. Admin wins when
// an account carries several roles.
func currentRole(c echo.Context) entity.Role {
	rolesVal, ok := c.Get("roles").([]string)
	if !ok {
		return ""
	}

	roles := entity.RolesFromStrings(rolesVal)
	if roles.Contains(entity.RoleAdmin) {
		return entity.RoleAdmin
	}
	if len(roles) > 0 {
		return roles[0]
	}

	return ""
}
