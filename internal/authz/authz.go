// Package authz centralizes the role checks that would otherwise drift
// across handlers. Every admin-only entry point goes through the same
// predicate.
package authz

import (
	"github.com/zentask/zentask-platform/internal/apperrors"
	"github.com/zentask/zentask-platform/internal/models"
)

type Capability string

const (
	CapCreateMeeting Capability = "meeting:create"
	CapCreateTask    Capability = "task:create"
	CapListUsers     Capability = "users:list"
	CapManageUsers   Capability = "users:manage"
)

// Can reports whether the profile holds the capability. Inactive profiles
// hold nothing.
func Can(p *models.Profile, cap Capability) bool {
	if p == nil || !p.Active {
		return false
	}

	switch cap {
	case CapCreateMeeting, CapCreateTask, CapListUsers, CapManageUsers:
		return p.Role == models.RoleAdmin
	}
	return false
}

// Authorize returns a typed denial when the profile lacks the capability.
func Authorize(p *models.Profile, cap Capability) error {
	if Can(p, cap) {
		return nil
	}
	return &apperrors.AuthorizationError{Message: "insufficient permissions"}
}
