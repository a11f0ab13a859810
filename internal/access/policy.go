// Package access resolves what an authenticated actor may read and write.
//
// A Policy is computed once per request from the stored user and passed by
// value to services and query builders. It is a closed set of variants:
// Admin, BaseCommander(baseID) and LogisticsOfficer, the latter optionally
// restricted to its assigned base.
package access

import (
	apperrors "arsenal/internal/errors"
	"arsenal/internal/models"
)

// ContextKey is the gin context key under which the request Policy is stored.
const ContextKey = "accessPolicy"

// Policy is the capability and scope of one actor for one request.
// The zero value grants nothing.
type Policy struct {
	role    models.Role
	actorID string
	baseID  string
}

// Admin returns a policy with full visibility across all bases.
func Admin(actorID string) Policy {
	return Policy{role: models.RoleAdmin, actorID: actorID}
}

// BaseCommander returns a policy restricted to a single base.
func BaseCommander(actorID, baseID string) Policy {
	return Policy{role: models.RoleBaseCommander, actorID: actorID, baseID: baseID}
}

// LogisticsOfficer returns a logistics policy. An empty baseID leaves the
// officer unrestricted across bases.
func LogisticsOfficer(actorID, baseID string) Policy {
	return Policy{role: models.RoleLogisticsOfficer, actorID: actorID, baseID: baseID}
}

// FromUser builds the policy for a stored user. Base commanders must have an
// assigned base. When restrictLogistics is set, logistics officers are scoped
// to their assigned base the same way.
func FromUser(user *models.User, restrictLogistics bool) (Policy, error) {
	assigned := ""
	if user.AssignedBaseID != nil {
		assigned = *user.AssignedBaseID
	}

	switch user.Role {
	case models.RoleAdmin:
		return Admin(user.ID), nil
	case models.RoleBaseCommander:
		if assigned == "" {
			return Policy{}, apperrors.ErrNoBaseAssigned
		}
		return BaseCommander(user.ID, assigned), nil
	case models.RoleLogisticsOfficer:
		if !restrictLogistics {
			return LogisticsOfficer(user.ID, ""), nil
		}
		if assigned == "" {
			return Policy{}, apperrors.ErrNoBaseAssigned
		}
		return LogisticsOfficer(user.ID, assigned), nil
	}
	return Policy{}, apperrors.ErrForbidden
}

// ActorID returns the id of the user acting under this policy.
func (p Policy) ActorID() string { return p.actorID }

// Role returns the role the policy was built for.
func (p Policy) Role() models.Role { return p.role }

// Restricted reports whether the policy is confined to one base.
func (p Policy) Restricted() bool { return p.baseID != "" }

// BaseID returns the base the policy is confined to, if any.
func (p Policy) BaseID() (string, bool) {
	return p.baseID, p.baseID != ""
}

// Allows reports whether the policy's role is one of roles.
func (p Policy) Allows(roles ...models.Role) bool {
	for _, r := range roles {
		if p.role == r {
			return true
		}
	}
	return false
}

// ScopeBase returns the base filter to apply to a read. Restricted policies
// always get their own base and the requested value is ignored; others get
// the requested value, where "" means all bases.
func (p Policy) ScopeBase(requested string) string {
	if p.Restricted() {
		return p.baseID
	}
	return requested
}

// CanAccessBase returns FORBIDDEN if a restricted policy names another base.
func (p Policy) CanAccessBase(baseID string) error {
	if p.role == "" {
		return apperrors.ErrForbidden
	}
	if p.Restricted() && p.baseID != baseID {
		return apperrors.WithMessage(apperrors.ErrForbidden, "Access denied to this base")
	}
	return nil
}

// CanAccessAnyBase is CanAccessBase for records spanning several bases, such
// as transfers: access to at least one of them is enough.
func (p Policy) CanAccessAnyBase(baseIDs ...string) error {
	if p.role == "" {
		return apperrors.ErrForbidden
	}
	if !p.Restricted() {
		return nil
	}
	for _, id := range baseIDs {
		if id == p.baseID {
			return nil
		}
	}
	return apperrors.WithMessage(apperrors.ErrForbidden, "Access denied to this base")
}
