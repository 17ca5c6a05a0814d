// models/branch.go
package models

import "time"

// ShareSettings splits a service's revenue between the worker and the house.
// Shares are percentages in [0, 100].
type ShareSettings struct {
	BarberShare float64 `bson:"barberShare" json:"barberShare"`
	WasherShare float64 `bson:"washerShare" json:"washerShare"`
}

// BranchService is a service offered at a branch with role-specific pricing.
type BranchService struct {
	Name          string         `bson:"name" json:"name"`
	BarberPrice   float64        `bson:"barberPrice" json:"barberPrice"`
	WasherPrice   float64        `bson:"washerPrice" json:"washerPrice"`
	ShareSettings *ShareSettings `bson:"shareSettings,omitempty" json:"shareSettings,omitempty"`
}

// Branch is one shop location owned by an owner-role user.
// Branch-level ShareSettings is the legacy location for shares; per-service
// settings take precedence where present.
type Branch struct {
	ID            string          `bson:"id" json:"id"`
	Name          string          `bson:"name" json:"name"`
	OwnerID       string          `bson:"ownerId" json:"ownerId"`
	Services      []BranchService `bson:"services,omitempty" json:"services,omitempty"`
	ShareSettings *ShareSettings  `bson:"shareSettings,omitempty" json:"shareSettings,omitempty"`
	CreatedAt     time.Time       `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time       `bson:"updatedAt" json:"updatedAt"`
}

// EffectiveShares resolves the share settings for a named service:
// per-service settings win, the branch-level legacy settings are the
// fallback, and a zero value means no split is configured.
func (b *Branch) EffectiveShares(serviceName string) ShareSettings {
	for _, svc := range b.Services {
		if svc.Name == serviceName {
			if svc.ShareSettings != nil {
				return *svc.ShareSettings
			}
			break
		}
	}
	if b.ShareSettings != nil {
		return *b.ShareSettings
	}
	return ShareSettings{}
}

// ShareFor returns the worker's percentage for the given role.
func (s ShareSettings) ShareFor(role Role) float64 {
	switch role {
	case RoleWasher:
		return s.WasherShare
	default:
		return s.BarberShare
	}
}
