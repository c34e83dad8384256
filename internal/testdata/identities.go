package testdata

import "github.com/supremind/portalperm/types"

// identities used across test suits
var (
	Admin = &types.Identity{
		ID:   "u-admin",
		Role: types.SystemAdmin,
	}

	PropertyManager = &types.Identity{
		ID:                "u-pm",
		Role:              types.PropertyManager,
		OwnedResources:    map[string][]string{"properties": {"p-1", "p-2"}},
		AssignedResources: map[string][]string{"properties": {"p-3"}, "tenants": {"t-9"}},
		CompanyID:         "c-1",
	}

	PortfolioManager = &types.Identity{
		ID:   "u-pf",
		Role: types.PortfolioManager,
	}

	CompanyAdmin = &types.Identity{
		ID:        "u-ca",
		Role:      types.CompanyAdmin,
		CompanyID: "c-1",
	}

	Tenant = &types.Identity{
		ID:                "u-tenant",
		Role:              types.Tenant,
		OwnedResources:    map[string][]string{"documents": {"d-1"}},
		AssignedResources: map[string][]string{"documents": {"d-2", "d-1"}},
	}

	Landlord = &types.Identity{
		ID:                "u-landlord",
		Role:              types.Landlord,
		OwnedResources:    map[string][]string{"properties": {"p-7"}},
		AssignedResources: map[string][]string{"properties": {"p-8"}},
	}

	Stranger = &types.Identity{
		ID:   "u-stranger",
		Role: types.Role("janitor"),
	}
)

// Copy returns a copy of identity safe to modify in a test
func Copy(identity *types.Identity) *types.Identity {
	c := *identity
	c.CustomPermissions = append([]string(nil), identity.CustomPermissions...)
	return &c
}
