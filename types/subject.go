package types

// Role names a fixed set of permissions in the role table
type Role string

// roles known to the role table
const (
	SystemAdmin           Role = "system_admin"
	CompanyAdmin          Role = "company_admin"
	CompanyOwner          Role = "company_owner"
	PortfolioManager      Role = "portfolio_manager"
	PropertyManager       Role = "property_manager"
	LeasingSpecialist     Role = "leasing_specialist"
	MaintenanceSupervisor Role = "maintenance_supervisor"
	MarketingSpecialist   Role = "marketing_specialist"
	FinancialController   Role = "financial_controller"
	Landlord              Role = "landlord"
	Tenant                Role = "tenant"
	Vendor                Role = "vendor"
	Inspector             Role = "inspector"
	Accountant            Role = "accountant"
)

func (r Role) String() string {
	return string(r)
}

// Identity is the authenticated user as handed over by the session layer.
// OwnedResources and AssignedResources map a resource type to resource ids.
type Identity struct {
	ID                string              `json:"id" yaml:"id" validate:"required"`
	Role              Role                `json:"role" yaml:"role" validate:"required"`
	CustomPermissions []string            `json:"customPermissions,omitempty" yaml:"customPermissions"`
	OwnedResources    map[string][]string `json:"ownedResources,omitempty" yaml:"ownedResources"`
	AssignedResources map[string][]string `json:"assignedResources,omitempty" yaml:"assignedResources"`
	CompanyID         string              `json:"companyId,omitempty" yaml:"companyId"`
}

// Owns tells if the identity owns resource id of type kind
func (i *Identity) Owns(kind, id string) bool {
	if i == nil {
		return false
	}
	return contains(i.OwnedResources[kind], id)
}

// AssignedTo tells if the identity is assigned to resource id of type kind
func (i *Identity) AssignedTo(kind, id string) bool {
	if i == nil {
		return false
	}
	return contains(i.AssignedResources[kind], id)
}

func contains(ids []string, id string) bool {
	for _, x := range ids {
		if x == id {
			return true
		}
	}
	return false
}
