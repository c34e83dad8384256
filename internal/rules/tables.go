package rules

import "github.com/supremind/portalperm/types"

var rolePermissions = map[types.Role][]string{
	types.SystemAdmin: {
		"system.manage", "users.manage", "companies.manage", "properties.manage",
		"financials.manage", "reports.view", "settings.manage", "audit.view",
		"security.manage", "integrations.manage", "analytics.view",
	},
	types.CompanyAdmin: {
		"company.manage", "users.manage", "properties.manage", "financials.manage",
		"reports.view", "settings.manage", "tenants.manage", "maintenance.manage",
		"tasks.manage", "communications.manage", "documents.manage",
	},
	types.CompanyOwner: {
		"company.view", "properties.view", "financials.view", "reports.view",
		"users.view", "tenants.view", "maintenance.view", "analytics.view",
		"settings.view", "communications.view",
	},
	types.PortfolioManager: {
		"properties.manage", "tenants.manage", "maintenance.manage", "financials.view",
		"reports.view", "tasks.manage", "communications.manage", "analytics.view",
		"inspections.manage", "leasing.manage",
	},
	types.PropertyManager: {
		"property.manage", "tenants.manage", "maintenance.manage", "tasks.manage",
		"communications.manage", "reports.view", "financials.view", "leasing.manage",
		"inspections.manage", "documents.manage",
	},
	types.LeasingSpecialist: {
		"tenants.manage", "applications.manage", "showings.manage", "marketing.manage",
		"communications.manage", "reports.view", "leasing.manage", "documents.view",
	},
	types.MaintenanceSupervisor: {
		"maintenance.manage", "vendors.manage", "work_orders.manage", "inspections.manage",
		"inventory.manage", "reports.view", "tasks.manage", "communications.manage",
	},
	types.MarketingSpecialist: {
		"marketing.manage", "listings.manage", "communications.manage", "analytics.view",
		"reports.view", "media.manage", "social_media.manage", "campaigns.manage",
	},
	types.FinancialController: {
		"financials.manage", "payments.manage", "invoices.manage", "reports.manage",
		"budgets.manage", "accounting.manage", "analytics.view", "audits.view",
	},
	types.Landlord: {
		"property.view", "tenants.view", "maintenance.view", "financials.view",
		"reports.view", "communications.view", "tasks.view", "documents.view",
	},
	types.Tenant: {
		"profile.manage", "payments.view", "maintenance.create", "communications.view",
		"documents.view", "lease.view", "requests.create", "notifications.view",
	},
	types.Vendor: {
		"profile.manage", "work_orders.view", "invoices.manage", "communications.view",
		"schedule.manage", "reports.view", "documents.view", "payments.view",
	},
	types.Inspector: {
		"inspections.manage", "reports.create", "properties.view", "maintenance.view",
		"communications.view", "documents.manage", "tasks.view", "schedule.manage",
	},
	types.Accountant: {
		"financials.view", "reports.view", "invoices.view", "payments.view",
		"budgets.view", "accounting.manage", "analytics.view", "audits.view",
	},
}

// actions implied by holding the key action on the same resource
var actionHierarchy = map[types.Action]types.Action{
	types.Manage: types.Create | types.Read | types.Update | types.Delete | types.View,
	types.Create: types.Read | types.View,
	types.Update: types.Read | types.View,
	types.Delete: types.Read | types.View,
	types.Read:   types.View,
	types.View:   types.None,
}

type resourceActions struct {
	resource string
	actions  []string
}

// ordered so that iteration in Resources is stable
var resourceTable = []resourceActions{
	{"system", []string{"manage", "view"}},
	{"company", []string{"manage", "view", "create", "update", "delete"}},
	{"users", []string{"manage", "view", "create", "update", "delete", "invite"}},
	{"properties", []string{"manage", "view", "create", "update", "delete"}},
	{"tenants", []string{"manage", "view", "create", "update", "delete"}},
	{"maintenance", []string{"manage", "view", "create", "update", "delete"}},
	{"financials", []string{"manage", "view", "create", "update", "delete"}},
	{"reports", []string{"manage", "view", "create", "export"}},
	{"tasks", []string{"manage", "view", "create", "update", "delete", "assign"}},
	{"communications", []string{"manage", "view", "create", "send"}},
	{"documents", []string{"manage", "view", "create", "update", "delete", "download"}},
	{"settings", []string{"manage", "view", "update"}},
	{"analytics", []string{"view", "export"}},
	{"audit", []string{"view", "export"}},
}

var roleRanks = map[types.Role]int{
	types.SystemAdmin:           100,
	types.CompanyAdmin:          90,
	types.CompanyOwner:          85,
	types.PortfolioManager:      80,
	types.PropertyManager:       70,
	types.FinancialController:   65,
	types.LeasingSpecialist:     60,
	types.MaintenanceSupervisor: 60,
	types.MarketingSpecialist:   60,
	types.Accountant:            55,
	types.Landlord:              50,
	types.Inspector:             40,
	types.Vendor:                30,
	types.Tenant:                20,
}

var menuSections = []string{
	"dashboard", "properties", "tenants", "maintenance", "financials", "reports",
	"users", "settings", "communications", "tasks", "analytics", "audit",
}
