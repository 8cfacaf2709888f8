package permissions

import "slices"

// Role names recognized by the legacy string-role path.
const (
	RoleSuperAdmin         = "super_admin"
	RoleAdmin              = "admin"
	RoleHRManager          = "hr_manager"
	RoleFinanceManager     = "finance_manager"
	RoleProcurementManager = "procurement_manager"
	RoleSalesManager       = "sales_manager"
	RoleCRMManager         = "crm_manager"
	RoleAuditManager       = "audit_manager"
	RoleAuditor            = "auditor"
	RoleITManager          = "it_manager"
	RoleEmployee           = "employee"
)

// Action names applied to submodules.
const (
	ActionCreate  = "create"
	ActionRead    = "read"
	ActionUpdate  = "update"
	ActionDelete  = "delete"
	ActionApprove = "approve"
	ActionView    = "view"
	ActionManage  = "manage"
)

// Module names (top-level ERP areas).
const (
	ModuleDashboard   = "dashboard"
	ModuleHR          = "hr"
	ModuleFinance     = "finance"
	ModuleProcurement = "procurement"
	ModuleSales       = "sales"
	ModuleCRM         = "crm"
	ModuleAudit       = "audit"
	ModuleIT          = "it"
	ModuleAdmin       = "admin"
)

// ModuleAccess describes which modules a legacy role may enter.
type ModuleAccess struct {
	CanAccessAll bool
	Modules      []string
	Description  string
}

// Catalog is the static source of truth for roles, modules, submodules,
// actions and the legacy permission table. It is built once at startup and
// never mutated; every component receives it by reference.
type Catalog struct {
	Roles      []string
	Modules    []string
	Actions    []string
	Submodules map[string][]string
	RoleAccess map[string]ModuleAccess
	Mappings   map[string][]string
}

// Default builds the production catalog.
func Default() *Catalog {
	return &Catalog{
		Roles: []string{
			RoleSuperAdmin, RoleAdmin, RoleHRManager, RoleFinanceManager,
			RoleProcurementManager, RoleSalesManager, RoleCRMManager,
			RoleAuditManager, RoleAuditor, RoleITManager, RoleEmployee,
		},
		Modules: []string{
			ModuleDashboard, ModuleHR, ModuleFinance, ModuleProcurement,
			ModuleSales, ModuleCRM, ModuleAudit, ModuleIT, ModuleAdmin,
		},
		Actions: []string{
			ActionCreate, ActionRead, ActionUpdate, ActionDelete,
			ActionApprove, ActionView, ActionManage,
		},
		Submodules: map[string][]string{
			ModuleAdmin: {
				"user_management",
				"sub_roles",
				"vehicle_management",
				"grocery_management",
				"petty_cash_management",
				"event_management",
				"staff_management",
				"utility_bills_management",
				"rental_agreements",
				"rental_management",
				"payment_settlement",
			},
			ModuleHR: {
				"employee_management",
				"attendance_management",
				"payroll_management",
				"leave_management",
				"loan_management",
				"settlement_management",
				"talent_acquisition",
				"learning_development",
				"organizational_development",
				"fbr_tax_management",
				"reports",
			},
			ModuleFinance: {
				"chart_of_accounts",
				"journal_entries",
				"general_ledger",
				"accounts_receivable",
				"accounts_payable",
				"banking",
				"financial_reports",
			},
			ModuleProcurement: {
				"purchase_orders",
				"vendors",
				"inventory",
				"procurement_reports",
			},
			ModuleSales: {
				"sales_orders",
				"customers",
				"products",
				"sales_reports",
			},
			ModuleCRM: {
				"leads",
				"contacts",
				"campaigns",
				"companies",
				"opportunities",
				"crm_reports",
			},
			ModuleAudit: {
				"audit_management",
				"audit_findings",
				"corrective_actions",
				"audit_trail",
				"audit_reports",
				"audit_schedules",
			},
			ModuleIT: {
				"asset_management",
				"software_licenses",
				"network_devices",
				"it_vendors",
				"password_wallet",
				"it_reports",
			},
		},
		RoleAccess: map[string]ModuleAccess{
			RoleSuperAdmin: {
				CanAccessAll: true,
				Modules: []string{
					ModuleDashboard, ModuleHR, ModuleFinance, ModuleProcurement,
					ModuleSales, ModuleCRM, ModuleAudit, ModuleIT, ModuleAdmin,
				},
				Description: "Full system access",
			},
			RoleAdmin: {
				Modules:     []string{ModuleAdmin},
				Description: "Admin module access only",
			},
			RoleHRManager: {
				Modules:     []string{ModuleHR, ModuleAdmin},
				Description: "HR module management and event management",
			},
			RoleFinanceManager: {
				Modules:     []string{ModuleFinance},
				Description: "Finance module management",
			},
			RoleProcurementManager: {
				Modules:     []string{ModuleProcurement},
				Description: "Procurement module management",
			},
			RoleSalesManager: {
				Modules:     []string{ModuleCRM, ModuleSales},
				Description: "Sales and CRM access",
			},
			RoleCRMManager: {
				Modules:     []string{ModuleCRM},
				Description: "CRM module management",
			},
			RoleAuditManager: {
				Modules:     []string{ModuleAudit},
				Description: "Audit module management",
			},
			RoleAuditor: {
				Modules:     []string{ModuleAudit},
				Description: "Audit execution and reporting",
			},
			RoleITManager: {
				Modules:     []string{ModuleIT},
				Description: "IT module management",
			},
			RoleEmployee: {
				Modules:     []string{},
				Description: "Basic access",
			},
		},
		Mappings: defaultMappings(),
	}
}

// HasPermission checks a legacy role against the static permission table.
// super_admin bypasses the table; unknown roles or keys deny.
func (c *Catalog) HasPermission(role, permissionKey string) bool {
	if role == RoleSuperAdmin {
		return true
	}
	allowed, ok := c.Mappings[permissionKey]
	if !ok {
		return false
	}
	return slices.Contains(allowed, role)
}

// HasModuleAccess checks whether a legacy role may enter a module.
func (c *Catalog) HasModuleAccess(role, module string) bool {
	access, ok := c.RoleAccess[role]
	if !ok {
		return false
	}
	if access.CanAccessAll {
		return true
	}
	return slices.Contains(access.Modules, module)
}

// UserPermissions lists every permission key the role holds.
func (c *Catalog) UserPermissions(role string) []string {
	access, ok := c.RoleAccess[role]
	if !ok {
		return []string{}
	}

	keys := make([]string, 0, len(c.Mappings))
	for key, allowed := range c.Mappings {
		if access.CanAccessAll || slices.Contains(allowed, role) {
			keys = append(keys, key)
		}
	}
	slices.Sort(keys)
	return keys
}

// SubmodulesFor returns the submodule enumeration for a module.
func (c *Catalog) SubmodulesFor(module string) []string {
	return c.Submodules[module]
}

func (c *Catalog) ValidRole(role string) bool {
	return slices.Contains(c.Roles, role)
}

func (c *Catalog) ValidModule(module string) bool {
	return slices.Contains(c.Modules, module)
}

func (c *Catalog) ValidAction(action string) bool {
	return slices.Contains(c.Actions, action)
}

// ValidSubmodule checks that a submodule belongs to the given module.
func (c *Catalog) ValidSubmodule(module, submodule string) bool {
	return slices.Contains(c.Submodules[module], submodule)
}
