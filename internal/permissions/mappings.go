package permissions

// defaultMappings is the legacy "<module>.<resource>.<action>" table. Keys not
// listed here are denied for every role except super_admin.
func defaultMappings() map[string][]string {
	return map[string][]string{
		// HR
		"hr.employee.create": {RoleSuperAdmin, RoleAdmin, RoleHRManager},
		"hr.employee.read":   {RoleSuperAdmin, RoleAdmin, RoleHRManager},
		"hr.employee.update": {RoleSuperAdmin, RoleAdmin, RoleHRManager},
		"hr.employee.delete": {RoleSuperAdmin, RoleAdmin},

		"hr.payroll.create":  {RoleSuperAdmin, RoleAdmin, RoleHRManager},
		"hr.payroll.read":    {RoleSuperAdmin, RoleAdmin, RoleHRManager, RoleFinanceManager},
		"hr.payroll.update":  {RoleSuperAdmin, RoleAdmin, RoleHRManager},
		"hr.payroll.approve": {RoleSuperAdmin, RoleAdmin, RoleHRManager},

		"hr.attendance.create": {RoleSuperAdmin, RoleAdmin, RoleHRManager},
		"hr.attendance.read":   {RoleSuperAdmin, RoleAdmin, RoleHRManager},
		"hr.attendance.update": {RoleSuperAdmin, RoleAdmin, RoleHRManager},

		"hr.leave.create":  {RoleSuperAdmin, RoleAdmin, RoleHRManager, RoleEmployee},
		"hr.leave.read":    {RoleSuperAdmin, RoleAdmin, RoleHRManager},
		"hr.leave.approve": {RoleSuperAdmin, RoleAdmin, RoleHRManager},

		"hr.loan.create":   {RoleSuperAdmin, RoleAdmin, RoleHRManager, RoleEmployee},
		"hr.loan.approve":  {RoleSuperAdmin, RoleAdmin, RoleHRManager},
		"hr.loan.disburse": {RoleSuperAdmin, RoleAdmin, RoleHRManager, RoleFinanceManager},

		"hr.settlement.create":  {RoleSuperAdmin, RoleAdmin, RoleHRManager},
		"hr.settlement.approve": {RoleSuperAdmin, RoleAdmin, RoleHRManager},
		"hr.settlement.process": {RoleSuperAdmin, RoleAdmin, RoleHRManager, RoleFinanceManager},

		"hr.talent_acquisition": {RoleSuperAdmin, RoleAdmin, RoleHRManager},
		"hr.job_postings":       {RoleSuperAdmin, RoleAdmin, RoleHRManager},
		"hr.candidates":         {RoleSuperAdmin, RoleAdmin, RoleHRManager},
		"hr.applications":       {RoleSuperAdmin, RoleAdmin, RoleHRManager},

		// Finance
		"finance.invoice.create":  {RoleSuperAdmin, RoleAdmin, RoleFinanceManager},
		"finance.invoice.read":    {RoleSuperAdmin, RoleAdmin, RoleFinanceManager},
		"finance.invoice.update":  {RoleSuperAdmin, RoleAdmin, RoleFinanceManager},
		"finance.invoice.approve": {RoleSuperAdmin, RoleAdmin, RoleFinanceManager},

		"finance.payment.create":  {RoleSuperAdmin, RoleAdmin, RoleFinanceManager},
		"finance.payment.read":    {RoleSuperAdmin, RoleAdmin, RoleFinanceManager},
		"finance.payment.approve": {RoleSuperAdmin, RoleAdmin, RoleFinanceManager},

		// Procurement
		"procurement.purchase.create":  {RoleSuperAdmin, RoleAdmin, RoleProcurementManager},
		"procurement.purchase.read":    {RoleSuperAdmin, RoleAdmin, RoleProcurementManager},
		"procurement.purchase.approve": {RoleSuperAdmin, RoleAdmin, RoleProcurementManager},

		"procurement.supplier.create": {RoleSuperAdmin, RoleAdmin, RoleProcurementManager},
		"procurement.supplier.read":   {RoleSuperAdmin, RoleAdmin, RoleProcurementManager},
		"procurement.supplier.update": {RoleSuperAdmin, RoleAdmin, RoleProcurementManager},

		// CRM
		"crm.lead.create": {RoleSuperAdmin, RoleAdmin, RoleCRMManager, RoleSalesManager},
		"crm.lead.read":   {RoleSuperAdmin, RoleAdmin, RoleCRMManager, RoleSalesManager},
		"crm.lead.update": {RoleSuperAdmin, RoleAdmin, RoleCRMManager, RoleSalesManager},

		"crm.customer.create": {RoleSuperAdmin, RoleAdmin, RoleCRMManager, RoleSalesManager},
		"crm.customer.read":   {RoleSuperAdmin, RoleAdmin, RoleCRMManager, RoleSalesManager},
		"crm.customer.update": {RoleSuperAdmin, RoleAdmin, RoleCRMManager, RoleSalesManager},

		// IT
		"it.assets.create": {RoleSuperAdmin, RoleAdmin, RoleITManager},
		"it.assets.read":   {RoleSuperAdmin, RoleAdmin, RoleITManager},
		"it.assets.update": {RoleSuperAdmin, RoleAdmin, RoleITManager},
		"it.assets.assign": {RoleSuperAdmin, RoleAdmin, RoleITManager},
		"it.assets.delete": {RoleSuperAdmin, RoleAdmin},

		"it.software.create": {RoleSuperAdmin, RoleAdmin, RoleITManager},
		"it.software.read":   {RoleSuperAdmin, RoleAdmin, RoleITManager},
		"it.software.update": {RoleSuperAdmin, RoleAdmin, RoleITManager},
		"it.software.delete": {RoleSuperAdmin, RoleAdmin},

		"it.network.create": {RoleSuperAdmin, RoleAdmin, RoleITManager},
		"it.network.read":   {RoleSuperAdmin, RoleAdmin, RoleITManager},
		"it.network.update": {RoleSuperAdmin, RoleAdmin, RoleITManager},
		"it.network.delete": {RoleSuperAdmin, RoleAdmin},

		"it.vendors.create": {RoleSuperAdmin, RoleAdmin, RoleITManager},
		"it.vendors.read":   {RoleSuperAdmin, RoleAdmin, RoleITManager},
		"it.vendors.update": {RoleSuperAdmin, RoleAdmin, RoleITManager},
		"it.vendors.delete": {RoleSuperAdmin, RoleAdmin},

		"it.passwords.create": {RoleSuperAdmin, RoleAdmin, RoleITManager},
		"it.passwords.read":   {RoleSuperAdmin, RoleAdmin, RoleITManager},
		"it.passwords.update": {RoleSuperAdmin, RoleAdmin, RoleITManager},
		"it.passwords.delete": {RoleSuperAdmin, RoleAdmin},

		// Admin
		"admin.users.create": {RoleSuperAdmin, RoleAdmin},
		"admin.users.read":   {RoleSuperAdmin, RoleAdmin},
		"admin.users.update": {RoleSuperAdmin, RoleAdmin},
		"admin.users.delete": {RoleSuperAdmin, RoleAdmin},

		"admin.vehicles.create": {RoleSuperAdmin, RoleAdmin},
		"admin.vehicles.read":   {RoleSuperAdmin, RoleAdmin},
		"admin.vehicles.update": {RoleSuperAdmin, RoleAdmin},
		"admin.vehicles.delete": {RoleSuperAdmin, RoleAdmin},

		"admin.groceries.create": {RoleSuperAdmin, RoleAdmin},
		"admin.groceries.read":   {RoleSuperAdmin, RoleAdmin},
		"admin.groceries.update": {RoleSuperAdmin, RoleAdmin},
		"admin.groceries.delete": {RoleSuperAdmin, RoleAdmin},

		"admin.suppliers.create": {RoleSuperAdmin, RoleAdmin},
		"admin.suppliers.read":   {RoleSuperAdmin, RoleAdmin},
		"admin.suppliers.update": {RoleSuperAdmin, RoleAdmin},
		"admin.suppliers.delete": {RoleSuperAdmin, RoleAdmin},

		"admin.petty_cash.create":  {RoleSuperAdmin, RoleAdmin},
		"admin.petty_cash.read":    {RoleSuperAdmin, RoleAdmin},
		"admin.petty_cash.update":  {RoleSuperAdmin, RoleAdmin},
		"admin.petty_cash.approve": {RoleSuperAdmin, RoleAdmin},

		"admin.events.create": {RoleSuperAdmin, RoleAdmin, RoleHRManager},
		"admin.events.read":   {RoleSuperAdmin, RoleAdmin, RoleHRManager},
		"admin.events.update": {RoleSuperAdmin, RoleAdmin, RoleHRManager},
		"admin.events.delete": {RoleSuperAdmin, RoleAdmin},

		"admin.staff_assignment.create": {RoleSuperAdmin, RoleAdmin},
		"admin.staff_assignment.read":   {RoleSuperAdmin, RoleAdmin},
		"admin.staff_assignment.update": {RoleSuperAdmin, RoleAdmin},
		"admin.staff_assignment.delete": {RoleSuperAdmin, RoleAdmin},

		"admin.locations.create": {RoleSuperAdmin, RoleAdmin},
		"admin.locations.read":   {RoleSuperAdmin, RoleAdmin},
		"admin.locations.update": {RoleSuperAdmin, RoleAdmin},
		"admin.locations.delete": {RoleSuperAdmin, RoleAdmin},

		"admin.utility.create": {RoleSuperAdmin, RoleAdmin},
		"admin.utility.read":   {RoleSuperAdmin, RoleAdmin},
		"admin.utility.update": {RoleSuperAdmin, RoleAdmin},
		"admin.utility.delete": {RoleSuperAdmin, RoleAdmin},

		"admin.rental.create": {RoleSuperAdmin, RoleAdmin},
		"admin.rental.read":   {RoleSuperAdmin, RoleAdmin},
		"admin.rental.update": {RoleSuperAdmin, RoleAdmin},
		"admin.rental.delete": {RoleSuperAdmin, RoleAdmin},

		"admin.rental_agreement.create": {RoleSuperAdmin, RoleAdmin},
		"admin.rental_agreement.read":   {RoleSuperAdmin, RoleAdmin},
		"admin.rental_agreement.update": {RoleSuperAdmin, RoleAdmin},
		"admin.rental_agreement.delete": {RoleSuperAdmin, RoleAdmin},

		"admin.rental_management.create": {RoleSuperAdmin, RoleAdmin},
		"admin.rental_management.read":   {RoleSuperAdmin, RoleAdmin},
		"admin.rental_management.update": {RoleSuperAdmin, RoleAdmin},
		"admin.rental_management.delete": {RoleSuperAdmin, RoleAdmin},

		"admin.payment_settlement.create":  {RoleSuperAdmin, RoleAdmin},
		"admin.payment_settlement.read":    {RoleSuperAdmin, RoleAdmin},
		"admin.payment_settlement.update":  {RoleSuperAdmin, RoleAdmin},
		"admin.payment_settlement.delete":  {RoleSuperAdmin, RoleAdmin},
		"admin.payment_settlement.approve": {RoleSuperAdmin, RoleAdmin},

		// Audit
		"audit.schedule.create": {RoleSuperAdmin, RoleAdmin, RoleAuditManager},
		"audit.schedule.read":   {RoleSuperAdmin, RoleAdmin, RoleAuditManager, RoleAuditor},
		"audit.schedule.update": {RoleSuperAdmin, RoleAdmin, RoleAuditManager},
		"audit.schedule.delete": {RoleSuperAdmin, RoleAdmin, RoleAuditManager},

		"audit.findings.create": {RoleSuperAdmin, RoleAdmin, RoleAuditManager, RoleAuditor},
		"audit.findings.read":   {RoleSuperAdmin, RoleAdmin, RoleAuditManager, RoleAuditor},
		"audit.findings.update": {RoleSuperAdmin, RoleAdmin, RoleAuditManager, RoleAuditor},

		"audit.reports.create": {RoleSuperAdmin, RoleAdmin, RoleAuditManager, RoleAuditor},
		"audit.reports.read":   {RoleSuperAdmin, RoleAdmin, RoleAuditManager, RoleAuditor},

		"audit.corrective_actions.create": {RoleSuperAdmin, RoleAdmin, RoleAuditManager},
		"audit.corrective_actions.read":   {RoleSuperAdmin, RoleAdmin, RoleAuditManager, RoleAuditor},
		"audit.corrective_actions.update": {RoleSuperAdmin, RoleAdmin, RoleAuditManager},
	}
}
