// Package domain defines the hierarchical permission model: capability areas,
// actions, per-role grant matrices and the canonical title matching they share.
//
// A grant is a boolean per (role, area, action). Areas form exactly two levels
// (menus with submenus); a sub-area grant is independent of its parent and the
// structure is deliberately not generalized to arbitrary depth.
package domain

// Action identifies an operation that can be granted on a capability area.
type Action string

const (
	// ActionView allows reading data in an area.
	ActionView Action = "view"

	// ActionAdd allows creating records in an area.
	ActionAdd Action = "add"

	// ActionEdit allows updating records in an area. Printing an ID card and
	// marking it lost are authorized through this action as well.
	ActionEdit Action = "edit"

	// ActionDelete allows hard-removing records in an area.
	ActionDelete Action = "delete"

	// ActionAssign allows replacing a role's permission matrix. Only meaningful
	// for the role-management area.
	ActionAssign Action = "assign"

	// ActionApprove allows advancing a created ID card to ready_to_print. Only
	// meaningful for the credential-issuance area.
	ActionApprove Action = "approve"

	// ActionGenerate allows creating new ID cards. Only meaningful for the
	// credential-issuance area.
	ActionGenerate Action = "generate"

	// ActionLost is the UI affordance for marking a printed card lost. The
	// underlying authorization is ActionEdit; the alias exists so grant sets
	// can surface a dedicated checkbox.
	ActionLost Action = "lost"
)

// Well-known capability area titles. Matching is canonical, so callers may
// spell these differently and still resolve the same grants.
const (
	// AreaCredentialIssuance gates the ID-card lifecycle (generate, approve,
	// print, mark lost, hard delete).
	AreaCredentialIssuance = "Generate ID"

	// AreaRoleManagement gates permission matrix administration.
	AreaRoleManagement = "Role Management"

	// AreaEmployees gates the employee directory.
	AreaEmployees = "Employee Management"

	// AreaTemplates gates card template administration.
	AreaTemplates = "ID Template"

	// AreaOperators gates operator account administration.
	AreaOperators = "User Management"

	// AreaAuditLogs gates audit log viewing.
	AreaAuditLogs = "Audit Logs"
)
