package user

import "slices"

type Permission string

// PermissionAll grants every permission.
const PermissionAll Permission = "*"

const (
	PermissionViewEmployees  Permission = "view:employees"
	PermissionViewAttendance Permission = "view:attendance"
	PermissionViewPayroll    Permission = "view:payroll"
	PermissionViewDelivery   Permission = "view:delivery"
	PermissionViewAudit      Permission = "view:audit"
	PermissionViewBilling    Permission = "view:billing"
	PermissionViewBalance    Permission = "view:balance"

	PermissionEditEmployees  Permission = "edit:employees"
	PermissionEditAttendance Permission = "edit:attendance"
	PermissionEditDelivery   Permission = "edit:delivery"
	PermissionEditAudit      Permission = "edit:audit"
)

var floorStaffPermissions = []Permission{
	PermissionViewAttendance,
	PermissionViewDelivery,
	PermissionViewAudit,
	PermissionEditDelivery,
}

// RolePermissions maps roles to their permissions
var RolePermissions = map[Role][]Permission{
	RoleAdmin: {PermissionAll},
	RoleManager: {
		PermissionViewEmployees,
		PermissionViewAttendance,
		PermissionViewPayroll,
		PermissionViewDelivery,
		PermissionViewAudit,
		PermissionViewBilling,
		PermissionViewBalance,
		PermissionEditEmployees,
		PermissionEditAttendance,
		PermissionEditDelivery,
		PermissionEditAudit,
	},
	RoleEmployee: {
		PermissionViewAttendance,
		PermissionViewDelivery,
		PermissionViewAudit,
	},
	RoleCashier: floorStaffPermissions,
	RoleWaiter:  floorStaffPermissions,
	RoleKitchen: floorStaffPermissions,
}

// HasPermission checks if a role has a specific permission.
// Unknown roles hold nothing; the wildcard holds everything.
func HasPermission(role Role, permission Permission) bool {
	permissions := RolePermissions[role]
	return slices.Contains(permissions, PermissionAll) || slices.Contains(permissions, permission)
}

// Permissions returns a copy of the role's permission list.
func Permissions(role Role) []Permission {
	return slices.Clone(RolePermissions[role])
}

func (r Role) IsValid() bool {
	_, ok := RolePermissions[r]
	return ok
}
