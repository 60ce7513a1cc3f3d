package identity

// Role is one of the three fixed access levels. Roles are not user-editable;
// the permission matrix below is the single source of truth for feature
// access.
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleManager    Role = "manager"
	RoleAccountant Role = "accountant"
)

// IsValid reports whether the role is one of the known levels
func (r Role) IsValid() bool {
	_, ok := rolePermissions[r]
	return ok
}

// Description returns a short human-readable summary of the role
func (r Role) Description() string {
	switch r {
	case RoleAdmin:
		return "Full access to all features and user management"
	case RoleManager:
		return "Can manage business operations but not user accounts"
	case RoleAccountant:
		return "Can view financial data and generate reports"
	default:
		return ""
	}
}

// Feature is a guarded application capability
type Feature string

const (
	FeatureDashboard      Feature = "dashboard"
	FeatureInventory      Feature = "inventory"
	FeatureInvestments    Feature = "investments"
	FeatureExpenses       Feature = "expenses"
	FeaturePartnership    Feature = "partnership"
	FeatureReports        Feature = "reports"
	FeatureUserManagement Feature = "user_management"
	FeatureDataExport     Feature = "data_export"
	FeatureDataReset      Feature = "data_reset"
)

// AllFeatures lists every guarded feature in display order
func AllFeatures() []Feature {
	return []Feature{
		FeatureDashboard,
		FeatureInventory,
		FeatureInvestments,
		FeatureExpenses,
		FeaturePartnership,
		FeatureReports,
		FeatureUserManagement,
		FeatureDataExport,
		FeatureDataReset,
	}
}

// AllRoles lists every role in display order
func AllRoles() []Role {
	return []Role{RoleAdmin, RoleManager, RoleAccountant}
}

var rolePermissions = map[Role]map[Feature]bool{
	RoleAdmin: {
		FeatureDashboard:      true,
		FeatureInventory:      true,
		FeatureInvestments:    true,
		FeatureExpenses:       true,
		FeaturePartnership:    true,
		FeatureReports:        true,
		FeatureUserManagement: true,
		FeatureDataExport:     true,
		FeatureDataReset:      true,
	},
	RoleManager: {
		FeatureDashboard:   true,
		FeatureInventory:   true,
		FeatureInvestments: true,
		FeatureExpenses:    true,
		FeaturePartnership: true,
		FeatureReports:     true,
		FeatureDataExport:  true,
	},
	RoleAccountant: {
		FeatureDashboard:   true,
		FeatureInvestments: true,
		FeatureExpenses:    true,
		FeatureReports:     true,
		FeatureDataExport:  true,
	},
}

// HasPermission reports whether the role may use the feature.
// Unknown roles and unknown features have no access.
func (r Role) HasPermission(feature Feature) bool {
	return rolePermissions[r][feature]
}

// Permissions returns the role's full feature map
func (r Role) Permissions() map[Feature]bool {
	out := make(map[Feature]bool, len(AllFeatures()))
	for _, f := range AllFeatures() {
		out[f] = rolePermissions[r][f]
	}
	return out
}
