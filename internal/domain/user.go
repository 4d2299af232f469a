package domain

// Role represents an application role used for authorization.
type Role string

const (
	RoleManager          Role = "manager"
	RoleDispatcher       Role = "dispatcher"
	RoleFinancialAnalyst Role = "financial_analyst"
	RoleSafetyOfficer    Role = "safety_officer"
)

// ValidRole reports whether r is a known application role.
func ValidRole(r Role) bool {
	switch r {
	case RoleManager, RoleDispatcher, RoleFinancialAnalyst, RoleSafetyOfficer:
		return true
	}
	return false
}

// User represents an application account.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Role         Role
}
