package models

type Role string

const (
	UserRole       Role = "User"
	TechnicianRole Role = "Technician"
	ManagerRole    Role = "Manager"
)

func HasRole(roles []string, role Role) bool {
	for _, r := range roles {
		if r == string(role) {
			return true
		}
	}
	return false
}
