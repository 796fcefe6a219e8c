package user

type Role string

const (
	RoleViewer   Role = "viewer"
	RoleOperator Role = "operator"
	RoleAdmin    Role = "admin"
)

var roleLevel = map[Role]int{
	RoleViewer:   1,
	RoleOperator: 2,
	RoleAdmin:    3,
}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	_, ok := roleLevel[r]
	return ok
}

// AtLeast compares roles along viewer < operator < admin.
func (r Role) AtLeast(min Role) bool {
	return roleLevel[r] >= roleLevel[min] && r.IsValid()
}

// IsOperator reports whether the role may act on other users' bookings.
func (r Role) IsOperator() bool {
	return r.AtLeast(RoleOperator)
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
