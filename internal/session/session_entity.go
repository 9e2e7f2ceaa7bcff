package session

type Role string

const (
	RoleKurir Role = "kurir"
	RoleOps   Role = "ops"
)

func (r Role) Valid() bool {
	return r == RoleKurir || r == RoleOps
}

// Session adalah identitas login yang disimpan dan bertahan sampai logout.
type Session struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Role     Role   `json:"role"`
}

func (s Session) Valid() bool {
	return s.Username != "" && s.Role.Valid()
}
