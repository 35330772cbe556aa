package auth

// Role is the closed set of account roles. It drives navigation
// visibility and the post-login redirect target.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleDriver   Role = "driver"
	RoleCustomer Role = "customer"
)

// ParseRole maps a stored role tag to a Role. Unknown tags are kept
// as-is so an authenticated account with an unrecognized role is not
// silently demoted; known reports whether the tag is one of the
// closed set.
func ParseRole(s string) (r Role, known bool) {
	switch Role(s) {
	case RoleAdmin, RoleDriver, RoleCustomer:
		return Role(s), true
	}
	return Role(s), false
}

// Identity is the normalized authenticated-user record. It contains
// facts only, no decisions.
type Identity struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Role     Role   `json:"role"`
}

// Complete reports whether every field is present. A session must
// never hold a partial identity; anything incomplete is treated as
// no identity at all.
func (i Identity) Complete() bool {
	return i.ID != "" &&
		i.Username != "" &&
		i.Email != "" &&
		i.FullName != "" &&
		i.Role != ""
}
