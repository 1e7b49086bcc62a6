package domain

// User represents the authenticated account as returned by the backend.
// The backend is the source of truth; no fields are validated client-side.
type User struct {
	ID       string `json:"id,omitempty"`
	Email    string `json:"email"`
	Name     string `json:"name,omitempty"`
	Handle   string `json:"handle,omitempty"`
	Role     string `json:"role,omitempty"`
	IsAdmin  bool   `json:"isAdmin,omitempty"`
	Plan     *Plan  `json:"plan,omitempty"`
	Verified bool   `json:"verified,omitempty"`
}

// Admin reports whether the user holds admin rights, under either of the
// two shapes the backend uses (role string or boolean flag).
func (u *User) Admin() bool {
	if u == nil {
		return false
	}
	return u.IsAdmin || u.Role == "admin"
}

// Session is the authenticated state handed back by login/register and
// persisted client-side between visits.
type Session struct {
	Token   string `json:"token"`
	User    *User  `json:"user"`
	Plan    *Plan  `json:"plan,omitempty"`
	IsAdmin bool   `json:"isAdmin,omitempty"`
}
