package entity

// Role is the single-letter role tag carried by every authenticated caller
type Role string

const (
	RoleAdmin   Role = "A"
	RoleManager Role = "M"
	RoleUser    Role = "U"
)

// IsValid reports whether the role is one of the known tags
func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleManager || r == RoleUser
}

// CanSeeAllRecords reports whether the role may list every beneficiary's
// records instead of only its own
func (r Role) CanSeeAllRecords() bool {
	return r == RoleAdmin || r == RoleManager
}

// User represents an account in the system, keyed by username.
// Users are created out-of-band (seed migration); the ledger core only
// reads them for credential checks and name resolution in listings.
type User struct {
	Username string
	Password string
	Role     Role
	Name     string
	Address  string
	PhoneNo  int64
}

// Identity is the verified caller identity injected into every core
// operation. The core never knows how it was obtained.
type Identity struct {
	Username string
	Role     Role
}
