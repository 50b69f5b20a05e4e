package cmdargs

type Role int

func (r Role) Has(role Role) bool {
	return r&role != 0
}

const (
	RoleKey     Role = 1 << iota
	RoleValue        = 1 << iota
	RoleUnnamed      = 1 << iota // modifies RoleValue
)

type Token struct {
	Arg   string
	Index int
	// KeyName is the key name without prefix for RoleKey tokens and the name of the key
	// the value belongs to for RoleValue tokens. Empty for RoleValue | RoleUnnamed
	KeyName string
	// Role is sum of Role constants. Possible values:
	// RoleKey                  // token starts with the key prefix and is long enough
	// RoleValue                // follows a RoleKey token or another RoleValue token
	// RoleValue | RoleUnnamed  // precedes the first key token
	Role Role
}
