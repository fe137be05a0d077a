package store

import "fmt"

// Component names an application subsystem to which access can be granted.
// Opaque to the core beyond equality and use as a map key.
type Component string

// AccessLevel qualifies a component grant. The core treats it as opaque;
// the constants below document the common levels an application will use
// but do not close the set -- any int32 value is a valid AccessLevel.
type AccessLevel int32

// Common access levels. Applications may define additional values.
const (
	AccessRead  AccessLevel = 1
	AccessWrite AccessLevel = 2
	AccessAdmin AccessLevel = 3
	AccessOwner AccessLevel = 4
)

// String renders known levels by name and falls back to the numeric value
// for application-defined levels, so logs and error messages stay readable
// regardless of how the caller extended the enumeration.
func (a AccessLevel) String() string {
	switch a {
	case AccessRead:
		return "read"
	case AccessWrite:
		return "write"
	case AccessAdmin:
		return "admin"
	case AccessOwner:
		return "owner"
	default:
		return fmt.Sprintf("level(%d)", int32(a))
	}
}

// Grant is the structural (component, accessLevel) pair from the data
// model. Both fields participate in equality: Grant is comparable and safe
// to use directly as a map key, which is how every relation below stores it.
type Grant struct {
	Component   Component
	AccessLevel AccessLevel
}
