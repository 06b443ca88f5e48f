package domain

import "fmt"

// Role is an employee's classification. It is stored as a small integer code
// and shown to clients as its canonical label.
type Role int16

const (
	RoleEmployee   Role = 1
	RoleManager    Role = 2
	RoleSuperadmin Role = 3
)

// Canonical labels. Matching is exact and case-sensitive.
const (
	LabelEmployee   = "Сотрудник"
	LabelManager    = "Менеджер"
	LabelSuperadmin = "Суперадмин"
)

// ParseRole decodes a client-supplied label. A nil label and an unknown
// label are both KindBadRequest but carry different messages.
func ParseRole(label *string) (Role, error) {
	if label == nil {
		return 0, BadRequest("Field 'role' is missing.")
	}
	switch *label {
	case LabelEmployee:
		return RoleEmployee, nil
	case LabelManager:
		return RoleManager, nil
	case LabelSuperadmin:
		return RoleSuperadmin, nil
	}
	return 0, BadRequest(fmt.Sprintf("Unknown role: '%s'.", *label))
}

// RoleFromCode maps a stored code back to a Role.
// An unknown code means the row is corrupt and wraps ErrCorrupt.
func RoleFromCode(code int16) (Role, error) {
	switch r := Role(code); r {
	case RoleEmployee, RoleManager, RoleSuperadmin:
		return r, nil
	}
	return 0, fmt.Errorf("%w: role code %d", ErrCorrupt, code)
}

// Code returns the stored integer code.
func (r Role) Code() int16 { return int16(r) }

// String returns the canonical display label.
func (r Role) String() string {
	switch r {
	case RoleEmployee:
		return LabelEmployee
	case RoleManager:
		return LabelManager
	case RoleSuperadmin:
		return LabelSuperadmin
	}
	return fmt.Sprintf("Role(%d)", int16(r))
}

// MarshalText renders the role as its label so it reads naturally in JSON.
func (r Role) MarshalText() ([]byte, error) {
	if _, err := RoleFromCode(int16(r)); err != nil {
		return nil, err
	}
	return []byte(r.String()), nil
}

// UnmarshalText accepts only the canonical labels.
func (r *Role) UnmarshalText(text []byte) error {
	s := string(text)
	parsed, err := ParseRole(&s)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
