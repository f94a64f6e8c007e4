// =============================================================================
// IFSC Enricher - Code Validation
// =============================================================================
//
// An IFSC (Indian Financial System Code) is 11 characters:
//
//   | 1-4       | 5   | 6-11                  |
//   |-----------|-----|-----------------------|
//   | bank code | '0' | branch code (A-Z 0-9) |
//   | SBIN      | 0   | 000691                |
//
// Validation is purely structural and never touches the network. Bank codes
// are not checked against the registry: the list of banks changes often, and
// the lookup service answers 404 for a code it does not know. The registry
// only supplies bank names for messages about such codes.
//
// =============================================================================

package ifsc

import "strings"

const (
	codeLength     = 11
	bankCodeLength = 4
)

// Validator checks the structure of IFSC codes. Its registry names banks.
type Validator struct {
	registry *Registry
}

// NewValidator returns a Validator naming banks from registry, which may be
// nil.
func NewValidator(registry *Registry) *Validator {
	return &Validator{registry: registry}
}

// Canonical returns code trimmed and upper-cased, the form sent to the
// lookup service.
func Canonical(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Validate reports whether code is a structurally valid IFSC. Letters are
// accepted in either case.
func (v *Validator) Validate(code string) bool {
	code = Canonical(code)
	if len(code) != codeLength {
		return false
	}
	if code[bankCodeLength] != '0' {
		return false
	}

	bank := code[:bankCodeLength]
	for i := 0; i < len(bank); i++ {
		if bank[i] < 'A' || bank[i] > 'Z' {
			return false
		}
	}

	for i := bankCodeLength + 1; i < len(code); i++ {
		if !isAlphanumeric(code[i]) {
			return false
		}
	}
	return true
}

// BankName returns the registry name for the bank part of a code.
func (v *Validator) BankName(code string) (string, bool) {
	code = Canonical(code)
	if v.registry == nil || len(code) < bankCodeLength {
		return "", false
	}
	return v.registry.BankName(code[:bankCodeLength])
}

func isAlphanumeric(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}
