package kernel

import (
	"strings"

	"marketplace/internal/pkg/errs"
)

// Identity is the stable identity of an authenticated caller, e.g. the subject
// or e-mail asserted by the authentication layer. The core trusts it completely.
type Identity struct {
	value string
}

// NewIdentity trims surrounding spaces and rejects empty identities.
func NewIdentity(value string) (Identity, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return Identity{}, errs.NewValueIsRequiredError("identity")
	}
	return Identity{value: value}, nil
}

func (i Identity) String() string {
	return i.value
}

// Validate rejects the zero value.
func (i Identity) Validate() error {
	if i.value == "" {
		return errs.NewValueIsRequiredError("identity")
	}
	return nil
}
