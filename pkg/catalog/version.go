package catalog

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// SupportedVersion is the definition-set data version this release of
// magpie understands. Bump the minor version when the format gains fields,
// the major version when it changes incompatibly.
const SupportedVersion = "1.0.0"

// IsCompatible reports whether a definition set declaring the given version
// can be loaded by this release. A set is compatible when SupportedVersion
// satisfies the caret range of the declared version: older minor revisions
// load fine, newer ones do not, and a major bump always fails.
func IsCompatible(declared string) (bool, error) {
	supported, err := semver.NewVersion(SupportedVersion)
	if err != nil {
		return false, fmt.Errorf("parsing supported version: %w", err)
	}

	constraint, err := semver.NewConstraint("^" + declared)
	if err != nil {
		return false, fmt.Errorf("parsing declared version %q: %w", declared, err)
	}

	return constraint.Check(supported), nil
}
