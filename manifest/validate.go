package manifest

import (
	"errors"
	"fmt"

	"github.com/hashicorp/go-multierror"
)

var ErrInvalid = errors.New("invalid manifest")

// Validate checks the manifest structure itself. Every problem found is
// reported, each wrapping ErrInvalid.
func (f *File) Validate() error {
	var result *multierror.Error

	fail := func(format string, args ...any) {
		result = multierror.Append(result, fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...)))
	}

	if f.Version != "1" {
		fail("unsupported version %q", f.Version)
	}

	switch f.Duplicates {
	case DuplicatesWarn, DuplicatesError:
	default:
		fail("duplicates must be %q or %q, got %q", DuplicatesWarn, DuplicatesError, f.Duplicates)
	}

	seen := make(map[string]int)

	for i, iface := range f.Interfaces {
		if iface.Name == "" {
			fail("interfaces[%d] has no name", i)
			continue
		}

		if first, ok := seen[iface.Name]; ok {
			fail("interfaces[%d] repeats %s from interfaces[%d]", i, iface.Name, first)
			continue
		}

		seen[iface.Name] = i

		for j, impl := range iface.Implementations {
			if impl == "" {
				fail("interfaces[%d].implementations[%d] is empty", i, j)
			}
		}
	}

	return result.ErrorOrNil()
}
