package mapping

import (
	"errors"
	"fmt"

	"enum-mapper/convert"
)

var ErrInvalidCheckFile = errors.New("invalid check file")

// Validate checks the structure of cf. It does not resolve type references;
// that needs the loaded packages.
func Validate(cf *CheckFile) error {
	if cf == nil {
		return fmt.Errorf("check file is nil: %w", ErrInvalidCheckFile)
	}

	var errs []error
	if cf.Version != CurrentVersion {
		errs = append(errs, fmt.Errorf("unsupported version %q (want %q)", cf.Version, CurrentVersion))
	}
	if len(cf.Packages) == 0 {
		errs = append(errs, errors.New("no packages to load"))
	}

	seen := make(map[string]int, len(cf.Pairs))
	for i, p := range cf.Pairs {
		if p.Source == "" || p.Target == "" {
			errs = append(errs, fmt.Errorf("pair %d: source and target are required", i))
			continue
		}
		if _, err := convert.ParseMode(p.Mode); err != nil {
			errs = append(errs, fmt.Errorf("pair %d (%s): %w", i, p, err))
		}
		if prev, ok := seen[p.String()]; ok {
			errs = append(errs, fmt.Errorf("pair %d (%s): duplicates pair %d", i, p, prev))
		}
		seen[p.String()] = i
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidCheckFile, errors.Join(errs...))
	}

	return nil
}
