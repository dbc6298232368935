package algo

import (
	"errors"
	"fmt"

	"github.com/fuzzyrank/fuzzyrank/schema"
)

// Validation errors reported in strict mode. Validate wraps them, so test
// with errors.Is.
var (
	ErrTooFewExperts      = errors.New("too few experts")
	ErrTooFewCriteria     = errors.New("too few criteria")
	ErrTooFewAlternatives = errors.New("too few alternatives")
	ErrNameCount          = errors.New("name count does not match")
	ErrShapeMismatch      = errors.New("matrix shape does not match")
	ErrUnknownLabel       = errors.New("unknown linguistic label")
)

// ErrTooLarge is reported by CheckSize, in every mode, for counts above the
// configured maximums.
var ErrTooLarge = errors.New("decision problem too large")

// CheckSize reports counts above the maximums of limits, joined into one
// error. Call it before Resize or Compute: both allocate
// experts x alternatives x criteria cells whatever the input holds.
func CheckSize(experts, criteria, alternatives int, limits schema.Limits) error {
	return errors.Join(sizeErrors(experts, criteria, alternatives, limits)...)
}

func sizeErrors(experts, criteria, alternatives int, limits schema.Limits) []error {
	var errs []error
	if limits.MaxExperts > 0 && experts > limits.MaxExperts {
		errs = append(errs, fmt.Errorf("%w: %d experts > %d", ErrTooLarge, experts, limits.MaxExperts))
	}
	if limits.MaxCriteria > 0 && criteria > limits.MaxCriteria {
		errs = append(errs, fmt.Errorf("%w: %d criteria > %d", ErrTooLarge, criteria, limits.MaxCriteria))
	}
	if limits.MaxAlternatives > 0 && alternatives > limits.MaxAlternatives {
		errs = append(errs, fmt.Errorf("%w: %d alternatives > %d", ErrTooLarge, alternatives, limits.MaxAlternatives))
	}
	return errs
}

// Validate checks a decision problem without repairing it. It reports every
// problem it finds, joined into one error. A nil return means Compute will
// not substitute any default value.
func Validate(in schema.Input, limits schema.Limits) error {
	var errs []error

	if in.NumExperts < limits.MinExperts {
		errs = append(errs, fmt.Errorf("%w: %d < %d", ErrTooFewExperts, in.NumExperts, limits.MinExperts))
	}
	if in.NumCriteria < limits.MinCriteria {
		errs = append(errs, fmt.Errorf("%w: %d < %d", ErrTooFewCriteria, in.NumCriteria, limits.MinCriteria))
	}
	if in.NumAlternatives < limits.MinAlternatives {
		errs = append(errs, fmt.Errorf("%w: %d < %d", ErrTooFewAlternatives, in.NumAlternatives, limits.MinAlternatives))
	}
	errs = append(errs, sizeErrors(in.NumExperts, in.NumCriteria, in.NumAlternatives, limits)...)

	if n := len(in.CriteriaNames); n != 0 && n != in.NumCriteria {
		errs = append(errs, fmt.Errorf("%w: %d criteria names for %d criteria", ErrNameCount, n, in.NumCriteria))
	}
	if n := len(in.AlternativeNames); n != 0 && n != in.NumAlternatives {
		errs = append(errs, fmt.Errorf("%w: %d alternative names for %d alternatives", ErrNameCount, n, in.NumAlternatives))
	}

	if len(in.WeightLabels) != in.NumExperts {
		errs = append(errs, fmt.Errorf("%w: weights have %d experts, want %d", ErrShapeMismatch, len(in.WeightLabels), in.NumExperts))
	}
	for e, row := range in.WeightLabels {
		if len(row) != in.NumCriteria {
			errs = append(errs, fmt.Errorf("%w: expert %d weights have %d criteria, want %d", ErrShapeMismatch, e+1, len(row), in.NumCriteria))
		}
		for j, raw := range row {
			if _, ok := ParseLabel(raw); !ok {
				errs = append(errs, fmt.Errorf("%w: %q in weight of expert %d, criterion %d", ErrUnknownLabel, raw, e+1, j+1))
			}
		}
	}

	if len(in.AssessmentLabels) != in.NumExperts {
		errs = append(errs, fmt.Errorf("%w: assessments have %d experts, want %d", ErrShapeMismatch, len(in.AssessmentLabels), in.NumExperts))
	}
	for e, alts := range in.AssessmentLabels {
		if len(alts) != in.NumAlternatives {
			errs = append(errs, fmt.Errorf("%w: expert %d rated %d alternatives, want %d", ErrShapeMismatch, e+1, len(alts), in.NumAlternatives))
		}
		for a, row := range alts {
			if len(row) != in.NumCriteria {
				errs = append(errs, fmt.Errorf("%w: expert %d, alternative %d has %d criteria, want %d", ErrShapeMismatch, e+1, a+1, len(row), in.NumCriteria))
			}
			for j, raw := range row {
				if _, ok := ParseLabel(raw); !ok {
					errs = append(errs, fmt.Errorf("%w: %q in rating of expert %d, alternative %d, criterion %d", ErrUnknownLabel, raw, e+1, a+1, j+1))
				}
			}
		}
	}

	return errors.Join(errs...)
}
