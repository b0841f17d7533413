package input

import (
	"fmt"
	"math"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/hashicorp/go-multierror"
)

// CheckValues rejects NaN and infinite elements.
//
// Every offending element is reported; the returned error satisfies
// errors.Is(err, ErrInvalidInput).
func CheckValues(values []float64) error {
	return check(values, func(v float64) string {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return "not finite"
		}

		return ""
	})
}

// CheckNonNegativeIntegers rejects anything but finite integers >= 0.
func CheckNonNegativeIntegers(values []float64) error {
	return check(values, func(v float64) string {
		switch {
		case math.IsNaN(v) || math.IsInf(v, 0):
			return "not finite"
		case v != math.Trunc(v):
			return "not an integer"
		case v < 0:
			return "negative"
		}

		return ""
	})
}

// CheckIntegers rejects anything but finite integers.
func CheckIntegers(values []float64) error {
	return check(values, func(v float64) string {
		switch {
		case math.IsNaN(v) || math.IsInf(v, 0):
			return "not finite"
		case v != math.Trunc(v):
			return "not an integer"
		}

		return ""
	})
}

// CheckUnit rejects values outside [0,1).
func CheckUnit(values []float64) error {
	return check(values, func(v float64) string {
		if math.IsNaN(v) || v < 0 || v >= 1 {
			return "not in [0,1)"
		}

		return ""
	})
}

// CheckSorted rejects non-finite values and any descent.
func CheckSorted(values []float64) error {
	if err := CheckValues(values); err != nil {
		return err
	}
	var merr *multierror.Error
	for i := 1; i < len(values); i++ {
		if values[i] < values[i-1] {
			merr = multierror.Append(merr, errors.Newf("index %d: %v < %v", i, values[i], values[i-1]))
		}
	}

	return invalid(merr, "not sorted")
}

// CheckTarget rejects a NaN or infinite search target.
func CheckTarget(target float64) error {
	if math.IsNaN(target) || math.IsInf(target, 0) {
		return errors.Wrapf(ErrInvalidInput, "target %v is not finite", target)
	}

	return nil
}

// CheckSpan rejects distribution inputs whose auxiliary storage (max-min+1
// slots) would exceed MaxDomain.
func CheckSpan(lo, hi float64) error {
	if hi-lo+1 > MaxDomain {
		return errors.Wrapf(ErrInvalidInput, "value span %v..%v exceeds %d slots", lo, hi, MaxDomain)
	}

	return nil
}

func check(values []float64, bad func(float64) string) error {
	var merr *multierror.Error
	for i, v := range values {
		if reason := bad(v); reason != "" {
			merr = multierror.Append(merr, errors.Newf("index %d: %v is %s", i, v, reason))
		}
	}

	return invalid(merr, "bad elements")
}

// invalid folds collected failures into one ErrInvalidInput error. The
// multierror is kept as secondary payload for %+v.
func invalid(merr *multierror.Error, what string) error {
	if merr.ErrorOrNil() == nil {
		return nil
	}
	merr.ErrorFormat = listFormat
	summary := errors.Wrapf(ErrInvalidInput, "%s (%s)", what, merr.Error())

	return errors.WithSecondaryError(summary, merr)
}

func listFormat(errs []error) string {
	parts := make([]string, len(errs))
	for i, err := range errs {
		parts[i] = err.Error()
	}
	if len(parts) == 1 {
		return parts[0]
	}

	return fmt.Sprintf("%d errors: %s", len(parts), strings.Join(parts, "; "))
}
