// Package classifier decides whether user input plausibly is a tracking number
// and which carrier issued it. It performs no I/O and holds no state.
package classifier

import "parcel-tracker/internal/features/tracking/domain"

const minLength = 5

// Classify validates input and detects the likely carrier.
// Rejections are returned as *domain.RejectedError with HoaxDetected set.
// Validation is deliberately permissive: ambiguous alphanumeric input is accepted
// with generic confidence rather than rejected.
func Classify(input string) (domain.CarrierMatch, error) {
	number := domain.NormalizeTrackingNumber(input)
	s := number.String()

	if len(s) < minLength {
		return domain.CarrierMatch{}, &domain.RejectedError{
			Reason:       domain.ReasonTooShort,
			HoaxDetected: true,
		}
	}

	if !hasAlphanumeric.MatchString(s) {
		return domain.CarrierMatch{}, &domain.RejectedError{
			Reason:       domain.ReasonInvalidFormat,
			HoaxDetected: true,
		}
	}

	for _, p := range carrierPatterns {
		if p.Regex.MatchString(s) {
			return domain.CarrierMatch{
				TrackingNumber: number,
				CarrierName:    p.Carrier,
				Confidence:     p.Confidence,
				Matched:        true,
			}, nil
		}
	}

	if genericPattern.MatchString(s) {
		return domain.CarrierMatch{
			TrackingNumber: number,
			Confidence:     GenericConfidence,
		}, nil
	}

	return domain.CarrierMatch{}, &domain.RejectedError{
		Reason:       domain.ReasonInvalidLayout,
		HoaxDetected: true,
	}
}
