package domain

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	tracking "parcel-tracker/internal/features/tracking/domain"
)

var (
	ErrUnknownStatusCode = errors.New("unknown status code")
	ErrInvalidOffer      = errors.New("invalid offer")
)

// Offer is a sponsored suggestion shown next to a tracking result.
// Offers never travel inside a tracking record; they are looked up by status code.
type Offer struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Sponsor     string `json:"sponsor"`
}

// Validate checks that the offer can be rendered as a link.
func (o Offer) Validate() error {
	if strings.TrimSpace(o.ID) == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidOffer)
	}
	if strings.TrimSpace(o.Title) == "" {
		return fmt.Errorf("%w: title is required for %s", ErrInvalidOffer, o.ID)
	}
	u, err := url.Parse(o.URL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: url must be absolute http(s) for %s", ErrInvalidOffer, o.ID)
	}
	return nil
}

// ValidateOffers checks every offer and rejects duplicate ids.
func ValidateOffers(offers []Offer) error {
	seen := make(map[string]bool, len(offers))
	for _, o := range offers {
		if err := o.Validate(); err != nil {
			return err
		}
		if seen[o.ID] {
			return fmt.Errorf("%w: duplicate id %s", ErrInvalidOffer, o.ID)
		}
		seen[o.ID] = true
	}
	return nil
}

// ParseStatusCode accepts the same spellings as tracking records.
func ParseStatusCode(raw string) (tracking.StatusCode, error) {
	code, ok := tracking.ParseStatusCode(raw)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownStatusCode, raw)
	}
	return code, nil
}
