package domain

import (
	"testing"

	tracking "parcel-tracker/internal/features/tracking/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOffer_Validate(t *testing.T) {
	tests := []struct {
		name        string
		offer       Offer
		expectedErr error
	}{
		{
			name:  "Valid Offer",
			offer: Offer{ID: "a", Title: "A", URL: "https://example.com/a"},
		},
		{
			name:        "Missing ID",
			offer:       Offer{Title: "A", URL: "https://example.com/a"},
			expectedErr: ErrInvalidOffer,
		},
		{
			name:        "Missing Title",
			offer:       Offer{ID: "a", URL: "https://example.com/a"},
			expectedErr: ErrInvalidOffer,
		},
		{
			name:        "Relative URL",
			offer:       Offer{ID: "a", Title: "A", URL: "/offers/a"},
			expectedErr: ErrInvalidOffer,
		},
		{
			name:        "Script URL",
			offer:       Offer{ID: "a", Title: "A", URL: "javascript:alert(1)"},
			expectedErr: ErrInvalidOffer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.offer.Validate()
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidateOffers_Duplicates(t *testing.T) {
	o := Offer{ID: "a", Title: "A", URL: "https://example.com/a"}
	assert.NoError(t, ValidateOffers([]Offer{o}))
	assert.NoError(t, ValidateOffers(nil))

	err := ValidateOffers([]Offer{o, o})
	assert.ErrorIs(t, err, ErrInvalidOffer)
	assert.Contains(t, err.Error(), "duplicate id a")
}

func TestParseStatusCode(t *testing.T) {
	code, err := ParseStatusCode("dl")
	require.NoError(t, err)
	assert.Equal(t, tracking.StatusDelivered, code)

	_, err = ParseStatusCode("XX")
	assert.ErrorIs(t, err, ErrUnknownStatusCode)
}

func TestDefaultOffers(t *testing.T) {
	for _, code := range tracking.AllStatusCodes() {
		offers := DefaultOffers(code)
		assert.NotNil(t, offers, string(code))
		assert.NoError(t, ValidateOffers(offers), string(code))
	}

	offers := DefaultOffers(tracking.StatusInTransit)
	require.NotEmpty(t, offers)
	offers[0].Title = "mutated"
	assert.NotEqual(t, "mutated", DefaultOffers(tracking.StatusInTransit)[0].Title)
}
