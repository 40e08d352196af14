package domain

import tracking "parcel-tracker/internal/features/tracking/domain"

var protectionOffer = Offer{
	ID:          "joy-protection",
	Title:       "Protect this package",
	Description: "Cover loss, theft and damage for shipments still on the way.",
	URL:         "https://getjoy.com/package-protection",
	Sponsor:     "Joy",
}

var creditOffer = Offer{
	ID:          "yendo-credit",
	Title:       "Shop now, pay over time",
	Description: "A credit line backed by the car you already own.",
	URL:         "https://yendo.com/apply",
	Sponsor:     "Yendo",
}

var catalog = map[tracking.StatusCode][]Offer{
	tracking.StatusInTransit: {protectionOffer, creditOffer},
	tracking.StatusOutForDelivery: {
		{
			ID:          "porch-guard",
			Title:       "Keep it safe at the door",
			Description: "Lockable parcel boxes for doorstep deliveries.",
			URL:         "https://example.com/offers/porch-guard",
			Sponsor:     "PorchGuard",
		},
	},
	tracking.StatusDelivered: {creditOffer},
	tracking.StatusProcessing: {protectionOffer},
	tracking.StatusException: {
		{
			ID:          "joy-claims",
			Title:       "File a claim in minutes",
			Description: "Delayed or damaged? Start a protection claim.",
			URL:         "https://getjoy.com/claims",
			Sponsor:     "Joy",
		},
	},
	tracking.StatusNotFound: {},
}

// DefaultOffers returns the built-in offers for a status code.
// The returned slice is a copy.
func DefaultOffers(code tracking.StatusCode) []Offer {
	offers := catalog[code]
	out := make([]Offer, len(offers))
	copy(out, offers)
	return out
}
