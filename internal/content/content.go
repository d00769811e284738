// Package content holds the static informational data served alongside
// the RSVP flow: wedding events, travel locations, and FAQs.
package content

// Event is a scheduled wedding event guests may be invited to.
type Event struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Date        string `json:"date"`
	Description string `json:"description"`
	Location    string `json:"location"`
}

// Coordinates is a map point.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Location is a named place with a maps link.
type Location struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Address     string      `json:"address"`
	MapURL      string      `json:"mapUrl"`
	Coordinates Coordinates `json:"coordinates"`
}

// Airport is a location with flight code and travel estimates to the venue.
type Airport struct {
	Location
	Code        string `json:"code"`
	DrivingTime string `json:"drivingTime"`
	Distance    string `json:"distance"`
}

// FAQ is a question-and-answer pair for the FAQ page.
type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Travel bundles the hotel, venue, and airport guidance for one payload.
type Travel struct {
	Hotel    Location  `json:"hotel"`
	Venue    Location  `json:"venue"`
	Airports []Airport `json:"airports"`
}

// Events returns the scheduled wedding events.
func Events() []Event {
	return []Event{
		{
			ID:          "ceremony",
			Name:        "Ceremony",
			Date:        "2024-10-12T16:00:00-04:00",
			Description: "Wedding ceremony followed by cocktails.",
			Location:    "Aurora Restaurant, 70 Grand Street, Brooklyn, NY",
		},
		{
			ID:          "reception",
			Name:        "Reception",
			Date:        "2024-10-12T18:00:00-04:00",
			Description: "Dinner, toasts, and dancing.",
			Location:    "Aurora Restaurant, 70 Grand Street, Brooklyn, NY",
		},
	}
}

// TravelGuide returns the hotel, venue, and airport information.
func TravelGuide() Travel {
	return Travel{
		Hotel: Location{
			Name:        "Arlo Williamsburg",
			Description: "Our suggested hotel for out-of-town guests. More details on room blocks coming soon!",
			Address:     "96 Wythe Ave, Brooklyn, NY 11249",
			MapURL:      "https://maps.app.goo.gl/Lj8LF8FSfSbsf8Zu7",
			Coordinates: Coordinates{Lat: 40.7215, Lng: -73.9577},
		},
		Venue: Location{
			Name:        "Aurora Restaurant",
			Description: "Wedding venue - ceremony and reception.",
			Address:     "70 Grand Street, Brooklyn, NY",
			MapURL:      "https://maps.app.goo.gl/XgpetCEfV694dqG78",
			Coordinates: Coordinates{Lat: 40.7157, Lng: -73.9667},
		},
		Airports: []Airport{
			{
				Location: Location{
					Name:        "LaGuardia Airport",
					Description: "Domestic airport with flights from across the United States. Our recommended airport.",
					Address:     "Queens, NY 11371",
					MapURL:      "https://maps.app.goo.gl/YnWztQErTnfZ7Czo8",
					Coordinates: Coordinates{Lat: 40.7769, Lng: -73.8740},
				},
				Code:        "LGA",
				DrivingTime: "30-45 minutes",
				Distance:    "8.5 miles",
			},
			{
				Location: Location{
					Name:        "JFK International Airport",
					Description: "Major international airport with flights from around the world.",
					Address:     "Queens, NY 11430",
					Coordinates: Coordinates{Lat: 40.6413, Lng: -73.7781},
				},
				Code:        "JFK",
				DrivingTime: "45-60 minutes",
				Distance:    "15 miles",
			},
			{
				Location: Location{
					Name:        "Newark Liberty International Airport",
					Description: "International airport serving the New York/New Jersey area.",
					Address:     "3 Brewster Rd, Newark, NJ 07114",
					Coordinates: Coordinates{Lat: 40.6895, Lng: -74.1745},
				},
				Code:        "EWR",
				DrivingTime: "45-75 minutes",
				Distance:    "18 miles",
			},
		},
	}
}

// FAQs returns the FAQ page entries.
func FAQs() []FAQ {
	return []FAQ{
		{
			Question: "When should I RSVP by?",
			Answer:   "Please respond by September 1st so we can finalize our headcount with the venue.",
		},
		{
			Question: "Can I bring a plus one?",
			Answer:   "Your invitation covers everyone in your party. If your invite includes an additional guest, the RSVP form will let you add their name.",
		},
		{
			Question: "What should I wear?",
			Answer:   "Cocktail attire. The ceremony and reception are both indoors.",
		},
		{
			Question: "Is there parking near the venue?",
			Answer:   "Street parking around Grand Street is limited; we recommend a rideshare or the L train to Bedford Ave.",
		},
	}
}
