package mem

import "github.com/jwanderson/weddingsite/internal/models"

// Seed returns the fixture parties used by tests and by the mem backend
// in local development. They mirror the rows seeded into the production
// invite sheet.
func Seed() []*models.Party {
	return []*models.Party{
		{
			ID:         "P-JOEL",
			InviteCode: "JOEL2024",
			GuestGroup: models.GuestGroup{
				Guests:           []models.Guest{{FirstName: "Joel", LastName: "Anderson"}},
				AdditionalGuests: 1,
				AllowedEvents:    []string{"Ceremony", "Reception"},
				PrimaryContact:   "Joel Anderson",
			},
		},
		{
			ID:         "P-ELAINE",
			InviteCode: "ELAINE2024",
			GuestGroup: models.GuestGroup{
				Guests:           []models.Guest{{FirstName: "Elaine", LastName: "Wong"}},
				AdditionalGuests: 1,
				AllowedEvents:    []string{"Ceremony", "Reception"},
				PrimaryContact:   "Elaine Wong",
			},
		},
		{
			ID:         "P1",
			InviteCode: "DOE2024",
			GuestGroup: models.GuestGroup{
				Guests: []models.Guest{
					{FirstName: "Jane", LastName: "Doe"},
					{FirstName: "John", LastName: "Doe"},
				},
				AdditionalGuests: 0,
				AllowedEvents:    []string{"Ceremony", "Reception"},
				PrimaryContact:   "Jane Doe",
			},
		},
	}
}
