package seed

import (
	"context"
	"errors"
	"fmt"
	"time"

	"foodrescue/internal/auth"
	"foodrescue/internal/store"
	"foodrescue/pkg/types"
)

// Demo accounts all share this password. Seeding is for local
// development only.
const demoPassword = "food-rescue-demo"

var demoUsers = []auth.RegisterParams{
	{FirstName: "Ava", LastName: "Williams", Email: "ava.williams+seed@example.com", Phone: "555-0101", Password: demoPassword, Role: types.UserRoleDonor},
	{FirstName: "Liam", LastName: "Johnson", Email: "liam.johnson+seed@example.com", Phone: "555-0102", Password: demoPassword, Role: types.UserRoleDonor},
	{FirstName: "Mia", LastName: "Davis", Email: "mia.davis+seed@example.com", Phone: "555-0103", Password: demoPassword, Role: types.UserRoleReceiver},
	{FirstName: "Noah", LastName: "Brown", Email: "noah.brown+seed@example.com", Phone: "555-0104", Password: demoPassword, Role: types.UserRoleVolunteer},
}

// SeedDemoData registers the demo accounts and posts a donation and a
// request through the same code paths the API uses. Already-registered
// accounts are skipped, so reseeding is safe; donations and requests
// are appended on every run.
func SeedDemoData(
	ctx context.Context,
	credentials *auth.CredentialStore,
	donations *store.DonationRepository,
	requests *store.RequestRepository,
) error {
	users := make(map[string]*types.User, len(demoUsers))

	for _, params := range demoUsers {
		user, err := credentials.Register(ctx, params)
		if err != nil {
			if errors.Is(err, types.ErrDuplicateEmail) {
				verified, verifyErr := credentials.Verify(ctx, params.Email, params.Password)
				if verifyErr != nil {
					return fmt.Errorf("failed to load existing demo user %s: %w", params.Email, verifyErr)
				}
				users[params.Email] = verified
				continue
			}
			return fmt.Errorf("failed to seed user %s: %w", params.Email, err)
		}

		users[params.Email] = user
	}

	donor := users["ava.williams+seed@example.com"]
	receiver := users["mia.davis+seed@example.com"]

	now := time.Now()

	donationAddress := &types.Address{
		UserID:        donor.ID,
		StreetAddress: "214 Orchard Lane",
		City:          "Springfield",
		State:         "IL",
		ZipCode:       "62704",
		Latitude:      39.7817,
		Longitude:     -89.6501,
	}
	donation := &types.FoodDonation{
		DonorID:       donor.ID,
		FoodCategory:  "produce",
		FoodType:      "apples",
		Quantity:      "3 crates",
		Description:   "Surplus from the weekend farmers market",
		AvailableFrom: now,
		AvailableTo:   now.Add(48 * time.Hour),
		Status:        types.DonationStatusAvailable,
	}
	if err := donations.Create(ctx, donationAddress, donation); err != nil {
		return fmt.Errorf("failed to seed donation: %w", err)
	}

	requestAddress := &types.Address{
		UserID:        receiver.ID,
		StreetAddress: "88 Willow Street",
		City:          "Springfield",
		State:         "IL",
		ZipCode:       "62702",
		Latitude:      39.8017,
		Longitude:     -89.6437,
	}
	request := &types.FoodRequest{
		ReceiverID:   receiver.ID,
		FoodCategory: "staples",
		FoodType:     "rice and beans",
		Quantity:     "10 kg",
		Description:  "Weekly pantry restock for the shelter",
		NeededBy:     now.Add(72 * time.Hour),
		Status:       types.RequestStatusPending,
	}
	if err := requests.Create(ctx, requestAddress, request); err != nil {
		return fmt.Errorf("failed to seed request: %w", err)
	}

	return nil
}
