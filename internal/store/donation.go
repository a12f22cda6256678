package store

import (
	"context"
	"fmt"
	"time"

	"foodrescue/internal/utils"
	"foodrescue/pkg/types"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
)

const (
	donationTableName = "foodrescue.food_donations"
	addressTableName  = "foodrescue.addresses"
)

var (
	donationColumns = utils.StructTagValues(types.FoodDonation{})

	// Donation joined with its pickup address and the donor's contact
	// fields, matching DonationListing.
	donationListingColumns = append(
		utils.PrefixColumns("fd", donationColumns),
		"a.street_address", "a.city", "a.state", "a.zip_code", "a.latitude", "a.longitude",
		"u.first_name", "u.last_name", "u.phone",
	)
)

type DonationRepository struct {
	db DB
}

func NewDonationRepository(db DB) *DonationRepository {
	return &DonationRepository{db: db}
}

// Create inserts the pickup address and the donation in one
// transaction, so a failed donation insert never strands an address
// row. Both ids are filled in on success.
func (r *DonationRepository) Create(ctx context.Context, address *types.Address, donation *types.FoodDonation) error {
	now := time.Now()
	address.CreatedAt = now
	donation.CreatedAt = now

	if donation.Status == "" {
		donation.Status = types.DonationStatusAvailable
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin donation create tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	addressQuery, addressArgs, err := psql().
		Insert(addressTableName).
		SetMap(utils.StructToMapExcept(address, "address_id")).
		Suffix("RETURNING address_id").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate address insert: %w", err)
	}

	err = tx.QueryRow(ctx, addressQuery, addressArgs...).Scan(&address.ID)
	if err != nil {
		return fmt.Errorf("failed to insert pickup address: %w", err)
	}

	donation.PickupAddressID = address.ID

	donationQuery, donationArgs, err := psql().
		Insert(donationTableName).
		SetMap(utils.StructToMapExcept(donation, "donation_id")).
		Suffix("RETURNING donation_id").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate donation insert: %w", err)
	}

	err = tx.QueryRow(ctx, donationQuery, donationArgs...).Scan(&donation.ID)
	if err != nil {
		return fmt.Errorf("failed to insert donation: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit donation create tx: %w", err)
	}

	return nil
}

// Available returns every donation still open for pickup, joined with
// its address and the donor's name and phone.
func (r *DonationRepository) Available(ctx context.Context) ([]*types.DonationListing, error) {
	query, args, err := psql().
		Select(donationListingColumns...).
		From(donationTableName + " fd").
		Join(addressTableName + " a ON fd.pickup_address_id = a.address_id").
		Join(userTableName + " u ON fd.donor_id = u.user_id").
		Where(sq.Eq{"fd.status": types.DonationStatusAvailable}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate available donations query: %w", err)
	}

	var listings = make([]*types.DonationListing, 0)
	err = pgxscan.Select(ctx, r.db, &listings, query, args...)

	return listings, utils.ErrorWrapOrNil(err, "failed to fetch available donations")
}
