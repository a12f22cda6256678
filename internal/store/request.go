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

const requestTableName = "foodrescue.food_requests"

var (
	requestColumns = utils.StructTagValues(types.FoodRequest{})

	requestListingColumns = append(
		utils.PrefixColumns("fr", requestColumns),
		"a.street_address", "a.city", "a.state", "a.zip_code", "a.latitude", "a.longitude",
		"u.first_name", "u.last_name", "u.phone",
	)
)

type RequestRepository struct {
	db DB
}

func NewRequestRepository(db DB) *RequestRepository {
	return &RequestRepository{db: db}
}

// Create mirrors DonationRepository.Create for the receiver side:
// delivery address and request inserted in one transaction.
func (r *RequestRepository) Create(ctx context.Context, address *types.Address, request *types.FoodRequest) error {
	now := time.Now()
	address.CreatedAt = now
	request.CreatedAt = now

	if request.Status == "" {
		request.Status = types.RequestStatusPending
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin request create tx: %w", err)
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
		return fmt.Errorf("failed to insert delivery address: %w", err)
	}

	request.DeliveryAddressID = address.ID

	requestQuery, requestArgs, err := psql().
		Insert(requestTableName).
		SetMap(utils.StructToMapExcept(request, "request_id")).
		Suffix("RETURNING request_id").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate request insert: %w", err)
	}

	err = tx.QueryRow(ctx, requestQuery, requestArgs...).Scan(&request.ID)
	if err != nil {
		return fmt.Errorf("failed to insert request: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit request create tx: %w", err)
	}

	return nil
}

// Pending returns every request still waiting on a match, joined with
// its address and the receiver's name and phone.
func (r *RequestRepository) Pending(ctx context.Context) ([]*types.RequestListing, error) {
	query, args, err := psql().
		Select(requestListingColumns...).
		From(requestTableName + " fr").
		Join(addressTableName + " a ON fr.delivery_address_id = a.address_id").
		Join(userTableName + " u ON fr.receiver_id = u.user_id").
		Where(sq.Eq{"fr.status": types.RequestStatusPending}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate pending requests query: %w", err)
	}

	var listings = make([]*types.RequestListing, 0)
	err = pgxscan.Select(ctx, r.db, &listings, query, args...)

	return listings, utils.ErrorWrapOrNil(err, "failed to fetch pending requests")
}
