package repository

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/videgrenier/marketplace-service/internal/errs"
	"github.com/videgrenier/marketplace-service/internal/model"
)

const exchangeColumns = `e.id, e.request_uid, e.listing_id, l.listing_uid, e.requester, e.book_title, e.book_description, e.book_photo, e.message, e.status, e.created_at, e.updated_at`

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}

func (r *repository) CreateExchangeRequest(ctx context.Context, listingID int, requester string, req model.ProposeExchangeRequest) (model.ExchangeRequest, error) {
	q, args, err := qb.Insert(exchangeTableName).
		Columns("request_uid", "listing_id", "requester", "book_title", "book_description", "book_photo", "message", "status").
		Values(uuid.New(), listingID, requester, req.BookTitle, req.BookDescription, req.BookPhoto, req.Message, model.RequestPending).
		Suffix("returning id, request_uid, listing_id, requester, book_title, book_description, book_photo, message, status, created_at, updated_at").
		ToSql()
	if err != nil {
		return model.ExchangeRequest{}, err
	}
	var res model.ExchangeRequest
	if err := r.db.GetContext(ctx, &res, q, args...); err != nil {
		if isUniqueViolation(err) {
			return model.ExchangeRequest{}, errors.Wrap(errs.ErrConflict, errs.ErrPendingExists.Error())
		}
		r.log.Error("CreateExchangeRequest", zap.String("q", q), zap.Any("args", args))
		return model.ExchangeRequest{}, err
	}
	return res, nil
}

func (r *repository) GetExchangeInbox(ctx context.Context, username string) (model.ExchangeInbox, error) {
	received, err := r.selectExchanges(ctx, sq.Eq{"l.owner": username})
	if err != nil {
		return model.ExchangeInbox{}, err
	}
	sent, err := r.selectExchanges(ctx, sq.Eq{"e.requester": username})
	if err != nil {
		return model.ExchangeInbox{}, err
	}
	return model.ExchangeInbox{Received: received, Sent: sent}, nil
}

func (r *repository) selectExchanges(ctx context.Context, pred interface{}) ([]model.ExchangeRequest, error) {
	q, args, err := qb.Select(exchangeColumns).
		From(exchangeTableName + " e").
		Join(fmt.Sprintf("%s l on l.id = e.listing_id", listingTableName)).
		Where(pred).
		OrderBy("e.created_at desc").
		ToSql()
	if err != nil {
		return nil, err
	}
	var items []model.ExchangeRequest
	if err := r.db.SelectContext(ctx, &items, q, args...); err != nil {
		return nil, err
	}
	return items, nil
}

// DecideExchange resolves a pending request. Accepting flips the listing to
// SOLD and credits the owner's exchange counter in the same transaction;
// the listing row is locked first so two concurrent accepts on the same
// listing cannot both succeed.
func (r *repository) DecideExchange(ctx context.Context, requestUid, actor string, decision model.Decision) (model.ExchangeRequest, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return model.ExchangeRequest{}, err
	}
	defer tx.Rollback() //nolint:errcheck

	var row struct {
		model.ExchangeRequest
		Owner         string              `db:"owner"`
		ListingStatus model.ListingStatus `db:"listing_status"`
	}
	q := fmt.Sprintf(`select %s, l.owner, l.status as listing_status
	from %s e
	join %s l on l.id = e.listing_id
	where e.request_uid = $1
	for update of e, l`, exchangeColumns, exchangeTableName, listingTableName)
	if err := tx.GetContext(ctx, &row, q, requestUid); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.ExchangeRequest{}, errs.ErrNotFound
		}
		return model.ExchangeRequest{}, err
	}
	if row.Owner != actor {
		return model.ExchangeRequest{}, errs.ErrForbidden
	}
	if row.Status != model.RequestPending {
		return model.ExchangeRequest{}, errs.ErrNotFound
	}

	status := model.RequestRefused
	if decision == model.DecisionAccept {
		if row.ListingStatus != model.ListingAvailable {
			return model.ExchangeRequest{}, errors.Wrap(errs.ErrConflict, errs.ErrNotAvailable.Error())
		}
		status = model.RequestAccepted

		q = fmt.Sprintf(`update %s set status = $1, updated_at = now() where id = $2`, listingTableName)
		if _, err := tx.ExecContext(ctx, q, model.ListingSold, row.ListingID); err != nil {
			return model.ExchangeRequest{}, err
		}
		q = fmt.Sprintf(`update %s set exchange_count = exchange_count + 1 where username = $1`, usersTableName)
		if _, err := tx.ExecContext(ctx, q, row.Owner); err != nil {
			return model.ExchangeRequest{}, err
		}
	}

	q = fmt.Sprintf(`update %s set status = $1, updated_at = now() where id = $2
	returning id, request_uid, listing_id, requester, book_title, book_description, book_photo, message, status, created_at, updated_at`, exchangeTableName)
	var res model.ExchangeRequest
	if err := tx.GetContext(ctx, &res, q, status, row.ID); err != nil {
		return model.ExchangeRequest{}, err
	}
	res.ListingUid = row.ListingUid

	return res, tx.Commit()
}
