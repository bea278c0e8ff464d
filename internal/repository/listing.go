package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/videgrenier/marketplace-service/internal/errs"
	"github.com/videgrenier/marketplace-service/internal/model"
)

const listingColumns = `id, listing_uid, owner, title, description, price, category, condition, kind, status, city, region, views, created_at, updated_at`

func (r *repository) CreateListing(ctx context.Context, l model.Listing) (model.Listing, error) {
	q, args, err := qb.Insert(listingTableName).
		Columns("listing_uid", "owner", "title", "description", "price", "category", "condition", "kind", "status", "city", "region").
		Values(uuid.New(), l.Owner, l.Title, l.Description, l.Price, l.Category, l.Condition, l.Kind, model.ListingAvailable, l.City, l.Region).
		Suffix("returning " + listingColumns).
		ToSql()
	if err != nil {
		return model.Listing{}, err
	}
	var res model.Listing
	if err := r.db.GetContext(ctx, &res, q, args...); err != nil {
		r.log.Error("CreateListing", zap.String("q", q), zap.Any("args", args))
		return model.Listing{}, err
	}
	return res, nil
}

func (r *repository) GetListing(ctx context.Context, listingUid string) (model.Listing, error) {
	q, args, err := qb.Select(listingColumns).
		From(listingTableName).
		Where(sq.Eq{"listing_uid": listingUid}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Listing{}, err
	}
	var l model.Listing
	if err := r.db.GetContext(ctx, &l, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Listing{}, errs.ErrNotFound
		}
		return model.Listing{}, err
	}
	return l, nil
}

func (r *repository) ListListings(ctx context.Context, filter model.ListingFilter, page, size int) (model.ListListings, error) {
	q := qb.Select(listingColumns).
		From(listingTableName).
		Where(sq.Eq{"status": model.ListingAvailable}).
		OrderBy("created_at desc")

	if filter.Query != "" {
		pattern := "%" + filter.Query + "%"
		q = q.Where(sq.Or{
			sq.ILike{"title": pattern},
			sq.ILike{"description": pattern},
			sq.ILike{"city": pattern},
		})
	}
	if filter.Category != "" {
		q = q.Where(sq.Eq{"category": filter.Category})
	}
	if filter.Kind != "" {
		q = q.Where(sq.Eq{"kind": filter.Kind})
	}
	if filter.Region != "" {
		q = q.Where(sq.Eq{"region": filter.Region})
	}
	if filter.Owner != "" {
		q = q.Where(sq.Eq{"owner": filter.Owner})
	}
	if page != 0 && size != 0 {
		q = q.Limit(uint64(size)).Offset(uint64((page - 1) * size))
	}

	query, args, err := q.ToSql()
	if err != nil {
		return model.ListListings{}, err
	}
	r.log.Debug("ListListings", zap.String("query", query), zap.Any("args", args))

	var items []model.Listing
	if err := r.db.SelectContext(ctx, &items, query, args...); err != nil {
		return model.ListListings{}, err
	}

	return model.ListListings{
		Paging: model.Paging{
			Page:          page,
			PageSize:      size,
			TotalElements: len(items),
		},
		Items: items,
	}, nil
}

func (r *repository) UpdateListing(ctx context.Context, owner, listingUid string, req model.ListingDraftRequest) (model.Listing, error) {
	q, args, err := qb.Update(listingTableName).
		Set("title", req.Title).
		Set("description", req.Description).
		Set("price", req.Price).
		Set("category", req.Category).
		Set("condition", req.Condition).
		Set("kind", req.Kind).
		Set("city", req.City).
		Set("region", req.Region).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"listing_uid": listingUid, "owner": owner}).
		Suffix("returning " + listingColumns).
		ToSql()
	if err != nil {
		return model.Listing{}, err
	}
	var l model.Listing
	if err := r.db.GetContext(ctx, &l, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Listing{}, errs.ErrNotFound
		}
		return model.Listing{}, err
	}
	return l, nil
}

func (r *repository) WithdrawListing(ctx context.Context, owner, listingUid string) error {
	q := fmt.Sprintf(`update %s set status = $1, updated_at = now()
	where listing_uid = $2 and owner = $3`, listingTableName)
	res, err := r.db.ExecContext(ctx, q, model.ListingWithdrawn, listingUid, owner)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 { //nolint:errcheck
		return errs.ErrNotFound
	}
	return nil
}

func (r *repository) IncrementViews(ctx context.Context, listingUid string) error {
	q := fmt.Sprintf(`update %s set views = views + 1 where listing_uid = $1`, listingTableName)
	_, err := r.db.ExecContext(ctx, q, listingUid)
	return err
}

func (r *repository) ComparablePrices(ctx context.Context, category model.Category) ([]int, error) {
	q, args, err := qb.Select("price").
		From(listingTableName).
		Where(sq.Eq{"category": category, "status": model.ListingAvailable}).
		Where(sq.Gt{"price": 0}).
		ToSql()
	if err != nil {
		return nil, err
	}
	var prices []int
	if err := r.db.SelectContext(ctx, &prices, q, args...); err != nil {
		return nil, err
	}
	return prices, nil
}

func (r *repository) AddPhoto(ctx context.Context, listingUid, owner, path string) (model.ListingPhoto, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return model.ListingPhoto{}, err
	}
	defer tx.Rollback() //nolint:errcheck

	var listingID int
	q := fmt.Sprintf(`select id from %s where listing_uid = $1 and owner = $2 for update`, listingTableName)
	if err := tx.GetContext(ctx, &listingID, q, listingUid, owner); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.ListingPhoto{}, errs.ErrNotFound
		}
		return model.ListingPhoto{}, err
	}

	var count int
	q = fmt.Sprintf(`select count(*) from %s where listing_id = $1`, listingPhotoTableName)
	if err := tx.GetContext(ctx, &count, q, listingID); err != nil {
		return model.ListingPhoto{}, err
	}
	if count >= model.MaxPhotosPerListing {
		return model.ListingPhoto{}, errs.ErrTooManyPhotos
	}

	q = fmt.Sprintf(`insert into %s (listing_id, path, position)
	values ($1, $2, $3)
	returning id, listing_id, path, position, created_at`, listingPhotoTableName)
	var photo model.ListingPhoto
	if err := tx.GetContext(ctx, &photo, q, listingID, path, count); err != nil {
		return model.ListingPhoto{}, err
	}
	return photo, tx.Commit()
}

func (r *repository) GetPhotos(ctx context.Context, listingID int) ([]model.ListingPhoto, error) {
	q, args, err := qb.Select("id", "listing_id", "path", "position", "created_at").
		From(listingPhotoTableName).
		Where(sq.Eq{"listing_id": listingID}).
		OrderBy("position", "created_at").
		ToSql()
	if err != nil {
		return nil, err
	}
	var photos []model.ListingPhoto
	if err := r.db.SelectContext(ctx, &photos, q, args...); err != nil {
		return nil, err
	}
	return photos, nil
}
