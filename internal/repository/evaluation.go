package repository

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/videgrenier/marketplace-service/internal/errs"
	"github.com/videgrenier/marketplace-service/internal/model"
)

// CreateEvaluation inserts the rating and recomputes the seller's stored
// average (one decimal) in the same transaction.
func (r *repository) CreateEvaluation(ctx context.Context, buyer string, req model.CreateEvaluationRequest) (model.Evaluation, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return model.Evaluation{}, err
	}
	defer tx.Rollback() //nolint:errcheck

	q := fmt.Sprintf(`insert into %s (seller, buyer, listing_uid, stars, comment)
	values ($1, $2, $3, $4, $5)
	returning id, seller, buyer, listing_uid, stars, comment, created_at`, evaluationTableName)
	var ev model.Evaluation
	if err := tx.GetContext(ctx, &ev, q, req.Seller, buyer, req.ListingUid, req.Stars, req.Comment); err != nil {
		if isUniqueViolation(err) {
			return model.Evaluation{}, errors.Wrap(errs.ErrConflict, "already evaluated")
		}
		r.log.Error("CreateEvaluation", zap.String("q", q))
		return model.Evaluation{}, err
	}

	q = fmt.Sprintf(`update %s set average_rating = (
	select round(avg(stars), 1) from %s where seller = $1
) where username = $1`, usersTableName, evaluationTableName)
	if _, err := tx.ExecContext(ctx, q, req.Seller); err != nil {
		return model.Evaluation{}, err
	}

	return ev, tx.Commit()
}

func (r *repository) ListEvaluations(ctx context.Context, seller string, limit int) ([]model.Evaluation, error) {
	q := qb.Select("id", "seller", "buyer", "listing_uid", "stars", "comment", "created_at").
		From(evaluationTableName).
		Where(sq.Eq{"seller": seller}).
		OrderBy("created_at desc")
	if limit > 0 {
		q = q.Limit(uint64(limit))
	}
	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}
	var items []model.Evaluation
	if err := r.db.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, err
	}
	return items, nil
}
