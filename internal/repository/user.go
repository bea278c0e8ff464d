package repository

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/videgrenier/marketplace-service/internal/errs"
	"github.com/videgrenier/marketplace-service/internal/model"
)

const userColumns = `id, username, full_name, phone, city, region, bio, avatar, certified, certified_at, badge_id, average_rating, sales_count, exchange_count, created_at`

func (r *repository) EnsureUser(ctx context.Context, username string) error {
	q := fmt.Sprintf(`insert into %s (username) values ($1) on conflict (username) do nothing`, usersTableName)
	_, err := r.db.ExecContext(ctx, q, username)
	return err
}

func (r *repository) GetProfile(ctx context.Context, username string) (model.Profile, error) {
	q, args, err := qb.Select(userColumns).
		From(usersTableName).
		Where(sq.Eq{"username": username}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Profile{}, err
	}
	var u model.User
	if err := r.db.GetContext(ctx, &u, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Profile{}, errs.ErrNotFound
		}
		return model.Profile{}, err
	}

	p := model.Profile{User: u}
	if u.Certified && u.BadgeID != nil {
		var b model.Badge
		q, args, err := qb.Select("id", "name", "description", "icon", "color", "image", "active", "created_at").
			From(badgeTableName).
			Where(sq.Eq{"id": *u.BadgeID, "active": true}).
			Limit(1).
			ToSql()
		if err != nil {
			return model.Profile{}, err
		}
		if err := r.db.GetContext(ctx, &b, q, args...); err == nil {
			p.Badge = &b
		} else if !errors.Is(err, sql.ErrNoRows) {
			return model.Profile{}, err
		}
	}
	return p, nil
}

func (r *repository) UpdateProfile(ctx context.Context, username string, req model.UpdateProfileRequest) (model.User, error) {
	q, args, err := qb.Update(usersTableName).
		Set("full_name", req.FullName).
		Set("phone", req.Phone).
		Set("city", req.City).
		Set("region", req.Region).
		Set("bio", req.Bio).
		Where(sq.Eq{"username": username}).
		Suffix("returning " + userColumns).
		ToSql()
	if err != nil {
		return model.User{}, err
	}
	var u model.User
	if err := r.db.GetContext(ctx, &u, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, errs.ErrNotFound
		}
		return model.User{}, err
	}
	return u, nil
}

func (r *repository) SetAvatar(ctx context.Context, username, path string) error {
	q := fmt.Sprintf(`update %s set avatar = $1 where username = $2`, usersTableName)
	res, err := r.db.ExecContext(ctx, q, path, username)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 { //nolint:errcheck
		return errs.ErrNotFound
	}
	return nil
}

func (r *repository) CreateVerificationRequest(ctx context.Context, username string, req model.CreateVerificationRequest) (model.VerificationRequest, error) {
	q := fmt.Sprintf(`insert into %s (username, message, document)
	values ($1, $2, $3)
	returning id, username, message, document, status, admin_reply, created_at, updated_at`, verificationTableName)
	var vr model.VerificationRequest
	if err := r.db.GetContext(ctx, &vr, q, username, req.Message, req.Document); err != nil {
		if isUniqueViolation(err) {
			return model.VerificationRequest{}, errors.Wrap(errs.ErrConflict, errs.ErrPendingExists.Error())
		}
		r.log.Error("CreateVerificationRequest", zap.String("q", q))
		return model.VerificationRequest{}, err
	}
	return vr, nil
}

// DecideVerification resolves one pending request; approving certifies the
// user and optionally attaches a badge, atomically.
func (r *repository) DecideVerification(ctx context.Context, id int, decision model.DecisionStatus, reply string, badgeID *int) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback() //nolint:errcheck

	q := fmt.Sprintf(`update %s set status = $1, admin_reply = $2, updated_at = now()
	where id = $3 and status = $4
	returning username`, verificationTableName)
	var username string
	if err := tx.GetContext(ctx, &username, q, decision, reply, id, model.DecisionPending); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return errs.ErrNotFound
		}
		return err
	}

	if decision == model.DecisionApproved {
		q = fmt.Sprintf(`update %s set certified = true, certified_at = now(),
	badge_id = coalesce($1, badge_id)
	where username = $2`, usersTableName)
		if _, err := tx.ExecContext(ctx, q, badgeID, username); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (r *repository) CreateBadge(ctx context.Context, req model.CreateBadgeRequest) (model.Badge, error) {
	q, args, err := qb.Insert(badgeTableName).
		Columns("name", "description", "icon", "color", "image").
		Values(req.Name, req.Description, req.Icon, req.Color, req.Image).
		Suffix("returning id, name, description, icon, color, image, active, created_at").
		ToSql()
	if err != nil {
		return model.Badge{}, err
	}
	var b model.Badge
	if err := r.db.GetContext(ctx, &b, q, args...); err != nil {
		return model.Badge{}, err
	}
	return b, nil
}

func (r *repository) ListBadges(ctx context.Context) ([]model.Badge, error) {
	q, args, err := qb.Select("id", "name", "description", "icon", "color", "image", "active", "created_at").
		From(badgeTableName).
		OrderBy("name").
		ToSql()
	if err != nil {
		return nil, err
	}
	var items []model.Badge
	if err := r.db.SelectContext(ctx, &items, q, args...); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) CreateItemRequest(ctx context.Context, requester string, req model.CreateItemRequest) (model.ItemRequest, error) {
	q, args, err := qb.Insert(itemRequestTableName).
		Columns("requester", "name", "category", "description", "max_budget").
		Values(requester, req.Name, req.Category, req.Description, req.MaxBudget).
		Suffix("returning id, requester, name, category, description, max_budget, status, admin_reply, created_at").
		ToSql()
	if err != nil {
		return model.ItemRequest{}, err
	}
	var ir model.ItemRequest
	if err := r.db.GetContext(ctx, &ir, q, args...); err != nil {
		return model.ItemRequest{}, err
	}
	return ir, nil
}

func (r *repository) ListItemRequests(ctx context.Context, requester string) ([]model.ItemRequest, error) {
	q, args, err := qb.Select("id", "requester", "name", "category", "description", "max_budget", "status", "admin_reply", "created_at").
		From(itemRequestTableName).
		Where(sq.Eq{"requester": requester}).
		OrderBy("created_at desc").
		ToSql()
	if err != nil {
		return nil, err
	}
	var items []model.ItemRequest
	if err := r.db.SelectContext(ctx, &items, q, args...); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) DecideItemRequest(ctx context.Context, id int, decision model.DecisionStatus, reply string) error {
	q := fmt.Sprintf(`update %s set status = $1, admin_reply = $2
	where id = $3 and status = $4`, itemRequestTableName)
	res, err := r.db.ExecContext(ctx, q, decision, reply, id, model.DecisionPending)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 { //nolint:errcheck
		return errs.ErrNotFound
	}
	return nil
}
