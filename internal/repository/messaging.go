package repository

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"

	"github.com/videgrenier/marketplace-service/internal/errs"
	"github.com/videgrenier/marketplace-service/internal/model"
)

const conversationColumns = `id, participant_a, participant_b, listing_uid, created_at, updated_at`

// GetOrCreateConversation is idempotent: participants are stored in sorted
// order so the unique index makes repeated starts return the same row.
func (r *repository) GetOrCreateConversation(ctx context.Context, me, other string, listingUid *string) (model.Conversation, error) {
	a, b := me, other
	if a > b {
		a, b = b, a
	}

	q := fmt.Sprintf(`insert into %s (participant_a, participant_b, listing_uid)
	values ($1, $2, $3)
	on conflict do nothing
	returning %s`, conversationTableName, conversationColumns)
	var conv model.Conversation
	err := r.db.GetContext(ctx, &conv, q, a, b, listingUid)
	if err == nil {
		return conv, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return model.Conversation{}, err
	}

	// Already exists; fetch it.
	sel := qb.Select(conversationColumns).
		From(conversationTableName).
		Where(sq.Eq{"participant_a": a, "participant_b": b})
	if listingUid != nil {
		sel = sel.Where(sq.Eq{"listing_uid": *listingUid})
	} else {
		sel = sel.Where("listing_uid is null")
	}
	query, args, err := sel.Limit(1).ToSql()
	if err != nil {
		return model.Conversation{}, err
	}
	if err := r.db.GetContext(ctx, &conv, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Conversation{}, errs.ErrNotFound
		}
		return model.Conversation{}, err
	}
	return conv, nil
}

func (r *repository) ListConversations(ctx context.Context, username string) ([]model.ConversationView, error) {
	q, args, err := qb.Select(conversationColumns).
		From(conversationTableName).
		Where(sq.Or{
			sq.Eq{"participant_a": username},
			sq.Eq{"participant_b": username},
		}).
		OrderBy("updated_at desc").
		ToSql()
	if err != nil {
		return nil, err
	}
	var convs []model.Conversation
	if err := r.db.SelectContext(ctx, &convs, q, args...); err != nil {
		return nil, err
	}

	views := make([]model.ConversationView, 0, len(convs))
	for _, conv := range convs {
		view := model.ConversationView{Conversation: conv, Other: conv.ParticipantA}
		if view.Other == username {
			view.Other = conv.ParticipantB
		}

		var last model.Message
		q := fmt.Sprintf(`select id, conversation_id, sender, content, read, created_at
	from %s where conversation_id = $1 order by created_at desc limit 1`, messageTableName)
		switch err := r.db.GetContext(ctx, &last, q, conv.ID); {
		case err == nil:
			view.LastMessage = &last
		case !errors.Is(err, sql.ErrNoRows):
			return nil, err
		}

		q = fmt.Sprintf(`select count(*) from %s
	where conversation_id = $1 and read = false and sender <> $2`, messageTableName)
		if err := r.db.GetContext(ctx, &view.Unread, q, conv.ID, username); err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}

// GetConversationMessages returns the thread and marks the caller's
// incoming messages read. Callers that are not participants get NotFound.
func (r *repository) GetConversationMessages(ctx context.Context, convID int, username string) ([]model.Message, error) {
	if err := r.checkParticipant(ctx, convID, username); err != nil {
		return nil, err
	}

	q := fmt.Sprintf(`update %s set read = true
	where conversation_id = $1 and read = false and sender <> $2`, messageTableName)
	if _, err := r.db.ExecContext(ctx, q, convID, username); err != nil {
		return nil, err
	}

	query, args, err := qb.Select("id", "conversation_id", "sender", "content", "read", "created_at").
		From(messageTableName).
		Where(sq.Eq{"conversation_id": convID}).
		OrderBy("created_at").
		ToSql()
	if err != nil {
		return nil, err
	}
	var msgs []model.Message
	if err := r.db.SelectContext(ctx, &msgs, query, args...); err != nil {
		return nil, err
	}
	return msgs, nil
}

func (r *repository) CreateMessage(ctx context.Context, convID int, sender, content string) (model.Message, error) {
	if err := r.checkParticipant(ctx, convID, sender); err != nil {
		return model.Message{}, err
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return model.Message{}, err
	}
	defer tx.Rollback() //nolint:errcheck

	q := fmt.Sprintf(`insert into %s (conversation_id, sender, content)
	values ($1, $2, $3)
	returning id, conversation_id, sender, content, read, created_at`, messageTableName)
	var msg model.Message
	if err := tx.GetContext(ctx, &msg, q, convID, sender, content); err != nil {
		return model.Message{}, err
	}

	q = fmt.Sprintf(`update %s set updated_at = now() where id = $1`, conversationTableName)
	if _, err := tx.ExecContext(ctx, q, convID); err != nil {
		return model.Message{}, err
	}
	return msg, tx.Commit()
}

func (r *repository) checkParticipant(ctx context.Context, convID int, username string) error {
	q := fmt.Sprintf(`select count(*) from %s
	where id = $1 and (participant_a = $2 or participant_b = $2)`, conversationTableName)
	var n int
	if err := r.db.GetContext(ctx, &n, q, convID, username); err != nil {
		return err
	}
	if n == 0 {
		return errs.ErrNotFound
	}
	return nil
}
