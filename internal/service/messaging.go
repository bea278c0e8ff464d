package service

import (
	"context"

	"github.com/videgrenier/marketplace-service/internal/errs"
	"github.com/videgrenier/marketplace-service/internal/model"
)

func (s *Service) StartConversation(ctx context.Context, me string, req model.StartConversationRequest) (model.Conversation, error) {
	if req.With == me {
		return model.Conversation{}, errs.ErrSelfConversation
	}
	if err := s.repo.EnsureUser(ctx, me); err != nil {
		return model.Conversation{}, err
	}
	return s.repo.GetOrCreateConversation(ctx, me, req.With, req.ListingUid)
}

func (s *Service) ListConversations(ctx context.Context, username string) ([]model.ConversationView, error) {
	return s.repo.ListConversations(ctx, username)
}

func (s *Service) GetConversationMessages(ctx context.Context, convID int, username string) ([]model.Message, error) {
	return s.repo.GetConversationMessages(ctx, convID, username)
}

func (s *Service) SendMessage(ctx context.Context, convID int, sender, content string) (model.Message, error) {
	return s.repo.CreateMessage(ctx, convID, sender, content)
}
