package service

import (
	"context"
	"time"

	"mindwell-be/internal/dto"
	"mindwell-be/internal/entity"
	"mindwell-be/internal/pkg/logger"
	"mindwell-be/internal/pkg/serverutils"
	"mindwell-be/internal/repository/contract"
	"mindwell-be/internal/websocket"

	"github.com/google/uuid"
)

// CalmBroadcaster pushes session events to every open tab of a session.
type CalmBroadcaster interface {
	Send(sessionID string, event websocket.Event)
}

type ISessionService interface {
	Start(ctx context.Context) (*dto.SessionResponse, error)
	Show(ctx context.Context, id string) (*dto.SessionResponse, error)
	SetCalm(ctx context.Context, id string, calm bool) (*dto.SessionResponse, error)
	IsCalm(ctx context.Context, id string) bool
	RememberQuery(ctx context.Context, id string, query string)
}

type sessionService struct {
	sessionRepo contract.SessionRepository
	broadcaster CalmBroadcaster
	logger      logger.ILogger
}

func NewSessionService(
	sessionRepo contract.SessionRepository,
	broadcaster CalmBroadcaster,
	log logger.ILogger,
) ISessionService {
	return &sessionService{
		sessionRepo: sessionRepo,
		broadcaster: broadcaster,
		logger:      log,
	}
}

func (s *sessionService) Start(ctx context.Context) (*dto.SessionResponse, error) {
	session := &entity.Session{
		Id:        uuid.NewString(),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := s.sessionRepo.Save(ctx, session); err != nil {
		return nil, err
	}
	return toSessionResponse(session), nil
}

func (s *sessionService) Show(ctx context.Context, id string) (*dto.SessionResponse, error) {
	session, err := s.sessionRepo.Find(ctx, id)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, serverutils.NewApiError(404, "Session not found")
	}
	return toSessionResponse(session), nil
}

func (s *sessionService) SetCalm(ctx context.Context, id string, calm bool) (*dto.SessionResponse, error) {
	session, err := s.sessionRepo.Find(ctx, id)
	if err != nil {
		return nil, err
	}
	if session == nil {
		// The session may have expired mid-visit. Calm mode matters most in
		// exactly that moment, so recreate instead of failing.
		session = &entity.Session{
			Id:        id,
			CreatedAt: time.Now(),
		}
	}

	session.Calm = calm
	session.UpdatedAt = time.Now()
	if err := s.sessionRepo.Save(ctx, session); err != nil {
		return nil, err
	}

	if s.broadcaster != nil {
		s.broadcaster.Send(id, websocket.Event{
			Type: websocket.EventCalmMode,
			Data: map[string]interface{}{"calm": calm},
		})
	}

	s.logger.Info("SessionService", "Calm mode updated", map[string]interface{}{
		"session_id": id,
		"calm":       calm,
	})
	return toSessionResponse(session), nil
}

func (s *sessionService) IsCalm(ctx context.Context, id string) bool {
	if id == "" {
		return false
	}
	session, err := s.sessionRepo.Find(ctx, id)
	if err != nil || session == nil {
		return false
	}
	return session.Calm
}

// RememberQuery stores the last dispatched search so a reload can restore
// it. Best effort only.
func (s *sessionService) RememberQuery(ctx context.Context, id string, query string) {
	if id == "" {
		return
	}
	session, err := s.sessionRepo.Find(ctx, id)
	if err != nil || session == nil {
		return
	}
	session.LastQuery = query
	session.UpdatedAt = time.Now()
	if err := s.sessionRepo.Save(ctx, session); err != nil {
		s.logger.Warn("SessionService", "Failed to remember query", map[string]interface{}{
			"session_id": id,
			"error":      err.Error(),
		})
	}
}

func toSessionResponse(session *entity.Session) *dto.SessionResponse {
	return &dto.SessionResponse{
		SessionId: session.Id,
		Calm:      session.Calm,
		LastQuery: session.LastQuery,
	}
}
