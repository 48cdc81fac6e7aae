package memory

import (
	"context"
	"time"

	"mindwell-be/internal/entity"

	"github.com/patrickmn/go-cache"
)

type SessionRepository struct {
	cache *cache.Cache
}

func NewSessionRepository(ttl time.Duration) *SessionRepository {
	// Sessions expire after the configured TTL; expired items are purged
	// every 10 minutes
	c := cache.New(ttl, 10*time.Minute)
	return &SessionRepository{
		cache: c,
	}
}

func (r *SessionRepository) Save(_ context.Context, session *entity.Session) error {
	r.cache.Set(session.Id, session, cache.DefaultExpiration)
	return nil
}

func (r *SessionRepository) Find(_ context.Context, id string) (*entity.Session, error) {
	if x, found := r.cache.Get(id); found {
		return x.(*entity.Session), nil
	}
	return nil, nil
}

func (r *SessionRepository) Delete(_ context.Context, id string) error {
	r.cache.Delete(id)
	return nil
}
