package contract

import (
	"context"

	"mindwell-be/internal/entity"
)

type SessionRepository interface {
	Save(ctx context.Context, session *entity.Session) error
	Find(ctx context.Context, id string) (*entity.Session, error)
	Delete(ctx context.Context, id string) error
}
