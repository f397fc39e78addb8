package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/pkg/errors"
	redislib "github.com/redis/go-redis/v9"

	"github.com/fastygo/portfolio/domain"
	"github.com/fastygo/portfolio/repository"
)

const sessionPrefix = "portfolio:session:"

type sessionRepository struct {
	client *redislib.Client
	ttl    time.Duration
}

// NewSessionRepository creates a Redis-backed session store. Keys expire
// together with the session they hold.
func NewSessionRepository(client *redislib.Client, ttl time.Duration) repository.SessionRepository {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &sessionRepository{client: client, ttl: ttl}
}

func (r *sessionRepository) Get(ctx context.Context, id string) (*domain.Session, error) {
	if id == "" {
		return nil, domain.ErrSessionNotFound
	}
	payload, err := r.client.Get(ctx, sessionPrefix+id).Bytes()
	if err != nil {
		if errors.Is(err, redislib.Nil) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, errors.Wrap(err, "get session")
	}

	var session domain.Session
	if err := json.Unmarshal(payload, &session); err != nil {
		return nil, errors.Wrap(err, "decode session")
	}
	if session.IsExpired(time.Now()) {
		return nil, domain.ErrSessionNotFound
	}
	return &session, nil
}

func (r *sessionRepository) Save(ctx context.Context, session *domain.Session) error {
	if session == nil || session.ID == "" {
		return domain.ErrInvalidPayload
	}

	now := time.Now()
	if session.CreatedAt.IsZero() {
		session.CreatedAt = now
	}
	if !session.ExpiresAt.After(session.CreatedAt) {
		session.ExpiresAt = session.CreatedAt.Add(r.ttl)
	}

	payload, err := json.Marshal(session)
	if err != nil {
		return errors.Wrap(err, "encode session")
	}

	ttl := session.ExpiresAt.Sub(now)
	if ttl <= 0 {
		ttl = r.ttl
	}
	return errors.Wrap(r.client.Set(ctx, sessionPrefix+session.ID, payload, ttl).Err(), "save session")
}

func (r *sessionRepository) Delete(ctx context.Context, id string) error {
	return errors.Wrap(r.client.Del(ctx, sessionPrefix+id).Err(), "delete session")
}
