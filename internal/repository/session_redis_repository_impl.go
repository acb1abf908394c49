package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"medicompare/internal/domain/entity"
	domainRepo "medicompare/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const RedisSessionKeyPrefix = "flow_session:"

type sessionRedisRepository struct {
	client *redis.Client
	expiry time.Duration
}

// NewSessionRedisRepository stores each session as a JSON document with a TTL
func NewSessionRedisRepository(client *redis.Client, expiry time.Duration) domainRepo.SessionRepository {
	return &sessionRedisRepository{client: client, expiry: expiry}
}

func sessionKey(id uuid.UUID) string {
	return RedisSessionKeyPrefix + id.String()
}

func (r *sessionRedisRepository) Save(ctx context.Context, session *entity.FlowSession) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encode session %s: %w", session.ID, err)
	}
	if err := r.client.Set(ctx, sessionKey(session.ID), payload, r.expiry).Err(); err != nil {
		return fmt.Errorf("store session %s: %w", session.ID, err)
	}
	return nil
}

func (r *sessionRedisRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.FlowSession, error) {
	payload, err := r.client.Get(ctx, sessionKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("load session %s: %w", id, err)
	}

	var session entity.FlowSession
	if err := json.Unmarshal(payload, &session); err != nil {
		return nil, fmt.Errorf("decode session %s: %w", id, err)
	}
	if session.Results == nil {
		session.Results = []entity.SearchResult{}
	}
	return &session, nil
}

func (r *sessionRedisRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.client.Del(ctx, sessionKey(id)).Err(); err != nil {
		return fmt.Errorf("delete session %s: %w", id, err)
	}
	return nil
}
