package session

import (
	"context"
	"encoding/json"
	"errors"

	"loantrack/internal/domain/user"
	"loantrack/pkg/id"

	"github.com/redis/go-redis/v9"
)

// CookieName carries the session token between requests.
const CookieName = "loantrack_session"

var ErrNotFound = errors.New("session not found")

type Session struct {
	Token    string    `json:"-"`
	Username string    `json:"username"`
	Role     user.Role `json:"role"`
}

type Store interface {
	Create(ctx context.Context, username string, role user.Role) (*Session, error)
	Get(ctx context.Context, token string) (*Session, error)
	Delete(ctx context.Context, token string) error
}

type RedisStore struct{ rdb *redis.Client }

func NewRedisStore(rdb *redis.Client) *RedisStore { return &RedisStore{rdb: rdb} }

func sessionKey(token string) string { return "sess:" + token }

// Create stores the session without a TTL: it lives until an explicit logout.
func (s *RedisStore) Create(ctx context.Context, username string, role user.Role) (*Session, error) {
	sess := &Session{Token: id.NewID32(), Username: username, Role: role}
	payload, err := json.Marshal(sess)
	if err != nil {
		return nil, err
	}
	if err := s.rdb.Set(ctx, sessionKey(sess.Token), payload, 0).Err(); err != nil {
		return nil, err
	}
	return sess, nil
}

func (s *RedisStore) Get(ctx context.Context, token string) (*Session, error) {
	v, err := s.rdb.Get(ctx, sessionKey(token)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	var sess Session
	if err := json.Unmarshal(v, &sess); err != nil {
		return nil, err
	}
	sess.Token = token
	return &sess, nil
}

func (s *RedisStore) Delete(ctx context.Context, token string) error {
	return s.rdb.Del(ctx, sessionKey(token)).Err()
}
