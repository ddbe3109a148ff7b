package redisclient

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/go-redis/redis/v8"

	"github.com/BruksfildServices01/clinic-scheduler/internal/config"
)

// IdempotencyStore lembra qual agendamento uma chave de idempotência já
// criou. Re-tentar um create sem chave pode duplicar reserva; com chave,
// a repetição devolve o mesmo registro.
type IdempotencyStore struct {
	client *redis.Client
	cfg    *config.Config
}

func NewIdempotencyStore(client *redis.Client, cfg *config.Config) *IdempotencyStore {
	return &IdempotencyStore{
		client: client,
		cfg:    cfg,
	}
}

func (s *IdempotencyStore) key(key string) string {
	return "idem:appointment:" + key
}

// Lookup devolve o id do agendamento já criado para a chave, se houver.
func (s *IdempotencyStore) Lookup(ctx context.Context, key string) (uint, bool, error) {
	val, err := s.client.Get(ctx, s.key(key)).Result()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("lookup idempotency key: %w", err)
	}

	id, err := strconv.ParseUint(val, 10, 64)
	if err != nil {
		return 0, false, nil
	}
	return uint(id), true, nil
}

func (s *IdempotencyStore) Remember(ctx context.Context, key string, appointmentID uint) error {
	err := s.client.Set(
		ctx,
		s.key(key),
		strconv.FormatUint(uint64(appointmentID), 10),
		s.cfg.IdempotencyTTL,
	).Err()
	if err != nil {
		return fmt.Errorf("remember idempotency key: %w", err)
	}
	return nil
}
