package redisclient

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	"github.com/BruksfildServices01/clinic-scheduler/internal/config"
)

var ErrHoldNotAcquired = errors.New("slot hold not acquired")

// SlotHolder protege a janela entre o pré-check de conflito e o insert.
// É melhor-esforço: quem garante unicidade de verdade é o índice parcial
// do banco; a reserva só evita que duas requisições simultâneas no mesmo
// horário cheguem ambas ao insert.
type SlotHolder interface {
	WithSlotHold(
		ctx context.Context,
		doctorID uint,
		date string,
		hm string,
		fn func(ctx context.Context) error,
	) error
}

type redisSlotHolder struct {
	client *redis.Client
	cfg    *config.Config
}

func NewSlotHolder(client *redis.Client, cfg *config.Config) SlotHolder {
	return &redisSlotHolder{
		client: client,
		cfg:    cfg,
	}
}

func (h *redisSlotHolder) WithSlotHold(
	ctx context.Context,
	doctorID uint,
	date string,
	hm string,
	fn func(ctx context.Context) error,
) error {

	key := fmt.Sprintf("hold:slot:%d:%s:%s", doctorID, date, hm)
	token := uuid.NewString()

	ok, err := h.client.SetNX(ctx, key, token, h.cfg.SlotHoldTTL).Result()
	if err != nil {
		return fmt.Errorf("acquire slot hold: %w", err)
	}
	if !ok {
		return ErrHoldNotAcquired
	}

	defer func() {
		_ = h.release(ctx, key, token)
	}()

	return fn(ctx)
}

var releaseScript = redis.NewScript(`
local val = redis.call("GET", KEYS[1])
if val == ARGV[1] then
  return redis.call("DEL", KEYS[1])
else
  return 0
end
`)

func (h *redisSlotHolder) release(ctx context.Context, key, token string) error {
	_, err := releaseScript.Run(ctx, h.client, []string{key}, token).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("release slot hold: %w", err)
	}
	return nil
}
