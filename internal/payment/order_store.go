package payment

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrOrderNotFound is returned when no record exists for an order id.
var ErrOrderNotFound = errors.New("order not found")

// OrderStatus tracks the local lifecycle of a gateway order.
type OrderStatus string

const (
	OrderStatusCreated OrderStatus = "created"
	OrderStatusPaid    OrderStatus = "paid"
)

// OrderRecord is the locally kept record of a gateway order.
type OrderRecord struct {
	ID        string      `json:"id"`
	Amount    int64       `json:"amount"`
	Currency  string      `json:"currency"`
	Receipt   string      `json:"receipt"`
	UserID    string      `json:"user_id"`
	Status    OrderStatus `json:"status"`
	PaymentID string      `json:"payment_id,omitempty"`
	Signature string      `json:"signature,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// OrderStore persists order records keyed by gateway order id.
type OrderStore interface {
	Save(ctx context.Context, record *OrderRecord) error
	Get(ctx context.Context, orderID string) (*OrderRecord, error)
}

const orderKeyPrefix = "payment:order:"

type redisOrderStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisOrderStore keeps order records in Redis with a bounded TTL, so
// records survive process restarts and are shared across instances.
func NewRedisOrderStore(client *redis.Client, ttl time.Duration) OrderStore {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &redisOrderStore{client: client, ttl: ttl}
}

func (s *redisOrderStore) Save(ctx context.Context, record *OrderRecord) error {
	payload, err := json.Marshal(record)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, orderKeyPrefix+record.ID, payload, s.ttl).Err()
}

func (s *redisOrderStore) Get(ctx context.Context, orderID string) (*OrderRecord, error) {
	payload, err := s.client.Get(ctx, orderKeyPrefix+orderID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	var record OrderRecord
	if err := json.Unmarshal(payload, &record); err != nil {
		return nil, err
	}
	return &record, nil
}
