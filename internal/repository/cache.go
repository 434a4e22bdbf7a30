package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tm-acme-shop/acme-shop-lawncare-service/internal/config"
	"github.com/tm-acme-shop/acme-shop-lawncare-service/internal/logging"
	"github.com/tm-acme-shop/acme-shop-lawncare-service/internal/models"
)

const (
	invoiceKeyPrefix = "invoice:"
	defaultCacheTTL  = 5 * time.Minute
)

// RedisInvoiceCache implements InvoiceCache using Redis.
type RedisInvoiceCache struct {
	client redis.Cmdable
	ttl    time.Duration
	logger *logging.LoggerV2
}

// NewRedisInvoiceCache connects a cache to the configured Redis server.
func NewRedisInvoiceCache(cfg config.RedisConfig) *RedisInvoiceCache {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	return NewRedisInvoiceCacheWithClient(client, cfg.TTL)
}

// NewRedisInvoiceCacheWithClient wraps an existing client.
func NewRedisInvoiceCacheWithClient(client redis.Cmdable, ttl time.Duration) *RedisInvoiceCache {
	if ttl == 0 {
		ttl = defaultCacheTTL
	}
	return &RedisInvoiceCache{
		client: client,
		ttl:    ttl,
		logger: logging.NewLoggerV2("invoice-cache"),
	}
}

// Get returns the cached invoice, or nil on a miss.
func (c *RedisInvoiceCache) Get(ctx context.Context, id string) (*models.Invoice, error) {
	data, err := c.client.Get(ctx, invoiceKeyPrefix+id).Bytes()
	if err == redis.Nil {
		c.logger.Debug("Cache miss", logging.Fields{"invoice_id": id})
		return nil, nil
	}
	if err != nil {
		c.logger.Error("Cache get error", logging.Fields{
			"invoice_id": id,
			"error":      err.Error(),
		})
		return nil, err
	}

	var inv models.Invoice
	if err := json.Unmarshal(data, &inv); err != nil {
		return nil, err
	}

	c.logger.Debug("Cache hit", logging.Fields{"invoice_id": id})
	return &inv, nil
}

func (c *RedisInvoiceCache) Set(ctx context.Context, inv *models.Invoice) error {
	data, err := json.Marshal(inv)
	if err != nil {
		return err
	}

	if err := c.client.Set(ctx, invoiceKeyPrefix+inv.ID, data, c.ttl).Err(); err != nil {
		c.logger.Error("Cache set error", logging.Fields{
			"invoice_id": inv.ID,
			"error":      err.Error(),
		})
		return err
	}

	c.logger.Debug("Invoice cached", logging.Fields{
		"invoice_id": inv.ID,
		"ttl":        c.ttl.String(),
	})
	return nil
}

func (c *RedisInvoiceCache) Delete(ctx context.Context, id string) error {
	if err := c.client.Del(ctx, invoiceKeyPrefix+id).Err(); err != nil {
		c.logger.Error("Cache delete error", logging.Fields{
			"invoice_id": id,
			"error":      err.Error(),
		})
		return err
	}
	return nil
}

// Ping checks the Redis connection.
func (c *RedisInvoiceCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}
