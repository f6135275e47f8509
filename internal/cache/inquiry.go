package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v9"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/adroitdesign/studio-api/internal/model"
)

const cachedInquiryTimeToLive = 10 * time.Minute

// InquiryCache is a read-through cache for single-inquiry admin lookups.
// Entries are evicted on status changes and deletes; everything else just
// expires.
type InquiryCache interface {
	FindByID(ctx context.Context, id int) (*model.Inquiry, error)
	Cache(ctx context.Context, i *model.Inquiry) error
	EvictByID(ctx context.Context, id int) error
}

type redisInquiryCache struct {
	client *redis.Client
}

func NewRedisInquiryCache(client *redis.Client) InquiryCache {
	return &redisInquiryCache{client: client}
}

func (r *redisInquiryCache) FindByID(ctx context.Context, id int) (*model.Inquiry, error) {
	res, err := r.client.Get(ctx, r.key(id)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var i model.Inquiry
	if err := msgpack.Unmarshal([]byte(res), &i); err != nil {
		return nil, err
	}
	return &i, nil
}

func (r *redisInquiryCache) Cache(ctx context.Context, i *model.Inquiry) error {
	encoded, err := msgpack.Marshal(i)
	if err != nil {
		return err
	}

	if _, err := r.client.SetNX(ctx, r.key(i.ID), encoded, cachedInquiryTimeToLive).Result(); err != nil {
		return err
	}
	return nil
}

func (r *redisInquiryCache) EvictByID(ctx context.Context, id int) error {
	if _, err := r.client.Del(ctx, r.key(id)).Result(); err != nil {
		return err
	}
	return nil
}

func (r *redisInquiryCache) key(id int) string {
	return fmt.Sprintf("inquiry:%d", id)
}
