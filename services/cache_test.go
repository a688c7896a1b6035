package services_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/vnkhanh/animehub-backend/services"
)

func TestMemoryCacheExpiry(t *testing.T) {
	cache := services.NewMemoryCache()

	cache.Set("key", "value", 50*time.Millisecond)

	value, ok := cache.Get("key")
	assert.True(t, ok)
	assert.Equal(t, "value", value)

	time.Sleep(80 * time.Millisecond)

	_, ok = cache.Get("key")
	assert.False(t, ok)
}

func TestMemoryCacheMiss(t *testing.T) {
	cache := services.NewMemoryCache()

	_, ok := cache.Get("không tồn tại")
	assert.False(t, ok)
}

func TestMemoryCacheOverwrite(t *testing.T) {
	cache := services.NewMemoryCache()

	cache.Set("key", "cũ", time.Minute)
	cache.Set("key", "mới", time.Minute)

	value, ok := cache.Get("key")
	assert.True(t, ok)
	assert.Equal(t, "mới", value)
}

func TestNoopCacheNeverHits(t *testing.T) {
	cache := services.NoopCache{}

	cache.Set("key", "value", time.Minute)
	_, ok := cache.Get("key")
	assert.False(t, ok)
}
