package api

import (
	"testing"
	"time"

	icache "TradeScout/internal/service/cache"
)

func TestCacheTTLConfigurable(t *testing.T) {
	h := NewSignalsHandler(nil, nil, nil)
	h.SetCache(icache.NewTTLCache())
	h.SetCacheTTL(time.Millisecond)

	h.store("k", "extrema", map[string]int{"a": 1})
	if _, ok := h.cached("k", "extrema"); !ok {
		t.Fatalf("expected immediate cache hit")
	}

	time.Sleep(10 * time.Millisecond)
	if _, ok := h.cached("k", "extrema"); ok {
		t.Fatalf("expected entry to expire after the configured ttl")
	}
}

func TestCacheTTLIgnoresNonPositive(t *testing.T) {
	h := NewSignalsHandler(nil, nil, nil)
	before := h.cacheTTL
	h.SetCacheTTL(0)
	if h.cacheTTL != before {
		t.Fatalf("zero ttl must not override the default")
	}
	h.SetCacheTTL(-time.Second)
	if h.cacheTTL != before {
		t.Fatalf("negative ttl must not override the default")
	}
}
