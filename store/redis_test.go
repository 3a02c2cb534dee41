package store

import (
	"context"
	"testing"

	"github.com/rushteam/fooder/core"
)

// TestRedisStore_RoundTrip 测试 Redis 存储的基本读写。
// 注意：需要本地有可用的 Redis 才能运行。
func TestRedisStore_RoundTrip(t *testing.T) {
	t.Skip("需要本地 Redis 才能运行")

	ctx := context.Background()
	r, err := NewRedisStore("localhost:6379", 15)
	if err != nil {
		t.Fatalf("NewRedisStore = %v", err)
	}
	defer r.Close()

	key := "fooder:test:key"
	defer r.Delete(ctx, key)

	if err := r.Set(ctx, key, []byte("v")); err != nil {
		t.Fatalf("Set = %v", err)
	}
	got, err := r.Get(ctx, key)
	if err != nil || string(got) != "v" {
		t.Errorf("Get = %q, %v", got, err)
	}

	if _, err := r.Get(ctx, "fooder:test:missing"); !core.IsStoreNotFound(err) {
		t.Errorf("Get(missing) = %v, want ErrStoreNotFound", err)
	}

	hashKey := "fooder:test:hash"
	defer r.Delete(ctx, hashKey)
	if err := r.HSet(ctx, hashKey, "f", []byte("hv")); err != nil {
		t.Fatalf("HSet = %v", err)
	}
	if got, err := r.HGet(ctx, hashKey, "f"); err != nil || string(got) != "hv" {
		t.Errorf("HGet = %q, %v", got, err)
	}
	if _, err := r.HGet(ctx, hashKey, "missing"); !core.IsStoreNotFound(err) {
		t.Errorf("HGet(missing field) = %v, want ErrStoreNotFound", err)
	}
}
