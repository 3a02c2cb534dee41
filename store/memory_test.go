package store

import (
	"context"
	"testing"

	"github.com/rushteam/fooder/core"
)

func TestMemoryStore_GetSetDelete(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore()

	if _, err := m.Get(ctx, "missing"); !core.IsStoreNotFound(err) {
		t.Errorf("Get(missing) = %v, want ErrStoreNotFound", err)
	}

	if err := m.Set(ctx, "k", []byte("v")); err != nil {
		t.Fatalf("Set = %v", err)
	}
	got, err := m.Get(ctx, "k")
	if err != nil || string(got) != "v" {
		t.Errorf("Get = %q, %v", got, err)
	}

	if err := m.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete = %v", err)
	}
	if _, err := m.Get(ctx, "k"); !core.IsStoreNotFound(err) {
		t.Errorf("Get after Delete = %v, want ErrStoreNotFound", err)
	}
}

func TestMemoryStore_BatchGet(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore()
	m.Set(ctx, "a", []byte("1"))
	m.Set(ctx, "b", []byte("2"))

	got, err := m.BatchGet(ctx, []string{"a", "b", "missing"})
	if err != nil {
		t.Fatalf("BatchGet = %v", err)
	}
	if len(got) != 2 || string(got["a"]) != "1" || string(got["b"]) != "2" {
		t.Errorf("BatchGet = %v", got)
	}
}

func TestMemoryStore_Hash(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore()

	if _, err := m.HGet(ctx, "h", "f"); !core.IsStoreNotFound(err) {
		t.Errorf("HGet(missing) = %v, want ErrStoreNotFound", err)
	}

	m.HSet(ctx, "h", "f1", []byte("v1"))
	m.HSet(ctx, "h", "f2", []byte("v2"))

	got, err := m.HGet(ctx, "h", "f1")
	if err != nil || string(got) != "v1" {
		t.Errorf("HGet = %q, %v", got, err)
	}

	all, err := m.HGetAll(ctx, "h")
	if err != nil || len(all) != 2 {
		t.Errorf("HGetAll = %v, %v", all, err)
	}
}
