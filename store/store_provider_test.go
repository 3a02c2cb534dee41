package store

import (
	"context"
	"testing"

	"github.com/rushteam/fooder/core"
)

func TestStoreProvider_RoundTrip(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryStore()

	want := core.NewInteractionTable(core.DishTypeMain, []core.InteractionRecord{
		{UserID: 1, RecipeID: 101, Rating: core.Like},
		{UserID: 2, RecipeID: 102, Rating: core.Dislike},
	})
	if err := SaveTable(ctx, kv, want); err != nil {
		t.Fatalf("SaveTable = %v", err)
	}

	p := &StoreProvider{Store: kv}
	got, err := p.Load(ctx, core.DishTypeMain)
	if err != nil {
		t.Fatalf("Load = %v", err)
	}
	if got.Len() != want.Len() {
		t.Fatalf("Len = %d, want %d", got.Len(), want.Len())
	}
	for i, r := range got.Records() {
		if r != want.Records()[i] {
			t.Errorf("records[%d] = %+v, want %+v", i, r, want.Records()[i])
		}
	}
}

func TestStoreProvider_MissingDish(t *testing.T) {
	p := &StoreProvider{Store: NewMemoryStore()}
	_, err := p.Load(context.Background(), core.DishTypeDessert)
	if !core.IsStoreNotFound(err) {
		t.Errorf("Load = %v, want ErrStoreNotFound", err)
	}
}

func TestStoreProvider_MalformedPayload(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryStore()
	kv.Set(ctx, "fooder:interactions:main", []byte("not json"))

	p := &StoreProvider{Store: kv}
	if _, err := p.Load(ctx, core.DishTypeMain); !core.IsDataShape(err) {
		t.Errorf("Load = %v, want DATA_SHAPE", err)
	}
}

func TestStoreProvider_InvalidRate(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryStore()
	kv.Set(ctx, "fooder:interactions:main",
		[]byte(`[{"user_id":1,"recipe_id":101,"rate":5}]`))

	p := &StoreProvider{Store: kv}
	if _, err := p.Load(ctx, core.DishTypeMain); !core.IsDataShape(err) {
		t.Errorf("Load = %v, want DATA_SHAPE", err)
	}
}
