package config

import (
	"context"
	"testing"

	"github.com/rushteam/fooder/core"
)

func TestBuild_CSVMode(t *testing.T) {
	ctx := context.Background()

	var cfg Config
	cfg.Datasets.Main = writeFile(t, "main.csv",
		"user_id,recipe_id,rate\n1,101,1\n2,102,1\n4,102,1\n4,103,1\n")
	cfg.Suggest.Seed = 42
	cfg.Suggest.Blacklist = []int64{101}

	app, err := Build(ctx, &cfg)
	if err != nil {
		t.Fatalf("Build = %v", err)
	}
	defer app.Close()

	if app.Catalog != nil {
		t.Error("Catalog != nil without recipes dataset")
	}

	table, err := app.Provider.Load(ctx, core.DishTypeMain)
	if err != nil {
		t.Fatalf("Provider.Load = %v", err)
	}
	if table.Len() != 4 {
		t.Errorf("Len = %d, want 4", table.Len())
	}

	user, err := app.NewSession(ctx, "main")
	if err != nil {
		t.Fatalf("NewSession = %v", err)
	}
	// 101 在黑名单里，冷启动只能在 102/103 中选
	for i := 0; i < 10; i++ {
		id, err := user.Suggest(ctx)
		if err != nil {
			t.Fatalf("Suggest = %v", err)
		}
		if id == 101 {
			t.Fatal("blacklisted recipe 101 suggested")
		}
		if err := user.Undo(id); err == nil {
			t.Fatal("Undo of unrated recipe should fail")
		}
	}
}

func TestBuild_InvalidConfig(t *testing.T) {
	var cfg Config
	if _, err := Build(context.Background(), &cfg); err == nil {
		t.Error("Build = nil error for empty config")
	}
}

func TestBuild_MissingDataset(t *testing.T) {
	var cfg Config
	cfg.Datasets.Main = "/does/not/exist.csv"
	if _, err := Build(context.Background(), &cfg); err == nil {
		t.Error("Build = nil error for missing dataset file")
	}
}
