package config

import (
	"context"
	"fmt"
	"math/rand"
	"os"

	"github.com/rs/zerolog"

	"github.com/rushteam/fooder/core"
	"github.com/rushteam/fooder/filter"
	"github.com/rushteam/fooder/neighbor"
	"github.com/rushteam/fooder/session"
	"github.com/rushteam/fooder/store"
)

// App 是按配置装配好的应用对象：数据提供者、菜谱目录、日志器。
// 由它创建的所有会话共享同一份只读数据。
type App struct {
	Config   *Config
	Provider core.TableProvider
	Catalog  core.Catalog
	Logger   zerolog.Logger

	kv core.HashStore // Redis 模式下持有连接，Close 时释放
}

// Build 按配置装配应用：
//   - redis.addr 非空：交互表与目录从 Redis 读取
//   - 否则：交互表从本地 CSV 读取并预加载，目录按需从 CSV 读取
func Build(ctx context.Context, cfg *Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	app := &App{Config: cfg, Logger: newLogger(cfg.Log.Level)}

	if cfg.Redis.Addr != "" {
		kv, err := store.NewRedisStore(cfg.Redis.Addr, cfg.Redis.DB)
		if err != nil {
			return nil, fmt.Errorf("connect redis: %w", err)
		}
		app.kv = kv
		app.Provider = &store.StoreProvider{Store: kv}
		app.Catalog = &store.StoreCatalog{Store: kv}
		return app, nil
	}

	provider := store.NewCSVProvider(cfg.DatasetPaths())
	if err := provider.Preload(ctx); err != nil {
		return nil, fmt.Errorf("preload datasets: %w", err)
	}
	app.Provider = provider
	if cfg.Datasets.Recipes != "" {
		app.Catalog = store.NewCSVCatalog(cfg.Datasets.Recipes)
	}
	return app, nil
}

// NewSession 为指定分区创建会话，应用配置中的选择器上下界、
// 过滤器（黑名单 + DSL）与随机种子。
func (a *App) NewSession(ctx context.Context, dishType string) (*session.User, error) {
	cfg := a.Config
	opts := []session.Option{
		session.WithLogger(a.Logger),
		session.WithSelector(neighbor.Selector{
			MinRows: cfg.Neighbors.MinRows,
			MaxRows: cfg.Neighbors.MaxRows,
		}),
	}
	if len(cfg.Suggest.Blacklist) > 0 {
		opts = append(opts, session.WithFilters(filter.NewBlacklist(cfg.Suggest.Blacklist)))
	}
	if cfg.Suggest.Filter != "" {
		opts = append(opts, session.WithFilters(&filter.DSLFilter{Expr: cfg.Suggest.Filter}))
	}
	if cfg.Suggest.Seed != 0 {
		opts = append(opts, session.WithRand(rand.New(rand.NewSource(cfg.Suggest.Seed))))
	}
	return session.New(ctx, dishType, a.Provider, opts...)
}

// Close 释放装配过程中持有的外部连接。
func (a *App) Close() error {
	if a.kv != nil {
		return a.kv.Close()
	}
	return nil
}

// newLogger 按配置级别构造日志器；空串或 disabled 不输出任何日志。
func newLogger(level string) zerolog.Logger {
	if level == "" || level == "disabled" {
		return zerolog.Nop()
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(os.Stderr).Level(lvl).With().Timestamp().Logger()
}
