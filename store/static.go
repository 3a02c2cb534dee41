package store

import (
	"context"
	"fmt"

	"github.com/rushteam/fooder/core"
)

// StaticProvider 是固定表的 TableProvider，用于测试与原型：
// 直接以内存记录构造，不做任何 I/O。
type StaticProvider struct {
	tables map[core.DishType]*core.InteractionTable
}

var _ core.TableProvider = (*StaticProvider)(nil)

// NewStaticProvider 创建空的固定表提供者。
func NewStaticProvider() *StaticProvider {
	return &StaticProvider{tables: make(map[core.DishType]*core.InteractionTable)}
}

// WithTable 注册一个分区的记录，返回自身便于链式构造。
func (p *StaticProvider) WithTable(dish core.DishType, records []core.InteractionRecord) *StaticProvider {
	p.tables[dish] = core.NewInteractionTable(dish, records)
	return p
}

func (p *StaticProvider) Load(ctx context.Context, dish core.DishType) (*core.InteractionTable, error) {
	t, ok := p.tables[dish]
	if !ok {
		return nil, core.NewDomainError(core.ModuleStore, core.ErrorCodeNotFound,
			fmt.Sprintf("store: no table registered for dish type %q", dish))
	}
	return t, nil
}
