package store

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/rushteam/fooder/core"
	"github.com/rushteam/fooder/pkg/conv"
)

// CSVProvider 从本地 CSV 数据集加载交互表。
//
// 数据集格式（与离线预处理产出一致）：表头包含 user_id / recipe_id / rate
// 三列（rate 也接受 rating 列名），每行一条交互，评价取值 ±1。
//
// 每个分区只加载一次并缓存，之后的 Load 返回同一张只读表；
// 表内容非法（缺列、非整数、评价越界）按 DATA_SHAPE 处理，加载期致命。
type CSVProvider struct {
	paths map[core.DishType]string

	mu     sync.Mutex
	tables map[core.DishType]*core.InteractionTable
}

var _ core.TableProvider = (*CSVProvider)(nil)

// NewCSVProvider 以分区到文件路径的映射构造加载器。
func NewCSVProvider(paths map[core.DishType]string) *CSVProvider {
	return &CSVProvider{
		paths:  paths,
		tables: make(map[core.DishType]*core.InteractionTable),
	}
}

// Load 返回指定分区的交互表，首次调用触发文件读取。
// 文件读取在锁外进行，Preload 的并发加载才真正并行。
func (p *CSVProvider) Load(ctx context.Context, dish core.DishType) (*core.InteractionTable, error) {
	if t := p.cached(dish); t != nil {
		return t, nil
	}
	path, ok := p.paths[dish]
	if !ok {
		return nil, core.NewDomainError(core.ModuleStore, core.ErrorCodeNotFound,
			fmt.Sprintf("store: no dataset path configured for dish type %q", dish))
	}

	records, err := readInteractionCSV(path)
	if err != nil {
		return nil, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if t, ok := p.tables[dish]; ok {
		// 并发加载时另一条先完成，丢弃本次结果保证"同一张表"的契约
		return t, nil
	}
	t := core.NewInteractionTable(dish, records)
	p.tables[dish] = t
	return t, nil
}

func (p *CSVProvider) cached(dish core.DishType) *core.InteractionTable {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.tables[dish]
}

// Preload 并发加载全部已配置分区，供进程启动时一次性完成 I/O。
func (p *CSVProvider) Preload(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	for dish := range p.paths {
		dish := dish
		g.Go(func() error {
			_, err := p.Load(ctx, dish)
			return err
		})
	}
	return g.Wait()
}

func readInteractionCSV(path string) ([]core.InteractionRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read dataset header: %w", err)
	}

	userCol, recipeCol, rateCol := -1, -1, -1
	for i, name := range header {
		switch name {
		case "user_id":
			userCol = i
		case "recipe_id":
			recipeCol = i
		case "rate", "rating":
			rateCol = i
		}
	}
	if userCol < 0 || recipeCol < 0 || rateCol < 0 {
		return nil, dataShapeErrorf("dataset %s: missing user_id/recipe_id/rate columns", path)
	}

	records := make([]core.InteractionRecord, 0, 1024)
	for line := 2; ; line++ {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read dataset row: %w", err)
		}

		userID, err := conv.ParseInt64(row[userCol])
		if err != nil {
			return nil, dataShapeErrorf("dataset %s line %d: bad user_id %q", path, line, row[userCol])
		}
		recipeID, err := conv.ParseInt64(row[recipeCol])
		if err != nil {
			return nil, dataShapeErrorf("dataset %s line %d: bad recipe_id %q", path, line, row[recipeCol])
		}
		rate, err := conv.ParseInt64(row[rateCol])
		if err != nil || !core.Rating(rate).Valid() {
			return nil, dataShapeErrorf("dataset %s line %d: bad rate %q", path, line, row[rateCol])
		}

		records = append(records, core.InteractionRecord{
			UserID:   userID,
			RecipeID: recipeID,
			Rating:   core.Rating(rate),
		})
	}
	return records, nil
}

func dataShapeErrorf(format string, args ...any) *core.DomainError {
	return core.NewDomainError(core.ModuleStore, core.ErrorCodeDataShape, fmt.Sprintf(format, args...))
}
