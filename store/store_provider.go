package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rushteam/fooder/core"
)

// interactionKeyPrefix 是交互表在 KV 存储中的 key 前缀。
const interactionKeyPrefix = "fooder:interactions:"

// interactionJSON 是交互记录的序列化形态（与 CSV 数据集同名字段）。
type interactionJSON struct {
	UserID   int64 `json:"user_id"`
	RecipeID int64 `json:"recipe_id"`
	Rate     int8  `json:"rate"`
}

// StoreProvider 从 KV 存储读取序列化的交互表。
// 离线任务用 SaveTable 写入，在线进程用 Load 读取；
// 配合 RedisStore 即可让多个实例共享同一份数据集。
type StoreProvider struct {
	Store core.Store
}

var _ core.TableProvider = (*StoreProvider)(nil)

func (p *StoreProvider) Load(ctx context.Context, dish core.DishType) (*core.InteractionTable, error) {
	data, err := p.Store.Get(ctx, interactionKeyPrefix+string(dish))
	if err != nil {
		return nil, err
	}

	var rows []interactionJSON
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, core.NewDomainError(core.ModuleStore, core.ErrorCodeDataShape,
			fmt.Sprintf("store: malformed interaction payload for %s: %v", dish, err))
	}

	records := make([]core.InteractionRecord, 0, len(rows))
	for i, row := range rows {
		if !core.Rating(row.Rate).Valid() {
			return nil, core.NewDomainError(core.ModuleStore, core.ErrorCodeDataShape,
				fmt.Sprintf("store: bad rate %d at row %d for %s", row.Rate, i, dish))
		}
		records = append(records, core.InteractionRecord{
			UserID:   row.UserID,
			RecipeID: row.RecipeID,
			Rating:   core.Rating(row.Rate),
		})
	}
	return core.NewInteractionTable(dish, records), nil
}

// SaveTable 将交互表序列化写入 KV 存储（离线侧使用）。
func SaveTable(ctx context.Context, s core.Store, table *core.InteractionTable) error {
	rows := make([]interactionJSON, 0, table.Len())
	for _, r := range table.Records() {
		rows = append(rows, interactionJSON{
			UserID:   r.UserID,
			RecipeID: r.RecipeID,
			Rate:     int8(r.Rating),
		})
	}
	data, err := json.Marshal(rows)
	if err != nil {
		return err
	}
	return s.Set(ctx, interactionKeyPrefix+string(table.DishType()), data)
}
