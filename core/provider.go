package core

import "context"

// TableProvider 是交互表的领域接口。
//
// 设计原则：
//   - 定义在领域层（core），由基础设施层（store）实现
//   - 核心不关心数据来自 CSV、内存还是 Redis
//   - 返回的表加载后只读，可在多个会话间共享
//
// 实现：
//   - store.StaticProvider（固定表，测试/原型）
//   - store.CSVProvider（本地数据集文件）
//   - store.StoreProvider（从 KV 存储读取序列化记录）
type TableProvider interface {
	// Load 返回指定分区的交互表。同一分区多次调用应返回同一张表。
	Load(ctx context.Context, dish DishType) (*InteractionTable, error)
}

// RecipeDetails 是菜谱目录中的元信息，只供表现层展示使用，核心算法不依赖它。
type RecipeDetails struct {
	ID          int64
	Name        string
	Description string
	Steps       []string
	Ingredients []string
}

// Catalog 是菜谱目录的领域接口（名称/步骤/食材查询）。
// 未知 ID 返回 NOT_FOUND 错误。
type Catalog interface {
	Recipe(ctx context.Context, recipeID int64) (*RecipeDetails, error)
}
