package store

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/rushteam/fooder/core"
	"github.com/rushteam/fooder/pkg/conv"
)

// recipeHashKey 是菜谱元信息在 HashStore 中的 key。
const recipeHashKey = "fooder:recipes"

// CSVCatalog 从菜谱元信息 CSV 构建目录，只供表现层展示使用。
//
// 数据集格式：表头 id,name,steps,description,ingredients；
// steps 与 ingredients 是预处理产出的列表字面量（如 "['step 1', 'step 2']"）。
// 整个文件首次查询时一次性加载进内存。
type CSVCatalog struct {
	path string

	once    sync.Once
	loadErr error
	recipes map[int64]*core.RecipeDetails
}

var _ core.Catalog = (*CSVCatalog)(nil)

func NewCSVCatalog(path string) *CSVCatalog {
	return &CSVCatalog{path: path}
}

func (c *CSVCatalog) Recipe(ctx context.Context, recipeID int64) (*core.RecipeDetails, error) {
	c.once.Do(c.load)
	if c.loadErr != nil {
		return nil, c.loadErr
	}
	r, ok := c.recipes[recipeID]
	if !ok {
		return nil, core.NewDomainError(core.ModuleCatalog, core.ErrorCodeNotFound,
			fmt.Sprintf("catalog: recipe %d not found", recipeID))
	}
	return r, nil
}

func (c *CSVCatalog) load() {
	f, err := os.Open(c.path)
	if err != nil {
		c.loadErr = fmt.Errorf("open recipe catalog: %w", err)
		return
	}
	defer f.Close()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		c.loadErr = fmt.Errorf("read recipe catalog header: %w", err)
		return
	}
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[name] = i
	}
	for _, required := range []string{"id", "name", "steps", "description", "ingredients"} {
		if _, ok := col[required]; !ok {
			c.loadErr = dataShapeErrorf("recipe catalog %s: missing column %q", c.path, required)
			return
		}
	}

	recipes := make(map[int64]*core.RecipeDetails, 1024)
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			c.loadErr = fmt.Errorf("read recipe catalog row: %w", err)
			return
		}
		id, err := conv.ParseInt64(row[col["id"]])
		if err != nil {
			c.loadErr = dataShapeErrorf("recipe catalog %s: bad id %q", c.path, row[col["id"]])
			return
		}
		recipes[id] = &core.RecipeDetails{
			ID:          id,
			Name:        row[col["name"]],
			Description: row[col["description"]],
			Steps:       parseListLiteral(row[col["steps"]]),
			Ingredients: parseListLiteral(row[col["ingredients"]]),
		}
	}
	c.recipes = recipes
}

// parseListLiteral 解析预处理数据集中的列表字面量（"['a', 'b']"）。
// 不是列表形态时按单元素处理，保持展示层可用。
func parseListLiteral(s string) []string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "[") || !strings.HasSuffix(s, "]") {
		if s == "" {
			return nil
		}
		return []string{s}
	}
	inner := s[1 : len(s)-1]

	out := make([]string, 0, 8)
	var cur strings.Builder
	var quote byte
	inQuote := false
	for i := 0; i < len(inner); i++ {
		ch := inner[i]
		switch {
		case inQuote:
			if ch == '\\' && i+1 < len(inner) {
				i++
				cur.WriteByte(inner[i])
				continue
			}
			if ch == quote {
				inQuote = false
				continue
			}
			cur.WriteByte(ch)
		case ch == '\'' || ch == '"':
			inQuote = true
			quote = ch
		case ch == ',':
			if item := strings.TrimSpace(cur.String()); item != "" {
				out = append(out, item)
			}
			cur.Reset()
		default:
			cur.WriteByte(ch)
		}
	}
	if item := strings.TrimSpace(cur.String()); item != "" {
		out = append(out, item)
	}
	return out
}

// StoreCatalog 从 HashStore 读取菜谱元信息（field = 菜谱 ID，value = JSON）。
// 与 RedisStore 配合时即是共享的在线目录。
type StoreCatalog struct {
	Store core.HashStore
}

var _ core.Catalog = (*StoreCatalog)(nil)

func (c *StoreCatalog) Recipe(ctx context.Context, recipeID int64) (*core.RecipeDetails, error) {
	data, err := c.Store.HGet(ctx, recipeHashKey, conv.FormatInt64(recipeID))
	if err != nil {
		if core.IsStoreNotFound(err) {
			return nil, core.NewDomainError(core.ModuleCatalog, core.ErrorCodeNotFound,
				fmt.Sprintf("catalog: recipe %d not found", recipeID))
		}
		return nil, err
	}
	var details core.RecipeDetails
	if err := json.Unmarshal(data, &details); err != nil {
		return nil, fmt.Errorf("catalog: malformed recipe %d: %w", recipeID, err)
	}
	return &details, nil
}

// SaveRecipe 将菜谱元信息写入 HashStore（离线侧使用）。
func SaveRecipe(ctx context.Context, s core.HashStore, details *core.RecipeDetails) error {
	data, err := json.Marshal(details)
	if err != nil {
		return err
	}
	return s.HSet(ctx, recipeHashKey, conv.FormatInt64(details.ID), data)
}
