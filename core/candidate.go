package core

import "github.com/rushteam/fooder/pkg/utils"

// Candidate 是推荐链路中的统一承载结构：候选菜谱、得分、标签。
// Labels 用于解释与观测（候选来自哪条路径、被哪个过滤器拦截）；
// Score 是近邻评价列合计，用于最终选取。
type Candidate struct {
	RecipeID int64
	Score    float64
	Labels   map[string]utils.Label
}

func NewCandidate(recipeID int64) *Candidate {
	return &Candidate{
		RecipeID: recipeID,
		Score:    0,
		Labels:   make(map[string]utils.Label),
	}
}

// PutLabel 写入 Label；若已存在同名 key，则按默认 Merge 规则累积。
func (c *Candidate) PutLabel(key string, lbl utils.Label) {
	if c.Labels == nil {
		c.Labels = make(map[string]utils.Label)
	}
	if old, ok := c.Labels[key]; ok {
		c.Labels[key] = utils.MergeLabel(old, lbl)
		return
	}
	c.Labels[key] = lbl
}

// GetLabel 获取 Label。
func (c *Candidate) GetLabel(key string) (utils.Label, bool) {
	if c.Labels == nil {
		return utils.Label{}, false
	}
	lbl, ok := c.Labels[key]
	return lbl, ok
}
