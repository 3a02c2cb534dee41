// Package fooder 是一个菜谱推荐内核（Food Recommender）。
//
// 设计要点：
// - Session-first: 每个用户会话维护自己的偏好账本，推荐随反馈实时演化
// - 协同过滤: 用户×菜谱评分矩阵 + L1 距离 + 分位数邻居筛选
// - 可解释: 邻居集合、共同偏好报表与邻接多重图均可随时导出
package fooder

import (
	"github.com/rushteam/fooder/core"
	"github.com/rushteam/fooder/session"
	"github.com/rushteam/fooder/suggest"
)

// 轻量 facade：便于用户直接 import "fooder" 使用核心抽象。
type User = session.User
type Option = session.Option
type Rating = core.Rating
type DishType = core.DishType
type Suggestion = suggest.Suggestion

const (
	Like    = core.Like
	Dislike = core.Dislike
	Unrated = core.Unrated

	DishTypeMain    = core.DishTypeMain
	DishTypeDessert = core.DishTypeDessert
)

// NewUser 创建一个指定分区的推荐会话。
var NewUser = session.New
