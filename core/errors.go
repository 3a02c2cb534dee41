package core

import (
	"errors"
	"fmt"
)

// DomainError 是领域层的统一错误类型。
//
// 设计原则：
//   - 所有领域层错误都使用此类型
//   - 提供错误代码（Code）和消息（Message）
//   - 支持错误检查函数（IsXXX）
//
// 使用场景：
//   - 会话错误：INVALID_DISH_TYPE, PREFERENCE_NOT_FOUND
//   - 推荐错误：NO_MORE_RECIPES
//   - 图/分析错误：NO_NEIGHBOR
//   - 数据错误：DATA_SHAPE（加载期致命，非逐次调用错误）
//   - 存储错误：NOT_FOUND, NOT_SUPPORTED
type DomainError struct {
	Code    string // 错误代码（如 "NO_MORE_RECIPES"）
	Message string // 错误消息
	Module  string // 模块名称（如 "session", "store"）
}

func (e *DomainError) Error() string {
	return e.Message
}

// GetDomainError 获取 DomainError（穿透 %w 包装），如果不是则返回 nil。
func GetDomainError(err error) *DomainError {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	return nil
}

// NewDomainError 创建新的领域错误。
func NewDomainError(module, code, message string) *DomainError {
	return &DomainError{
		Module:  module,
		Code:    code,
		Message: message,
	}
}

// 错误代码常量
const (
	ErrorCodeInvalidDishType    = "INVALID_DISH_TYPE"    // 分区标签非法
	ErrorCodePreferenceNotFound = "PREFERENCE_NOT_FOUND" // 账本中无此偏好
	ErrorCodeNoMoreRecipes      = "NO_MORE_RECIPES"      // 目录相对账本已耗尽（终态）
	ErrorCodeNoNeighbor         = "NO_NEIGHBOR"          // 尚无邻居集（未经过邻居驱动的推荐）
	ErrorCodeDataShape          = "DATA_SHAPE"           // 交互数据形状非法（透视歧义）
	ErrorCodeNotFound           = "NOT_FOUND"            // 资源不存在
	ErrorCodeNotSupported       = "NOT_SUPPORTED"        // 操作不支持
)

// 模块名称常量
const (
	ModuleSession    = "session"    // 会话模块
	ModuleSuggest    = "suggest"    // 推荐策略模块
	ModuleSimilarity = "similarity" // 相似度模块
	ModuleGraph      = "graph"      // 邻接图模块
	ModuleStore      = "store"      // 存储模块
	ModuleCatalog    = "catalog"    // 菜谱目录模块
)

// NewInvalidDishTypeError 表示分区标签不在 {"main","dessert"} 内。
// 属于配置错误，调用方可修正，立即暴露，不重试。
func NewInvalidDishTypeError(got string) *DomainError {
	return NewDomainError(ModuleSession, ErrorCodeInvalidDishType,
		fmt.Sprintf(`session: the type of dish must be "main" or "dessert" only, and not %q`, got))
}

// NewPreferenceNotFoundError 表示要删除的菜谱不在偏好账本中。
// 属于调用方 bug 或过期的界面状态，暴露而不重试。
func NewPreferenceNotFoundError(recipeID int64) *DomainError {
	return NewDomainError(ModuleSession, ErrorCodePreferenceNotFound,
		fmt.Sprintf("session: recipe %d is not in the user preferences", recipeID))
}

// NewNoMoreRecipesError 表示该分区的目录相对账本已耗尽，属于终态：
// 表现层应停止继续请求推荐，或提示切换分区。
func NewNoMoreRecipesError(dish DishType) *DomainError {
	return NewDomainError(ModuleSuggest, ErrorCodeNoMoreRecipes,
		fmt.Sprintf("suggest: no more %s recipes to suggest", dish))
}

// NewNoNeighborError 表示尚未通过邻居驱动路径产生过推荐，图/分析无数据。
// 表现层可展示空态提示后恢复。
func NewNoNeighborError() *DomainError {
	return NewDomainError(ModuleGraph, ErrorCodeNoNeighbor, "graph: no neighbor found")
}

// NewDataShapeError 表示交互数据透视歧义（重复的 (user, recipe) 对）。
// 属于加载期致命错误。
func NewDataShapeError(userID, recipeID int64) *DomainError {
	return NewDomainError(ModuleSimilarity, ErrorCodeDataShape,
		fmt.Sprintf("similarity: duplicate interaction for user %d and recipe %d", userID, recipeID))
}

func hasCode(err error, code string) bool {
	if domainErr := GetDomainError(err); domainErr != nil {
		return domainErr.Code == code
	}
	return false
}

// IsInvalidDishType 检查错误是否为 INVALID_DISH_TYPE。
func IsInvalidDishType(err error) bool { return hasCode(err, ErrorCodeInvalidDishType) }

// IsPreferenceNotFound 检查错误是否为 PREFERENCE_NOT_FOUND。
func IsPreferenceNotFound(err error) bool { return hasCode(err, ErrorCodePreferenceNotFound) }

// IsNoMoreRecipes 检查错误是否为 NO_MORE_RECIPES。
func IsNoMoreRecipes(err error) bool { return hasCode(err, ErrorCodeNoMoreRecipes) }

// IsNoNeighbor 检查错误是否为 NO_NEIGHBOR。
func IsNoNeighbor(err error) bool { return hasCode(err, ErrorCodeNoNeighbor) }

// IsDataShape 检查错误是否为 DATA_SHAPE。
func IsDataShape(err error) bool { return hasCode(err, ErrorCodeDataShape) }

// IsNotFound 检查错误是否为 NOT_FOUND。
func IsNotFound(err error) bool { return hasCode(err, ErrorCodeNotFound) }
