package dsl

import (
	"fmt"
	"sync"

	"github.com/google/cel-go/cel"

	"github.com/rushteam/fooder/core"
	"github.com/rushteam/fooder/pkg/conv"
	"github.com/rushteam/fooder/pkg/utils"
)

var (
	// celEnv 是全局的 CEL 环境，线程安全，可复用
	celEnv     *cel.Env
	celEnvOnce sync.Once
)

// initCELEnv 初始化 CEL 环境，定义变量和函数
func initCELEnv() (*cel.Env, error) {
	env, err := cel.NewEnv(
		// 定义变量类型
		cel.Variable("candidate", cel.DynType),
		cel.Variable("label", cel.DynType),
		cel.Variable("prefs", cel.DynType),
	)
	return env, err
}

// getCELEnv 获取或创建 CEL 环境
func getCELEnv() (*cel.Env, error) {
	var err error
	celEnvOnce.Do(func() {
		celEnv, err = initCELEnv()
	})
	return celEnv, err
}

// Eval 是候选过滤 DSL 解释器，使用 CEL (Common Expression Language) 实现。
// 表达式对单个候选求值，返回 true 表示命中（通常意味着该候选应被过滤）。
//
// 表达式语法（CEL 标准语法）：
//   - 数值：candidate.score < 1.0 / candidate.recipe_id == 103
//   - 集合：candidate.recipe_id in [101, 102]
//   - 标签：label.source != null && label.source.value == "fallback"
//   - 账本：prefs.count >= 10 / prefs.disliked > prefs.liked
//
// 注意：has(label.key) 可以用 label.key != null 替代
type Eval struct {
	candidate *core.Candidate
	rctx      *core.RecommendContext
	env       *cel.Env
}

// NewEval 创建一个新的 DSL 解释器。
func NewEval(candidate *core.Candidate, rctx *core.RecommendContext) *Eval {
	env, _ := getCELEnv()
	return &Eval{
		candidate: candidate,
		rctx:      rctx,
		env:       env,
	}
}

// Evaluate 解析并执行 DSL 表达式，返回布尔结果。
// 空表达式视为不匹配（false），即不过滤任何候选。
func (e *Eval) Evaluate(expr string) (bool, error) {
	if expr == "" {
		return false, nil
	}
	if e.env == nil {
		return false, fmt.Errorf("cel env not initialized")
	}

	// 编译表达式
	ast, issues := e.env.Compile(expr)
	if issues != nil && issues.Err() != nil {
		return false, fmt.Errorf("compile error: %v", issues.Err())
	}

	// 创建程序
	prg, err := e.env.Program(ast)
	if err != nil {
		return false, fmt.Errorf("program error: %v", err)
	}

	// 执行表达式
	out, _, err := prg.Eval(e.buildInput())
	if err != nil {
		// 对于不存在的 key，CEL 会返回错误
		// 用户应该使用 label.key != null 来检查存在性，而不是直接访问
		return false, fmt.Errorf("eval error: %v", err)
	}

	// 转换为布尔值
	result, ok := out.Value().(bool)
	if !ok {
		return false, fmt.Errorf("expression must return boolean, got %T", out.Value())
	}

	return result, nil
}

// buildInput 构建 CEL 表达式的输入数据
func (e *Eval) buildInput() map[string]interface{} {
	labels := conv.ConvertMap(e.candidate.Labels, func(l utils.Label) (interface{}, bool) {
		return map[string]interface{}{
			"value":  l.Value,
			"source": l.Source,
		}, true
	})
	if labels == nil {
		labels = map[string]interface{}{}
	}

	candidate := map[string]interface{}{
		"recipe_id": e.candidate.RecipeID,
		"score":     e.candidate.Score,
		"labels":    labels,
	}

	prefs := map[string]interface{}{
		"count":    0,
		"liked":    0,
		"disliked": 0,
	}
	if e.rctx != nil && e.rctx.Ledger != nil {
		prefs["count"] = e.rctx.Ledger.Len()
		prefs["liked"] = len(e.rctx.Ledger.Liked())
		prefs["disliked"] = len(e.rctx.Ledger.Disliked())
	}

	return map[string]interface{}{
		"candidate": candidate,
		"label":     labels,
		"prefs":     prefs,
	}
}
