// Package main 是 fooder 的命令行入口。
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rushteam/fooder/config"
	"github.com/rushteam/fooder/core"
	"github.com/rushteam/fooder/session"
)

var (
	version = "0.1.0"
	commit  = "dev"
)

var configPath string

func main() {
	rootCmd := &cobra.Command{
		Use:   "fooder",
		Short: "fooder - 基于协同过滤的菜谱推荐内核",
		Long: `fooder 维护一个用户会话：你对推荐的菜谱给出喜欢 / 不喜欢，
内核据此在用户×菜谱评分矩阵中寻找口味相近的邻居，
并把邻居偏爱而你尚未评价的菜谱推给你。`,
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "fooder.yaml", "配置文件路径")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "打印版本信息",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("fooder v%s (%s)\n", version, commit)
		},
	})

	suggestCmd := &cobra.Command{
		Use:   "suggest [dish-type]",
		Short: "交互式推荐会话",
		Long: `进入交互式推荐循环。每轮给出一个候选菜谱，可输入：
  y / like     喜欢，继续下一个
  n / dislike  不喜欢，继续下一个
  undo <id>    撤销对某个菜谱的评价
  neighbors    查看当前邻居集合
  report       查看邻居共同偏好报表
  graph        导出邻接图（DOT 格式）
  quit         退出`,
		Args: cobra.MaximumNArgs(1),
		RunE: runSuggest,
	}
	rootCmd.AddCommand(suggestCmd)

	infoCmd := &cobra.Command{
		Use:   "info",
		Short: "查看数据集概况",
		RunE:  runInfo,
	}
	rootCmd.AddCommand(infoCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func loadApp(ctx context.Context) (*config.App, error) {
	cfg, err := config.LoadFromYAML(configPath)
	if err != nil {
		return nil, err
	}
	return config.Build(ctx, cfg)
}

func runInfo(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	app, err := loadApp(ctx)
	if err != nil {
		return err
	}
	defer app.Close()

	for _, dish := range core.DishTypes() {
		table, err := app.Provider.Load(ctx, dish)
		if err != nil {
			fmt.Printf("%-8s unavailable: %v\n", dish, err)
			continue
		}
		fmt.Printf("%-8s %d interactions, %d users, %d recipes\n",
			dish, table.Len(), len(table.UserIDs()), len(table.RecipeIDs()))
	}
	return nil
}

func runSuggest(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	dish := string(core.DishTypeMain)
	if len(args) > 0 {
		dish = args[0]
	}

	app, err := loadApp(ctx)
	if err != nil {
		return err
	}
	defer app.Close()

	user, err := app.NewSession(ctx, dish)
	if err != nil {
		return err
	}

	fmt.Printf("分区 %s：开始推荐（y=喜欢 n=不喜欢 help=帮助）\n", dish)
	scanner := bufio.NewScanner(os.Stdin)
	for {
		recipeID, err := user.Suggest(ctx)
		if err != nil {
			if core.IsNoMoreRecipes(err) {
				fmt.Println("没有更多可推荐的菜谱了。")
				return nil
			}
			return err
		}
		printRecipe(ctx, app, recipeID)

		rated := false
		for !rated {
			fmt.Print("> ")
			if !scanner.Scan() {
				return scanner.Err()
			}
			fields := strings.Fields(strings.TrimSpace(scanner.Text()))
			verb := ""
			if len(fields) > 0 {
				verb = strings.ToLower(fields[0])
			}
			switch verb {
			case "y", "like":
				user.Like(recipeID)
				rated = true
			case "n", "dislike":
				user.Dislike(recipeID)
				rated = true
			case "undo":
				if err := undoPreference(user, fields); err != nil {
					fmt.Println(err)
				}
			case "neighbors":
				fmt.Printf("邻居集合：%v\n", user.Neighbors())
			case "report":
				printReport(user)
			case "graph":
				printGraph(user)
			case "quit", "q", "exit":
				return nil
			case "", "help":
				fmt.Println("命令：y n undo <id> neighbors report graph quit")
			default:
				fmt.Printf("未知命令 %q，输入 help 查看帮助\n", verb)
			}
		}
	}
}

func printRecipe(ctx context.Context, app *config.App, recipeID int64) {
	if app.Catalog != nil {
		if details, err := app.Catalog.Recipe(ctx, recipeID); err == nil {
			fmt.Printf("推荐菜谱 %d：%s\n", recipeID, details.Name)
			if details.Description != "" {
				fmt.Printf("  %s\n", details.Description)
			}
			return
		}
	}
	fmt.Printf("推荐菜谱 %d\n", recipeID)
}

func undoPreference(user *session.User, fields []string) error {
	if len(fields) != 2 {
		return fmt.Errorf("用法：undo <recipe-id>")
	}
	var recipeID int64
	if _, err := fmt.Sscanf(fields[1], "%d", &recipeID); err != nil {
		return fmt.Errorf("无效的菜谱 ID %q", fields[1])
	}
	return user.Undo(recipeID)
}

func printReport(user *session.User) {
	stats, err := user.NeighborReport(core.Like)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("user        common_likes  common_dislikes  to_recommend")
	for _, s := range stats {
		fmt.Printf("%-10d  %12d  %15d  %12d\n",
			s.UserID, s.CommonLikes, s.CommonDislikes, s.RecipesToRecommend)
	}
}

func printGraph(user *session.User) {
	g, err := user.AdjacencyGraph(core.Like)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(g.DOT("likes"))
}
