// Package config 提供应用配置（支持 YAML/JSON）与基于配置的装配。
package config

import (
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/rushteam/fooder/core"
)

// Config 是 fooder 的应用配置结构（支持 YAML/JSON）。
type Config struct {
	// Datasets 是各分区交互数据集与菜谱目录的文件路径。
	// 启用 Redis 时可以全部留空，数据改由 KV 存储提供。
	Datasets struct {
		Main    string `yaml:"main" json:"main"`
		Dessert string `yaml:"dessert" json:"dessert"`
		Recipes string `yaml:"recipes" json:"recipes"`
	} `yaml:"datasets" json:"datasets"`

	// Neighbors 是邻居选择器的上下界；0 取默认值（5 / 100）。
	Neighbors struct {
		MinRows int `yaml:"min_rows" json:"min_rows"`
		MaxRows int `yaml:"max_rows" json:"max_rows"`
	} `yaml:"neighbors" json:"neighbors"`

	// Suggest 是推荐策略配置。
	Suggest struct {
		// Seed 非零时随机路径（冷启动/回退）可复现。
		Seed int64 `yaml:"seed" json:"seed"`
		// Filter 是候选过滤的 CEL 表达式，空串不过滤。
		Filter string `yaml:"filter" json:"filter"`
		// Blacklist 是永不推荐的菜谱 ID 列表。
		Blacklist []int64 `yaml:"blacklist" json:"blacklist"`
	} `yaml:"suggest" json:"suggest"`

	// Redis 非空时交互表与目录从 Redis 读取，而不是本地 CSV。
	Redis struct {
		Addr string `yaml:"addr" json:"addr"`
		DB   int    `yaml:"db" json:"db"`
	} `yaml:"redis" json:"redis"`

	// Log 是日志配置（level: debug / info / warn / error / disabled）。
	Log struct {
		Level string `yaml:"level" json:"level"`
	} `yaml:"log" json:"log"`
}

// LoadFromYAML 从 YAML 文件加载配置。
func LoadFromYAML(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}

	return &cfg, nil
}

// LoadFromJSON 从 JSON 文件加载配置。
func LoadFromJSON(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}

	return &cfg, nil
}

// Validate 校验配置自洽：每个分区要么有本地数据集，要么启用 Redis。
func (c *Config) Validate() error {
	if c.Neighbors.MinRows < 0 || c.Neighbors.MaxRows < 0 {
		return fmt.Errorf("neighbors bounds must be non-negative")
	}
	if c.Neighbors.MaxRows > 0 && c.Neighbors.MinRows > c.Neighbors.MaxRows {
		return fmt.Errorf("neighbors.min_rows must not exceed neighbors.max_rows")
	}
	if c.Redis.Addr != "" {
		return nil
	}
	if c.Datasets.Main == "" && c.Datasets.Dessert == "" {
		return fmt.Errorf("at least one dataset path is required when redis is disabled")
	}
	return nil
}

// DatasetPaths 返回分区到数据集路径的映射（只含已配置的分区）。
func (c *Config) DatasetPaths() map[core.DishType]string {
	paths := make(map[core.DishType]string, 2)
	if c.Datasets.Main != "" {
		paths[core.DishTypeMain] = c.Datasets.Main
	}
	if c.Datasets.Dessert != "" {
		paths[core.DishTypeDessert] = c.Datasets.Dessert
	}
	return paths
}
