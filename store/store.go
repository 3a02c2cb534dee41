package store

// 注意：此包只包含实现，接口定义在 core 包。
// 使用 core.Store / core.HashStore / core.TableProvider / core.Catalog 接口。
//
// 示例：
//   var kv core.HashStore = store.NewMemoryStore()
//   var provider core.TableProvider = store.NewCSVProvider(paths)
