// Package conv 提供类型转换、map/slice 转换等泛型工具，用于简化各模块中的重复逻辑。
package conv

import "strconv"

// ParseInt64 将十进制字符串解析为 int64（ID 解析的统一入口）。
func ParseInt64(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}

// FormatInt64 将 int64 格式化为十进制字符串。
func FormatInt64(v int64) string {
	return strconv.FormatInt(v, 10)
}

// ConvertMap 将 map[K]V1 按 convert 转为 map[K]V2，convert 返回 false 的条目被跳过。
func ConvertMap[K comparable, V1, V2 any](m map[K]V1, convert func(V1) (V2, bool)) map[K]V2 {
	if m == nil {
		return nil
	}
	out := make(map[K]V2, len(m))
	for k, v := range m {
		if v2, ok := convert(v); ok {
			out[k] = v2
		}
	}
	return out
}

// ConvertSlice 将 []V1 按 convert 转为 []V2，convert 返回 false 的元素被跳过。
func ConvertSlice[V1, V2 any](s []V1, convert func(V1) (V2, bool)) []V2 {
	if s == nil {
		return nil
	}
	out := make([]V2, 0, len(s))
	for _, v := range s {
		if v2, ok := convert(v); ok {
			out = append(out, v2)
		}
	}
	return out
}
