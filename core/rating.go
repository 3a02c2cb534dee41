package core

// Rating 是用户对一道菜谱的评价：喜欢 (+1)、不喜欢 (-1)，0 表示无记录。
// 与交互数据集中的 rate 列取值保持一致。
type Rating int8

const (
	Like    Rating = 1  // 喜欢
	Dislike Rating = -1 // 不喜欢
	Unrated Rating = 0  // 无记录（透视表缺失单元格的填充值）
)

// Valid 判断是否为可记录的评价（+1 / -1）。0 只作为矩阵填充值出现，
// 不允许写入偏好账本或交互数据集。
func (r Rating) Valid() bool {
	return r == Like || r == Dislike
}

// DishType 是菜谱目录的分区标签，闭集：main / dessert。
// 两个分区的交互数据集与偏好账本互不混用。
type DishType string

const (
	DishTypeMain    DishType = "main"    // 主菜
	DishTypeDessert DishType = "dessert" // 甜点
)

// DishTypes 返回全部合法分区，顺序固定，用于遍历/预加载。
func DishTypes() []DishType {
	return []DishType{DishTypeMain, DishTypeDessert}
}

// ParseDishType 校验并解析分区标签；非法取值返回 InvalidDishTypeError。
func ParseDishType(s string) (DishType, error) {
	switch DishType(s) {
	case DishTypeMain:
		return DishTypeMain, nil
	case DishTypeDessert:
		return DishTypeDessert, nil
	default:
		return "", NewInvalidDishTypeError(s)
	}
}
