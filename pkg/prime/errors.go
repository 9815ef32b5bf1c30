package prime

import "errors"

var (
	// ErrInvalidArgument 表示参数不合法：筛法上限为负、n 为 nil/负数/格式错误、Jacobi 模数非正奇数等。
	ErrInvalidArgument = errors.New("prime: invalid argument")

	// ErrInternal 表示 Selfridge 参数搜索超过了迭代上限。
	// 正常输入不会出现，出现即说明有 bug 或输入是构造出来的病态数。
	ErrInternal = errors.New("prime: internal error")
)
