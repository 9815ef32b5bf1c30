package prime

import (
	"fmt"
	"math/big"
	"strings"
)

// ParseCandidate 把字符串解析为非负整数。
// 支持十进制以及 0x、0o、0b 前缀；格式错误或为负数时返回 ErrInvalidArgument。
func ParseCandidate(s string) (*big.Int, error) {
	n, ok := new(big.Int).SetString(strings.TrimSpace(s), 0)
	if !ok {
		return nil, fmt.Errorf("prime: %q is not an integer: %w", s, ErrInvalidArgument)
	}
	if n.Sign() < 0 {
		return nil, fmt.Errorf("prime: %q is negative: %w", s, ErrInvalidArgument)
	}
	return n, nil
}
