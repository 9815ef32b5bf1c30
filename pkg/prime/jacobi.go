package prime

import (
	"fmt"
	"math/big"
)

// Jacobi 用二次互反律计算 Jacobi 符号 (a/p)，p 必须是正奇数。
// 返回 -1、0 或 1；gcd(a, p) > 1 时为 0。
func Jacobi(a, p *big.Int) (int, error) {
	if p.Sign() <= 0 || p.Bit(0) == 0 {
		return 0, fmt.Errorf("prime: jacobi modulus %v must be odd and positive: %w", p, ErrInvalidArgument)
	}

	x := new(big.Int).Mod(a, p)
	y := new(big.Int).Set(p)
	sign := 1

	for x.Sign() != 0 {
		// 剥掉 x 的因子 2：整数右移，不走浮点除法
		if tz := x.TrailingZeroBits(); tz > 0 {
			x.Rsh(x, tz)
			if r := y.Bits()[0] & 7; tz%2 == 1 && (r == 3 || r == 5) {
				sign = -sign
			}
		}

		x, y = y, x
		if x.Bits()[0]&3 == 3 && y.Bits()[0]&3 == 3 {
			sign = -sign
		}
		x.Mod(x, y)
	}

	if y.Cmp(bigOne) == 0 {
		return sign, nil
	}
	return 0, nil
}
