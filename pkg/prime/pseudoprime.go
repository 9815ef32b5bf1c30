package prime

import (
	"math/big"

	"nextprime/pkg/mod"
)

var (
	bigOne   = big.NewInt(1)
	bigTwo   = big.NewInt(2)
	bigThree = big.NewInt(3)
)

// IsStrongPseudoprime 对固定底数 a 做一轮 Miller-Rabin 强伪素数检查。
// 调用方保证 n 是奇数且 n > a >= 2。
//
// n-1 = d*2^s（d 为奇数），t = a^d mod n；t == 1 即通过，
// 否则最多平方 s-1 次，期间出现 t == n-1 即通过。
func IsStrongPseudoprime(n, a *big.Int) bool {
	nMinusOne := new(big.Int).Sub(n, bigOne)
	s := nMinusOne.TrailingZeroBits()
	d := new(big.Int).Rsh(nMinusOne, s)

	t, err := mod.PowMod(a, d, n)
	if err != nil {
		// n <= 1，不满足前置条件
		return false
	}
	if t.Cmp(bigOne) == 0 {
		return true
	}

	for ; s > 0; s-- {
		if t.Cmp(nMinusOne) == 0 {
			return true
		}
		t = mod.ModMul(t, t, n)
	}
	return false
}
