package mod

import (
	"errors"
	"math/big"
)

// ErrInvalidArgument 表示指数为负或模数不大于 1
var ErrInvalidArgument = errors.New("mod: invalid argument")

var bigOne = big.NewInt(1)

// ModMul 计算 (a * b) mod m，返回新的大整数（结果在 [0, m) 范围内）
func ModMul(a, b, m *big.Int) *big.Int {
	result := new(big.Int).Mul(a, b)
	result.Mod(result, m)
	return result
}

// ModAdd 计算 (a + b) mod m，返回新的大整数
func ModAdd(a, b, m *big.Int) *big.Int {
	result := new(big.Int).Add(a, b)
	result.Mod(result, m)
	return result
}

// ModSub 计算 (a - b) mod m，返回新的大整数（结果保证在 [0, m) 范围内）
func ModSub(a, b, m *big.Int) *big.Int {
	result := new(big.Int).Sub(a, b)
	result.Mod(result, m)
	return result
}

// Mod 计算 a mod m，返回新的大整数，a 为负数时也落在 [0, m)
func Mod(a, m *big.Int) *big.Int {
	return new(big.Int).Mod(a, m)
}

// ModHalve 计算 x / 2 mod m，m 必须是奇数。
// x 为奇数时先加 m 再右移，整个过程不离开 [0, m)。
func ModHalve(x, m *big.Int) *big.Int {
	result := new(big.Int).Mod(x, m)
	if result.Bit(0) == 1 {
		result.Add(result, m)
	}
	return result.Rsh(result, 1)
}

// PowMod 用从低位到高位的二进制快速幂计算 (base^exp) mod m。
// 要求 exp >= 0 且 m > 1；base 可以为负或大于 m，会先约简。
func PowMod(base, exp, m *big.Int) (*big.Int, error) {
	if exp.Sign() < 0 || m.Cmp(bigOne) <= 0 {
		return nil, ErrInvalidArgument
	}

	result := big.NewInt(1)
	b := new(big.Int).Mod(base, m)
	for i := 0; i < exp.BitLen(); i++ {
		if exp.Bit(i) == 1 {
			result.Mul(result, b)
			result.Mod(result, m)
		}
		b.Mul(b, b)
		b.Mod(b, m)
	}
	return result, nil
}
