package prime

import (
	"fmt"
	"math/big"

	"nextprime/pkg/mod"
)

// ================= Selfridge 参数选择 =================

// SelfridgeOutcome 区分 Selfridge 搜索的两种结局
type SelfridgeOutcome int

const (
	// ParamsFound 找到了 Jacobi(D, n) = -1 的 D，D/P/Q 有效
	ParamsFound SelfridgeOutcome = iota
	// FactorFound 途中发现 gcd(|D|, n) > 1，Factor 有效
	FactorFound
)

func (o SelfridgeOutcome) String() string {
	switch o {
	case ParamsFound:
		return "params"
	case FactorFound:
		return "factor"
	default:
		return fmt.Sprintf("SelfridgeOutcome(%d)", int(o))
	}
}

// SelfridgeResult 是 Selfridge 搜索的结果。
// Outcome == ParamsFound 时 D、P、Q 有效（P 恒为 1，Q = (1-D)/4）；
// Outcome == FactorFound 时 Factor = gcd(|D|, n) > 1。
type SelfridgeResult struct {
	Outcome SelfridgeOutcome
	D       int64
	P       int64
	Q       int64
	Factor  *big.Int
}

// Selfridge 按 5, -7, 9, -11, ... 依次尝试 D。
// 第一个满足 gcd(|D|, n) > 1 或 Jacobi(D, n) = -1 的 D 决定结果。
// 尝试次数超过 maxIter 返回 ErrInternal；maxIter <= 0 使用默认上限。
// n 必须是正奇数。
func Selfridge(n *big.Int, maxIter int) (SelfridgeResult, error) {
	if maxIter <= 0 {
		maxIter = DefaultSelfridgeMaxIterations
	}

	magnitude, sign := int64(5), int64(1)
	absD := new(big.Int)
	gcd := new(big.Int)
	d := new(big.Int)

	for i := 0; i < maxIter; i++ {
		absD.SetInt64(magnitude)
		gcd.GCD(nil, nil, absD, n)
		if gcd.Cmp(bigOne) > 0 {
			return SelfridgeResult{Outcome: FactorFound, Factor: new(big.Int).Set(gcd)}, nil
		}

		ds := magnitude * sign
		j, err := Jacobi(d.SetInt64(ds), n)
		if err != nil {
			return SelfridgeResult{}, err
		}
		if j == -1 {
			// D ≡ 1 (mod 4)，(1-D)/4 是精确整数
			return SelfridgeResult{Outcome: ParamsFound, D: ds, P: 1, Q: (1 - ds) / 4}, nil
		}

		magnitude, sign = magnitude+2, -sign
	}

	return SelfridgeResult{}, fmt.Errorf("prime: selfridge search for %v exceeded %d iterations: %w", n, maxIter, ErrInternal)
}

// ================= Lucas 序列二进制链 =================

// LucasChain 用从低位到高位的二进制链计算 Lucas 序列。
//
// (u, v) 是累加项，(u2, v2) 是倍增项，二者都从下标 1 开始，q 为 Q^1。
// m 的每一位先对倍增项做
//
//	U_2k = U_k * V_k, V_2k = V_k^2 - 2Q^k, Q^2k = (Q^k)^2
//
// 该位为 1 时再把倍增项加进累加项：
//
//	U = (u2*v + u*v2) / 2, V = (v2*v + D*u2*u) / 2
//
// 返回累加项的 (U, V, Q^k)，所有值都在 [0, n) 内，n 必须是奇数。
func LucasChain(n, u, v, u2, v2, d, q, m *big.Int) (*big.Int, *big.Int, *big.Int) {
	dn := mod.Mod(d, n)
	qi := mod.Mod(q, n) // 倍增项对应的 Q^i
	k := mod.Mod(q, n)  // 累加项对应的 Q^k
	u, v = mod.Mod(u, n), mod.Mod(v, n)
	u2, v2 = mod.Mod(u2, n), mod.Mod(v2, n)

	twoQ := new(big.Int)
	for bit := 0; bit < m.BitLen(); bit++ {
		u2 = mod.ModMul(u2, v2, n)
		twoQ.Lsh(qi, 1)
		v2 = mod.ModSub(new(big.Int).Mul(v2, v2), twoQ, n)
		qi = mod.ModMul(qi, qi, n)

		if m.Bit(bit) == 1 {
			t1 := new(big.Int).Mul(u2, v)
			t2 := new(big.Int).Mul(u, v2)
			t3 := new(big.Int).Mul(v2, v)
			t4 := mod.ModMul(mod.ModMul(u2, u, n), dn, n)

			u = mod.ModHalve(mod.ModAdd(t1, t2, n), n)
			v = mod.ModHalve(mod.ModAdd(t3, t4, n), n)
			k = mod.ModMul(qi, k, n)
		}
	}
	return u, v, k
}

// ================= 强 Lucas 伪素数检查 =================

// IsStrongLucasPseudoprime 用 Selfridge 参数做强 Lucas 伪素数检查。
// n 必须是大于 2 的奇数且不是完全平方数，否则 Selfridge 可能找不到 D。
//
// n+1 = 2^s * t（t 为奇数）：U_t ≡ 0 或 V_t ≡ 0 即通过，
// 否则最多再倍增 s-1 次，期间 V ≡ 0 即通过。
func IsStrongLucasPseudoprime(n *big.Int, maxIter int) (bool, error) {
	params, err := Selfridge(n, maxIter)
	if err != nil {
		return false, err
	}
	if params.Outcome == FactorFound {
		return n.Cmp(params.Factor) == 0, nil
	}

	nPlusOne := new(big.Int).Add(n, bigOne)
	s := nPlusOne.TrailingZeroBits()
	t := new(big.Int).Rsh(nPlusOne, s)

	p := big.NewInt(params.P)
	d := big.NewInt(params.D)
	q := big.NewInt(params.Q)

	// 链从下标 1 起步，t 是奇数，只需处理 t 右移一位后的各位
	m := new(big.Int).Rsh(t, 1)
	u, v, k := LucasChain(n, bigOne, p, bigOne, p, d, q, m)
	if u.Sign() == 0 || v.Sign() == 0 {
		return true, nil
	}

	twoK := new(big.Int)
	for r := uint(1); r < s; r++ {
		twoK.Lsh(k, 1)
		v = mod.ModSub(new(big.Int).Mul(v, v), twoK, n)
		k = mod.ModMul(k, k, n)
		if v.Sign() == 0 {
			return true, nil
		}
	}
	return false, nil
}
