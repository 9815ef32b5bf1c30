package prime

import (
	"fmt"
	"math/big"

	"go.uber.org/zap"
)

// ================= 常量表 =================

// wheelGaps[c mod 30] 是 c 到下一个不被 2、3、5 整除的数的距离（mod 30 轮）。
var wheelGaps = [30]int64{
	1, 6, 5, 4, 3, 2, 1, 4, 3, 2,
	1, 2, 1, 4, 3, 2, 1, 2, 1, 4,
	3, 2, 1, 6, 5, 4, 3, 2, 1, 2,
}

// smallNext[n-2] 是 n ∈ {2, 3, 4} 的下一个素数
var smallNext = [3]int64{3, 5, 5}

var bigWheel = big.NewInt(30)

// ================= 下一个素数 =================

// NextPrime 是给外部调用方的入口：n 为 nil（没有上一次结果）时返回 2，
// 否则返回 ComputeNextPrime(n)。
func NextPrime(n *big.Int) (*big.Int, error) {
	if n == nil {
		return big.NewInt(2), nil
	}
	return ComputeNextPrime(n)
}

// ComputeNextPrime 返回严格大于 n 的最小（Baillie-PSW 意义下的）素数。
// n < 2 返回 2。搜索没有迭代上限，依赖素数无穷多保证终止。
func ComputeNextPrime(n *big.Int) (*big.Int, error) {
	return defaultTester.Next(n)
}

var defaultTester = func() *Tester {
	t, err := NewTester(nil, nil)
	if err != nil {
		panic(err)
	}
	return t
}()

// Next 按 Tester 的配置搜索严格大于 n 的下一个素数
func (t *Tester) Next(n *big.Int) (*big.Int, error) {
	if n == nil {
		return nil, fmt.Errorf("prime: nil candidate: %w", ErrInvalidArgument)
	}
	if n.Cmp(bigTwo) < 0 {
		return big.NewInt(2), nil
	}
	if n.Cmp(big.NewInt(5)) < 0 {
		return big.NewInt(smallNext[n.Int64()-2]), nil
	}

	// 第一个严格大于 n 的奇数
	candidate := new(big.Int).Add(n, bigOne)
	if candidate.Bit(0) == 0 {
		candidate.Add(candidate, bigOne)
	}

	residue := new(big.Int)
	step := new(big.Int)
	tested := 0
	for {
		ok, err := t.IsPrime(candidate)
		if err != nil {
			return nil, err
		}
		tested++
		if ok {
			break
		}
		residue.Mod(candidate, bigWheel)
		candidate.Add(candidate, step.SetInt64(wheelGaps[residue.Int64()]))
	}

	t.logger.Debug("next prime found",
		zap.Stringer("n", n),
		zap.Stringer("next", candidate),
		zap.Int("candidates", tested),
	)
	return candidate, nil
}
