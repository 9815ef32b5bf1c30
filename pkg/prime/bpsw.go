package prime

import (
	"fmt"
	"math/big"

	"go.uber.org/zap"
)

// Baillie-PSW 测试：小素数试除 + 以 2、3 为底的强伪素数检查 + 强 Lucas 检查。
// 这是一个合数判定测试而不是素性证明：目前没有已知的合数能通过它，
// 但也没有证明这样的合数不存在。

// ================= 面向调用者的入口 =================

// IsBaillieWagstaffPrime 用 < limit 的小素数试除后执行 Baillie-PSW 测试。
// limit < 0 返回 ErrInvalidArgument。
func IsBaillieWagstaffPrime(n *big.Int, limit int) (bool, error) {
	if n == nil {
		return false, fmt.Errorf("prime: nil candidate: %w", ErrInvalidArgument)
	}
	sieve, err := sieveFor(limit)
	if err != nil {
		return false, err
	}
	return buildFilters(sieve, DefaultSelfridgeMaxIterations).run(n)
}

// IsPrime 按 Tester 的配置执行 Baillie-PSW 测试
func (t *Tester) IsPrime(n *big.Int) (bool, error) {
	if n == nil {
		return false, fmt.Errorf("prime: nil candidate: %w", ErrInvalidArgument)
	}
	ok, err := t.filters.run(n)
	if err != nil {
		return false, err
	}
	if ce := t.logger.Check(zap.DebugLevel, "baillie-psw verdict"); ce != nil {
		ce.Write(zap.Stringer("n", n), zap.Bool("prime", ok))
	}
	return ok, nil
}

// ================= filter pipeline =================

// verdict 是单个 filter 的结论
type verdict int

const (
	undecided verdict = iota // 交给下一个 filter
	composite
	prime
)

type filter func(n *big.Int) (verdict, error)

type filters []filter

func buildFilters(sieve []*big.Int, selfridgeMaxIter int) filters {
	return filters{
		shapeFilter,
		trialDivisionFilter(sieve),
		tinyOddFilter,
		strongPseudoprimeFilter(bigTwo),
		strongPseudoprimeFilter(bigThree),
		strongLucasFilter(selfridgeMaxIter),
	}
}

// 按顺序执行 filters，第一个给出结论的 filter 决定结果；全部未决即视为素数。
func (fs filters) run(n *big.Int) (bool, error) {
	for _, f := range fs {
		v, err := f(n)
		if err != nil {
			return false, err
		}
		switch v {
		case composite:
			return false, nil
		case prime:
			return true, nil
		}
	}
	return true, nil
}

// 1) n < 2 或完全平方数直接判为合数；完全平方数会让 Selfridge 找不到 D。
func shapeFilter(n *big.Int) (verdict, error) {
	if n.Cmp(bigTwo) < 0 || isSquare(n) {
		return composite, nil
	}
	return undecided, nil
}

// 2) 小素数试除：n 被 p 整除时，n == p 才是素数。
func trialDivisionFilter(sieve []*big.Int) filter {
	return func(n *big.Int) (verdict, error) {
		remainder := new(big.Int)
		for _, p := range sieve {
			if remainder.Mod(n, p).Sign() == 0 {
				if n.Cmp(p) == 0 {
					return prime, nil
				}
				return composite, nil
			}
		}
		return undecided, nil
	}
}

// 3) 试除表很小（甚至为空）时，偶数和 3 还没被处理，
// 在这里兜住，保证后面的强伪素数检查满足 n 为奇数且 n > 3。
func tinyOddFilter(n *big.Int) (verdict, error) {
	if n.Bit(0) == 0 {
		if n.Cmp(bigTwo) == 0 {
			return prime, nil
		}
		return composite, nil
	}
	if n.Cmp(bigThree) == 0 {
		return prime, nil
	}
	return undecided, nil
}

// 4) 以 a 为底的强伪素数检查。
func strongPseudoprimeFilter(a *big.Int) filter {
	return func(n *big.Int) (verdict, error) {
		if !IsStrongPseudoprime(n, a) {
			return composite, nil
		}
		return undecided, nil
	}
}

// 5) 强 Lucas 伪素数检查。
func strongLucasFilter(maxIter int) filter {
	return func(n *big.Int) (verdict, error) {
		ok, err := IsStrongLucasPseudoprime(n, maxIter)
		if err != nil {
			return composite, err
		}
		if !ok {
			return composite, nil
		}
		return undecided, nil
	}
}

// isSquare 用整数平方根判断 n 是否为完全平方数，n >= 0。
func isSquare(n *big.Int) bool {
	r := new(big.Int).Sqrt(n)
	return r.Mul(r, r).Cmp(n) == 0
}
