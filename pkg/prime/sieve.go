package prime

import "fmt"

// GenerateSmallPrimes 用埃拉托斯特尼筛法返回所有 < limit 的素数，升序。
// limit < 0 返回 ErrInvalidArgument；limit <= 2 时结果为空。
func GenerateSmallPrimes(limit int) ([]uint64, error) {
	if limit < 0 {
		return nil, fmt.Errorf("prime: sieve limit %d: %w", limit, ErrInvalidArgument)
	}
	if limit <= 2 {
		return []uint64{}, nil
	}

	composite := make([]bool, limit)
	primes := make([]uint64, 0, limit/2)
	for p := 2; p < limit; p++ {
		if composite[p] {
			continue
		}
		primes = append(primes, uint64(p))
		for i := p * p; i < limit; i += p {
			composite[i] = true
		}
	}
	return primes, nil
}
