package prime

import (
	"math/big"
	"testing"
)

// ================= 辅助函数 =================

// isPrimeTrial 试除法素性判断，作为测试基准
func isPrimeTrial(n uint64) bool {
	if n < 2 {
		return false
	}
	for d := uint64(2); d*d <= n; d++ {
		if n%d == 0 {
			return false
		}
	}
	return true
}

// mustBPSW 以默认试除上限执行 Baillie-PSW，出错即终止测试
func mustBPSW(t testing.TB, n *big.Int) bool {
	t.Helper()
	ok, err := IsBaillieWagstaffPrime(n, DefaultSieveLimit)
	if err != nil {
		t.Fatalf("IsBaillieWagstaffPrime(%v): %v", n, err)
	}
	return ok
}

func bigFromString(t testing.TB, s string) *big.Int {
	t.Helper()
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		t.Fatalf("bad integer literal %q", s)
	}
	return n
}
