package prime

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"pgregory.net/rapid"
)

func mustNext(t testing.TB, n int64) int64 {
	t.Helper()
	got, err := ComputeNextPrime(big.NewInt(n))
	if err != nil {
		t.Fatalf("ComputeNextPrime(%d): %v", n, err)
	}
	return got.Int64()
}

// ================= 已知场景 =================

func TestComputeNextPrime_Scenarios(t *testing.T) {
	tests := []struct {
		n, want int64
	}{
		{-10, 2},
		{0, 2},
		{1, 2},
		{2, 3},
		{3, 5},
		{4, 5},
		{5, 7},
		{6, 7},
		{7, 11},
		{23, 29},
		{100, 101},
		{7907, 7919},
		{7919, 7927},
		{1000000, 1000003},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, mustNext(t, tt.n), "ComputeNextPrime(%d)", tt.n)
	}

	t.Run("超过 2^64", func(t *testing.T) {
		n := new(big.Int).Lsh(bigOne, 64)
		got, err := ComputeNextPrime(n)
		require.NoError(t, err)
		assert.Equal(t, "18446744073709551629", got.String())
	})

	t.Run("nil", func(t *testing.T) {
		_, err := ComputeNextPrime(nil)
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("不修改参数", func(t *testing.T) {
		n := big.NewInt(7907)
		_, err := ComputeNextPrime(n)
		require.NoError(t, err)
		assert.Equal(t, int64(7907), n.Int64())
	})
}

func TestNextPrime(t *testing.T) {
	t.Run("没有上一次结果", func(t *testing.T) {
		got, err := NextPrime(nil)
		require.NoError(t, err)
		assert.Equal(t, int64(2), got.Int64())
	})

	t.Run("有上一次结果", func(t *testing.T) {
		got, err := NextPrime(big.NewInt(7907))
		require.NoError(t, err)
		assert.Equal(t, int64(7919), got.Int64())
	})
}

// ================= 属性 =================

func TestComputeNextPrime_NoGap(t *testing.T) {
	for n := int64(0); n <= 3000; n++ {
		next := mustNext(t, n)
		if next <= n {
			t.Fatalf("ComputeNextPrime(%d) = %d is not greater than n", n, next)
		}
		if !isPrimeTrial(uint64(next)) {
			t.Fatalf("ComputeNextPrime(%d) = %d is composite", n, next)
		}
		for m := n + 1; m < next; m++ {
			if isPrimeTrial(uint64(m)) {
				t.Fatalf("ComputeNextPrime(%d) = %d skipped prime %d", n, next, m)
			}
		}
	}
}

func TestComputeNextPrime_Property(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := new(big.Int).SetUint64(rapid.Uint64().Draw(t, "n"))
		next, err := ComputeNextPrime(n)
		if err != nil {
			t.Fatalf("ComputeNextPrime(%v): %v", n, err)
		}
		if next.Cmp(n) <= 0 {
			t.Fatalf("ComputeNextPrime(%v) = %v is not greater than n", n, next)
		}
		ok, err := IsBaillieWagstaffPrime(next, DefaultSieveLimit)
		if err != nil || !ok {
			t.Fatalf("ComputeNextPrime(%v) = %v fails Baillie-PSW (err = %v)", n, next, err)
		}
		if !next.ProbablyPrime(20) {
			t.Fatalf("ComputeNextPrime(%v) = %v is composite", n, next)
		}
	})
}

func TestWheelGaps(t *testing.T) {
	// 每个奇数余数加上 gap 后都落在与 30 互素的余数上，且中间没有跳过这样的余数
	coprime := func(r int64) bool { return r%2 != 0 && r%3 != 0 && r%5 != 0 }
	for r := int64(1); r < 30; r += 2 {
		g := wheelGaps[r]
		require.True(t, coprime((r+g)%30), "residue %d gap %d", r, g)
		for s := r + 1; s < r+g; s++ {
			assert.False(t, coprime(s%30), "residue %d gap %d skips %d", r, g, s)
		}
	}
}

// ================= 日志 =================

func TestTester_Next_Logs(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	tester, err := NewTester(nil, zap.New(core))
	require.NoError(t, err)

	got, err := tester.Next(big.NewInt(7907))
	require.NoError(t, err)
	assert.Equal(t, int64(7919), got.Int64())

	found := logs.FilterMessage("next prime found").All()
	require.Len(t, found, 1)
	fields := found[0].ContextMap()
	assert.Equal(t, "7907", fields["n"])
	assert.Equal(t, "7919", fields["next"])
	assert.Equal(t, int64(3), fields["candidates"])

	assert.Equal(t, 3, logs.FilterMessage("baillie-psw verdict").Len())
}
