package prime

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSmallPrimes(t *testing.T) {
	tests := []struct {
		name  string
		limit int
		want  []uint64
	}{
		{"上限 0", 0, []uint64{}},
		{"上限 2", 2, []uint64{}},
		{"上限 3", 3, []uint64{2}},
		{"上限 30", 30, []uint64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29}},
		{"上限本身是素数时不包含", 29, []uint64{2, 3, 5, 7, 11, 13, 17, 19, 23}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := GenerateSmallPrimes(tt.limit)
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("GenerateSmallPrimes(%d) mismatch (-want +got):\n%s", tt.limit, diff)
			}
		})
	}

	t.Run("默认上限 100 共 25 个素数", func(t *testing.T) {
		got, err := GenerateSmallPrimes(DefaultSieveLimit)
		require.NoError(t, err)
		assert.Len(t, got, 25)
		assert.Equal(t, uint64(97), got[len(got)-1])
		assert.Len(t, defaultSieve, 25)
	})

	t.Run("与试除法一致", func(t *testing.T) {
		got, err := GenerateSmallPrimes(5000)
		require.NoError(t, err)
		var want []uint64
		for n := uint64(0); n < 5000; n++ {
			if isPrimeTrial(n) {
				want = append(want, n)
			}
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("sieve mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("负数上限", func(t *testing.T) {
		_, err := GenerateSmallPrimes(-1)
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})
}
