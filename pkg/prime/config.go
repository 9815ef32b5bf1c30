package prime

import (
	"fmt"
	"math/big"

	"go.uber.org/zap"
)

const (
	// DefaultSieveLimit 试除用小素数表的默认上限（不含）
	DefaultSieveLimit = 100

	// DefaultSelfridgeMaxIterations Selfridge 搜索 D 的默认迭代上限。
	// 非完全平方数一般在个位数步以内就能找到 D。
	DefaultSelfridgeMaxIterations = 1000
)

// ================= 公共类型 & 配置 =================

type Config struct {
	// 试除小素数表上限，只使用 < SieveLimit 的素数
	SieveLimit int

	// Selfridge 搜索 D 的最多尝试次数，<= 0 时使用默认值
	SelfridgeMaxIterations int
}

func DefaultConfig() *Config {
	return &Config{
		SieveLimit:             DefaultSieveLimit,
		SelfridgeMaxIterations: DefaultSelfridgeMaxIterations,
	}
}

// defaultSieve 默认上限的小素数表，包初始化时构建一次，之后只读。
var defaultSieve = mustSieve(DefaultSieveLimit)

// Tester 按固定配置执行 Baillie-PSW 测试和下一个素数搜索。
// 构造后不可变，可被多个 goroutine 并发使用。
type Tester struct {
	cfg     Config
	filters filters
	logger  *zap.Logger
}

// NewTester 校验配置并预先构建小素数表。cfg 为 nil 时使用 DefaultConfig，
// logger 为 nil 时不输出日志。
func NewTester(cfg *Config, logger *zap.Logger) (*Tester, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	sieve, err := sieveFor(cfg.SieveLimit)
	if err != nil {
		return nil, fmt.Errorf("prime: build tester: %w", err)
	}

	c := *cfg
	if c.SelfridgeMaxIterations <= 0 {
		c.SelfridgeMaxIterations = DefaultSelfridgeMaxIterations
	}

	return &Tester{
		cfg:     c,
		filters: buildFilters(sieve, c.SelfridgeMaxIterations),
		logger:  logger,
	}, nil
}

// Config 返回 Tester 实际使用的配置副本
func (t *Tester) Config() Config {
	return t.cfg
}

// sieveFor 默认上限直接复用 defaultSieve，其余上限现算。
func sieveFor(limit int) ([]*big.Int, error) {
	if limit == DefaultSieveLimit {
		return defaultSieve, nil
	}
	return bigSieve(limit)
}

func bigSieve(limit int) ([]*big.Int, error) {
	primes, err := GenerateSmallPrimes(limit)
	if err != nil {
		return nil, err
	}
	out := make([]*big.Int, len(primes))
	for i, p := range primes {
		out[i] = new(big.Int).SetUint64(p)
	}
	return out, nil
}

func mustSieve(limit int) []*big.Int {
	out, err := bigSieve(limit)
	if err != nil {
		panic(err)
	}
	return out
}
