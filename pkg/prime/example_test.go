package prime_test

import (
	"fmt"
	"math/big"

	"nextprime/pkg/prime"
)

func ExampleComputeNextPrime() {
	next, err := prime.ComputeNextPrime(big.NewInt(7907))
	if err != nil {
		panic(err)
	}
	fmt.Println(next)
	// Output: 7919
}

func ExampleNextPrime() {
	first, _ := prime.NextPrime(nil)
	second, _ := prime.NextPrime(first)
	fmt.Println(first, second)
	// Output: 2 3
}

func ExampleIsBaillieWagstaffPrime() {
	for _, n := range []int64{561, 7919} {
		ok, _ := prime.IsBaillieWagstaffPrime(big.NewInt(n), prime.DefaultSieveLimit)
		fmt.Println(n, ok)
	}
	// Output:
	// 561 false
	// 7919 true
}
