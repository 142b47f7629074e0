package floatbits_test

import (
	"fmt"
	"sort"

	floatbits "github.com/chronos-tachyon/float-bits"
)

func ExampleF64FromFloat64() {
	x := 0.1
	y := floatbits.F64FromFloat64(x)
	z := y.Float64()
	fmt.Println(x == z)
	fmt.Printf("%#016x\n", y.Bits())
	// Output:
	// true
	// 0x3fb999999999999a
}

func ExampleF64_TotalCmp() {
	values := []floatbits.F64{
		floatbits.F64QNaN,
		floatbits.F64One,
		floatbits.F64NegInfinity,
		floatbits.F64NegZero,
		floatbits.F64Zero,
	}
	sort.Slice(values, func(i, j int) bool {
		return values[i].TotalCmp(values[j]) < 0
	})
	for _, v := range values {
		fmt.Println(v)
	}
	// Output:
	// -Inf
	// -0
	// 0
	// 1
	// NaN
}

func ExampleF32_Clamp() {
	x := floatbits.F32FromFloat32(2.5)
	fmt.Println(x.Clamp(floatbits.F32NegOne, floatbits.F32One))
	// Output:
	// 1
}
