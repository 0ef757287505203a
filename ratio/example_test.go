package ratio_test

import (
	"fmt"

	"kit/ratio"
)

func ExampleRatio_Add() {
	a := ratio.MustNew(3, 4)
	b := ratio.MustNew(0, 4)

	sum, err := a.Add(b)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(sum, sum.Reduce())
	// Output: 12/16 3/4
}

func ExampleRatio_Compare() {
	half := ratio.MustNew(1, 2)
	quarters := ratio.MustNew(2, 4)

	fmt.Println(half.Compare(quarters), half.Equal(quarters), ratio.ByValue.Equal(half, quarters))
	// Output: 0 false true
}

func ExampleParse() {
	r, err := ratio.Parse("6/-8")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%v = %.3f\n", r, r)
	// Output: -6/8 = -0.750
}
