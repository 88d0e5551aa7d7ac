// SPDX-License-Identifier: MIT

package moments_test

import (
	"fmt"

	"github.com/katalvlaran/ppvstat/moments"
)

// ExampleStat reduces a uniform 2×2 block to its moments.
func ExampleStat() {
	st, err := moments.New(
		[]float64{1, 1, 1, 1},
		moments.IntIndices([][]int{{0, 0, 1, 1}, {0, 1, 0, 1}}),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("mom0:", st.Mom0())
	fmt.Println("mom1:", st.Mom1())
	fmt.Print(st.Mom2())

	v, _ := st.Mom2Along([]float64{1, 1})
	fmt.Println("along diagonal:", v)
	// Output:
	// mom0: 4
	// mom1: [0.5 0.5]
	// [0.25, 0]
	// [0, 0.25]
	// along diagonal: 0.25
}
