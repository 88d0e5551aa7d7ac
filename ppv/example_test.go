// SPDX-License-Identifier: MIT

package ppv_test

import (
	"fmt"

	"github.com/katalvlaran/ppvstat/metadata"
	"github.com/katalvlaran/ppvstat/moments"
	"github.com/katalvlaran/ppvstat/ppv"
	"github.com/katalvlaran/ppvstat/units"
)

// ExampleStat_Flux shows unit tags flowing from metadata into a derived quantity.
func ExampleStat_Flux() {
	st, err := moments.New(
		[]float64{2, 2, 2, 2},
		[][]float64{{0, 0, 1, 1}, {0, 1, 0, 1}, {0, 0, 0, 0}},
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	md := metadata.Record{
		ppv.KeyDX:    units.New(2, units.Arcsecond),
		ppv.KeyDV:    units.New(0.5, units.MustParse("km/s")),
		ppv.KeyBUnit: units.New(1, units.Symbol("K")),
	}

	flux, _ := ppv.New(st, md).Flux()
	fmt.Println(flux)
	// Output:
	// 16 K arcsec2 km s-1
}
