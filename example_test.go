package londinium_test

import (
	"fmt"

	"github.com/tzneal/londinium"
)

func ExampleTransverseMercator_ToPlanar() {
	en, _ := londinium.DefaultNationalGrid.ToPlanar([]float64{-2, 49})
	fmt.Println(en)
	// Output: [[400000 -100000]]
}

func ExampleTransverseMercator_ToEllipsoidal() {
	ll, _ := londinium.DefaultNationalGrid.ToEllipsoidal([]float64{530500, 181500})
	fmt.Printf("%.4f %.4f\n", ll[0][0], ll[0][1])
	// Output: -0.1190 51.5168
}

func ExampleDatumShift_Apply() {
	osgb, _ := londinium.DefaultWGS84ToOSGB36.Apply([]float64{-0.1246, 51.5007})
	en, _ := londinium.DefaultNationalGrid.ToPlanar(osgb...)
	fmt.Printf("%.0f %.0f\n", en[0][0], en[0][1])
	// Output: 530270 179641
}
