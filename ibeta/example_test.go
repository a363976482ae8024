package ibeta_test

import (
	"fmt"

	"gonum.org/v1/gonum/mathext"

	"github.com/katalvlaran/rootfind/ibeta"
)

// ExampleInverse recovers x = 0.3 from I_x(2, 3) with every method.
func ExampleInverse() {
	z := mathext.RegIncBeta(2, 3, 0.3)
	for _, m := range ibeta.Methods() {
		x, _, err := ibeta.Inverse(m, 2, 3, z)
		if err != nil {
			fmt.Println(err)
			return
		}
		fmt.Printf("%s: %.6f\n", m, x)
	}
	// Output:
	// bisect: 0.300000
	// newton: 0.300000
	// halley: 0.300000
	// schroder: 0.300000
}

// ExampleWithComplement solves the upper tail 1 - I_x(a, b) = z.
func ExampleWithComplement() {
	q := 1 - mathext.RegIncBeta(5, 2, 0.75)
	x, _, err := ibeta.Inverse(ibeta.Halley, 5, 2, q, ibeta.WithComplement())
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%.6f\n", x)
	// Output: 0.750000
}

func ExampleParseMethod() {
	m, err := ibeta.ParseMethod("Schroder")
	fmt.Println(m, err)
	_, err = ibeta.ParseMethod("secant")
	fmt.Println(err)
	// Output:
	// schroder <nil>
	// ibeta: unknown method: "secant"
}
