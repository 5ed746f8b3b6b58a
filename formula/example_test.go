package formula_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/stoich/formula"
)

// ExampleParse demonstrates parsing a flat formula with a multi-letter
// symbol and additive merging of repeated symbols.
func ExampleParse() {
	f, err := formula.Parse("CH3COONa")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for _, sym := range f.Elements() {
		fmt.Printf("%s=%d\n", sym, f.Count(sym))
	}
	// Output:
	// C=2
	// H=3
	// Na=1
	// O=2
}

// ExampleParse_nestedGroups shows multipliers distributing over a
// parenthesized group.
func ExampleParse_nestedGroups() {
	f, _ := formula.Parse("Mg(OH)2")

	fmt.Println("Mg:", f.Count("Mg"))
	fmt.Println("O: ", f.Count("O"))
	fmt.Println("H: ", f.Count("H"))
	// Output:
	// Mg: 1
	// O:  2
	// H:  2
}

// ExampleParse_invalid shows sentinel matching on a malformed formula.
func ExampleParse_invalid() {
	_, err := formula.Parse("H2O)")

	fmt.Println(errors.Is(err, formula.ErrUnmatchedClose))
	// Output:
	// true
}
