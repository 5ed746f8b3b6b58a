package reaction_test

import (
	"testing"

	"github.com/katalvlaran/stoich/reaction"
)

// benchmarkBalance parses the equation once, then balances it b.N times.
func benchmarkBalance(b *testing.B, input string) {
	eq, err := reaction.ParseEquation(input)
	if err != nil {
		b.Fatalf("ParseEquation failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = eq.Balance(); err != nil {
			b.Fatalf("Balance failed: %v", err)
		}
	}
}

// BenchmarkBalance_Water benchmarks the smallest nontrivial system (2×3).
func BenchmarkBalance_Water(b *testing.B) {
	benchmarkBalance(b, "H2O = H2 + O2")
}

// BenchmarkBalance_Photosynthesis benchmarks a 3×4 system.
func BenchmarkBalance_Photosynthesis(b *testing.B) {
	benchmarkBalance(b, "CO2 + H2O = C6H12O6 + O2")
}

// BenchmarkBalance_SodiumPalmitate benchmarks a 6×4 system with grouped
// formulas and large atom counts.
func BenchmarkBalance_SodiumPalmitate(b *testing.B) {
	benchmarkBalance(b, "C15H31COONa + CaCl2 = (C15H31COO)2Ca + NaCl")
}

// BenchmarkParseEquation benchmarks the split-and-parse front door alone.
func BenchmarkParseEquation(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := reaction.ParseEquation("C15H31COONa + CaCl2 = (C15H31COO)2Ca + NaCl"); err != nil {
			b.Fatalf("ParseEquation failed: %v", err)
		}
	}
}
