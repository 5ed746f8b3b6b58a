// Package formula parses chemical formula strings into element/atom-count
// maps, handling arbitrarily nested parenthesized groups with optional
// multiplier suffixes.
//
// 🚀 What does it accept?
//
//	A formula is a sequence of terms:
//	  • an element symbol — one uppercase letter plus optional lowercase
//	    letters — with an optional decimal count (default 1), e.g. `H2`,
//	    `Na`, `Cl2`
//	  • a parenthesized sub-formula with an optional decimal multiplier
//	    applied to everything inside, e.g. `(OH)2`, `(C15H31COO)2Ca`
//	Groups nest to unbounded depth; repeated symbols merge additively:
//	  Parse("CH3COONa") → {C:2 H:3 O:2 Na:1}
//
// ✨ Guarantees:
//
//   - Deterministic – a pure function of its input, safe for concurrent use
//   - Exact – counts are checked int64; overflow is reported, never wrapped
//   - Immutable – a parsed Formula owns its map; accessors return copies
//   - No panics – every malformed input maps to a sentinel error
//
// ⚙️ Usage:
//
//	f, err := formula.Parse("Mg(OH)2")
//	if err != nil {
//	  // errors.Is(err, formula.ErrUnmatchedClose), etc.
//	}
//	f.Count("O")    // 2
//	f.Elements()    // [H Mg O], sorted
//	f.Source()      // "Mg(OH)2", verbatim
//
// The parser is an explicit character state machine over an owned stack
// of scope accumulators — no recursion, so nesting depth is limited only
// by memory. See Parse for the full transition table.
package formula
