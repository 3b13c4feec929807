// Package layouts provides the compiled-in layout template registry.
//
// Each of the ten archetypes maps to exactly one structural template:
// an ordered sequence of named sections with daisyUI markup fragments.
// The set is closed, with no runtime registration, so every archetype
// is exhaustively testable.
package layouts
