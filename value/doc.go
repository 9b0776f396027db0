// Package value defines the dynamically-typed value tree produced by
// parsing, together with its equality, ordering, and hashing contracts.
//
// The contracts are deliberately stricter than their IEEE or hash-map
// counterparts so that any Value can serve as a map key:
//
//   - Number floats: NaN == NaN, and NaN sorts below every other float
//     (including negative infinity).
//   - Struct and Map: identity is the ordered field/entry sequence, not
//     the unordered content. {a:1, b:2} and {b:2, a:1} are distinct.
//
// Compare induces a total order whose equivalence classes are exactly
// Equal; Hash is constant on those classes.
package value
