// Package logic evaluates and prints propositional formulas over named boolean variables.
//
// A formula is a tree whose leaves reference Variables. A Variable is a mutable cell:
// changing its value changes the result of every formula that references it the next time
// that formula is evaluated. Results are never cached.
//
// For example, the following formula:
//
// -a v (b -> c ^ -a)
//
// Will be defined with the following code:
//
//	a, b, c := NewVariable("a"), NewVariable("b"), NewVariable("c")
//	f := Or(Not(Identity(a)), Implication(Identity(b), And(Identity(c), Not(Identity(a)))))
//
// Calling `f.String()` gives back the text above. With b set to true and a, c left false,
// `Eval(f)` returns true; after `a.SetValue(true)`, it returns false.
//
// Formulas are printed with the following operators:
//
// - "-" for a negation, directly prefixed to its operand,
// - " ^ " for a conjunction,
// - " v " for a disjunction,
// - " -> " for an implication, the whole implication being enclosed in parentheses,
// - " <-> " for an equivalence.
//
// Only implications get parentheses, so the printed text is not meant to be parsed back.
package logic
