package logic

import (
	"fmt"
	"strings"
)

// An Expr is a propositional formula.
// The set of formulas is closed: only the constructors of this package can build one.
type Expr interface {
	expr()
	Eval() bool
	String() string
}

// Connective identifies the kind of node at the root of a formula.
type Connective byte

const (
	// IdentityOp is a bare reference to a variable.
	IdentityOp = Connective(iota)
	// NotOp is a negation.
	NotOp
	// AndOp is a conjunction.
	AndOp
	// OrOp is a disjunction.
	OrOp
	// ImplicationOp is an implication.
	ImplicationOp
	// EquivalenceOp is an equivalence.
	EquivalenceOp
)

func (c Connective) String() string {
	switch c {
	case IdentityOp:
		return "identity"
	case NotOp:
		return "not"
	case AndOp:
		return "and"
	case OrOp:
		return "or"
	case ImplicationOp:
		return "implication"
	case EquivalenceOp:
		return "equivalence"
	default:
		panic("invalid connective")
	}
}

// Identity generates a formula whose value is the one of v.
func Identity(v *Variable) Expr {
	if v == nil {
		panic("logic: Identity of nil variable")
	}
	return identity{v}
}

type identity struct {
	v *Variable
}

// Not represents a negation. It negates the given subformula.
func Not(e Expr) Expr {
	checkSubs("Not", e)
	return not{e}
}

type not [1]Expr

// And generates the conjunction of two subformulas.
func And(left, right Expr) Expr {
	checkSubs("And", left, right)
	return and{left, right}
}

type and [2]Expr

// Or generates the disjunction of two subformulas.
func Or(left, right Expr) Expr {
	checkSubs("Or", left, right)
	return or{left, right}
}

type or [2]Expr

// Implication indicates left implies right.
func Implication(left, right Expr) Expr {
	checkSubs("Implication", left, right)
	return implication{left, right}
}

type implication [2]Expr

// Equivalence indicates left and right have the same value.
func Equivalence(left, right Expr) Expr {
	checkSubs("Equivalence", left, right)
	return equivalence{left, right}
}

type equivalence [2]Expr

func checkSubs(name string, subs ...Expr) {
	for i, sub := range subs {
		if sub == nil {
			panic(fmt.Sprintf("logic: %s with nil subformula at position %d", name, i))
		}
	}
}

func (identity) expr()    {}
func (not) expr()         {}
func (and) expr()         {}
func (or) expr()          {}
func (implication) expr() {}
func (equivalence) expr() {}

func (e identity) Eval() bool    { return Eval(e) }
func (e not) Eval() bool         { return Eval(e) }
func (e and) Eval() bool         { return Eval(e) }
func (e or) Eval() bool          { return Eval(e) }
func (e implication) Eval() bool { return Eval(e) }
func (e equivalence) Eval() bool { return Eval(e) }

func (e identity) String() string    { return Render(e) }
func (e not) String() string         { return Render(e) }
func (e and) String() string         { return Render(e) }
func (e or) String() string          { return Render(e) }
func (e implication) String() string { return Render(e) }
func (e equivalence) String() string { return Render(e) }

// Op returns the connective at the root of e.
func Op(e Expr) Connective {
	switch e.(type) {
	case identity:
		return IdentityOp
	case not:
		return NotOp
	case and:
		return AndOp
	case or:
		return OrOp
	case implication:
		return ImplicationOp
	case equivalence:
		return EquivalenceOp
	default:
		panic("invalid formula type")
	}
}

// Eval returns the truth value of e, given the current values of the variables it references.
// Variables are read again on each call.
func Eval(e Expr) bool {
	switch e := e.(type) {
	case identity:
		return e.v.Value()
	case not:
		return !Eval(e[0])
	case and:
		return Eval(e[0]) && Eval(e[1])
	case or:
		return Eval(e[0]) || Eval(e[1])
	case implication:
		return !Eval(e[0]) || Eval(e[1])
	case equivalence:
		return Eval(e[0]) == Eval(e[1])
	default:
		panic("invalid formula type")
	}
}

// Render returns the textual form of e.
// Negations are written "-x", conjunctions "x ^ y", disjunctions "x v y",
// implications "(x -> y)" and equivalences "x <-> y".
func Render(e Expr) string {
	var sb strings.Builder
	render(&sb, e)
	return sb.String()
}

func render(sb *strings.Builder, e Expr) {
	switch e := e.(type) {
	case identity:
		sb.WriteString(e.v.Name())
	case not:
		sb.WriteByte('-')
		render(sb, e[0])
	case and:
		renderBinary(sb, e[0], " ^ ", e[1])
	case or:
		renderBinary(sb, e[0], " v ", e[1])
	case implication:
		sb.WriteByte('(')
		renderBinary(sb, e[0], " -> ", e[1])
		sb.WriteByte(')')
	case equivalence:
		renderBinary(sb, e[0], " <-> ", e[1])
	default:
		panic("invalid formula type")
	}
}

func renderBinary(sb *strings.Builder, left Expr, op string, right Expr) {
	render(sb, left)
	sb.WriteString(op)
	render(sb, right)
}
