package logic

// Children returns the direct subformulas of e, from left to right.
// It returns nil for an identity.
func Children(e Expr) []Expr {
	switch e := e.(type) {
	case identity:
		return nil
	case not:
		return []Expr{e[0]}
	case and:
		return []Expr{e[0], e[1]}
	case or:
		return []Expr{e[0], e[1]}
	case implication:
		return []Expr{e[0], e[1]}
	case equivalence:
		return []Expr{e[0], e[1]}
	default:
		panic("invalid formula type")
	}
}

// Walk traverses e in pre-order, calling fn on each node.
// If fn returns false, the children of that node are skipped.
func Walk(e Expr, fn func(Expr) bool) {
	if !fn(e) {
		return
	}
	for _, sub := range Children(e) {
		Walk(sub, fn)
	}
}

// VarOf returns the variable referenced by e, or nil if e is not an identity.
func VarOf(e Expr) *Variable {
	if id, ok := e.(identity); ok {
		return id.v
	}
	return nil
}

// Vars returns the variables referenced in e, in order of first appearance.
// Variables are distinguished by identity, not by name.
func Vars(e Expr) []*Variable {
	var res []*Variable
	seen := make(map[*Variable]bool)
	Walk(e, func(sub Expr) bool {
		if v := VarOf(sub); v != nil && !seen[v] {
			seen[v] = true
			res = append(res, v)
		}
		return true
	})
	return res
}
