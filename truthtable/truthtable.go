// Package truthtable computes the truth table of a logic formula.
//
// The table is obtained by binding the variables of the formula to every
// possible combination of values and evaluating the formula each time.
// No search is involved: a formula over n variables always yields 2^n rows,
// so the number of variables is bounded by MaxVars.
package truthtable

import (
	"errors"
	"fmt"

	"github.com/crillab/logcalc/logic"
	log "github.com/golang/glog"
)

// MaxVars is the maximum number of distinct variables a formula can have for its table to be built.
const MaxVars = 20

// ErrTooManyVars is returned when a formula references more than MaxVars variables.
var ErrTooManyVars = errors.New("too many variables")

// A Row is a line in a truth table.
// Values are given in the same order as the Vars of the table.
type Row struct {
	Values []bool
	Result bool
}

// A Table is the truth table of a formula.
type Table struct {
	Formula string   // Textual form of the formula
	Vars    []string // Names of the variables, in order of first appearance in the formula
	Rows    []Row
}

// Build returns the truth table of e.
// Rows are ordered as binary numbers, the first variable being the most significant bit,
// so the first row binds every variable to false.
// The variables of e are modified while the table is built; they are given back
// their original values before Build returns.
func Build(e logic.Expr) (*Table, error) {
	vars := logic.Vars(e)
	n := len(vars)
	if n > MaxVars {
		return nil, fmt.Errorf("could not build truth table of %v: %d variables, maximum is %d: %w", e, n, MaxVars, ErrTooManyVars)
	}
	log.V(1).Infof("building truth table of %v over %d variables", e, n)
	saved := make([]bool, n)
	for i, v := range vars {
		saved[i] = v.Value()
	}
	defer func() {
		for i, v := range vars {
			v.SetValue(saved[i])
		}
	}()
	t := &Table{
		Formula: e.String(),
		Vars:    make([]string, n),
		Rows:    make([]Row, 0, 1<<n),
	}
	for i, v := range vars {
		t.Vars[i] = v.Name()
	}
	for i := 0; i < 1<<n; i++ {
		values := make([]bool, n)
		for j, v := range vars {
			values[j] = i&(1<<(n-j-1)) != 0
			v.SetValue(values[j])
		}
		row := Row{Values: values, Result: logic.Eval(e)}
		log.V(2).Infof("row %d: %v -> %t", i, values, row.Result)
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

// Count returns the number of rows for which the formula is true.
func (t *Table) Count() int {
	nb := 0
	for _, row := range t.Rows {
		if row.Result {
			nb++
		}
	}
	return nb
}

// Tautology indicates whether the formula is true on every row.
func (t *Table) Tautology() bool {
	return t.Count() == len(t.Rows)
}

// Contradiction indicates whether the formula is false on every row.
func (t *Table) Contradiction() bool {
	return t.Count() == 0
}
