package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/crillab/logcalc/logic"
	"github.com/crillab/logcalc/truthtable"
	"github.com/crillab/logcalc/view"
	log "github.com/golang/glog"
)

func main() {
	var (
		sets  assignments
		tree  bool
		table bool
		color bool
	)
	flag.Var(&sets, "set", "binds a variable of the formula, as name=value; can be repeated")
	flag.BoolVar(&tree, "tree", false, "prints the structure of the formula")
	flag.BoolVar(&table, "table", false, "prints the truth table of the formula")
	flag.BoolVar(&color, "color", false, "colors the result column of the truth table")
	flag.Parse()
	defer log.Flush()
	if len(flag.Args()) != 0 {
		fmt.Fprintf(os.Stderr, "Syntax : %s [options]\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}
	if err := run(os.Stdout, sets, tree, table, color); err != nil {
		log.Exitf("logcalc: %v", err)
	}
}

// An assignment binds a variable name to a value.
type assignment struct {
	name  string
	value bool
}

// assignments is a flag.Value collecting every -set option, in order.
type assignments []assignment

func (a *assignments) String() string {
	strs := make([]string, len(*a))
	for i, as := range *a {
		strs[i] = fmt.Sprintf("%s=%t", as.name, as.value)
	}
	return strings.Join(strs, ",")
}

func (a *assignments) Set(s string) error {
	name, val, ok := strings.Cut(s, "=")
	if !ok || name == "" {
		return fmt.Errorf("invalid assignment %q, expected name=value", s)
	}
	b, err := strconv.ParseBool(val)
	if err != nil {
		return fmt.Errorf("invalid value for %q: %w", name, err)
	}
	*a = append(*a, assignment{name: name, value: b})
	return nil
}

// demoFormula returns the formula -a v (b -> c ^ -a) and its variables, indexed by name.
func demoFormula() (logic.Expr, map[string]*logic.Variable) {
	a, b, c := logic.NewVariable("a"), logic.NewVariable("b"), logic.NewVariable("c")
	f := logic.Or(
		logic.Not(logic.Identity(a)),
		logic.Implication(
			logic.Identity(b),
			logic.And(logic.Identity(c), logic.Not(logic.Identity(a))),
		),
	)
	return f, map[string]*logic.Variable{"a": a, "b": b, "c": c}
}

func run(w io.Writer, sets assignments, tree, table, color bool) error {
	f, vars := demoFormula()
	for _, as := range sets {
		v, ok := vars[as.name]
		if !ok {
			return fmt.Errorf("formula %v has no variable %q", f, as.name)
		}
		log.V(1).Infof("setting %s to %t", as.name, as.value)
		v.SetValue(as.value)
	}
	if _, err := fmt.Fprintf(w, "%v\nvalue: %t\n", f, logic.Eval(f)); err != nil {
		return fmt.Errorf("could not write result: %w", err)
	}
	if tree {
		if _, err := io.WriteString(w, view.Tree(f)); err != nil {
			return fmt.Errorf("could not write tree: %w", err)
		}
	}
	if table {
		t, err := truthtable.Build(f)
		if err != nil {
			return err
		}
		if err := truthtable.Write(w, t, color); err != nil {
			return err
		}
	}
	return nil
}
