// Package view formats logic formulas for terminal display.
package view

import (
	"fmt"

	"github.com/crillab/logcalc/logic"
	"github.com/xlab/treeprint"
)

// Tree returns the structure of e as an indented tree.
// Each connective is labelled with its name and the subformula it roots;
// each variable with its name and current value.
func Tree(e logic.Expr) string {
	root := treeprint.NewWithRoot(label(e))
	populateTreeNode(root, e)
	return root.String()
}

func label(e logic.Expr) string {
	if v := logic.VarOf(e); v != nil {
		return fmt.Sprintf("%s = %t", v.Name(), v.Value())
	}
	return fmt.Sprintf("%s: %v", logic.Op(e), e)
}

func populateTreeNode(tree treeprint.Tree, e logic.Expr) {
	for _, sub := range logic.Children(e) {
		if logic.Op(sub) == logic.IdentityOp {
			tree.AddNode(label(sub))
			continue
		}
		populateTreeNode(tree.AddBranch(label(sub)), sub)
	}
}
