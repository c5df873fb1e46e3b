package main

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestAssignmentsSet(t *testing.T) {
	var sets assignments
	for _, s := range []string{"a=true", "b=0", "a=F"} {
		if err := sets.Set(s); err != nil {
			t.Fatalf("Set(%q) returned with unexpected error %v", s, err)
		}
	}
	want := assignments{{"a", true}, {"b", false}, {"a", false}}
	if diff := cmp.Diff(want, sets, cmp.AllowUnexported(assignment{})); diff != "" {
		t.Errorf("Set() returned with unexpected diff (-want+got):\n%s", diff)
	}
	if got := sets.String(); got != "a=true,b=false,a=false" {
		t.Errorf("String() = %q, want %q", got, "a=true,b=false,a=false")
	}
}

func TestAssignmentsSetInvalid(t *testing.T) {
	for _, s := range []string{"a", "=true", "a=maybe", ""} {
		var sets assignments
		if err := sets.Set(s); err == nil {
			t.Errorf("Set(%q) should have failed", s)
		}
	}
}

func TestRun(t *testing.T) {
	tests := []struct {
		sets assignments
		want string
	}{
		{assignments{{"b", true}}, "-a v (b -> c ^ -a)\nvalue: true\n"},
		{assignments{{"a", true}, {"b", true}}, "-a v (b -> c ^ -a)\nvalue: false\n"},
	}
	for _, test := range tests {
		var sb strings.Builder
		if err := run(&sb, test.sets, false, false, false); err != nil {
			t.Fatalf("run(%v) returned with unexpected error %v", test.sets, err)
		}
		if diff := cmp.Diff(test.want, sb.String()); diff != "" {
			t.Errorf("run(%v) returned with unexpected diff (-want+got):\n%s", test.sets, diff)
		}
	}
}

func TestRunTable(t *testing.T) {
	var sb strings.Builder
	if err := run(&sb, nil, true, true, false); err != nil {
		t.Fatalf("run() returned with unexpected error %v", err)
	}
	out := sb.String()
	for _, want := range []string{"value: true", "implication: (b -> c ^ -a)", "a  b  c  -a v (b -> c ^ -a)", "T  T  F  F"} {
		if !strings.Contains(out, want) {
			t.Errorf("output lacks %q:\n%s", want, out)
		}
	}
}

func TestRunUnknownVariable(t *testing.T) {
	var sb strings.Builder
	if err := run(&sb, assignments{{"d", true}}, false, false, false); err == nil {
		t.Errorf("run() with an unknown variable should have failed")
	}
}
