package semigroup

import "testing"

func TestSlice_PreservesOrderAndOperands(t *testing.T) {
	t.Parallel()
	sg := Slice[string]()
	a := []string{"x"}
	b := []string{"y", "z"}
	got := sg.Concat(a, b)
	if len(got) != 3 || got[0] != "x" || got[1] != "y" || got[2] != "z" {
		t.Fatalf("unexpected concat result: %v", got)
	}
	if len(a) != 1 || len(b) != 2 {
		t.Fatalf("operands mutated")
	}
}

func TestFirstLast(t *testing.T) {
	t.Parallel()
	if First[int]().Concat(1, 2) != 1 {
		t.Fatalf("expected first operand")
	}
	if Last[int]().Concat(1, 2) != 2 {
		t.Fatalf("expected last operand")
	}
}

func TestFromConcat_Associative(t *testing.T) {
	t.Parallel()
	sum := FromConcat(func(a, b int) int { return a + b })
	if sum.Concat(sum.Concat(1, 2), 3) != sum.Concat(1, sum.Concat(2, 3)) {
		t.Fatalf("associativity violated")
	}
}
