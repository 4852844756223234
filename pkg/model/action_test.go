package model

import "testing"

func TestActionInverseMove(t *testing.T) {
	a := NewMove(3, 1, 2)
	inv := a.Inverse()
	want := NewMove(3, 2, 1)
	if inv != want {
		t.Fatalf("Inverse() = %+v, want %+v", inv, want)
	}
}

func TestActionInverseSwap(t *testing.T) {
	a := NewSwap(1, 10, 2, 20)
	inv := a.Inverse()
	want := NewSwap(1, 20, 2, 10)
	if inv != want {
		t.Fatalf("Inverse() = %+v, want %+v", inv, want)
	}
}

func TestActionInverseAssign(t *testing.T) {
	a := NewAssign(5, 7)
	inv := a.Inverse()
	if inv.Kind != ActionMove || inv.Region != 5 || inv.From != 7 || inv.To != -1 {
		t.Fatalf("Inverse() = %+v, want a move of region 5 off server 7", inv)
	}
}

func TestActionInverseNull(t *testing.T) {
	if Null.Inverse() != Null {
		t.Fatalf("Inverse of Null must be Null")
	}
}
