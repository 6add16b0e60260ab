package jot

import "testing"

func TestArrayAppendGrowth(t *testing.T) {
	c := Default()
	v := c.NewArray()
	a := v.Array()
	for i := 0; i < 1000; i++ {
		if err := a.AppendNumber(float64(i)); err != nil {
			t.Fatal(err)
		}
	}
	if a.Len() != 1000 {
		t.Fatalf("len = %d", a.Len())
	}
	for i := 0; i < 1000; i++ {
		if a.GetNumber(i) != float64(i) {
			t.Fatalf("at %d: %v", i, a.GetNumber(i))
		}
	}
	c.Free(v)
}

func TestArrayRemoveShifts(t *testing.T) {
	c := Default()
	v, err := c.ParseString(`[0,1,2,3,4]`)
	if err != nil {
		t.Fatal(err)
	}
	a := v.Array()
	if err = a.Remove(2); err != nil {
		t.Fatal(err)
	}
	want := []float64{0, 1, 3, 4}
	if a.Len() != len(want) {
		t.Fatalf("len = %d", a.Len())
	}
	for i, n := range want {
		if a.GetNumber(i) != n {
			t.Fatalf("at %d: %v, want %v", i, a.GetNumber(i), n)
		}
	}
	if err = a.Remove(4); err == nil {
		t.Fatal("out of range remove succeeded")
	}
	c.Free(v)
}

func TestArrayReplace(t *testing.T) {
	c := Default()
	v, err := c.ParseString(`[1,2,3]`)
	if err != nil {
		t.Fatal(err)
	}
	a := v.Array()
	if err = a.ReplaceText(1, "mid"); err != nil {
		t.Fatal(err)
	}
	if string(a.GetText(1)) != "mid" {
		t.Fatalf("at 1: %q", a.GetText(1))
	}
	if a.GetNumber(0) != 1 || a.GetNumber(2) != 3 {
		t.Fatal("neighbors disturbed")
	}
	if err = a.ReplaceNull(5); err == nil {
		t.Fatal("out of range replace succeeded")
	}
	c.Free(v)
}

func TestArrayClear(t *testing.T) {
	c := Default()
	v, err := c.ParseString(`[1,"two",null]`)
	if err != nil {
		t.Fatal(err)
	}
	a := v.Array()
	a.Clear()
	if a.Len() != 0 {
		t.Fatalf("len = %d", a.Len())
	}
	if a.At(0) != nil {
		t.Fatal("cleared element still reachable")
	}
	if err = a.AppendBool(true); err != nil {
		t.Fatal(err)
	}
	if b, ok := a.GetBool(0); !ok || !b {
		t.Fatal("append after clear broken")
	}
	c.Free(v)
}

func TestArrayNilSafety(t *testing.T) {
	var a *Array
	if a.Len() != 0 || a.At(0) != nil || a.Wrap() != nil {
		t.Fatal("nil array accessors not neutral")
	}
	if a.GetText(0) != nil || a.GetNumber(0) != 0 {
		t.Fatal("nil array typed accessors not neutral")
	}
}
