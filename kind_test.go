package lisaobj

import "testing"

func TestBlockKindString(t *testing.T) {
	cases := []struct {
		k    BlockKind
		want string
	}{
		{EOFMark, "EOFMark"},
		{ModuleName, "ModuleName"},
		{Executable, "Executable"},
		{PackTableKind, "PackTable"},
		{BlockKind(0xFF), "Unknown($ff)"},
	}
	for _, c := range cases {
		if got := c.k.String(); got != c.want {
			t.Errorf("BlockKind(%#x).String() = %q, want %q", byte(c.k), got, c.want)
		}
	}
}

func TestBlockKindKnown(t *testing.T) {
	if !ModuleName.known() {
		t.Error("ModuleName.known() = false, want true")
	}
	if BlockKind(0xFF).known() {
		t.Error("BlockKind(0xFF).known() = true, want false")
	}
}

func TestUnitTypeString(t *testing.T) {
	if got := IntrinsicUnit.String(); got != "Intrinsic" {
		t.Errorf("got %q, want Intrinsic", got)
	}
	if got := UnitType(9).String(); got != "Unknown($0009)" {
		t.Errorf("got %q, want Unknown($0009)", got)
	}
}
