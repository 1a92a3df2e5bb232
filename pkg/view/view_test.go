package view

import "testing"

func TestViewAliasing(t *testing.T) {
	p := []byte{1, 2, 3, 4}

	m := Mutable(p)
	if m.Len() != 4 {
		t.Errorf("Mutable.Len() = %d, want 4", m.Len())
	}

	// Writes through the view must land in the backing slice.
	m.Bytes()[0] = 9
	if p[0] != 9 {
		t.Errorf("write through MutableView not visible in backing slice")
	}

	c := Const(p)
	if c.Len() != 4 {
		t.Errorf("Const.Len() = %d, want 4", c.Len())
	}
	if &c.Bytes()[0] != &p[0] {
		t.Errorf("ConstView copied instead of aliasing")
	}
}

func TestWidening(t *testing.T) {
	p := []byte("abc")
	m := Mutable(p)
	c := m.Const()

	if c.Len() != m.Len() {
		t.Errorf("widened view length = %d, want %d", c.Len(), m.Len())
	}
	if &c.Bytes()[0] != &p[0] {
		t.Errorf("widened view does not alias the original region")
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"const", Const(make([]byte, 16)).String(), "const[16]"},
		{"mutable", Mutable(make([]byte, 3)).String(), "mutable[3]"},
		{"empty const", Const(nil).String(), "const[0]"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s String() = %q, want %q", tt.name, tt.got, tt.want)
		}
	}
}
