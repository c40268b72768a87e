package sculpt

import (
	"testing"
)

func TestStripIndicesEqualLengths(t *testing.T) {
	got := stripIndices(0, 4, 4, 4, false)
	want := []uint32{
		0, 4, 1, 1, 4, 5,
		1, 5, 2, 2, 5, 6,
		2, 6, 3, 3, 6, 7,
	}
	if len(got) != len(want) {
		t.Fatalf("index count = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("index %d = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestStripIndicesReverseRight(t *testing.T) {
	got := stripIndices(0, 4, 4, 4, true)
	// The right-side correspondence of the forward case, mirrored exactly.
	want := []uint32{
		0, 7, 1, 1, 7, 6,
		1, 6, 2, 2, 6, 5,
		2, 5, 3, 3, 5, 4,
	}
	if len(got) != len(want) {
		t.Fatalf("index count = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("index %d = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestStripIndicesUnequalLengths(t *testing.T) {
	tests := []struct {
		name              string
		leftLen, rightLen int
		reverseRight      bool
	}{
		{"right shorter", 5, 2, false},
		{"right shorter reversed", 5, 2, true},
		{"right longer", 3, 7, false},
		{"right single", 4, 1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			indices := stripIndices(0, tt.leftLen, tt.leftLen, tt.rightLen, tt.reverseRight)
			if len(indices) != (tt.leftLen-1)*6 {
				t.Errorf("index count = %d, want %d", len(indices), (tt.leftLen-1)*6)
			}
			total := uint32(tt.leftLen + tt.rightLen)
			for i, idx := range indices {
				if idx >= total {
					t.Errorf("index %d = %d, out of range (%d vertices)", i, idx, total)
				}
			}
		})
	}
}

func TestStripIndicesDegenerate(t *testing.T) {
	if got := stripIndices(0, 1, 1, 4, false); got != nil {
		t.Errorf("single left vertex produced %v, want nil", got)
	}
	if got := stripIndices(0, 4, 4, 0, false); got != nil {
		t.Errorf("empty right range produced %v, want nil", got)
	}
}
