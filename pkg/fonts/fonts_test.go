package fonts

import "testing"

func TestFaceNeverNil(t *testing.T) {
	face := Face(12)
	if face == nil {
		t.Fatal("Face(12) returned nil")
	}

	metrics := face.Metrics()
	if metrics.Height <= 0 {
		t.Errorf("Face(12) metrics height = %v, want > 0", metrics.Height)
	}
}

func TestFaceCachedPerSize(t *testing.T) {
	a := Face(24)
	b := Face(24)
	if a != b {
		t.Error("Face(24) called twice returned different faces, want cached")
	}

	c := Face(36)
	if c == a {
		t.Error("Face(36) returned the 24pt face")
	}
}
