package ptr_test

import (
	"testing"

	"github.com/ahautala/repapp/internal/ptr"
)

func TestRef(t *testing.T) {
	s := ptr.Ref("bench press")
	if s == nil || *s != "bench press" {
		t.Errorf("Ref(%q) = %v", "bench press", s)
	}

	n := ptr.Ref(3)
	if n == nil || *n != 3 {
		t.Errorf("Ref(%d) = %v", 3, n)
	}
}
