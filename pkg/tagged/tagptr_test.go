package tagged_test

import (
	"math"
	"runtime"
	"testing"
	"time"

	"github.com/brickingsoft/ptr"
	"github.com/brickingsoft/ptr/pkg/tagged"
)

func TestPack(t *testing.T) {
	n := &time.Time{}
	*n = time.Now()
	p := ptr.AddressOf(n)
	tp := tagged.Pack(p, math.MaxUint8)
	t.Log(tp, tp.Pointer(), tp.Tag())
	if tp.Pointer() != p {
		t.Fatal("address lost:", tp.Pointer(), p)
	}
	if tp.Tag() != math.MaxUint8 {
		t.Fatal("tag lost:", tp.Tag())
	}
	if !tp.Value().Equal(*n) {
		t.Fatal("value mismatch")
	}
	runtime.KeepAlive(n)
}

func TestPack_Null(t *testing.T) {
	tp := tagged.Pack(ptr.Null[int64](), 3)
	if !tp.IsNull() {
		t.Fatal("null address did not survive packing")
	}
	if tp.Tag() != 3 {
		t.Fatal("tag lost:", tp.Tag())
	}
}
