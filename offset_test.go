package ptr_test

import (
	"testing"

	"github.com/brickingsoft/ptr"
)

type triple struct {
	a int64
	b int8
	c int32
}

func offsetIdentity[T any](t *testing.T, v *T) {
	t.Helper()
	p := ptr.AddressOf(v)
	if ptr.Offset(p, 0) != p {
		t.Fatalf("Offset(p, 0) != p for %T", *v)
	}
	mp := ptr.MutAddressOf(v)
	if ptr.MutOffset(mp, 0) != mp {
		t.Fatalf("MutOffset(p, 0) != p for %T", *v)
	}
	if n := ptr.Null[T](); ptr.Offset(n, 0) != n {
		t.Fatalf("Offset(null, 0) != null for %T", *v)
	}
}

func TestOffset_Zero(t *testing.T) {
	offsetIdentity(t, new(int8))
	offsetIdentity(t, new(uint16))
	offsetIdentity(t, new(triple))
	offsetIdentity(t, new([3]int64))
	offsetIdentity(t, new(struct{}))
}

func TestOffset_Associative(t *testing.T) {
	var arr [16]uint32
	p := ptr.AddressOf(&arr[0])
	for a := uint(0); a < 8; a++ {
		for b := uint(0); b < 8; b++ {
			stepped := ptr.Offset(ptr.Offset(p, a), b)
			if once := ptr.Offset(p, a+b); stepped != once {
				t.Fatalf("Offset(Offset(p, %d), %d) = %v, Offset(p, %d) = %v", a, b, stepped, a+b, once)
			}
		}
	}
}

func TestOffset_ScalesByElement(t *testing.T) {
	var arr [4]triple
	p := ptr.AddressOf(&arr[0])
	for i := range arr {
		if got, want := ptr.Offset(p, uint(i)), ptr.AddressOf(&arr[i]); got != want {
			t.Fatalf("element %d: got %v, want %v", i, got, want)
		}
	}
	size := ptr.SizeOf[triple]()
	if diff := ptr.Offset(p, 3).Addr() - p.Addr(); diff != 3*size {
		t.Fatal("expected byte distance", 3*size, "got", diff)
	}

	mp := ptr.MutAddressOf(&arr[0])
	ptr.MutOffset(mp, 2).Store(triple{a: 7})
	if arr[2].a != 7 {
		t.Fatal("store through MutOffset missed its element")
	}
}

func TestNull(t *testing.T) {
	if !ptr.IsNull(ptr.Null[int]()) {
		t.Fatal("null is not null")
	}
	if !ptr.IsNull(ptr.Null[triple]()) {
		t.Fatal("null is not null")
	}
	if !ptr.MutNull[uint16]().IsNull() {
		t.Fatal("mutable null is not null")
	}
	if ptr.Null[int]().Addr() != 0 {
		t.Fatal("null has a non-zero address")
	}

	v := triple{}
	p := ptr.AddressOf(&v)
	if !ptr.IsNotNull(p) || p.IsNull() {
		t.Fatal("address of a live value reported null")
	}
	if ptr.MutAddressOf(&v).IsNull() {
		t.Fatal("mutable address of a live value reported null")
	}
}
