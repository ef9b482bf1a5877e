package memory_test

import (
	"bytes"
	"testing"
	"unsafe"

	"github.com/brickingsoft/ptr/pkg/memory"
)

func TestMemcpy(t *testing.T) {
	src := []byte("0123456789")
	dst := make([]byte, len(src))
	r := memory.Memcpy(unsafe.Pointer(&dst[0]), unsafe.Pointer(&src[0]), uintptr(len(src)))
	if r != unsafe.Pointer(&dst[0]) {
		t.Fatal("Memcpy did not return dst")
	}
	if !bytes.Equal(dst, src) {
		t.Fatal(string(dst))
	}
}

func TestMemmove(t *testing.T) {
	b := []byte("0123456789")
	memory.Memmove(unsafe.Pointer(&b[3]), unsafe.Pointer(&b[0]), 5)
	if string(b) != "0120123489" {
		t.Fatal("forward:", string(b))
	}
	b = []byte("0123456789")
	memory.Memmove(unsafe.Pointer(&b[0]), unsafe.Pointer(&b[3]), 5)
	if string(b) != "3456756789" {
		t.Fatal("backward:", string(b))
	}
}

func TestZeroLength(t *testing.T) {
	if r := memory.Memmove(nil, nil, 0); r != nil {
		t.Fatal("expected nil")
	}
	if r := memory.Memcpy(nil, nil, 0); r != nil {
		t.Fatal("expected nil")
	}
}
