//go:build amd64 || arm64 || loong64 || mips64 || mips64le || ppc64 || ppc64le || riscv64 || s390x || wasm

package tagged

import (
	"runtime"
	"unsafe"

	"github.com/brickingsoft/ptr"
)

const (
	addrBits        = 48
	tagBits         = 64 - addrBits + 3
	aixAddrBits     = 57
	aixTagBits      = 64 - aixAddrBits + 3
	riscv64AddrBits = 56
	riscv64TagBits  = 64 - riscv64AddrBits + 3
)

// Pack creates a tagged Pointer from an address and a tag.
// The address must be 8-byte aligned. Tag bits that don't fit in the result
// are discarded.
func Pack[E any](p ptr.Pointer[E], tag uintptr) Pointer[E] {
	addr := uint64(p.Addr())
	if runtime.GOOS == "aix" {
		if runtime.GOARCH != "ppc64" {
			panic("check this code for aix on non-ppc64")
		}
		return Pointer[E](addr<<(64-aixAddrBits) | uint64(tag&(1<<aixTagBits-1)))
	}
	if runtime.GOARCH == "riscv64" {
		return Pointer[E](addr<<(64-riscv64AddrBits) | uint64(tag&(1<<riscv64TagBits-1)))
	}
	return Pointer[E](addr<<(64-addrBits) | uint64(tag&(1<<tagBits-1)))
}

// Pointer returns the address from a tagged Pointer.
func (tp Pointer[E]) Pointer() ptr.Pointer[E] {
	return ptr.FromUnsafe[E](unsafe.Pointer(tp.addr()))
}

func (tp Pointer[E]) addr() uintptr {
	if runtime.GOARCH == "amd64" {
		// amd64 systems can place the stack above the VA hole, so we need to sign extend
		// val before unpacking.
		return uintptr(int64(tp) >> tagBits << 3)
	}
	if runtime.GOOS == "aix" {
		return uintptr((tp >> aixTagBits << 3) | 0xa<<56)
	}
	if runtime.GOARCH == "riscv64" {
		return uintptr(tp >> riscv64TagBits << 3)
	}
	return uintptr(tp >> tagBits << 3)
}

// Tag returns the tag from a tagged Pointer.
func (tp Pointer[E]) Tag() uintptr {
	isAix := 0
	if runtime.GOOS == "aix" {
		isAix = 1
	}
	isRiscv64 := 0
	if runtime.GOARCH == "riscv64" {
		isRiscv64 = 1
	}
	taggedPointerBits := (isAix * aixTagBits) + (isRiscv64 * riscv64TagBits) + ((1 - isAix) * (1 - isRiscv64) * tagBits)
	return uintptr(tp & (1<<taggedPointerBits - 1))
}
