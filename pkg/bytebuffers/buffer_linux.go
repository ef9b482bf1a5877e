//go:build linux

package bytebuffers

import "golang.org/x/sys/unix"

// allocate maps an anonymous private area outside the Go heap, so the
// collector never scans or moves buffer contents.
func allocate(size int) (b []byte, err error) {
	b, err = unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANONYMOUS)
	return
}

func release(b []byte) error {
	return unix.Munmap(b)
}
