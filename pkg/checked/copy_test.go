package checked_test

import (
	"testing"

	"github.com/brickingsoft/ptr/pkg/checked"
	"github.com/stretchr/testify/require"
)

func TestCopyNonoverlapping(t *testing.T) {
	src := []uint16{32000, 32001, 32002}
	dst := []uint16{0, 0, 0, 0, 0}

	n, err := checked.CopyNonoverlapping(checked.Of(dst), checked.Of(src))
	require.NoError(t, err)
	require.Equal(t, uint(3), n)
	require.Equal(t, []uint16{32000, 32001, 32002, 0, 0}, dst)

	n, err = checked.CopyNonoverlapping(checked.Of(dst[:1]), checked.Of(src[2:]))
	require.NoError(t, err)
	require.Equal(t, uint(1), n)
	require.Equal(t, []uint16{32002, 32001, 32002, 0, 0}, dst)
}

func TestCopyNonoverlapping_Overlap(t *testing.T) {
	buf := []byte("0123456789")
	s := checked.Of(buf)
	dst, _ := s.Sub(2, 8)
	src, _ := s.Sub(0, 6)

	n, err := checked.CopyNonoverlapping(dst, src)
	require.True(t, checked.IsOverlap(err))
	require.Equal(t, uint(0), n)
	require.Equal(t, "0123456789", string(buf), "refused copy must not write")

	// only the first min(len) elements count toward overlap
	dst, _ = s.Sub(5, 10)
	src, _ = s.Sub(0, 8)
	n, err = checked.CopyNonoverlapping(dst, src)
	require.NoError(t, err)
	require.Equal(t, uint(5), n)
	require.Equal(t, "0123401234", string(buf))
}

func TestCopy(t *testing.T) {
	buf := []byte("0123456789")
	s := checked.Of(buf)
	dst, _ := s.Sub(2, 8)
	src, _ := s.Sub(0, 6)

	n, err := checked.Copy(dst, src)
	require.NoError(t, err)
	require.Equal(t, uint(6), n)
	require.Equal(t, "0101234589", string(buf))

	n, err = checked.Copy(checked.Of[byte](nil), src)
	require.NoError(t, err)
	require.Equal(t, uint(0), n)
}
