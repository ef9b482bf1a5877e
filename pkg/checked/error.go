package checked

import "github.com/brickingsoft/errors"

var (
	ErrOutOfRange = errors.Define("index out of range")
	ErrOverlap    = errors.Define("source and destination overlap")
	ErrNilPointer = errors.Define("null base with non-zero length")
)

func IsOutOfRange(err error) bool {
	return errors.Is(err, ErrOutOfRange)
}

func IsOverlap(err error) bool {
	return errors.Is(err, ErrOverlap)
}

func IsNilPointer(err error) bool {
	return errors.Is(err, ErrNilPointer)
}

const (
	errMetaPkgKey = "pkg"
	errMetaPkgVal = "checked"
)

const (
	errMetaOpKey    = "op"
	errMetaOpMake   = "make"
	errMetaOpOffset = "offset"
	errMetaOpSub    = "sub"
	errMetaOpCopy   = "copy"
)

func newError(def error, op string) error {
	return errors.From(
		def,
		errors.WithMeta(errMetaPkgKey, errMetaPkgVal),
		errors.WithMeta(errMetaOpKey, op),
	)
}
