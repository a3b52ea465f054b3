package internal

import "github.com/pkg/errors"

// The vertex table walks assume simple, validated input. When that assumption
// is broken, a walk can fail to return to its seed. Rather than threading
// errors through every walk, we panic, and the public API recovers to convert
// to an error.

// Wraps errors raised by fatalf, so that runtime errors (which also implement
// error) are not mistaken for them and still crash.
type ClipError struct {
	error
}

// Panic with a ClipError.
func fatalf(format string, args ...interface{}) {
	panic(ClipError{errors.Errorf(format, args...)})
}

func HandleClipPanicRecover(r interface{}) error {
	if r != nil {
		if clipError, ok := r.(ClipError); ok {
			return clipError
		}
		panic(r)
	}
	return nil
}
