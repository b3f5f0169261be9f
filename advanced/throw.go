package advanced

import "github.com/pkg/errors"

// Threading errors up and down the clip loop, the recursive subdivision and
// the region graph would add a lot of noise to the geometry code. Instead, we
// panic with a TriangulateError, and the public API recovers to convert it to
// an error.

var (
	// Fewer than three distinct points, or all of them collinear.
	ErrDegeneratePolygon = errors.New("degenerate polygon")
	// The ear set ran dry while more than three vertices remained. This
	// happens on numerically degenerate input, or when the supplied winding is
	// wrong.
	ErrTriangulationFailed = errors.New("triangulation failed")
	// Triangle indices that don't fit the point array they refer to.
	ErrInvalidTriangles = errors.New("invalid triangles")
)

// Panic payload used by throw. Wrapping the error in a struct keeps runtime
// errors, which are also errors, from being mistaken for ours.
type TriangulateError struct {
	Err error
}

func (e TriangulateError) Error() string {
	return e.Err.Error()
}

func (e TriangulateError) Unwrap() error {
	return e.Err
}

// Panic with a TriangulateError of the given kind.
func throw(kind error, format string, args ...interface{}) {
	panic(TriangulateError{errors.Wrapf(kind, format, args...)})
}

func HandleTriangulatePanicRecover(r interface{}) error {
	if r != nil {
		if triangulateError, ok := r.(TriangulateError); ok {
			return triangulateError.Err
		}
		panic(r)
	}
	return nil
}
