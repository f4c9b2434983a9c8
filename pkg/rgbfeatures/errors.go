package rgbfeatures

import "errors"

// ErrNoImages is returned by Run when no file under the root both matched an
// image extension and decoded successfully. No output file is written.
var ErrNoImages = errors.New("no processable image files found")

// DecodeError reports an image that could not be read or decoded.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	if e.Path == "" {
		return "decoding image: " + e.Err.Error()
	}
	return "decoding image " + e.Path + ": " + e.Err.Error()
}

func (e *DecodeError) Unwrap() error { return e.Err }
