//go:build !purego && !js

package rgbfeatures

import (
	"errors"
	"fmt"

	"gocv.io/x/gocv"
)

// Mat wraps a 3-channel 8-bit BGR gocv.Mat for the native OpenCV backend.
type Mat struct {
	m gocv.Mat
}

func (mat *Mat) Close() { mat.m.Close() }

// imReadColor loads path as BGR. Alpha is dropped and grayscale is expanded
// to three equal channels.
func imReadColor(path string) (Mat, error) {
	src := gocv.IMRead(path, gocv.IMReadColor)
	if src.Empty() {
		src.Close()
		return Mat{}, fmt.Errorf("could not load image: %s", path)
	}
	return Mat{m: src}, nil
}

func imDecodeColor(data []byte) (Mat, error) {
	src, err := gocv.IMDecode(data, gocv.IMReadColor)
	if err != nil {
		return Mat{}, err
	}
	if src.Empty() {
		src.Close()
		return Mat{}, errors.New("could not decode image data")
	}
	return Mat{m: src}, nil
}

// meanBGR averages each channel. gocv.Mean returns the channels in Mat
// order, which is B, G, R for images read by OpenCV.
func meanBGR(mat Mat) ChannelMeans {
	s := gocv.Mean(mat.m)
	return ChannelMeans{Blue: s.Val1, Green: s.Val2, Red: s.Val3}
}
