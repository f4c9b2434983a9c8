//go:build purego || js

package rgbfeatures

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	_ "golang.org/x/image/bmp"
)

// Mat is a pure Go 3-channel 8-bit image with interleaved B, G, R samples.
type Mat struct {
	data []uint8
	rows int
	cols int
}

func (m Mat) Empty() bool { return m.data == nil || m.rows == 0 || m.cols == 0 }

func (m *Mat) Close() {
	m.data = nil
	m.rows = 0
	m.cols = 0
}

func imReadColor(path string) (Mat, error) {
	f, err := os.Open(path)
	if err != nil {
		return Mat{}, fmt.Errorf("opening image: %w", err)
	}
	defer f.Close()
	return decodeColor(f)
}

func imDecodeColor(data []byte) (Mat, error) {
	return decodeColor(bytes.NewReader(data))
}

func decodeColor(r io.Reader) (Mat, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return Mat{}, fmt.Errorf("decoding image: %w", err)
	}
	mat := fromImage(img)
	if mat.Empty() {
		return Mat{}, errors.New("image has no pixels")
	}
	return mat, nil
}

// fromImage converts img to BGR. Samples are taken un-premultiplied with
// alpha discarded, which is what OpenCV's IMReadColor does.
func fromImage(img image.Image) Mat {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	data := make([]uint8, w*h*3)

	i := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			data[i] = c.B
			data[i+1] = c.G
			data[i+2] = c.R
			i += 3
		}
	}
	return Mat{data: data, rows: h, cols: w}
}

func meanBGR(mat Mat) ChannelMeans {
	n := mat.rows * mat.cols
	if n == 0 {
		return ChannelMeans{}
	}
	var b, g, r uint64
	for i := 0; i < len(mat.data); i += 3 {
		b += uint64(mat.data[i])
		g += uint64(mat.data[i+1])
		r += uint64(mat.data[i+2])
	}
	return ChannelMeans{
		Blue:  float64(b) / float64(n),
		Green: float64(g) / float64(n),
		Red:   float64(r) / float64(n),
	}
}
