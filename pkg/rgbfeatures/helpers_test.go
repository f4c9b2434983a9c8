package rgbfeatures

import (
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"go.viam.com/test"
	"golang.org/x/image/bmp"
)

func solidImage(c color.RGBA, w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

// writeImage encodes img into dir/name, choosing the codec from the extension.
func writeImage(t *testing.T, dir, name string, img image.Image) string {
	t.Helper()
	path := filepath.Join(dir, name)
	test.That(t, os.MkdirAll(filepath.Dir(path), 0o755), test.ShouldBeNil)
	f, err := os.Create(path)
	test.That(t, err, test.ShouldBeNil)
	defer f.Close()

	switch filepath.Ext(name) {
	case ".png", ".PNG":
		err = png.Encode(f, img)
	case ".bmp", ".BMP":
		err = bmp.Encode(f, img)
	case ".jpg", ".jpeg", ".JPG", ".JPEG":
		err = jpeg.Encode(f, img, &jpeg.Options{Quality: 100})
	default:
		t.Fatalf("writeImage: unsupported extension %q", name)
	}
	test.That(t, err, test.ShouldBeNil)
	return path
}

func writeSolid(t *testing.T, dir, name string, c color.RGBA) string {
	t.Helper()
	return writeImage(t, dir, name, solidImage(c, 8, 6))
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	test.That(t, os.MkdirAll(filepath.Dir(path), 0o755), test.ShouldBeNil)
	test.That(t, os.WriteFile(path, []byte(content), 0o644), test.ShouldBeNil)
	return path
}

func strPtr(s string) *string { return &s }
