package asset

import (
	"bytes"
	"image"
	"testing"
)

func TestTgaRoundTrip(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 3, 2))
	colors := [][4]uint8{
		{255, 0, 0, 255}, {0, 255, 0, 255}, {0, 0, 255, 255},
		{10, 20, 30, 40}, {0, 0, 0, 0}, {255, 255, 255, 255},
	}
	for i, c := range colors {
		copy(img.Pix[i*4:], c[:])
	}

	var buf bytes.Buffer
	if err := EncodeTga(&buf, img); err != nil {
		t.Fatalf("expected no error; got %v", err)
	}
	decoded, err := DecodeTga(&buf)
	if err != nil {
		t.Fatalf("expected no error; got %v", err)
	}

	if decoded.Bounds() != img.Bounds() {
		t.Fatalf("expected bounds %v; got %v", img.Bounds(), decoded.Bounds())
	}
	if !bytes.Equal(decoded.Pix, img.Pix) {
		t.Fatal("expected the decoded pixels to match the source")
	}
}

func TestDecodeTgaBottomUp(t *testing.T) {
	// 1x2 uncompressed 24-bit image without the top-left origin bit. The
	// first stored row is the bottom of the image.
	data := []byte{
		0, 0, 2, // no id, no colormap, uncompressed rgb
		0, 0, 0, 0, 0, // colormap spec
		0, 0, 0, 0, // origin
		1, 0, 2, 0, // 1x2
		24, 0, // 24 bpp, bottom-up
		0, 0, 255, // bottom pixel: red, stored bgr
		255, 0, 0, // top pixel: blue
	}
	img, err := DecodeTga(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("expected no error; got %v", err)
	}

	top := img.Pix[img.PixOffset(0, 0):][:4]
	bottom := img.Pix[img.PixOffset(0, 1):][:4]
	if !bytes.Equal(top, []byte{0, 0, 255, 255}) {
		t.Fatalf("expected a blue top pixel; got %v", top)
	}
	if !bytes.Equal(bottom, []byte{255, 0, 0, 255}) {
		t.Fatalf("expected a red bottom pixel; got %v", bottom)
	}
}

func TestDecodeTgaRejectsUnsupported(t *testing.T) {
	// Run-length encoded images are not supported
	data := make([]byte, 18)
	data[2] = 10
	if _, err := DecodeTga(bytes.NewReader(data)); err == nil {
		t.Fatal("expected an error for a run-length encoded image")
	}
}
