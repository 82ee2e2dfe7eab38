package asset

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"image"
	"io"
	"os"
)

// TGA header.
// See http://paulbourke.net/dataformats/tga/
type tgaHeader struct {
	IdLength     uint8
	ColormapType uint8
	DatatypeCode uint8
	ColormapSpec [5]uint8
	XOrigin      uint16
	YOrigin      uint16
	Width        uint16
	Height       uint16
	BitsPerPixel uint8
	ImageDesc    uint8
}

const (
	// Uncompressed true-color image data.
	tgaUncompressedRGB = 2

	// Descriptor bit marking a top-left row origin.
	tgaTopLeftOrigin = 1 << 5
)

// Decode an uncompressed 24/32-bit TGA image.
func DecodeTga(r io.Reader) (*image.RGBA, error) {
	var header tgaHeader
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, err
	}

	headerOk := header.IdLength == 0 &&
		header.ColormapType == 0 &&
		header.DatatypeCode == tgaUncompressedRGB &&
		(header.BitsPerPixel == 24 || header.BitsPerPixel == 32)
	if !headerOk {
		return nil, fmt.Errorf("asset: unsupported tga header: %+v", header)
	}

	img := image.NewRGBA(image.Rect(0, 0, int(header.Width), int(header.Height)))
	bytesPerPixel := int(header.BitsPerPixel) / 8
	buf := make([]byte, bytesPerPixel)
	for row := 0; row < int(header.Height); row++ {
		// Rows are stored bottom-up unless the descriptor says otherwise
		y := int(header.Height) - 1 - row
		if header.ImageDesc&tgaTopLeftOrigin != 0 {
			y = row
		}
		for x := 0; x < int(header.Width); x++ {
			if _, err := io.ReadFull(r, buf); err != nil {
				return nil, err
			}
			offset := img.PixOffset(x, y)
			img.Pix[offset+0] = buf[2]
			img.Pix[offset+1] = buf[1]
			img.Pix[offset+2] = buf[0]
			if bytesPerPixel == 4 {
				img.Pix[offset+3] = buf[3]
			} else {
				img.Pix[offset+3] = 0xff
			}
		}
	}
	return img, nil
}

// Encode an image as uncompressed 32-bit TGA.
func EncodeTga(w io.Writer, img *image.RGBA) error {
	bounds := img.Bounds()
	header := tgaHeader{
		DatatypeCode: tgaUncompressedRGB,
		Width:        uint16(bounds.Dx()),
		Height:       uint16(bounds.Dy()),
		BitsPerPixel: 32,
		ImageDesc:    tgaTopLeftOrigin,
	}
	if err := binary.Write(w, binary.LittleEndian, &header); err != nil {
		return err
	}

	buf := make([]byte, 4)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			offset := img.PixOffset(x, y)
			buf[0] = img.Pix[offset+2]
			buf[1] = img.Pix[offset+1]
			buf[2] = img.Pix[offset+0]
			buf[3] = img.Pix[offset+3]
			if _, err := w.Write(buf); err != nil {
				return err
			}
		}
	}
	return nil
}

// Load a TGA image from a file.
func LoadTga(path string) (*image.RGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return DecodeTga(bufio.NewReader(f))
}

// Save an image to a TGA file.
func SaveTga(path string, img *image.RGBA) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if err := EncodeTga(w, img); err != nil {
		return err
	}
	return w.Flush()
}
