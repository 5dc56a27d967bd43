// Package icon generates the placeholder tray icon: a white square with a
// blue border and the word "JSON".
package icon

import (
	"bytes"
	"encoding/binary"
	"image"
	"image/color"
	"image/png"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Colors used by the icon.
var (
	Background = color.RGBA{255, 255, 255, 255}
	Accent     = color.RGBA{0x21, 0x96, 0xF3, 255} // #2196F3
)

const (
	label       = "JSON"
	borderInset = 2
	borderWidth = 2
)

// Render draws the icon at size x size pixels.
func Render(size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), image.NewUniform(Background), image.Point{}, draw.Src)

	drawBorder(img, size)
	drawLabel(img, size)
	return img
}

func drawBorder(img *image.RGBA, size int) {
	lo, hi := borderInset, size-1-borderInset
	for i := 0; i < borderWidth; i++ {
		for p := lo; p <= hi; p++ {
			img.SetRGBA(p, lo+i, Accent)
			img.SetRGBA(p, hi-i, Accent)
			img.SetRGBA(lo+i, p, Accent)
			img.SetRGBA(hi-i, p, Accent)
		}
	}
}

// drawLabel renders the label with the 7x13 bitmap face and scales it to
// the width inside the border.
func drawLabel(img *image.RGBA, size int) {
	face := basicfont.Face7x13
	textWidth := font.MeasureString(face, label).Ceil()
	textHeight := face.Height

	text := image.NewRGBA(image.Rect(0, 0, textWidth, textHeight))
	d := &font.Drawer{
		Dst:  text,
		Src:  image.NewUniform(Accent),
		Face: face,
		Dot:  fixed.P(0, face.Ascent),
	}
	d.DrawString(label)

	w := size - 2*(borderInset+borderWidth) - 2
	if w < textWidth {
		w = textWidth
	}
	h := textHeight * w / textWidth
	x0, y0 := (size-w)/2, (size-h)/2

	draw.ApproxBiLinear.Scale(img, image.Rect(x0, y0, x0+w, y0+h), text, text.Bounds(), draw.Over, nil)
}

// EncodePNG renders the icon and encodes it as PNG.
func EncodePNG(size int) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, Render(size)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WrapPNGAsICO embeds PNG data in a single-image ICO container, which
// Windows accepts since Vista.
func WrapPNGAsICO(pngData []byte, width, height int) ([]byte, error) {
	dimension := func(value int) byte {
		if value <= 0 || value >= 256 {
			return 0
		}
		return byte(value)
	}

	buf := &bytes.Buffer{}
	header := []any{
		// ICONDIR: reserved, type (1 = icon), image count
		uint16(0), uint16(1), uint16(1),
		// ICONDIRENTRY
		dimension(width), dimension(height),
		uint8(0), uint8(0), // palette size, reserved
		uint16(1), uint16(32), // color planes, bits per pixel
		uint32(len(pngData)),
		uint32(6 + 16), // data offset
	}
	for _, field := range header {
		if err := binary.Write(buf, binary.LittleEndian, field); err != nil {
			return nil, err
		}
	}
	if _, err := buf.Write(pngData); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// IsICO reports whether data starts with an ICO header.
func IsICO(data []byte) bool {
	return len(data) >= 4 && data[0] == 0x00 && data[1] == 0x00 && data[2] == 0x01 && data[3] == 0x00
}
