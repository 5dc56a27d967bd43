package icon

import (
	"bytes"
	"encoding/binary"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestRender(t *testing.T) {
	img := Render(64)

	if b := img.Bounds(); b.Dx() != 64 || b.Dy() != 64 {
		t.Fatalf("bounds = %v, want 64x64", b)
	}
	if got := img.RGBAAt(0, 0); got != Background {
		t.Errorf("corner = %v, want white", got)
	}
	for _, p := range [][2]int{{2, 2}, {3, 30}, {61, 61}, {30, 60}} {
		if got := img.RGBAAt(p[0], p[1]); got != Accent {
			t.Errorf("border pixel %v = %v, want %v", p, got, Accent)
		}
	}

	// the label leaves non-white pixels inside the border
	inked := 0
	for y := 10; y < 54; y++ {
		for x := 6; x < 58; x++ {
			if img.RGBAAt(x, y) != Background {
				inked++
			}
		}
	}
	if inked == 0 {
		t.Error("label was not drawn")
	}
}

func TestEncodePNG(t *testing.T) {
	data, err := EncodePNG(64)
	if err != nil {
		t.Fatalf("EncodePNG() error = %v", err)
	}
	cfg, err := png.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if cfg.Width != 64 || cfg.Height != 64 {
		t.Errorf("decoded size = %dx%d", cfg.Width, cfg.Height)
	}
}

func TestWrapPNGAsICO(t *testing.T) {
	pngData := []byte{0x89, 'P', 'N', 'G', 1, 2, 3}

	ico, err := WrapPNGAsICO(pngData, 64, 64)
	if err != nil {
		t.Fatalf("WrapPNGAsICO() error = %v", err)
	}
	if !IsICO(ico) {
		t.Fatal("output lacks an ICO header")
	}
	if len(ico) != 6+16+len(pngData) {
		t.Fatalf("len = %d, want %d", len(ico), 6+16+len(pngData))
	}
	if ico[6] != 64 || ico[7] != 64 {
		t.Errorf("dimensions = %dx%d", ico[6], ico[7])
	}
	if size := binary.LittleEndian.Uint32(ico[14:18]); int(size) != len(pngData) {
		t.Errorf("data size = %d", size)
	}
	if offset := binary.LittleEndian.Uint32(ico[18:22]); offset != 22 {
		t.Errorf("data offset = %d, want 22", offset)
	}
	if !bytes.Equal(ico[22:], pngData) {
		t.Error("payload differs from input PNG")
	}

	big, _ := WrapPNGAsICO(pngData, 256, 300)
	if big[6] != 0 || big[7] != 0 {
		t.Error("dimensions of 256 and above are stored as 0")
	}
}

func TestProvisioner_CreatesMissingFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")
	p := &Provisioner{Dir: dir, WithICO: true, Size: 64}

	if err := p.Ensure(); err != nil {
		t.Fatalf("Ensure() error = %v", err)
	}

	pngData, err := os.ReadFile(p.PNGPath())
	if err != nil {
		t.Fatalf("png not written: %v", err)
	}
	if _, err := png.Decode(bytes.NewReader(pngData)); err != nil {
		t.Errorf("png invalid: %v", err)
	}
	icoData, err := os.ReadFile(p.ICOPath())
	if err != nil {
		t.Fatalf("ico not written: %v", err)
	}
	if !IsICO(icoData) || !bytes.Equal(icoData[22:], pngData) {
		t.Error("ico should wrap the png")
	}
}

func TestProvisioner_NeverRegenerates(t *testing.T) {
	dir := t.TempDir()
	p := &Provisioner{Dir: dir, Size: 64}

	custom := []byte("user supplied icon")
	if err := os.WriteFile(p.PNGPath(), custom, 0644); err != nil {
		t.Fatal(err)
	}
	if err := p.Ensure(); err != nil {
		t.Fatalf("Ensure() error = %v", err)
	}

	got, _ := os.ReadFile(p.PNGPath())
	if !bytes.Equal(got, custom) {
		t.Error("existing icon was overwritten")
	}
	if _, err := os.Stat(p.ICOPath()); !os.IsNotExist(err) {
		t.Error("ico should only be written when WithICO is set")
	}
	if !bytes.Equal(p.TrayBytes(), custom) {
		t.Error("TrayBytes should return the file on disk")
	}
}

func TestProvisioner_TrayBytesFallback(t *testing.T) {
	p := &Provisioner{Dir: filepath.Join(t.TempDir(), "missing"), Size: 64}

	data := p.TrayBytes()
	if _, err := png.Decode(bytes.NewReader(data)); err != nil {
		t.Errorf("fallback is not a PNG: %v", err)
	}

	p.WithICO = true
	if !IsICO(p.TrayBytes()) {
		t.Error("fallback should be an ICO when WithICO is set")
	}
}
