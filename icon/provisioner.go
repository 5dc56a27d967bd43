package icon

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/yllada/json-formatter/common"
)

// Provisioner makes sure the tray icon exists on disk. Existing files are
// never regenerated, so a user may replace them.
type Provisioner struct {
	// Dir receives icon.png (and icon.ico when WithICO is set).
	Dir string
	// WithICO also writes an ICO wrapper, which Windows tray hosts need.
	WithICO bool
	// Size is the edge length in pixels.
	Size int
}

// NewProvisioner returns a provisioner for dir using the platform defaults.
func NewProvisioner(dir string) *Provisioner {
	return &Provisioner{
		Dir:     dir,
		WithICO: runtime.GOOS == "windows",
		Size:    common.TrayIconSize,
	}
}

// PNGPath returns the PNG icon location.
func (p *Provisioner) PNGPath() string {
	return filepath.Join(p.Dir, common.IconFileName)
}

// ICOPath returns the ICO icon location.
func (p *Provisioner) ICOPath() string {
	return filepath.Join(p.Dir, common.IconICOFileName)
}

// Ensure writes whichever icon files are missing.
func (p *Provisioner) Ensure() error {
	if err := os.MkdirAll(p.Dir, 0700); err != nil {
		return fmt.Errorf("creating icon directory: %w", err)
	}

	if !common.FileExists(p.PNGPath()) {
		data, err := EncodePNG(p.Size)
		if err != nil {
			return fmt.Errorf("encoding icon: %w", err)
		}
		if err := writeFile(p.PNGPath(), data); err != nil {
			return err
		}
		common.LogInfo("Created tray icon %s", p.PNGPath())
	}

	if p.WithICO && !common.FileExists(p.ICOPath()) {
		pngData, err := os.ReadFile(p.PNGPath())
		if err != nil {
			return fmt.Errorf("reading icon: %w", err)
		}
		icoData, err := WrapPNGAsICO(pngData, p.Size, p.Size)
		if err != nil {
			return fmt.Errorf("wrapping icon: %w", err)
		}
		if err := writeFile(p.ICOPath(), icoData); err != nil {
			return err
		}
		common.LogInfo("Created tray icon %s", p.ICOPath())
	}
	return nil
}

// TrayBytes returns the icon in the format the tray host expects: ICO when
// WithICO is set, PNG otherwise. If the file cannot be read the icon is
// rendered in memory.
func (p *Provisioner) TrayBytes() []byte {
	path := p.PNGPath()
	if p.WithICO {
		path = p.ICOPath()
	}

	data, err := os.ReadFile(path)
	if err == nil && len(data) > 0 {
		return data
	}
	common.LogWarn("Using built-in tray icon: %v", err)

	data, err = EncodePNG(p.Size)
	if err != nil {
		common.LogError("Rendering tray icon: %v", err)
		return nil
	}
	if p.WithICO {
		if ico, err := WrapPNGAsICO(data, p.Size, p.Size); err == nil {
			return ico
		}
	}
	return data
}

func writeFile(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", filepath.Base(path), err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("writing %s: %w", filepath.Base(path), err)
	}
	return nil
}
