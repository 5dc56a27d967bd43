//go:build linux || freebsd || openbsd || netbsd || dragonfly

package autostart

import (
	"path/filepath"

	"github.com/yllada/json-formatter/common"
)

func newPlatformRegistrar(name, exe string) Registrar {
	dir := ""
	if base, err := common.ConfigHome(); err == nil {
		dir = filepath.Join(base, "autostart")
	}
	return &DesktopEntryRegistrar{
		Dir:      dir,
		FileName: common.DesktopEntryName,
		Name:     name,
		Exec:     exe,
	}
}
