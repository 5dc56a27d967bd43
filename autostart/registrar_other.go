//go:build !windows && !linux && !freebsd && !openbsd && !netbsd && !dragonfly

package autostart

func newPlatformRegistrar(name, exe string) Registrar {
	return unsupportedRegistrar{}
}
