package autostart

import (
	"errors"

	"golang.org/x/sys/windows/registry"
)

const runKeyPath = `Software\Microsoft\Windows\CurrentVersion\Run`

func newPlatformRegistrar(name, exe string) Registrar {
	return &RunKeyRegistrar{
		Name: name,
		Exec: exe,
		Open: openRunKey,
		IsNotExist: func(err error) bool {
			return errors.Is(err, registry.ErrNotExist)
		},
	}
}

func openRunKey(write bool) (RunKey, error) {
	if !write {
		key, err := registry.OpenKey(registry.CURRENT_USER, runKeyPath, registry.QUERY_VALUE)
		if err != nil {
			return nil, err
		}
		return key, nil
	}
	key, _, err := registry.CreateKey(registry.CURRENT_USER, runKeyPath, registry.QUERY_VALUE|registry.SET_VALUE)
	if err != nil {
		return nil, err
	}
	return key, nil
}
