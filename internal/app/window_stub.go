//go:build !ebiten

package app

import (
	"github.com/pkg/errors"

	"afterglow/internal/core"
)

// ErrNoWindow is returned by RunWindow in builds without the ebiten tag.
var ErrNoWindow = errors.New("window mode requires building with the 'ebiten' tag; use -mode term or -mode headless")

// RunWindow always fails in the headless build.
func RunWindow(core.Sim, *Config) error {
	return ErrNoWindow
}
