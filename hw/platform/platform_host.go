//go:build !rp2040

package platform

import (
	"pixelkit-go/hw"
	"pixelkit-go/hw/sim"
)

// NewProvider returns the simulated provider on host builds.
func NewProvider() hw.Provider { return sim.New() }
