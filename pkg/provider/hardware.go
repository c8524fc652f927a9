package provider

import (
	"fmt"

	"github.com/getchurch/church/pkg/random"
)

// Hardware generates laptop and phone specifications.
type Hardware struct {
	base
}

// NewHardware returns a Hardware provider.
func NewHardware(opts ...Option) *Hardware {
	return &Hardware{base: newBase(opts)}
}

// Resolution returns a screen resolution such as "1920x1080".
func (h *Hardware) Resolution() string { return random.Choice(h.rnd, resolutions) }

// ScreenSize returns a diagonal in inches such as "13″".
func (h *Hardware) ScreenSize() string { return random.Choice(h.rnd, screenSizes) }

// CPU returns a processor family such as "Intel® Core i7".
func (h *Hardware) CPU() string { return random.Choice(h.rnd, cpus) }

// CPUFrequency returns a clock speed such as "4.0 GHz".
func (h *Hardware) CPUFrequency() string { return random.Choice(h.rnd, cpuFrequencies) + " GHz" }

// Generation returns a CPU generation such as "6th Generation".
func (h *Hardware) Generation() string { return random.Choice(h.rnd, generations) }

// CPUCodename returns a CPU microarchitecture codename.
func (h *Hardware) CPUCodename() string { return random.Choice(h.rnd, cpuCodenames) }

// RAMType returns a memory type such as "DDR4".
func (h *Hardware) RAMType() string { return random.Choice(h.rnd, ramTypes) }

// RAMSize returns a memory size such as "16GB".
func (h *Hardware) RAMSize() string { return random.Choice(h.rnd, ramSizes) }

// SSDOrHDD returns a drive description.
func (h *Hardware) SSDOrHDD() string { return random.Choice(h.rnd, drives) }

// Graphics returns a graphics adapter name.
func (h *Hardware) Graphics() string { return random.Choice(h.rnd, graphics) }

// Manufacturer returns a computer manufacturer.
func (h *Hardware) Manufacturer() string { return random.Choice(h.rnd, manufacturers) }

// FullInfo returns a one-line laptop specification, e.g.
// "ASUS Intel® Core i3 3rd Generation 3.50 GHz/1920x1200/12″/512GB HDD(7200 RPM)/DDR2-4GB/Intel® Iris™ Pro Graphics 6200".
func (h *Hardware) FullInfo() string {
	return fmt.Sprintf("%s %s %s %s/%s/%s/%s/%s-%s/%s",
		h.Manufacturer(), h.CPU(), h.Generation(), h.CPUFrequency(),
		h.Resolution(), h.ScreenSize(), h.SSDOrHDD(),
		h.RAMType(), h.RAMSize(), h.Graphics())
}

// PhoneModel returns a phone model such as "Nokia Lumia 920".
func (h *Hardware) PhoneModel() (string, error) {
	return h.pickDefault("phone_models")
}
