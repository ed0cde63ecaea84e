package networkmanager

import (
	"context"
	"errors"
)

// ErrNoMACAddress is returned when no up interface has a link-layer address.
var ErrNoMACAddress = errors.New("no MAC address found")

// Interface describes one network interface as reported by the OS.
type Interface struct {
	Index        int      `json:"index"`
	Name         string   `json:"name"`
	HardwareAddr string   `json:"hardware_addr"`
	Flags        []string `json:"flags"`
	MTU          int      `json:"mtu"`
	Addrs        []string `json:"addrs,omitempty"`
}

// IsUp reports whether the interface carries the "up" flag.
func (i Interface) IsUp() bool {
	for _, flag := range i.Flags {
		if flag == "up" {
			return true
		}
	}
	return false
}

type NetworkManager interface {
	// Interfaces lists interfaces in the order the platform reports them.
	Interfaces(ctx context.Context) ([]Interface, error)

	// MACAddress returns the hardware address of the first up interface
	// that has one. Platform ordering decides which interface is first.
	MACAddress(ctx context.Context) (string, error)
}
