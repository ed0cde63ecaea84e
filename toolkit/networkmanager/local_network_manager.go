package networkmanager

import (
	"context"

	"github.com/shirou/gopsutil/v4/net"
	"github.com/steelcutops/systoolkit/common"
	"github.com/steelcutops/systoolkit/logger"
)

type LocalNetworkManager struct {
	Logger logger.Logger

	// list is swapped in tests; nil means gopsutil.
	list func(ctx context.Context) (net.InterfaceStatList, error)
}

func NewNetworkManager(l logger.Logger) *LocalNetworkManager {
	return &LocalNetworkManager{Logger: l}
}

func (n *LocalNetworkManager) Interfaces(ctx context.Context) ([]Interface, error) {
	list := n.list
	if list == nil {
		list = net.InterfacesWithContext
	}

	stats, err := list(ctx)
	if err != nil {
		return nil, common.Classify("interfaces", "host", err)
	}

	ifaces := make([]Interface, 0, len(stats))
	for _, s := range stats {
		iface := Interface{
			Index:        s.Index,
			Name:         s.Name,
			HardwareAddr: s.HardwareAddr,
			Flags:        s.Flags,
			MTU:          s.MTU,
		}
		for _, addr := range s.Addrs {
			iface.Addrs = append(iface.Addrs, addr.Addr)
		}
		ifaces = append(ifaces, iface)
	}
	return ifaces, nil
}

func (n *LocalNetworkManager) MACAddress(ctx context.Context) (string, error) {
	ifaces, err := n.Interfaces(ctx)
	if err != nil {
		return "", err
	}

	for _, iface := range ifaces {
		if !iface.IsUp() || iface.HardwareAddr == "" {
			continue
		}
		logger.OrDiscard(n.Logger).Debug("Selected interface for MAC address", "interface", iface.Name)
		return iface.HardwareAddr, nil
	}
	return "", common.NewOpError("mac address", "host", common.ErrNotFound, ErrNoMACAddress)
}
