// Package sysinfo gathers a point-in-time description of the host for the
// system_info tool.
package sysinfo

import (
	"context"
	"runtime"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/load"
	"github.com/shirou/gopsutil/v4/mem"
	"github.com/shirou/gopsutil/v4/net"
)

// CPU describes one CPU package as reported by the host.
type CPU struct {
	Model string  `json:"model"`
	MHz   float64 `json:"speed_mhz"`
	Cores int32   `json:"cores"`
}

// Load holds the 1/5/15-minute load averages.
type Load struct {
	One     float64 `json:"1m"`
	Five    float64 `json:"5m"`
	Fifteen float64 `json:"15m"`
}

// Address is one address record of a network interface.
type Address struct {
	Addr string `json:"address"`
}

// Snapshot is a point-in-time description of the host.
type Snapshot struct {
	Platform      string               `json:"platform"`
	Arch          string               `json:"arch"`
	CPUs          []CPU                `json:"cpus"`
	TotalMemory   uint64               `json:"total_memory_bytes"`
	FreeMemory    uint64               `json:"free_memory_bytes"`
	UptimeSeconds uint64               `json:"uptime_seconds"`
	LoadAverage   Load                 `json:"load_average"`
	Interfaces    map[string][]Address `json:"network_interfaces"`
}

// Collect probes the host and returns a snapshot. Probes that fail leave
// their fields zeroed; the snapshot itself is always produced.
func Collect(ctx context.Context) *Snapshot {
	snap := &Snapshot{
		Platform:   runtime.GOOS,
		Arch:       runtime.GOARCH,
		CPUs:       []CPU{},
		Interfaces: map[string][]Address{},
	}

	if hi, err := host.InfoWithContext(ctx); err == nil {
		snap.UptimeSeconds = hi.Uptime
	}
	if infos, err := cpu.InfoWithContext(ctx); err == nil {
		for _, ci := range infos {
			snap.CPUs = append(snap.CPUs, CPU{Model: ci.ModelName, MHz: ci.Mhz, Cores: ci.Cores})
		}
	}
	if vm, err := mem.VirtualMemoryWithContext(ctx); err == nil {
		snap.TotalMemory = vm.Total
		snap.FreeMemory = vm.Free
	}
	if avg, err := load.AvgWithContext(ctx); err == nil {
		snap.LoadAverage = Load{One: avg.Load1, Five: avg.Load5, Fifteen: avg.Load15}
	}
	if ifaces, err := net.InterfacesWithContext(ctx); err == nil {
		for _, iface := range ifaces {
			addrs := make([]Address, 0, len(iface.Addrs))
			for _, a := range iface.Addrs {
				addrs = append(addrs, Address{Addr: a.Addr})
			}
			snap.Interfaces[iface.Name] = addrs
		}
	}
	return snap
}
