//go:build !linux && !windows
// +build !linux,!windows

package devicecode

import (
	"runtime"

	"github.com/shirou/gopsutil/v3/host"
)

// probeHostVendor 其他平台没有统一的固件信息来源，交由 PlatformFamily 兜底
func probeHostVendor() hostVendor {
	return hostVendor{}
}

// fallbackSystem 使用内核版本兜底
func fallbackSystem() string {
	version, err := host.KernelVersion()
	if err != nil {
		return ""
	}
	return joinNonEmpty(runtime.GOOS, version)
}
