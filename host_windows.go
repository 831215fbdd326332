//go:build windows
// +build windows

package devicecode

import (
	"strings"

	"golang.org/x/sys/windows/registry"
)

const (
	biosKey        = `HARDWARE\DESCRIPTION\System\BIOS`
	currentVersion = `SOFTWARE\Microsoft\Windows NT\CurrentVersion`
)

// probeHostVendor 从 BIOS 注册表读取厂商与产品名
func probeHostVendor() hostVendor {
	v := hostVendor{
		Vendor:  readRegistryString(registry.LOCAL_MACHINE, biosKey, "SystemManufacturer"),
		Product: readRegistryString(registry.LOCAL_MACHINE, biosKey, "SystemProductName"),
	}
	if v.Vendor == "" {
		v.Vendor = readRegistryString(registry.LOCAL_MACHINE, biosKey, "BaseBoardManufacturer")
	}
	if v.Product == "" {
		v.Product = readRegistryString(registry.LOCAL_MACHINE, biosKey, "BaseBoardProduct")
	}
	return v
}

// fallbackSystem 读取 Windows 产品名与版本号
func fallbackSystem() string {
	return joinNonEmpty(
		readRegistryString(registry.LOCAL_MACHINE, currentVersion, "ProductName"),
		readRegistryString(registry.LOCAL_MACHINE, currentVersion, "CurrentBuild"),
	)
}

// readRegistryString 读取注册表字符串值。
func readRegistryString(root registry.Key, path, name string) string {
	k, err := registry.OpenKey(root, path, registry.QUERY_VALUE)
	if err != nil {
		return ""
	}
	defer k.Close()

	value, _, err := k.GetStringValue(name)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(value)
}
