package devicecode

import (
	"runtime"
	"strings"
	"sync"

	"github.com/shirou/gopsutil/v3/host"
)

// unknownField 无法探测到的字段统一使用的占位值
const unknownField = "unknown"

// hostVendor 平台相关的厂商与型号探测结果
type hostVendor struct {
	Vendor  string
	Product string
}

var (
	hostInfoProvider   = host.Info
	hostVendorProvider = probeHostVendor

	hostCacheMu   sync.RWMutex
	cachedHost    *Device
	cachedHostErr error
)

// HostDevice 根据本机信息生成设备描述。
//
// brand/model 来自固件（Linux DMI、Windows BIOS 注册表），system 为
// 发行版及版本号，platform 为 runtime.GOOS。探测失败的字段回退为 "unknown"，
// 只有系统信息完全不可用时才返回错误。结果在进程内缓存。
func HostDevice() (Device, error) {
	hostCacheMu.RLock()
	if cachedHost != nil || cachedHostErr != nil {
		defer hostCacheMu.RUnlock()
		if cachedHostErr != nil {
			return Device{}, cachedHostErr
		}
		return *cachedHost, nil
	}
	hostCacheMu.RUnlock()

	hostCacheMu.Lock()
	defer hostCacheMu.Unlock()

	// 双重检查
	if cachedHostErr != nil {
		return Device{}, cachedHostErr
	}
	if cachedHost != nil {
		return *cachedHost, nil
	}

	dev, err := probeHostDevice()
	if err != nil {
		cachedHostErr = err
		return Device{}, err
	}
	cachedHost = &dev
	return dev, nil
}

// ClearHostCache 清除本机设备描述缓存
func ClearHostCache() {
	hostCacheMu.Lock()
	cachedHost = nil
	cachedHostErr = nil
	hostCacheMu.Unlock()
}

func probeHostDevice() (Device, error) {
	dev := Device{Platform: runtime.GOOS}

	info, infoErr := hostInfoProvider()
	if infoErr == nil && info != nil {
		dev.System = joinNonEmpty(info.Platform, info.PlatformVersion)
	}
	if dev.System == "" {
		dev.System = fallbackSystem()
	}
	if dev.System == "" {
		return Device{}, newError(ErrHostProbeFailed, "operating system information unavailable", infoErr)
	}

	vendor := hostVendorProvider()
	dev.Brand = normalizeOneLine(vendor.Vendor)
	dev.Model = normalizeOneLine(vendor.Product)
	if dev.Brand == "" && info != nil {
		dev.Brand = normalizeOneLine(info.PlatformFamily)
	}
	if dev.Brand == "" {
		dev.Brand = unknownField
	}
	if dev.Model == "" {
		dev.Model = unknownField
	}
	return dev, nil
}

func joinNonEmpty(parts ...string) string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = normalizeOneLine(p); p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, " ")
}

// normalizeOneLine 将多行内容压缩到一行，并去掉会破坏明文格式的逗号
func normalizeOneLine(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	s = strings.ReplaceAll(s, ",", " ")
	return strings.Join(strings.Fields(s), " ")
}
