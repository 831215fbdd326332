//go:build linux
// +build linux

package devicecode

import (
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sys/unix"
)

// dmiBasePath DMI 信息目录，测试中可替换
var dmiBasePath = "/sys/class/dmi/id"

// probeHostVendor 从 DMI 读取厂商与产品名
func probeHostVendor() hostVendor {
	v := hostVendor{}

	dmiFields := map[string]*string{
		"sys_vendor":   &v.Vendor,
		"product_name": &v.Product,
	}
	for file, field := range dmiFields {
		if data, err := readFileString(filepath.Join(dmiBasePath, file)); err == nil {
			*field = data
		}
	}

	// 部分虚拟机只填充主板信息
	if v.Vendor == "" {
		if data, err := readFileString(filepath.Join(dmiBasePath, "board_vendor")); err == nil {
			v.Vendor = data
		}
	}
	if v.Product == "" {
		if data, err := readFileString(filepath.Join(dmiBasePath, "board_name")); err == nil {
			v.Product = data
		}
	}
	return v
}

// fallbackSystem gopsutil 不可用时使用 uname 的内核名与版本
func fallbackSystem() string {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return ""
	}
	return joinNonEmpty(unix.ByteSliceToString(uts.Sysname[:]), unix.ByteSliceToString(uts.Release[:]))
}

func readFileString(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}
