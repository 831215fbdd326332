package devicecode

import (
	"encoding/json"
	"io"
	"strings"
)

// Device 客户端设备描述，四个字段均为必填
type Device struct {
	Brand    string `json:"brand"`    // 品牌
	Model    string `json:"model"`    // 型号
	System   string `json:"system"`   // 系统及版本
	Platform string `json:"platform"` // 平台
}

// rawDevice 用指针区分“缺失”与“空串”
type rawDevice struct {
	Brand    *string `json:"brand"`
	Model    *string `json:"model"`
	System   *string `json:"system"`
	Platform *string `json:"platform"`
}

// NewDevice 创建设备描述
func NewDevice(brand, model, system, platform string) Device {
	return Device{Brand: brand, Model: model, System: system, Platform: platform}
}

// ParseDevice 从 r 读取完整的 JSON 对象并校验必填字段
func ParseDevice(r io.Reader) (Device, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Device{}, newError(ErrInvalidDevice, "read device descriptor", err)
	}
	return UnmarshalDevice(data)
}

// UnmarshalDevice 解析 JSON 格式的设备描述
func UnmarshalDevice(data []byte) (Device, error) {
	var raw rawDevice
	if err := json.Unmarshal(data, &raw); err != nil {
		return Device{}, newError(ErrInvalidDevice, "malformed device JSON", err)
	}

	var missing []string
	pick := func(name string, v *string) string {
		if v == nil {
			missing = append(missing, name)
			return ""
		}
		return *v
	}
	dev := Device{
		Brand:    pick("brand", raw.Brand),
		Model:    pick("model", raw.Model),
		System:   pick("system", raw.System),
		Platform: pick("platform", raw.Platform),
	}
	if len(missing) > 0 {
		return Device{}, newError(ErrMissingField, "device descriptor is missing required fields", nil).
			WithDetail("fields", strings.Join(missing, ","))
	}
	return dev, nil
}

// Joined 按 brand,model,system,platform 顺序以逗号拼接
func (d Device) Joined() string {
	return strings.Join([]string{d.Brand, d.Model, d.System, d.Platform}, ",")
}
