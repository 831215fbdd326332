package devicecode

import (
	"encoding/hex"
	"fmt"
)

// 协议固定常量
const (
	DefaultAppID   = "wx9f1c2e0bbc10673c"
	DefaultRandLen = 16

	// DefaultPublicKeyHex 未压缩格式的 SM2 公钥（04 || X || Y）
	DefaultPublicKeyHex = "04a3c35de075a2e86f28d52a41989a08e740a82fb96d43d9af8a5509e0a4e837ecb384c44fe1ee95f601ef36f3c892214d45c9b3f75b57556466876ad6052f0f1f"

	// DefaultOpenID 明文尾部的固定串
	DefaultOpenID = "ooru94khFi-GQMq4EnD0SCrrU4HU"
)

// Config 设备码生成配置
type Config struct {
	AppID        string // 应用标识
	RandLen      int    // 随机串长度
	PublicKeyHex string // 校验服务公钥
	OpenID       string // 明文尾部
}

// DefaultConfig 返回协议默认配置
func DefaultConfig() Config {
	return Config{
		AppID:        DefaultAppID,
		RandLen:      DefaultRandLen,
		PublicKeyHex: DefaultPublicKeyHex,
		OpenID:       DefaultOpenID,
	}
}

// WithOpenID 设置明文尾部
func (c Config) WithOpenID(openID string) Config {
	c.OpenID = openID
	return c
}

// WithPublicKey 设置公钥
func (c Config) WithPublicKey(pubHex string) Config {
	c.PublicKeyHex = pubHex
	return c
}

// WithAppID 设置应用标识
func (c Config) WithAppID(appID string) Config {
	c.AppID = appID
	return c
}

// Validate 校验配置
func (c Config) Validate() error {
	if c.AppID == "" {
		return newError(ErrInvalidConfig, "app id is required", nil)
	}
	if c.RandLen < 0 {
		return newError(ErrInvalidConfig, "rand length must not be negative", nil).
			WithDetail("rand_len", c.RandLen)
	}
	if len(c.PublicKeyHex) != 130 {
		return newError(ErrInvalidPublicKey,
			fmt.Sprintf("public key must be 130 hex chars, got %d", len(c.PublicKeyHex)), nil)
	}
	if _, err := hex.DecodeString(c.PublicKeyHex); err != nil {
		return newError(ErrInvalidPublicKey, "public key is not valid hex", err)
	}
	return nil
}
