// Package devicecode generates the encrypted device code ("devicecode") a
// client sends to the check-in verification service.
//
// The plaintext is assembled from protocol fragments recovered from an
// obfuscated constant pool, the caller's device descriptor, the application
// id, the current time in milliseconds and a random nonce. It is then
// encrypted with the service's SM2 public key.
//
// Fragments are resolved once when a Generator is created; a Generator is
// safe for concurrent use.
package devicecode // import "github.com/darkit/devicecode"

import (
	"sync"
	"time"
)

// nowMillis 当前毫秒时间戳，测试中可替换
var nowMillis = func() int64 {
	return time.Now().UnixMilli()
}

// Result 单次生成的详细结果
type Result struct {
	Token     string `json:"token"`     // SM2 密文（十六进制）
	Plaintext string `json:"plaintext"` // 加密前明文
	Timestamp int64  `json:"timestamp"` // 毫秒时间戳
	Nonce     string `json:"nonce"`     // 随机串
}

// Generator 设备码生成器
type Generator struct {
	config   Config
	segments Segments
	builder  *Builder
	encrypt  func(plaintext, publicKeyHex string) (string, error)
}

// Option 生成器选项
type Option func(*Generator)

// WithNonceFunc 替换随机串生成方式
func WithNonceFunc(fn NonceFunc) Option {
	return func(g *Generator) {
		g.builder = NewBuilder(g.segments, g.config.OpenID, fn)
	}
}

// New 校验配置并创建生成器，协议片段在进程内只还原一次
func New(cfg Config, opts ...Option) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	segs, err := resolvedSegments()
	if err != nil {
		return nil, err
	}

	g := &Generator{
		config:   cfg,
		segments: *segs,
		encrypt:  EncryptSM2,
	}
	g.builder = NewBuilder(g.segments, cfg.OpenID, nil)
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// Segments 返回已还原的协议片段
func (g *Generator) Segments() Segments {
	return g.segments
}

// Config 返回生成器配置
func (g *Generator) Config() Config {
	return g.config
}

// Fingerprint 为设备生成设备码。
// 时间戳与随机串每次不同，相同设备的多次调用结果也不同。
func (g *Generator) Fingerprint(dev Device) (string, error) {
	res, err := g.FingerprintDetailed(dev)
	if err != nil {
		return "", err
	}
	return res.Token, nil
}

// FingerprintDetailed 生成设备码并返回明文、时间戳与随机串
func (g *Generator) FingerprintDetailed(dev Device) (*Result, error) {
	ts := nowMillis()
	plaintext, nonce, err := g.builder.build(g.config.AppID, dev, g.config.RandLen, ts)
	if err != nil {
		return nil, err
	}
	token, err := g.encrypt(plaintext, g.config.PublicKeyHex)
	if err != nil {
		return nil, err
	}
	return &Result{
		Token:     token,
		Plaintext: plaintext,
		Timestamp: ts,
		Nonce:     nonce,
	}, nil
}

var (
	defaultOnce sync.Once
	defaultGen  *Generator
	defaultErr  error
)

// Default 返回使用默认配置的共享生成器
func Default() (*Generator, error) {
	defaultOnce.Do(func() {
		defaultGen, defaultErr = New(DefaultConfig())
	})
	return defaultGen, defaultErr
}

// Fingerprint 使用默认配置为设备生成设备码
func Fingerprint(dev Device) (string, error) {
	g, err := Default()
	if err != nil {
		return "", err
	}
	return g.Fingerprint(dev)
}
