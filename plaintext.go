package devicecode

import (
	"strconv"
	"strings"
)

// Builder 按协议顺序拼接明文
type Builder struct {
	segments Segments
	tail     string
	nonce    NonceFunc
}

// NewBuilder 创建明文构造器，nonce 为 nil 时使用 RandStr
func NewBuilder(segs Segments, tail string, nonce NonceFunc) *Builder {
	if nonce == nil {
		nonce = RandStr
	}
	return &Builder{segments: segs, tail: tail, nonce: nonce}
}

// Build 生成明文：
//
//	seg1 + 设备 + seg2 + appID + seg3 + 时间戳 + seg4 + 随机串 + seg5 + 尾部
//
// 顺序是与校验服务约定的格式，不能插入任何分隔符。
func (b *Builder) Build(appID string, dev Device, randLen int, ts int64) (string, error) {
	plaintext, _, err := b.build(appID, dev, randLen, ts)
	return plaintext, err
}

func (b *Builder) build(appID string, dev Device, randLen int, ts int64) (string, string, error) {
	nonce, err := b.nonce(randLen, b.segments.Alphabet)
	if err != nil {
		return "", "", err
	}

	var sb strings.Builder
	sb.WriteString(b.segments.Seg1)
	sb.WriteString(dev.Joined())
	sb.WriteString(b.segments.Seg2)
	sb.WriteString(appID)
	sb.WriteString(b.segments.Seg3)
	sb.WriteString(strconv.FormatInt(ts, 10))
	sb.WriteString(b.segments.Seg4)
	sb.WriteString(nonce)
	sb.WriteString(b.segments.Seg5)
	sb.WriteString(b.tail)
	return sb.String(), nonce, nil
}
