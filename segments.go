package devicecode

import (
	"fmt"
	"sync"
)

// Segments 启动时一次性还原的协议片段，构造后只读。
type Segments struct {
	Seg1     string `json:"seg1"`
	Seg2     string `json:"seg2"`
	Seg3     string `json:"seg3"`
	Seg4     string `json:"seg4"`
	Seg5     string `json:"seg5"`
	Alphabet string `json:"alphabet"`
}

// 固定的 (索引, 密钥) 对，与常量表一起发布，不可调整。
const (
	seg1Index = 43
	seg2Index = 21

	seg3Index, seg3Key         = 44, "W21%"
	seg4Index, seg4Key         = 23, "pkZe"
	seg5Index, seg5Key         = 45, "v3z6"
	alphabetIndex, alphabetKey = 29, "XbVS"

	// publicKeyIndex 常量表中与默认公钥一致的条目
	publicKeyIndex = 37
)

// ResolveSegments 用固定的索引与密钥还原全部片段。
// 任何一个定界片段为空都视为常量表损坏；字母表为空时由随机串生成器回退。
func ResolveSegments(variant *VariantDecoder, cipher *CipherDecoder) (*Segments, error) {
	segs := &Segments{
		Seg1:     variant.Decode(seg1Index),
		Seg2:     variant.Decode(seg2Index),
		Seg3:     cipher.Decode(seg3Index, seg3Key),
		Seg4:     cipher.Decode(seg4Index, seg4Key),
		Seg5:     cipher.Decode(seg5Index, seg5Key),
		Alphabet: cipher.Decode(alphabetIndex, alphabetKey),
	}

	named := []struct {
		name  string
		value string
	}{
		{"seg1", segs.Seg1},
		{"seg2", segs.Seg2},
		{"seg3", segs.Seg3},
		{"seg4", segs.Seg4},
		{"seg5", segs.Seg5},
	}
	for _, n := range named {
		if n.value == "" {
			return nil, newError(ErrSegmentUnresolved,
				fmt.Sprintf("segment %s decoded to an empty string", n.name), nil).
				WithDetail("segment", n.name)
		}
	}
	return segs, nil
}

// 进程级共享的解码器与片段，只在首次使用时还原一次
var (
	sharedVariant = NewVariantDecoder()
	sharedCipher  = NewCipherDecoder()

	segmentsOnce sync.Once
	segmentsVal  *Segments
	segmentsErr  error
)

// resolvedSegments 返回进程内唯一的一份协议片段
func resolvedSegments() (*Segments, error) {
	segmentsOnce.Do(func() {
		segmentsVal, segmentsErr = ResolveSegments(sharedVariant, sharedCipher)
	})
	return segmentsVal, segmentsErr
}

// EmbeddedPublicKey 返回常量表中内置的公钥十六进制串
func EmbeddedPublicKey() string {
	return sharedVariant.Decode(publicKeyIndex)
}
