package devicecode

import (
	"crypto/rand"
	"fmt"
	"io"
)

// defaultNonceAlphabet 字母表为空时的回退字符集
const defaultNonceAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// randReader 安全随机源，测试中可替换
var randReader io.Reader = rand.Reader

// NonceFunc 生成指定长度、取自 alphabet 的随机串
type NonceFunc func(length int, alphabet string) (string, error)

// RandStr 从 alphabet 中随机取 length 个字符。
//
// 每个字符由一个随机字节对字母表长度取模选出。字母表长度不能整除 256 时
// 存在轻微的取模偏差；随机串只用于区分会话而非保密，这个偏差可以接受，
// 但不要用它生成密钥类数据。
func RandStr(length int, alphabet string) (string, error) {
	if length < 0 {
		return "", newError(ErrNonceFailed, "negative nonce length", nil).
			WithDetail("length", length)
	}
	if alphabet == "" {
		alphabet = defaultNonceAlphabet
	}
	chars := []rune(alphabet)

	buf := make([]byte, length)
	if _, err := io.ReadFull(randReader, buf); err != nil {
		return "", newError(ErrNonceFailed, fmt.Sprintf("read %d random bytes", length), err)
	}

	out := make([]rune, length)
	for i, b := range buf {
		out[i] = chars[int(b)%len(chars)]
	}
	return string(out), nil
}
