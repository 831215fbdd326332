package devicecode

import (
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

// 两套解码字母表都是 65 个符号，'=' 同样参与位拼接（值为 64）。
const (
	variantAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789+/="

	// cipherAlphabetReversed 为倒序存放的字母表，使用前需要反转。
	cipherAlphabetReversed = "=/+9876543210ZYXWVUTSRQPONMLKJIHGFEDCBAzyxwvutsrqponmlkjihgfedcba"
)

var cipherAlphabet = reverseString(cipherAlphabetReversed)

func reverseString(s string) string {
	b := []byte(s)
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return string(b)
}

// unpackSymbols 按 6 位一组累加符号值，每组第 2~4 个符号各输出一个字节。
// 不在字母表中的字符直接跳过。
func unpackSymbols(encoded, alphabet string) []byte {
	if encoded == "" {
		return nil
	}
	out := make([]byte, 0, len(encoded)*3/4+1)
	acc, count := 0, 0
	for i := 0; i < len(encoded); i++ {
		n := strings.IndexByte(alphabet, encoded[i])
		if n < 0 {
			continue
		}
		if count%4 == 0 {
			acc = n
		} else {
			acc = acc*64 + n
		}
		count++
		if (count-1)%4 != 0 {
			out = append(out, byte(acc>>((-2*count)&6)))
		}
	}
	return out
}

// reconstituteText 校验解码字节是否为合法 UTF-8，合法时原样作为文本返回，否则返回 false。
func reconstituteText(raw []byte) (string, bool) {
	if !utf8.Valid(raw) {
		return "", false
	}
	return string(raw), true
}

// codeUnits 把解码字节转换成 UTF-16 码元序列：合法 UTF-8 按字符展开，
// 否则每个字节独立成为一个码元。
func codeUnits(raw []byte) []uint16 {
	if text, ok := reconstituteText(raw); ok {
		return utf16.Encode([]rune(text))
	}
	units := make([]uint16, len(raw))
	for i, b := range raw {
		units[i] = uint16(b)
	}
	return units
}

func stringUnits(s string) []uint16 {
	return utf16.Encode([]rune(s))
}

func unitsString(units []uint16) string {
	return string(utf16.Decode(units))
}
