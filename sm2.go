package devicecode

import (
	"crypto/rand"
	"encoding/hex"
	"io"

	"github.com/emmansun/gmsm/sm2"
)

// sm2Random 加密使用的随机源，测试中可替换
var sm2Random io.Reader = rand.Reader

// EncryptSM2 用未压缩格式的十六进制公钥加密 plaintext。
//
// 密文按 C1C3C2 顺序拼接，C1 去掉 0x04 前缀后整体转为小写十六进制，
// 与 sm-crypto doEncrypt(msg, key, 1) 及 gmssl 的输出一致。
func EncryptSM2(plaintext, publicKeyHex string) (string, error) {
	keyBytes, err := hex.DecodeString(publicKeyHex)
	if err != nil {
		return "", newError(ErrInvalidPublicKey, "public key is not valid hex", err)
	}
	pub, err := sm2.NewPublicKey(keyBytes)
	if err != nil {
		return "", newError(ErrInvalidPublicKey, "public key is not a point on sm2p256v1", err)
	}

	opts := sm2.NewPlainEncrypterOpts(sm2.MarshalUncompressed, sm2.C1C3C2)
	ciphertext, err := sm2.Encrypt(sm2Random, pub, []byte(plaintext), opts)
	if err != nil {
		return "", newError(ErrEncryptFailed, "sm2 encrypt", err)
	}
	if len(ciphertext) > 0 && ciphertext[0] == 0x04 {
		ciphertext = ciphertext[1:]
	}
	return hex.EncodeToString(ciphertext), nil
}
