package devicecode

import (
	"sync"
	"sync/atomic"
)

// CacheStats 解码缓存统计
type CacheStats struct {
	Hits   int64 // 缓存命中次数
	Misses int64 // 缓存未命中（实际解码）次数
	Size   int   // 当前缓存大小
}

// VariantDecoder 常量表的“变体 Base64”解码器。
//
// 解码结果只取决于索引，首次解码后按索引缓存，之后的调用直接命中缓存。
// 非法或越界条目返回空串，不返回错误。
type VariantDecoder struct {
	mu     sync.RWMutex
	pool   []string
	cache  map[int]string
	hits   int64
	misses int64
}

// NewVariantDecoder 基于内置常量表创建解码器
func NewVariantDecoder() *VariantDecoder {
	return newVariantDecoder(constantPool[:])
}

func newVariantDecoder(pool []string) *VariantDecoder {
	return &VariantDecoder{
		pool:  pool,
		cache: make(map[int]string),
	}
}

// Decode 解码指定索引的常量
func (d *VariantDecoder) Decode(index int) string {
	d.mu.RLock()
	if v, ok := d.cache[index]; ok {
		d.mu.RUnlock()
		atomic.AddInt64(&d.hits, 1)
		return v
	}
	d.mu.RUnlock()

	d.mu.Lock()
	defer d.mu.Unlock()

	// 双重检查，防止并发时重复解码
	if v, ok := d.cache[index]; ok {
		atomic.AddInt64(&d.hits, 1)
		return v
	}

	v := d.decode(index)
	d.cache[index] = v
	d.misses++
	return v
}

func (d *VariantDecoder) decode(index int) string {
	entry := entryAt(d.pool, index)
	if entry == "" {
		return ""
	}
	text, ok := reconstituteText(unpackSymbols(entry, variantAlphabet))
	if !ok {
		return ""
	}
	return text
}

// Stats 返回缓存统计
func (d *VariantDecoder) Stats() CacheStats {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return CacheStats{
		Hits:   atomic.LoadInt64(&d.hits),
		Misses: d.misses,
		Size:   len(d.cache),
	}
}

// cipherCacheKey 缓存键同时包含索引与密钥，同一索引换密钥不会命中旧结果。
type cipherCacheKey struct {
	index int
	key   string
}

// CipherDecoder 常量表的“Base64 + RC4”解码器。
type CipherDecoder struct {
	mu     sync.RWMutex
	pool   []string
	cache  map[cipherCacheKey]string
	hits   int64
	misses int64
}

// NewCipherDecoder 基于内置常量表创建解码器
func NewCipherDecoder() *CipherDecoder {
	return newCipherDecoder(constantPool[:])
}

func newCipherDecoder(pool []string) *CipherDecoder {
	return &CipherDecoder{
		pool:  pool,
		cache: make(map[cipherCacheKey]string),
	}
}

// Decode 解码指定索引的常量并用 key 做 RC4 解密。
//
// 解码字节若不是合法 UTF-8，则按原始字节参与解密，不返回错误。
// key 为空时不做 RC4，直接返回还原后的文本。
func (d *CipherDecoder) Decode(index int, key string) string {
	ck := cipherCacheKey{index: index, key: key}

	d.mu.RLock()
	if v, ok := d.cache[ck]; ok {
		d.mu.RUnlock()
		atomic.AddInt64(&d.hits, 1)
		return v
	}
	d.mu.RUnlock()

	d.mu.Lock()
	defer d.mu.Unlock()

	if v, ok := d.cache[ck]; ok {
		atomic.AddInt64(&d.hits, 1)
		return v
	}

	v := d.decode(index, key)
	d.cache[ck] = v
	d.misses++
	return v
}

func (d *CipherDecoder) decode(index int, key string) string {
	entry := entryAt(d.pool, index)
	if entry == "" {
		return ""
	}
	units := codeUnits(unpackSymbols(entry, cipherAlphabet))
	if key == "" {
		return unitsString(units)
	}
	return unitsString(newRC4(stringUnits(key)).xorUnits(units))
}

// Stats 返回缓存统计
func (d *CipherDecoder) Stats() CacheStats {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return CacheStats{
		Hits:   atomic.LoadInt64(&d.hits),
		Misses: d.misses,
		Size:   len(d.cache),
	}
}

func entryAt(pool []string, index int) string {
	if index < 0 || index >= len(pool) {
		return ""
	}
	return pool[index]
}
