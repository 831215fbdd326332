package devicecode

// rc4State RC4 置换表与游标。
//
// 与 crypto/rc4 的区别：密钥按 UTF-16 码元参与密钥编排，
// 数据同样按码元异或，这样才能还原常量表里以字符为单位加密的片段。
type rc4State struct {
	s    [256]uint8
	i, j uint8
}

func newRC4(key []uint16) *rc4State {
	st := &rc4State{}
	for i := 0; i < 256; i++ {
		st.s[i] = uint8(i)
	}
	if len(key) == 0 {
		return st
	}
	var j uint8
	for i := 0; i < 256; i++ {
		j += st.s[i] + uint8(key[i%len(key)])
		st.s[i], st.s[j] = st.s[j], st.s[i]
	}
	return st
}

func (st *rc4State) next() uint8 {
	st.i++
	st.j += st.s[st.i]
	st.s[st.i], st.s[st.j] = st.s[st.j], st.s[st.i]
	return st.s[st.s[st.i]+st.s[st.j]]
}

func (st *rc4State) xorUnits(data []uint16) []uint16 {
	out := make([]uint16, len(data))
	for k, u := range data {
		out[k] = u ^ uint16(st.next())
	}
	return out
}

// RC4 用 key 对 data 做 RC4 流加密/解密，两次调用互为逆运算。
// key 为空时返回 data 的副本。
func RC4(data, key []byte) []byte {
	out := make([]byte, len(data))
	if len(key) == 0 {
		copy(out, data)
		return out
	}
	units := make([]uint16, len(key))
	for i, b := range key {
		units[i] = uint16(b)
	}
	st := newRC4(units)
	for k, b := range data {
		out[k] = b ^ st.next()
	}
	return out
}
