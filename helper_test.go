package devicecode

import (
	"io"
	"testing"

	"github.com/shirou/gopsutil/v3/host"
)

func stubNow(t *testing.T, ms int64) {
	t.Helper()
	orig := nowMillis
	nowMillis = func() int64 { return ms }
	t.Cleanup(func() { nowMillis = orig })
}

func stubRandReader(t *testing.T, r io.Reader) {
	t.Helper()
	orig := randReader
	randReader = r
	t.Cleanup(func() { randReader = orig })
}

func stubHostInfo(t *testing.T, fn func() (*host.InfoStat, error)) {
	t.Helper()
	orig := hostInfoProvider
	hostInfoProvider = fn
	ClearHostCache()
	t.Cleanup(func() {
		hostInfoProvider = orig
		ClearHostCache()
	})
}

func stubHostVendor(t *testing.T, fn func() hostVendor) {
	t.Helper()
	orig := hostVendorProvider
	hostVendorProvider = fn
	t.Cleanup(func() { hostVendorProvider = orig })
}

// fixedNonce 返回固定随机串的 NonceFunc
func fixedNonce(value string) NonceFunc {
	return func(length int, alphabet string) (string, error) {
		return value, nil
	}
}
