package devicecode

import "testing"

func testSegments() Segments {
	return Segments{
		Seg1:     "b|_",
		Seg2:     "aid|_",
		Seg3:     "t|_",
		Seg4:     "uid|_",
		Seg5:     "oid|_",
		Alphabet: "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789",
	}
}

func TestBuilder_Build(t *testing.T) {
	segs := testSegments()
	b := NewBuilder(segs, DefaultOpenID, fixedNonce("RRRRRRRRRRRRRRRR"))
	dev := NewDevice("B", "M", "S", "P")

	got, err := b.Build(DefaultAppID, dev, DefaultRandLen, 1700000000000)
	if err != nil {
		t.Fatal(err)
	}
	want := segs.Seg1 + "B,M,S,P" + segs.Seg2 + DefaultAppID + segs.Seg3 + "1700000000000" +
		segs.Seg4 + "RRRRRRRRRRRRRRRR" + segs.Seg5 + DefaultOpenID
	if got != want {
		t.Errorf("Build() = %q, want %q", got, want)
	}
	if literal := "b|_B,M,S,Paid|_wx9f1c2e0bbc10673ct|_1700000000000uid|_RRRRRRRRRRRRRRRRoid|_ooru94khFi-GQMq4EnD0SCrrU4HU"; got != literal {
		t.Errorf("Build() = %q, want %q", got, literal)
	}
}

func TestBuilder_NonceArguments(t *testing.T) {
	segs := testSegments()
	var gotLen int
	var gotAlphabet string
	b := NewBuilder(segs, "", func(length int, alphabet string) (string, error) {
		gotLen, gotAlphabet = length, alphabet
		return "", nil
	})
	if _, err := b.Build("app", NewDevice("", "", "", ""), 7, 0); err != nil {
		t.Fatal(err)
	}
	if gotLen != 7 || gotAlphabet != segs.Alphabet {
		t.Errorf("nonce called with (%d, %q)", gotLen, gotAlphabet)
	}
}

func TestBuilder_DefaultNonce(t *testing.T) {
	b := NewBuilder(testSegments(), "tail", nil)
	got, err := b.Build("app", NewDevice("B", "M", "S", "P"), 16, 42)
	if err != nil {
		t.Fatal(err)
	}
	prefix := "b|_B,M,S,Paid|_appt|_42uid|_"
	suffix := "oid|_tail"
	if len(got) != len(prefix)+16+len(suffix) || got[:len(prefix)] != prefix || got[len(got)-len(suffix):] != suffix {
		t.Errorf("Build() = %q", got)
	}
}
