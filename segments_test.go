package devicecode

import "testing"

func TestResolveSegments(t *testing.T) {
	segs, err := ResolveSegments(NewVariantDecoder(), NewCipherDecoder())
	if err != nil {
		t.Fatal(err)
	}
	want := Segments{
		Seg1:     "b|_",
		Seg2:     "aid|_",
		Seg3:     "t|_",
		Seg4:     "uid|_",
		Seg5:     "oid|_",
		Alphabet: "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789",
	}
	if *segs != want {
		t.Errorf("ResolveSegments() = %+v, want %+v", *segs, want)
	}
}

func TestResolveSegments_EmptyPool(t *testing.T) {
	_, err := ResolveSegments(newVariantDecoder(nil), newCipherDecoder(nil))
	if err == nil {
		t.Fatal("expected error for an empty pool")
	}
	if !IsErrorCode(err, ErrSegmentUnresolved) {
		t.Errorf("unexpected error %v", err)
	}
}

func TestEmbeddedPublicKey(t *testing.T) {
	if got := EmbeddedPublicKey(); got != DefaultPublicKeyHex {
		t.Errorf("EmbeddedPublicKey() = %q, want %q", got, DefaultPublicKeyHex)
	}
}
