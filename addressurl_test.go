package wasmpipeline

import "testing"

func TestEncodeAddressURL(t *testing.T) {
	got := EncodeAddressURL(65536)
	want := "data:application/vnd.itk.address,0:65536"
	if got != want {
		t.Errorf("EncodeAddressURL(65536) = %q, want %q", got, want)
	}
}

func TestDecodeAddressURL(t *testing.T) {
	ptr, err := DecodeAddressURL("data:application/vnd.itk.address,0:65536")
	if err != nil {
		t.Fatalf("DecodeAddressURL: %v", err)
	}
	if ptr != 65536 {
		t.Errorf("ptr = %d, want 65536", ptr)
	}
}

func TestDecodeAddressURLRoundTrip(t *testing.T) {
	for _, p := range []uint32{0, 1, 4096, 4294967295} {
		s := EncodeAddressURL(p)
		got, err := DecodeAddressURL(s)
		if err != nil {
			t.Fatalf("DecodeAddressURL(%q): %v", s, err)
		}
		if got != p {
			t.Errorf("round trip %d -> %q -> %d", p, s, got)
		}
	}
}

func TestDecodeAddressURLInvalid(t *testing.T) {
	cases := []string{
		"",
		"data:application/vnd.itk.address,0:",
		"data:application/vnd.itk.address,0:-1",
		"data:application/vnd.itk.address,1:5",
		"not a url",
	}
	for _, c := range cases {
		if _, err := DecodeAddressURL(c); err == nil {
			t.Errorf("DecodeAddressURL(%q) expected error, got nil", c)
		}
	}
}
