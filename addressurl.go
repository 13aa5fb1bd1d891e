package wasmpipeline

import (
	"fmt"
	"strconv"
	"strings"
)

// addressURLPrefix is the literal scheme and run-id prefix of the
// pointer-in-JSON wire format (spec.md §4.4, §9 "Pointer-in-JSON protocol").
const addressURLPrefix = "data:application/vnd.itk.address,0:"

// EncodeAddressURL renders a guest pointer as the bit-exact address-URL
// string embedded in JSON descriptors: data:application/vnd.itk.address,0:N.
func EncodeAddressURL(ptr uint32) string {
	return addressURLPrefix + strconv.FormatUint(uint64(ptr), 10)
}

// DecodeAddressURL parses an address-URL string back into a guest pointer.
func DecodeAddressURL(s string) (uint32, error) {
	rest, ok := strings.CutPrefix(s, addressURLPrefix)
	if !ok {
		return 0, fmt.Errorf("wasmpipeline: not an address-url: %q", s)
	}
	n, err := strconv.ParseUint(rest, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("wasmpipeline: invalid address-url pointer %q: %w", rest, err)
	}
	return uint32(n), nil
}
