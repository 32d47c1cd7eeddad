// Package digest derives content identifiers for chunk payloads.
package digest

import (
	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multihash"
)

// PayloadCID returns a CIDv1 using the "raw" multicodec and a sha2-256
// multihash of data.
func PayloadCID(data []byte) (cid.Cid, error) {
	sum, err := multihash.Sum(data, multihash.SHA2_256, -1)
	if err != nil {
		return cid.Undef, err
	}
	return cid.NewCidV1(cid.Raw, sum), nil
}

// PayloadString is PayloadCID rendered in its default base32 string form.
func PayloadString(data []byte) string {
	c, err := PayloadCID(data)
	if err != nil {
		// multihash.Sum only fails for unknown codes or bad lengths.
		return ""
	}
	return c.String()
}

// Verify reports whether id is the raw sha2-256 CID of data.
func Verify(id string, data []byte) (bool, error) {
	parsed, err := cid.Decode(id)
	if err != nil {
		return false, err
	}
	want, err := PayloadCID(data)
	if err != nil {
		return false, err
	}
	return parsed.Equals(want), nil
}
