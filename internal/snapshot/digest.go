package snapshot

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/roach88/mobility/internal/mobility"
)

// DigestDomain prefixes every snapshot digest. The version suffix allows the
// encoding to change without colliding with older digests.
const DigestDomain = "mobility/snapshot/v1"

// Digest returns the hex SHA-256 of the encoded snapshot, computed as
// SHA256(DigestDomain + 0x00 + document). Two snapshots with the same records
// in the same order have the same digest, so an exported file and a later
// validation of it can be matched up.
func Digest(snap mobility.Snapshot) (string, error) {
	data, err := marshal(snap)
	if err != nil {
		return "", err
	}
	return hashWithDomain(DigestDomain, data), nil
}

func hashWithDomain(domain string, data []byte) string {
	h := sha256.New()
	h.Write([]byte(domain))
	h.Write([]byte{0x00}) // separates domain from data
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}
