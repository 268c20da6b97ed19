package core

import "encoding/hex"

// Revision represents a 20-byte version-control object identifier
type Revision [20]byte

// String returns the 40-character hexadecimal representation of the revision
func (r Revision) String() string {
	return hex.EncodeToString(r[:])
}

// Short returns the first 7 characters of the revision (like git)
func (r Revision) Short() string {
	return r.String()[:7]
}

// ParseRevision parses a 40-character hex string into a Revision
func ParseRevision(s string) (Revision, error) {
	var rev Revision
	bytes, err := hex.DecodeString(s)
	if err != nil {
		return rev, ErrInvalidRevision
	}
	if len(bytes) != 20 {
		return rev, ErrInvalidRevision
	}
	copy(rev[:], bytes)
	return rev, nil
}

// IsZero returns true if the revision is the all-zero sentinel,
// meaning the ref does not exist on that side of the update
func (r Revision) IsZero() bool {
	return r == Revision{}
}
