package refline

import (
	"strings"

	"github.com/codimo/refgate/internal/core"
)

// RefUpdate describes one proposed reference update, as delivered to a
// pre-receive hook: one line per updated ref, "<old> <new> <refname>"
type RefUpdate struct {
	Old core.Revision
	New core.Revision
	Ref string
}

// Parse parses a single ref update line. The refname may not contain
// spaces, so the record is exactly three space-separated fields.
func Parse(line string) (RefUpdate, error) {
	fields := strings.Split(line, " ")
	if len(fields) != 3 || fields[2] == "" {
		return RefUpdate{}, core.ErrMalformedRefUpdate
	}

	oldRev, err := core.ParseRevision(fields[0])
	if err != nil {
		return RefUpdate{}, core.ErrMalformedRefUpdate
	}

	newRev, err := core.ParseRevision(fields[1])
	if err != nil {
		return RefUpdate{}, core.ErrMalformedRefUpdate
	}

	return RefUpdate{Old: oldRev, New: newRev, Ref: fields[2]}, nil
}

// IsDeletion returns true if the update removes the ref
func (u RefUpdate) IsDeletion() bool {
	return u.New.IsZero()
}

// IsCreation returns true if the update creates a ref that did not exist
func (u RefUpdate) IsCreation() bool {
	return u.Old.IsZero()
}
