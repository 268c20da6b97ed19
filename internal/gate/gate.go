package gate

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"

	"github.com/codimo/refgate/internal/core"
	"github.com/codimo/refgate/internal/refline"
	"github.com/zeebo/blake3"
)

// Configuration keys consulted once at startup
const (
	allowNonASCIIKey = "hooks.allownonascii"
	quotePathKey     = "core.quotepath"
)

// masterRef is exempt from checking when it is first populated
const masterRef = "refs/heads/master"

// ConfigStore reads repository configuration values
type ConfigStore interface {
	GetBool(key string) bool
	GetString(key string) string
}

// RevisionDiffer lists the file paths changed across a revision range
type RevisionDiffer interface {
	ListChangedPaths(rangeSpec string) ([]string, error)
}

// PolicyConfig holds the naming policy settings for one run
type PolicyConfig struct {
	AllowNonASCII bool
}

// LoadPolicy reads the policy configuration from the store. It fails when
// core.quotepath is switched off: without path quoting the encoded
// non-ASCII bytes never show up in changed paths and the check is blind.
func LoadPolicy(cfg ConfigStore) (PolicyConfig, error) {
	if cfg.GetString(quotePathKey) == "off" {
		return PolicyConfig{}, core.ErrQuotePathDisabled
	}

	return PolicyConfig{
		AllowNonASCII: cfg.GetBool(allowNonASCIIKey),
	}, nil
}

// Verdict is the aggregate outcome of one push evaluation
type Verdict int

const (
	Accepted Verdict = iota
	Rejected
)

func (v Verdict) String() string {
	if v == Rejected {
		return "rejected"
	}
	return "accepted"
}

// Gate evaluates proposed ref updates against the file naming policy
type Gate struct {
	policy PolicyConfig
	differ RevisionDiffer
	report io.Writer
	logger *slog.Logger
}

// New creates a gate. The rejection report is written to report; logger
// carries the optional debug stream and may be nil.
func New(policy PolicyConfig, differ RevisionDiffer, report io.Writer, logger *slog.Logger) *Gate {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Gate{
		policy: policy,
		differ: differ,
		report: report,
		logger: logger,
	}
}

// Evaluate checks a single ref update and returns true if it must be
// rejected
func (g *Gate) Evaluate(u refline.RefUpdate) bool {
	if g.policy.AllowNonASCII {
		return false
	}

	// Deleting a ref introduces no paths
	if u.IsDeletion() {
		return false
	}

	// Initial population of the main branch is exempt
	if u.IsCreation() && u.Ref == masterRef {
		return false
	}

	// A newly created branch has no old side to diff against, so the
	// range degenerates to the new tip on its own
	rangeSpec := u.Old.String() + ".." + u.New.String()
	if u.IsCreation() {
		rangeSpec = u.New.String()
	}

	paths, err := g.differ.ListChangedPaths(rangeSpec)
	if err != nil {
		// A failing diff lookup counts as an empty change set
		g.logger.Debug("diff lookup failed", "ref", u.Ref, "range", rangeSpec, "error", err)
		paths = nil
	}

	g.logger.Debug("evaluating ref update",
		"ref", u.Ref, "old", u.Old.Short(), "new", u.New.Short(),
		"range", rangeSpec, "paths", len(paths))

	for _, path := range paths {
		if !Disallowed(path) {
			continue
		}
		g.logger.Debug("disallowed path", "ref", u.Ref, "path", path)
		writeRejection(g.report, path)
		return true
	}

	return false
}

// Run consumes ref update records from r, one per line, and returns the
// verdict for the whole push.
//
// The verdict equals the result of the last record read, not a logical
// OR over all records. This reproduces the behavior of the hook refgate
// replaces; see DESIGN.md before changing it.
func (g *Gate) Run(r io.Reader) Verdict {
	verdict := Accepted
	fingerprint := blake3.New()

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		fingerprint.Write(scanner.Bytes())
		fingerprint.Write([]byte{'\n'})

		u, err := refline.Parse(scanner.Text())
		if err != nil {
			g.logger.Debug("skipping malformed record", "line", scanner.Text(), "error", err)
			continue
		}

		if g.Evaluate(u) {
			verdict = Rejected
		} else {
			verdict = Accepted
		}
	}
	if err := scanner.Err(); err != nil {
		g.logger.Debug("input stream error", "error", err)
	}

	g.logger.Debug("push evaluated",
		"push", fmt.Sprintf("%x", fingerprint.Sum(nil)[:8]),
		"verdict", verdict.String())

	return verdict
}
