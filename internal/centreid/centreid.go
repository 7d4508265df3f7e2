// Package centreid implements validation of WIS2 centre identifiers.
//
// A centre-id has the form <tld>-<centre-name>, where the TLD is a
// country-code or generic top-level domain and the centre name identifies
// the data-producing centre. Validation checks the baseline topic
// conventions, membership of the TLD in the IANA domain table, and that
// the identifier has not already been allocated in the centre-id level of
// the topic hierarchy.
package centreid

import (
	"fmt"
	"strings"

	"github.com/jpl-au/wistopics/internal/topics"
)

// CentreID is a candidate centre identifier split into its components.
type CentreID struct {
	raw    string
	tld    string
	centre string
}

// New parses a centre-id string. It returns ErrInvalidArgument when the
// string contains no '-', since the TLD cannot be separated from the
// centre name. The split happens on the first '-' only; centre names may
// themselves contain hyphens.
func New(id string) (*CentreID, error) {
	tld, centre, ok := strings.Cut(id, "-")
	if !ok {
		return nil, fmt.Errorf("%w: centre-id %q has no tld separator", topics.ErrInvalidArgument, id)
	}
	return &CentreID{raw: id, tld: tld, centre: centre}, nil
}

// TLD returns the top-level domain component.
func (c *CentreID) TLD() string { return c.tld }

// Centre returns the centre name component.
func (c *CentreID) Centre() string { return c.centre }

// String returns the full centre-id.
func (c *CentreID) String() string { return c.raw }

// Validate checks the centre-id against the TLD reference list and the
// loaded topic hierarchy tables.
//
// The verdict is true iff the full identifier passes the baseline
// conventions, the upper-cased TLD appears in tlds, and the identifier is
// not already allocated in the centre-id level of tables.
func (c *CentreID) Validate(tlds []string, tables *topics.Tables) bool {
	if !topics.ValidateBaseline(c.raw) {
		return false
	}

	tldUpper := strings.ToUpper(c.tld)
	tldValid := false
	for _, tld := range tlds {
		if tldUpper == tld {
			tldValid = true
			break
		}
	}
	if !tldValid {
		return false
	}

	// An allocated centre-id is not available for registration.
	return !tables.Contains(topics.LevelCentreID, c.raw)
}
