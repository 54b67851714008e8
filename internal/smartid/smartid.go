// Package smartid builds and decodes the composite employee identifier
// DRC-<YEAR>-<CODE>-<SUFFIX>.
package smartid

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	Prefix      = "DRC"
	UnknownYear = "XXXX"
	GeneralCode = "GEN"

	MinSuffix = 10000
	MaxSuffix = 99999
)

var ErrMalformed = errors.New("malformed smart id")

var teamCodes = map[string]string{
	"AI/ML":           "AI",
	"Web Development": "WEB",
	"Mobile":          "MOB",
	"Data Science":    "DS",
	"QA":              "QA",
	"DevOps":          "OPS",
}

// TeamCode maps a team name to its short code, falling back to GEN.
func TeamCode(team *string) string {
	if team == nil {
		return GeneralCode
	}
	if code, ok := teamCodes[*team]; ok {
		return code
	}
	return GeneralCode
}

// TeamName is the reverse lookup of TeamCode. GEN and unknown codes report false.
func TeamName(code string) (string, bool) {
	for name, c := range teamCodes {
		if c == code {
			return name, true
		}
	}
	return "", false
}

// Year returns the leading segment of a YYYY-MM-DD date, or XXXX when absent.
func Year(joinDate *string) string {
	if joinDate == nil || *joinDate == "" {
		return UnknownYear
	}
	year, _, _ := strings.Cut(*joinDate, "-")
	return year
}

// Build formats an identifier from already-drawn parts.
func Build(joinDate, team *string, suffix int) string {
	return fmt.Sprintf("%s-%s-%s-%d", Prefix, Year(joinDate), TeamCode(team), suffix)
}

// Source is the subset of *math/rand.Rand the builder draws from.
type Source interface {
	Intn(n int) int
}

// Builder draws a fresh suffix for every identifier. It performs no locking;
// callers sharing a Source across goroutines must serialize access.
type Builder struct {
	src Source
}

func NewBuilder(src Source) *Builder {
	return &Builder{src: src}
}

// New builds an identifier with a suffix drawn uniformly from [MinSuffix, MaxSuffix].
// Suffixes are not checked against earlier identifiers.
func (b *Builder) New(joinDate, team *string) string {
	suffix := MinSuffix + b.src.Intn(MaxSuffix-MinSuffix+1)
	return Build(joinDate, team, suffix)
}

// ID is a decoded identifier.
type ID struct {
	Year   string
	Code   string
	Suffix int
}

// KnownYear reports whether the identifier carries a real joining year.
func (id ID) KnownYear() bool {
	return id.Year != UnknownYear
}

func (id ID) String() string {
	return fmt.Sprintf("%s-%s-%s-%d", Prefix, id.Year, id.Code, id.Suffix)
}

// Parse decodes an identifier produced by Build.
func Parse(s string) (ID, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 4 || parts[0] != Prefix {
		return ID{}, fmt.Errorf("%w: %q", ErrMalformed, s)
	}
	year, code, suffix := parts[1], parts[2], parts[3]

	if year != UnknownYear && !isDigits(year, 4) {
		return ID{}, fmt.Errorf("%w: year %q", ErrMalformed, year)
	}
	if len(code) < 2 || len(code) > 3 || strings.ToUpper(code) != code || !isLetters(code) {
		return ID{}, fmt.Errorf("%w: team code %q", ErrMalformed, code)
	}
	if !isDigits(suffix, 5) {
		return ID{}, fmt.Errorf("%w: suffix %q", ErrMalformed, suffix)
	}
	n, err := strconv.Atoi(suffix)
	if err != nil || n < MinSuffix {
		return ID{}, fmt.Errorf("%w: suffix %q", ErrMalformed, suffix)
	}
	return ID{Year: year, Code: code, Suffix: n}, nil
}

func isDigits(s string, n int) bool {
	if len(s) != n {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func isLetters(s string) bool {
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}
