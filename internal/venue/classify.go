// Package venue decides whether an exhibition's venue, title, or host
// identifies it as a major corporate gallery or program, as opposed to
// an independent show. Matching is fuzzy and alias-tolerant; malformed
// or empty input never errors and degrades to "independent".
package venue

import "strings"

// Type classifies a listing by venue.
type Type string

const (
	TypeAll         Type = "all" // filter sentinel: no venue-type filter
	TypeMajor       Type = "major"
	TypeIndependent Type = "independent"
)

// ParseType validates a venue-type token. Unrecognized tokens report
// ok=false so the caller can fall back to its default.
func ParseType(s string) (Type, bool) {
	switch Type(s) {
	case TypeAll, TypeMajor, TypeIndependent:
		return Type(s), true
	}
	return "", false
}

// Table holds the alias clusters with every alias pre-normalized.
// It is built once at startup and never mutated afterwards; all
// methods are safe for concurrent use.
type Table struct {
	venues      [][]string
	exhibitions [][]string
}

// NewTable builds a Table from raw alias clusters, normalizing every
// alias. Empty aliases and empty clusters are dropped.
func NewTable(venueClusters, exhibitionClusters [][]string) *Table {
	return &Table{
		venues:      normalizeClusters(venueClusters),
		exhibitions: normalizeClusters(exhibitionClusters),
	}
}

// DefaultTable returns a Table with the built-in alias clusters.
func DefaultTable() *Table {
	return NewTable(defaultVenueClusters, defaultExhibitionClusters)
}

// Extend returns a new Table with the given raw clusters appended.
// The receiver is not modified.
func (t *Table) Extend(venueClusters, exhibitionClusters [][]string) *Table {
	extended := &Table{
		venues:      make([][]string, 0, len(t.venues)+len(venueClusters)),
		exhibitions: make([][]string, 0, len(t.exhibitions)+len(exhibitionClusters)),
	}
	extended.venues = append(extended.venues, t.venues...)
	extended.venues = append(extended.venues, normalizeClusters(venueClusters)...)
	extended.exhibitions = append(extended.exhibitions, t.exhibitions...)
	extended.exhibitions = append(extended.exhibitions, normalizeClusters(exhibitionClusters)...)
	return extended
}

// IsMajorVenue reports whether the venue name matches a major-gallery
// alias cluster.
func (t *Table) IsMajorVenue(venueName string) bool {
	return matchClusters(t.venues, Normalize(venueName))
}

// IsMajorExhibition reports whether the exhibition title or host name
// matches a large-program alias cluster. Both arguments are optional.
func (t *Table) IsMajorExhibition(title, hostName string) bool {
	text := strings.TrimSpace(title + " " + hostName)
	if text == "" {
		return false
	}
	return matchClusters(t.exhibitions, Normalize(text))
}

// IsMajorEvent reports whether either the venue or the title/host
// identifies a major exhibition.
func (t *Table) IsMajorEvent(venueName, title, hostName string) bool {
	return t.IsMajorVenue(venueName) || t.IsMajorExhibition(title, hostName)
}

// Classify returns TypeMajor or TypeIndependent for the listing.
func (t *Table) Classify(venueName, title, hostName string) Type {
	if t.IsMajorEvent(venueName, title, hostName) {
		return TypeMajor
	}
	return TypeIndependent
}

// Report details a single classification, for debugging and badges.
type Report struct {
	Venue           string `json:"venue"`
	NormalizedVenue string `json:"normalized_venue"`
	MajorVenue      bool   `json:"major_venue"`
	MajorExhibition bool   `json:"major_exhibition"`
	VenueType       Type   `json:"venue_type"`
}

// Inspect classifies a listing and reports which rule matched.
func (t *Table) Inspect(venueName, title, hostName string) Report {
	majorVenue := t.IsMajorVenue(venueName)
	majorExhibition := t.IsMajorExhibition(title, hostName)
	venueType := TypeIndependent
	if majorVenue || majorExhibition {
		venueType = TypeMajor
	}
	return Report{
		Venue:           venueName,
		NormalizedVenue: Normalize(venueName),
		MajorVenue:      majorVenue,
		MajorExhibition: majorExhibition,
		VenueType:       venueType,
	}
}

// matchClusters reports whether the normalized text matches any alias
// in any cluster. Containment is symmetric: the text containing an
// alias and an alias containing the text both count, to tolerate
// partial official names.
func matchClusters(clusters [][]string, normalized string) bool {
	if normalized == "" {
		return false
	}
	for _, cluster := range clusters {
		for _, alias := range cluster {
			if strings.Contains(normalized, alias) || strings.Contains(alias, normalized) {
				return true
			}
		}
	}
	return false
}

// normalizeClusters applies Normalize to every alias, dropping aliases
// that normalize to empty (an empty alias would match everything).
func normalizeClusters(clusters [][]string) [][]string {
	result := make([][]string, 0, len(clusters))
	for _, cluster := range clusters {
		normalized := make([]string, 0, len(cluster))
		for _, alias := range cluster {
			if n := Normalize(alias); n != "" {
				normalized = append(normalized, n)
			}
		}
		if len(normalized) > 0 {
			result = append(result, normalized)
		}
	}
	return result
}
