package model

import "strings"

// Severity is a case or detection severity as reported by Wirespeed
type Severity string

const (
	SeverityCritical      Severity = "CRITICAL"
	SeverityHigh          Severity = "HIGH"
	SeverityMedium        Severity = "MEDIUM"
	SeverityLow           Severity = "LOW"
	SeverityInformational Severity = "INFORMATIONAL"
)

// UnknownSeverityRank sorts unknown and missing severities after every known one
const UnknownSeverityRank = 99

// SeverityRanks orders severities from most to least severe
var SeverityRanks = map[Severity]int{
	SeverityCritical:      0,
	SeverityHigh:          1,
	SeverityMedium:        2,
	SeverityLow:           3,
	SeverityInformational: 4,
}

// Severities lists the known severities in rank order
var Severities = []Severity{
	SeverityCritical,
	SeverityHigh,
	SeverityMedium,
	SeverityLow,
	SeverityInformational,
}

// String returns the string representation
func (s Severity) String() string {
	return string(s)
}

// IsValid checks if the severity is one of the known values. Matching is exact.
func (s Severity) IsValid() bool {
	_, ok := SeverityRanks[s]
	return ok
}

// Rank returns the sort rank of the severity, UnknownSeverityRank if unknown
func (s Severity) Rank() int {
	if rank, ok := SeverityRanks[s]; ok {
		return rank
	}
	return UnknownSeverityRank
}

// IsHighRisk returns true for CRITICAL and HIGH
func (s Severity) IsHighRisk() bool {
	return s == SeverityCritical || s == SeverityHigh
}

// LeakSeverity buckets a severity into the three levels used for credential leaks
func (s Severity) LeakSeverity() Severity {
	switch {
	case s.IsHighRisk():
		return SeverityHigh
	case s == SeverityMedium:
		return SeverityMedium
	default:
		return SeverityLow
	}
}

// OrDefault returns s, or fallback when s is empty
func (s Severity) OrDefault(fallback Severity) Severity {
	if strings.TrimSpace(string(s)) == "" {
		return fallback
	}
	return s
}
