package usecase

// Derivation helpers exposed for tests
var (
	FormatPercent            = formatPercent
	FormatTimeMetric         = formatTimeMetric
	BucketOS                 = bucketOS
	RankAttackSurface        = rankAttackSurface
	IntegrationTypes         = integrationTypes
	IntegrationEntries       = integrationEntries
	MappedDetectionStats     = mappedDetectionStats
	EscalatedCases           = escalatedCases
	DarkWebReport            = darkWebReport
	EventsByIntegration      = eventsByIntegration
	SuspiciousLoginLocations = suspiciousLoginLocations
	CasesBySeverity          = casesBySeverity
)
