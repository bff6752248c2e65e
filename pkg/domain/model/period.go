package model

import (
	"math"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
)

// APITimeLayout is the 23 character UTC timestamp the Wirespeed API expects
const APITimeLayout = "2006-01-02T15:04:05.000"

// DateLayout is used for leak dates
const DateLayout = "2006-01-02"

// ISOTimeLayout is the default creation time of cases without one
const ISOTimeLayout = "2006-01-02T15:04:05.000Z07:00"

const day = 24 * time.Hour

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	DateLayout,
}

// Timeframe is the caller supplied report window
type Timeframe struct {
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	PeriodLabel string `json:"periodLabel"`
}

// ReportPeriod is the normalized report window
type ReportPeriod struct {
	Start time.Time
	End   time.Time
	Days  int
}

// NewReportPeriod parses and normalizes a timeframe. The end is clamped to
// now and both bounds are truncated to millisecond precision in UTC. Only a
// missing or unparseable date is ErrInvalidTimeframe.
func NewReportPeriod(tf Timeframe, now time.Time) (*ReportPeriod, error) {
	start, err := ParseTimestamp(tf.StartDate)
	if err != nil {
		return nil, goerr.Wrap(ErrInvalidTimeframe, "invalid start date",
			goerr.V("startDate", tf.StartDate))
	}
	end, err := ParseTimestamp(tf.EndDate)
	if err != nil {
		return nil, goerr.Wrap(ErrInvalidTimeframe, "invalid end date",
			goerr.V("endDate", tf.EndDate))
	}

	if end.After(now) {
		end = now
	}
	start = start.UTC().Truncate(time.Millisecond)
	end = end.UTC().Truncate(time.Millisecond)

	// A window starting after its (clamped) end is kept as given; the API
	// answers it with empty results.
	days := int(math.Ceil(math.Abs(float64(end.Sub(start))) / float64(day)))
	if days < 1 {
		days = 1
	}

	return &ReportPeriod{Start: start, End: end, Days: days}, nil
}

// StartString returns the start in APITimeLayout
func (p *ReportPeriod) StartString() string {
	return FormatAPITime(p.Start)
}

// EndString returns the end in APITimeLayout
func (p *ReportPeriod) EndString() string {
	return FormatAPITime(p.End)
}

// Query returns the request body of the statistics endpoints
func (p *ReportPeriod) Query() ReportPeriodQuery {
	return ReportPeriodQuery{
		StartDate: p.StartString(),
		EndDate:   p.EndString(),
	}
}

// CreatedWithin returns a creation time filter covering the period
func (p *ReportPeriod) CreatedWithin() DateRange {
	return DateRange{
		GTE: p.StartString(),
		LTE: p.EndString(),
	}
}

// FormatAPITime formats t in APITimeLayout, truncating below milliseconds
func FormatAPITime(t time.Time) string {
	return t.UTC().Truncate(time.Millisecond).Format(APITimeLayout)
}

// ParseTimestamp parses RFC 3339 timestamps, zone-less timestamps and plain
// dates. Values without a zone are taken as UTC.
func ParseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, goerr.New("empty timestamp")
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, goerr.New("unsupported timestamp format", goerr.V("value", s))
}
