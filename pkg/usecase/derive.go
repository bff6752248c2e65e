package usecase

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/secmon-lab/wirereport/pkg/domain/model"
	"github.com/secmon-lab/wirereport/pkg/domain/types"
	"github.com/secmon-lab/wirereport/pkg/utils/sanitize"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	attackSurfaceLimit      = 5
	escalatedCaseLimit      = 10
	recentLeakLimit         = 5
	suspiciousLocationLimit = 10

	unknownTeamName        = "Unknown Team"
	unknownIntegrationName = "Unknown Integration"
	unknownCountry         = "Unknown"
	unknownExposureType    = "Unknown Exposure"
	defaultLeakSource      = "Web Leak"
	defaultCaseStatus      = "CLOSED"
)

var printer = message.NewPrinter(language.English)

// formatCount renders n with thousands separators
func formatCount(n int64) string {
	return printer.Sprintf("%d", n)
}

// formatPercent renders n/d as a percentage with two decimals, "0%" without a denominator
func formatPercent(n, d int64) string {
	if d <= 0 {
		return "0%"
	}
	return fmt.Sprintf("%.2f%%", float64(n)/float64(d)*100)
}

// formatTimeMetric renders a mean-time metric in the largest unit below its value
func formatTimeMetric(metric *model.TimeMetric) string {
	if metric == nil {
		metric = &model.TimeMetric{Average: types.NewOptionalNumber(0), Unit: "seconds"}
	}
	seconds := metric.Unit.String() == "seconds"

	avg, ok := metric.Average.Get()
	if !ok {
		if seconds {
			return "0s"
		}
		return "0ms"
	}

	ms := avg
	if seconds {
		ms = avg * 1000
	}

	switch {
	case ms < 1000:
		return fmt.Sprintf("%.0fms", ms)
	case ms < 60000:
		return fmt.Sprintf("%.1fs", ms/1000)
	case ms < 3600000:
		return fmt.Sprintf("%.1fm", ms/60000)
	case ms < 86400000:
		return fmt.Sprintf("%.1fh", ms/3600000)
	default:
		return fmt.Sprintf("%.1fd", ms/86400000)
	}
}

// bucketOS maps an operating system label to its bucket
func bucketOS(name string) model.OSBucket {
	lower := strings.ToLower(name)
	for _, rule := range model.OSBucketRules {
		if containsAny(lower, rule.Keywords) {
			return rule.Bucket
		}
	}
	return model.OSOther
}

func endpointsByOS(stats *model.OperatingSystemStatistics) model.EndpointOS {
	var result model.EndpointOS
	if stats == nil {
		return result
	}
	for _, os := range stats.OperatingSystems.Items() {
		result.Add(bucketOS(os.OperatingSystem.String()), os.Count.Int())
	}
	return result
}

// tally counts names keeping the order in which they were first seen
type tally struct {
	order  []string
	counts map[string]int
}

func newTally() *tally {
	return &tally{counts: make(map[string]int)}
}

func (t *tally) add(name string) {
	if name == "" {
		return
	}
	if _, ok := t.counts[name]; !ok {
		t.order = append(t.order, name)
	}
	t.counts[name]++
}

func (t *tally) top(n int) []model.RankedItem {
	items := make([]model.RankedItem, 0, len(t.order))
	for _, name := range t.order {
		items = append(items, model.RankedItem{Name: name, Count: t.counts[name]})
	}
	slices.SortStableFunc(items, func(a, b model.RankedItem) int {
		return cmp.Compare(b.Count, a.Count)
	})
	if len(items) > n {
		items = items[:n]
	}
	return items
}

// rankAttackSurface returns the most frequently affected endpoints and
// directory identities across all detections
func rankAttackSurface(assets []*model.Assets) (endpoints, identities []model.RankedItem) {
	endpointTally := newTally()
	identityTally := newTally()

	for _, a := range assets {
		if a == nil {
			continue
		}
		for _, e := range a.Endpoints.Items() {
			endpointTally.add(e.DisplayName.Or(e.Name.String()))
		}
		for _, d := range a.Directory.Items() {
			if d.DirectoryID == "" {
				continue
			}
			identityTally.add(d.DisplayName.Or(d.Email.String()))
		}
	}

	return endpointTally.top(attackSurfaceLimit), identityTally.top(attackSurfaceLimit)
}

// integrationTypes tags an integration by keywords of its description. Tags
// keep rule order and appear once.
func integrationTypes(description string) []string {
	desc := strings.ToLower(description)
	var result []string
	for _, rule := range model.IntegrationTypeRules {
		if containsAny(desc, rule.Keywords) && !slices.Contains(result, rule.Type) {
			result = append(result, rule.Type)
		}
	}
	if len(result) == 0 {
		result = append(result, model.IntegrationTypeOther)
	}
	return result
}

func integrationName(i model.Integration) string {
	platform := i.Platform.String()
	if model.GenericIngestPlatforms[platform] {
		return i.IdentityFields.Label.Or(i.Config.Name.Or(platform))
	}
	return i.Config.Name.Or(platform)
}

func integrationEntries(list *model.IntegrationList) []model.IntegrationEntry {
	result := []model.IntegrationEntry{}
	if list == nil {
		return result
	}
	for _, i := range list.Data.Items() {
		platform := i.Platform.String()
		if model.ExcludedPlatforms[platform] {
			continue
		}
		result = append(result, model.IntegrationEntry{
			Name:     sanitize.Text(integrationName(i)),
			Types:    integrationTypes(i.Config.Description.String()),
			Platform: platform,
			Enabled:  i.Enabled.Bool(),
			Logo:     i.Config.LogoLight.Or(i.Config.Logo.String()),
		})
	}
	return result
}

func categoryClassEntries(stats []model.CategoryClassStat) []model.CategoryClassEntry {
	result := make([]model.CategoryClassEntry, 0, len(stats))
	for _, s := range stats {
		result = append(result, model.CategoryClassEntry{
			CategoryClass: s.CategoryClass.Or("OTHER"),
			DisplayName:   s.DisplayName.Or("Other"),
			Count:         s.Count.Int(),
			Percentage:    s.Percentage.Float(),
		})
	}
	return result
}

// mappedDetectionStats projects category class statistics onto
// FixedDetectionCategories. The first matching statistic wins.
func mappedDetectionStats(stats []model.CategoryClassStat, totalDetections int64) []model.MappedDetectionStat {
	denominator := float64(totalDetections)
	if totalDetections == 0 {
		denominator = 1
	}

	result := make([]model.MappedDetectionStat, 0, len(model.FixedDetectionCategories))
	for _, category := range model.FixedDetectionCategories {
		var count int64
		for _, s := range stats {
			if strings.EqualFold(s.CategoryClass.String(), category.Key) ||
				strings.EqualFold(s.DisplayName.String(), category.Label) {
				count = s.Count.Int()
				break
			}
		}
		result = append(result, model.MappedDetectionStat{
			Category:   category.Label,
			Percentage: float64(count) / denominator * 100,
			Count:      count,
		})
	}
	return result
}

// escalatedCases returns the most severe cases, stable within a severity
func escalatedCases(list *model.CaseList, defaultResponse string, now time.Time) []model.EscalatedCase {
	result := []model.EscalatedCase{}
	if list == nil {
		return result
	}

	cases := slices.Clone(list.Data.Items())
	slices.SortStableFunc(cases, func(a, b model.Case) int {
		return cmp.Compare(
			model.Severity(a.Severity).Rank(),
			model.Severity(b.Severity).Rank(),
		)
	})
	if len(cases) > escalatedCaseLimit {
		cases = cases[:escalatedCaseLimit]
	}

	for _, c := range cases {
		result = append(result, model.EscalatedCase{
			ID:        c.ID.String(),
			SID:       c.SID.String(),
			Title:     sanitize.Text(c.Title.String()),
			Severity:  model.Severity(c.Severity).OrDefault(model.SeverityInformational),
			Status:    c.Status.Or(defaultCaseStatus),
			CreatedAt: c.CreatedAt.Or(now.UTC().Format(model.ISOTimeLayout)),
			Response:  sanitize.Text(c.Summary.Or(c.Notes.Or(defaultResponse))),
		})
	}
	return result
}

// darkWebReport summarizes private and public credential exposure cases
func darkWebReport(private, public *model.CaseList, now time.Time) model.DarkWebReport {
	type exposure struct {
		c       model.Case
		created time.Time
	}

	var exposures []exposure
	var total int64
	for _, list := range []*model.CaseList{private, public} {
		if list == nil {
			continue
		}
		total += list.TotalCount.Int()
		for _, c := range list.Data.Items() {
			created, _ := model.ParseTimestamp(c.CreatedAt.String())
			exposures = append(exposures, exposure{c: c, created: created})
		}
	}

	slices.SortStableFunc(exposures, func(a, b exposure) int {
		return b.created.Compare(a.created)
	})

	report := model.DarkWebReport{
		TotalExposures:      total,
		CompromisedAccounts: len(exposures),
		RecentLeaks:         []model.Leak{},
	}
	for _, e := range exposures {
		if model.Severity(e.c.Severity).IsHighRisk() {
			report.HighRiskExposures++
		}
	}

	for i, e := range exposures {
		if i >= recentLeakLimit {
			break
		}
		date := e.created
		if date.IsZero() {
			date = now
		}

		source := defaultLeakSource
		if platforms := e.c.Platforms.Items(); len(platforms) > 0 && platforms[0] != "" {
			source = platforms[0].String()
		}

		report.RecentLeaks = append(report.RecentLeaks, model.Leak{
			Date:     date.UTC().Format(model.DateLayout),
			Source:   sanitize.Text(source),
			Type:     sanitize.Text(e.c.Title.Or(unknownExposureType)),
			Severity: model.Severity(e.c.Severity).LeakSeverity(),
		})
	}
	return report
}

func totalEvents(stats *model.EventStatistics) int64 {
	var total int64
	if stats == nil {
		return total
	}
	for _, s := range stats.OCSFStatistics.Items() {
		total += s.TotalEvents.Int()
	}
	return total
}

func eventsByIntegration(stats *model.EventStatistics) []model.IntegrationEvents {
	result := []model.IntegrationEvents{}
	if stats == nil {
		return result
	}
	for _, s := range stats.OCSFStatistics.Items() {
		events := s.TotalEvents.Int()
		result = append(result, model.IntegrationEvents{
			Name:       sanitize.Text(s.Integration.Config.Name.Or(unknownIntegrationName)),
			Processed:  fmt.Sprintf("%.2f MB", s.TotalBytes.Float()/1024/1024),
			Count:      formatCount(events),
			CountValue: events,
		})
	}
	return result
}

func suspiciousLoginLocations(stats *model.GeographyStatistics) []model.LocationEntry {
	result := []model.LocationEntry{}
	if stats == nil {
		return result
	}
	for _, l := range stats.SuspiciousLoginLocations.Items() {
		result = append(result, model.LocationEntry{
			Country: sanitize.Text(l.Country.Or(unknownCountry)),
			Count:   l.Count.Int(),
		})
	}
	slices.SortStableFunc(result, func(a, b model.LocationEntry) int {
		return cmp.Compare(b.Count, a.Count)
	})
	if len(result) > suspiciousLocationLimit {
		result = result[:suspiciousLocationLimit]
	}
	return result
}

// casesBySeverity takes the first count reported for each known severity
func casesBySeverity(counts []model.SeverityCount) model.SeverityBreakdown {
	var result model.SeverityBreakdown
	seen := make(map[model.Severity]bool)
	for _, c := range counts {
		severity := model.Severity(c.Severity)
		if seen[severity] {
			continue
		}
		seen[severity] = true
		result.Set(severity, c.Count.Int())
	}
	return result
}

// summaryFacts are the figures quoted by the executive summary
type summaryFacts struct {
	ProductName     string
	Events          int64
	Endpoints       int64
	Users           int64
	Detections      int64
	AutoClosed      int64
	Escalated       int64
	ResponseActions int64
}

func plural(n int64, noun string) string {
	if n == 1 {
		return noun
	}
	return noun + "s"
}

func executiveSummary(f summaryFacts) string {
	actions := "no"
	if f.ResponseActions != 0 {
		actions = formatCount(f.ResponseActions)
	}

	return fmt.Sprintf("During the time frame of this report, %s analyzed %s events from %s %s, %s %s, and other sources in your environment. "+
		"Of those events, %s triggered detections through automated rules and dynamic analysis. "+
		"Of those detections, %s & integrated security tools automatically resolved %s and escalated %s %s to your security team. "+
		"Those cases led to %s response actions required to stop further compromise by your security team. "+
		"This defense strategy continues to reduce your risk, which maximizes your security and minimizes cyberattack damage to your business.",
		f.ProductName, formatCount(f.Events),
		formatCount(f.Endpoints), plural(f.Endpoints, "endpoint"),
		formatCount(f.Users), plural(f.Users, "user"),
		formatCount(f.Detections),
		f.ProductName, formatCount(f.AutoClosed),
		formatCount(f.Escalated), plural(f.Escalated, "case"),
		actions,
	)
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
