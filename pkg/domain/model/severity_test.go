package model_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/wirereport/pkg/domain/model"
)

func TestSeverityRank(t *testing.T) {
	testCases := []struct {
		severity model.Severity
		want     int
	}{
		{model.SeverityCritical, 0},
		{model.SeverityHigh, 1},
		{model.SeverityMedium, 2},
		{model.SeverityLow, 3},
		{model.SeverityInformational, 4},
		{model.Severity(""), model.UnknownSeverityRank},
		{model.Severity("critical"), model.UnknownSeverityRank},
		{model.Severity("SEVERE"), model.UnknownSeverityRank},
	}

	for _, tc := range testCases {
		t.Run(string(tc.severity), func(t *testing.T) {
			gt.Equal(t, tc.want, tc.severity.Rank())
		})
	}
}

func TestSeveritiesMatchRanks(t *testing.T) {
	gt.Equal(t, len(model.SeverityRanks), len(model.Severities))
	for i, sev := range model.Severities {
		gt.Equal(t, i, sev.Rank())
		gt.True(t, sev.IsValid())
	}
}

func TestLeakSeverity(t *testing.T) {
	testCases := []struct {
		severity model.Severity
		want     model.Severity
	}{
		{model.SeverityCritical, model.SeverityHigh},
		{model.SeverityHigh, model.SeverityHigh},
		{model.SeverityMedium, model.SeverityMedium},
		{model.SeverityLow, model.SeverityLow},
		{model.SeverityInformational, model.SeverityLow},
		{model.Severity(""), model.SeverityLow},
	}

	for _, tc := range testCases {
		t.Run(string(tc.severity), func(t *testing.T) {
			gt.Equal(t, tc.want, tc.severity.LeakSeverity())
		})
	}
}

func TestSeverityOrDefault(t *testing.T) {
	gt.Equal(t, model.SeverityInformational, model.Severity("").OrDefault(model.SeverityInformational))
	gt.Equal(t, model.SeverityHigh, model.SeverityHigh.OrDefault(model.SeverityInformational))
}
