package model

import (
	"github.com/m-mizutani/goerr/v2"
)

const (
	DefaultProductName  = "Wirespeed"
	DefaultLogo         = "/wirespeed.avif"
	DefaultCaseResponse = "Investigated and triaged by Wirespeed MDR."
	DefaultTheme        = "light"
)

// ReportSettings holds the presentation defaults applied while assembling a report
type ReportSettings struct {
	ProductName  string `yaml:"product_name"`  // Name used in the executive summary
	DefaultLogo  string `yaml:"default_logo"`  // Logo asset when the team has none
	CaseResponse string `yaml:"case_response"` // Response text for cases without summary or notes
	Theme        string `yaml:"theme"`         // Branding theme
}

// DefaultReportSettings returns the built-in settings
func DefaultReportSettings() *ReportSettings {
	return &ReportSettings{
		ProductName:  DefaultProductName,
		DefaultLogo:  DefaultLogo,
		CaseResponse: DefaultCaseResponse,
		Theme:        DefaultTheme,
	}
}

// WithDefaults returns a copy where every empty field is taken from DefaultReportSettings
func (s *ReportSettings) WithDefaults() *ReportSettings {
	result := DefaultReportSettings()
	if s == nil {
		return result
	}
	if s.ProductName != "" {
		result.ProductName = s.ProductName
	}
	if s.DefaultLogo != "" {
		result.DefaultLogo = s.DefaultLogo
	}
	if s.CaseResponse != "" {
		result.CaseResponse = s.CaseResponse
	}
	if s.Theme != "" {
		result.Theme = s.Theme
	}
	return result
}

// Validate validates the settings
func (s *ReportSettings) Validate() error {
	switch s.Theme {
	case "", "light", "dark":
	default:
		return goerr.New("theme must be light or dark",
			goerr.V("theme", s.Theme))
	}
	if len(s.ProductName) > 64 {
		return goerr.New("product name is too long",
			goerr.V("length", len(s.ProductName)))
	}
	return nil
}
