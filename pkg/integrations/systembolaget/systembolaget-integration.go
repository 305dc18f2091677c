package systembolaget

import (
	"net/url"

	"go.uber.org/zap"

	"droscher.com/Vinlogg/configs"
)

const IntegrationName = "systembolaget"

const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

type SystembolagetIntegration struct {
	searchURL string
	siteURL   string
	pageSize  int
	logger    *zap.Logger
}

func NewSystembolagetIntegration(conf configs.Systembolaget, logger *zap.Logger) *SystembolagetIntegration {
	return &SystembolagetIntegration{
		searchURL: conf.SearchURL,
		siteURL:   conf.SiteURL,
		pageSize:  conf.PageSize,
		logger:    logger,
	}
}

func (s *SystembolagetIntegration) allowedDomain() string {
	parsed, err := url.Parse(s.searchURL)
	if err != nil {
		return ""
	}

	return parsed.Hostname()
}
