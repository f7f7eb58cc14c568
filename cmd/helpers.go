package cmd

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/ziadkadry99/distant-reading/internal/analysis"
	"github.com/ziadkadry99/distant-reading/internal/config"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `distread init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// loadDocument loads the analysis document named by the config and warns
// about configured texts or themes it does not contain.
func loadDocument(ctx context.Context, cfg *config.Config) (*analysis.Document, error) {
	doc, err := analysis.NewLoader(cfg.DataPath).Load(ctx)
	if err != nil {
		return nil, err
	}
	if err := doc.Validate(cfg.Texts, cfg.Themes); err != nil {
		logger.Warn("Analysis data does not cover the configured controls",
			zap.String("source", cfg.DataPath), zap.Error(err))
	}
	logger.Debug("Analysis data loaded",
		zap.String("source", cfg.DataPath),
		zap.Int("texts", len(doc.Texts)),
		zap.String("analysis_date", doc.Metadata.AnalysisDate))
	return doc, nil
}
