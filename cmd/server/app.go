package main

import (
	"fmt"
	"log/slog"

	"github.com/usama6513/convert-api/internal/config"
	"github.com/usama6513/convert-api/internal/convert"
	"github.com/usama6513/convert-api/internal/domain"
	"github.com/usama6513/convert-api/internal/nlp"
	"github.com/usama6513/convert-api/internal/platform/exchangerate"
	"github.com/usama6513/convert-api/internal/platform/metrics"
	"github.com/usama6513/convert-api/internal/service"
	"github.com/usama6513/convert-api/internal/store/memory"
)

// application holds the server's wired dependencies.
type application struct {
	config    *config.Config
	logger    *slog.Logger
	converter service.ConverterService
	metrics   *metrics.Metrics
}

// newApplication wires the dependency graph: vocabulary, extractor,
// conversion engine over the live rate client, in-memory history, and
// the converter service on top.
func newApplication(cfg *config.Config, logger *slog.Logger) (*application, error) {
	vocab := domain.NewVocabulary()

	rateClient, err := exchangerate.NewClient(logger, cfg.Rates)
	if err != nil {
		return nil, fmt.Errorf("failed to create rate client: %w", err)
	}

	m := metrics.New()

	converter, err := service.NewConverterService(
		vocab,
		nlp.NewExtractor(vocab, logger),
		convert.NewEngine(rateClient, logger),
		memory.NewHistoryStore(),
		m,
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create converter service: %w", err)
	}

	return &application{
		config:    cfg,
		logger:    logger,
		converter: converter,
		metrics:   m,
	}, nil
}

// cleanup releases application resources on shutdown. The history store
// is in-memory and the rate client holds no persistent connections, so
// there is nothing to tear down beyond logging.
func (app *application) cleanup() {
	app.logger.Info("Application cleanup completed")
}
