package core

import (
	"context"
	"io"

	"volscan/config"
	"volscan/pkg/analyzer"
	"volscan/pkg/display"
	"volscan/pkg/quote"
	"volscan/pkg/types"

	log "github.com/sirupsen/logrus"
)

// Run executes one scan: prime the session, fetch the snapshot, rank it and
// print the table to out. Failures are logged and end in an empty ranking.
func Run(ctx context.Context, cfg config.Config, out io.Writer) []types.DerivedRecord {
	session := Bootstrap(ctx, cfg)

	log.Info("🦿 Running...")
	fetcher := quote.NewFetcher(session, quote.FetcherConfig{
		Path:    cfg.Endpoint.DataPath,
		Query:   indexQuery(cfg.Endpoint.Index),
		Backoff: cfg.Fetch.Backoff,
	})
	records := fetcher.Fetch(ctx, cfg.Fetch.MaxAttempts)
	log.Infof("received %d records", len(records))

	ranked := analyzer.New(cfg.Analysis.Window, cfg.Analysis.TopN).Analyze(records)
	log.Infof("ranked %d records", len(ranked))

	display.PrintRanking(out, ranked)
	return ranked
}

func indexQuery(index string) map[string]string {
	if index == "" {
		return nil
	}
	return map[string]string{"index": index}
}
