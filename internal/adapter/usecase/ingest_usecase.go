package usecase

import (
	"cmp"
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"mailcamp/internal/config/configs"
	"mailcamp/internal/core/domain"
	"mailcamp/internal/core/port"
	"mailcamp/internal/metrics"
)

// IngestUseCase turns uploads into stored campaign documents. Items are
// built independently on a bounded worker pool; only the insert touches
// the store.
type IngestUseCase struct {
	repo    port.CampaignRepository
	cache   port.CampaignCache
	reader  port.TableReader
	metrics *metrics.Recorder
	log     *slog.Logger
	cfg     configs.Ingest

	now func() time.Time
}

// NewIngestUseCase wires the pipeline. rec may be nil.
func NewIngestUseCase(
	repo port.CampaignRepository,
	cache port.CampaignCache,
	reader port.TableReader,
	rec *metrics.Recorder,
	log *slog.Logger,
	cfg configs.Ingest,
) *IngestUseCase {
	return &IngestUseCase{
		repo:    repo,
		cache:   cache,
		reader:  reader,
		metrics: rec,
		log:     log,
		cfg:     cfg,
		now:     time.Now,
	}
}

type built struct {
	campaign domain.CampaignData
	err      error
}

// IngestFile reads a CSV or XLSX upload. An unreadable file fails the whole
// call and nothing is inserted.
func (u *IngestUseCase) IngestFile(ctx context.Context, name string, content io.Reader) (*port.IngestionReport, error) {
	start := time.Now()
	table, err := u.reader.Read(name, content)
	if err != nil {
		return nil, fmt.Errorf("read %q: %w", name, err)
	}
	if missing := missingColumns(table.Header); len(missing) > 0 {
		u.log.Warn("upload lacks required columns",
			slog.String("file", name), slog.Any("columns", missing))
	}

	rows := domain.NormalizeTable(table)
	opts := domain.BuildOptions{
		Now:            u.now(),
		DeriveStatus:   u.cfg.DeriveStatus,
		RatesAsPercent: u.cfg.RatesAsPercent,
	}
	items := u.buildAll(len(rows), func(i int) (domain.CampaignData, error) {
		return domain.BuildFromRow(rows[i], opts)
	})
	return u.store(ctx, "file", items, start)
}

// IngestDocuments stores already nested documents, validating each one the
// same way stored documents are validated on read.
func (u *IngestUseCase) IngestDocuments(ctx context.Context, docs []domain.Document) (*port.IngestionReport, error) {
	start := time.Now()
	items := u.buildAll(len(docs), func(i int) (domain.CampaignData, error) {
		return domain.BuildFromDocument(docs[i])
	})
	return u.store(ctx, "document", items, start)
}

// buildAll runs build for every index. Build failures are per item and
// never cancel the group.
func (u *IngestUseCase) buildAll(n int, build func(i int) (domain.CampaignData, error)) []built {
	items := make([]built, n)
	var g errgroup.Group
	g.SetLimit(max(1, u.cfg.Workers))
	for i := range n {
		g.Go(func() error {
			c, err := build(i)
			items[i] = built{campaign: c, err: err}
			return nil
		})
	}
	_ = g.Wait()
	return items
}

func (u *IngestUseCase) store(ctx context.Context, source string, items []built, start time.Time) (*port.IngestionReport, error) {
	report := &port.IngestionReport{
		BatchID:     uuid.NewString(),
		InsertedIDs: []string{},
		Failures:    []port.ItemFailure{},
	}
	log := u.log.With(slog.String("batch", report.BatchID), slog.String("source", source))

	var (
		docs     []domain.Document
		indexes  []int
		warnings [][]string
		seen     = make(map[string]int, len(items))
	)
	for i, it := range items {
		if it.err != nil {
			report.Failures = append(report.Failures, port.ItemFailure{Index: i, Reason: it.err.Error()})
			log.Warn("item rejected", slog.Int("row", i), slog.String("reason", it.err.Error()))
			continue
		}
		id := it.campaign.CampaignID
		if first, dup := seen[id]; dup {
			reason := fmt.Sprintf("campaign_id %q repeats item %d of this upload", id, first)
			report.Failures = append(report.Failures, port.ItemFailure{Index: i, Reason: reason})
			log.Warn("item rejected", slog.Int("row", i), slog.String("reason", reason))
			continue
		}
		seen[id] = i
		docs = append(docs, domain.Serialize(it.campaign))
		indexes = append(indexes, i)
		warnings = append(warnings, it.campaign.QualityWarnings())
	}

	if len(docs) > 0 {
		outcomes, err := u.repo.InsertMany(ctx, docs)
		if err != nil {
			log.Error("insert failed", slog.Int("documents", len(docs)), slog.String("error", err.Error()))
			return nil, err
		}
		if len(outcomes) != len(docs) {
			return nil, fmt.Errorf("insert returned %d outcomes for %d documents", len(outcomes), len(docs))
		}
		for k, out := range outcomes {
			i := indexes[k]
			if out.Duplicate {
				reason := fmt.Sprintf("campaign_id %q already exists", docs[k].CampaignID())
				report.Failures = append(report.Failures, port.ItemFailure{Index: i, Reason: reason})
				log.Warn("item rejected", slog.Int("row", i), slog.String("reason", reason))
				continue
			}
			report.InsertedIDs = append(report.InsertedIDs, out.ID)
			for _, w := range warnings[k] {
				report.Warnings = append(report.Warnings, port.ItemWarning{Index: i, Message: w})
				log.Warn("data quality", slog.Int("row", i), slog.String("warning", w))
			}
		}
	}
	report.InsertedCount = len(report.InsertedIDs)

	if report.InsertedCount > 0 {
		if err := u.cache.Invalidate(ctx); err != nil {
			log.Error("cache invalidation failed", slog.String("error", err.Error()))
		}
	}
	slices.SortStableFunc(report.Failures, func(a, b port.ItemFailure) int { return cmp.Compare(a.Index, b.Index) })

	u.metrics.Ingested(source, report.InsertedCount, len(report.Failures), time.Since(start))
	log.Info("ingestion finished",
		slog.Int("items", len(items)),
		slog.Int("inserted", report.InsertedCount),
		slog.Int("failed", len(report.Failures)),
		slog.Int("warnings", len(report.Warnings)))
	return report, nil
}

func missingColumns(header []string) []string {
	present := make(map[string]struct{}, len(header))
	for _, h := range header {
		present[domain.NormalizeHeader(h)] = struct{}{}
	}
	var missing []string
	for _, col := range domain.RequiredColumns {
		if _, ok := present[col]; !ok {
			missing = append(missing, col)
		}
	}
	return missing
}
