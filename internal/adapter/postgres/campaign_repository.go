package postgres

import (
	"context"
	"errors"
	"strconv"
	"sync"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"mailcamp/internal/core/domain"
	"mailcamp/internal/core/port"
)

// PoolProvider hands out the shared connection pool, establishing it on
// first use.
type PoolProvider interface {
	Pool(ctx context.Context) (*pgxpool.Pool, error)
}

// CampaignRepository implements port.CampaignRepository on a JSONB column:
// one row per campaign, the nested document stored as is.
type CampaignRepository struct {
	pools PoolProvider

	// insertMu keeps insert batches from overlapping on the shared pool.
	insertMu sync.Mutex
}

// NewCampaignRepository returns a repository backed by pools.
func NewCampaignRepository(pools PoolProvider) *CampaignRepository {
	return &CampaignRepository{pools: pools}
}

const insertDocument = `
        INSERT INTO campaign_documents (campaign_id, doc)
        VALUES ($1, $2)
        ON CONFLICT (campaign_id) DO NOTHING
        RETURNING id`

// InsertMany sends all documents in one batch. Conflicting campaign ids
// return no row and are reported as duplicates.
func (r *CampaignRepository) InsertMany(ctx context.Context, docs []domain.Document) ([]port.InsertOutcome, error) {
	if len(docs) == 0 {
		return nil, nil
	}
	pool, err := r.pools.Pool(ctx)
	if err != nil {
		return nil, err
	}

	r.insertMu.Lock()
	defer r.insertMu.Unlock()

	batch := &pgx.Batch{}
	for _, doc := range docs {
		batch.Queue(insertDocument, doc.CampaignID(), doc)
	}
	br := pool.SendBatch(ctx, batch)
	outcomes := make([]port.InsertOutcome, len(docs))
	for i := range docs {
		var id int64
		err = br.QueryRow().Scan(&id)
		if errors.Is(err, pgx.ErrNoRows) {
			outcomes[i].Duplicate = true
			continue
		}
		if err != nil {
			_ = br.Close()
			return nil, unavailable("insert", err)
		}
		outcomes[i].ID = strconv.FormatInt(id, 10)
	}
	if err = br.Close(); err != nil {
		return nil, unavailable("insert", err)
	}
	return outcomes, nil
}

// FindAll returns every document, newest first.
func (r *CampaignRepository) FindAll(ctx context.Context) ([]port.StoredDocument, error) {
	pool, err := r.pools.Pool(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := pool.Query(ctx, `SELECT id, doc FROM campaign_documents ORDER BY id DESC`)
	if err != nil {
		return nil, unavailable("find all", err)
	}
	docs, err := pgx.CollectRows(rows, scanDocument)
	if err != nil {
		return nil, unavailable("find all", err)
	}
	return docs, nil
}

// FindByCampaignID returns nil, nil when no document matches.
func (r *CampaignRepository) FindByCampaignID(ctx context.Context, campaignID string) (*port.StoredDocument, error) {
	pool, err := r.pools.Pool(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := pool.Query(ctx, `SELECT id, doc FROM campaign_documents WHERE campaign_id = $1`, campaignID)
	if err != nil {
		return nil, unavailable("find by campaign id", err)
	}
	doc, err := pgx.CollectExactlyOneRow(rows, scanDocument)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, unavailable("find by campaign id", err)
	}
	return &doc, nil
}

// Count returns the number of stored documents.
func (r *CampaignRepository) Count(ctx context.Context) (int64, error) {
	pool, err := r.pools.Pool(ctx)
	if err != nil {
		return 0, err
	}
	var n int64
	if err = pool.QueryRow(ctx, `SELECT count(*) FROM campaign_documents`).Scan(&n); err != nil {
		return 0, unavailable("count", err)
	}
	return n, nil
}

// scanDocument keeps undecodable payloads as empty documents so the query
// layer reports them with the rest of the skipped documents.
func scanDocument(row pgx.CollectableRow) (port.StoredDocument, error) {
	var (
		id  int64
		raw []byte
	)
	if err := row.Scan(&id, &raw); err != nil {
		return port.StoredDocument{}, err
	}
	doc, err := domain.DecodeDocument(raw)
	if err != nil {
		doc = domain.Document{}
	}
	return port.StoredDocument{ID: strconv.FormatInt(id, 10), Document: doc}, nil
}

func unavailable(op string, err error) error {
	return &domain.StoreUnavailableError{Op: op, Err: err}
}
