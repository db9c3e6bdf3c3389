package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"content-workflow/internal/domain"
)

const contentColumns = `id, instruction, content_type, template, purpose, style_sample, keywords,
	status, variants, image_candidates, selected_variant_index, selected_image_indices,
	final_text, final_image_urls, scheduled_at, published_at, external_post_url,
	publish_key::text, publish_attempts, last_publish_error, created_at, updated_at`

// rowScanner is satisfied by both pgx.Row and pgx.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// PostgresContentRepository implements ContentRepository using PostgreSQL.
type PostgresContentRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresContentRepository creates a new PostgresContentRepository.
func NewPostgresContentRepository(pool *pgxpool.Pool) *PostgresContentRepository {
	return &PostgresContentRepository{pool: pool}
}

// Create inserts a new content item.
func (r *PostgresContentRepository) Create(ctx context.Context, item *domain.ContentItem) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO content_items (id, instruction, content_type, template, purpose, style_sample,
			keywords, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`, item.ID, item.Source.Instruction, item.Source.ContentType, item.Source.Template,
		item.Source.Purpose, item.Source.StyleSample, nonNilStrings(item.Source.Keywords),
		item.Status, item.CreatedAt, item.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert content item: %w", err)
	}
	return nil
}

// Get retrieves a content item by ID.
func (r *PostgresContentRepository) Get(ctx context.Context, id string) (*domain.ContentItem, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+contentColumns+` FROM content_items WHERE id = $1`, id)
	item, err := scanContentItem(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get content item: %w", err)
	}
	return item, nil
}

// Mutate locks a single item, applies fn and writes the result back in the same transaction.
func (r *PostgresContentRepository) Mutate(ctx context.Context, id string, fn MutateFunc) (*domain.ContentItem, error) {
	var result *domain.ContentItem

	err := pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		row := tx.QueryRow(ctx, `SELECT `+contentColumns+` FROM content_items WHERE id = $1 FOR UPDATE`, id)
		current, err := scanContentItem(row)
		if errors.Is(err, pgx.ErrNoRows) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("lock content item: %w", err)
		}

		next, err := fn(*current)
		if err != nil {
			return err
		}
		if err := updateContentItem(ctx, tx, &next); err != nil {
			return err
		}
		result = &next
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// ClaimForGeneration locks up to limit not_started items, oldest first, and applies fn to each.
// Rows locked by a concurrent claimer are skipped, so two callers never claim the same item.
func (r *PostgresContentRepository) ClaimForGeneration(ctx context.Context, limit int, fn MutateFunc) ([]domain.ContentItem, error) {
	var claimed []domain.ContentItem

	err := pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx, `
			SELECT `+contentColumns+`
			FROM content_items
			WHERE status = $1
			ORDER BY created_at, id
			LIMIT $2
			FOR UPDATE SKIP LOCKED
		`, domain.StatusNotStarted, limit)
		if err != nil {
			return fmt.Errorf("select claimable items: %w", err)
		}

		candidates, err := collectContentItems(rows)
		if err != nil {
			return err
		}

		claimed = make([]domain.ContentItem, 0, len(candidates))
		for _, item := range candidates {
			next, err := fn(item)
			if err != nil {
				return fmt.Errorf("claim item %s: %w", item.ID, err)
			}
			if err := updateContentItem(ctx, tx, &next); err != nil {
				return err
			}
			claimed = append(claimed, next)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return claimed, nil
}

// CountByStatus counts items in the given status.
func (r *PostgresContentRepository) CountByStatus(ctx context.Context, status domain.Status) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM content_items WHERE status = $1`, status).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count content items: %w", err)
	}
	return count, nil
}

// ListDueForPublish returns approved, unpublished items scheduled at or before the given time.
func (r *PostgresContentRepository) ListDueForPublish(ctx context.Context, before time.Time, limit int) ([]domain.ContentItem, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+contentColumns+`
		FROM content_items
		WHERE status = $1 AND scheduled_at IS NOT NULL AND scheduled_at <= $2
			AND external_post_url IS NULL
		ORDER BY scheduled_at, id
		LIMIT $3
	`, domain.StatusApproved, before, limit)
	if err != nil {
		return nil, fmt.Errorf("list due items: %w", err)
	}
	return collectContentItems(rows)
}

// ListStaleQueued returns queued items not updated since the given time.
func (r *PostgresContentRepository) ListStaleQueued(ctx context.Context, updatedBefore time.Time, limit int) ([]domain.ContentItem, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+contentColumns+`
		FROM content_items
		WHERE status = $1 AND updated_at < $2
		ORDER BY updated_at, id
		LIMIT $3
	`, domain.StatusQueued, updatedBefore, limit)
	if err != nil {
		return nil, fmt.Errorf("list stale queued items: %w", err)
	}
	return collectContentItems(rows)
}

// RecordPublishFailure increments the attempt counter without touching status or schedule.
func (r *PostgresContentRepository) RecordPublishFailure(ctx context.Context, id, message string) (int, error) {
	var attempts int
	err := r.pool.QueryRow(ctx, `
		UPDATE content_items
		SET publish_attempts = publish_attempts + 1, last_publish_error = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING publish_attempts
	`, id, message).Scan(&attempts)
	if err != nil {
		return 0, fmt.Errorf("record publish failure: %w", err)
	}
	return attempts, nil
}

// EnsurePublishKey sets the idempotency key once and returns whichever key is stored.
func (r *PostgresContentRepository) EnsurePublishKey(ctx context.Context, id, key string) (string, error) {
	var stored string
	err := r.pool.QueryRow(ctx, `
		UPDATE content_items
		SET publish_key = COALESCE(publish_key, $2::uuid)
		WHERE id = $1
		RETURNING publish_key::text
	`, id, key).Scan(&stored)
	if err != nil {
		return "", fmt.Errorf("ensure publish key: %w", err)
	}
	return stored, nil
}

func updateContentItem(ctx context.Context, tx pgx.Tx, item *domain.ContentItem) error {
	var selectedVariant *int32
	if item.SelectedVariantIndex != nil {
		v := int32(*item.SelectedVariantIndex)
		selectedVariant = &v
	}
	selectedImages := make([]int32, len(item.SelectedImageIndices))
	for i, idx := range item.SelectedImageIndices {
		selectedImages[i] = int32(idx)
	}

	_, err := tx.Exec(ctx, `
		UPDATE content_items
		SET instruction = $2, content_type = $3, template = $4, purpose = $5, style_sample = $6,
			keywords = $7, status = $8, variants = $9, image_candidates = $10,
			selected_variant_index = $11, selected_image_indices = $12, final_text = $13,
			final_image_urls = $14, scheduled_at = $15, published_at = $16, external_post_url = $17,
			last_publish_error = $18, updated_at = $19
		WHERE id = $1
	`, item.ID, item.Source.Instruction, item.Source.ContentType, item.Source.Template,
		item.Source.Purpose, item.Source.StyleSample, nonNilStrings(item.Source.Keywords),
		item.Status, nonNilStrings(item.Variants), nonNilStrings(item.ImageCandidates),
		selectedVariant, selectedImages, item.FinalText,
		nonNilStrings(item.FinalImageURLs), item.ScheduledAt, item.PublishedAt, item.ExternalPostURL,
		item.LastPublishError, item.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update content item: %w", err)
	}
	return nil
}

func scanContentItem(row rowScanner) (*domain.ContentItem, error) {
	var item domain.ContentItem
	var status string
	var selectedVariant *int32
	var selectedImages []int32

	err := row.Scan(&item.ID, &item.Source.Instruction, &item.Source.ContentType, &item.Source.Template,
		&item.Source.Purpose, &item.Source.StyleSample, &item.Source.Keywords,
		&status, &item.Variants, &item.ImageCandidates, &selectedVariant, &selectedImages,
		&item.FinalText, &item.FinalImageURLs, &item.ScheduledAt, &item.PublishedAt, &item.ExternalPostURL,
		&item.PublishKey, &item.PublishAttempts, &item.LastPublishError, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		return nil, err
	}

	item.Status, err = domain.ParseStatus(status)
	if err != nil {
		return nil, fmt.Errorf("item %s: %w", item.ID, err)
	}
	if selectedVariant != nil {
		v := int(*selectedVariant)
		item.SelectedVariantIndex = &v
	}
	if len(selectedImages) > 0 {
		item.SelectedImageIndices = make([]int, len(selectedImages))
		for i, idx := range selectedImages {
			item.SelectedImageIndices[i] = int(idx)
		}
	}

	return &item, nil
}

func collectContentItems(rows pgx.Rows) ([]domain.ContentItem, error) {
	defer rows.Close()

	var items []domain.ContentItem
	for rows.Next() {
		item, err := scanContentItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan content item: %w", err)
		}
		items = append(items, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate content items: %w", err)
	}
	return items, nil
}

func nonNilStrings(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}
