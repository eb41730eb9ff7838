package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/adilzhm/weather_store_app/internal/apperrors"
	"github.com/adilzhm/weather_store_app/internal/core/ports"
	"github.com/adilzhm/weather_store_app/internal/models"
	"github.com/jackc/pgx/v5"
)

const reviewColumns = `review_id, product_id, title, rating, comment, reviewer_name, reviewer_email, verified, helpful, is_active, created_at, last_updated_at`

// refreshProductRatingQuery recomputes the parent product's rating aggregates
// over its active reviews. Runs in the same transaction as the review write.
const refreshProductRatingQuery = `
	UPDATE products SET
		average_rating = COALESCE((SELECT ROUND(AVG(rating)::numeric, 1) FROM reviews WHERE product_id = $1 AND is_active), 0),
		total_reviews = COALESCE((SELECT COUNT(*) FROM reviews WHERE product_id = $1 AND is_active), 0)
	WHERE product_id = $1;
`

// ReviewRepository persists product reviews in PostgreSQL.
type ReviewRepository struct {
	db DBPool
}

// NewReviewRepository creates a new repository for product reviews.
func NewReviewRepository(db DBPool) *ReviewRepository {
	return &ReviewRepository{db: db}
}

var _ ports.ReviewRepository = (*ReviewRepository)(nil)

func (r *ReviewRepository) SaveReview(ctx context.Context, review models.Review) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin save review tx: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO reviews (` + reviewColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err = tx.Exec(ctx, query,
		review.ReviewID,
		review.ProductID,
		review.Title,
		review.Rating,
		review.Comment,
		review.ReviewerName,
		review.ReviewerEmail,
		review.Verified,
		review.Helpful,
		review.IsActive,
		review.CreatedAt,
		review.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save review %s: %w", review.ReviewID, err)
	}

	if _, err := tx.Exec(ctx, refreshProductRatingQuery, review.ProductID); err != nil {
		return fmt.Errorf("failed to refresh product rating for %s: %w", review.ProductID, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit save review tx: %w", err)
	}
	return nil
}

func (r *ReviewRepository) FindReviewByID(ctx context.Context, reviewID string) (*models.Review, error) {
	query := `SELECT ` + reviewColumns + ` FROM reviews WHERE review_id = $1;`

	review, err := scanReview(r.db.QueryRow(ctx, query, reviewID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find review by ID %s: %w", reviewID, err)
	}
	return review, nil
}

func (r *ReviewRepository) ListReviews(ctx context.Context, filter models.ReviewFilter) ([]models.Review, error) {
	conds := []string{"is_active"}
	var args []any

	if filter.ProductID != nil {
		args = append(args, *filter.ProductID)
		conds = append(conds, fmt.Sprintf("product_id = $%d", len(args)))
	}
	if filter.Rating != nil {
		args = append(args, *filter.Rating)
		conds = append(conds, fmt.Sprintf("rating = $%d", len(args)))
	} else if filter.MinRating != nil {
		args = append(args, *filter.MinRating)
		conds = append(conds, fmt.Sprintf("rating >= $%d", len(args)))
	}

	query := `SELECT ` + reviewColumns + ` FROM reviews WHERE ` + strings.Join(conds, " AND ") + ` ORDER BY created_at DESC;`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query reviews: %w", err)
	}
	defer rows.Close()

	reviews := []models.Review{}
	for rows.Next() {
		review, err := scanReview(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan review row: %w", err)
		}
		reviews = append(reviews, *review)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating review rows: %w", rows.Err())
	}

	return reviews, nil
}

func (r *ReviewRepository) UpdateReview(ctx context.Context, review models.Review) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin update review tx: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		UPDATE reviews
		SET title = $1, rating = $2, comment = $3, helpful = $4, is_active = $5, last_updated_at = $6
		WHERE review_id = $7;
	`
	cmdTag, err := tx.Exec(ctx, query,
		review.Title,
		review.Rating,
		review.Comment,
		review.Helpful,
		review.IsActive,
		review.LastUpdatedAt,
		review.ReviewID,
	)
	if err != nil {
		return fmt.Errorf("failed to update review %s: %w", review.ReviewID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	if _, err := tx.Exec(ctx, refreshProductRatingQuery, review.ProductID); err != nil {
		return fmt.Errorf("failed to refresh product rating for %s: %w", review.ProductID, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit update review tx: %w", err)
	}
	return nil
}

func (r *ReviewRepository) DeleteReview(ctx context.Context, reviewID string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin delete review tx: %w", err)
	}
	defer tx.Rollback(ctx)

	var productID string
	err = tx.QueryRow(ctx, `DELETE FROM reviews WHERE review_id = $1 RETURNING product_id;`, reviewID).Scan(&productID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("failed to delete review %s: %w", reviewID, err)
	}

	if _, err := tx.Exec(ctx, refreshProductRatingQuery, productID); err != nil {
		return fmt.Errorf("failed to refresh product rating for %s: %w", productID, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit delete review tx: %w", err)
	}
	return nil
}

// scanReview reads one review row from either a Row or Rows cursor.
func scanReview(row pgx.Row) (*models.Review, error) {
	var review models.Review
	err := row.Scan(
		&review.ReviewID,
		&review.ProductID,
		&review.Title,
		&review.Rating,
		&review.Comment,
		&review.ReviewerName,
		&review.ReviewerEmail,
		&review.Verified,
		&review.Helpful,
		&review.IsActive,
		&review.CreatedAt,
		&review.LastUpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &review, nil
}
