package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/shopinsight"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ shopinsight.BrandService = (*BrandService)(nil)

// BrandService implements shopinsight.BrandService using SQLite.
type BrandService struct {
	db *DB
}

// NewBrandService creates a new BrandService.
func NewBrandService(db *DB) *BrandService {
	return &BrandService{db: db}
}

// ContentHash returns the xxHash of an insight's text facets as a hex string.
// Absent facets hash differently from empty ones.
func ContentHash(si *shopinsight.StoreInsight) string {
	d := xxhash.New()
	for _, text := range []*string{si.About, si.PrivacyPolicy, si.ReturnPolicy} {
		if text == nil {
			_, _ = d.WriteString("\x00")
			continue
		}
		_, _ = d.WriteString("\x01")
		_, _ = d.WriteString(*text)
	}
	return fmt.Sprintf("%016x", d.Sum64())
}

// SaveInsight creates or updates the brand for the insight's store URL and
// replaces its products and FAQs in a single transaction.
func (s *BrandService) SaveInsight(ctx context.Context, si *shopinsight.StoreInsight) (*shopinsight.Brand, error) {
	brand := &shopinsight.Brand{
		URL:           si.StoreURL,
		About:         si.About,
		PrivacyPolicy: si.PrivacyPolicy,
		ReturnPolicy:  si.ReturnPolicy,
		ContentHash:   ContentHash(si),
		ProductCount:  len(si.Products),
		FAQCount:      len(si.FAQs),
	}
	if err := brand.Validate(); err != nil {
		return nil, err
	}

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback() }()

	if err := upsertBrand(ctx, tx, brand); err != nil {
		return nil, err
	}
	if err := replaceProducts(ctx, tx, brand.ID, si.Products); err != nil {
		return nil, err
	}
	if err := replaceFAQs(ctx, tx, brand.ID, si.FAQs); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return brand, nil
}

// upsertBrand inserts the brand or updates the row with the same URL,
// filling in the brand's ID and timestamps.
func upsertBrand(ctx context.Context, tx *sql.Tx, brand *shopinsight.Brand) error {
	now := time.Now().UTC().Truncate(time.Second)

	var id, createdAt string
	err := tx.QueryRowContext(ctx, "SELECT id, created_at FROM brands WHERE url = ?", brand.URL).Scan(&id, &createdAt)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		brand.ID = uuid.New().String()
		brand.CreatedAt = now
		brand.UpdatedAt = now
		_, err = tx.ExecContext(ctx, `
			INSERT INTO brands (id, url, about, privacy_policy, return_policy, content_hash, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		`, brand.ID, brand.URL, brand.About, brand.PrivacyPolicy, brand.ReturnPolicy, brand.ContentHash,
			now.Format(time.RFC3339), now.Format(time.RFC3339))
		return err
	case err != nil:
		return err
	}

	brand.ID = id
	if brand.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
		return err
	}
	brand.UpdatedAt = now
	_, err = tx.ExecContext(ctx, `
		UPDATE brands
		SET about = ?, privacy_policy = ?, return_policy = ?, content_hash = ?, updated_at = ?
		WHERE id = ?
	`, brand.About, brand.PrivacyPolicy, brand.ReturnPolicy, brand.ContentHash, now.Format(time.RFC3339), id)
	return err
}

func replaceProducts(ctx context.Context, tx *sql.Tx, brandID string, products []shopinsight.Product) error {
	if _, err := tx.ExecContext(ctx, "DELETE FROM products WHERE brand_id = ?", brandID); err != nil {
		return err
	}
	for i, p := range products {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO products (id, brand_id, position, title, url, price, image)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`, uuid.New().String(), brandID, i, p.Title, p.URL, p.Price, p.Image)
		if err != nil {
			return fmt.Errorf("failed to insert product %d: %w", i, err)
		}
	}
	return nil
}

func replaceFAQs(ctx context.Context, tx *sql.Tx, brandID string, faqs []shopinsight.FAQ) error {
	if _, err := tx.ExecContext(ctx, "DELETE FROM faqs WHERE brand_id = ?", brandID); err != nil {
		return err
	}
	for i, f := range faqs {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO faqs (id, brand_id, position, question, answer)
			VALUES (?, ?, ?, ?, ?)
		`, uuid.New().String(), brandID, i, f.Question, f.Answer)
		if err != nil {
			return fmt.Errorf("failed to insert faq %d: %w", i, err)
		}
	}
	return nil
}

// FindBrandByURL retrieves a brand by its store URL.
func (s *BrandService) FindBrandByURL(ctx context.Context, url string) (*shopinsight.Brand, error) {
	brands, err := s.FindBrands(ctx, shopinsight.BrandFilter{URL: &url, Limit: 1})
	if err != nil {
		return nil, err
	}
	if len(brands) == 0 {
		return nil, shopinsight.Errorf(shopinsight.ENOTFOUND, "brand not found: %s", url)
	}
	return brands[0], nil
}

// FindBrands retrieves brands matching the filter, most recently updated first.
func (s *BrandService) FindBrands(ctx context.Context, filter shopinsight.BrandFilter) ([]*shopinsight.Brand, error) {
	var query strings.Builder
	var args []any

	query.WriteString(`
		SELECT b.id, b.url, b.about, b.privacy_policy, b.return_policy, b.content_hash,
			(SELECT COUNT(*) FROM products p WHERE p.brand_id = b.id),
			(SELECT COUNT(*) FROM faqs f WHERE f.brand_id = b.id),
			b.created_at, b.updated_at
		FROM brands b WHERE 1=1`)

	if filter.ID != nil {
		query.WriteString(" AND b.id = ?")
		args = append(args, *filter.ID)
	}
	if filter.URL != nil {
		query.WriteString(" AND b.url = ?")
		args = append(args, *filter.URL)
	}

	query.WriteString(" ORDER BY b.updated_at DESC, b.url")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	brands := []*shopinsight.Brand{}
	for rows.Next() {
		var b shopinsight.Brand
		var createdAt, updatedAt string
		if err := rows.Scan(&b.ID, &b.URL, &b.About, &b.PrivacyPolicy, &b.ReturnPolicy, &b.ContentHash,
			&b.ProductCount, &b.FAQCount, &createdAt, &updatedAt); err != nil {
			return nil, err
		}
		if b.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
			return nil, err
		}
		if b.UpdatedAt, err = parseRFC3339(updatedAt, "updated_at"); err != nil {
			return nil, err
		}
		brands = append(brands, &b)
	}

	return brands, rows.Err()
}

// FindProducts retrieves a brand's products in their saved order.
func (s *BrandService) FindProducts(ctx context.Context, brandID string) ([]shopinsight.Product, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT title, url, price, image FROM products
		WHERE brand_id = ?
		ORDER BY position
	`, brandID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := []shopinsight.Product{}
	for rows.Next() {
		var p shopinsight.Product
		if err := rows.Scan(&p.Title, &p.URL, &p.Price, &p.Image); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

// FindFAQs retrieves a brand's FAQs in their saved order.
func (s *BrandService) FindFAQs(ctx context.Context, brandID string) ([]shopinsight.FAQ, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT question, answer FROM faqs
		WHERE brand_id = ?
		ORDER BY position
	`, brandID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	faqs := []shopinsight.FAQ{}
	for rows.Next() {
		var f shopinsight.FAQ
		if err := rows.Scan(&f.Question, &f.Answer); err != nil {
			return nil, err
		}
		faqs = append(faqs, f)
	}
	return faqs, rows.Err()
}

// DeleteBrand permanently removes a brand. Its products and FAQs go with it.
func (s *BrandService) DeleteBrand(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM brands WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return shopinsight.Errorf(shopinsight.ENOTFOUND, "brand not found")
	}
	return nil
}
