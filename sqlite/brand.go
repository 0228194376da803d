package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

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

// CreateBrand inserts the brand, its products, FAQs, policies and important
// links in one transaction. Nothing is visible to readers unless every
// insert succeeds.
func (s *BrandService) CreateBrand(ctx context.Context, brand *shopinsight.BrandProfile) error {
	if err := brand.Validate(); err != nil {
		return err
	}

	contact, err := json.Marshal(brand.Contact)
	if err != nil {
		return fmt.Errorf("failed to encode contact: %w", err)
	}
	social, err := json.Marshal(brand.SocialLinks)
	if err != nil {
		return fmt.Errorf("failed to encode social links: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	id := uuid.New().String()
	createdAt := time.Now().UTC()

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO brands (id, store_name, root_url, about, contact, social, fingerprint, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, id, brand.StoreName, brand.RootURL, brand.About, string(contact), string(social),
		brand.Fingerprint, createdAt.Format(timestampFormat)); err != nil {
		return fmt.Errorf("failed to insert brand: %w", err)
	}

	for i, p := range brand.Products {
		var price sql.NullFloat64
		if p.Price != nil {
			price = sql.NullFloat64{Float64: *p.Price, Valid: true}
		}
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO products (brand_id, position, title, price, url, source, is_hero)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`, id, i, p.Title, price, p.URL, string(p.Source), p.Hero); err != nil {
			return fmt.Errorf("failed to insert product %q: %w", p.URL, err)
		}
	}

	for i, f := range brand.FAQs {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO faqs (brand_id, position, question, answer)
			VALUES (?, ?, ?, ?)
		`, id, i, f.Question, f.Answer); err != nil {
			return fmt.Errorf("failed to insert FAQ: %w", err)
		}
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO policies (brand_id, privacy_policy, refund_policy)
		VALUES (?, ?, ?)
	`, id, brand.PrivacyPolicy, brand.RefundPolicy); err != nil {
		return fmt.Errorf("failed to insert policies: %w", err)
	}

	for name, u := range brand.ImportantLinks {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO important_links (brand_id, name, url)
			VALUES (?, ?, ?)
		`, id, name, u); err != nil {
			return fmt.Errorf("failed to insert important link %q: %w", name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	brand.ID = id
	brand.CreatedAt = createdAt
	return nil
}

// FindBrandByID retrieves a brand with all of its children.
func (s *BrandService) FindBrandByID(ctx context.Context, id string) (*shopinsight.BrandProfile, error) {
	brands, err := s.FindBrands(ctx, shopinsight.BrandFilter{ID: &id, Limit: 1})
	if err != nil {
		return nil, err
	}
	if len(brands) == 0 {
		return nil, shopinsight.Errorf(shopinsight.ENOTFOUND, "brand not found")
	}
	return brands[0], nil
}

// FindBrands retrieves brands matching the filter, newest first.
func (s *BrandService) FindBrands(ctx context.Context, filter shopinsight.BrandFilter) ([]*shopinsight.BrandProfile, error) {
	var query strings.Builder
	var args []any

	query.WriteString(`
		SELECT b.id, b.store_name, b.root_url, b.about, b.contact, b.social, b.fingerprint, b.created_at,
			COALESCE(p.privacy_policy, ''), COALESCE(p.refund_policy, '')
		FROM brands b
		LEFT JOIN policies p ON p.brand_id = b.id
		WHERE 1=1`)

	if filter.ID != nil {
		query.WriteString(" AND b.id = ?")
		args = append(args, *filter.ID)
	}
	if filter.StoreName != nil {
		query.WriteString(" AND b.store_name = ?")
		args = append(args, *filter.StoreName)
	}

	query.WriteString(" ORDER BY b.created_at DESC, b.rowid DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var brands []*shopinsight.BrandProfile
	for rows.Next() {
		brand, err := scanBrand(rows)
		if err != nil {
			return nil, err
		}
		brands = append(brands, brand)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	rows.Close()

	for _, brand := range brands {
		if err := s.loadChildren(ctx, brand); err != nil {
			return nil, err
		}
	}

	return brands, nil
}

// DeleteBrand permanently removes a brand. Child rows are removed by
// ON DELETE CASCADE.
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

func scanBrand(rows *sql.Rows) (*shopinsight.BrandProfile, error) {
	var brand shopinsight.BrandProfile
	var contact, social, createdAt string

	if err := rows.Scan(&brand.ID, &brand.StoreName, &brand.RootURL, &brand.About, &contact, &social,
		&brand.Fingerprint, &createdAt, &brand.PrivacyPolicy, &brand.RefundPolicy); err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(contact), &brand.Contact); err != nil {
		return nil, fmt.Errorf("failed to decode contact: %w", err)
	}
	if err := json.Unmarshal([]byte(social), &brand.SocialLinks); err != nil {
		return nil, fmt.Errorf("failed to decode social links: %w", err)
	}

	var err error
	brand.CreatedAt, err = parseTimestamp(createdAt, "created_at")
	if err != nil {
		return nil, err
	}
	return &brand, nil
}

// loadChildren fills products, FAQs and important links in stored order.
func (s *BrandService) loadChildren(ctx context.Context, brand *shopinsight.BrandProfile) error {
	rows, err := s.db.QueryContext(ctx, `
		SELECT title, price, url, source, is_hero FROM products WHERE brand_id = ? ORDER BY position
	`, brand.ID)
	if err != nil {
		return err
	}
	brand.Products = []*shopinsight.Product{}
	for rows.Next() {
		var p shopinsight.Product
		var price sql.NullFloat64
		var source string
		if err := rows.Scan(&p.Title, &price, &p.URL, &source, &p.Hero); err != nil {
			rows.Close()
			return err
		}
		if price.Valid {
			v := price.Float64
			p.Price = &v
		}
		p.Source = shopinsight.ProductSource(source)
		brand.Products = append(brand.Products, &p)
	}
	if err := closeRows(rows); err != nil {
		return err
	}

	rows, err = s.db.QueryContext(ctx, `
		SELECT question, answer FROM faqs WHERE brand_id = ? ORDER BY position
	`, brand.ID)
	if err != nil {
		return err
	}
	brand.FAQs = []*shopinsight.FAQ{}
	for rows.Next() {
		var f shopinsight.FAQ
		if err := rows.Scan(&f.Question, &f.Answer); err != nil {
			rows.Close()
			return err
		}
		brand.FAQs = append(brand.FAQs, &f)
	}
	if err := closeRows(rows); err != nil {
		return err
	}

	rows, err = s.db.QueryContext(ctx, `
		SELECT name, url FROM important_links WHERE brand_id = ?
	`, brand.ID)
	if err != nil {
		return err
	}
	brand.ImportantLinks = make(map[string]string)
	for rows.Next() {
		var name, u string
		if err := rows.Scan(&name, &u); err != nil {
			rows.Close()
			return err
		}
		brand.ImportantLinks[name] = u
	}
	return closeRows(rows)
}

// closeRows reports iteration errors before closing.
func closeRows(rows *sql.Rows) error {
	if err := rows.Err(); err != nil {
		rows.Close()
		return err
	}
	return rows.Close()
}
