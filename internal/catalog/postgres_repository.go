package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/lib/pq"

	"github.com/msmahatha/agroCart-harvest-hub/internal/domain"
)

type Credentials struct {
	Host              string
	Port              int
	User              string
	Password          string
	DBName            string
	MigrationsDirPath string
}

func (c *Credentials) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		c.Host, c.Port, c.User, c.Password, c.DBName)
}

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(cred *Credentials) (*PostgresRepository, error) {
	db, err := sql.Open("postgres", cred.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if e2 := db.Ping(); e2 != nil {
		return nil, fmt.Errorf("failed to ping database: %w", e2)
	}

	db.SetMaxOpenConns(100)
	db.SetMaxIdleConns(10)
	return &PostgresRepository{db: db}, nil
}

// NewPostgresRepositoryFromDB wraps an existing connection; used by tests.
func NewPostgresRepositoryFromDB(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) RunMigrations(migrationsPath string) error {
	driver, err := postgres.WithInstance(r.db, &postgres.Config{
		MigrationsTable: "storefront_schema_migrations",
	})
	if err != nil {
		return fmt.Errorf("could not create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		fmt.Sprintf("file://%s", migrationsPath),
		"postgres",
		driver,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	if e2 := m.Up(); e2 != nil && !errors.Is(e2, migrate.ErrNoChange) {
		return fmt.Errorf("could not run migrations: %w", e2)
	}

	return nil
}

const productColumns = `id, name, description, price, sale_price, image_url, gallery,
	category_id, stock, rating, review_count, is_organic, brand, tags, featured,
	slug, specifications, created_at`

func scanProduct(row interface{ Scan(...any) error }) (*domain.Product, error) {
	var (
		p         domain.Product
		salePrice sql.NullFloat64
		brand     sql.NullString
		gallery   pq.StringArray
		tags      pq.StringArray
		specsJSON []byte
	)

	err := row.Scan(
		&p.ID, &p.Name, &p.Description, &p.Price, &salePrice, &p.ImageURL,
		&gallery, &p.CategoryID, &p.Stock, &p.Rating, &p.ReviewCount,
		&p.IsOrganic, &brand, &tags, &p.Featured, &p.Slug, &specsJSON,
		&p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if salePrice.Valid {
		v := salePrice.Float64
		p.SalePrice = &v
	}
	if brand.Valid {
		p.Brand = brand.String
	}
	p.Gallery = gallery
	p.Tags = tags
	if len(specsJSON) > 0 {
		if err := json.Unmarshal(specsJSON, &p.Specifications); err != nil {
			return nil, fmt.Errorf("unmarshal specifications: %w", err)
		}
	}
	return &p, nil
}

func (r *PostgresRepository) GetAllProducts(ctx context.Context) ([]domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, *p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return products, nil
}

func (r *PostgresRepository) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	p, err := scanProduct(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query product by id: %w", err)
	}
	return p, nil
}

func (r *PostgresRepository) GetProductBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE slug = $1`
	p, err := scanProduct(r.db.QueryRowContext(ctx, query, slug))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query product by slug: %w", err)
	}
	return p, nil
}

func (r *PostgresRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	query := `SELECT id, name, description, image_url, slug, featured FROM categories ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.ImageURL, &c.Slug, &c.Featured); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return categories, nil
}

func (r *PostgresRepository) GetCategoryBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	query := `SELECT id, name, description, image_url, slug, featured FROM categories WHERE slug = $1`

	var c domain.Category
	err := r.db.QueryRowContext(ctx, query, slug).Scan(
		&c.ID, &c.Name, &c.Description, &c.ImageURL, &c.Slug, &c.Featured)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCategoryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query category by slug: %w", err)
	}
	return &c, nil
}

func (r *PostgresRepository) CreateProduct(ctx context.Context, p *domain.Product) error {
	specsJSON, err := json.Marshal(p.Specifications)
	if err != nil {
		return fmt.Errorf("marshal specifications: %w", err)
	}

	query := `INSERT INTO products (` + productColumns + `)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, NOW())`

	_, insertErr := r.db.ExecContext(ctx, query,
		p.ID, p.Name, p.Description, p.Price, p.SalePrice, p.ImageURL,
		pq.StringArray(p.Gallery), p.CategoryID, p.Stock, p.Rating,
		p.ReviewCount, p.IsOrganic, nullString(p.Brand),
		pq.StringArray(p.Tags), p.Featured, p.Slug, specsJSON)
	if insertErr != nil {
		var pqErr *pq.Error
		if errors.As(insertErr, &pqErr) && pqErr.Code == "23505" {
			if pqErr.Constraint == "products_pkey" {
				return ErrProductExists
			}
			return ErrSlugTaken
		}
		return fmt.Errorf("insert product: %w", insertErr)
	}
	return nil
}

func (r *PostgresRepository) UpdateProduct(ctx context.Context, p *domain.Product) error {
	specsJSON, err := json.Marshal(p.Specifications)
	if err != nil {
		return fmt.Errorf("marshal specifications: %w", err)
	}

	query := `UPDATE products SET
	          name = $2, description = $3, price = $4, sale_price = $5,
	          image_url = $6, gallery = $7, category_id = $8, stock = $9,
	          rating = $10, review_count = $11, is_organic = $12, brand = $13,
	          tags = $14, featured = $15, slug = $16, specifications = $17
	          WHERE id = $1`

	result, updateErr := r.db.ExecContext(ctx, query,
		p.ID, p.Name, p.Description, p.Price, p.SalePrice, p.ImageURL,
		pq.StringArray(p.Gallery), p.CategoryID, p.Stock, p.Rating,
		p.ReviewCount, p.IsOrganic, nullString(p.Brand),
		pq.StringArray(p.Tags), p.Featured, p.Slug, specsJSON)
	if updateErr != nil {
		var pqErr *pq.Error
		if errors.As(updateErr, &pqErr) && pqErr.Code == "23505" {
			return ErrSlugTaken
		}
		return fmt.Errorf("update product: %w", updateErr)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return ErrProductNotFound
	}
	return nil
}

func (r *PostgresRepository) DeleteProduct(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return ErrProductNotFound
	}
	return nil
}

func (r *PostgresRepository) Close() error {
	return r.db.Close()
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
