package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/msmahatha/agroCart-harvest-hub/internal/domain"
)

func setupTestDB(t *testing.T) (*PostgresRepository, func()) {
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	host, err := pgContainer.Host(ctx)
	require.NoError(t, err)

	port, err := pgContainer.MappedPort(ctx, "5432")
	require.NoError(t, err)

	creds := &Credentials{
		Host:     host,
		Port:     port.Int(),
		User:     "testuser",
		Password: "testpass",
		DBName:   "testdb",
	}

	repo, err := NewPostgresRepository(creds)
	require.NoError(t, err)
	require.NoError(t, repo.RunMigrations("../../migrations"))

	cleanup := func() {
		repo.Close()
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %s", err)
		}
	}

	return repo, cleanup
}

func TestMigrations_SeedCatalog(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	products, err := repo.GetAllProducts(ctx)
	require.NoError(t, err)
	assert.Len(t, products, 8)

	categories, err := repo.ListCategories(ctx)
	require.NoError(t, err)
	assert.Len(t, categories, 6)
}

func TestGetProductBySlug_Postgres(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	p, err := repo.GetProductBySlug(ctx, "premium-wheat-seeds")
	require.NoError(t, err)
	assert.Equal(t, "prod_001", p.ID)
	require.NotNil(t, p.SalePrice)
	assert.NotEmpty(t, p.Gallery)
	assert.NotEmpty(t, p.Tags)
	assert.NotEmpty(t, p.Specifications)

	_, err = repo.GetProductBySlug(ctx, "no-such-slug")
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestProductCRUD_Postgres(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	p := &domain.Product{
		ID:          "prod_100",
		Name:        "Heirloom Carrot Seeds",
		Description: "Open-pollinated carrot variety",
		Price:       4.99,
		ImageURL:    "https://example.com/carrot.jpg",
		Gallery:     []string{"https://example.com/carrot.jpg"},
		CategoryID:  "cat_seeds",
		Stock:       40,
		Rating:      4.2,
		ReviewCount: 12,
		IsOrganic:   true,
		Tags:        []string{"seeds", "carrot"},
		Slug:        "heirloom-carrot-seeds",
		Specifications: map[string]string{
			"Seed Count": "300 seeds",
		},
	}
	require.NoError(t, repo.CreateProduct(ctx, p))

	fetched, err := repo.GetProduct(ctx, "prod_100")
	require.NoError(t, err)
	assert.Equal(t, p.Name, fetched.Name)
	assert.Nil(t, fetched.SalePrice)
	assert.Equal(t, p.Tags, fetched.Tags)
	assert.Equal(t, p.Specifications, fetched.Specifications)

	dup := *p
	dup.ID = "prod_101"
	err = repo.CreateProduct(ctx, &dup)
	assert.ErrorIs(t, err, ErrSlugTaken)

	sameID := *p
	sameID.Slug = "heirloom-carrot-seeds-v2"
	err = repo.CreateProduct(ctx, &sameID)
	assert.ErrorIs(t, err, ErrProductExists)

	fetched.Stock = 35
	fetched.SalePrice = salePrice(3.99)
	require.NoError(t, repo.UpdateProduct(ctx, fetched))

	updated, err := repo.GetProduct(ctx, "prod_100")
	require.NoError(t, err)
	assert.Equal(t, 35, updated.Stock)
	require.NotNil(t, updated.SalePrice)
	assert.InDelta(t, 3.99, *updated.SalePrice, 1e-9)

	require.NoError(t, repo.DeleteProduct(ctx, "prod_100"))
	_, err = repo.GetProduct(ctx, "prod_100")
	assert.ErrorIs(t, err, ErrProductNotFound)

	err = repo.DeleteProduct(ctx, "prod_100")
	assert.ErrorIs(t, err, ErrProductNotFound)
}
