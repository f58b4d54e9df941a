package order

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/msmahatha/agroCart-harvest-hub/internal/catalog"
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

	creds := &catalog.Credentials{
		Host:     host,
		Port:     port.Int(),
		User:     "testuser",
		Password: "testpass",
		DBName:   "testdb",
	}

	// The catalog repository owns the schema.
	catalogRepo, err := catalog.NewPostgresRepository(creds)
	require.NoError(t, err)
	require.NoError(t, catalogRepo.RunMigrations("../../migrations"))
	require.NoError(t, catalogRepo.Close())

	repo, err := NewPostgresRepository(creds.DSN())
	require.NoError(t, err)

	cleanup := func() {
		repo.Close()
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %s", err)
		}
	}

	return repo, cleanup
}

func newTestOrder(userID string) *domain.Order {
	return &domain.Order{
		ID:        uuid.New(),
		UserID:    userID,
		Status:    domain.OrderStatusProcessing,
		Subtotal:  830,
		Shipping:  100,
		Tax:       41.5,
		Total:     971.5,
		Currency:  "INR",
		ItemCount: 1,
		Items: []domain.OrderItem{
			{ProductID: "prod_001", ProductName: "Premium Tomato Seeds", Quantity: 2, UnitPrice: 415},
		},
	}
}

func TestCreateOrder_RoundTrip(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	order := newTestOrder("user-123")

	err := repo.CreateOrder(ctx, order)
	require.NoError(t, err)

	fetched, err := repo.GetOrderByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.ID, fetched.ID)
	assert.Equal(t, order.UserID, fetched.UserID)
	assert.Equal(t, order.Status, fetched.Status)
	assert.Equal(t, order.Subtotal, fetched.Subtotal)
	assert.Equal(t, order.Shipping, fetched.Shipping)
	assert.Equal(t, order.Tax, fetched.Tax)
	assert.Equal(t, order.Total, fetched.Total)
	assert.Equal(t, order.Currency, fetched.Currency)
	assert.Equal(t, order.ItemCount, fetched.ItemCount)
	require.Len(t, fetched.Items, 1)
	assert.Equal(t, order.Items[0].ProductID, fetched.Items[0].ProductID)
	assert.Equal(t, order.Items[0].UnitPrice, fetched.Items[0].UnitPrice)
}

func TestGetOrderByID_NotFound(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	_, err := repo.GetOrderByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestListOrdersByUserID_NewestFirst(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	userID := "user-list-test"

	order1 := newTestOrder(userID)
	require.NoError(t, repo.CreateOrder(ctx, order1))

	// Small sleep to ensure different created_at timestamps
	time.Sleep(10 * time.Millisecond)

	order2 := newTestOrder(userID)
	require.NoError(t, repo.CreateOrder(ctx, order2))

	require.NoError(t, repo.CreateOrder(ctx, newTestOrder("other-user")))

	orders, err := repo.ListOrdersByUserID(ctx, userID)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, order2.ID, orders[0].ID)
	assert.Equal(t, order1.ID, orders[1].ID)

	all, err := repo.ListAllOrders(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestUpdateStatus(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	order := newTestOrder("user-status")
	require.NoError(t, repo.CreateOrder(ctx, order))

	require.NoError(t, repo.UpdateStatus(ctx, order.ID, domain.OrderStatusShipped))

	fetched, err := repo.GetOrderByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusShipped, fetched.Status)

	err = repo.UpdateStatus(ctx, uuid.New(), domain.OrderStatusDelivered)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}
