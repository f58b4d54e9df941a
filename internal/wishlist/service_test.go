package wishlist

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/msmahatha/agroCart-harvest-hub/internal/domain"
)

type mockRepository struct {
	m        sync.RWMutex
	wishlist *domain.Wishlist
	err      error
}

func (m *mockRepository) GetWishlist(context.Context, string) (*domain.Wishlist, error) {
	m.m.RLock()
	defer m.m.RUnlock()
	if m.err != nil {
		return nil, m.err
	}
	if m.wishlist == nil {
		return nil, ErrWishlistNotFound
	}
	return m.wishlist, nil
}

func (m *mockRepository) AddProduct(_ context.Context, userID string, productID string) error {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return m.err
	}
	if m.wishlist == nil {
		m.wishlist = &domain.Wishlist{UserID: userID}
	}
	for _, id := range m.wishlist.ProductIDs {
		if id == productID {
			return nil
		}
	}
	m.wishlist.ProductIDs = append(m.wishlist.ProductIDs, productID)
	return nil
}

func (m *mockRepository) RemoveProduct(_ context.Context, _ string, productID string) error {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return m.err
	}
	if m.wishlist == nil {
		return ErrWishlistNotFound
	}
	for i, id := range m.wishlist.ProductIDs {
		if id == productID {
			m.wishlist.ProductIDs = append(m.wishlist.ProductIDs[:i], m.wishlist.ProductIDs[i+1:]...)
			break
		}
	}
	return nil
}

func (m *mockRepository) DeleteWishlist(context.Context, string) error {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return m.err
	}
	if m.wishlist == nil {
		return ErrWishlistNotFound
	}
	m.wishlist = nil
	return nil
}

func newTestService() (*Service, *mockRepository) {
	repo := &mockRepository{}
	return NewService(repo, zap.NewNop()), repo
}

const testUser = "user123"

func TestGetWishlist_EmptyWhenAbsent(t *testing.T) {
	svc, _ := newTestService()

	w, err := svc.GetWishlist(context.Background(), testUser)
	require.NoError(t, err)
	assert.Zero(t, w.ItemCount())
}

func TestAdd_IsIdempotent(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	require.NoError(t, svc.Add(ctx, testUser, "prod_001"))
	require.NoError(t, svc.Add(ctx, testUser, "prod_001"))

	assert.Equal(t, []string{"prod_001"}, repo.wishlist.ProductIDs)
}

func TestToggle_AddsThenRemoves(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	added, err := svc.Toggle(ctx, testUser, "prod_001")
	require.NoError(t, err)
	assert.True(t, added)
	assert.Equal(t, []string{"prod_001"}, repo.wishlist.ProductIDs)

	in, err := svc.Contains(ctx, testUser, "prod_001")
	require.NoError(t, err)
	assert.True(t, in)

	added, err = svc.Toggle(ctx, testUser, "prod_001")
	require.NoError(t, err)
	assert.False(t, added)
	assert.Empty(t, repo.wishlist.ProductIDs)

	in, err = svc.Contains(ctx, testUser, "prod_001")
	require.NoError(t, err)
	assert.False(t, in)
}

func TestToggle_TwiceReturnsToEmpty(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	_, err := svc.Toggle(ctx, testUser, "prod_005")
	require.NoError(t, err)
	_, err = svc.Toggle(ctx, testUser, "prod_005")
	require.NoError(t, err)

	assert.Empty(t, repo.wishlist.ProductIDs)
}

func TestRemove_AbsentIsNoOp(t *testing.T) {
	svc, _ := newTestService()

	assert.NoError(t, svc.Remove(context.Background(), testUser, "prod_001"))
}

func TestClear(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	require.NoError(t, svc.Add(ctx, testUser, "prod_001"))
	require.NoError(t, svc.Add(ctx, testUser, "prod_002"))

	require.NoError(t, svc.Clear(ctx, testUser))
	assert.Nil(t, repo.wishlist)

	// Clearing again is a no-op.
	assert.NoError(t, svc.Clear(ctx, testUser))
}

func TestMembershipNeverDuplicates(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, svc.Add(ctx, testUser, "prod_003"))
		_, err := svc.Toggle(ctx, testUser, "prod_004")
		require.NoError(t, err)
	}

	seen := make(map[string]bool)
	for _, id := range repo.wishlist.ProductIDs {
		assert.False(t, seen[id], "duplicate entry for %s", id)
		seen[id] = true
	}
}
