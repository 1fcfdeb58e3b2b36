package sqlstore

import (
	"context"
	"testing"

	"catalog/internal/domain/entity"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/infra/persistence/model"
	mockGateway "catalog/internal/mocks/gateway"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const insertCategorySQL = "INSERT INTO categories (name, parent_category_id, bcl_id) VALUES (?, ?, ?)"

var (
	spirits = &entity.Category{ID: 1, Description: "Spirits"}
	whisky  = &entity.Category{ID: 2, Description: "Whisky"}
	scotch  = &entity.Category{ID: 3, Description: "Scotch"}
	wine    = &entity.Category{ID: 4, Description: "Wine"}
)

// recordInserts captures the parameters of every category insert, in order.
func recordInserts(gw *mockGateway.MockGateway, times int) *[][]any {
	inserted := &[][]any{}
	gw.EXPECT().
		Insert(mock.Anything, insertCategorySQL, mock.Anything, false).
		Run(func(_ context.Context, _ string, params []any, _ bool) {
			*inserted = append(*inserted, params)
		}).
		Return(int64(0), nil).
		Times(times)

	return inserted
}

func TestCategoryStore_LoadAll(t *testing.T) {
	gw := mockGateway.NewMockGateway(t)
	gw.EXPECT().
		Query(mock.Anything, mock.Anything, selectCategories, mock.Anything).
		Run(func(_ context.Context, dest any, _ string, _ []any) {
			*dest.(*[]*model.CategoryModel) = []*model.CategoryModel{
				{ID: 10, Name: "Spirits", BclID: 1},
				{ID: 11, Name: "Whisky", BclID: 2},
			}
		}).
		Return(nil)

	store := NewCategoryRepository(gw, discardLogger())
	require.NoError(t, store.LoadAll(context.Background()))

	category, ok := store.Get(2)
	require.True(t, ok)
	assert.Equal(t, &entity.Category{ID: 2, Description: "Whisky"}, category)

	_, ok = store.Get(10)
	assert.False(t, ok)
}

func TestCategoryStore_GetOrAddInsertsAncestorsFirst(t *testing.T) {
	gw := mockGateway.NewMockGateway(t)
	store := NewCategoryRepository(gw, discardLogger())
	inserted := recordInserts(gw, 3)

	id, err := store.GetOrAdd(context.Background(), scotch, whisky, spirits)
	require.NoError(t, err)
	assert.Equal(t, int64(3), id)

	assert.Equal(t, [][]any{
		{"Spirits", nil, int64(1)},
		{"Whisky", int64(1), int64(2)},
		{"Scotch", int64(2), int64(3)},
	}, *inserted)

	// fully cached: zero writes
	id, err = store.GetOrAdd(context.Background(), scotch, whisky, spirits)
	require.NoError(t, err)
	assert.Equal(t, int64(3), id)
}

func TestCategoryStore_GetOrAddWithoutParent(t *testing.T) {
	gw := mockGateway.NewMockGateway(t)
	store := NewCategoryRepository(gw, discardLogger())
	inserted := recordInserts(gw, 2)

	_, err := store.GetOrAdd(context.Background(), whisky, spirits, nil)
	require.NoError(t, err)

	assert.Equal(t, [][]any{
		{"Spirits", nil, int64(1)},
		{"Whisky", int64(1), int64(2)},
	}, *inserted)
}

func TestCategoryStore_GetOrAddGrandparentOnly(t *testing.T) {
	gw := mockGateway.NewMockGateway(t)
	store := NewCategoryRepository(gw, discardLogger())
	inserted := recordInserts(gw, 2)

	_, err := store.GetOrAdd(context.Background(), scotch, nil, spirits)
	require.NoError(t, err)

	assert.Equal(t, [][]any{
		{"Spirits", nil, int64(1)},
		{"Scotch", int64(1), int64(3)},
	}, *inserted)
}

func TestCategoryStore_KnownCategoryIsNeverReparented(t *testing.T) {
	gw := mockGateway.NewMockGateway(t)
	store := NewCategoryRepository(gw, discardLogger())
	inserted := recordInserts(gw, 3)

	_, err := store.GetOrAdd(context.Background(), whisky, spirits, nil)
	require.NoError(t, err)

	// only the new parent is written
	_, err = store.GetOrAdd(context.Background(), whisky, wine, nil)
	require.NoError(t, err)

	require.Len(t, *inserted, 3)
	assert.Equal(t, []any{"Wine", nil, int64(4)}, (*inserted)[2])
}

func TestCategoryStore_GetOrAddNil(t *testing.T) {
	store := NewCategoryRepository(mockGateway.NewMockGateway(t), discardLogger())

	id, err := store.GetOrAdd(context.Background(), nil, spirits, nil)

	require.NoError(t, err)
	assert.Zero(t, id)
}

func TestCategoryStore_GetOrAddStopsOnAncestorFailure(t *testing.T) {
	gw := mockGateway.NewMockGateway(t)
	store := NewCategoryRepository(gw, discardLogger())

	gw.EXPECT().
		Insert(mock.Anything, insertCategorySQL, []any{"Spirits", nil, int64(1)}, false).
		Return(int64(0), domainerrors.NewDatabaseError(domainerrors.ErrInsert, errors.New("down"), "categories")).
		Once()

	_, err := store.GetOrAdd(context.Background(), scotch, whisky, spirits)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInsert))

	for _, id := range []int64{1, 2, 3} {
		_, ok := store.Get(id)
		assert.False(t, ok)
	}
}
