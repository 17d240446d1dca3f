package memory

import (
	"context"
	"testing"

	"github.com/DRSN-tech/pokeshop/internal/domain"
	"github.com/DRSN-tech/pokeshop/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKVRepo(t *testing.T) {
	ctx := context.Background()
	r := NewKVRepo()

	_, err := r.Get(ctx, "missing")
	require.ErrorIs(t, err, e.ErrKeyNotFound)

	value := []byte(`[1,2]`)
	require.NoError(t, r.Set(ctx, "k", value))
	value[0] = 'x'

	got, err := r.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, `[1,2]`, string(got), "stored value must be a copy")

	require.NoError(t, r.Delete(ctx, "k"))
	_, err = r.Get(ctx, "k")
	assert.ErrorIs(t, err, e.ErrKeyNotFound)
}

func TestCatalogRepo(t *testing.T) {
	ctx := context.Background()
	r := NewStaticCatalogRepo()

	list, err := r.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.Catalog(), list)

	p, err := r.GetByID(ctx, 4)
	require.NoError(t, err)
	assert.Equal(t, "pokeball-mug", p.Slug)

	_, err = r.GetByID(ctx, 99)
	assert.ErrorIs(t, err, e.ErrProductNotFound)
}
