package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zahira986-id/Cat-Galery/internal/model"
	"github.com/zahira986-id/Cat-Galery/internal/repository"
)

func newTestCatalog(t *testing.T) *Catalog {
	t.Helper()
	store, err := repository.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return NewCatalog(store)
}

func seed(t *testing.T, c *Catalog, name, tag string) *model.Cat {
	t.Helper()
	cat, err := c.Create(context.Background(), model.CatInput{
		Name: name, Tag: tag, Descreption: "desc", Img: "http://example.com/c.jpg",
	})
	require.NoError(t, err)
	return cat
}

func TestListDefaults(t *testing.T) {
	c := newTestCatalog(t)
	ctx := context.Background()

	for i := 0; i < 7; i++ {
		seed(t, c, fmt.Sprintf("cat-%d", i), "")
	}

	// zero and negative inputs fall back to page 1, limit 6
	page, err := c.List(ctx, 0, 0, "", "")
	require.NoError(t, err)
	assert.Len(t, page.Data, 6)
	assert.Equal(t, model.PageMeta{TotalItems: 7, TotalPages: 2, CurrentPage: 1, ItemsPerPage: 6}, page.Meta)

	page, err = c.List(ctx, -3, -10, "", "")
	require.NoError(t, err)
	assert.Equal(t, 1, page.Meta.CurrentPage)
	assert.Equal(t, 6, page.Meta.ItemsPerPage)
}

func TestListMetaMath(t *testing.T) {
	c := newTestCatalog(t)
	ctx := context.Background()

	for i := 0; i < 8; i++ {
		seed(t, c, fmt.Sprintf("fluffy-%d", i), "orange")
	}
	seed(t, c, "shadow", "black")

	// the documented example: 8 matching rows, page 2, limit 6
	page, err := c.List(ctx, 2, 6, "fluf", "orange")
	require.NoError(t, err)
	assert.Len(t, page.Data, 2)
	assert.Equal(t, model.PageMeta{TotalItems: 8, TotalPages: 2, CurrentPage: 2, ItemsPerPage: 6}, page.Meta)
}

func TestListBeyondLastPage(t *testing.T) {
	c := newTestCatalog(t)
	ctx := context.Background()

	seed(t, c, "only", "")

	page, err := c.List(ctx, 5, 6, "", "")
	require.NoError(t, err)
	assert.NotNil(t, page.Data)
	assert.Empty(t, page.Data)
	assert.Equal(t, model.PageMeta{TotalItems: 1, TotalPages: 1, CurrentPage: 5, ItemsPerPage: 6}, page.Meta)
}

func TestListEmptyStore(t *testing.T) {
	c := newTestCatalog(t)

	page, err := c.List(context.Background(), 1, 6, "", "")
	require.NoError(t, err)
	assert.NotNil(t, page.Data)
	assert.Empty(t, page.Data)
	assert.Zero(t, page.Meta.TotalItems)
	assert.Zero(t, page.Meta.TotalPages)
}

func TestListNeverExceedsLimit(t *testing.T) {
	c := newTestCatalog(t)
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		seed(t, c, fmt.Sprintf("cat-%d", i), "tabby")
	}

	for _, limit := range []int{1, 3, 6, 20} {
		page, err := c.List(ctx, 1, limit, "", "tabby")
		require.NoError(t, err)
		assert.LessOrEqual(t, len(page.Data), limit)
		assert.Equal(t, 10, page.Meta.TotalItems)
	}
}

func TestCreateGetRoundTrip(t *testing.T) {
	c := newTestCatalog(t)
	ctx := context.Background()

	in := model.CatInput{Name: "Mimi", Tag: "orange", Descreption: "sleepy", Img: "http://example.com/m.jpg"}
	created, err := c.Create(ctx, in)
	require.NoError(t, err)
	require.Greater(t, created.ID, int64(0))

	got, err := c.Get(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, created, got)
}

func TestUpdateMissingIDIsNoop(t *testing.T) {
	c := newTestCatalog(t)

	updated, err := c.Update(context.Background(), 404, model.CatInput{Name: "ghost"})
	require.NoError(t, err)
	assert.False(t, updated)
}

func TestDeleteThenGetEmpty(t *testing.T) {
	c := newTestCatalog(t)
	ctx := context.Background()

	cat := seed(t, c, "gone", "")

	require.NoError(t, c.Delete(ctx, cat.ID))
	require.NoError(t, c.Delete(ctx, cat.ID)) // second delete is a no-op

	got, err := c.Get(ctx, cat.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestTags(t *testing.T) {
	c := newTestCatalog(t)
	ctx := context.Background()

	seed(t, c, "a", "orange")
	seed(t, c, "b", "orange")
	seed(t, c, "c", "black")
	seed(t, c, "d", "")

	tags, err := c.Tags(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"orange", "black"}, tags)
}
