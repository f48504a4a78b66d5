package yaopets

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeCollection(t *testing.T) {
	t.Parallel()

	t.Run("bare array", func(t *testing.T) {
		t.Parallel()

		body := []byte(`[{"id":"p1","content":"a"},{"id":"p2","content":"b"}]`)
		col, err := decodeCollection[Post](body, "posts")
		require.NoError(t, err)
		require.Len(t, col.Items, 2)
		require.Equal(t, int64(2), col.Total)
		require.Equal(t, "p1", col.Items[0].ID)
	})

	t.Run("wrapped object with pagination", func(t *testing.T) {
		t.Parallel()

		body := []byte(`{"posts":[{"id":"p1"}],"pagination":{"total":41,"nextCursor":"abc"}}`)
		col, err := decodeCollection[Post](body, "posts")
		require.NoError(t, err)
		require.Len(t, col.Items, 1)
		require.Equal(t, int64(41), col.Total, "total comes from pagination metadata, not page length")
		require.Equal(t, "abc", col.NextCursor)
	})

	t.Run("wrapped object without pagination falls back to page length", func(t *testing.T) {
		t.Parallel()

		body := []byte(`{"users":[{"id":"u1"},{"id":"u2"},{"id":"u3"}]}`)
		col, err := decodeCollection[User](body, "users")
		require.NoError(t, err)
		require.Equal(t, int64(3), col.Total)
		require.Empty(t, col.NextCursor)
	})

	t.Run("wrong wrapper field", func(t *testing.T) {
		t.Parallel()

		body := []byte(`{"articles":[{"id":"p1"}]}`)
		_, err := decodeCollection[Post](body, "posts")
		require.ErrorContains(t, err, "unexpected list shape")
	})

	t.Run("not a list at all", func(t *testing.T) {
		t.Parallel()

		_, err := decodeCollection[Post]([]byte(`"nope"`), "posts")
		require.ErrorContains(t, err, "unexpected list shape")
	})

	t.Run("empty array", func(t *testing.T) {
		t.Parallel()

		col, err := decodeCollection[Comment]([]byte(`[]`), "comments")
		require.NoError(t, err)
		require.Empty(t, col.Items)
		require.Equal(t, int64(0), col.Total)
	})
}

func TestNormalizeID(t *testing.T) {
	t.Parallel()

	t.Run("folds _id into missing id", func(t *testing.T) {
		t.Parallel()

		rec, err := decodeRecord[User]([]byte(`{"_id":"u9","username":"rex"}`))
		require.NoError(t, err)
		require.Equal(t, "u9", rec.ID)
	})

	t.Run("existing id wins over _id", func(t *testing.T) {
		t.Parallel()

		rec, err := decodeRecord[User]([]byte(`{"_id":"mongo","id":"canonical"}`))
		require.NoError(t, err)
		require.Equal(t, "canonical", rec.ID)
	})

	t.Run("empty id is treated as absent", func(t *testing.T) {
		t.Parallel()

		rec, err := decodeRecord[User]([]byte(`{"_id":"u9","id":""}`))
		require.NoError(t, err)
		require.Equal(t, "u9", rec.ID)
	})

	t.Run("null id is treated as absent", func(t *testing.T) {
		t.Parallel()

		rec, err := decodeRecord[User]([]byte(`{"_id":"u9","id":null}`))
		require.NoError(t, err)
		require.Equal(t, "u9", rec.ID)
	})

	t.Run("records inside a collection are normalized too", func(t *testing.T) {
		t.Parallel()

		col, err := decodeCollection[Post]([]byte(`[{"_id":"p1"},{"id":"p2"}]`), "posts")
		require.NoError(t, err)
		require.Equal(t, "p1", col.Items[0].ID)
		require.Equal(t, "p2", col.Items[1].ID)
	})
}

func TestEmpty(t *testing.T) {
	t.Parallel()

	col := Empty[Post]()
	require.NotNil(t, col.Items)
	require.Empty(t, col.Items)
	require.Equal(t, int64(0), col.Total)
}
