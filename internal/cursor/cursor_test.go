package cursor_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"yaopets-backend/internal/cursor"
)

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	id := bson.NewObjectID()
	at := time.Date(2025, 6, 1, 12, 30, 0, 0, time.UTC)

	tok := cursor.Encode(at, id)

	gotT, gotID, err := cursor.Decode(tok)
	require.NoError(t, err)
	require.Equal(t, at, gotT)
	require.Equal(t, id, gotID)
}

func TestDecodeRejectsGarbage(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"not base64!!", "aGVsbG8", ""} {
		_, _, err := cursor.Decode(s)
		require.Error(t, err, s)
	}
}
