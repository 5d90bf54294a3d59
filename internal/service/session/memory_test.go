package session

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"FinHub/internal/domain/models"
)

func TestMemoryStoreAppendGet(t *testing.T) {
	ms := NewMemoryStore(time.Minute, 10)
	defer ms.Close()
	ctx := context.Background()

	_, ok := ms.Get(ctx, "s1")
	assert.False(t, ok)

	require.NoError(t, ms.Append(ctx, "s1",
		models.ChatTurn{Role: models.RoleUser, Content: "hi"},
		models.ChatTurn{Role: models.RoleAssistant, Content: "hello"},
	))

	turns, ok := ms.Get(ctx, "s1")
	require.True(t, ok)
	require.Len(t, turns, 2)
	assert.Equal(t, models.RoleUser, turns[0].Role)
	assert.Equal(t, "hello", turns[1].Content)
}

func TestMemoryStoreGetReturnsCopy(t *testing.T) {
	ms := NewMemoryStore(time.Minute, 10)
	defer ms.Close()
	ctx := context.Background()

	require.NoError(t, ms.Append(ctx, "s1", models.ChatTurn{Role: models.RoleUser, Content: "hi"}))
	turns, _ := ms.Get(ctx, "s1")
	turns[0].Content = "mutated"

	again, _ := ms.Get(ctx, "s1")
	assert.Equal(t, "hi", again[0].Content)
}

func TestMemoryStoreTTLExpiry(t *testing.T) {
	ms := NewMemoryStore(20*time.Millisecond, 10)
	defer ms.Close()
	ctx := context.Background()

	require.NoError(t, ms.Append(ctx, "s1", models.ChatTurn{Role: models.RoleUser, Content: "hi"}))
	time.Sleep(40 * time.Millisecond)

	_, ok := ms.Get(ctx, "s1")
	assert.False(t, ok)
}

func TestMemoryStoreLRUEviction(t *testing.T) {
	ms := NewMemoryStore(time.Minute, 3)
	defer ms.Close()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		id := fmt.Sprintf("s%d", i)
		require.NoError(t, ms.Append(ctx, id, models.ChatTurn{Role: models.RoleUser, Content: id}))
		time.Sleep(time.Millisecond)
	}
	// touch s0 so s1 becomes the LRU victim
	_, ok := ms.Get(ctx, "s0")
	require.True(t, ok)

	require.NoError(t, ms.Append(ctx, "s3", models.ChatTurn{Role: models.RoleUser, Content: "s3"}))

	_, ok = ms.Get(ctx, "s1")
	assert.False(t, ok)
	_, ok = ms.Get(ctx, "s0")
	assert.True(t, ok)
	_, ok = ms.Get(ctx, "s3")
	assert.True(t, ok)
}

func TestMemoryStoreTurnCap(t *testing.T) {
	ms := NewMemoryStore(time.Minute, 10)
	defer ms.Close()
	ctx := context.Background()

	for i := 0; i < maxTurns+10; i++ {
		require.NoError(t, ms.Append(ctx, "s1",
			models.ChatTurn{Role: models.RoleUser, Content: fmt.Sprintf("q%d", i)}))
	}

	turns, ok := ms.Get(ctx, "s1")
	require.True(t, ok)
	assert.Len(t, turns, maxTurns)
	assert.Equal(t, fmt.Sprintf("q%d", maxTurns+9), turns[len(turns)-1].Content)
}
