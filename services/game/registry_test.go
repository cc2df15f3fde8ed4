package game

import (
	"testing"

	models "abysswar/models/game"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryCreateAssignsTypableCode(t *testing.T) {
	registry := NewRegistry()

	room := registry.Create("alice", "Alice")
	assert.Regexp(t, "^R[0-9A-Z]{5}$", room.ID())

	got, ok := registry.Get(room.ID())
	require.True(t, ok)
	assert.Same(t, room, got)
}

func TestRegistryCreateSeedsCreator(t *testing.T) {
	registry := NewRegistry()

	room := registry.Create("alice", "Alice")
	state := room.Snapshot()

	assert.Equal(t, models.StatusSetup, state.Status)
	require.Len(t, state.Players, 1)
	assert.Equal(t, "alice", state.Players[0].ID)
	assert.Equal(t, 4000, state.Players[0].Life)
	assert.Empty(t, state.Cards)
}

func TestRegistryCodesUniqueAmongLiveRooms(t *testing.T) {
	registry := NewRegistry()

	codes := make(map[string]bool)
	for i := 0; i < 200; i++ {
		room := registry.Create("socket", "Player")
		assert.False(t, codes[room.ID()], "code %s reused", room.ID())
		codes[room.ID()] = true
	}
	assert.Equal(t, 200, registry.Count())
}

func TestRegistrySessionBinding(t *testing.T) {
	registry := NewRegistry()

	room := registry.Create("alice", "Alice")

	// Creation binds the creator.
	got, ok := registry.RoomFor("alice")
	require.True(t, ok)
	assert.Same(t, room, got)

	registry.Bind("bob", room.ID())
	got, ok = registry.RoomFor("bob")
	require.True(t, ok)
	assert.Same(t, room, got)

	registry.Unbind("bob")
	_, ok = registry.RoomFor("bob")
	assert.False(t, ok)
}

func TestRegistryRemove(t *testing.T) {
	registry := NewRegistry()

	room := registry.Create("alice", "Alice")
	registry.Remove(room.ID())

	_, ok := registry.Get(room.ID())
	assert.False(t, ok)
	assert.Zero(t, registry.Count())

	// Stale binding resolves to nothing once the room is gone.
	_, ok = registry.RoomFor("alice")
	assert.False(t, ok)
}
