package game

import (
	"math/rand/v2"
	"strings"
	"sync"

	game_constants "abysswar/constants/game"
	models "abysswar/models/game"
)

// Registry is the process-wide table of live rooms plus the session binding
// from socket id to room code. It is constructor-injected wherever it is
// needed; there is no package-level instance.
//
// Lock order: a room's mutex may be held while taking the registry mutex
// (Bind/Remove run inside a room operation), never the other way around.
type Registry struct {
	mu       sync.RWMutex
	rooms    map[string]*Room
	sessions map[string]string
}

func NewRegistry() *Registry {
	return &Registry{
		rooms:    make(map[string]*Room),
		sessions: make(map[string]string),
	}
}

// Create allocates a fresh room in setup status with the creator as its
// sole player, binds the creator's session to it and returns it. The room
// code is regenerated while it collides with a live room, so codes are
// unique among live rooms by construction.
func (reg *Registry) Create(creatorID, creatorName string) *Room {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	code := generateRoomCode()
	for _, taken := reg.rooms[code]; taken; _, taken = reg.rooms[code] {
		code = generateRoomCode()
	}

	room := newRoom(code)
	room.players = append(room.players, models.Player{
		ID:   creatorID,
		Name: creatorName,
		Life: game_constants.InitialLifePoints,
	})

	reg.rooms[code] = room
	reg.sessions[creatorID] = code
	return room
}

// Get looks up a live room by its code.
func (reg *Registry) Get(code string) (*Room, bool) {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	room, ok := reg.rooms[code]
	return room, ok
}

// Bind records that a socket now participates in the given room. A socket
// belongs to at most one room at a time.
func (reg *Registry) Bind(socketID, code string) {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	reg.sessions[socketID] = code
}

// Unbind drops the socket's session binding, if any.
func (reg *Registry) Unbind(socketID string) {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	delete(reg.sessions, socketID)
}

// RoomFor resolves a socket id to the room it participates in. This is the
// index that lets disconnect reconciliation avoid scanning every room.
func (reg *Registry) RoomFor(socketID string) (*Room, bool) {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	code, ok := reg.sessions[socketID]
	if !ok {
		return nil, false
	}
	room, ok := reg.rooms[code]
	return room, ok
}

// Remove deletes a room from the registry. Called with the room's own
// mutex held, once its player list is empty.
func (reg *Registry) Remove(code string) {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	delete(reg.rooms, code)
}

// Count reports how many rooms are currently live.
func (reg *Registry) Count() int {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	return len(reg.rooms)
}

func generateRoomCode() string {
	var sb strings.Builder
	sb.WriteString(game_constants.RoomCodePrefix)
	for i := 0; i < game_constants.RoomCodeLength; i++ {
		sb.WriteByte(game_constants.RoomCodeAlphabet[rand.IntN(len(game_constants.RoomCodeAlphabet))])
	}
	return sb.String()
}
