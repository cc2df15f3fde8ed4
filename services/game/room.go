package game

import (
	"fmt"
	"sync"

	models "abysswar/models/game"

	game_constants "abysswar/constants/game"
)

// Room owns one match's authoritative state. Every read or write of its
// players, cards or status happens under mu, and the engine keeps the lock
// across mutate+broadcast so all members observe snapshots in a single
// total order per room. Rooms never contend with each other.
type Room struct {
	mu sync.Mutex

	id      string
	status  models.RoomStatus
	players []models.Player
	cards   []models.Card

	// Monotonic per-room sequence used to build card ids. Combined with
	// the owner id so two cards sharing a name can never collide.
	cardSeq int

	// Set when the last player leaves and the room is dropped from the
	// registry. A handler that grabbed the pointer before deletion must
	// treat the room as gone.
	closed bool
}

func newRoom(id string) *Room {
	return &Room{
		id:     id,
		status: models.StatusSetup,
	}
}

// ID returns the room's code. Immutable, safe without the lock.
func (r *Room) ID() string {
	return r.id
}

func (r *Room) nextCardID(ownerID string) string {
	r.cardSeq++
	return fmt.Sprintf("%s-c%d", ownerID, r.cardSeq)
}

func (r *Room) findCard(cardID string) *models.Card {
	for i := range r.cards {
		if r.cards[i].ID == cardID {
			return &r.cards[i]
		}
	}
	return nil
}

func (r *Room) findPlayer(playerID string) *models.Player {
	for i := range r.players {
		if r.players[i].ID == playerID {
			return &r.players[i]
		}
	}
	return nil
}

// deriveStatus recomputes the lifecycle status from the current players.
// A partially filled room is always in setup (a disconnection resets the
// readiness cycle); a full room is waiting until every player is ready.
func (r *Room) deriveStatus() {
	if len(r.players) < game_constants.MaxPlayersPerRoom {
		r.status = models.StatusSetup
		return
	}
	for i := range r.players {
		if !r.players[i].IsReady {
			r.status = models.StatusWaiting
			return
		}
	}
	r.status = models.StatusPlaying
}

// playerIDs is the broadcast scope for whole-room messages.
func (r *Room) playerIDs() []string {
	ids := make([]string, len(r.players))
	for i := range r.players {
		ids[i] = r.players[i].ID
	}
	return ids
}

// Snapshot returns a copy of the room's current state, for read-only
// surfaces outside the engine.
func (r *Room) Snapshot() *models.RoomState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snapshot()
}

// snapshot deep-copies the room into the wire representation so the socket
// layer can serialize it after the lock is released.
func (r *Room) snapshot() *models.RoomState {
	state := &models.RoomState{
		RoomID:  r.id,
		Status:  r.status,
		Players: make([]models.Player, len(r.players)),
		Cards:   make([]models.Card, len(r.cards)),
	}
	copy(state.Players, r.players)
	copy(state.Cards, r.cards)
	return state
}
