package game

import (
	"errors"
	"fmt"
	"math/rand/v2"

	models "abysswar/models/game"

	game_constants "abysswar/constants/game"
)

// Events emitted towards clients.
const (
	EventGameStateUpdate = "gameStateUpdate"
	EventNotification    = "notification"
	EventPlayEffect      = "playEffect"
)

// Errors surfaced through the createRoom/joinRoom acknowledgments. Their
// text is the client-facing failure message.
var (
	ErrInvalidName  = errors.New("Player name is required.")
	ErrRoomNotFound = errors.New("Room not found.")
	ErrRoomFull     = errors.New("Room is full.")
)

// Outcome tags what a best-effort mutation did. Lookup failures on per-card
// operations are a deliberate policy, not an accident: the room must stay
// alive no matter how stale the client's view is, so they are reported here
// instead of being raised as errors.
type Outcome int

const (
	OutcomeApplied Outcome = iota
	// OutcomeCreated: moveCard referenced an unknown card and implicitly
	// created it.
	OutcomeCreated
	OutcomeDrawn
	OutcomeDeckEmpty
	OutcomeRoomMissing
	OutcomeCardMissing
	OutcomePlayerMissing
	OutcomeInvalidZone
	// OutcomeRoomClosed: a disconnection emptied the room and deleted it.
	OutcomeRoomClosed
)

// Broadcaster delivers an event to a set of connected recipients. The
// engine computes each recipient list under the room's lock, so the socket
// layer only has to fan out.
type Broadcaster interface {
	Emit(recipients []string, event string, payload interface{})
}

// EffectPayload is relayed as-is on playEffect; the server does not
// interpret effect names.
type EffectPayload struct {
	EffectName string `json:"effectName"`
}

// Engine applies client-submitted mutations to rooms and decides the
// broadcast scope of every resulting message. One method per client event.
type Engine struct {
	registry    *Registry
	broadcaster Broadcaster
}

func NewEngine(registry *Registry, broadcaster Broadcaster) *Engine {
	return &Engine{
		registry:    registry,
		broadcaster: broadcaster,
	}
}

// Registry exposes the room table for read-only surfaces (room info
// endpoint).
func (e *Engine) Registry() *Registry {
	return e.registry
}

// CreateRoom allocates a new room with the sender as its sole player and
// sends the initial snapshot to the creator only.
func (e *Engine) CreateRoom(senderID, playerName string) (string, error) {
	if playerName == "" {
		return "", ErrInvalidName
	}

	room := e.registry.Create(senderID, playerName)

	room.mu.Lock()
	defer room.mu.Unlock()
	e.broadcaster.Emit([]string{senderID}, EventGameStateUpdate, room.snapshot())
	return room.ID(), nil
}

// JoinRoom appends the sender to an existing room. A room never exceeds
// two players; a third join is rejected, not queued.
func (e *Engine) JoinRoom(roomID, senderID, playerName string) error {
	room, ok := e.registry.Get(roomID)
	if !ok {
		return ErrRoomNotFound
	}

	room.mu.Lock()
	defer room.mu.Unlock()
	if room.closed {
		return ErrRoomNotFound
	}
	if len(room.players) >= game_constants.MaxPlayersPerRoom {
		return ErrRoomFull
	}

	room.players = append(room.players, models.Player{
		ID:   senderID,
		Name: playerName,
		Life: game_constants.InitialLifePoints,
	})
	room.deriveStatus()
	e.registry.Bind(senderID, roomID)

	scope := room.playerIDs()
	e.broadcaster.Emit(scope, EventGameStateUpdate, room.snapshot())
	e.broadcaster.Emit(scope, EventNotification, fmt.Sprintf("%s has joined the battle!", playerName))
	return nil
}

// SubmitDeck atomically replaces the sender's cards with a fresh set built
// from the deck list, all face-down in the deck zone, and marks the sender
// ready. Resubmitting replaces rather than appends, so a client retry can
// never duplicate a deck.
func (e *Engine) SubmitDeck(roomID, senderID string, deck []models.DeckEntry) Outcome {
	room, ok := e.registry.Get(roomID)
	if !ok {
		return OutcomeRoomMissing
	}

	room.mu.Lock()
	defer room.mu.Unlock()
	player := room.findPlayer(senderID)
	if player == nil {
		// Stale or foreign submission; dropping it beats crashing the room.
		return OutcomePlayerMissing
	}

	kept := room.cards[:0]
	for _, card := range room.cards {
		if card.OwnerID != senderID {
			kept = append(kept, card)
		}
	}
	room.cards = kept

	for _, entry := range deck {
		room.cards = append(room.cards, models.Card{
			ID:        room.nextCardID(senderID),
			Name:      entry.Name,
			OwnerID:   senderID,
			Zone:      models.ZoneDeck,
			IsFlipped: true,
			Art:       entry.Art,
		})
	}

	player.IsReady = true
	wasPlaying := room.status == models.StatusPlaying
	room.deriveStatus()

	scope := room.playerIDs()
	e.broadcaster.Emit(scope, EventGameStateUpdate, room.snapshot())
	if !wasPlaying && room.status == models.StatusPlaying {
		e.broadcaster.Emit(scope, EventNotification, "The duel begins!")
	}
	return OutcomeApplied
}

// DrawCard moves one uniformly random card of the sender's deck zone to
// their hand. The drawn card's name goes to the drawer only; the state
// update goes to the whole room.
func (e *Engine) DrawCard(roomID, senderID string) Outcome {
	room, ok := e.registry.Get(roomID)
	if !ok {
		return OutcomeRoomMissing
	}

	room.mu.Lock()
	defer room.mu.Unlock()
	if room.findPlayer(senderID) == nil {
		return OutcomePlayerMissing
	}

	var eligible []int
	for i := range room.cards {
		if room.cards[i].OwnerID == senderID && room.cards[i].Zone == models.ZoneDeck {
			eligible = append(eligible, i)
		}
	}
	if len(eligible) == 0 {
		e.broadcaster.Emit([]string{senderID}, EventNotification, "Your deck is empty.")
		return OutcomeDeckEmpty
	}

	card := &room.cards[eligible[rand.IntN(len(eligible))]]
	card.Zone = models.ZoneHand

	e.broadcaster.Emit(room.playerIDs(), EventGameStateUpdate, room.snapshot())
	e.broadcaster.Emit([]string{senderID}, EventNotification, fmt.Sprintf("You drew %s.", card.Name))
	return OutcomeDrawn
}

// MoveCard places a card at a board position, creating it on the fly if
// the client references one the room has never seen (first play from a
// client-local hand). The refreshed state goes to the whole room, sender
// included, so every client renders the same authoritative echo.
func (e *Engine) MoveCard(roomID, senderID, cardID string, x, y float64, zone models.Zone) Outcome {
	room, ok := e.registry.Get(roomID)
	if !ok {
		return OutcomeRoomMissing
	}

	if zone == "" {
		zone = models.ZoneBoard
	}
	if !models.ValidZone(zone) {
		return OutcomeInvalidZone
	}

	room.mu.Lock()
	defer room.mu.Unlock()
	outcome := OutcomeApplied
	if card := room.findCard(cardID); card != nil {
		card.X, card.Y = x, y
		card.Zone = zone
	} else {
		room.cards = append(room.cards, models.Card{
			ID:      cardID,
			OwnerID: senderID,
			Zone:    zone,
			X:       x,
			Y:       y,
		})
		outcome = OutcomeCreated
	}

	e.broadcaster.Emit(room.playerIDs(), EventGameStateUpdate, room.snapshot())
	return outcome
}

// MoveCardToZone sends an existing card to the graveyard, banished zone or
// back to its deck. Unknown cards and other zones are ignored.
func (e *Engine) MoveCardToZone(roomID, cardID string, zone models.Zone) Outcome {
	if zone != models.ZoneGraveyard && zone != models.ZoneBanished && zone != models.ZoneDeck {
		return OutcomeInvalidZone
	}

	room, ok := e.registry.Get(roomID)
	if !ok {
		return OutcomeRoomMissing
	}

	room.mu.Lock()
	defer room.mu.Unlock()
	card := room.findCard(cardID)
	if card == nil {
		return OutcomeCardMissing
	}
	card.Zone = zone

	e.broadcaster.Emit(room.playerIDs(), EventGameStateUpdate, room.snapshot())
	return OutcomeApplied
}

// FlipCard toggles a card between face-down and face-up.
func (e *Engine) FlipCard(roomID, cardID string) Outcome {
	room, ok := e.registry.Get(roomID)
	if !ok {
		return OutcomeRoomMissing
	}

	room.mu.Lock()
	defer room.mu.Unlock()
	card := room.findCard(cardID)
	if card == nil {
		return OutcomeCardMissing
	}
	card.IsFlipped = !card.IsFlipped

	e.broadcaster.Emit(room.playerIDs(), EventGameStateUpdate, room.snapshot())
	return OutcomeApplied
}

// RotateCard sets a card's rotation.
func (e *Engine) RotateCard(roomID, cardID string, rotation int) Outcome {
	room, ok := e.registry.Get(roomID)
	if !ok {
		return OutcomeRoomMissing
	}

	room.mu.Lock()
	defer room.mu.Unlock()
	card := room.findCard(cardID)
	if card == nil {
		return OutcomeCardMissing
	}
	card.Rotation = rotation

	e.broadcaster.Emit(room.playerIDs(), EventGameStateUpdate, room.snapshot())
	return OutcomeApplied
}

// UpdateCounters adds delta to a card's counters, clamped at zero.
func (e *Engine) UpdateCounters(roomID, cardID string, delta int) Outcome {
	room, ok := e.registry.Get(roomID)
	if !ok {
		return OutcomeRoomMissing
	}

	room.mu.Lock()
	defer room.mu.Unlock()
	card := room.findCard(cardID)
	if card == nil {
		return OutcomeCardMissing
	}
	card.Counters += delta
	if card.Counters < 0 {
		card.Counters = 0
	}

	e.broadcaster.Emit(room.playerIDs(), EventGameStateUpdate, room.snapshot())
	return OutcomeApplied
}

// UpdateLife sets a player's life total. No bounds: life can go negative,
// there is no server-side win condition.
func (e *Engine) UpdateLife(roomID, playerID string, newLife int) Outcome {
	room, ok := e.registry.Get(roomID)
	if !ok {
		return OutcomeRoomMissing
	}

	room.mu.Lock()
	defer room.mu.Unlock()
	player := room.findPlayer(playerID)
	if player == nil {
		return OutcomePlayerMissing
	}
	player.Life = newLife

	e.broadcaster.Emit(room.playerIDs(), EventGameStateUpdate, room.snapshot())
	return OutcomeApplied
}

// TriggerEffect relays an opaque visual-effect name to the whole room. No
// state changes; clients decide what the effect looks like.
func (e *Engine) TriggerEffect(roomID, effectName string) Outcome {
	room, ok := e.registry.Get(roomID)
	if !ok {
		return OutcomeRoomMissing
	}

	room.mu.Lock()
	defer room.mu.Unlock()
	e.broadcaster.Emit(room.playerIDs(), EventPlayEffect, EffectPayload{EffectName: effectName})
	return OutcomeApplied
}

// Disconnect reconciles a closed connection: the player and every card
// they own leave their room. The last player leaving deletes the room;
// otherwise the survivors drop back to setup for a fresh readiness cycle.
func (e *Engine) Disconnect(senderID string) Outcome {
	room, ok := e.registry.RoomFor(senderID)
	e.registry.Unbind(senderID)
	if !ok {
		return OutcomeRoomMissing
	}

	room.mu.Lock()
	defer room.mu.Unlock()
	player := room.findPlayer(senderID)
	if player == nil {
		return OutcomePlayerMissing
	}
	playerName := player.Name

	remaining := room.players[:0]
	for _, p := range room.players {
		if p.ID != senderID {
			remaining = append(remaining, p)
		}
	}
	room.players = remaining

	kept := room.cards[:0]
	for _, card := range room.cards {
		if card.OwnerID != senderID {
			kept = append(kept, card)
		}
	}
	room.cards = kept

	if len(room.players) == 0 {
		room.closed = true
		e.registry.Remove(room.ID())
		return OutcomeRoomClosed
	}

	room.status = models.StatusSetup
	scope := room.playerIDs()
	e.broadcaster.Emit(scope, EventNotification, fmt.Sprintf("%s has left the battle.", playerName))
	e.broadcaster.Emit(scope, EventGameStateUpdate, room.snapshot())
	return OutcomeApplied
}
