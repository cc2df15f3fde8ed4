package game

type RoomStatus string

const (
	// StatusSetup: fewer than two players, or a readiness cycle was reset
	// after a disconnection.
	StatusSetup RoomStatus = "setup"
	// StatusWaiting: room is full but at least one player has not
	// submitted a deck yet.
	StatusWaiting RoomStatus = "waiting"
	// StatusPlaying: room is full and every player is ready.
	StatusPlaying RoomStatus = "playing"
)

// RoomState is the full snapshot of a room broadcast to clients on every
// gameStateUpdate. Players keeps join order; Cards is the flat set of all
// cards owned by the room's current players.
type RoomState struct {
	RoomID  string     `json:"roomId"`
	Status  RoomStatus `json:"status"`
	Players []Player   `json:"players"`
	Cards   []Card     `json:"cards"`
}
