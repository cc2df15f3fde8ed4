package handlers

import (
	"log"

	game "abysswar/services/game"
	socketio_types "abysswar/services/socket_io/types"
)

// Function to handle socket.io client disconnections. Reconciles the
// sender's room (removes the player and their cards, deletes the room if
// it emptied, otherwise resets the survivors to setup) and drops the
// connection from the map.
func HandleDisconnecting(gameEngine *game.Engine, socketID string, sio *socketio_types.SocketServer) func(args ...interface{}) {
	return func(args ...interface{}) {
		log.Printf("[DISCONNECT] Socket disconnecting: %s", socketID)

		switch gameEngine.Disconnect(socketID) {
		case game.OutcomeRoomClosed:
			log.Printf("[DISCONNECT-SUCCESS] Socket %s was the last player, room deleted", socketID)
		case game.OutcomeApplied:
			log.Printf("[DISCONNECT-SUCCESS] Socket %s removed from its room", socketID)
		default:
			log.Printf("[DISCONNECT] Socket %s was not in any room", socketID)
		}

		// Finally remove connection from map
		sio.RemoveConnection(socketID)
		log.Printf("[DISCONNECT-DONE] Socket disconnected: %s", socketID)
	}
}
