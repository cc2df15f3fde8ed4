package socket_io

import (
	game "abysswar/services/game"
	socketio_types "abysswar/services/socket_io/types"
)

// connectionBroadcaster fans engine messages out over the connection map.
// The engine decides the recipient list under the room's lock, so emission
// order matches mutation order; recipients without a live socket (already
// disconnected) are skipped.
type connectionBroadcaster struct {
	sio *socketio_types.SocketServer
}

func NewBroadcaster(sio *socketio_types.SocketServer) game.Broadcaster {
	return &connectionBroadcaster{sio: sio}
}

func (b *connectionBroadcaster) Emit(recipients []string, event string, payload interface{}) {
	for _, socketID := range recipients {
		if client, exists := b.sio.GetConnection(socketID); exists {
			client.Emit(event, payload)
		}
	}
}
