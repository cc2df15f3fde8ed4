package handlers

import (
	"log"

	game "abysswar/services/game"
	socketio_utils "abysswar/services/socket_io/utils"

	"github.com/zishang520/socket.io/v2/socket"
)

// HandleUpdateLife sets a player's life total. The target is named in the
// payload, not inferred from the sender: either player may adjust either
// life total, the server does not referee.
func HandleUpdateLife(gameEngine *game.Engine, client *socket.Socket) func(args ...interface{}) {
	return func(args ...interface{}) {
		data, ok := socketio_utils.Object(args)
		if !ok {
			return
		}

		roomID := socketio_utils.StringField(data, "roomId")
		playerID := socketio_utils.StringField(data, "playerId")
		newLife, hasLife := socketio_utils.IntField(data, "newLife")
		if !hasLife {
			return
		}

		gameEngine.UpdateLife(roomID, playerID, newLife)
	}
}

// HandleTriggerEffect relays an opaque visual-effect name to everyone in
// the room. The server neither validates nor interprets it.
func HandleTriggerEffect(gameEngine *game.Engine, client *socket.Socket) func(args ...interface{}) {
	return func(args ...interface{}) {
		data, ok := socketio_utils.Object(args)
		if !ok {
			return
		}

		roomID := socketio_utils.StringField(data, "roomId")
		effectName := socketio_utils.StringField(data, "effectName")
		log.Printf("[EFFECT] Effect triggered in room %s: %s", roomID, effectName)

		gameEngine.TriggerEffect(roomID, effectName)
	}
}
