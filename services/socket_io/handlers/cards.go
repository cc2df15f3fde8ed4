package handlers

import (
	"log"

	models "abysswar/models/game"
	game "abysswar/services/game"
	socketio_utils "abysswar/services/socket_io/utils"

	"github.com/zishang520/socket.io/v2/socket"
)

// Card mutation handlers. They all follow the same best-effort policy:
// parse the payload, hand it to the engine, and never surface a lookup
// failure back to the client. A stale card or room reference must not
// crash the room or drop the connection.

// HandleMoveCard places a card on the board (or another zone if the
// payload names one), creating the card on first reference.
func HandleMoveCard(gameEngine *game.Engine, client *socket.Socket) func(args ...interface{}) {
	return func(args ...interface{}) {
		data, ok := socketio_utils.Object(args)
		if !ok {
			return
		}

		roomID := socketio_utils.StringField(data, "roomId")
		cardID := socketio_utils.StringField(data, "cardId")
		x, _ := socketio_utils.FloatField(data, "x")
		y, _ := socketio_utils.FloatField(data, "y")
		zone := models.Zone(socketio_utils.StringField(data, "zone"))

		outcome := gameEngine.MoveCard(roomID, string(client.Id()), cardID, x, y, zone)
		if outcome == game.OutcomeCreated {
			log.Printf("[CARD] First placement of card %s in room %s by socket %s", cardID, roomID, client.Id())
		}
	}
}

// HandleMoveCardToZone sends a card to the graveyard, the banished zone or
// back into its deck.
func HandleMoveCardToZone(gameEngine *game.Engine, client *socket.Socket) func(args ...interface{}) {
	return func(args ...interface{}) {
		data, ok := socketio_utils.Object(args)
		if !ok {
			return
		}

		roomID := socketio_utils.StringField(data, "roomId")
		cardID := socketio_utils.StringField(data, "cardId")
		zone := models.Zone(socketio_utils.StringField(data, "zone"))

		gameEngine.MoveCardToZone(roomID, cardID, zone)
	}
}

// HandleFlipCard toggles a card face-down/face-up.
func HandleFlipCard(gameEngine *game.Engine, client *socket.Socket) func(args ...interface{}) {
	return func(args ...interface{}) {
		data, ok := socketio_utils.Object(args)
		if !ok {
			return
		}

		roomID := socketio_utils.StringField(data, "roomId")
		cardID := socketio_utils.StringField(data, "cardId")

		gameEngine.FlipCard(roomID, cardID)
	}
}

// HandleRotateCard sets a card's rotation.
func HandleRotateCard(gameEngine *game.Engine, client *socket.Socket) func(args ...interface{}) {
	return func(args ...interface{}) {
		data, ok := socketio_utils.Object(args)
		if !ok {
			return
		}

		roomID := socketio_utils.StringField(data, "roomId")
		cardID := socketio_utils.StringField(data, "cardId")
		rotation, _ := socketio_utils.IntField(data, "rotation")

		gameEngine.RotateCard(roomID, cardID, rotation)
	}
}

// HandleUpdateCounters adds a (possibly negative) delta to a card's
// counters; the engine clamps the result at zero.
func HandleUpdateCounters(gameEngine *game.Engine, client *socket.Socket) func(args ...interface{}) {
	return func(args ...interface{}) {
		data, ok := socketio_utils.Object(args)
		if !ok {
			return
		}

		roomID := socketio_utils.StringField(data, "roomId")
		cardID := socketio_utils.StringField(data, "cardId")
		delta, _ := socketio_utils.IntField(data, "delta")

		gameEngine.UpdateCounters(roomID, cardID, delta)
	}
}
