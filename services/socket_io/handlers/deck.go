package handlers

import (
	"encoding/json"
	"log"

	models "abysswar/models/game"
	game "abysswar/services/game"
	socketio_utils "abysswar/services/socket_io/utils"

	"github.com/zishang520/socket.io/v2/socket"
)

// HandleSubmitDeck replaces the sender's cards with the submitted deck
// list and marks them ready. When the submission makes both players ready
// the engine flips the room to playing and announces the duel.
func HandleSubmitDeck(gameEngine *game.Engine, client *socket.Socket) func(args ...interface{}) {
	return func(args ...interface{}) {
		data, ok := socketio_utils.Object(args)
		if !ok {
			log.Printf("[DECK-ERROR] Malformed payload from socket %s", client.Id())
			return
		}

		roomID := socketio_utils.StringField(data, "roomId")

		// Round-trip through JSON to turn the generic array into typed
		// deck entries; unknown fields are dropped on the way.
		var deck []models.DeckEntry
		if raw, err := json.Marshal(data["deck"]); err == nil {
			if err := json.Unmarshal(raw, &deck); err != nil {
				log.Printf("[DECK-ERROR] Unreadable deck list from socket %s: %v", client.Id(), err)
				return
			}
		}

		log.Printf("[DECK] submitDeck - Room: %s, Socket ID: %s, %d cards", roomID, client.Id(), len(deck))

		outcome := gameEngine.SubmitDeck(roomID, string(client.Id()), deck)
		if outcome != game.OutcomeApplied {
			// Stale room or foreign sender; dropped on purpose.
			log.Printf("[DECK] Ignored submission for room %s from socket %s", roomID, client.Id())
		}
	}
}

// HandleDrawCard moves one random card from the sender's deck zone to
// their hand and tells them privately what they drew.
func HandleDrawCard(gameEngine *game.Engine, client *socket.Socket) func(args ...interface{}) {
	return func(args ...interface{}) {
		data, ok := socketio_utils.Object(args)
		if !ok {
			log.Printf("[DRAW-ERROR] Malformed payload from socket %s", client.Id())
			return
		}

		roomID := socketio_utils.StringField(data, "roomId")
		log.Printf("[DRAW] drawCard - Room: %s, Socket ID: %s", roomID, client.Id())

		outcome := gameEngine.DrawCard(roomID, string(client.Id()))
		if outcome == game.OutcomeDeckEmpty {
			log.Printf("[DRAW] Empty deck for socket %s in room %s", client.Id(), roomID)
		}
	}
}
