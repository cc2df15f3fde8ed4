package handlers

import (
	"log"

	game "abysswar/services/game"
	socketio_utils "abysswar/services/socket_io/utils"

	"github.com/gin-gonic/gin"
	"github.com/zishang520/socket.io/v2/socket"
)

// HandleCreateRoom allocates a fresh room for the sender and acks with its
// code. The initial snapshot goes to the creator alone; nobody else knows
// the room exists yet.
func HandleCreateRoom(gameEngine *game.Engine, client *socket.Socket) func(args ...interface{}) {
	return func(args ...interface{}) {
		ack, hasAck := socketio_utils.Ack(args)

		playerName := ""
		if len(args) > 0 {
			playerName, _ = args[0].(string)
		}
		log.Printf("[CREATE] createRoom - Player: %q, Socket ID: %s", playerName, client.Id())

		roomID, err := gameEngine.CreateRoom(string(client.Id()), playerName)
		if err != nil {
			log.Printf("[CREATE-ERROR] %v (socket %s)", err, client.Id())
			if hasAck {
				ack([]interface{}{gin.H{"success": false, "message": err.Error()}}, nil)
			}
			return
		}

		log.Printf("[CREATE-SUCCESS] Room created: %s by %s", roomID, playerName)
		if hasAck {
			ack([]interface{}{gin.H{"success": true, "roomId": roomID}}, nil)
		}
	}
}

// HandleJoinRoom appends the sender to an existing room and acks success
// or the failure reason. The join notification and refreshed state reach
// everyone in the room, the joiner included.
func HandleJoinRoom(gameEngine *game.Engine, client *socket.Socket) func(args ...interface{}) {
	return func(args ...interface{}) {
		ack, hasAck := socketio_utils.Ack(args)

		data, ok := socketio_utils.Object(args)
		if !ok {
			log.Printf("[JOIN-ERROR] Malformed payload from socket %s", client.Id())
			if hasAck {
				ack([]interface{}{gin.H{"success": false, "message": "Malformed payload."}}, nil)
			}
			return
		}

		roomID := socketio_utils.StringField(data, "roomId")
		playerName := socketio_utils.StringField(data, "playerName")
		log.Printf("[JOIN] joinRoom - Room: %s, Player: %q, Socket ID: %s", roomID, playerName, client.Id())

		if err := gameEngine.JoinRoom(roomID, string(client.Id()), playerName); err != nil {
			log.Printf("[JOIN-ERROR] %v (room %s, socket %s)", err, roomID, client.Id())
			if hasAck {
				ack([]interface{}{gin.H{"success": false, "message": err.Error()}}, nil)
			}
			return
		}

		log.Printf("[JOIN-SUCCESS] %s joined room %s", playerName, roomID)
		if hasAck {
			ack([]interface{}{gin.H{"success": true}}, nil)
		}
	}
}
