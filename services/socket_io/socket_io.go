package socket_io

import (
	game "abysswar/services/game"
	"abysswar/services/socket_io/handlers"

	socketio_types "abysswar/services/socket_io/types"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/zishang520/engine.io/v2/log"
	"github.com/zishang520/engine.io/v2/types"
	"github.com/zishang520/socket.io/v2/socket"
)

type MySocketServer socketio_types.SocketServer

// Start mounts the socket.io server on the gin router and registers every
// game event for each incoming connection. The registry is injected; the
// engine broadcasts through the connection map this server maintains.
func (sio *MySocketServer) Start(router *gin.Engine, registry *game.Registry) {
	log.DEBUG = os.Getenv("SOCKET_DEBUG") == "true"
	c := socket.DefaultServerOptions()
	c.SetServeClient(true)
	// NOTE: higher ping interval and timeout to 1) reduce network load and 2) support slower networks
	c.SetPingInterval(5 * time.Second)
	c.SetPingTimeout(3 * time.Second)
	c.SetMaxHttpBufferSize(1000000)
	c.SetConnectTimeout(10 * time.Second)
	c.SetTransports(types.NewSet("polling", "websocket"))
	c.SetCors(&types.Cors{
		Origin:      "*",
		Credentials: true,
	})

	// KEY: initialize the map, otherwise it panics
	sio.Connections = make(map[string]*socket.Socket)

	gameEngine := game.NewEngine(registry, NewBroadcaster((*socketio_types.SocketServer)(sio)))

	sio.Sio_server = socket.NewServer(nil, nil)
	sio.Sio_server.On("connection", func(clients ...interface{}) {
		client := clients[0].(*socket.Socket)
		socketID := string(client.Id())

		// Add connection to map
		(*socketio_types.SocketServer)(sio).AddConnection(socketID, client)

		fmt.Println("A user connected:", socketID)

		// Room lifecycle
		client.On("createRoom", handlers.HandleCreateRoom(gameEngine, client))
		client.On("joinRoom", handlers.HandleJoinRoom(gameEngine, client))

		// Deck submission and drawing
		client.On("submitDeck", handlers.HandleSubmitDeck(gameEngine, client))
		client.On("drawCard", handlers.HandleDrawCard(gameEngine, client))

		// Card mutations
		client.On("moveCard", handlers.HandleMoveCard(gameEngine, client))
		client.On("moveCardToZone", handlers.HandleMoveCardToZone(gameEngine, client))
		client.On("flipCard", handlers.HandleFlipCard(gameEngine, client))
		client.On("rotateCard", handlers.HandleRotateCard(gameEngine, client))
		client.On("updateCounters", handlers.HandleUpdateCounters(gameEngine, client))

		// Life totals and visual effects
		client.On("updateLife", handlers.HandleUpdateLife(gameEngine, client))
		client.On("triggerEffect", handlers.HandleTriggerEffect(gameEngine, client))

		// NOTE: will remove sio connection from map
		client.On("disconnecting", handlers.HandleDisconnecting(gameEngine, socketID, (*socketio_types.SocketServer)(sio)))
	})

	router.POST("/socket.io/*f", gin.WrapH(sio.Sio_server.ServeHandler(c)))
	router.GET("/socket.io/*f", gin.WrapH(sio.Sio_server.ServeHandler(c)))

	SignalC := make(chan os.Signal, 1)

	signal.Notify(SignalC, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	go func() {
		for s := range SignalC {
			switch s {
			case syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT:
				sio.Sio_server.Close(nil)
				os.Exit(0)
			}
		}
	}()

	fmt.Println("Socket server started")
}
