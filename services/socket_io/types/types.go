package socketio_types

import (
	"sync"

	"github.com/zishang520/socket.io/v2/socket"
)

// SocketServer holds the socket.io server and the map of live connections,
// keyed by socket id. The map is what turns an engine-computed recipient
// list into actual emits, including private notifications.
type SocketServer struct {
	Sio_server *socket.Server
	// Map to track socket id -> socket connections
	Connections map[string]*socket.Socket
	mutex       sync.RWMutex
}

func NewSocketServer() *SocketServer {
	return &SocketServer{
		Connections: make(map[string]*socket.Socket),
	}
}

// Add methods to manage connections
func (s *SocketServer) AddConnection(socketID string, client *socket.Socket) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.Connections[socketID] = client
}

func (s *SocketServer) RemoveConnection(socketID string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	delete(s.Connections, socketID)
}

func (s *SocketServer) GetConnection(socketID string) (*socket.Socket, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	client, exists := s.Connections[socketID]
	return client, exists
}
