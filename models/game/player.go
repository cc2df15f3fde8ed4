package game

// Player is a connected participant. ID is the transport connection id and
// stays stable for the connection's lifetime; Name is client-supplied and
// unvalidated beyond being non-empty.
type Player struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Life    int    `json:"life"`
	IsReady bool   `json:"isReady"`
}
