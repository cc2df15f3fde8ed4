package game

// Zone is a card's current logical location. Zone is an attribute of the
// card, not a container: the room holds one flat card set and filters by
// zone where needed.
type Zone string

const (
	ZoneDeck      Zone = "deck"
	ZoneHand      Zone = "hand"
	ZoneBoard     Zone = "board"
	ZoneGraveyard Zone = "graveyard"
	ZoneBanished  Zone = "banished"
)

// ValidZone reports whether z is one of the five known zones.
func ValidZone(z Zone) bool {
	switch z {
	case ZoneDeck, ZoneHand, ZoneBoard, ZoneGraveyard, ZoneBanished:
		return true
	}
	return false
}

// Card is a single card's authoritative state within a room. Art is an
// opaque payload (URL or inline data) relayed to clients as-is.
type Card struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	OwnerID   string  `json:"ownerId"`
	Zone      Zone    `json:"zone"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Rotation  int     `json:"rotation"`
	IsFlipped bool    `json:"isFlipped"`
	Counters  int     `json:"counters"`
	Art       string  `json:"art"`
}

// DeckEntry is one card of a submitted deck list, as sent by the client.
type DeckEntry struct {
	Name string `json:"name"`
	Art  string `json:"art"`
}
