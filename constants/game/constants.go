package game_constants

// Life total every player starts with. The engine never clamps it: there is
// no server-side win condition, clients decide what 0 or less means.
const InitialLifePoints = 4000

const MaxPlayersPerRoom = 2

// Room codes look like "RX7K2P": a fixed prefix plus RoomCodeLength random
// base-36 characters, checked against the live registry on generation.
const RoomCodePrefix = "R"
const RoomCodeLength = 5
const RoomCodeAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
