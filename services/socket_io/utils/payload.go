package socketio_utils

import (
	"github.com/zishang520/socket.io/v2/socket"
)

// Socket.io payloads arrive as generic decoded JSON: objects are
// map[string]interface{} and every number is a float64. The helpers below
// keep the handlers free of repeated defensive assertions.

// Object returns the first argument as a JSON object, if it is one.
func Object(args []interface{}) (map[string]interface{}, bool) {
	if len(args) < 1 {
		return nil, false
	}
	data, ok := args[0].(map[string]interface{})
	return data, ok
}

// Ack returns the acknowledgment callback the client attached to the
// event, if any. The callback always arrives as the last argument.
func Ack(args []interface{}) (socket.Ack, bool) {
	if len(args) < 1 {
		return nil, false
	}
	ack, ok := args[len(args)-1].(socket.Ack)
	return ack, ok
}

// StringField returns data[key] as a string, or "" when absent or not a
// string.
func StringField(data map[string]interface{}, key string) string {
	value, _ := data[key].(string)
	return value
}

// FloatField returns data[key] as a float64.
func FloatField(data map[string]interface{}, key string) (float64, bool) {
	value, ok := data[key].(float64)
	return value, ok
}

// IntField returns data[key] truncated to an int.
func IntField(data map[string]interface{}, key string) (int, bool) {
	value, ok := data[key].(float64)
	return int(value), ok
}
