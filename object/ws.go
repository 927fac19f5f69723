package object

import (
	"time"

	"github.com/gorilla/websocket"
)

// wsDialer bounds the handshake so a dead endpoint fails the builtin instead of hanging the VM.
var wsDialer = &websocket.Dialer{HandshakeTimeout: 10 * time.Second}

// builtinWSSend implements ws_send(url, message): dial a websocket endpoint,
// send one text message, and return the text reply.
func builtinWSSend(args ...Object) Object {
	if len(args) != 2 {
		return newError("wrong number of arguments. got=%d, want=2", len(args))
	}
	url, ok := args[0].(*String)
	if !ok {
		return newError("first argument to `ws_send` must be STRING, got %s", args[0].Type())
	}
	message, ok := args[1].(*String)
	if !ok {
		return newError("second argument to `ws_send` must be STRING, got %s", args[1].Type())
	}

	conn, _, err := wsDialer.Dial(url.Value, nil)
	if err != nil {
		return newError("ws_send: dial %s: %s", url.Value, err)
	}
	defer func() { _ = conn.Close() }()

	if err := conn.WriteMessage(websocket.TextMessage, []byte(message.Value)); err != nil {
		return newError("ws_send: write: %s", err)
	}

	msgType, reply, err := conn.ReadMessage()
	if err != nil {
		return newError("ws_send: read: %s", err)
	}
	if msgType != websocket.TextMessage {
		return newError("ws_send: unexpected message type: %d", msgType)
	}
	return &String{Value: string(reply)}
}
