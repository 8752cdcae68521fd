package ws

import (
	"encoding/json"
	"log"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
)

const (
	maxFramePayloadBytes   = 4 * 1024
	maxFramesPerSecond     = 40
	maxDecodeErrorsPerConn = 3
)

const (
	frameJoin   = "game.join"
	frameReveal = "game.reveal"
	frameFlag   = "game.flag"
	frameState  = "game.state"
	frameResult = "game.result"
	frameError  = "game.error"
)

type wsFrame struct {
	Type      string          `json:"type"`
	RequestID string          `json:"request_id,omitempty"`
	Payload   json.RawMessage `json:"payload"`
}

type joinPayload struct {
	PlayerName string `json:"player_name"`
}

type cellPayload struct {
	X *int `json:"x"`
	Y *int `json:"y"`
}

type wsErrorEnvelope struct {
	Error wsError `json:"error"`
}

type wsError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func mustJSON(v any) json.RawMessage {
	b, err := json.Marshal(v)
	if err != nil {
		log.Printf("ws: marshal frame payload: %v", err)
		return nil
	}
	return b
}

// payloadJSON keeps the proto field names and zero values so every
// game.state frame carries the full board shape.
var payloadJSON = protojson.MarshalOptions{UseProtoNames: true, EmitUnpopulated: true}

func protoPayload(m proto.Message) json.RawMessage {
	b, err := payloadJSON.Marshal(m)
	if err != nil {
		log.Printf("ws: marshal %T payload: %v", m, err)
		return nil
	}
	return b
}
