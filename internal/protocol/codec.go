package protocol

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	ErrMalformedFrame = errors.New("malformed frame")
	ErrUnknownAction  = errors.New("unknown action")
)

// Envelope is the outer JSON shape of every frame in both directions.
type Envelope struct {
	Action string          `json:"action"`
	Data   json.RawMessage `json:"data"`
}

// inboundTable maps an action tag to a factory for its payload struct.
// Adding a client message means adding one type and one row here.
var inboundTable = map[string]func() Inbound{
	(*Chat)(nil).Action():        func() Inbound { return &Chat{} },
	(*CreateRoom)(nil).Action():  func() Inbound { return &CreateRoom{} },
	(*JoinRoom)(nil).Action():    func() Inbound { return &JoinRoom{} },
	(*LeaveRoom)(nil).Action():   func() Inbound { return &LeaveRoom{} },
	(*StartBattle)(nil).Action(): func() Inbound { return &StartBattle{} },
	(*UseMove)(nil).Action():     func() Inbound { return &UseMove{} },
	(*Switch)(nil).Action():      func() Inbound { return &Switch{} },
}

// Decode parses one client frame. ErrMalformedFrame means the envelope or
// payload was not valid JSON; ErrUnknownAction means a well-formed envelope
// carried a tag outside the catalog.
func Decode(frame []byte) (Inbound, error) {
	var env Envelope
	if err := json.Unmarshal(frame, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedFrame, err)
	}
	newMsg, ok := inboundTable[env.Action]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAction, env.Action)
	}
	msg := newMsg()
	if len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, msg); err != nil {
			return nil, fmt.Errorf("%w: %q data: %v", ErrMalformedFrame, env.Action, err)
		}
	}
	return msg, nil
}

// Encode wraps a server message in its envelope.
func Encode(msg Outbound) ([]byte, error) {
	data, err := json.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("encode %q: %w", msg.Action(), err)
	}
	return json.Marshal(Envelope{Action: msg.Action(), Data: data})
}
