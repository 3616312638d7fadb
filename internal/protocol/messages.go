// Package protocol defines the wire messages exchanged with clients and the
// JSON envelope codec around them. Every frame is {"action": <tag>, "data": <payload>}.
package protocol

// Inbound is a decoded client request.
type Inbound interface{ Action() string }

// Outbound is a server message ready to be wrapped in an envelope.
type Outbound interface{ Action() string }

// Client -> server.

type Chat struct {
	Msg string `json:"msg"`
}

type CreateRoom struct{}

type JoinRoom struct {
	RoomID string `json:"room_id"`
}

type LeaveRoom struct{}

type StartBattle struct {
	OtherUser   string   `json:"other_user"`
	DragonNames []string `json:"dragon_names"`
}

type UseMove struct {
	MoveName string `json:"move_name"`
}

type Switch struct {
	NextDragon int `json:"next_dragon"`
}

func (*Chat) Action() string        { return "chat" }
func (*CreateRoom) Action() string  { return "create_room" }
func (*JoinRoom) Action() string    { return "join_room" }
func (*LeaveRoom) Action() string   { return "leave_room" }
func (*StartBattle) Action() string { return "start_battle" }
func (*UseMove) Action() string     { return "use_move" }
func (*Switch) Action() string      { return "switch" }

// Server -> client.

type Welcome struct {
	Name string `json:"name"`
}

type UserExists struct{}

type ChatNotify struct {
	Msg        string `json:"msg"`
	SourceName string `json:"source_name"`
}

type RoomCreated struct {
	RoomID string `json:"room_id"`
}

type RoomJoinStatus struct {
	RoomID    string `json:"room_id"`
	Succeeded bool   `json:"succeeded"`
}

type BattleInvite struct {
	OtherUser string `json:"other_user"`
}

type BattleStart struct {
	OtherParty []string `json:"other_party"`
}

type UseMoveNotify struct {
	Party    int    `json:"party"`
	MoveName string `json:"move_name"`
}

type DamageNotify struct {
	Party  int `json:"party"`
	Amount int `json:"amount"`
}

type SwitchNotify struct {
	Party         int  `json:"party"`
	NextIdx       int  `json:"next_idx"`
	SwitchAllowed bool `json:"switch_allowed"`
}

type EffectNotify struct {
	Party  int    `json:"party"`
	Effect string `json:"effect"`
}

type RequestError struct {
	Reason string `json:"reason"`
}

func (*Welcome) Action() string        { return "welcome" }
func (*UserExists) Action() string     { return "user_exists" }
func (*ChatNotify) Action() string     { return "chat_notify" }
func (*RoomCreated) Action() string    { return "room_created" }
func (*RoomJoinStatus) Action() string { return "room_join_status" }
func (*BattleInvite) Action() string   { return "battle_invite" }
func (*BattleStart) Action() string    { return "battle_start" }
func (*UseMoveNotify) Action() string  { return "use_move_notify" }
func (*DamageNotify) Action() string   { return "damage_notify" }
func (*SwitchNotify) Action() string   { return "switch_notify" }
func (*EffectNotify) Action() string   { return "effect_notify" }
func (*RequestError) Action() string   { return "request_error" }

// Request error reasons. These are wire strings, not display text.
const (
	ReasonNoBattleInMainRoom    = "no_battle_in_main_room"
	ReasonOpponentNotFound      = "battle_opponent_not_found"
	ReasonTooManyPartyItems     = "too_many_party_items"
	ReasonBattleAlreadyPrepared = "another_battle_already_prepared"
	ReasonInvalidPartyItem      = "invalid_party_item"
	ReasonInvalidStarterParty   = "invalid_party_item_in_requester_party"
	ReasonOngoingBattle         = "ongoing_battle"
	ReasonNoBattleInitiated     = "no_battle_initiated"
	ReasonNotInBattle           = "not_in_battle"
	ReasonAlreadyInMainRoom     = "already_in_main_room"
	ReasonInvalidCommand        = "invalid_command"
	ReasonInvalidMove           = "invalid_move"
)
