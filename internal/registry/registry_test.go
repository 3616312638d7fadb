package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dragonrelay/internal/protocol"
	"dragonrelay/internal/room"
	"dragonrelay/internal/session"
)

func TestUsers_NameUniqueness(t *testing.T) {
	u := NewUsers()
	first := session.New("misty", 4)
	require.NoError(t, u.Register(first))

	err := u.Register(session.New("misty", 4))
	require.ErrorIs(t, err, ErrNameTaken)

	got, ok := u.Get("misty")
	require.True(t, ok)
	assert.Same(t, first, got, "failed registration must not displace the live session")
}

func TestUsers_RemoveReturnsSession(t *testing.T) {
	u := NewUsers()
	s := session.New("brock", 4)
	require.NoError(t, u.Register(s))

	assert.Same(t, s, u.Remove("brock"))
	_, ok := u.Get("brock")
	assert.False(t, ok)
	assert.Zero(t, u.Count())
}

func TestUsers_BroadcastSkipsDeparted(t *testing.T) {
	u := NewUsers()
	a := session.New("a", 4)
	require.NoError(t, u.Register(a))

	u.Broadcast([]string{"a", "ghost"}, &protocol.ChatNotify{Msg: "hi", SourceName: "a"})
	select {
	case msg := <-a.Outbox():
		assert.IsType(t, &protocol.ChatNotify{}, msg)
	default:
		t.Fatal("expected broadcast to reach the live session")
	}
}

func TestUsers_BroadcastLobbyExcludesRoomMembers(t *testing.T) {
	u := NewUsers()
	lobbyist := session.New("lobbyist", 4)
	roomer := session.New("roomer", 4)
	roomer.SetRoomID("AB12C")
	require.NoError(t, u.Register(lobbyist))
	require.NoError(t, u.Register(roomer))

	u.BroadcastLobby(&protocol.Welcome{Name: "newcomer"})

	select {
	case <-lobbyist.Outbox():
	default:
		t.Fatal("lobby user should receive the welcome")
	}
	select {
	case msg := <-roomer.Outbox():
		t.Fatalf("room member should not receive lobby broadcast, got %T", msg)
	default:
	}
}

func TestGenerateRoomID_Shape(t *testing.T) {
	id, err := GenerateRoomID()
	require.NoError(t, err)
	require.Len(t, id, 5)
	for _, c := range id {
		assert.Contains(t, roomIDAlphabet, string(c))
	}
}

func TestRooms_CreateJoinLeaveLifecycle(t *testing.T) {
	r := NewRooms()
	id, err := r.Create("ash")
	require.NoError(t, err)
	require.Len(t, id, 5)

	members, ok := r.Members(id)
	require.True(t, ok)
	assert.Equal(t, []string{"ash"}, members)

	require.True(t, r.Join(id, "misty"))
	members, _ = r.Members(id)
	assert.Equal(t, []string{"ash", "misty"}, members, "membership keeps insertion order")

	r.Leave(id, "ash")
	members, ok = r.Members(id)
	require.True(t, ok, "room with remaining members is retained")
	assert.Equal(t, []string{"misty"}, members)

	r.Leave(id, "misty")
	_, ok = r.Members(id)
	assert.False(t, ok, "room emptied of members is deleted")
	assert.Zero(t, r.Count())
}

func TestRooms_JoinUnknownRoom(t *testing.T) {
	r := NewRooms()
	assert.False(t, r.Join("ZZZZZ", "ash"))
	assert.Zero(t, r.Count())
}

func TestRooms_MoveIsExitThenJoin(t *testing.T) {
	r := NewRooms()
	first, err := r.Create("ash")
	require.NoError(t, err)
	second, err := r.Create("misty")
	require.NoError(t, err)

	require.True(t, r.Move(first, second, "ash"))

	_, ok := r.Members(first)
	assert.False(t, ok, "sole member moving out destroys the old room")
	members, _ := r.Members(second)
	assert.Equal(t, []string{"misty", "ash"}, members)
}

func TestRooms_MoveIntoCurrentRoomIsNoOp(t *testing.T) {
	r := NewRooms()
	id, err := r.Create("ash")
	require.NoError(t, err)

	require.True(t, r.Move(id, id, "ash"))
	members, ok := r.Members(id)
	require.True(t, ok, "re-joining the current room keeps it registered")
	assert.Equal(t, []string{"ash"}, members, "membership stays a single entry")
}

func TestRooms_MoveUnknownTargetMutatesNothing(t *testing.T) {
	r := NewRooms()
	id, err := r.Create("ash")
	require.NoError(t, err)

	require.False(t, r.Move(id, "ZZZZZ", "ash"))
	members, ok := r.Members(id)
	require.True(t, ok)
	assert.Equal(t, []string{"ash"}, members, "failed join leaves prior membership intact")
}

func TestRooms_UpdateUnknownRoom(t *testing.T) {
	r := NewRooms()
	err := r.Update("ZZZZZ", func(_ *room.Room) error { return nil })
	require.ErrorIs(t, err, ErrRoomNotFound)
}
