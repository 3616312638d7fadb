package room

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dragonrelay/internal/engine"
)

func testBattle(t *testing.T) *Battle {
	t.Helper()
	p1, err := engine.NewParty(engine.NewDragon("a", engine.Stats{MaxHP: 10, Attack: 1, Defense: 1, Speed: 1}))
	require.NoError(t, err)
	p2, err := engine.NewParty(engine.NewDragon("b", engine.Stats{MaxHP: 10, Attack: 1, Defense: 1, Speed: 1}))
	require.NoError(t, err)
	return NewBattle("ash", "misty", engine.NewBattlefield(p1, p2, nil), nil)
}

func TestBattle_SideMapping(t *testing.T) {
	b := testBattle(t)

	side, ok := b.SideOf("ash")
	require.True(t, ok)
	assert.Equal(t, engine.Party1, side)

	side, ok = b.SideOf("misty")
	require.True(t, ok)
	assert.Equal(t, engine.Party2, side)

	_, ok = b.SideOf("brock")
	assert.False(t, ok)

	assert.Equal(t, "ash", b.UserOf(engine.Party1))
	assert.Equal(t, "misty", b.UserOf(engine.Party2))
}

func TestBattle_SubmitParksFirstAction(t *testing.T) {
	b := testBattle(t)

	_, ready := b.Submit(engine.Party1, Action{Move: &engine.Move{Name: "ember"}})
	assert.False(t, ready, "a turn needs both sides")

	side, waiting := b.Waiting()
	require.True(t, waiting)
	assert.Equal(t, engine.Party1, side)
}

func TestBattle_SecondSubmissionResolvesAndClears(t *testing.T) {
	b := testBattle(t)

	_, ready := b.Submit(engine.Party1, Action{Move: &engine.Move{Name: "ember"}})
	require.False(t, ready)

	actions, ready := b.Submit(engine.Party2, Action{IsSwitch: true, SwitchIdx: 1})
	require.True(t, ready)
	assert.Equal(t, "ember", actions[engine.Party1].Move.Name)
	assert.True(t, actions[engine.Party2].IsSwitch)

	_, waiting := b.Waiting()
	assert.False(t, waiting, "resolution clears the pending slot")
}

func TestBattle_ResubmissionReplacesOwnAction(t *testing.T) {
	b := testBattle(t)

	_, ready := b.Submit(engine.Party1, Action{Move: &engine.Move{Name: "ember"}})
	require.False(t, ready)
	_, ready = b.Submit(engine.Party1, Action{Move: &engine.Move{Name: "bite"}})
	require.False(t, ready, "same side resubmitting does not resolve the turn")

	actions, ready := b.Submit(engine.Party2, Action{Move: &engine.Move{Name: "gust"}})
	require.True(t, ready)
	assert.Equal(t, "bite", actions[engine.Party1].Move.Name, "latest submission wins")
}

func TestRoom_Membership(t *testing.T) {
	r := New("AB12C", "ash")
	assert.True(t, r.HasMember("ash"))
	assert.False(t, r.HasMember("misty"))

	r.Members = append(r.Members, "misty")
	assert.False(t, r.RemoveMember("ash"), "room still has members")
	assert.True(t, r.RemoveMember("misty"), "last member leaving empties the room")
}
