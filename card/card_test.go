package card_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/pokereval/card"
)

func TestNewAndAccessors(t *testing.T) {
	c := card.New(card.Ace, card.Spades)
	assert.Equal(t, card.Ace, c.Rank())
	assert.Equal(t, card.Spades, c.Suit())
	assert.Equal(t, "As", c.String())

	c = card.New(card.Two, card.Clubs)
	assert.Equal(t, "2c", c.String())
}

func TestParse(t *testing.T) {
	tests := []struct {
		input   string
		want    card.Card
		wantErr bool
	}{
		{"Ah", card.New(card.Ace, card.Hearts), false},
		{"Tc", card.New(card.Ten, card.Clubs), false},
		{"2s", card.New(card.Two, card.Spades), false},
		{"Kd", card.New(card.King, card.Diamonds), false},
		{"Xh", 0, true},
		{"A", 0, true},
		{"Ahh", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := card.Parse(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, card.ErrInvalidCard)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseHand(t *testing.T) {
	h, err := card.ParseHand("Ah 5s Ts")
	require.NoError(t, err)
	assert.Equal(t, 3, h.Len())
	assert.True(t, h.Contains(card.New(card.Ace, card.Hearts)))
	assert.True(t, h.Contains(card.New(card.Five, card.Spades)))
	assert.True(t, h.Contains(card.New(card.Ten, card.Spades)))
}

func TestParseHandDuplicate(t *testing.T) {
	_, err := card.ParseHand("Ah Ah")
	require.Error(t, err)
	assert.ErrorIs(t, err, card.ErrDuplicateCard)
}

func TestRoundTrip(t *testing.T) {
	h, err := card.ParseHand("Ah 5s Ts")
	require.NoError(t, err)

	reparsed, err := card.ParseHand(h.String())
	require.NoError(t, err)
	assert.Equal(t, h, reparsed)
}

func TestAll52(t *testing.T) {
	all := card.All52()
	assert.Len(t, all, card.CardCount)
	seen := make(map[card.Card]bool)
	for _, c := range all {
		assert.False(t, seen[c])
		seen[c] = true
	}
}
