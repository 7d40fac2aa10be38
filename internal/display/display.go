// Package display renders game state for the terminal. It is shared by
// the spectator mode and the interactive interface.
package display

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rlauff/hanabi/internal/deck"
	"github.com/rlauff/hanabi/internal/game"
)

// Static styles for content elements
var (
	HeaderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Bold(true)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true)

	InfoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))

	HiddenStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")).
			Bold(true)

	suitStyles = map[deck.Suit]lipgloss.Style{
		deck.Red:    lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true),
		deck.Green:  lipgloss.NewStyle().Foreground(lipgloss.Color("#96CEB4")).Bold(true),
		deck.Blue:   lipgloss.NewStyle().Foreground(lipgloss.Color("#74B9FF")).Bold(true),
		deck.Yellow: lipgloss.NewStyle().Foreground(lipgloss.Color("#FFEAA7")).Bold(true),
		deck.White:  lipgloss.NewStyle().Foreground(lipgloss.Color("#FAFAFA")).Bold(true),
	}
)

// Card renders one card with its suit color
func Card(c deck.Card) string {
	return suitStyles[c.Suit()].Render(fmt.Sprintf("%c%d", suitLetter(c.Suit()), c.Value()))
}

// Hand renders a visible hand with slot numbers
func Hand(cards []deck.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = fmt.Sprintf("%d:%s", i, Card(c))
	}
	return strings.Join(parts, " ")
}

// HiddenHand renders a hand through its possibility masks: a pinned suit
// or value shows, everything else stays a question mark.
func HiddenHand(know []deck.CardSet) string {
	parts := make([]string, len(know))
	for i, mask := range know {
		parts[i] = fmt.Sprintf("%d:%s", i, maskGlyph(mask))
	}
	return strings.Join(parts, " ")
}

func maskGlyph(mask deck.CardSet) string {
	suit, suitKnown := singleSuit(mask)
	value, valueKnown := singleValue(mask)

	suitPart := "?"
	valuePart := "?"
	style := HiddenStyle
	if suitKnown {
		suitPart = string(suitLetter(suit))
		style = suitStyles[suit]
	}
	if valueKnown {
		valuePart = fmt.Sprintf("%d", value)
	}
	return style.Render(suitPart + valuePart)
}

func singleSuit(mask deck.CardSet) (deck.Suit, bool) {
	var found deck.Suit
	n := 0
	for _, s := range deck.Suits {
		if !mask.Intersect(deck.SuitSet(s)).IsEmpty() {
			found = s
			n++
		}
	}
	return found, n == 1
}

func singleValue(mask deck.CardSet) (int, bool) {
	found, n := 0, 0
	for v := 1; v <= deck.MaxValue; v++ {
		if !mask.Intersect(deck.ValueSet(v)).IsEmpty() {
			found = v
			n++
		}
	}
	return found, n == 1
}

// Fireworks renders the five piles
func Fireworks(fireworks [deck.NumSuits]int) string {
	parts := make([]string, 0, deck.NumSuits)
	for _, s := range deck.Suits {
		parts = append(parts, suitStyles[s].Render(fmt.Sprintf("%c:%d", suitLetter(s), fireworks[s])))
	}
	return strings.Join(parts, " ")
}

// Status renders the token and deck counters
func Status(hints, mistakes, deckRemaining, score int) string {
	return InfoStyle.Render(fmt.Sprintf("hints %d  mistakes %d  deck %d  score %d",
		hints, mistakes, deckRemaining, score))
}

// Move renders an applied move with its outcome
func Move(mover int, mv game.Move, res game.MoveResult) string {
	actor := fmt.Sprintf("player %d", mover)
	switch mv.Kind {
	case game.MovePlay:
		if res.Success {
			return SuccessStyle.Render(fmt.Sprintf("%s plays %s", actor, res.Card))
		}
		return ErrorStyle.Render(fmt.Sprintf("%s misplays %s", actor, res.Card))
	case game.MoveDiscard:
		return InfoStyle.Render(fmt.Sprintf("%s discards %s", actor, res.Card))
	default:
		return InfoStyle.Render(fmt.Sprintf("%s hints %s, touching %d card(s)", actor, mv, len(res.Touched)))
	}
}

func suitLetter(s deck.Suit) byte {
	return strings.ToUpper(s.String())[0]
}
