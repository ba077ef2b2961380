package components

import (
	"strings"
	"testing"
)

func TestContentWidth(t *testing.T) {
	tests := []struct{ frame, want int }{
		{10, minContentWidth},
		{50, 44},
		{200, maxContentWidth},
	}
	for _, tt := range tests {
		if got := ContentWidth(tt.frame); got != tt.want {
			t.Errorf("ContentWidth(%d) = %d, want %d", tt.frame, got, tt.want)
		}
	}
}

func TestArcadeButton_MarksSelection(t *testing.T) {
	if !strings.Contains(ArcadeButton("START QUIZ", true, 30), "▸ START QUIZ") {
		t.Error("selected button should carry the cursor")
	}
	if strings.Contains(ArcadeButton("START QUIZ", false, 30), "▸") {
		t.Error("idle button should not carry the cursor")
	}
}

func TestArcadeCard_KeepsContent(t *testing.T) {
	if card := ArcadeCard("Score: 12", 40); !strings.Contains(card, "Score: 12") {
		t.Errorf("card lost its content: %q", card)
	}
}
