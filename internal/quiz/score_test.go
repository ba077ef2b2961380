package quiz

import "testing"

func TestPointsFor(t *testing.T) {
	tests := []struct {
		d    Difficulty
		want int
	}{
		{DifficultyEasy, 1},
		{DifficultyMedium, 2},
		{DifficultyHard, 3},
		{Difficulty("extreme"), 0},
	}
	for _, tc := range tests {
		if got := PointsFor(tc.d); got != tc.want {
			t.Errorf("PointsFor(%q) = %d, want %d", tc.d, got, tc.want)
		}
	}
}

func TestScore_AwardAccumulates(t *testing.T) {
	var s Score
	seq := []Difficulty{DifficultyHard, DifficultyEasy, DifficultyMedium, DifficultyEasy}

	prev := 0
	want := 0
	for _, d := range seq {
		want += PointsFor(d)
		got := s.Award(d)
		if got != want {
			t.Fatalf("Award(%s) total = %d, want %d", d, got, want)
		}
		if got < prev {
			t.Fatalf("score decreased from %d to %d", prev, got)
		}
		prev = got
	}
	if s.Total() != 7 {
		t.Errorf("Total() = %d, want 7", s.Total())
	}
}

func TestParseDifficulty(t *testing.T) {
	for _, in := range []string{"easy", "Medium", " HARD "} {
		if _, err := ParseDifficulty(in); err != nil {
			t.Errorf("ParseDifficulty(%q) unexpected error: %v", in, err)
		}
	}
	if _, err := ParseDifficulty("nightmare"); err == nil {
		t.Error("expected error for unknown difficulty")
	}
}

func TestParseTopic(t *testing.T) {
	got, err := ParseTopic("k-pop", DefaultTopics)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "K-POP" {
		t.Errorf("ParseTopic = %q, want K-POP", got)
	}
	if _, err := ParseTopic("Astrology", DefaultTopics); err == nil {
		t.Error("expected error for unknown topic")
	}
}

func TestDifficulties_AllValid(t *testing.T) {
	for _, d := range Difficulties() {
		if !d.Valid() {
			t.Errorf("%q reported invalid", d)
		}
	}
	if Difficulty("").Valid() {
		t.Error("empty difficulty reported valid")
	}
}
