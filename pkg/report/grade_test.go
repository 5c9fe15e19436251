package report

import "testing"

func TestAIGrade(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{0, "Not Yet Started"},
		{1, "F - Fail"},
		{33, "F - Fail"},
		{34, "F - Fail"},
		{35, "D - Below Average"},
		{45, "D - Below Average"},
		{46, "C - Average"},
		{56, "C - Average"},
		{57, "B - Good"},
		{67, "B - Good"},
		{68, "A - Excellent"},
		{80, "A - Excellent"},
	}
	for _, tt := range tests {
		if got := AIGrade(tt.score); got != tt.want {
			t.Errorf("AIGrade(%d) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestOfflineGrade(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{0, "Not Yet Started"},
		{1, "Low"},
		{10, "Low"},
		{11, "Medium"},
		{25, "Medium"},
		{26, "High"},
		{35, "High"},
		{36, "Very High"},
		{100, "Very High"},
	}
	for _, tt := range tests {
		if got := OfflineGrade(tt.score); got != tt.want {
			t.Errorf("OfflineGrade(%d) = %q, want %q", tt.score, got, tt.want)
		}
	}
}
