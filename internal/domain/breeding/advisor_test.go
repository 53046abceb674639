package breeding

import (
	"testing"
	"time"
)

func TestRecommend_AM_SameDayEvening(t *testing.T) {
	heat := time.Date(2025, 10, 25, 7, 30, 0, 0, time.UTC)

	rec, err := Recommend(heat)
	if err != nil {
		t.Fatalf("Recommend returned error: %v", err)
	}

	if rec.Action != "Inseminar HOY a la Tarde" {
		t.Fatalf("unexpected action: %q", rec.Action)
	}
	if rec.TimeRange != "18:00 - 20:00 hs" {
		t.Fatalf("unexpected range: %q", rec.TimeRange)
	}
	want := time.Date(2025, 10, 25, 18, 0, 0, 0, time.UTC)
	if !rec.SuggestedDate.Equal(want) {
		t.Fatalf("expected %v, got %v", want, rec.SuggestedDate)
	}
	if rec.AlertColor != colorToday {
		t.Fatalf("expected color %q, got %q", colorToday, rec.AlertColor)
	}
}

func TestRecommend_PM_NextMorning(t *testing.T) {
	heat := time.Date(2025, 10, 25, 14, 45, 0, 0, time.UTC)

	rec, err := Recommend(heat)
	if err != nil {
		t.Fatalf("Recommend returned error: %v", err)
	}

	if rec.Action != "Inseminar MAÑANA a la Mañana" {
		t.Fatalf("unexpected action: %q", rec.Action)
	}
	if rec.TimeRange != "06:00 - 08:00 hs" {
		t.Fatalf("unexpected range: %q", rec.TimeRange)
	}
	want := time.Date(2025, 10, 26, 6, 0, 0, 0, time.UTC)
	if !rec.SuggestedDate.Equal(want) {
		t.Fatalf("expected %v, got %v", want, rec.SuggestedDate)
	}
	if rec.AlertColor != colorTomorrow {
		t.Fatalf("expected color %q, got %q", colorTomorrow, rec.AlertColor)
	}
}

func TestRecommend_NoonIsPM(t *testing.T) {
	heat := time.Date(2025, 10, 25, 12, 0, 0, 0, time.UTC)

	rec, err := Recommend(heat)
	if err != nil {
		t.Fatalf("Recommend returned error: %v", err)
	}
	if rec.Action != "Inseminar MAÑANA a la Mañana" {
		t.Fatalf("12:00 exactas deben caer en la rama PM, got %q", rec.Action)
	}
}

func TestRecommend_PM_MonthAndYearRollover(t *testing.T) {
	// Celo PM el último día del mes: la sugerencia cae el 1 del siguiente.
	rec, err := Recommend(time.Date(2025, 1, 31, 20, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("Recommend returned error: %v", err)
	}
	want := time.Date(2025, 2, 1, 6, 0, 0, 0, time.UTC)
	if !rec.SuggestedDate.Equal(want) {
		t.Fatalf("expected %v, got %v", want, rec.SuggestedDate)
	}

	rec, err = Recommend(time.Date(2025, 12, 31, 13, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("Recommend returned error: %v", err)
	}
	want = time.Date(2026, 1, 1, 6, 0, 0, 0, time.UTC)
	if !rec.SuggestedDate.Equal(want) {
		t.Fatalf("expected %v, got %v", want, rec.SuggestedDate)
	}
}

func TestRecommend_ZeroTime_Invalid(t *testing.T) {
	if _, err := Recommend(time.Time{}); err != ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
