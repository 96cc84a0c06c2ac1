package agro

import (
	"encoding/json"
	"slices"
	"testing"
)

func TestRecommendValues(t *testing.T) {
	tests := []struct {
		name      string
		reading   SoilReading
		wantCrop  Crop
		wantNotes []string
	}{
		{
			"all rice thresholds met",
			SoilReading{N: 100, P: 50, K: 100, Temperature: 25, Humidity: 70, PH: 6.5, Rainfall: 120},
			Rice,
			[]string{},
		},
		{
			"nitrogen too low for rice falls to wheat",
			SoilReading{N: 90, P: 60, K: 80, Temperature: 28, Humidity: 70, PH: 6.5, Rainfall: 120},
			Wheat,
			[]string{},
		},
		{
			"nothing matches",
			SoilReading{N: 10, P: 10, K: 10, Temperature: 15, Humidity: 20, PH: 4.5, Rainfall: 10},
			Millets,
			[]string{NoteLowPH, NoteLowHumidity, NoteLowRainfall},
		},
		{
			"maize",
			SoilReading{N: 50, P: 10, K: 90, Temperature: 30, Humidity: 50, PH: 6.0, Rainfall: 100},
			Maize,
			[]string{},
		},
		{
			"pulses with low rainfall",
			SoilReading{N: 50, P: 70, K: 50, Temperature: 25, Humidity: 50, PH: 6.5, Rainfall: 30},
			Pulses,
			[]string{NoteLowRainfall},
		},
		{
			"high pH",
			SoilReading{N: 10, P: 10, K: 10, Temperature: 25, Humidity: 50, PH: 8.5, Rainfall: 100},
			Millets,
			[]string{NoteHighPH},
		},
		{
			"negative rainfall is evaluated, not rejected",
			SoilReading{PH: 7, Rainfall: -10},
			Millets,
			[]string{NoteLowHumidity, NoteLowRainfall},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := tt.reading
			got := RecommendValues(r.N, r.P, r.K, r.Temperature, r.Humidity, r.PH, r.Rainfall)
			if got.Crop != tt.wantCrop {
				t.Errorf("Crop: got %s, want %s", got.Crop, tt.wantCrop)
			}
			if !slices.Equal(got.Notes, tt.wantNotes) {
				t.Errorf("Notes: got %q, want %q", got.Notes, tt.wantNotes)
			}
		})
	}
}

func TestRecommend_RuleOrder(t *testing.T) {
	// Matches Rice, Wheat, Maize and Pulses at once.
	all := SoilReading{N: 120, P: 70, K: 120, Temperature: 25, Humidity: 70, PH: 6.5, Rainfall: 120}
	if got := Recommend(all).Crop; got != Rice {
		t.Errorf("reading matching every rule: got %s, want Rice", got)
	}

	// Matches Wheat and Maize but not Rice.
	wheatMaize := SoilReading{N: 90, P: 60, K: 90, Temperature: 26, Humidity: 50, PH: 6.5, Rainfall: 100}
	if got := Recommend(wheatMaize).Crop; got != Wheat {
		t.Errorf("reading matching wheat and maize: got %s, want Wheat", got)
	}
}

func TestRecommend_InclusiveBounds(t *testing.T) {
	tests := []struct {
		name    string
		reading SoilReading
		want    Crop
	}{
		{"rice lower bounds", SoilReading{N: 100, K: 100, Temperature: 20, Humidity: 60, PH: 5.8}, Rice},
		{"rice upper bounds", SoilReading{N: 100, K: 100, Temperature: 30, Humidity: 85, PH: 7.5}, Rice},
		{"rice pH just below", SoilReading{N: 100, K: 100, Temperature: 20, Humidity: 60, PH: 5.79}, Millets},
		{"wheat rainfall upper bound", SoilReading{N: 90, P: 60, K: 10, Temperature: 26, Humidity: 50, PH: 6.5, Rainfall: 200}, Wheat},
		{"wheat rainfall above bound", SoilReading{N: 90, P: 60, K: 10, Temperature: 26, Humidity: 50, PH: 6.5, Rainfall: 201}, Pulses},
		{"maize temperature upper bound", SoilReading{K: 80, Temperature: 35, PH: 7.5, Rainfall: 50}, Maize},
		{"maize temperature above bound", SoilReading{K: 80, Temperature: 35.1, PH: 7.5, Rainfall: 50}, Millets},
		{"pulses pH lower bound", SoilReading{P: 60, Temperature: 20, PH: 6.0}, Pulses},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Recommend(tt.reading).Crop; got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestRecommend_NoteThresholds(t *testing.T) {
	// Exactly on the thresholds nothing is emitted.
	r := SoilReading{Humidity: 35, PH: 5.5, Rainfall: 50}
	if notes := Recommend(r).Notes; len(notes) != 0 {
		t.Errorf("notes at thresholds: got %q, want none", notes)
	}

	r.PH = 8.0
	if notes := Recommend(r).Notes; len(notes) != 0 {
		t.Errorf("notes at pH 8.0: got %q, want none", notes)
	}

	r = SoilReading{Humidity: 0, PH: 9, Rainfall: 0}
	want := []string{NoteHighPH, NoteLowHumidity, NoteLowRainfall}
	if notes := Recommend(r).Notes; !slices.Equal(notes, want) {
		t.Errorf("notes: got %q, want %q", notes, want)
	}
}

func TestRecommend_Deterministic(t *testing.T) {
	r := SoilReading{N: 10, P: 10, K: 10, Temperature: 15, Humidity: 20, PH: 4.5, Rainfall: 10}
	a := Recommend(r)
	b := Recommend(r)
	if a.Crop != b.Crop || !slices.Equal(a.Notes, b.Notes) {
		t.Errorf("repeated calls differ: %+v vs %+v", a, b)
	}
}

func TestRecommendation_JSONEmptyNotes(t *testing.T) {
	rec := RecommendValues(100, 50, 100, 25, 70, 6.5, 120)
	b, err := json.Marshal(rec)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(b) != `{"crop":"Rice","notes":[]}` {
		t.Errorf("got %s", b)
	}
}

func TestCrops(t *testing.T) {
	want := []Crop{Rice, Wheat, Maize, Pulses, Millets}
	if got := Crops(); !slices.Equal(got, want) {
		t.Errorf("Crops: got %v, want %v", got, want)
	}
}
