package agro

// Crop is a recommended crop label.
type Crop string

// The closed set of labels Recommend can return.
const (
	Rice    Crop = "Rice"
	Wheat   Crop = "Wheat"
	Maize   Crop = "Maize"
	Pulses  Crop = "Pulses"
	Millets Crop = "Millets"
)

// Advisory notes, in the order Recommend emits them.
const (
	NoteLowPH       = "Soil pH is low; consider liming."
	NoteHighPH      = "Soil pH is high; consider gypsum/organic amendments."
	NoteLowHumidity = "Low humidity may affect germination; ensure irrigation."
	NoteLowRainfall = "Low rainfall; plan irrigation schedule."
)

// SoilReading holds the soil and weather inputs for a recommendation.
//
// Units follow the demo form: N, P and K in arbitrary nutrient units,
// temperature in °C, humidity in percent, pH on the 0-14 scale and rainfall
// in millimetres. Values are not range checked.
type SoilReading struct {
	N           float64 `json:"n" yaml:"n"`
	P           float64 `json:"p" yaml:"p"`
	K           float64 `json:"k" yaml:"k"`
	Temperature float64 `json:"temperature" yaml:"temperature"`
	Humidity    float64 `json:"humidity" yaml:"humidity"`
	PH          float64 `json:"ph" yaml:"ph"`
	Rainfall    float64 `json:"rainfall" yaml:"rainfall"`
}

// Recommendation is the outcome of a single Recommend call.
type Recommendation struct {
	// Crop is the first ladder rule that matched.
	Crop Crop `json:"crop" yaml:"crop"`

	// Notes lists the advisories whose condition held, in fixed order.
	// It is empty, never nil, when nothing applies.
	Notes []string `json:"notes" yaml:"notes"`
}

// rule pairs a crop label with the thresholds that select it.
type rule struct {
	crop  Crop
	match func(r SoilReading) bool
}

// ladder is evaluated top to bottom; the first match wins.
var ladder = []rule{
	{Rice, func(r SoilReading) bool {
		return r.N >= 100 && r.K >= 100 &&
			between(r.Temperature, 20, 30) &&
			between(r.Humidity, 60, 85) &&
			between(r.PH, 5.8, 7.5)
	}},
	{Wheat, func(r SoilReading) bool {
		return r.N >= 80 && r.P >= 50 &&
			between(r.Temperature, 18, 28) &&
			between(r.Rainfall, 40, 200) &&
			between(r.PH, 6.0, 7.0)
	}},
	{Maize, func(r SoilReading) bool {
		return between(r.Temperature, 24, 35) && r.K >= 80 &&
			between(r.PH, 5.5, 7.5) && r.Rainfall >= 50
	}},
	{Pulses, func(r SoilReading) bool {
		return r.P >= 60 && between(r.Temperature, 20, 30) &&
			between(r.PH, 6.0, 7.5)
	}},
}

// advisories are independent checks, emitted in this order.
var advisories = []struct {
	note  string
	apply func(r SoilReading) bool
}{
	{NoteLowPH, func(r SoilReading) bool { return r.PH < 5.5 }},
	{NoteHighPH, func(r SoilReading) bool { return r.PH > 8.0 }},
	{NoteLowHumidity, func(r SoilReading) bool { return r.Humidity < 35 }},
	{NoteLowRainfall, func(r SoilReading) bool { return r.Rainfall < 50 }},
}

// Recommend picks a crop for the reading and collects advisory notes.
//
// The crop is the first matching rule of the ladder documented on the
// package, falling back to Millets. Notes are evaluated independently of the
// chosen crop. Recommend always returns and is deterministic.
func Recommend(r SoilReading) Recommendation {
	notes := make([]string, 0, len(advisories))
	for _, a := range advisories {
		if a.apply(r) {
			notes = append(notes, a.note)
		}
	}

	crop := Millets
	for _, rl := range ladder {
		if rl.match(r) {
			crop = rl.crop
			break
		}
	}

	return Recommendation{Crop: crop, Notes: notes}
}

// RecommendValues is Recommend with positional arguments in form order.
func RecommendValues(n, p, k, temp, humidity, ph, rainfall float64) Recommendation {
	return Recommend(SoilReading{
		N:           n,
		P:           p,
		K:           k,
		Temperature: temp,
		Humidity:    humidity,
		PH:          ph,
		Rainfall:    rainfall,
	})
}

// Crops returns every label Recommend can produce, in ladder order.
func Crops() []Crop {
	out := make([]Crop, 0, len(ladder)+1)
	for _, rl := range ladder {
		out = append(out, rl.crop)
	}
	return append(out, Millets)
}

// between reports whether lo <= v <= hi.
func between(v, lo, hi float64) bool {
	return v >= lo && v <= hi
}
