package web

import (
	"github.com/kavya-marri/portfolio-demos/internal/agro"
	"github.com/kavya-marri/portfolio-demos/internal/imaging"
)

// Captions shown under the two panels of the edge demo.
const (
	CaptionOriginal = "Original"
	CaptionEdges    = "Edges (detect-style)"
)

// cropRequest carries the seven form inputs of the crop demo. Bounds mirror
// the number inputs on the page; the advisor itself accepts any value.
type cropRequest struct {
	N           float64 `json:"n" form:"n" binding:"gte=0,lte=200"`
	P           float64 `json:"p" form:"p" binding:"gte=0,lte=200"`
	K           float64 `json:"k" form:"k" binding:"gte=0,lte=200"`
	Temperature float64 `json:"temperature" form:"temperature" binding:"gte=0,lte=50"`
	Humidity    float64 `json:"humidity" form:"humidity" binding:"gte=0,lte=100"`
	PH          float64 `json:"ph" form:"ph" binding:"gte=0,lte=14"`
	Rainfall    float64 `json:"rainfall" form:"rainfall" binding:"gte=0,lte=500"`
}

// defaultCropRequest holds the values the form starts with. Fields missing
// from a request keep these.
func defaultCropRequest() cropRequest {
	return cropRequest{
		N:           90,
		P:           60,
		K:           80,
		Temperature: 28,
		Humidity:    70,
		PH:          6.5,
		Rainfall:    120,
	}
}

func (r cropRequest) reading() agro.SoilReading {
	return agro.SoilReading{
		N:           r.N,
		P:           r.P,
		K:           r.K,
		Temperature: r.Temperature,
		Humidity:    r.Humidity,
		PH:          r.PH,
		Rainfall:    r.Rainfall,
	}
}

// cropResponse echoes the evaluated reading next to the recommendation.
type cropResponse struct {
	agro.Recommendation
	Reading agro.SoilReading `json:"reading"`
}

// panel is one captioned image of the side-by-side edge demo.
type panel struct {
	Caption string `json:"caption"`
	*imaging.EncodedImage
}

// edgesResponse is returned by POST /api/edges.
type edgesResponse struct {
	Original panel `json:"original"`
	Edges    panel `json:"edges"`
}
