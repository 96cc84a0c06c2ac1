// Package formatter renders crop recommendations for the command line.
package formatter

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"github.com/kavya-marri/portfolio-demos/internal/agro"
)

// Output formats accepted by Display.
const (
	FormatHuman = "human"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// Report is what gets printed: the reading and the advice derived from it.
type Report struct {
	Reading        agro.SoilReading    `json:"reading" yaml:"reading"`
	Recommendation agro.Recommendation `json:"recommendation" yaml:"recommendation"`
}

// Display writes the report to w in the given format.
func Display(w io.Writer, report Report, format string) error {
	switch format {
	case FormatJSON:
		return displayJSON(w, report)
	case FormatYAML:
		return displayYAML(w, report)
	case FormatHuman, "":
		return displayHuman(w, report)
	default:
		return fmt.Errorf("unknown output format %q (want human, json or yaml)", format)
	}
}

func displayJSON(w io.Writer, report Report) error {
	output, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(output))
	return err
}

func displayYAML(w io.Writer, report Report) error {
	output, err := yaml.Marshal(report)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(w, string(output))
	return err
}

func displayHuman(w io.Writer, report Report) error {
	green := color.New(color.FgGreen, color.Bold)
	yellow := color.New(color.FgYellow, color.Bold)
	cyan := color.New(color.FgCyan, color.Bold)

	r := report.Reading
	cyan.Fprintln(w, "Soil reading:")
	fmt.Fprintf(w, "   N %.1f  P %.1f  K %.1f\n", r.N, r.P, r.K)
	fmt.Fprintf(w, "   Temperature %.1f°C  Humidity %.1f%%  pH %.1f  Rainfall %.1f mm\n",
		r.Temperature, r.Humidity, r.PH, r.Rainfall)
	fmt.Fprintln(w)

	green.Fprint(w, "Recommended crop: ")
	fmt.Fprintln(w, report.Recommendation.Crop)

	if len(report.Recommendation.Notes) == 0 {
		return nil
	}
	fmt.Fprintln(w)
	yellow.Fprintln(w, "Notes:")
	for _, note := range report.Recommendation.Notes {
		if _, err := fmt.Fprintf(w, "   - %s\n", note); err != nil {
			return err
		}
	}
	return nil
}
