package console

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var englishPrinter = message.NewPrinter(language.English)

// FormatNumber renders v with two decimals; values of 1000 and above also get
// thousands separators (1,234,567.89).
func FormatNumber(v float64) string {
	if v >= 1000 {
		return englishPrinter.Sprintf("%.2f", v)
	}
	return fmt.Sprintf("%.2f", v)
}

// palette holds the chart colours. Trend series use the first ten in order; distribution
// slices walk the whole list from an offset.
var palette = []string{
	"#3498db", "#e74c3c", "#2ecc71", "#f39c12", "#9b59b6", "#1abc9c", "#e67e22", "#34495e", "#16a085", "#c0392b",
	"#8e44ad", "#27ae60", "#d35400", "#2980b9", "#7f8c8d", "#e84393", "#fdcb6e", "#00b894", "#636e72", "#fd79a8",
	"#00cec9", "#6c5ce7", "#fab1a0", "#b2bec3", "#dfe6e9", "#e17055", "#00b8d4", "#b71540", "#f8c291", "#6ab04c",
	"#4834d4", "#130f40", "#535c68", "#30336b", "#be2edd", "#f6e58d", "#badc58", "#ff7979", "#eb4d4b", "#686de0",
	"#e056fd", "#7ed6df", "#e1b12c", "#0097e6", "#8c7ae6", "#fbc531", "#4cd137", "#487eb0", "#c23616", "#dff9fb",
}

const trendPaletteSize = 10

// TrendColor returns the hex colour of the i-th trend series.
func TrendColor(i int) string {
	return palette[i%trendPaletteSize]
}

// SliceColor returns the hex colour of the i-th distribution slice.
func SliceColor(i, offset int) string {
	return palette[(i+offset)%len(palette)]
}

func rgb(hex string) pterm.RGB {
	c, err := putils.RGBFromHEX(hex)
	if err != nil {
		return pterm.NewRGB(128, 128, 128)
	}
	return c
}
