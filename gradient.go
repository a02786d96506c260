package navtui

import (
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB is a 24-bit color sample from a gradient.
type RGB struct {
	R, G, B uint8
}

// GradientPreset is a sequence of color stops interpolated across rendered
// rows. Use one of the predefined presets or CustomGradient.
type GradientPreset struct {
	name  string
	stops []RGB
}

// Predefined gradients, matching their names.
var (
	GradientWarmToCold   = GradientPreset{"warm-to-cold", []RGB{{255, 10, 0}, {255, 255, 200}, {100, 200, 255}}}
	GradientRedToGreen   = GradientPreset{"red-to-green", []RGB{{255, 50, 50}, {255, 255, 100}, {50, 255, 50}}}
	GradientBlueToPurple = GradientPreset{"blue-to-purple", []RGB{{50, 100, 255}, {150, 50, 255}, {255, 50, 255}}}
	GradientSunset       = GradientPreset{"sunset", []RGB{{255, 0, 100}, {255, 100, 0}, {150, 0, 255}}}
	GradientOcean        = GradientPreset{"ocean", []RGB{{0, 50, 150}, {0, 150, 255}, {0, 255, 255}}}
	GradientForest       = GradientPreset{"forest", []RGB{{0, 100, 0}, {50, 200, 50}, {150, 255, 100}}}
	GradientFire         = GradientPreset{"fire", []RGB{{255, 0, 0}, {255, 100, 0}, {255, 255, 0}}}
	GradientRainbow      = GradientPreset{"rainbow", []RGB{
		{255, 0, 0}, {255, 255, 0}, {0, 255, 0}, {0, 255, 255}, {0, 0, 255}, {255, 0, 255}, {255, 0, 0},
	}}
)

// CustomGradient builds a preset from explicit color stops.
func CustomGradient(stops ...RGB) GradientPreset {
	return GradientPreset{name: "custom", stops: stops}
}

// Name returns the preset's name.
func (g GradientPreset) Name() string {
	return g.name
}

func (c RGB) colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

func fromColorful(c colorful.Color) RGB {
	cl := c.Clamped()
	return RGB{uint8(cl.R*255 + 0.5), uint8(cl.G*255 + 0.5), uint8(cl.B*255 + 0.5)}
}

// Colors interpolates the preset's stops into exactly steps samples.
// With randomize set the stop order is shuffled first, which mostly makes
// sense for the rainbow preset.
func (g GradientPreset) Colors(steps int, randomize bool) []RGB {
	if steps <= 0 {
		return nil
	}

	stops := g.stops
	if len(stops) == 0 {
		stops = []RGB{{255, 255, 255}}
	}
	if randomize && len(stops) > 1 {
		stops = append([]RGB(nil), stops...)
		rand.Shuffle(len(stops), func(i, j int) {
			stops[i], stops[j] = stops[j], stops[i]
		})
	}

	if len(stops) == 1 {
		out := make([]RGB, steps)
		for i := range out {
			out[i] = stops[0]
		}
		return out
	}

	out := make([]RGB, 0, steps)
	segments := len(stops) - 1
	for i := 0; i < steps; i++ {
		// Position in [0,1] across the whole gradient, then within a segment.
		pos := 0.0
		if steps > 1 {
			pos = float64(i) / float64(steps-1)
		}
		seg := int(pos * float64(segments))
		if seg >= segments {
			seg = segments - 1
		}
		local := pos*float64(segments) - float64(seg)

		blended := stops[seg].colorful().BlendRgb(stops[seg+1].colorful(), local)
		out = append(out, fromColorful(blended))
	}
	return out
}
