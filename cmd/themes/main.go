// Command themes is a live styling playground: press t to cycle theme
// presets and g to cycle gradients while navigating a sample menu.
package main

import (
	"fmt"
	"os"

	"navtui"
)

var gradients = []navtui.GradientPreset{
	navtui.GradientRainbow,
	navtui.GradientOcean,
	navtui.GradientSunset,
	navtui.GradientFire,
	navtui.GradientForest,
	navtui.GradientWarmToCold,
}

func main() {
	themes := []func(navtui.Builder) navtui.Builder{
		func(b navtui.Builder) navtui.Builder { return b.Minimal() },
		func(b navtui.Builder) navtui.Builder { return b.Fancy() },
		func(b navtui.Builder) navtui.Builder { return b.Retro() },
		func(b navtui.Builder) navtui.Builder { return b.Modern() },
	}
	themeNames := []string{"minimal", "fancy", "retro", "modern"}

	sections := []navtui.Section{
		navtui.BuildSection("Starters").
			AddItems("Soup", "Salad", "Bread", "Olives").
			Build(),
		navtui.BuildSection("Mains").
			AddItems("Curry", "Risotto", "Stew", "Noodles", "Tacos").
			Build(),
		navtui.BuildSection("Desserts").
			AddItems("Sorbet", "Cake", "Fruit").
			Build(),
	}

	themeIdx, gradientIdx := 1, 0

	nav := navtui.NewBuilder().
		Fancy().
		SectionTitle("Theme Playground").
		HelpText(
			"Enter - select | t - theme | g - gradient | q - quit",
			"Space - toggle | b/Esc - back | t - theme | g - gradient",
		).
		Shortcut('t', "cycle theme preset").
		Shortcut('g', "cycle gradient").
		AddSections(sections...).
		Build()

	nav.SetCustomCommandFunc(func(c byte, state navtui.NavState) bool {
		switch c {
		case 't':
			themeIdx = (themeIdx + 1) % len(themes)
			applied := themes[themeIdx](navtui.NewBuilder()).Build().Config()
			nav.UpdateTheme(applied.Theme)
			return true
		case 'g':
			gradientIdx = (gradientIdx + 1) % len(gradients)
			theme := nav.Config().Theme
			g := gradients[gradientIdx]
			theme.Gradient = &g
			nav.UpdateTheme(theme)
			return true
		}
		return false
	})

	nav.SetExitFunc(func([]navtui.Section) {
		fmt.Printf("last theme: %s, last gradient: %s\n",
			themeNames[themeIdx], gradients[gradientIdx].Name())
	})

	if err := nav.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "themes:", err)
		os.Exit(1)
	}
}
