package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/image/colornames"

	"github.com/tweenkit/tween"
)

var colorCmd = &cobra.Command{
	Use:   "color <value>...",
	Short: "Convert colors between hex, RGB, and HSL",
	Long: `Convert one or more colors and print every representation.

A value is a hex color ("#ff8000", "0xff8000", "ff8000") or a CSS color
name ("rebeccapurple").`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, arg := range args {
			hex, err := parseColor(arg)
			if err != nil {
				return fmt.Errorf("parsing color %q: %w", arg, err)
			}
			printColor(cmd, arg, hex)
		}
		return nil
	},
}

// parseColor resolves a hex string or CSS color name to a packed hex color.
func parseColor(s string) (int, error) {
	name := strings.ToLower(s)
	if c, ok := colornames.Map[name]; ok {
		tween.Logger().Debug("resolved named color", "name", name)
		return tween.RGBToHex(int(c.R), int(c.G), int(c.B)), nil
	}

	h := strings.TrimPrefix(strings.TrimPrefix(name, "#"), "0x")
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("not a hex color or known color name")
	}
	if v > 0xFFFFFF {
		return 0, fmt.Errorf("value exceeds 24 bits")
	}
	return int(v), nil
}

func printColor(cmd *cobra.Command, name string, hex int) {
	r, g, b := tween.HexToRGB(hex)
	h, s, l := tween.HexToHSL(hex)
	cmd.Printf("%s:\n", name)
	cmd.Printf("  hex  #%06X\n", hex)
	cmd.Printf("  rgb  %d %d %d\n", r, g, b)
	cmd.Printf("  hsl  %.1f° %.1f%% %.1f%%\n", h*360, s*100, l*100)
}
