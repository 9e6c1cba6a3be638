// Command tween exposes the tween math library on the command line:
// color conversions between hex, RGB, and HSL, and cubic Bezier sampling.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/tweenkit/tween"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "tween",
	Short: "2D geometry, interpolation, and color conversion utilities",
	Long: `tween is a small calculator front-end for the tween math library.

It converts colors between packed hex, RGB, and HSL representations and
samples points and tangent headings along cubic Bezier curves.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			tween.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			})))
		}
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(colorCmd)
	rootCmd.AddCommand(curveCmd)
}

func main() {
	Execute()
}
