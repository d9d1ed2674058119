package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/jsvensson/huematch"
	"github.com/jsvensson/huematch/internal/color"
	"github.com/jsvensson/huematch/internal/deltae"
	"github.com/jsvensson/huematch/internal/finder"
	"github.com/jsvensson/huematch/internal/palette"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

var version = "dev" // Injected at build time via ldflags

var log = commonlog.GetLogger("huematch.cli")

var errNeedsFormatting = errors.New("files need formatting")

type app struct {
	formula     string
	weights     string
	palettePath string
	verbose     int
	count       int
	threshold   float64
	swatch      bool
	check       bool
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:           "huematch",
		Short:         "Name colors by finding the closest colors in a palette",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			commonlog.Configure(a.verbose, nil)
		},
	}

	findCmd := &cobra.Command{
		Use:   "find <hex>...",
		Short: "Print the nearest palette color for each input",
		Args:  cobra.MinimumNArgs(1),
		RunE:  a.runFind,
	}

	closestCmd := &cobra.Command{
		Use:   "closest <hex>",
		Short: "Print palette colors ranked by distance from the input",
		Args:  cobra.ExactArgs(1),
		RunE:  a.runClosest,
	}

	convertCmd := &cobra.Command{
		Use:   "convert <hex>...",
		Short: "Print the RGB, XYZ and Lab values of each input",
		Args:  cobra.MinimumNArgs(1),
		RunE:  a.runConvert,
	}

	diffCmd := &cobra.Command{
		Use:   "diff <hex> <hex>",
		Short: "Print the color difference between two colors under every formula",
		Args:  cobra.ExactArgs(2),
		RunE:  a.runDiff,
	}

	paletteCmd := &cobra.Command{
		Use:   "palette",
		Short: "List the active palette with Lab values",
		Args:  cobra.NoArgs,
		RunE:  a.runPalette,
	}

	fmtCmd := &cobra.Command{
		Use:   "fmt [files...]",
		Short: "Format " + palette.Ext + " files",
		Long:  "Format one or more " + palette.Ext + " files in-place. Prints the name of each file that was modified.",
		Args:  cobra.MinimumNArgs(1),
		RunE:  a.runFmt,
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&a.formula, "formula", "f", "76", `delta-E formula: "76", "94" or "2000"`)
	pf.StringVar(&a.weights, "weights", "graphic-arts", `CIE94 weights: "graphic-arts" or "textiles"`)
	pf.StringVarP(&a.palettePath, "palette", "p", "", "palette file to search instead of the built-in palette")
	pf.CountVarP(&a.verbose, "verbose", "v", "increase log verbosity")

	for _, cmd := range []*cobra.Command{findCmd, closestCmd, paletteCmd} {
		cmd.Flags().BoolVarP(&a.swatch, "swatch", "s", false, "print a color swatch before each color")
	}
	closestCmd.Flags().IntVarP(&a.count, "count", "n", finder.DefaultCount, "number of colors to print")
	closestCmd.Flags().Float64VarP(&a.threshold, "threshold", "t", 0, "print every color within this distance instead of --count colors")
	fmtCmd.Flags().BoolVarP(&a.check, "check", "c", false, "check if files are formatted (do not write changes)")

	rootCmd.AddCommand(findCmd, closestCmd, convertCmd, diffCmd, paletteCmd, fmtCmd, versionCmd)
	return rootCmd
}

// searchOptions resolves search settings. A palette file's defaults apply
// unless the matching flag was set explicitly.
func (a *app) searchOptions(cmd *cobra.Command) (finder.Options, error) {
	var opts finder.Options
	flags := cmd.Flags()

	if a.palettePath != "" {
		p, err := huematch.LoadPalette(a.palettePath)
		if err != nil {
			return opts, err
		}
		opts = p.Options
	}

	if a.palettePath == "" || flags.Changed("formula") {
		f, err := deltae.ParseFormula(a.formula)
		if err != nil {
			return opts, err
		}
		opts.Formula = f
	}

	if opts.Weights == nil || flags.Changed("weights") {
		w, err := deltae.ParseWeights(a.weights)
		if err != nil {
			return opts, err
		}
		opts.Weights = &w
	}

	if flags.Lookup("count") != nil && (opts.Count == 0 || flags.Changed("count")) {
		if a.count < 1 {
			return opts, fmt.Errorf("invalid count %d: must be at least 1", a.count)
		}
		opts.Count = a.count
	}

	if flags.Changed("threshold") {
		if a.threshold < 0 {
			return opts, fmt.Errorf("invalid threshold %v: must not be negative", a.threshold)
		}
		t := a.threshold
		opts.Threshold = &t
	}

	if opts.Palette == nil {
		opts.Palette = palette.BuiltinWithLab()
	}
	log.Debugf("searching %d colors with %s", len(opts.Palette), opts.Formula.Name())
	return opts, nil
}

// swatchFunc returns a function rendering a color swatch for w, or one
// rendering nothing when swatches are off.
func (a *app) swatchFunc(w io.Writer) func(hex string) string {
	if !a.swatch {
		return func(string) string { return "" }
	}
	out := termenv.NewOutput(w)
	return func(hex string) string {
		return out.String("  ").Background(out.Color(hex)).String() + " "
	}
}

func newTabWriter(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func (a *app) runFind(cmd *cobra.Command, args []string) error {
	opts, err := a.searchOptions(cmd)
	if err != nil {
		return err
	}

	swatch := a.swatchFunc(cmd.OutOrStdout())
	tw := newTabWriter(cmd.OutOrStdout())
	for _, arg := range args {
		m, err := finder.FindNearest(arg, opts)
		if err != nil {
			return err
		}
		input, _ := color.NormalizeHex(arg)
		if m == nil {
			fmt.Fprintf(tw, "%s%s\tno match\n", swatch(input), input)
			continue
		}
		fmt.Fprintf(tw, "%s%s\t%s%s\t%s\t%.2f\n", swatch(input), input, swatch(m.Hex), m.Name, m.Hex, m.Distance)
	}
	return tw.Flush()
}

func (a *app) runClosest(cmd *cobra.Command, args []string) error {
	opts, err := a.searchOptions(cmd)
	if err != nil {
		return err
	}

	matches, err := finder.FindAllClosest(args[0], opts)
	if err != nil {
		return err
	}

	swatch := a.swatchFunc(cmd.OutOrStdout())
	tw := newTabWriter(cmd.OutOrStdout())
	for i, m := range matches {
		fmt.Fprintf(tw, "%d\t%s%s\t%s\t%.2f\n", i+1, swatch(m.Hex), m.Name, m.Hex, m.Distance)
	}
	return tw.Flush()
}

func (a *app) runConvert(cmd *cobra.Command, args []string) error {
	tw := newTabWriter(cmd.OutOrStdout())
	for _, arg := range args {
		rgb, err := color.ParseHex(arg)
		if err != nil {
			return err
		}
		xyz := color.RGBToXYZ(rgb)
		lab := color.XYZToLab(xyz)

		fmt.Fprintf(tw, "%s\n", rgb.Hex())
		fmt.Fprintf(tw, "  rgb\t%s\n", rgb.CSS())
		fmt.Fprintf(tw, "  xyz\t%.4f\t%.4f\t%.4f\n", xyz.X, xyz.Y, xyz.Z)
		fmt.Fprintf(tw, "  lab\t%.4f\t%.4f\t%.4f\n", lab.L, lab.A, lab.B)
	}
	return tw.Flush()
}

func (a *app) runDiff(cmd *cobra.Command, args []string) error {
	var labs [2]color.Lab
	for i, arg := range args {
		rgb, err := color.ParseHex(arg)
		if err != nil {
			return err
		}
		labs[i] = rgb.Lab()
	}

	w, err := deltae.ParseWeights(a.weights)
	if err != nil {
		return err
	}

	tw := newTabWriter(cmd.OutOrStdout())
	fmt.Fprintf(tw, "%s\t%.4f\n", deltae.FormulaCIE76.Name(), deltae.CIE76(labs[0], labs[1]))
	fmt.Fprintf(tw, "%s\t%.4f\t(reversed %.4f)\n", deltae.FormulaCIE94.Name(),
		deltae.CIE94(labs[0], labs[1], w), deltae.CIE94(labs[1], labs[0], w))
	fmt.Fprintf(tw, "%s\t%.4f\n", deltae.FormulaCIEDE2000.Name(), deltae.CIEDE2000(labs[0], labs[1]))
	return tw.Flush()
}

func (a *app) runPalette(cmd *cobra.Command, args []string) error {
	opts, err := a.searchOptions(cmd)
	if err != nil {
		return err
	}

	swatch := a.swatchFunc(cmd.OutOrStdout())
	tw := newTabWriter(cmd.OutOrStdout())
	for _, e := range opts.Palette {
		fmt.Fprintf(tw, "%s%s\t%s\t%.2f\t%.2f\t%.2f\n", swatch(e.Hex), e.Name, e.Hex, e.Lab.L, e.Lab.A, e.Lab.B)
	}
	return tw.Flush()
}

func (a *app) runFmt(cmd *cobra.Command, args []string) error {
	hasErrors := false
	needsFormatting := false

	for _, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error reading %s: %v\n", path, err)
			hasErrors = true
			continue
		}

		content := string(data)
		formatted := palette.Format(content)
		if formatted == content {
			continue
		}

		fmt.Fprintln(cmd.OutOrStdout(), path)
		needsFormatting = true

		if !a.check {
			if err := os.WriteFile(path, []byte(formatted), 0o644); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Error writing %s: %v\n", path, err)
				hasErrors = true
			}
		}
	}

	if hasErrors {
		return errors.New("formatting failed")
	}
	if a.check && needsFormatting {
		return errNeedsFormatting
	}
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errNeedsFormatting) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}
