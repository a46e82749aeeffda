// Command sciform formats numbers from the command line. Values are read
// from the arguments, or from stdin one per line, and written to stdout.
//
//	sciform --spec '!4r' 12345.678
//	sciform --exp-mode scientific --sig-figs 3 --uncertainty 0.0034 12.3457
//	seq 1024 1024 10240 | sciform --spec '#bp'
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/sciform/sciform"
	"github.com/sciform/sciform/mode"
)

type cliFlags struct {
	spec        string
	uncertainty string
	configFile  string
	output      string

	expMode   string
	expVal    int
	sigFigs   int
	decPlaces int
	signMode  string
	expFormat string

	upperSep   string
	decimalSep string
	lowerSep   string

	capitalize  bool
	superscript bool
	latex       bool
	nanInfExp   bool
	paren       bool
	pdg         bool
	quiet       bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "sciform:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	f := &cliFlags{}

	cmd := &cobra.Command{
		Use:           "sciform [numbers...]",
		Short:         "Format numbers in scientific notation conventions",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, f, args)
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&f.spec, "spec", "", "format specification string, e.g. '!4r'")
	fl.StringVarP(&f.uncertainty, "uncertainty", "u", "", "uncertainty paired with each value")
	fl.StringVar(&f.configFile, "config", "", "YAML file with default options")
	fl.StringVarP(&f.output, "output", "o", "plain", "output rendering: plain, latex, html or ascii")

	fl.StringVar(&f.expMode, "exp-mode", "", "exponent mode: fixed, percent, scientific, engineering, engineering-shifted, binary or binary-iec")
	fl.IntVar(&f.expVal, "exp-val", 0, "fixed exponent value")
	fl.IntVar(&f.sigFigs, "sig-figs", 0, "round to a number of significant figures")
	fl.IntVar(&f.decPlaces, "dec-places", 0, "round to a number of decimal places")
	fl.StringVar(&f.signMode, "sign", "", "sign mode: negative, always or space")
	fl.StringVar(&f.expFormat, "exp-format", "", "exponent format: standard, prefix or parts-per")

	fl.StringVar(&f.upperSep, "upper-sep", "", "digit group separator above the decimal point")
	fl.StringVar(&f.decimalSep, "decimal-sep", "", "decimal point character")
	fl.StringVar(&f.lowerSep, "lower-sep", "", "digit group separator below the decimal point")

	fl.BoolVar(&f.capitalize, "capitalize", false, "upper-case exponent symbols and non-finite values")
	fl.BoolVar(&f.superscript, "superscript", false, "render the exponent as a Unicode superscript")
	fl.BoolVar(&f.latex, "latex", false, "render LaTeX math-mode output")
	fl.BoolVar(&f.nanInfExp, "nan-inf-exp", false, "attach exponent strings to nan/inf")
	fl.BoolVar(&f.paren, "paren-uncertainty", false, "render the uncertainty in parentheses")
	fl.BoolVar(&f.pdg, "pdg-sig-figs", false, "apply the PDG significant-figure rule to uncertainties")
	fl.BoolVarP(&f.quiet, "quiet", "q", false, "suppress formatting warnings")

	return cmd
}

func run(cmd *cobra.Command, f *cliFlags, args []string) error {
	opts, err := collectOptions(cmd, f)
	if err != nil {
		return err
	}

	var formatter *sciform.Formatter
	if f.spec != "" {
		formatter, err = sciform.NewFormatterFromSpec(f.spec, opts...)
	} else {
		formatter, err = sciform.NewFormatter(opts...)
	}
	if err != nil {
		return err
	}

	values := args
	if len(values) == 0 {
		values, err = readLines(cmd.InOrStdin())
		if err != nil {
			return err
		}
	}

	for _, val := range values {
		res, err := formatOne(formatter, val, f.uncertainty)
		if err != nil {
			return fmt.Errorf("%s: %w", val, err)
		}
		if !f.quiet {
			for _, w := range res.Warnings() {
				fmt.Fprintln(cmd.ErrOrStderr(), "warning:", w)
			}
		}
		fmt.Fprintln(cmd.OutOrStdout(), renderOutput(res, f.output))
	}

	return nil
}

func formatOne(f *sciform.Formatter, val, unc string) (sciform.Formatted, error) {
	if unc != "" {
		return f.FormatStringUncertainty(val, unc)
	}

	return f.FormatString(val)
}

func renderOutput(res sciform.Formatted, output string) string {
	switch output {
	case "latex":
		return res.Latex()
	case "html":
		return res.HTML()
	case "ascii":
		return res.ASCII()
	default:
		return res.String()
	}
}

// collectOptions merges the config file with the explicitly set flags,
// flags last so they win.
func collectOptions(cmd *cobra.Command, f *cliFlags) ([]sciform.Option, error) {
	var opts []sciform.Option

	if f.configFile != "" {
		fileOpts, err := loadConfigFile(f.configFile)
		if err != nil {
			return nil, err
		}
		opts = append(opts, fileOpts...)
	}

	if f.output != "plain" && f.output != "latex" && f.output != "html" && f.output != "ascii" {
		return nil, fmt.Errorf("unknown output rendering %q", f.output)
	}

	if f.expMode != "" {
		m, err := mode.ParseExpMode(f.expMode)
		if err != nil {
			return nil, err
		}
		opts = append(opts, sciform.WithExpMode(m))
	}
	if cmd.Flags().Changed("exp-val") {
		opts = append(opts, sciform.WithExpVal(f.expVal))
	}
	if cmd.Flags().Changed("sig-figs") {
		opts = append(opts, sciform.WithSigFigs(f.sigFigs))
	}
	if cmd.Flags().Changed("dec-places") {
		opts = append(opts, sciform.WithDecPlaces(f.decPlaces))
	}
	if f.signMode != "" {
		m, err := mode.ParseSignMode(f.signMode)
		if err != nil {
			return nil, err
		}
		opts = append(opts, sciform.WithSignMode(m))
	}
	if f.expFormat != "" {
		ef, err := mode.ParseExpFormat(f.expFormat)
		if err != nil {
			return nil, err
		}
		opts = append(opts, sciform.WithExpFormat(ef))
	}

	if cmd.Flags().Changed("upper-sep") {
		opts = append(opts, sciform.WithUpperSeparator(mode.Separator(f.upperSep)))
	}
	if cmd.Flags().Changed("decimal-sep") {
		opts = append(opts, sciform.WithDecimalSeparator(mode.Separator(f.decimalSep)))
	}
	if cmd.Flags().Changed("lower-sep") {
		opts = append(opts, sciform.WithLowerSeparator(mode.Separator(f.lowerSep)))
	}

	if f.capitalize {
		opts = append(opts, sciform.WithCapitalize(true))
	}
	if f.superscript {
		opts = append(opts, sciform.WithSuperscript(true))
	}
	if f.latex {
		opts = append(opts, sciform.WithLatex(true))
	}
	if f.nanInfExp {
		opts = append(opts, sciform.WithNaNInfExp(true))
	}
	if f.paren {
		opts = append(opts, sciform.WithParenUncertainty(true))
	}
	if f.pdg {
		opts = append(opts, sciform.WithPDGSigFigs(true))
	}

	return opts, nil
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Text()
		if line != "" {
			lines = append(lines, line)
		}
	}

	return lines, sc.Err()
}

// fileConfig mirrors the option surface in YAML form. Absent keys leave
// the corresponding option unset.
type fileConfig struct {
	ExpMode   *string `yaml:"exp_mode"`
	ExpVal    *int    `yaml:"exp_val"`
	RoundMode *string `yaml:"round_mode"`
	NDigits   *int    `yaml:"ndigits"`

	UpperSeparator   *string `yaml:"upper_separator"`
	DecimalSeparator *string `yaml:"decimal_separator"`
	LowerSeparator   *string `yaml:"lower_separator"`

	SignMode        *string `yaml:"sign_mode"`
	LeftPadChar     *string `yaml:"left_pad_char"`
	LeftPadDecPlace *int    `yaml:"left_pad_dec_place"`

	ExpFormat          *string         `yaml:"exp_format"`
	ExtraSIPrefixes    map[int]*string `yaml:"extra_si_prefixes"`
	ExtraIECPrefixes   map[int]*string `yaml:"extra_iec_prefixes"`
	ExtraPartsPerForms map[int]*string `yaml:"extra_parts_per_forms"`

	Capitalize  *bool `yaml:"capitalize"`
	Superscript *bool `yaml:"superscript"`
	Latex       *bool `yaml:"latex"`
	NaNInfExp   *bool `yaml:"nan_inf_exp"`

	ParenUncertainty           *bool `yaml:"paren_uncertainty"`
	PDGSigFigs                 *bool `yaml:"pdg_sig_figs"`
	LeftPadMatching            *bool `yaml:"left_pad_matching"`
	ParenUncertaintySeparators *bool `yaml:"paren_uncertainty_separators"`
	PMWhitespace               *bool `yaml:"pm_whitespace"`
}

func loadConfigFile(path string) ([]sciform.Option, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg fileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	return cfg.options()
}

func (cfg *fileConfig) options() ([]sciform.Option, error) {
	var opts []sciform.Option

	if cfg.ExpMode != nil {
		m, err := mode.ParseExpMode(*cfg.ExpMode)
		if err != nil {
			return nil, err
		}
		opts = append(opts, sciform.WithExpMode(m))
	}
	if cfg.ExpVal != nil {
		opts = append(opts, sciform.WithExpVal(*cfg.ExpVal))
	}
	if cfg.RoundMode != nil {
		m, err := mode.ParseRoundMode(*cfg.RoundMode)
		if err != nil {
			return nil, err
		}
		opts = append(opts, sciform.WithRoundMode(m))
	}
	if cfg.NDigits != nil {
		opts = append(opts, sciform.WithNDigits(*cfg.NDigits))
	}

	if cfg.UpperSeparator != nil {
		opts = append(opts, sciform.WithUpperSeparator(mode.Separator(*cfg.UpperSeparator)))
	}
	if cfg.DecimalSeparator != nil {
		opts = append(opts, sciform.WithDecimalSeparator(mode.Separator(*cfg.DecimalSeparator)))
	}
	if cfg.LowerSeparator != nil {
		opts = append(opts, sciform.WithLowerSeparator(mode.Separator(*cfg.LowerSeparator)))
	}

	if cfg.SignMode != nil {
		m, err := mode.ParseSignMode(*cfg.SignMode)
		if err != nil {
			return nil, err
		}
		opts = append(opts, sciform.WithSignMode(m))
	}
	if cfg.LeftPadChar != nil {
		if len(*cfg.LeftPadChar) != 1 {
			return nil, fmt.Errorf("left_pad_char must be a single character, got %q", *cfg.LeftPadChar)
		}
		opts = append(opts, sciform.WithLeftPadChar((*cfg.LeftPadChar)[0]))
	}
	if cfg.LeftPadDecPlace != nil {
		opts = append(opts, sciform.WithLeftPadDecPlace(*cfg.LeftPadDecPlace))
	}

	if cfg.ExpFormat != nil {
		ef, err := mode.ParseExpFormat(*cfg.ExpFormat)
		if err != nil {
			return nil, err
		}
		opts = append(opts, sciform.WithExpFormat(ef))
	}
	if cfg.ExtraSIPrefixes != nil {
		opts = append(opts, sciform.WithExtraSIPrefixes(cfg.ExtraSIPrefixes))
	}
	if cfg.ExtraIECPrefixes != nil {
		opts = append(opts, sciform.WithExtraIECPrefixes(cfg.ExtraIECPrefixes))
	}
	if cfg.ExtraPartsPerForms != nil {
		opts = append(opts, sciform.WithExtraPartsPerForms(cfg.ExtraPartsPerForms))
	}

	if cfg.Capitalize != nil {
		opts = append(opts, sciform.WithCapitalize(*cfg.Capitalize))
	}
	if cfg.Superscript != nil {
		opts = append(opts, sciform.WithSuperscript(*cfg.Superscript))
	}
	if cfg.Latex != nil {
		opts = append(opts, sciform.WithLatex(*cfg.Latex))
	}
	if cfg.NaNInfExp != nil {
		opts = append(opts, sciform.WithNaNInfExp(*cfg.NaNInfExp))
	}

	if cfg.ParenUncertainty != nil {
		opts = append(opts, sciform.WithParenUncertainty(*cfg.ParenUncertainty))
	}
	if cfg.PDGSigFigs != nil {
		opts = append(opts, sciform.WithPDGSigFigs(*cfg.PDGSigFigs))
	}
	if cfg.LeftPadMatching != nil {
		opts = append(opts, sciform.WithLeftPadMatching(*cfg.LeftPadMatching))
	}
	if cfg.ParenUncertaintySeparators != nil {
		opts = append(opts, sciform.WithParenUncertaintySeparators(*cfg.ParenUncertaintySeparators))
	}
	if cfg.PMWhitespace != nil {
		opts = append(opts, sciform.WithPMWhitespace(*cfg.PMWhitespace))
	}

	return opts, nil
}
