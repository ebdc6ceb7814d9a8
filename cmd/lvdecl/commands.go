package main

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	latvian "github.com/cours-de-latin/latvian"
	"github.com/cours-de-latin/latvian/internal/config"
	"github.com/cours-de-latin/latvian/internal/logging"
)

// app is the state shared by all commands, set up before each run.
type app struct {
	cfgFile string
	cfg     *config.Config
	log     *zap.Logger
	reg     *latvian.Registry

	gender       string
	proper       bool
	noAr         bool
	palatalizedR bool
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.cfgFile, cmd.Flags())
	if err != nil {
		return err
	}
	log, err := logging.New(cfg.LogLevel, "console")
	if err != nil {
		return err
	}
	reg, err := latvian.LoadRegistry(cfg.SpecialCases...)
	if err != nil {
		return err
	}
	log.Debug("special cases loaded", zap.Int("entries", reg.Len()), zap.Strings("files", cfg.SpecialCases))
	a.cfg, a.log, a.reg = cfg, log, reg
	return nil
}

func (a *app) nounConfig() (latvian.Config, error) {
	cfg := latvian.DefaultConfig()
	gender, err := latvian.ParseGender(a.gender)
	if err != nil {
		return cfg, err
	}
	cfg.OverrideGender = gender
	cfg.ProperNoun = a.proper
	cfg.UseArWithInstrumental = !a.noAr
	cfg.UsePalatalizedR = a.palatalizedR
	return cfg, nil
}

func (a *app) noun(word string) (*latvian.Noun, error) {
	cfg, err := a.nounConfig()
	if err != nil {
		return nil, err
	}
	return a.reg.NewNoun(word, cfg)
}

func newRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:           "lvdecl",
		Short:         "Decline Latvian nouns",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (default lvdecl.yaml in the working directory)")
	pf.String("log-level", config.DefaultLogLevel, "log level: debug, info, warn, error")
	pf.StringSlice("special-cases", nil, "special-case YAML files to load")
	pf.StringVar(&a.gender, "gender", "", "override the gender: masculine or feminine")
	pf.BoolVar(&a.proper, "proper", false, "treat the word as a proper noun")
	pf.BoolVar(&a.noAr, "no-ar", false, "do not prefix instrumental forms with \"ar\"")
	pf.BoolVar(&a.palatalizedR, "palatalized-r", false, "use the r → ŗ alternation")

	cmd.AddCommand(
		newDeclineCmd(a),
		newFormCmd(a),
		newPalatalizeCmd(a),
		newGroupsCmd(a),
	)
	return cmd
}

func newDeclineCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "decline <word>",
		Short: "Print the full paradigm of a word",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := a.noun(args[0])
			if err != nil {
				return err
			}
			p, err := n.Paradigm()
			if err != nil {
				return err
			}
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(p)
			}
			renderParadigm(cmd.OutOrStdout(), p)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of a table")
	return cmd
}

// renderParadigm prints one row per case. Cells that do not exist are
// shown as "-".
func renderParadigm(w io.Writer, p latvian.Paradigm) {
	fmt.Fprintf(w, "%s (%s, %s)\n", p.Base, p.Group, p.Gender)

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Case", "Singular", "Plural"})
	cell := func(forms map[latvian.Case]string, c latvian.Case) string {
		if form, ok := forms[c]; ok {
			return form
		}
		return "-"
	}
	for _, c := range latvian.Cases {
		t.AppendRow(table.Row{c.String(), cell(p.Singular, c), cell(p.Plural, c)})
	}
	t.Render()
}

func newFormCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "form <word> <case> [singular|plural]",
		Short: "Print a single form",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := latvian.ParseCase(args[1])
			if err != nil {
				return err
			}
			num := latvian.Singular
			if len(args) == 3 {
				if num, err = latvian.ParseGNumber(args[2]); err != nil {
					return err
				}
			}
			n, err := a.noun(args[0])
			if err != nil {
				return err
			}
			form, err := n.Form(c, num)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), form)
			return nil
		},
	}
}

func newPalatalizeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "palatalize <root>",
		Short: "Print a root with its final consonant palatalized",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), latvian.Palatalize(args[0], a.palatalizedR))
			return nil
		},
	}
}

func newGroupsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "groups [group]",
		Short: "List the special-case words by declension group",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			only := latvian.DeclensionGroup(-1)
			if len(args) == 1 {
				g, err := latvian.ParseDeclensionGroup(args[0])
				if err != nil {
					return err
				}
				only = g
			}

			byGroup := make(map[latvian.DeclensionGroup][]string)
			for _, word := range a.reg.Words() {
				e, _ := a.reg.Lookup(word)
				if only >= 0 && e.Group != only {
					continue
				}
				byGroup[e.Group] = append(byGroup[e.Group], word)
			}
			groups := make([]latvian.DeclensionGroup, 0, len(byGroup))
			for g := range byGroup {
				groups = append(groups, g)
			}
			sort.Slice(groups, func(i, j int) bool { return groups[i] < groups[j] })

			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.SetStyle(table.StyleLight)
			t.AppendHeader(table.Row{"Group", "Count", "Words"})
			for _, g := range groups {
				t.AppendRow(table.Row{g.String(), len(byGroup[g]), strings.Join(byGroup[g], ", ")})
			}
			t.Render()
			return nil
		},
	}
}
