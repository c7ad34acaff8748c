package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/lingium/math/cubature"
)

// RuleReport describes the fixed rule used for one dimension.
type RuleReport struct {
	Dim            int       `yaml:"dim" json:"dim"`
	Rule           string    `yaml:"rule" json:"rule"`
	EvalsPerRegion int       `yaml:"evals_per_region" json:"evals_per_region"`
	Rings          []int     `yaml:"rings,omitempty" json:"rings,omitempty"`
	Weights        []float64 `yaml:"weights,omitempty" json:"weights,omitempty"`
	LowerWeights   []float64 `yaml:"lower_weights,omitempty" json:"lower_weights,omitempty"`
}

func newRuleCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rule",
		Short: "Show the cubature rule structure for a dimension",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			report, err := ruleReport(a.cfg.Rule.Dim)
			if err != nil {
				return err
			}
			a.logger.WithField("dim", report.Dim).Debug("hcubature: rule built")

			return writeReport(cmd.OutOrStdout(), a.cfg.Output, report, report.writeText)
		},
	}
	cmd.Flags().Int("dim", 3, "dimension")
	bindFlags(a.v, "rule", cmd.Flags())

	return cmd
}

func ruleReport(dim int) (RuleReport, error) {
	if dim == 1 {
		return RuleReport{Dim: 1, Rule: "gauss-kronrod-7-15", EvalsPerRegion: cubature.EvalsPerRegion(1)}, nil
	}
	g, err := cubature.NewGenzMalik(dim)
	if err != nil {
		return RuleReport{}, err
	}
	r := RuleReport{Dim: dim, Rule: "genz-malik-7-5", EvalsPerRegion: g.Evals()}
	for ring := 0; ring < 4; ring++ {
		p, err := g.Nodes(ring)
		if err != nil {
			return RuleReport{}, err
		}
		r.Rings = append(r.Rings, len(p))
	}
	w, wd := g.Weights(), g.LowerWeights()
	r.Weights = w[:]
	r.LowerWeights = wd[:]

	return r, nil
}

func (r RuleReport) writeText(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "dim:              %d\nrule:             %s\nevals per region: %d\n", r.Dim, r.Rule, r.EvalsPerRegion); err != nil {
		return err
	}
	if len(r.Rings) == 0 {
		return nil
	}
	_, err := fmt.Fprintf(w, "rings:            %v\nweights:          %.10g\nlower weights:    %.10g\n", r.Rings, r.Weights, r.LowerWeights)

	return err
}
