package main

import (
	"fmt"
	"io"
	"math"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/lingium/math/cubature"
	"github.com/lingium/math/genz"
)

// progressEvery is the split interval between Debug progress lines.
const progressEvery = 1000

// IntegrateReport is the outcome of one integrate run.
type IntegrateReport struct {
	Family      string  `yaml:"family" json:"family"`
	Dim         int     `yaml:"dim" json:"dim"`
	Seed        int64   `yaml:"seed" json:"seed"`
	Value       float64 `yaml:"value" json:"value"`
	Error       float64 `yaml:"error" json:"error"`
	Exact       float64 `yaml:"exact" json:"exact"`
	ActualError float64 `yaml:"actual_error" json:"actual_error"`
	Evals       int     `yaml:"evals" json:"evals"`
	Splits      int     `yaml:"splits" json:"splits"`
	Regions     int     `yaml:"regions" json:"regions"`
	Status      string  `yaml:"status" json:"status"`
}

func newIntegrateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "integrate",
		Short: "Integrate a Genz test family over the unit cube",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			report, err := runIntegrate(a.cfg.Integrate, a.logger)
			if err != nil {
				return err
			}

			return writeReport(cmd.OutOrStdout(), a.cfg.Output, report, report.writeText)
		},
	}

	f := cmd.Flags()
	f.String("family", "gaussian", "test family: oscillatory, product-peak, corner-peak, gaussian, continuous, discontinuous")
	f.Int("dim", 3, "dimension")
	f.Int64("seed", 0, "parameter seed (0 = default)")
	f.Float64("difficulty", 0, "sum of the sharpness coefficients (0 = family default)")
	f.Int("max-eval", 100000, "evaluation budget (0 = unlimited)")
	f.Float64("abs-tol", 0, "absolute error tolerance")
	f.Float64("rel-tol", 1e-6, "relative error tolerance")
	f.Bool("concurrent", false, "evaluate both halves of a split concurrently")
	bindFlags(a.v, "integrate", f)

	return cmd
}

// runIntegrate draws the problem, integrates it and compares with the
// closed form.
func runIntegrate(c IntegrateConfig, logger *logrus.Logger) (IntegrateReport, error) {
	fam, err := genz.ParseFamily(c.Family)
	if err != nil {
		return IntegrateReport{}, err
	}
	difficulty := c.Difficulty
	if difficulty == 0 {
		difficulty = fam.Difficulty()
	}
	p, err := genz.NewParamsWithDifficulty(fam, c.Dim, c.Seed, difficulty)
	if err != nil {
		return IntegrateReport{}, err
	}
	f, err := genz.Integrand(fam)
	if err != nil {
		return IntegrateReport{}, err
	}
	exact, err := genz.Exact(fam, p)
	if err != nil {
		return IntegrateReport{}, err
	}

	log := logger.WithFields(logrus.Fields{"family": fam.String(), "dim": c.Dim, "seed": c.Seed})
	opts := []cubature.Option{cubature.WithLogger(logger)}
	if c.Concurrent {
		opts = append(opts, cubature.WithConcurrentSplits())
	}
	if logger.IsLevelEnabled(logrus.DebugLevel) {
		opts = append(opts, cubature.WithOnSplit(func(ev cubature.SplitEvent) {
			if ev.Iteration%progressEvery == 0 {
				log.WithFields(logrus.Fields{
					"splits": ev.Iteration,
					"evals":  ev.Evals,
					"value":  ev.Value,
					"error":  ev.Error,
				}).Debug("hcubature: progress")
			}
		}))
	}

	log.Info("hcubature: integrating")
	lo, hi := genz.UnitCube(c.Dim)
	res, err := cubature.Integrate(f, p, c.Dim, lo, hi, c.MaxEval, c.AbsTol, c.RelTol, opts...)
	if err != nil {
		return IntegrateReport{}, err
	}
	if res.Status != cubature.StatusConverged {
		log.WithField("status", res.Status.String()).Warn("hcubature: tolerance not reached")
	}

	return IntegrateReport{
		Family:      fam.String(),
		Dim:         c.Dim,
		Seed:        c.Seed,
		Value:       res.Value,
		Error:       res.Error,
		Exact:       exact,
		ActualError: math.Abs(res.Value - exact),
		Evals:       res.Evals,
		Splits:      res.Splits,
		Regions:     res.Regions,
		Status:      res.Status.String(),
	}, nil
}

func (r IntegrateReport) writeText(w io.Writer) error {
	_, err := fmt.Fprintf(w,
		"family:       %s\ndim:          %d\nseed:         %d\nvalue:        %.15g\nerror:        %.3e\nexact:        %.15g\nactual error: %.3e\nevals:        %d\nsplits:       %d\nregions:      %d\nstatus:       %s\n",
		r.Family, r.Dim, r.Seed, r.Value, r.Error, r.Exact, r.ActualError, r.Evals, r.Splits, r.Regions, r.Status)

	return err
}
