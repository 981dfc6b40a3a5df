package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/aybabtme/mortgage/pkg/config"
	"github.com/aybabtme/mortgage/pkg/kvlog"
	"github.com/aybabtme/mortgage/pkg/payoff"
	"github.com/aybabtme/mortgage/pkg/schedule"
	"github.com/urfave/cli"
)

var (
	yearsFlag       = cli.IntFlag{Name: "years, y", Value: schedule.DefaultYears, Usage: "the term of the mortgage in years"}
	numPaymentsFlag = cli.IntFlag{Name: "num_annual_payments, n", Value: schedule.DefaultPaymentsPerYear, Usage: "the number of payments per year"}
	targetFlag      = cli.Float64Flag{Name: "target_payment, p", Usage: "the amount you want to pay per payment (default: the minimum payment)"}
	configFlag      = cli.StringFlag{Name: "config, c", Usage: "YAML file with defaults for years, num_annual_payments, max_payments and log_format"}
	maxPaymentsFlag = cli.IntFlag{Name: "max_payments", Value: payoff.DefaultMaxPayments, Usage: "give up after this many simulated payments"}
	traceFlag       = cli.BoolFlag{Name: "trace", Usage: "log every simulated payment to stderr"}
	logFormatFlag   = cli.StringFlag{Name: "log_format", Value: "pretty", Usage: "trace format, json or pretty"}
)

func main() {
	app := newApp(os.Stdout, os.Stderr)
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp(stdout, stderr io.Writer) *cli.App {
	app := cli.NewApp()
	app.Name = "mortgage"
	app.Usage = "perform fixed-rate mortgage calculations"
	app.ArgsUsage = "mortgage_amount annual_interest_rate"
	app.HideVersion = true
	app.Writer = stdout
	app.ErrWriter = stderr
	app.Flags = []cli.Flag{
		yearsFlag,
		numPaymentsFlag,
		targetFlag,
		configFlag,
		maxPaymentsFlag,
		traceFlag,
		logFormatFlag,
	}
	app.Action = func(cctx *cli.Context) error {
		in, cfg, err := parseInput(cctx)
		if err != nil {
			return err
		}
		trace := kvlog.LogMute()
		if cctx.Bool("trace") {
			trace, err = kvlog.ByFormat(cfg.LogFormat, stderr)
			if err != nil {
				return cli.NewExitError(err.Error(), 2)
			}
		}
		return run(stdout, in, trace, cfg.MaxPayments)
	}
	return app
}

func run(w io.Writer, in schedule.Input, trace kvlog.Logger, maxPayments int) error {
	res, err := schedule.Compute(in,
		payoff.WithLogger(trace.KVf("principal", in.Principal).KVf("annual_rate", in.AnnualRate)),
		payoff.WithMaxPayments(maxPayments),
	)
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}
	return render(w, res)
}

// parseInput reads the positional arguments and flags, falling back on the
// config file and then on built-in defaults.
func parseInput(cctx *cli.Context) (schedule.Input, config.Config, error) {
	cfg, err := config.Load(cctx.String("config"))
	if err != nil {
		return schedule.Input{}, config.Config{}, cli.NewExitError(err.Error(), 2)
	}
	if cctx.NArg() != 2 {
		return schedule.Input{}, config.Config{}, cli.NewExitError(
			fmt.Sprintf("expected 2 arguments, mortgage_amount and annual_interest_rate, got %d", cctx.NArg()), 2,
		)
	}
	in := schedule.Input{
		Years:           cfg.Years,
		PaymentsPerYear: cfg.NumAnnualPayments,
	}
	if in.Principal, err = parseFloatArg("mortgage_amount", cctx.Args().Get(0)); err != nil {
		return schedule.Input{}, config.Config{}, err
	}
	if in.AnnualRate, err = parseFloatArg("annual_interest_rate", cctx.Args().Get(1)); err != nil {
		return schedule.Input{}, config.Config{}, err
	}
	if cctx.IsSet("years") {
		in.Years = cctx.Int("years")
	}
	if cctx.IsSet("num_annual_payments") {
		in.PaymentsPerYear = cctx.Int("num_annual_payments")
	}
	if cctx.IsSet("target_payment") {
		target := cctx.Float64("target_payment")
		in.TargetPayment = &target
	}
	if cctx.IsSet("max_payments") {
		cfg.MaxPayments = cctx.Int("max_payments")
		if cfg.MaxPayments < 1 {
			return schedule.Input{}, config.Config{}, cli.NewExitError(
				fmt.Sprintf("max_payments must be positive, got %d", cfg.MaxPayments), 2,
			)
		}
	}
	if cctx.IsSet("log_format") {
		cfg.LogFormat = cctx.String("log_format")
	}
	if err := in.Validate(); err != nil {
		return schedule.Input{}, config.Config{}, cli.NewExitError(err.Error(), 1)
	}
	return in, cfg, nil
}

func parseFloatArg(name, v string) (float64, error) {
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, cli.NewExitError(fmt.Sprintf("argument %s: invalid float value: %q", name, v), 2)
	}
	return f, nil
}

func render(w io.Writer, res schedule.Result) error {
	_, err := fmt.Fprintf(w, "Minimum Payment: $%d\n%s\n", res.MinimumPayment, res.Message())
	return err
}
