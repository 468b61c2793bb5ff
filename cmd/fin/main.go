package main

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/komsit37/fin/pkg/fin/config"
	"github.com/komsit37/fin/pkg/fin/fetch"
	"github.com/komsit37/fin/pkg/fin/pipeline"
	"github.com/komsit37/fin/pkg/fin/render"
)

func main() {
	var (
		jsonOut  bool
		noColor  bool
		verbose  bool
		exchange string
	)

	rootCmd := &cobra.Command{
		Use:   "fin",
		Short: "Analyze an equity stock or an Indian mutual fund",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			viper.SetEnvPrefix("FIN")
			viper.AutomaticEnv()
		},
	}
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "output JSON instead of tables")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored verdicts")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.PersistentFlags().Duration("timeout", 10*time.Second, "fetch timeout")
	_ = viper.BindPFlag("timeout", rootCmd.PersistentFlags().Lookup("timeout"))

	newLogger := func() zerolog.Logger {
		level := zerolog.WarnLevel
		if verbose {
			level = zerolog.DebugLevel
		}
		return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()
	}
	newRenderer := func() render.Renderer {
		if jsonOut {
			return render.NewJSONRenderer()
		}
		return render.NewTableRenderer()
	}
	newOptions := func() render.Options {
		return render.Options{Color: !jsonOut && !noColor, PrettyJSON: true}
	}

	stockCmd := &cobra.Command{
		Use:   "stock <SYMBOL>",
		Short: "Benchmark a stock against its sector peers",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires exactly 1 stock symbol argument")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger()
			yahoo := fetch.NewYahooClient(viper.GetDuration("timeout"), log)
			runner := &pipeline.StockRunner{
				Data:     yahoo,
				Peers:    fetch.NewCachedMetrics(yahoo, 15*time.Minute, 64),
				Config:   config.Load(),
				Renderer: newRenderer(),
				Writer:   os.Stdout,
				Log:      log,
			}
			return runner.Execute(cmd.Context(), qualify(args[0], exchange), newOptions())
		},
	}
	stockCmd.Flags().StringVar(&exchange, "exchange", "NSE", "exchange suffix for bare symbols (NSE or BSE)")

	fundCmd := &cobra.Command{
		Use:   "fund <SCHEME_CODE>",
		Short: "Evaluate a mutual fund by its MFAPI scheme code",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires exactly 1 scheme code argument")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger()
			runner := &pipeline.FundRunner{
				Data:     fetch.NewMFAPIClient(viper.GetDuration("timeout"), log),
				Renderer: newRenderer(),
				Writer:   os.Stdout,
				Log:      log,
			}
			return runner.Execute(cmd.Context(), args[0], newOptions())
		},
	}

	rootCmd.AddCommand(stockCmd, fundCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// qualify appends the exchange suffix to bare symbols: RELIANCE with NSE
// becomes RELIANCE.NS. Symbols that already carry a suffix pass through.
func qualify(symbol, exchange string) string {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if strings.Contains(symbol, ".") {
		return symbol
	}
	if strings.EqualFold(exchange, "BSE") {
		return symbol + ".BO"
	}
	return symbol + ".NS"
}
