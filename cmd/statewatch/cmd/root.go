package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/statewatch/statewatch/module"
	"github.com/statewatch/statewatch/module/metrics"
	"github.com/statewatch/statewatch/notifications"
	"github.com/statewatch/statewatch/notifications/pubsub"
	"github.com/statewatch/statewatch/state"
	"github.com/statewatch/statewatch/tracker"
)

var log zerolog.Logger

var rootCmd = &cobra.Command{
	Use:   "statewatch",
	Short: "Run a state tracker and watch consumers react to random state changes",
	RunE:  run,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	log = zerolog.New(zerolog.NewConsoleWriter())

	cobra.OnInitialize(initConfig)

	rootCmd.Flags().Uint("updates", 2, "number of random state updates per phase")
	rootCmd.Flags().Int("watermark", int(notifications.DefaultWatermark), "boundary between low and high states")
	rootCmd.Flags().Duration("interval", 0, "pause between state updates")
	rootCmd.Flags().String("metrics-addr", "", "address for the prometheus /metrics endpoint, disabled when empty")
	rootCmd.Flags().String("loglevel", "debug", "log level (trace, debug, info, warn, error)")
}

// initConfig lets every flag be overridden by a STATEWATCH_* environment
// variable, with explicit flags taking precedence.
func initConfig() {
	viper.SetEnvPrefix("statewatch")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	if err := viper.BindPFlags(rootCmd.Flags()); err != nil {
		log.Fatal().Err(err).Msg("could not bind flags")
	}
}

func run(*cobra.Command, []string) error {
	level, err := zerolog.ParseLevel(viper.GetString("loglevel"))
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	log = log.Level(level)

	watermark := state.Value(viper.GetInt("watermark"))
	if err := watermark.Valid(); err != nil {
		return fmt.Errorf("invalid watermark: %w", err)
	}

	// without a metrics address the collector is a no-op and no server runs
	var collector module.Metrics = metrics.NewNoopCollector()
	if addr := viper.GetString("metrics-addr"); addr != "" {
		collector = metrics.NewNotificationsCollector()
		server := metrics.NewServer(log, addr)
		<-server.Ready()
		defer func() {
			<-server.Done()
		}()
	}

	dist := pubsub.NewStateDistributor(log, collector)
	track, err := tracker.NewStateTracker(dist, state.MinValue)
	if err != nil {
		return fmt.Errorf("could not create state tracker: %w", err)
	}

	low := notifications.NewLowStateConsumer(log, watermark)
	high := notifications.NewHighStateConsumer(log, watermark)
	track.Subscribe(notifications.NewLogConsumer(log))
	track.Subscribe(notifications.NewTelemetryConsumer(collector))
	track.Subscribe(low)
	track.Subscribe(high)

	// subscribing a consumer twice is ignored and logged
	track.Subscribe(low)

	updates := viper.GetUint("updates")
	interval := viper.GetDuration("interval")

	err = randomize(track, updates, interval)
	if err != nil {
		return err
	}

	track.Unsubscribe(high)
	// unsubscribing a consumer that is not subscribed is ignored and logged
	track.Unsubscribe(high)

	err = randomize(track, updates, interval)
	if err != nil {
		return err
	}

	// re-announce the final state to the remaining consumers
	err = track.Notify()
	if err != nil {
		return err
	}

	log.Info().
		Int("subscribers", dist.Size()).
		Uint64("updates", track.Updates()).
		Int("final_state", int(track.State())).
		Msg("demonstration complete")
	return nil
}

func randomize(track *tracker.StateTracker, updates uint, interval time.Duration) error {
	for i := uint(0); i < updates; i++ {
		if _, err := track.Randomize(); err != nil {
			return fmt.Errorf("could not apply random update: %w", err)
		}
		if interval > 0 {
			time.Sleep(interval)
		}
	}
	return nil
}
