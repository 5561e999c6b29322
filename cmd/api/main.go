package main

import (
	"context"
	"flag"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	_ "go.uber.org/automaxprocs"

	"github.com/tealiumiq/webformtags"
	"github.com/tealiumiq/webformtags/api/handler"
	"github.com/tealiumiq/webformtags/clock"
	"github.com/tealiumiq/webformtags/cmd"
	"github.com/tealiumiq/webformtags/database/redis"
	"github.com/tealiumiq/webformtags/delivery"
	"github.com/tealiumiq/webformtags/forms"
	webformhandler "github.com/tealiumiq/webformtags/handler"
	logging "github.com/tealiumiq/webformtags/logging/zerolog_adapter"
	"github.com/tealiumiq/webformtags/metrics"
	"github.com/tealiumiq/webformtags/templating"
	"github.com/xiam/to"
)

const serviceName = "api"

var (
	configFileName         = flag.String("config", "/etc/webformtags/api.yml", "Path to configuration file")
	printVersion           = flag.Bool("version", false, "Print version and exit")
	printDefaultConfigFlag = flag.Bool("default-config", false, "Print default config and exit")
)

// Webformtags api bin version
var (
	WebformtagsVersion = "unknown"
	GitCommit          = "unknown"
	GoVersion          = "unknown"
)

func main() {
	flag.Parse()
	if *printVersion {
		fmt.Println("Webformtags Api")
		fmt.Println("Version:", WebformtagsVersion)
		fmt.Println("Git Commit:", GitCommit)
		fmt.Println("Go Version:", GoVersion)
		os.Exit(0)
	}

	config := getDefault()
	if *printDefaultConfigFlag {
		cmd.PrintConfig(config)
		os.Exit(0)
	}

	err := cmd.ReadConfig(*configFileName, &config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Can not read settings: %s\n", err.Error())
		os.Exit(1)
	}

	apiConfig := config.API.getSettings()

	logger, err := logging.ConfigureLog(config.Logger.LogFile, config.Logger.LogLevel, serviceName, config.Logger.LogPrettyFormat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Can not configure log: %s\n", err.Error())
		os.Exit(1)
	}

	telemetry, err := cmd.ConfigureTelemetry(logger, config.Telemetry, serviceName)
	if err != nil {
		logger.Fatal().
			Error(err).
			Msg("Can not start telemetry")
	}
	defer telemetry.Stop()

	databaseSettings := config.Redis.GetSettings()
	database := redis.NewDatabase(logger, databaseSettings, redis.API)

	deliveryHelper := delivery.NewHelper(logger, telemetry.Metrics)
	if err := deliveryHelper.RegisterSenders(getSendersSettings(config.Senders), database); err != nil {
		logger.Fatal().
			Error(err).
			Msg("Can not configure senders")
	}

	if !deliveryHelper.HasSessionSender() {
		logger.Warning().
			String("sender_types", strings.Join(deliveryHelper.SenderTypes(), ",")).
			Msg("No session sender configured, tags of non-ajax webforms will not reach page views")
	}

	enumerator := forms.NewEnumerator(database, to.Duration(config.Webforms.CacheTTL))
	submissionHandlers, err := webformhandler.NewRegistry().ConfigureHandlers(
		config.Handlers,
		webformhandler.Dependencies{
			Logger:          logger,
			TokenResolver:   templating.NewTokenResolver(clock.NewSystemClock()),
			FieldEnumerator: enumerator,
			DeliveryHelper:  deliveryHelper,
			Metrics:         metrics.ConfigureHandlerMetrics(telemetry.Metrics),
		})
	if err != nil {
		logger.Fatal().
			Error(err).
			Msg("Can not configure handlers")
	}

	listener, err := net.Listen("tcp", apiConfig.Listen)
	if err != nil {
		logger.Fatal().
			Error(err).
			Msg("Failed to start listening")
	}

	logger.Info().
		String("listen_address", apiConfig.Listen).
		Msg("Start listening")

	httpHandler := handler.NewHandler(database, logger, apiConfig, enumerator, submissionHandlers)
	server := &http.Server{
		Handler:           httpHandler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		server.Serve(listener) //nolint
	}()
	defer Stop(logger, server)

	logger.Info().
		String("webformtags_version", WebformtagsVersion).
		Msg("Webformtags Api Started")

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	signal := fmt.Sprint(<-ch)
	logger.Info().
		String("signal", signal).
		Msg("Webformtags API shutting down.")
}

// Stop Webformtags API HTTP server
func Stop(logger webformtags.Logger, server *http.Server) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error().
			Error(err).
			Msg("Can't stop Webformtags API correctly")
	}

	logger.Info().
		String("webformtags_version", WebformtagsVersion).
		Msg("Webformtags API Stopped")
}
