package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/evlasov/eshop/internal/constants"
	"github.com/evlasov/eshop/internal/log"
)

func Start() {
	logger := log.InitLogger(constants.LogFile).
		With().
		Str(log.KeyAppName, constants.AppEshop).
		Str(log.KeyTag, "main Start").
		Logger()

	logger.Info().Msg("adding listener for SIGINT and SIGTERM")
	c, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	logger.Info().Msg("added listener for SIGINT and SIGTERM")

	c = logger.WithContext(c)

	insertStartData := false
	serverCmd := &cobra.Command{
		Use:   "server",
		Short: "Run the eshop http server",
		Run: func(cmd *cobra.Command, args []string) {
			RunApp(cmd.Context(), insertStartData)
		},
	}
	serverCmd.Flags().
		BoolVar(&insertStartData, "insert-start-data", false, "seed the database with demo customers and products on startup")

	rootCmd := &cobra.Command{Use: constants.AppEshop}
	rootCmd.AddCommand(serverCmd)
	if err := rootCmd.ExecuteContext(c); err != nil {
		logger.Fatal().Err(err).Msgf("error when executing command=%s", err.Error())
	}
}
