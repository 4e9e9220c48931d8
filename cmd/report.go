package cmd

import (
	"fmt"
	"os"

	ledgerDomain "github.com/bernatfelip/cuentas/pkg/domain/ledger"
	"github.com/bernatfelip/cuentas/pkg/domain/ledger/entity"
	csvfileRepository "github.com/bernatfelip/cuentas/pkg/domain/ledger/repository/csvfile"
	spreadsheetHandler "github.com/bernatfelip/cuentas/pkg/handlers/spreadsheet"
	reporterService "github.com/bernatfelip/cuentas/pkg/services/reporter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// reportCmd represents the report command
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Parse the ledger and write the fiscal year workbook",
	Run:   runReport,
}

var (
	ledgerFiles []string
	outputFile  string

	grantNames []string
	taxNames   []string

	initialBank   int64
	finalBank     int64
	initialPaypal int64
	finalPaypal   int64
)

func init() {
	rootCmd.AddCommand(reportCmd)
	reportCmd.Flags().StringArrayVarP(&ledgerFiles, "file", "f", nil, "paths to semicolon delimited ledger files, repeat for multiple statements")
	reportCmd.Flags().StringVarP(&outputFile, "out", "o", "Cuentas.xlsx", "path of the workbook to write")
	reportCmd.Flags().StringSliceVar(&grantNames, "grants", nil, "event names classified as grants")
	reportCmd.Flags().StringSliceVar(&taxNames, "taxes", nil, "event names classified as taxes")
	reportCmd.Flags().Int64Var(&initialBank, "initial-bank", 0, "opening bank balance in cents")
	reportCmd.Flags().Int64Var(&finalBank, "final-bank", 0, "closing bank balance in cents")
	reportCmd.Flags().Int64Var(&initialPaypal, "initial-paypal", 0, "opening paypal balance in cents")
	reportCmd.Flags().Int64Var(&finalPaypal, "final-paypal", 0, "closing paypal balance in cents")

	must(reportCmd.MarkFlagRequired("file"))

	must(viper.BindPFlag("out", reportCmd.Flags().Lookup("out")))
	must(viper.BindPFlag("grants", reportCmd.Flags().Lookup("grants")))
	must(viper.BindPFlag("taxes", reportCmd.Flags().Lookup("taxes")))
	must(viper.BindPFlag("initial-bank", reportCmd.Flags().Lookup("initial-bank")))
	must(viper.BindPFlag("final-bank", reportCmd.Flags().Lookup("final-bank")))
	must(viper.BindPFlag("initial-paypal", reportCmd.Flags().Lookup("initial-paypal")))
	must(viper.BindPFlag("final-paypal", reportCmd.Flags().Lookup("final-paypal")))
}

func runReport(cmd *cobra.Command, args []string) {
	log, err := zap.NewDevelopment()
	if err != nil {
		fmt.Printf("error initializing logger: %s \n", err)
		os.Exit(1)
	}
	err = reportWrapper(log, cmd, args)
	if err != nil {
		log.Fatal("error generating report", zap.Error(err))
	}
}

func reportWrapper(log *zap.Logger, cmd *cobra.Command, args []string) error {
	var repositories []ledgerDomain.Repository
	for _, ledgerFile := range ledgerFiles {
		repositories = append(repositories, csvfileRepository.New(log, ledgerFile))
	}

	classifier := reporterService.NewClassifier(
		toEventNames(viper.GetStringSlice("grants")),
		toEventNames(viper.GetStringSlice("taxes")),
	)
	liquidity := reporterService.Liquidity{
		InitialBank:   entity.Amount(viper.GetInt64("initial-bank")),
		FinalBank:     entity.Amount(viper.GetInt64("final-bank")),
		InitialPaypal: entity.Amount(viper.GetInt64("initial-paypal")),
		FinalPaypal:   entity.Amount(viper.GetInt64("final-paypal")),
	}

	ledgerSvc := ledgerDomain.NewService(repositories...)
	reporterSvc := reporterService.New(ledgerSvc, classifier)
	spreadsheet := spreadsheetHandler.New(log, reporterSvc)

	return spreadsheet.Write(viper.GetString("out"), liquidity)
}

func toEventNames(names []string) []entity.EventName {
	eventNames := make([]entity.EventName, 0, len(names))
	for _, name := range names {
		eventNames = append(eventNames, entity.EventName(name))
	}
	return eventNames
}
