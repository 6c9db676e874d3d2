package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"investingmenu/cmd"
	"investingmenu/internal"
	"investingmenu/internal/domain"
	"investingmenu/internal/repository"
)

func main() {
	_ = godotenv.Load()

	root := &cobra.Command{
		Use:   "investingmenu",
		Short: "Strategy menu screening and allocation service",
	}
	root.AddCommand(serveCommand(), validateCommand(), matrixCommand())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(c *cobra.Command, args []string) error {
			apiHandler, err := cmd.InitializeDependencies()
			if err != nil {
				return err
			}
			config, err := internal.LoadConfig()
			if err != nil {
				return err
			}
			return apiHandler.StartApi(config.Port)
		},
	}
}

func validateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <snapshot.csv>",
		Short: "Validate a dataset snapshot against the schema contract",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			dataset, err := loadDataset(args[0])
			if err != nil {
				return err
			}
			fmt.Printf("ok: %d strategies, %d model rows\n", len(dataset.Strategies), len(dataset.ModelRows))
			return nil
		},
	}
}

func matrixCommand() *cobra.Command {
	var collapseSma bool
	command := &cobra.Command{
		Use:   "matrix <snapshot.csv> <strategy>",
		Short: "Print the allocation matrix for a strategy",
		Args:  cobra.ExactArgs(2),
		RunE: func(c *cobra.Command, args []string) error {
			dataset, err := loadDataset(args[0])
			if err != nil {
				return err
			}
			matrix, err := internal.BuildMatrix(dataset, args[1], collapseSma)
			if err != nil {
				return err
			}
			if matrix.Empty() {
				fmt.Println("no allocation data for this strategy's model")
				return nil
			}

			fmt.Printf("%-40s", "")
			for _, level := range matrix.Columns {
				fmt.Printf("%8d", level)
			}
			fmt.Println()
			for _, row := range matrix.Rows {
				fmt.Printf("%-40s", rowLabel(row.Label, row.Ticker))
				for _, v := range row.Values {
					if v == nil {
						fmt.Printf("%8s", "")
						continue
					}
					fmt.Printf("%8.2f", *v)
				}
				fmt.Println()
			}
			return nil
		},
	}
	command.Flags().BoolVar(&collapseSma, "collapse-sma", true, "collapse SMA categories with many products")
	return command
}

func rowLabel(label, ticker string) string {
	if ticker != "" {
		return fmt.Sprintf("  %s (%s)", label, ticker)
	}
	return label
}

func loadDataset(path string) (*domain.Dataset, error) {
	datasetRepository := repository.NewDatasetRepository(repository.FileDatasetSource{Path: path})
	return datasetRepository.Load(context.Background())
}
