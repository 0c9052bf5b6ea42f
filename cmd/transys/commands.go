package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rfielding/transys/transys"
)

var showCmd = &cobra.Command{
	Use:   "show <model.toml>",
	Short: "Print the states, labels and transitions of a model",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ts, err := loadModel(args[0])
		if err != nil {
			return err
		}
		fmt.Print(ts)
		return nil
	},
}

var (
	exportFormat string
	exportOut    string
)

var exportCmd = &cobra.Command{
	Use:   "export <model.toml>",
	Short: "Export a model to Graphviz DOT or Promela",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ts, err := loadModel(args[0])
		if err != nil {
			return err
		}
		var out string
		switch exportFormat {
		case "dot":
			out = ts.DotString()
		case "promela":
			out = ts.PromelaString("")
		default:
			return fmt.Errorf("unknown format %q (want dot or promela)", exportFormat)
		}
		if exportOut == "" {
			fmt.Print(out)
			return nil
		}
		return os.WriteFile(exportOut, []byte(out), 0o644)
	},
}

var productAsync bool

var productCmd = &cobra.Command{
	Use:   "product <a.toml> <b.toml>",
	Short: "Compute the product of two models",
	Long: `Compute the synchronous (tensor) product of two models, or the
asynchronous (interleaving) product with --async, and print the result.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadModel(args[0])
		if err != nil {
			return err
		}
		b, err := loadModel(args[1])
		if err != nil {
			return err
		}
		var prod *transys.FiniteTransitionSystem
		if productAsync {
			prod, err = a.AsynchronousProduct(b)
		} else {
			prod, err = a.SynchronousProduct(b)
		}
		if err != nil {
			return err
		}
		fmt.Print(prod)
		return nil
	},
}

func loadModel(path string) (*transys.FiniteTransitionSystem, error) {
	m, err := transys.ParseModelFile(path)
	if err != nil {
		return nil, err
	}
	return m.Build()
}

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "dot",
		"output format: dot or promela")
	exportCmd.Flags().StringVarP(&exportOut, "output", "o", "",
		"write to file instead of stdout")
	productCmd.Flags().BoolVar(&productAsync, "async", false,
		"interleaving product instead of tensor product")

	rootCmd.AddCommand(showCmd, exportCmd, productCmd)
}
