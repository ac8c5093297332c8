package main

import (
	"fmt"
	"github.com/joho/godotenv"
	"github.com/myrjola/droneconfigurator/cmd/cli/catalogcmd"
	"github.com/myrjola/droneconfigurator/internal/errors"
	"github.com/spf13/cobra"
	"io/fs"
	"os"
)

func init() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	rootCmd.AddGroup(catalogcmd.Group)
	rootCmd.AddCommand(catalogcmd.NewExport())
	rootCmd.AddCommand(catalogcmd.NewQuote())
}

var rootCmd = &cobra.Command{
	Use:          "configurator-cli",
	Long:         `Command line utilities for the drone configurator`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func main() {
	Execute()
}
