// Package catalogcmd holds the operator commands that inspect the catalog and price configurations.
package catalogcmd

import (
	"context"
	"fmt"
	"github.com/myrjola/droneconfigurator/internal/catalog"
	"github.com/myrjola/droneconfigurator/internal/errors"
	"github.com/myrjola/droneconfigurator/internal/logging"
	"github.com/myrjola/droneconfigurator/internal/models"
	"github.com/myrjola/droneconfigurator/internal/money"
	"github.com/myrjola/droneconfigurator/internal/repositories"
	"github.com/myrjola/droneconfigurator/internal/sqlite"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
	"log/slog"
	"text/tabwriter"
)

var Group = &cobra.Group{
	ID:    "catalog",
	Title: "Catalog",
}

const sqliteURLFlag = "sqlite-url"

// NewExport returns the command printing the catalog as YAML.
func NewExport() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "catalog",
		GroupID: Group.ID,
		Short:   "Export the catalog",
		Long:    "Prints the catalog dataset as YAML in declaration order",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := loadCatalog(cmd)
			if err != nil {
				return err
			}
			category, _ := cmd.Flags().GetString("category")
			var out any
			if out, err = selectCategory(c.Data(), category); err != nil {
				return err
			}

			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2) //nolint:mnd // two spaces
			if err = enc.Encode(out); err != nil {
				return errors.Wrap(err, "encode yaml")
			}
			if err = enc.Close(); err != nil {
				return errors.Wrap(err, "close yaml encoder")
			}
			return nil
		},
	}
	cmd.Flags().String(sqliteURLFlag, ":memory:", "SQLite URL of the configurator database")
	cmd.Flags().String("category", "", "export only one category: scenario, platform, payload, power-source, "+
		"accessory or standard-package")
	return cmd
}

func selectCategory(data catalog.Data, category string) (any, error) {
	switch category {
	case "":
		return data, nil
	case string(catalog.CategoryScenario):
		return data.Scenarios, nil
	case string(catalog.CategoryPlatform):
		return data.Platforms, nil
	case string(catalog.CategoryPayload):
		return data.Payloads, nil
	case string(catalog.CategoryPowerSource):
		return data.PowerSources, nil
	case string(catalog.CategoryAccessory):
		return data.Accessories, nil
	case "standard-package":
		return data.StandardPackages, nil
	default:
		return nil, errors.New("unknown category", slog.String("category", category))
	}
}

// NewQuote returns the command pricing a configuration given on the command line.
func NewQuote() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "quote",
		GroupID: Group.ID,
		Short:   "Price a configuration",
		Long:    "Prints the line items, total and standard package classification of a configuration",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := loadCatalog(cmd)
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			var sel models.Selection
			sel.Scenario, _ = flags.GetString("scenario")
			sel.Platform, _ = flags.GetString("platform")
			sel.Payload, _ = flags.GetString("payload")
			sel.PowerSource, _ = flags.GetString("power-source")
			sel.Accessories, _ = flags.GetStringSlice("accessory")

			quote := c.Quote(sel)
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0) //nolint:mnd // padding
			for _, line := range quote.Lines {
				_, _ = fmt.Fprintf(w, "%s\t%s\t%s\n", line.Category, line.Name, money.Format(line.Price))
			}
			_, _ = fmt.Fprintf(w, "total\t\t%s\n", money.Format(quote.Total))
			_, _ = fmt.Fprintf(w, "standard\t\t%t\n", quote.Standard)
			if quote.NeedsReview() {
				_, _ = fmt.Fprintf(w, "review\t\trequires specialist review\n")
			}
			if err = w.Flush(); err != nil {
				return errors.Wrap(err, "flush output")
			}
			return nil
		},
	}
	cmd.Flags().String(sqliteURLFlag, ":memory:", "SQLite URL of the configurator database")
	cmd.Flags().String("scenario", "", "scenario id")
	cmd.Flags().String("platform", "", "platform id")
	cmd.Flags().String("payload", "", "payload id")
	cmd.Flags().String("power-source", "", "power source id")
	cmd.Flags().StringSlice("accessory", nil, "accessory ids, repeatable")
	return cmd
}

func loadCatalog(cmd *cobra.Command) (*catalog.Catalog, error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	// Cancelling stops the database optimizer goroutine.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	sqliteURL, _ := cmd.Flags().GetString(sqliteURLFlag)
	logger := slog.New(logging.NewContextHandler(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	db, err := sqlite.NewDatabase(ctx, sqliteURL, logger)
	if err != nil {
		return nil, errors.Wrap(err, "open database", slog.String("url", sqliteURL))
	}
	defer func() {
		_ = db.Close()
	}()

	c, err := repositories.NewCatalogRepository(db, logger).Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "load catalog")
	}
	return c, nil
}
