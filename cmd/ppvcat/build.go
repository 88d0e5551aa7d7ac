package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/ppvstat/catalog"
	"github.com/katalvlaran/ppvstat/metadata"
	"github.com/katalvlaran/ppvstat/ppv"
)

func newBuildCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Compute a catalog from structure and metadata files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadBuildConfig(cmd.Flags())
			if err != nil {
				return err
			}

			return runBuild(cmd, cfg)
		},
	}

	f := cmd.Flags()
	f.String(flagConfig, "", "config file (yaml, json or toml)")
	f.StringP(flagStructures, "s", "", "structure file: list of {id, values, indices}")
	f.StringP(flagMetadata, "m", "", "metadata file: mapping of key to value or \"<value> <unit>\"")
	f.StringSlice(flagFields, nil, "quantities to compute (default: all)")
	f.StringSlice(flagRequire, nil, "metadata keys that must be present")
	f.IntP(flagWorkers, "w", defaultWorkers, "structures processed concurrently")
	f.StringP(flagFormat, "f", defaultFormat, "output format: table, csv, markdown or json")
	f.String(flagLogLevel, defaultLogLevel, "log level: debug, info, warning or error")

	return cmd
}

func runBuild(cmd *cobra.Command, cfg *buildConfig) error {
	logger := logrus.New()
	logger.SetOutput(cmd.ErrOrStderr())
	lvl, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("--%s: %w", flagLogLevel, err)
	}
	logger.SetLevel(lvl)

	render, err := rendererFor(cfg.Format)
	if err != nil {
		return err
	}

	structs, err := catalog.LoadStructures(cfg.Structures)
	if err != nil {
		return err
	}
	md := metadata.Record{}
	if cfg.Metadata != "" {
		if md, err = metadata.Load(cfg.Metadata); err != nil {
			return err
		}
	}
	schema, err := ppv.Schema().Require(cfg.Require...)
	if err != nil {
		return fmt.Errorf("--%s: %w", flagRequire, err)
	}

	logger.WithFields(logrus.Fields{
		"structures": len(structs),
		"workers":    cfg.Workers,
	}).Info("building catalog")

	rows, err := catalog.Build(catalog.AsStructures(structs), md,
		catalog.WithFields(cfg.Fields...),
		catalog.WithSchema(schema),
		catalog.WithLogger(logger),
		catalog.WithWorkers(cfg.Workers),
	)
	if err != nil {
		return err
	}

	ids := make([]string, len(structs))
	for i, s := range structs {
		ids[i] = s.ID
	}

	return render(cmd.OutOrStdout(), ids, catalog.NewTable(rows))
}

func newFieldsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "fields",
		Short: "List the quantities a catalog can contain and the metadata they read",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return renderFields(cmd.OutOrStdout(), ppv.Fields(), ppv.Schema())
		},
	}
}
