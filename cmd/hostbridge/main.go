package main

import (
	"errors"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"hostbridge/internal/dispatch"
	"hostbridge/internal/mcpserver"
	"hostbridge/tools"
)

const (
	name    = "hostbridge"
	version = "0.1.0"
)

func main() {
	// stdout carries the MCP protocol; all logging goes to stderr.
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	root := &cobra.Command{
		Use:           name,
		Short:         "MCP server exposing host file, system, network and shell tools over stdio",
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve()
		},
	}

	if err := root.Execute(); err != nil {
		log.Fatal().Err(err).Msg("server error")
	}
}

func serve() error {
	defs := tools.Registry()
	d := dispatch.New(defs, log.Logger)
	s := mcpserver.New(name, version, d)

	log.Info().Int("tools", len(defs)).Msgf("%s v%s running on stdio", name, version)

	if err := mcpserver.ServeStdio(s); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	log.Info().Msg("client disconnected")
	return nil
}
