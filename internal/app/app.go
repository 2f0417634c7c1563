package app

import (
	"github.com/spf13/cobra"

	"github.com/jaiswalaj/sast-exporter-data-update/internal/cli"
)

func BuildRoot() *cobra.Command {
	return cli.NewRootCmd()
}
