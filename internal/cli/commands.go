package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jaiswalaj/sast-exporter-data-update/internal/config"
	"github.com/jaiswalaj/sast-exporter-data-update/internal/logging"
	"github.com/jaiswalaj/sast-exporter-data-update/internal/mapping"
	"github.com/jaiswalaj/sast-exporter-data-update/internal/record"
	"github.com/jaiswalaj/sast-exporter-data-update/internal/report"
	"github.com/jaiswalaj/sast-exporter-data-update/internal/transform"
)

// params holds the resolved inputs for one run, after merging flags with
// config-file defaults.
type params struct {
	jsonInputPath  string
	jsonKeyName    string
	jsonOutputPath string
	excelPath      string
	csvPath        string
	oldColName     string
	newColName     string
	skipMissingKey bool
	auditPath      string
}

func NewRootCmd() *cobra.Command {
	var (
		p       params
		verbose bool
	)
	cmd := &cobra.Command{
		Use:          "sastremap",
		Short:        "Reconcile project names in SAST JSON exports against a mapping table",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logging.New(verbose)
			defer log.Sync()

			cfg, cfgPath, err := config.Load(".")
			if err != nil {
				return err
			}
			if cfgPath != "" {
				log.Debug("loaded config defaults", zap.String("path", cfgPath))
			}
			if p.jsonKeyName == "" {
				p.jsonKeyName = cfg.KeyName
			}
			if p.oldColName == "" {
				p.oldColName = cfg.OldColumn
			}
			if p.newColName == "" {
				p.newColName = cfg.NewColumn
			}
			if !cmd.Flags().Changed("skip_missing_key") {
				p.skipMissingKey = cfg.SkipMissingKey
			}

			if err := p.validate(); err != nil {
				return err
			}
			return run(p, log)
		},
	}
	cmd.Flags().StringVar(&p.jsonInputPath, "json_input_path", "", "Path to the input JSON array file")
	cmd.Flags().StringVar(&p.jsonKeyName, "json_key_name", "", "Field name within each record to rewrite")
	cmd.Flags().StringVar(&p.jsonOutputPath, "json_output_path", "", "Path to write the transformed JSON array")
	cmd.Flags().StringVar(&p.excelPath, "excel_path", "", "Path to an .xlsx mapping table")
	cmd.Flags().StringVar(&p.csvPath, "csv_path", "", "Path to a .csv mapping table")
	cmd.Flags().StringVar(&p.oldColName, "old_data_col_name", "", "Mapping-table column holding current values")
	cmd.Flags().StringVar(&p.newColName, "new_data_col_name", "", "Mapping-table column holding replacement values")
	cmd.Flags().BoolVar(&p.skipMissingKey, "skip_missing_key", false, "Skip records lacking the key field instead of aborting")
	cmd.Flags().StringVar(&p.auditPath, "audit_output_path", "", "Optional path for a JSON report of dropped records")
	cmd.Flags().BoolVar(&verbose, "verbose", false, "Enable debug logging")
	return cmd
}

func (p params) validate() error {
	for _, f := range []struct{ name, val string }{
		{"json_input_path", p.jsonInputPath},
		{"json_key_name", p.jsonKeyName},
		{"json_output_path", p.jsonOutputPath},
		{"old_data_col_name", p.oldColName},
		{"new_data_col_name", p.newColName},
	} {
		if f.val == "" {
			return fmt.Errorf("--%s is required", f.name)
		}
	}
	if (p.excelPath == "") == (p.csvPath == "") {
		return fmt.Errorf("exactly one of --excel_path or --csv_path must be set")
	}
	return nil
}

// run executes the pipeline: Load Mapping -> Load Records -> Transform ->
// Write. Any step's failure terminates the run.
func run(p params, log *zap.Logger) error {
	mappingPath := p.csvPath
	if mappingPath == "" {
		mappingPath = p.excelPath
	}
	log.Info("starting run",
		zap.String("input", p.jsonInputPath),
		zap.String("key", p.jsonKeyName),
		zap.String("mapping", mappingPath),
		zap.String("old_column", p.oldColName),
		zap.String("new_column", p.newColName),
		zap.String("output", p.jsonOutputPath))

	var table mapping.Table
	var err error
	if p.csvPath != "" {
		table, err = mapping.LoadCSV(p.csvPath, p.oldColName, p.newColName, log)
	} else {
		table, err = mapping.LoadExcel(p.excelPath, p.oldColName, p.newColName, log)
	}
	if err != nil {
		return err
	}
	log.Info("mapping table loaded", zap.Int("entries", len(table)))

	recs, err := record.ReadCollection(p.jsonInputPath)
	if err != nil {
		return err
	}
	log.Info("records loaded", zap.Int("count", len(recs)))

	tr := transform.New(table, p.jsonKeyName, transform.Options{SkipMissingKey: p.skipMissingKey}, log)
	kept, sum, drops, err := tr.Apply(recs)
	if err != nil {
		return err
	}

	if err := record.WriteCollection(p.jsonOutputPath, kept); err != nil {
		return err
	}
	if p.auditPath != "" {
		if err := report.WriteAudit(p.auditPath, p.jsonKeyName, sum, drops); err != nil {
			return err
		}
	}
	log.Info("run complete",
		zap.Int("input", sum.Input),
		zap.Int("kept", sum.Kept),
		zap.Int("dropped", sum.Dropped),
		zap.String("output", p.jsonOutputPath))
	return nil
}
