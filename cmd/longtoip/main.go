package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vitalvas/longtoip/pkg/config"
	"github.com/vitalvas/longtoip/pkg/ipconv"
	"github.com/vitalvas/longtoip/pkg/log"
	"github.com/vitalvas/longtoip/pkg/udf"
)

const version = "0.1.0"

type options struct {
	configPath string
	logLevel   string
	overflow   string
	output     string
	workers    int
	files      []string
	verbose    bool
	column     string
	argType    string
}

// settings resolves the configuration file and applies flag overrides.
func (o *options) settings() (*config.Config, *log.DefaultLogger, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, nil, err
	}

	if o.logLevel != "" {
		cfg.LogLevel = o.logLevel
	}
	if o.overflow != "" {
		cfg.Overflow = o.overflow
	}
	if o.output != "" {
		cfg.Output = o.output
	}
	if o.workers > 0 {
		cfg.Workers = o.workers
	}

	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	logger, err := cfg.Logger()
	if err != nil {
		return nil, nil, err
	}

	return cfg, logger, nil
}

func (o *options) registry(cfg *config.Config, logger log.Logger) (*udf.Registry, error) {
	policy, err := cfg.OverflowPolicy()
	if err != nil {
		return nil, err
	}

	return udf.NewRegistry(udf.WithOverflowPolicy(policy), udf.WithLogger(logger)), nil
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           "longtoip",
		Short:         "Convert IPv4 addresses between bigint and dotted-quad form",
		Long:          "Converts IPv4 addresses stored as bigint values into dotted-quad strings and back, the same way the LongToIP query function does.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version,
	}

	cmd.PersistentFlags().SortFlags = false
	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "YAML configuration file")
	cmd.PersistentFlags().StringVarP(&opts.logLevel, "log-level", "l", "", "log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&opts.overflow, "overflow", "",
		"values outside the IPv4 range: "+ipconv.OverflowMask.String()+" or "+ipconv.OverflowReject.String())

	cmd.AddCommand(newConvertCmd(opts))
	cmd.AddCommand(newParseCmd(opts))
	cmd.AddCommand(newDescribeCmd(opts))

	return cmd
}

func main() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		cmd.PrintErrln("Error:", err)
		os.Exit(1)
	}
}
