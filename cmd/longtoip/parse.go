package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vitalvas/longtoip/pkg/columnar"
	"github.com/vitalvas/longtoip/pkg/config"
	"github.com/vitalvas/longtoip/pkg/ipconv"
)

func newParseCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse [addresses...]",
		Short: "Convert dotted-quad addresses back to bigint values",
		Example: "  longtoip parse 1.1.1.1\n" +
			"  longtoip convert 16843009 | longtoip parse",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := opts.settings()
			if err != nil {
				return err
			}

			inputs, err := collectInputs(cmd.InOrStdin(), args, nil)
			if err != nil {
				return err
			}
			fields := inputs[0].fields

			res := result{
				source: inputs[0].name,
				values: make([]string, len(fields)),
				ips:    make([]string, len(fields)),
			}

			for i, field := range fields {
				field = strings.TrimSpace(field)
				if columnar.IsNullToken(field) {
					res.values[i] = nullText
					res.ips[i] = nullText
					res.nulls++
					continue
				}

				ip, err := ipconv.Parse(field)
				if err != nil {
					return fmt.Errorf("line %d: %w", i+1, err)
				}

				res.values[i] = strconv.FormatInt(ip, 10)
				res.ips[i] = field
			}

			if cfg.Output == config.OutputTable {
				writeTable(cmd.OutOrStdout(), []result{res}, false)
				return nil
			}

			return writePlain(cmd.OutOrStdout(), []result{{ips: res.values}})
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output format: "+config.OutputPlain+" or "+config.OutputTable)

	return cmd
}
