package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vitalvas/longtoip/pkg/typeinfo"
	"github.com/vitalvas/longtoip/pkg/udf"
)

func newDescribeCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "describe [function]",
		Short: "Show the description and explain form of a registered function",
		Example: "  longtoip describe\n" +
			"  longtoip describe LongToIP --arg-type bigint",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := opts.settings()
			if err != nil {
				return err
			}

			registry, err := opts.registry(cfg, logger)
			if err != nil {
				return err
			}

			name := udf.LongToIPName
			if len(args) == 1 {
				name = args[0]
			}

			text, err := registry.Describe(name)
			if err != nil {
				return err
			}

			desc, _ := registry.Lookup(name)

			fn, err := registry.New(name)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintln(w, text)
			fmt.Fprintf(w, "Deterministic: %t\n", desc.Deterministic)
			fmt.Fprintf(w, "Explain: %s\n", fn.DisplayString([]string{opts.column}))

			if opts.argType == "" {
				return nil
			}

			argType, err := typeinfo.ParseTypeName(opts.argType)
			if err != nil {
				return err
			}

			resultType, err := fn.Initialize([]typeinfo.TypeInfo{argType})
			if err != nil {
				return err
			}

			fmt.Fprintf(w, "Result type: %s\n", resultType.TypeName())

			return nil
		},
	}

	cmd.Flags().StringVar(&opts.column, "column", "iplong", "argument shown in the explain form")
	cmd.Flags().StringVar(&opts.argType, "arg-type", "", "bind the function against an argument of this type, e.g. bigint or array<bigint>")

	return cmd
}
