package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/vitalvas/longtoip/pkg/columnar"
	"github.com/vitalvas/longtoip/pkg/config"
	"github.com/vitalvas/longtoip/pkg/log"
	"github.com/vitalvas/longtoip/pkg/udf"
)

// input is one named source of bigint text fields
type input struct {
	name   string
	fields []string
}

// result holds the converted column of one input
type result struct {
	source string
	values []string
	ips    []string
	nulls  int
}

func newConvertCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert [values...]",
		Short: "Convert bigint values to dotted-quad addresses",
		Long: "Converts bigint values to dotted-quad addresses. Values are taken from the arguments, " +
			"from --file inputs, or from stdin, one per line. Empty lines, 'null' and '\\N' are NULL.",
		Example: "  longtoip convert 16843009\n" +
			"  printf '16843009\\n\\N\\n' | longtoip convert\n" +
			"  longtoip convert -f day1.txt -f day2.txt --workers 2 --output table",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := opts.settings()
			if err != nil {
				return err
			}

			inputs, err := collectInputs(cmd.InOrStdin(), args, opts.files)
			if err != nil {
				return err
			}

			registry, err := opts.registry(cfg, logger)
			if err != nil {
				return err
			}

			results, err := convertAll(cmd.Context(), registry, inputs, cfg.Workers, logger)
			if err != nil {
				return err
			}

			if err := writeResults(cmd.OutOrStdout(), cfg.Output, results, len(opts.files) > 1); err != nil {
				return err
			}

			if opts.verbose {
				printSummary(cmd.ErrOrStderr(), results)
			}

			return nil
		},
	}

	cmd.Flags().SortFlags = false
	cmd.Flags().StringArrayVarP(&opts.files, "file", "f", nil, "read values from file, one per line (repeatable)")
	cmd.Flags().IntVarP(&opts.workers, "workers", "j", 0, "files converted concurrently (default from config)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output format: "+config.OutputPlain+" or "+config.OutputTable)
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "print a summary to stderr")

	return cmd
}

func collectInputs(stdin io.Reader, args, files []string) ([]input, error) {
	if len(args) > 0 && len(files) > 0 {
		return nil, fmt.Errorf("values and --file are mutually exclusive")
	}

	if len(args) > 0 {
		return []input{{name: "args", fields: args}}, nil
	}

	if len(files) == 0 {
		fields, err := readLines(stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return []input{{name: "stdin", fields: fields}}, nil
	}

	inputs := make([]input, 0, len(files))
	for _, path := range files {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open file: %w", err)
		}

		fields, err := readLines(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to read file %s: %w", path, err)
		}

		inputs = append(inputs, input{name: path, fields: fields})
	}

	return inputs, nil
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}

	return lines, scanner.Err()
}

// convertAll converts each input on its own executor, at most workers at a time.
// Results keep the order of inputs.
func convertAll(ctx context.Context, registry *udf.Registry, inputs []input, workers int, logger log.Logger) ([]result, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	results := make([]result, len(inputs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, in := range inputs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			res, err := convertInput(registry, in)
			if err != nil {
				return fmt.Errorf("%s: %w", in.name, err)
			}

			logger.WithFields(log.Fields{"source": in.name}).Debugf("converted %d values", len(res.ips))
			results[i] = res

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

func convertInput(registry *udf.Registry, in input) (result, error) {
	exec, err := columnar.NewExecutor(registry, udf.LongToIPName, nil)
	if err != nil {
		return result{}, err
	}

	if err := exec.Bind(arrow.PrimitiveTypes.Int64); err != nil {
		return result{}, err
	}

	col, err := columnar.Int64Column(nil, in.fields)
	if err != nil {
		return result{}, err
	}
	defer col.Release()

	out, err := exec.Apply(col)
	if err != nil {
		return result{}, err
	}
	defer out.Release()

	res := result{
		source: in.name,
		values: make([]string, out.Len()),
		ips:    make([]string, out.Len()),
	}

	for i := 0; i < out.Len(); i++ {
		if col.IsNull(i) {
			res.values[i] = nullText
		} else {
			res.values[i] = strconv.FormatInt(col.Value(i), 10)
		}

		if out.IsNull(i) {
			res.ips[i] = nullText
			res.nulls++
			continue
		}
		// the array is released on return
		res.ips[i] = strings.Clone(out.Value(i))
	}

	return res, nil
}

func printSummary(w io.Writer, results []result) {
	total, nulls := 0, 0
	for _, r := range results {
		total += len(r.ips)
		nulls += r.nulls
	}

	p := message.NewPrinter(language.English)
	p.Fprintf(w, "%d values converted from %d input(s), %d null\n", total, len(results), nulls)
}
