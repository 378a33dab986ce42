package main

import (
	"bufio"
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/vitalvas/longtoip/pkg/config"
)

const nullText = "NULL"

func writeResults(w io.Writer, format string, results []result, withSource bool) error {
	switch format {
	case config.OutputTable:
		writeTable(w, results, withSource)
		return nil
	case config.OutputPlain:
		return writePlain(w, results)
	default:
		return fmt.Errorf("unknown output %q", format)
	}
}

func writePlain(w io.Writer, results []result) error {
	bw := bufio.NewWriter(w)
	for _, r := range results {
		for _, ip := range r.ips {
			bw.WriteString(ip)
			bw.WriteByte('\n')
		}
	}
	return bw.Flush()
}

func writeTable(w io.Writer, results []result, withSource bool) {
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)

	header := make([]string, 0, 3)
	if withSource {
		header = append(header, "Source")
	}
	header = append(header, "Long", "IP")
	table.SetHeader(header)

	for _, r := range results {
		for i := range r.ips {
			row := make([]string, 0, 3)
			if withSource {
				row = append(row, r.source)
			}
			row = append(row, r.values[i], r.ips[i])
			table.Append(row)
		}
	}

	table.Render()
}
