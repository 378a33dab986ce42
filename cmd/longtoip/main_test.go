package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer

	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	err := cmd.Execute()

	return stdout.String(), stderr.String(), err
}

func TestConvert_Args(t *testing.T) {
	out, _, err := run(t, "", "convert", "0", "16843009", "4294967295", "null")
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0\n1.1.1.1\n255.255.255.255\nNULL\n", out)
}

func TestConvert_Stdin(t *testing.T) {
	out, _, err := run(t, "2130706433\n\\N\n\n3232235777\n", "convert")
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1\nNULL\nNULL\n192.168.1.1\n", out)
}

func TestConvert_OverflowPolicy(t *testing.T) {
	out, _, err := run(t, "", "convert", "--", "-1")
	require.NoError(t, err)
	assert.Equal(t, "255.255.255.255\n", out)

	_, _, err = run(t, "", "--overflow", "reject", "convert", "--", "-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 0")
}

func TestConvert_InvalidValue(t *testing.T) {
	_, _, err := run(t, "", "convert", "1.1.1.1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid bigint")
}

func TestConvert_Files(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.txt")
	second := filepath.Join(dir, "second.txt")
	require.NoError(t, os.WriteFile(first, []byte("16843009\n"), 0o644))
	require.NoError(t, os.WriteFile(second, []byte("0\nNULL\n"), 0o644))

	out, stderr, err := run(t, "", "convert", "-f", first, "-f", second, "--workers", "2", "--verbose")
	require.NoError(t, err)
	assert.Equal(t, "1.1.1.1\n0.0.0.0\nNULL\n", out)
	assert.Contains(t, stderr, "3 values converted from 2 input(s), 1 null")
}

func TestConvert_Table(t *testing.T) {
	out, _, err := run(t, "", "convert", "--output", "table", "16843009")
	require.NoError(t, err)
	assert.Contains(t, out, "Long")
	assert.Contains(t, out, "16843009")
	assert.Contains(t, out, "1.1.1.1")
}

func TestConvert_ArgsAndFilesConflict(t *testing.T) {
	_, _, err := run(t, "", "convert", "-f", "x.txt", "1")
	assert.Error(t, err)
}

func TestConvert_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "longtoip.yaml")
	require.NoError(t, os.WriteFile(path, []byte("overflow: reject\nlog_level: error\n"), 0o644))

	_, _, err := run(t, "", "--config", path, "convert", "4294967296")
	assert.Error(t, err)

	out, _, err := run(t, "", "--config", path, "--overflow", "mask", "convert", "4294967296")
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0\n", out)
}

func TestParse(t *testing.T) {
	out, _, err := run(t, "", "parse", "1.1.1.1", "255.255.255.255", "null")
	require.NoError(t, err)
	assert.Equal(t, "16843009\n4294967295\nNULL\n", out)

	_, _, err = run(t, "", "parse", "1.1.1.01")
	assert.Error(t, err)
}

func TestParse_RoundTripThroughStdin(t *testing.T) {
	converted, _, err := run(t, "", "convert", "16843009", "3232235777")
	require.NoError(t, err)

	out, _, err := run(t, converted, "parse")
	require.NoError(t, err)
	assert.Equal(t, "16843009\n3232235777\n", out)
}

func TestDescribe(t *testing.T) {
	out, _, err := run(t, "", "describe")
	require.NoError(t, err)
	assert.Contains(t, out, "LongToIP(iplong) - returns IP address in string format from long format")
	assert.Contains(t, out, "> SELECT LongToIP(16843009) FROM table")
	assert.Contains(t, out, "Deterministic: true")
	assert.Contains(t, out, "Explain: LongToIP(iplong)")

	out, _, err = run(t, "", "describe", "longtoip", "--column", "cast(x AS bigint)")
	require.NoError(t, err)
	assert.Contains(t, out, "Explain: LongToIP(cast(x AS bigint))")

	_, _, err = run(t, "", "describe", "IPToLong")
	assert.Error(t, err)
}

func TestDescribe_ArgType(t *testing.T) {
	tests := []struct {
		name    string
		argType string
		want    string
		wantErr string
	}{
		{"bigint", "bigint", "Result type: string", ""},
		{"long alias", "LONG", "Result type: string", ""},
		{"string", "string", "", "a long argument was expected but an argument of type string was given"},
		{"int", "int", "", "a long argument was expected but an argument of type int was given"},
		{"array", "array<bigint>", "", "a primitive argument was expected but an argument of type array<bigint> was given"},
		{"union", "uniontype<bigint,string>", "", "a primitive argument was expected"},
		{"unknown type", "ipv4", "", "ipv4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := run(t, "", "describe", "--arg-type", tt.argType)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				assert.NotContains(t, out, "Result type")
				return
			}
			require.NoError(t, err)
			assert.Contains(t, out, tt.want)
		})
	}
}
