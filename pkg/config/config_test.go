package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want Config
	}{
		{
			name: "empty",
			yaml: "",
			want: Default(),
		},
		{
			name: "partial",
			yaml: "years: 15\n",
			want: Config{Years: 15, NumAnnualPayments: 12, MaxPayments: 100_000, LogFormat: "pretty"},
		},
		{
			name: "everything",
			yaml: "years: 20\nnum_annual_payments: 26\nmax_payments: 5000\nlog_format: json\n",
			want: Config{Years: 20, NumAnnualPayments: 26, MaxPayments: 5000, LogFormat: "json"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse([]byte(tt.yaml))
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestParseRejects(t *testing.T) {
	for name, doc := range map[string]string{
		"unknown key":    "yeers: 15\n",
		"no years":       "years: 0\n",
		"no payments":    "num_annual_payments: 0\n",
		"no max":         "max_payments: -1\n",
		"bad log format": "log_format: xml\n",
		"not a number":   "years: thirty\n",
		"not a mapping":  "- 30\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc))
			require.Error(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)

	path := filepath.Join(t.TempDir(), "mortgage.yaml")
	require.NoError(t, os.WriteFile(path, []byte("num_annual_payments: 4\n"), 0o644))
	cfg, err = Load(path)
	require.NoError(t, err)
	require.Equal(t, 4, cfg.NumAnnualPayments)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
