package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/diillson/aws-cost-dashboard-go/internal/shared/types"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfigFile(t *testing.T) {
	want := &types.Config{
		Source:     "s3://billing/costs.xlsx",
		Port:       9090,
		Debug:      true,
		AWSProfile: "finops",
		ReportType: []string{"pdf", "json"},
	}

	tests := []struct {
		name    string
		file    string
		content string
	}{
		{
			name: "toml",
			file: "config.toml",
			content: `source = "s3://billing/costs.xlsx"
port = 9090
debug = true
aws_profile = "finops"
report_type = ["pdf", "json"]
`,
		},
		{
			name: "yaml",
			file: "config.yml",
			content: `source: s3://billing/costs.xlsx
port: 9090
debug: true
aws_profile: finops
report_type: [pdf, json]
`,
		},
		{
			name:    "json",
			file:    "config.json",
			content: `{"source":"s3://billing/costs.xlsx","port":9090,"debug":true,"aws_profile":"finops","report_type":["pdf","json"]}`,
		},
	}

	repo := NewConfigRepository()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.LoadConfigFile(writeFile(t, tt.file, tt.content))
			if err != nil {
				t.Fatalf("LoadConfigFile() error = %v", err)
			}
			if !reflect.DeepEqual(got, want) {
				t.Errorf("LoadConfigFile() = %+v, want %+v", got, want)
			}
		})
	}
}

func TestLoadConfigFile_Errors(t *testing.T) {
	tests := []struct {
		name        string
		path        func(t *testing.T) string
		errorString string
	}{
		{
			name:        "missing file",
			path:        func(t *testing.T) string { return filepath.Join(t.TempDir(), "nope.toml") },
			errorString: "error accessing config file",
		},
		{
			name:        "directory",
			path:        func(t *testing.T) string { return t.TempDir() },
			errorString: "is a directory",
		},
		{
			name:        "unsupported extension",
			path:        func(t *testing.T) string { return writeFile(t, "config.ini", "port=1") },
			errorString: "unsupported config file format: .ini",
		},
		{
			name:        "unknown yaml key",
			path:        func(t *testing.T) string { return writeFile(t, "config.yaml", "prot: 8080\n") },
			errorString: "error parsing YAML file",
		},
		{
			name:        "unknown json key",
			path:        func(t *testing.T) string { return writeFile(t, "config.json", `{"prot":8080}`) },
			errorString: "error parsing JSON file",
		},
		{
			name:        "bad toml",
			path:        func(t *testing.T) string { return writeFile(t, "config.toml", "port = [") },
			errorString: "error parsing TOML file",
		},
	}

	repo := NewConfigRepository()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := repo.LoadConfigFile(tt.path(t))
			if err == nil {
				t.Fatal("LoadConfigFile() expected error")
			}
			if !strings.Contains(err.Error(), tt.errorString) {
				t.Errorf("error = %q, want it to contain %q", err.Error(), tt.errorString)
			}
		})
	}
}
