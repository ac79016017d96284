package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jackie264/wificard/internal/config"
	"github.com/jackie264/wificard/internal/qr"
)

// isolate keeps user presets, .env files and WIFICARD_* variables out of a test
func isolate(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", dir)
	for _, key := range []string{config.EnvConfig, config.EnvLang, config.EnvOutputDir, config.EnvImageSize, config.EnvLogLevel} {
		t.Setenv(key, "")
	}
}

func execute(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Execute(%v) error = %v", args, err)
	}
	return out.String()
}

func TestEncodeCommand(t *testing.T) {
	isolate(t)

	got := execute(t, "encode", "--ssid", "Home", "--password", "p;1", "--encryption", "wpa")
	if want := "WIFI:S:Home;T:WPA;P:p\\;1;;\n"; got != want {
		t.Errorf("encode output = %q, want %q", got, want)
	}
}

func TestParseCommand(t *testing.T) {
	isolate(t)

	got := execute(t, "parse", `WIFI:T:WEP;S:Cafe;P:12345;H:true;;`, "--format", "compact")
	if want := "\"Cafe\" (WEP, hidden)\n"; got != want {
		t.Errorf("parse output = %q, want %q", got, want)
	}
}

func TestExportFormats(t *testing.T) {
	tests := []struct {
		name    string
		svg     bool
		format  string
		all     bool
		want    []qr.Format
		wantErr bool
	}{
		{"SVG preference", true, "", false, []qr.Format{qr.FormatSVG}, false},
		{"PNG preference", false, "", false, []qr.Format{qr.FormatPNG}, false},
		{"Explicit format wins", true, "png", false, []qr.Format{qr.FormatPNG}, false},
		{"All", false, "svg", true, qr.Formats, false},
		{"Unknown format", true, "gif", false, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := exportFormats(tt.svg, tt.format, tt.all)
			if (err != nil) != tt.wantErr {
				t.Fatalf("exportFormats() error = %v, wantErr %v", err, tt.wantErr)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("exportFormats() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("exportFormats()[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestReadPayloadArg(t *testing.T) {
	got, err := readPayloadArg("WIFI:S:x;;", strings.NewReader("ignored"))
	if err != nil || got != "WIFI:S:x;;" {
		t.Errorf("readPayloadArg(literal) = %q, %v", got, err)
	}

	got, err = readPayloadArg("-", strings.NewReader("WIFI:S:Home;T:nopass;;\r\nsecond line\n"))
	if err != nil {
		t.Fatalf("readPayloadArg(-) error = %v", err)
	}
	if got != "WIFI:S:Home;T:nopass;;" {
		t.Errorf("readPayloadArg(-) = %q", got)
	}
}

func TestJoinFormats(t *testing.T) {
	if got := joinFormats(qr.Formats); got != "SVG, PNG" {
		t.Errorf("joinFormats() = %q", got)
	}
}
