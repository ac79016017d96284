package ui

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestHeaderRenderKeepsParamOrder(t *testing.T) {
	h := NewHeader("Print cards", "wificard print",
		Param{Key: "Network", Value: "Home"},
		Param{Key: "Copies", Value: "3"},
		Param{Key: "Language", Value: "en-US"},
	).SetWidth(80)

	out := h.Render()
	if !strings.Contains(out, "PRINT CARDS") {
		t.Error("Render() should upper-case the title")
	}

	network := strings.Index(out, "Network:")
	copies := strings.Index(out, "Copies:")
	language := strings.Index(out, "Language:")
	if network < 0 || copies < 0 || language < 0 {
		t.Fatalf("Render() missing params:\n%s", out)
	}
	if !(network < copies && copies < language) {
		t.Error("Params rendered out of order")
	}
}

func TestResultRender(t *testing.T) {
	tests := []struct {
		name   string
		result *Result
		want   []string
	}{
		{
			name:   "Success",
			result: NewSuccessResult("Image saved", Param{Key: "Path", Value: "Home.svg"}),
			want:   []string{"SUCCESS", "Image saved", "Path:", "Home.svg"},
		},
		{
			name:   "Failure",
			result: NewFailureResult("Cannot print", errors.New("SSID is required"), "Pass --ssid"),
			want:   []string{"FAILED", "Cannot print", "SSID is required", "Troubleshooting:", "Pass --ssid"},
		},
		{
			name:   "Warning",
			result: NewWarningResult("Scanner support", Param{Key: "Mode", Value: "WPA2-EAP"}),
			want:   []string{"WARNING", "Scanner support", "WPA2-EAP"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := tt.result.SetWidth(80).Render()
			for _, want := range tt.want {
				if !strings.Contains(out, want) {
					t.Errorf("Render() missing %q:\n%s", want, out)
				}
			}
		})
	}
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"Yes", "y\n", true},
		{"Yes word", "YES\n", true},
		{"No", "n\n", false},
		{"Empty line", "\n", false},
		{"EOF", "", false},
		{"Yes without newline", "y", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			got := ConfirmOverwrite(strings.NewReader(tt.input), &out, "Home.svg")
			if got != tt.want {
				t.Errorf("ConfirmOverwrite() = %v, want %v", got, tt.want)
			}
			if !strings.Contains(out.String(), "Home.svg already exists") {
				t.Errorf("prompt missing warning:\n%s", out.String())
			}
		})
	}
}

func TestPrinter(t *testing.T) {
	var out bytes.Buffer
	p := NewPrinter(&out).SetWidth(70)

	p.PrintSuccess("Done", Param{Key: "Path", Value: "a.png"})
	p.Println("plain")

	if p.Width() != 70 {
		t.Errorf("Width() = %d, want 70", p.Width())
	}
	if !strings.Contains(out.String(), "a.png") || !strings.HasSuffix(out.String(), "plain\n") {
		t.Errorf("unexpected output:\n%s", out.String())
	}
}
