package app

import (
	"bytes"
	"errors"
	"testing"
)

func scripted(inputs ...string) func() ([]byte, error) {
	return func() ([]byte, error) {
		if len(inputs) == 0 {
			return nil, errors.New("no more input")
		}
		next := inputs[0]
		inputs = inputs[1:]
		return []byte(next), nil
	}
}

func TestPromptPassphrase(t *testing.T) {
	tests := []struct {
		name    string
		inputs  []string
		confirm bool
		want    string
		wantErr bool
	}{
		{name: "single prompt", inputs: []string{"hunter2"}, want: "hunter2"},
		{name: "confirmed", inputs: []string{"hunter2", "hunter2"}, confirm: true, want: "hunter2"},
		{name: "mismatch", inputs: []string{"hunter2", "hunter3"}, confirm: true, wantErr: true},
		{name: "empty", inputs: []string{""}, wantErr: true},
		{name: "read failure", inputs: nil, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			got, err := promptPassphrase(&out, scripted(tt.inputs...), tt.confirm)
			if (err != nil) != tt.wantErr {
				t.Fatalf("promptPassphrase() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("promptPassphrase() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTerminalPassphrase_Env(t *testing.T) {
	t.Setenv(EnvPassphrase, "from-env")

	got, err := TerminalPassphrase(true)
	if err != nil {
		t.Fatalf("TerminalPassphrase() error = %v", err)
	}
	if got != "from-env" {
		t.Errorf("TerminalPassphrase() = %q, want %q", got, "from-env")
	}
}
