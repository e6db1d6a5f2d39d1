package tests

import (
	"testing"

	"github.com/IvanChernomyrdin/go-cohort-tools/internal/agent/cli"
)

func TestNewRootCmd_RegistersSubcommands(t *testing.T) {
	root := cli.NewRootCmd("dev", "unknown")

	want := map[string]bool{
		"signup":   false,
		"login":    false,
		"verify":   false,
		"cohorts":  false,
		"students": false,
		"version":  false,
	}
	for _, c := range root.Commands() {
		if _, ok := want[c.Name()]; ok {
			want[c.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Fatalf("expected subcommand %q to be registered", name)
		}
	}

	if f := root.PersistentFlags().Lookup("server"); f == nil {
		t.Fatalf("expected persistent flag --server")
	}
}
