package commands

import "testing"

func TestRootRegistersJSONFlag(t *testing.T) {
	cmd := New()
	if cmd.PersistentFlags().Lookup("json") == nil {
		t.Fatal("root command must register the --json flag")
	}

	sub, _, err := cmd.Find([]string{"get"})
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if sub.InheritedFlags().Lookup("json") == nil {
		t.Fatal("subcommands must inherit the --json flag")
	}
}
