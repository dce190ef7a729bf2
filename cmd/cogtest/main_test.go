package main

import "testing"

func TestSubcommandsRegistered(t *testing.T) {
	want := map[string]bool{"run": false, "summary": false, "upload": false}
	for _, cmd := range rootCmd.Commands() {
		if _, ok := want[cmd.Name()]; ok {
			want[cmd.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestGlobalFlags(t *testing.T) {
	for _, name := range []string{"config", "verbose", "log"} {
		if rootCmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("persistent flag %q not registered", name)
		}
	}
	if got := rootCmd.PersistentFlags().Lookup("config").DefValue; got != "cogtest.yaml" {
		t.Errorf("config default = %q", got)
	}
}

func TestUploadFlags(t *testing.T) {
	for _, name := range []string{"nickname", "digits", "game", "score"} {
		if uploadCmd.Flags().Lookup(name) == nil {
			t.Errorf("upload flag %q not registered", name)
		}
	}
}
