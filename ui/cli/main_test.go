// Copyright (c) 2026 liuyuxun, 1225
// bigcalc - arbitrary-precision integer calculator
// This source code is licensed under the MIT license found in the LICENSE file.
package cli

import (
	"runtime/debug"
	"testing"
)

func TestResolveBuildVersion_MainVersion(t *testing.T) {
	info := &debug.BuildInfo{
		Main: debug.Module{Path: "github.com/liuyuxun641102/liuyuxun", Version: "v5.0.0"},
	}
	v, c, d := resolveBuildVersion(info)
	if v != "v5.0.0" {
		t.Fatalf("expected v5.0.0 got %s", v)
	}
	if c != gitCommit {
		t.Fatalf("expected commit to equal package gitCommit (default) got %s", c)
	}
	if d != buildDate {
		t.Fatalf("expected date to equal package buildDate (default) got %s", d)
	}
}

func TestResolveBuildVersion_DevelKeepsLinkerVersion(t *testing.T) {
	info := &debug.BuildInfo{
		Main: debug.Module{Path: "github.com/liuyuxun641102/liuyuxun", Version: "(devel)"},
	}
	v, _, _ := resolveBuildVersion(info)
	if v != version {
		t.Fatalf("expected linker default %q got %s", version, v)
	}
}

func TestResolveBuildVersion_VcsSettings(t *testing.T) {
	info := &debug.BuildInfo{
		Main: debug.Module{Path: "github.com/liuyuxun641102/liuyuxun", Version: "(devel)"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "deadbeef"},
			{Key: "vcs.time", Value: "2026-01-02T03:04:05Z"},
		},
	}
	_, c, d := resolveBuildVersion(info)
	if c != "deadbeef" {
		t.Fatalf("expected vcs.revision got %s", c)
	}
	if d != "2026-01-02T03:04:05Z" {
		t.Fatalf("expected vcs.time got %s", d)
	}
}

func TestNewRootCmdWiring(t *testing.T) {
	cmd := NewRootCmd()
	if cmd.Use != "bigcalc" {
		t.Fatalf("unexpected root use: %s", cmd.Use)
	}
	for _, want := range []string{"eval", "history", "version"} {
		found := false
		for _, sub := range cmd.Commands() {
			if sub.Name() == want {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("missing subcommand %q", want)
		}
	}
	for _, flag := range []string{"config", "language", "verbose"} {
		if cmd.PersistentFlags().Lookup(flag) == nil {
			t.Errorf("missing persistent flag %q", flag)
		}
	}
}
