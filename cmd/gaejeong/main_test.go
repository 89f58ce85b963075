package main

import "testing"

func TestBuildVariableDefaults(t *testing.T) {
	if version != "dev" {
		t.Errorf("version = %s, want dev", version)
	}
	if gitCommit != "unknown" {
		t.Errorf("gitCommit = %s, want unknown", gitCommit)
	}
	if buildDate != "unknown" {
		t.Errorf("buildDate = %s, want unknown", buildDate)
	}
}
