package main

import (
	"bytes"
	"runtime"
	"strings"
	"testing"
)

func TestRunVersion(t *testing.T) {
	var buf bytes.Buffer
	versionCmd.SetOut(&buf)
	defer versionCmd.SetOut(nil)

	runVersion(versionCmd, nil)

	out := buf.String()
	if !strings.Contains(out, "tui-rename "+version) {
		t.Errorf("output %q missing version %q", out, version)
	}
	if !strings.Contains(out, "commit "+commit) {
		t.Errorf("output %q missing commit %q", out, commit)
	}
	if !strings.Contains(out, runtime.Version()) {
		t.Errorf("output %q missing Go version", out)
	}
	if !strings.Contains(out, runtime.GOOS+"/"+runtime.GOARCH) {
		t.Errorf("output %q missing os/arch", out)
	}
}
