package extcheck

import (
	"context"
	"strings"
	"testing"
	"time"
)

func TestRun_Success(t *testing.T) {
	res := Run(context.Background(), t.TempDir(), 10*time.Second, "sh", "-c", "echo ok")
	if !res.Passed() {
		t.Fatalf("expected success: %+v", res)
	}
	if strings.TrimSpace(res.Output) != "ok" {
		t.Errorf("output = %q", res.Output)
	}
}

func TestRun_NonZeroExit(t *testing.T) {
	res := Run(context.Background(), t.TempDir(), 10*time.Second, "sh", "-c", "echo oops; exit 3")
	if res.Passed() {
		t.Fatal("non-zero exit must not pass")
	}
	if res.ExitCode != 3 {
		t.Errorf("exit code = %d, want 3", res.ExitCode)
	}
	if res.Err != nil {
		t.Errorf("a clean non-zero exit is not a run error: %v", res.Err)
	}
	if strings.TrimSpace(res.Output) != "oops" {
		t.Errorf("output = %q", res.Output)
	}
}

func TestRun_Timeout(t *testing.T) {
	res := Run(context.Background(), t.TempDir(), 100*time.Millisecond, "sh", "-c", "sleep 5")
	if !res.TimedOut {
		t.Fatalf("expected timeout: %+v", res)
	}
	if res.Passed() {
		t.Error("a timed-out command must not pass")
	}
}

func TestRun_MissingBinary(t *testing.T) {
	res := Run(context.Background(), t.TempDir(), 10*time.Second, "pygauge-no-such-tool")
	if res.Err == nil {
		t.Fatal("expected a start error")
	}
	if res.Passed() {
		t.Error("an unstartable command must not pass")
	}
}
