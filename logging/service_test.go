package logging

import (
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testService(t *testing.T) (*Service, string) {
	t.Helper()

	dir := t.TempDir()

	return NewService(hclog.NewNullLogger(), dir), dir
}

func TestService_RecordAndList(t *testing.T) {
	service, _ := testService(t)

	service.LogInfo("provisioning started")
	service.LogWarning("license catalog unavailable")
	service.LogError("create failed", errors.New("status 400"))

	entries := service.Entries(Filter{MaxCount: 2})

	// newest first, capped at MaxCount
	require.Len(t, entries, 2)
	assert.Equal(t, "ERROR", entries[0].Level)
	assert.Equal(t, "create failed", entries[0].Message)
	assert.Equal(t, "status 400", entries[0].Exception)
	assert.Equal(t, "WARNING", entries[1].Level)
}

func TestService_LevelFilter(t *testing.T) {
	service, _ := testService(t)

	service.LogInfo("one")
	service.LogError("two", nil)
	service.LogInfo("three")

	entries := service.Entries(Filter{Level: "info", MaxCount: 1})

	require.Len(t, entries, 1)
	assert.Equal(t, "three", entries[0].Message)
}

func TestService_RingIsBounded(t *testing.T) {
	service, _ := testService(t)
	service.maxMem = 5

	for i := 0; i < 20; i++ {
		service.LogInfo("message")
	}

	service.mu.Lock()
	defer service.mu.Unlock()
	assert.Len(t, service.entries, 5)
}

func TestService_FileSurvivesRestart(t *testing.T) {
	service, dir := testService(t)

	service.LogInfo("before restart")
	service.LogError("with cause", errors.New("boom"))

	reopened := NewService(hclog.NewNullLogger(), dir)
	entries := reopened.Entries(Filter{})

	require.Len(t, entries, 2)

	messages := []string{entries[0].Message, entries[1].Message}
	assert.Contains(t, messages, "before restart")
	assert.Contains(t, messages, "with cause")

	for _, entry := range entries {
		if entry.Message == "with cause" {
			assert.Equal(t, "boom", entry.Exception)
		}
	}
}

func TestService_Clear(t *testing.T) {
	service, dir := testService(t)

	service.LogInfo("to be cleared")
	require.NoError(t, service.Clear())

	assert.Empty(t, service.Entries(Filter{}))

	// a timestamped backup of the old file remains
	matches, err := filepath.Glob(filepath.Join(dir, "app.log.bak.*"))
	require.NoError(t, err)
	assert.Len(t, matches, 1)
}

func TestService_ExportCSV(t *testing.T) {
	service, dir := testService(t)

	service.LogInfo("exported line")

	path, err := service.ExportCSV(filepath.Join(dir, "export", "log.csv"), Filter{})
	require.NoError(t, err)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"timestamp", "level", "message", "exception", "source"}, rows[0])
	assert.Equal(t, "exported line", rows[1][2])
}

func TestParseLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		ok   bool
		want Entry
	}{
		{
			name: "plain line",
			line: "2026-08-30 10:15:00 [INFO] provisioning started",
			ok:   true,
			want: Entry{Level: "INFO", Message: "provisioning started"},
		},
		{
			name: "line with exception",
			line: "2026-08-30 10:15:01 [ERROR] create failed | status 400",
			ok:   true,
			want: Entry{Level: "ERROR", Message: "create failed", Exception: "status 400"},
		},
		{name: "garbage", line: "not a log line", ok: false},
		{name: "empty", line: "", ok: false},
		{name: "missing level", line: "2026-08-30 10:15:00 no brackets here", ok: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry, ok := parseLine(tt.line)
			if ok != tt.ok {
				t.Fatalf("parseLine() ok = %v, want %v", ok, tt.ok)
			}

			if !ok {
				return
			}

			if entry.Level != tt.want.Level || entry.Message != tt.want.Message || entry.Exception != tt.want.Exception {
				t.Errorf("parseLine() = %+v, want %+v", entry, tt.want)
			}
		})
	}
}

func TestEntry_String(t *testing.T) {
	entry, ok := parseLine("2026-08-30 10:15:00 [INFO] started")
	require.True(t, ok)
	assert.Equal(t, "[2026-08-30 10:15:00] [INFO] started", entry.String())
}
