package logging

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/go-hclog"
)

const (
	logFileName   = "app.log"
	timeLayout    = "2006-01-02 15:04:05"
	defaultMaxMem = 200
)

// Entry is one recorded log line.
type Entry struct {
	Timestamp time.Time
	Level     string
	Message   string
	Exception string
	Source    string
}

func (e Entry) String() string {
	return fmt.Sprintf("[%s] [%s] %s", e.Timestamp.Format(timeLayout), e.Level, e.Message)
}

// Filter narrows the entries returned by Entries.
type Filter struct {
	Start    *time.Time
	End      *time.Time
	Level    string
	MaxCount int
}

// Service is the logging sink consumed by the rest of the tool: every
// message goes to the wrapped hclog logger, to a bounded in-memory ring and
// to an on-disk log file. Log methods never return an error; a broken log
// file must not take the provisioning workflow down with it.
type Service struct {
	logger hclog.Logger

	mu      sync.Mutex
	entries []Entry
	maxMem  int
	path    string
}

// NewService creates the logs directory and the backing file lazily. A nil
// logger falls back to the default hclog logger.
func NewService(logger hclog.Logger, dir string) *Service {
	if logger == nil {
		logger = hclog.L()
	}

	return &Service{
		logger: logger,
		maxMem: defaultMaxMem,
		path:   filepath.Join(dir, logFileName),
	}
}

func (s *Service) LogInfo(message string) {
	s.logger.Info(message)
	s.record("INFO", message, "")
}

func (s *Service) LogWarning(message string) {
	s.logger.Warn(message)
	s.record("WARNING", message, "")
}

func (s *Service) LogError(message string, cause error) {
	exception := ""

	if cause != nil {
		exception = cause.Error()
		s.logger.Error(message, "error", cause)
	} else {
		s.logger.Error(message)
	}

	s.record("ERROR", message, exception)
}

func (s *Service) LogDebug(message string) {
	s.logger.Debug(message)
	s.record("DEBUG", message, "")
}

func (s *Service) record(level, message, exception string) {
	entry := Entry{
		Timestamp: time.Now(),
		Level:     level,
		Message:   message,
		Exception: exception,
		Source:    "UserProvisioningTool",
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = append(s.entries, entry)
	if excess := len(s.entries) - s.maxMem; excess > 0 {
		s.entries = s.entries[excess:]
	}

	if err := s.appendToFile(entry); err != nil {
		// Only to the wrapped logger; recording the failure through record
		// would recurse.
		s.logger.Error(fmt.Sprintf("could not write log file: %s", err.Error()))
	}
}

func (s *Service) appendToFile(entry Entry) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	line := fmt.Sprintf("%s [%s] %s", entry.Timestamp.Format(timeLayout), entry.Level, entry.Message)
	if entry.Exception != "" {
		line += " | " + entry.Exception
	}

	_, err = f.WriteString(line + "\n")

	return err
}

// Entries returns recorded entries, newest first. When the in-memory ring
// holds fewer entries than requested the log file is consulted as well.
func (s *Service) Entries(filter Filter) []Entry {
	if filter.MaxCount <= 0 {
		filter.MaxCount = 100
	}

	s.mu.Lock()
	logs := make([]Entry, len(s.entries))
	copy(logs, s.entries)
	s.mu.Unlock()

	if len(logs) < filter.MaxCount {
		logs = append(logs, s.readFromFile()...)
	}

	filtered := logs[:0]

	for _, e := range logs {
		if filter.Start != nil && e.Timestamp.Before(*filter.Start) {
			continue
		}

		if filter.End != nil && e.Timestamp.After(*filter.End) {
			continue
		}

		if filter.Level != "" && !strings.EqualFold(filter.Level, e.Level) {
			continue
		}

		filtered = append(filtered, e)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Timestamp.After(filtered[j].Timestamp)
	})

	if len(filtered) > filter.MaxCount {
		filtered = filtered[:filter.MaxCount]
	}

	return filtered
}

// Clear drops the in-memory entries and moves the current log file aside to a
// timestamped backup.
func (s *Service) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = nil

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return nil
	}

	backup := fmt.Sprintf("%s.bak.%s", s.path, time.Now().Format("20060102150405"))
	if err := os.Rename(s.path, backup); err != nil {
		return err
	}

	return os.WriteFile(s.path, nil, 0o644)
}

// ExportCSV writes the filtered entries to a CSV file and returns its path.
func (s *Service) ExportCSV(path string, filter Filter) (string, error) {
	if filter.MaxCount <= 0 {
		filter.MaxCount = int(^uint(0) >> 1)
	}

	logs := s.Entries(filter)

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", err
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	w := csv.NewWriter(f)

	if err = w.Write([]string{"timestamp", "level", "message", "exception", "source"}); err != nil {
		return "", err
	}

	for _, e := range logs {
		if err = w.Write([]string{e.Timestamp.Format(timeLayout), e.Level, e.Message, e.Exception, e.Source}); err != nil {
			return "", err
		}
	}

	w.Flush()

	return path, w.Error()
}

func (s *Service) readFromFile() []Entry {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil
	}

	var entries []Entry

	for _, line := range strings.Split(string(data), "\n") {
		if entry, ok := parseLine(line); ok {
			entries = append(entries, entry)
		}
	}

	return entries
}

// parseLine reads the "2006-01-02 15:04:05 [LEVEL] message" file format.
// Malformed lines are skipped.
func parseLine(line string) (Entry, bool) {
	line = strings.TrimSpace(line)
	if len(line) < len(timeLayout)+2 {
		return Entry{}, false
	}

	ts, err := time.Parse(timeLayout, line[:len(timeLayout)])
	if err != nil {
		return Entry{}, false
	}

	rest := strings.TrimSpace(line[len(timeLayout):])
	if !strings.HasPrefix(rest, "[") {
		return Entry{}, false
	}

	end := strings.Index(rest, "]")
	if end < 0 {
		return Entry{}, false
	}

	entry := Entry{
		Timestamp: ts,
		Level:     rest[1:end],
		Message:   strings.TrimSpace(rest[end+1:]),
		Source:    "LogFile",
	}

	if msg, exc, found := strings.Cut(entry.Message, " | "); found {
		entry.Message = msg
		entry.Exception = exc
	}

	return entry, true
}
