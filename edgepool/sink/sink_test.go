package sink

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"edgeip_curator/edgepool/model"
	"edgeip_curator/internal/shared/types"
)

func testList() *model.CuratedList {
	return &model.CuratedList{
		Addresses:   []string{"1.2.3.4", "5.6.7.8"},
		Source:      "https://example.com/edge.html",
		GeneratedAt: time.Date(2026, 8, 30, 12, 30, 0, 0, time.UTC),
		Count:       2,
		RunID:       "run-test",
	}
}

func TestLinesSinkWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	s := NewLinesSink(path, time.UTC)

	if err := s.Write(testList()); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	got := string(data)

	for _, want := range []string{
		"# 更新时间: 2026-08-30 12:30:00",
		"# 数据来源: https://example.com/edge.html",
		"# 总数: 2",
		"1.2.3.4\n5.6.7.8\n",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("lines output missing %q:\n%s", want, got)
		}
	}
}

func TestLinesSinkTimezone(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Shanghai")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}
	path := filepath.Join(t.TempDir(), "out.txt")
	s := NewLinesSink(path, loc)

	if err := s.Write(testList()); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	data, _ := os.ReadFile(path)
	if !strings.Contains(string(data), "# 更新时间: 2026-08-30 20:30:00") {
		t.Errorf("timestamp not rendered in Asia/Shanghai:\n%s", data)
	}
}

func TestCommaSinkWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	s := NewCommaSink(path)

	if err := s.Write(testList()); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	data, _ := os.ReadFile(path)
	if string(data) != "1.2.3.4,5.6.7.8\n" {
		t.Errorf("comma output = %q", data)
	}
}

func TestJSONSinkWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	s := NewJSONSink(path, time.UTC)

	if err := s.Write(testList()); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	data, _ := os.ReadFile(path)
	var record struct {
		UpdateTime string   `json:"update_time"`
		Source     string   `json:"source"`
		TotalCount int      `json:"total_count"`
		Addresses  []string `json:"addresses"`
	}
	if err := json.Unmarshal(data, &record); err != nil {
		t.Fatalf("invalid JSON output: %v", err)
	}
	if record.UpdateTime != "2026-08-30 12:30:00" || record.TotalCount != 2 || len(record.Addresses) != 2 {
		t.Errorf("unexpected record: %+v", record)
	}
}

func TestJSONSinkEmptyListYieldsArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	s := NewJSONSink(path, time.UTC)

	empty := &model.CuratedList{Source: "s", GeneratedAt: time.Now(), RunID: "r"}
	if err := s.Write(empty); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	data, _ := os.ReadFile(path)
	if strings.Contains(string(data), `"addresses": null`) {
		t.Errorf("empty list must serialize as [] not null:\n%s", data)
	}
}

func TestFromConfig(t *testing.T) {
	dir := t.TempDir()
	cfg := types.SinkConf{
		OutputDir: dir,
		Formats:   "lines, comma ,json",
		LinesFile: "a.txt",
		CommaFile: "b.csv",
		JSONFile:  "c.json",
	}

	sinks, err := FromConfig(cfg)
	if err != nil {
		t.Fatalf("FromConfig failed: %v", err)
	}
	if len(sinks) != 3 {
		t.Fatalf("got %d sinks, want 3", len(sinks))
	}
	wantNames := []string{
		filepath.Join(dir, "a.txt"),
		filepath.Join(dir, "b.csv"),
		filepath.Join(dir, "c.json"),
	}
	for i, s := range sinks {
		if s.Name() != wantNames[i] {
			t.Errorf("sink[%d].Name() = %q, want %q", i, s.Name(), wantNames[i])
		}
	}
}

func TestFromConfigDefaultsAndErrors(t *testing.T) {
	sinks, err := FromConfig(types.SinkConf{})
	if err != nil {
		t.Fatalf("FromConfig with defaults failed: %v", err)
	}
	if len(sinks) != 1 || sinks[0].Name() != filepath.Join(".", "telecom_ips.txt") {
		t.Errorf("default sink set unexpected: %v", sinks)
	}

	if _, err := FromConfig(types.SinkConf{Formats: "xml"}); err == nil {
		t.Error("unknown format must be rejected")
	}
}
