package utils

import (
	"reflect"
	"strings"
	"testing"
)

func TestParseCSV(t *testing.T) {
	csvData := `date,duration,project,issue_key,note
2026-03-02,3600,PROJ-WEBSITE,ABC-1,layout fixes
2026-03-03,1800,PROJ-WEBSITE,,standup`

	reader := strings.NewReader(csvData)

	got, err := ParseCSV(reader)
	if err != nil {
		t.Fatalf("ParseCSV returned error: %v", err)
	}

	want := [][]string{
		{"date", "duration", "project", "issue_key", "note"},
		{"2026-03-02", "3600", "PROJ-WEBSITE", "ABC-1", "layout fixes"},
		{"2026-03-03", "1800", "PROJ-WEBSITE", "", "standup"},
	}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseCSV returned %+v, want %+v", got, want)
	}
}
