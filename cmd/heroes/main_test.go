package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dshills/superheroes/internal/hero"
)

// execute runs the root command with args and the given stdin, returning stdout.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd(strings.NewReader(stdin), &out)
	root.SetArgs(args)
	root.SetErr(&bytes.Buffer{})
	err := root.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func exitCode(err error) int {
	var ee *exitErr
	if errors.As(err, &ee) {
		return ee.code
	}
	return -1
}

func TestList_Text(t *testing.T) {
	out, err := execute(t, "", "list", "--case", "upper", "--color=false")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if !strings.Contains(out, "Name:            FORGETMENOT") {
		t.Errorf("expected uppercase name in output:\n%s", out)
	}
	if !strings.Contains(out, "Comic Universe:  Marvel") {
		t.Errorf("universe should not be case transformed:\n%s", out)
	}
	if strings.Count(out, "Ranking:") != 10 {
		t.Errorf("expected 10 records, got %d", strings.Count(out, "Ranking:"))
	}
}

func TestSearch_PowerJSON(t *testing.T) {
	out, err := execute(t, "", "search", "--field", "power", "--format", "json", "--case", "as-entered", "FLIGHT")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	var views []hero.View
	if err := json.Unmarshal([]byte(out), &views); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, out)
	}
	if len(views) != 1 || views[0].Name != "Krypto" || views[0].Rank != "10" {
		t.Errorf("unexpected result: %+v", views)
	}
}

func TestSearch_NoMatchExitsOne(t *testing.T) {
	_, err := execute(t, "", "search", "nonexistent123")
	if err == nil {
		t.Fatal("expected error for no matches")
	}
	if code := exitCode(err); code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
}

func TestSearch_BadField(t *testing.T) {
	_, err := execute(t, "", "search", "--field", "weakness", "cold")
	if code := exitCode(err); code != 3 {
		t.Errorf("exit code = %d, want 3 (err %v)", code, err)
	}
}

func TestRank_Order(t *testing.T) {
	out, err := execute(t, "", "rank", "--format", "json")
	if err != nil {
		t.Fatalf("rank: %v", err)
	}
	var views []hero.View
	if err := json.Unmarshal([]byte(out), &views); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(views) != 10 {
		t.Fatalf("len = %d, want 10", len(views))
	}
	if views[0].Name != "mr. immortal" || views[9].Name != "krypto" {
		t.Errorf("unexpected rank order: first %q last %q", views[0].Name, views[9].Name)
	}
}

func TestSort_WithDiff(t *testing.T) {
	out, err := execute(t, "", "sort", "--format", "table", "--case", "as-entered", "--sort-diff")
	if err != nil {
		t.Fatalf("sort: %v", err)
	}
	if strings.Index(out, "Alpha") > strings.Index(out, "Skin") {
		t.Errorf("Alpha should be listed before Skin:\n%s", out)
	}
	if !strings.Contains(out, "+Alpha\n") {
		t.Errorf("expected order diff in output:\n%s", out)
	}
}

func TestSeedFile(t *testing.T) {
	path := writeFile(t, "seed.yaml", `heroes:
  - name: Squirrel Girl
    power: Talks to squirrels
    universe: Marvel
    year_introduced: "1992"
    rank: 1
`)
	out, err := execute(t, "", "list", "--seed", path, "--case", "as-entered")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if !strings.Contains(out, "Squirrel Girl") || strings.Contains(out, "Krypto") {
		t.Errorf("seed file not used:\n%s", out)
	}
}

func TestSeedFile_DuplicateRank(t *testing.T) {
	path := writeFile(t, "seed.yaml", "heroes:\n  - name: A\n    rank: 1\n  - name: B\n    rank: 1\n")
	_, err := execute(t, "", "list", "--seed", path)
	if code := exitCode(err); code != 3 {
		t.Errorf("exit code = %d, want 3 (err %v)", code, err)
	}
}

func TestConfigFile(t *testing.T) {
	path := writeFile(t, "heroes.yaml", "display:\n  format: json\n  case: upper\n")
	out, err := execute(t, "", "search", "--config", path, "skin")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if !strings.Contains(out, `"name": "SKIN"`) {
		t.Errorf("config file not applied:\n%s", out)
	}
}

func TestInvalidFormat(t *testing.T) {
	_, err := execute(t, "", "list", "--format", "xml")
	if code := exitCode(err); code != 3 {
		t.Errorf("exit code = %d, want 3 (err %v)", code, err)
	}
}

// End-to-end: duplicate rank 10 is refused, rank 11 succeeds and lands last.
func TestMenu_AddDuplicateThenUnique(t *testing.T) {
	input := strings.Join([]string{
		"5", "Newcomer", "Can test things", "Flaky builds", "2026", "Other",
		"10", "11",
		"6", "0",
	}, "\n") + "\n"

	out, err := execute(t, input, "--case", "as-entered", "--color=false")
	if err != nil {
		t.Fatalf("menu: %v", err)
	}
	if !strings.Contains(out, "Ranking already exists for another superhero.") {
		t.Errorf("duplicate rank was not reported:\n%s", out)
	}
	if !strings.Contains(out, "New superhero added successfully!") {
		t.Errorf("add did not succeed:\n%s", out)
	}
	ranking := out[strings.Index(out, "Superheroes sorted by unique ranking:"):]
	if strings.Index(ranking, "Krypto") > strings.Index(ranking, "Newcomer") {
		t.Errorf("new record should be listed last by rank:\n%s", ranking)
	}
	if strings.Count(ranking, "Ranking:") != 11 {
		t.Errorf("expected 11 records, got %d", strings.Count(ranking, "Ranking:"))
	}
}
