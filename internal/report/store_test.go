package report_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/nccat/nccat/internal/report"
)

func TestStoreRecordsAndTalliesVariants(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "report.db")
	store, err := report.Open(dbPath)
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	runID := "run-1"
	if err := store.RecordRun(runID, "/tmp/root", time.Now()); err != nil {
		t.Fatal(err)
	}
	if err := store.RecordVariant(runID, 1, "phase1", 1, "[3]", "pass"); err != nil {
		t.Fatal(err)
	}
	if err := store.RecordVariant(runID, 2, "phase1", 1, "[4]", "fail"); err != nil {
		t.Fatal(err)
	}
	if err := store.RecordVariant(runID, 3, "phase1", 1, "[5]", "invalid"); err != nil {
		t.Fatal(err)
	}

	tallies, err := store.Tallies(runID)
	if err != nil {
		t.Fatal(err)
	}
	if len(tallies) != 1 {
		t.Fatalf("expected one phase/level group, got %d", len(tallies))
	}
	got := tallies[0]
	if got.Passings != 1 || got.Failings != 1 || got.Invalids != 1 {
		t.Fatalf("unexpected tally: %+v", got)
	}

	if err := store.RecordIdentifiedNode(runID, 3, "[3]", "singleton"); err != nil {
		t.Fatal(err)
	}
	if err := store.RecordIdentifiedNode(runID, 1, "[1,3]", "larger-r"); err != nil {
		t.Fatal(err)
	}
	ids, err := store.IdentifiedNodeIDs(runID)
	if err != nil {
		t.Fatal(err)
	}
	if len(ids) != 2 || ids[0] != 1 || ids[1] != 3 {
		t.Fatalf("expected sorted distinct ids [1 3], got %v", ids)
	}

	if err := store.RecordMutation(runID, "[3]", 3, []string{"2", "4"}, []string{"0"}, "1"); err != nil {
		t.Fatal(err)
	}

	latest, err := store.LatestRunID()
	if err != nil {
		t.Fatal(err)
	}
	if latest != runID {
		t.Fatalf("expected latest run id %q, got %q", runID, latest)
	}
}

func TestLatestRunIDEmptyStoreReturnsEmptyString(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "report.db")
	store, err := report.Open(dbPath)
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	id, err := store.LatestRunID()
	if err != nil {
		t.Fatal(err)
	}
	if id != "" {
		t.Fatalf("expected empty run id for a fresh store, got %q", id)
	}
}

func TestOpenReadOnlySeesCommittedRows(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "report.db")
	store, err := report.Open(dbPath)
	if err != nil {
		t.Fatal(err)
	}
	if err := store.RecordRun("run-1", "/tmp/root", time.Now()); err != nil {
		t.Fatal(err)
	}
	store.Close()

	ro, err := report.OpenReadOnly(dbPath)
	if err != nil {
		t.Fatal(err)
	}
	defer ro.Close()

	id, err := ro.LatestRunID()
	if err != nil {
		t.Fatal(err)
	}
	if id != "run-1" {
		t.Fatalf("expected to read back run-1, got %q", id)
	}
}
