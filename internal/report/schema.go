package report

// schema is applied every time a Store is opened with Open; its
// IF NOT EXISTS clauses make that a no-op on an existing file. It mirrors SPEC_FULL.md §4.10's three row kinds: one row per
// generated variant, one row per mutation-ledger entry, and one row per
// identified relevant node id.
const schema = `
CREATE TABLE IF NOT EXISTS runs (
	run_id     TEXT PRIMARY KEY,
	root       TEXT NOT NULL,
	started_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS variants (
	run_id   TEXT NOT NULL,
	file_id  INTEGER NOT NULL,
	phase    TEXT NOT NULL,
	level    INTEGER NOT NULL,
	mss      TEXT NOT NULL,
	verdict  TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS mutations (
	run_id   TEXT NOT NULL,
	mss_key  TEXT NOT NULL,
	node_id  INTEGER NOT NULL,
	passings TEXT NOT NULL,
	failings TEXT NOT NULL,
	original TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS identified_nodes (
	run_id  TEXT NOT NULL,
	node_id INTEGER NOT NULL,
	mss_key TEXT NOT NULL,
	source  TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_variants_run   ON variants(run_id);
CREATE INDEX IF NOT EXISTS idx_mutations_run  ON mutations(run_id);
CREATE INDEX IF NOT EXISTS idx_identified_run ON identified_nodes(run_id);
`
