// Package archive persists normalized catalog snapshots in SQLite.
//
// A snapshot is one export run: the source path, the run id of the command
// that produced it, and every StarRecord with missing values stored as NULL.
// Snapshots are append-only; the input catalog is never written back.
//
// Writes retry on SQLITE_BUSY with bounded backoff so two exports against the
// same database do not fail outright.
package archive
