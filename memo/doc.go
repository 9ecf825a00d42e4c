// Package memo shares the results of pure text analyses across instances.
//
// A computed attribute caches per instance; two documents with the same text
// would still run the same analysis twice. Tableize puts a bounded table in
// front of an analysis so that equal inputs are analysed once for the whole
// process.
//
// Tableize assumes the wrapped function is pure: its result must depend on its
// arguments only. Do not tableize anything that reads clocks, files or models
// that may change while the table is alive.
//
// Tables are bounded. Each shard keeps two generations; when the current one
// reaches its share of MaxSize it becomes the old generation and a fresh one
// takes its place, so memory stays within about twice the configured size.
package memo
