// Package kv provides the local key-value store behind the portal client.
//
// Two implementations satisfy TxStore:
//
//   - SQLiteStore keeps pairs in the kv table created by the embedded
//     migrations; WithinTx maps onto a database transaction.
//   - MemoryStore keeps pairs in a map; WithinTx works on a copy that
//     replaces the map only when fn succeeds.
//
// LoadJSON, SaveJSON and Update are the helpers services use: each value
// is one JSON document, rewritten whole on every change.
package kv
