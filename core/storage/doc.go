// Package storage provides object storage access for export CSVs.
//
// It wraps the MinIO client behind a narrow Client interface (bucket check,
// get, put, list) so the HTTP reconcile feature and the export command can
// read and write CSVs in a bucket without knowing the provider, and so tests
// can substitute the generated mock in mocks/.
//
// The client is configured with strict connection timeouts; every operation
// additionally honors its context.
package storage
