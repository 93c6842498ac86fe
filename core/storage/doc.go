// Package storage persists uploaded templates.
//
// Two backends implement the Store interface:
//
//   - DiskStore keeps templates in a local directory (default "templates"). All
//     access goes through an afero base-path filesystem so a name can never
//     resolve outside that directory.
//   - ObjectStore keeps templates in an S3 compatible bucket through the MinIO Go
//     client, for deployments where several instances share uploads.
//
// # Names
//
// Uploaded filenames are reduced to their final path element by CleanName before
// they touch either backend; "../evil.html" is stored as "evil.html".
//
// # Client Interface
//
// The Client interface abstracts the MinIO client, making it easy to mock object
// storage interactions in unit tests (see core/storage/mocks).
//
// # Usage
//
//	store, err := storage.New(ctx, cfg.Storage)
//	err = store.Save(ctx, "promo.html", file, size)
//	rc, err := store.Open(ctx, "promo.html")
package storage
