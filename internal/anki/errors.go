// Package anki implements a bidirectional codec for the Anki .apkg
// archive format: a zip container holding a SQLite collection database
// plus a media manifest.
package anki

import "errors"

// Import/export failure taxonomy. Callers discriminate with errors.Is;
// every error returned by this package wraps exactly one of these.
var (
	// ErrCorruptArchive: the container cannot be read as a zip archive,
	// or a member cannot be decompressed.
	ErrCorruptArchive = errors.New("archive is not a readable zip container")

	// ErrMissingDatabase: none of the known collection members exist.
	ErrMissingDatabase = errors.New("no collection database found in archive")

	// ErrUnsupportedCompressedSchema: only the zstd-compressed collection
	// (collection.anki21b) is present. Its encoding is structurally
	// different from the plain schema; parsing it as such would silently
	// corrupt results, so it is rejected outright.
	ErrUnsupportedCompressedSchema = errors.New(
		"archive only contains the compressed collection format (collection.anki21b); " +
			"re-export the deck from Anki with \"Support older Anki versions\" checked")

	// ErrCorruptDatabase: a collection member was found but could not be
	// opened or queried as a SQLite database.
	ErrCorruptDatabase = errors.New("collection database could not be opened")

	// ErrExportFailed: database construction or packaging failed during
	// export. Export is all-or-nothing; no partial archive is produced.
	ErrExportFailed = errors.New("deck export failed")
)
