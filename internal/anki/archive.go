package anki

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
)

// Known collection member names, in lookup priority order. The legacy
// name is tried first because it is what every consumer can open.
const (
	legacyCollectionName     = "collection.anki2"
	modernCollectionName     = "collection.anki21"
	compressedCollectionName = "collection.anki21b"

	mediaManifestName = "media"
)

// emptyMediaManifest is the JSON object mapping archive media file names
// to original names; exports carry no media.
const emptyMediaManifest = "{}"

// extractCollection locates and returns the embedded collection database
// bytes from an .apkg byte buffer.
func extractCollection(archive []byte) ([]byte, error) {
	zr, err := zip.NewReader(bytes.NewReader(archive), int64(len(archive)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptArchive, err)
	}

	members := make(map[string]*zip.File, len(zr.File))
	for _, f := range zr.File {
		members[f.Name] = f
	}

	for _, name := range []string{legacyCollectionName, modernCollectionName} {
		if f, ok := members[name]; ok {
			return readMember(f)
		}
	}

	if _, ok := members[compressedCollectionName]; ok {
		return nil, ErrUnsupportedCompressedSchema
	}

	return nil, ErrMissingDatabase
}

func readMember(f *zip.File) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("%w: open member %s: %v", ErrCorruptArchive, f.Name, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("%w: read member %s: %v", ErrCorruptArchive, f.Name, err)
	}
	return data, nil
}

// packageArchive wraps collection database bytes into a fresh .apkg
// container: the legacy member name plus an empty media manifest.
func packageArchive(collection []byte) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	dbEntry, err := zw.Create(legacyCollectionName)
	if err != nil {
		return nil, fmt.Errorf("create %s member: %w", legacyCollectionName, err)
	}
	if _, err := dbEntry.Write(collection); err != nil {
		return nil, fmt.Errorf("write %s member: %w", legacyCollectionName, err)
	}

	mediaEntry, err := zw.Create(mediaManifestName)
	if err != nil {
		return nil, fmt.Errorf("create media member: %w", err)
	}
	if _, err := mediaEntry.Write([]byte(emptyMediaManifest)); err != nil {
		return nil, fmt.Errorf("write media member: %w", err)
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("finalize archive: %w", err)
	}
	return buf.Bytes(), nil
}
