package rdf

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Writer persists a serialized graph as a .ttl/.rdf sibling pair. Per-user
// documents go under the usuarios directory named by numeric id; bulk table
// documents go under the instancias directory with one fixed name per table.
//
// Both files are written to uniquely named temp files first and renamed into
// place only after both writes succeed, so a failed run never leaves a
// half-written document behind. Two concurrent writers for the same user
// still race rename-vs-rename (last writer wins), which is acceptable for a
// derived cache: each writer renames a self-consistent full replacement.
type Writer struct {
	userDir     string
	instanceDir string
}

// NewWriter returns a writer rooted at outputDir.
func NewWriter(outputDir string) *Writer {
	return &Writer{
		userDir:     filepath.Join(outputDir, "usuarios"),
		instanceDir: filepath.Join(outputDir, "instancias"),
	}
}

// UserFilename is the base name of a user's Turtle document, also used as
// the download filename on the dynamic ontology route.
func UserFilename(userID int64) string {
	return fmt.Sprintf("usuario_%d.ttl", userID)
}

// WriteUserDocument persists both serializations for one user.
func (w *Writer) WriteUserDocument(userID int64, turtle, rdfxml string) error {
	base := fmt.Sprintf("usuario_%d", userID)
	return w.writePair(w.userDir, base, turtle, rdfxml)
}

// WriteTableDocument persists both serializations for one bulk table export.
func (w *Writer) WriteTableDocument(table, turtle, rdfxml string) error {
	return w.writePair(w.instanceDir, table, turtle, rdfxml)
}

func (w *Writer) writePair(dir, base, turtle, rdfxml string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: creating %s: %v", ErrPersistence, dir, err)
	}

	ttlPath := filepath.Join(dir, base+".ttl")
	rdfPath := filepath.Join(dir, base+".rdf")

	suffix := "." + uuid.New().String() + ".tmp"
	ttlTmp := ttlPath + suffix
	rdfTmp := rdfPath + suffix

	if err := os.WriteFile(ttlTmp, []byte(turtle), 0o644); err != nil {
		return fmt.Errorf("%w: writing %s: %v", ErrPersistence, ttlTmp, err)
	}
	if err := os.WriteFile(rdfTmp, []byte(rdfxml), 0o644); err != nil {
		os.Remove(ttlTmp)
		return fmt.Errorf("%w: writing %s: %v", ErrPersistence, rdfTmp, err)
	}

	if err := os.Rename(ttlTmp, ttlPath); err != nil {
		os.Remove(ttlTmp)
		os.Remove(rdfTmp)
		return fmt.Errorf("%w: renaming %s: %v", ErrPersistence, ttlPath, err)
	}
	if err := os.Rename(rdfTmp, rdfPath); err != nil {
		os.Remove(rdfTmp)
		return fmt.Errorf("%w: renaming %s: %v", ErrPersistence, rdfPath, err)
	}
	return nil
}
