package services

import (
	"chat-uploads/domain"
	"chat-uploads/domain/mimetypes"
	"chat-uploads/errors"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
)

// AssembledFile describes the durable result of one assembly pass.
type AssembledFile struct {
	Path      string
	Digest    string
	SizeBytes int64
}

// HashingAssembler writes a session's buffered chunks to durable storage in
// strict index order and computes the SHA-256 content digest while writing.
// It operates on evicted sessions only, so it never holds a store lock
// across disk I/O.
type HashingAssembler struct {
	log     *slog.Logger
	rootDir string
}

func NewHashingAssembler(log *slog.Logger, rootDir string) *HashingAssembler {
	return &HashingAssembler{log: log, rootDir: rootDir}
}

// Assemble writes chunks 1..ExpectedTotal in index order regardless of how
// they arrived, failing with the exact missing index if a gap slipped past
// the store's completion check. This is the final integrity gate.
func (a *HashingAssembler) Assemble(session *domain.UploadSession) (AssembledFile, error) {
	category := mimetypes.RouteFor(session.ContentType)
	targetDir := filepath.Join(a.rootDir, string(category))
	path := filepath.Join(targetDir, a.uniqueName(session))

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return AssembledFile{}, fmt.Errorf("%w: creating %s: %v", errors.ErrAssemblyIO, path, err)
	}

	hasher := sha256.New()
	w := io.MultiWriter(f, hasher)

	var written int64
	for i := 1; i <= session.ExpectedTotal; i++ {
		data, ok := session.Chunks[i]
		if !ok {
			_ = f.Close()
			_ = os.Remove(path)
			return AssembledFile{}, fmt.Errorf("%w: chunk index %d missing at write time",
				errors.ErrAssemblyIO, i)
		}
		n, err := w.Write(data)
		written += int64(n)
		if err != nil {
			_ = f.Close()
			_ = os.Remove(path)
			return AssembledFile{}, fmt.Errorf("%w: writing chunk %d: %v", errors.ErrAssemblyIO, i, err)
		}
	}

	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return AssembledFile{}, fmt.Errorf("%w: closing %s: %v", errors.ErrAssemblyIO, path, err)
	}

	// Declared size is advisory client metadata, not authoritative.
	if written != session.DeclaredFileSize {
		a.log.Warn("Assembled size differs from declared size",
			"file", path,
			"written", humanize.Bytes(uint64(written)),
			"declared", humanize.Bytes(uint64(session.DeclaredFileSize)),
		)
	}

	a.auditRouting(path, session.ContentType, category)

	return AssembledFile{
		Path:      path,
		Digest:    hex.EncodeToString(hasher.Sum(nil)),
		SizeBytes: written,
	}, nil
}

// auditRouting sniffs the written file's magic bytes and logs when the
// detected type would have routed elsewhere. Log-only: the declared type
// decided placement and the file stays where it is.
func (a *HashingAssembler) auditRouting(path, declared string, routed mimetypes.Category) {
	detected, detectedCategory, err := mimetypes.DetectCategory(path)
	if err != nil {
		a.log.Debug("Content sniffing failed", "file", path, "error", err)
		return
	}
	if detectedCategory != routed {
		a.log.Warn("File content does not match declared type",
			"file", path,
			"declared", declared,
			"detected", detected,
			"routed", routed,
			"detected_category", detectedCategory,
		)
	}
}

// uniqueName generates a collision-resistant file name. The random uuid
// fragment is load-bearing: a timestamp alone can collide under concurrent
// generation.
func (a *HashingAssembler) uniqueName(session *domain.UploadSession) string {
	ext := filepath.Ext(session.FileName)
	if ext == "" {
		ext = mimetypes.ExtensionFor(session.ContentType)
	}
	base := sanitizeFileName(strings.TrimSuffix(session.FileName, ext))
	suffix := strings.Split(uuid.NewString(), "-")[0]
	return fmt.Sprintf("%d_%s_%s%s", time.Now().UnixMilli(), base, suffix, ext)
}

// sanitizeFileName strips anything from a client-supplied name that could
// escape the target directory or confuse the filesystem.
func sanitizeFileName(name string) string {
	// Drop any path the client smuggled in, both separators considered.
	name = filepath.Base(name)
	if idx := strings.LastIndexAny(name, `/\`); idx >= 0 {
		name = name[idx+1:]
	}

	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '-' || r == '_' || r == '.':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}

	cleaned := strings.Trim(b.String(), "._")
	if cleaned == "" {
		cleaned = "upload"
	}
	if len(cleaned) > 120 {
		cleaned = cleaned[:120]
	}
	return cleaned
}
