package project

import (
	"io"

	"github.com/minio/highwayhash"
)

// documentKey keys document checksums; changing it makes every saved checksum stale
var documentKey = []byte("smarty/project-document/checksum")

// Checksum returns 64-bit highway hash of the canonical export
func (p *Project) Checksum() (uint64, error) {
	return documentChecksum(p.Export())
}

func documentChecksum(text string) (uint64, error) {
	hash, err := highwayhash.New64(documentKey)
	if err != nil {
		return 0, err
	}
	if _, err = io.WriteString(hash, text); err != nil {
		return 0, err
	}
	return hash.Sum64(), nil
}

// MarkSaved records current checksum as the saved state
func (p *Project) MarkSaved() error {
	checksum, err := p.Checksum()
	if err != nil {
		return err
	}
	p.saved = checksum
	return nil
}

// Modified returns true if the export changed since the last MarkSaved
func (p *Project) Modified() bool {
	checksum, err := p.Checksum()
	if err != nil {
		return true
	}
	return checksum != p.saved
}
