package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"tambo-herd/internal/ports/snapshot"
)

// Store persiste la foto del tambo como un único archivo JSON. Escribe a un
// temporal y renombra, así un corte a mitad de escritura no deja el archivo
// por la mitad.
type Store struct {
	path string
}

func New(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Load(ctx context.Context) (snapshot.Snapshot, error) {
	b, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		// Primera corrida: arrancamos vacíos y con candado.
		return snapshot.Empty(), nil
	}
	if err != nil {
		return snapshot.Snapshot{}, fmt.Errorf("leer snapshot %s: %w", s.path, err)
	}

	var snap snapshot.Snapshot
	if err := json.Unmarshal(b, &snap); err != nil {
		return snapshot.Snapshot{}, fmt.Errorf("snapshot corrupto %s: %w", s.path, err)
	}
	return snap, nil
}

func (s *Store) Save(ctx context.Context, snap snapshot.Snapshot) error {
	b, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return err
	}

	tmp := s.path + ".tmp"
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}
