// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Record is one persisted account entry: the id and the password stored
// under the username key. On disk it is a two-element tuple, a format kept
// for compatibility with existing users.json files:
//
//	{"alice": [123, "secret"], "bob": [7, "hunter2"]}
type Record struct {
	UserID   uint32
	Password string
}

// MarshalJSON renders the record as the [id, password] tuple.
func (r Record) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]any{r.UserID, r.Password})
}

// UnmarshalJSON parses the [id, password] tuple form.
func (r *Record) UnmarshalJSON(data []byte) error {
	var tuple []json.RawMessage
	if err := json.Unmarshal(data, &tuple); err != nil {
		return fmt.Errorf("record is not a tuple: %w", err)
	}
	if len(tuple) != 2 {
		return fmt.Errorf("record tuple has %d elements, want 2", len(tuple))
	}

	var id uint64
	if err := json.Unmarshal(tuple[0], &id); err != nil {
		return fmt.Errorf("record id: %w", err)
	}
	if id >= 1<<32 {
		return fmt.Errorf("record id %d outside the id space", id)
	}
	if err := json.Unmarshal(tuple[1], &r.Password); err != nil {
		return fmt.Errorf("record password: %w", err)
	}

	r.UserID = uint32(id)
	return nil
}

// FileStore persists the full username→(id, password) relation as a single
// JSON document. It is the persistence collaborator of [Registry]: load
// reads and parses the whole document, save rewrites it wholesale. There is
// no partial or append mode.
type FileStore struct {
	path string
}

// NewFileStore points the store at the given document path. The file is not
// touched until Load or Save is called.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads and parses the users document.
//
// A missing file or a document that does not parse is an error; callers at
// startup must treat it as fatal rather than continue with empty state.
func (f *FileStore) Load() (map[string]Record, error) {
	raw, err := os.ReadFile(f.path)
	if err != nil {
		return nil, fmt.Errorf("reading users document %s: %w", f.path, err)
	}

	var doc map[string]Record
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorruptDocument, f.path, err)
	}

	return doc, nil
}

// Save overwrites the users document with doc. The write goes through a
// temporary file in the same directory followed by a rename, so readers
// never observe a partially written document.
func (f *FileStore) Save(doc map[string]Record) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding users document: %w", err)
	}

	dir := filepath.Dir(f.path)
	tmp, err := os.CreateTemp(dir, ".users-*.json")
	if err != nil {
		return fmt.Errorf("creating temp users document: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("writing users document: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("closing users document: %w", err)
	}

	if err := os.Rename(tmp.Name(), f.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replacing users document: %w", err)
	}

	return nil
}
