package gamedata

import (
	"fmt"
	"log"
	"time"
)

// Store is the persistence provider a save slot is written through
type Store interface {
	WriteRecord(key string, blob []byte) error
	ReadRecord(key string) (blob []byte, found bool, err error)
	DeleteRecord(key string) error
}

// Save writes the whole state to key and reports success
// On failure the in-memory state, including the last save time, is untouched
func (s *State) Save(store Store, key string) bool {
	if store == nil {
		log.Printf("Save skipped: no store configured")
		return false
	}

	saveTime := time.UnixMilli(s.now().UnixMilli())
	blob, err := s.MarshalRecord(saveTime)
	if err != nil {
		log.Printf("Save failed: %v", err)
		return false
	}
	if err := store.WriteRecord(key, blob); err != nil {
		log.Printf("Save failed: write %q: %v", key, err)
		return false
	}

	s.lastSaveTime = saveTime
	return true
}

// Load replaces the state with the record stored under key and reports success
// A missing, unreadable or malformed record leaves the state untouched
func (s *State) Load(store Store, key string) bool {
	rec, err := ReadRecord(store, key)
	if err != nil {
		log.Printf("Load failed: %v", err)
		return false
	}
	s.apply(rec)
	return true
}

// HasSave reports whether a decodable record exists under key
func HasSave(store Store, key string) bool {
	_, err := ReadRecord(store, key)
	return err == nil
}

// ReadRecord fetches and validates the record under key without touching any state
func ReadRecord(store Store, key string) (Record, error) {
	if store == nil {
		return Record{}, fmt.Errorf("no store configured")
	}
	blob, found, err := store.ReadRecord(key)
	if err != nil {
		return Record{}, fmt.Errorf("read %q: %w", key, err)
	}
	if !found {
		return Record{}, fmt.Errorf("no record under %q", key)
	}
	return DecodeRecord(blob)
}

// DeleteSave removes the record under key
func DeleteSave(store Store, key string) error {
	if store == nil {
		return fmt.Errorf("no store configured")
	}
	if err := store.DeleteRecord(key); err != nil {
		return fmt.Errorf("delete %q: %w", key, err)
	}
	return nil
}
