package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/lixenwraith/timeloop/config"
	"github.com/lixenwraith/timeloop/gamedata"
	"github.com/lixenwraith/timeloop/storage"
	"github.com/lixenwraith/timeloop/storage/sqlite"
)

// openStore builds the save store selected by cfg
func openStore(cfg config.Config) (storage.Store, error) {
	switch cfg.StoreDriver {
	case config.StoreMemory:
		return storage.NewMemory(), nil
	case config.StoreFile:
		s, err := storage.NewFile(cfg.SaveDir)
		if err != nil {
			return nil, fmt.Errorf("open file store: %w", err)
		}
		return s, nil
	case config.StoreSQLite:
		if err := os.MkdirAll(filepath.Dir(cfg.SQLitePath), 0o755); err != nil {
			return nil, fmt.Errorf("create sqlite dir: %w", err)
		}
		s, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("open sqlite store: %w", err)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unknown store %q", cfg.StoreDriver)
	}
}

// listSlots prints one line per stored slot, marking the active one
// Unreadable records are listed with their decode error
func listSlots(w io.Writer, store storage.Store, active string) error {
	slots, err := store.ListRecords()
	if err != nil {
		return fmt.Errorf("list slots: %w", err)
	}
	if len(slots) == 0 {
		fmt.Fprintln(w, "no save slots")
		return nil
	}
	for _, slot := range slots {
		mark := " "
		if slot == active {
			mark = "*"
		}
		rec, err := gamedata.ReadRecord(store, slot)
		if err != nil {
			fmt.Fprintf(w, "%s %s  (unreadable: %v)\n", mark, slot, err)
			continue
		}
		saved := time.UnixMilli(rec.SaveTime).Local().Format("2006-01-02 15:04")
		fmt.Fprintf(w, "%s %s  loop %d day %d  %s\n", mark, slot, rec.LoopCount, rec.CurrentDay, saved)
	}
	return nil
}
