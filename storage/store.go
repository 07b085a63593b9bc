// Package storage provides the persistence providers save slots are written to.
package storage

import "errors"

// ErrQuotaExceeded is reported by providers that run out of space
var ErrQuotaExceeded = errors.New("storage quota exceeded")

// Store persists opaque record blobs by key
// ReadRecord reports absence through found rather than an error
type Store interface {
	WriteRecord(key string, blob []byte) error
	ReadRecord(key string) (blob []byte, found bool, err error)
	DeleteRecord(key string) error
	ListRecords() ([]string, error)
	Close() error
}
