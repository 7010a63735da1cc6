package defaults

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/electrical-elites/wishlink/internal/db"
)

// Store manages persistence of the authoring-defaults record.
type Store struct {
	db *db.DB
}

// NewStore creates a new defaults store.
func NewStore(database *db.DB) *Store {
	return &Store{db: database}
}

// Get retrieves the defaults record. A missing record is (nil, nil), not an
// error; callers fall back to the process-wide defaults.
func (s *Store) Get(ctx context.Context) (*Record, error) {
	var rec Record
	err := s.db.QueryRowContext(ctx,
		`SELECT group_name, greeting, group_photo, audio_url, sender, updated_at
		 FROM local_defaults WHERE key = ?`, StorageKey,
	).Scan(&rec.GroupName, &rec.Greeting, &rec.GroupPhoto, &rec.AudioURL, &rec.Sender, &rec.UpdatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting defaults: %w", err)
	}
	return &rec, nil
}

// Save overwrites the defaults record.
func (s *Store) Save(ctx context.Context, rec Record) error {
	now := time.Now().UTC()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO local_defaults (key, group_name, greeting, group_photo, audio_url, sender, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET
		   group_name = excluded.group_name,
		   greeting = excluded.greeting,
		   group_photo = excluded.group_photo,
		   audio_url = excluded.audio_url,
		   sender = excluded.sender,
		   updated_at = excluded.updated_at`,
		StorageKey, rec.GroupName, rec.Greeting, rec.GroupPhoto, rec.AudioURL, rec.Sender, now,
	)
	if err != nil {
		return fmt.Errorf("saving defaults: %w", err)
	}
	return nil
}
