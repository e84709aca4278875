package history

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osdfir/giftctl/pkg/manifest"
)

func TestLoad_MissingFile(t *testing.T) {
	store := NewStoreWithDir(t.TempDir())

	records, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestAppendAndLoad(t *testing.T) {
	store := NewStoreWithDir(t.TempDir())

	record := Record{
		RunID:      uuid.NewString(),
		Time:       time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
		Categories: []manifest.Category{manifest.CategoryDebug, manifest.CategoryTest},
		Packages:   42,
		Outcome:    OutcomeSuccess,
	}

	require.NoError(t, store.Append(record))

	records, err := store.Load()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, record, records[0])
}

func TestAppend_PreservesOrder(t *testing.T) {
	store := NewStoreWithDir(t.TempDir())

	for i := 0; i < 3; i++ {
		require.NoError(t, store.Append(Record{
			RunID:    fmt.Sprintf("run-%d", i),
			Time:     time.Now().UTC(),
			Packages: i,
			Outcome:  OutcomeSuccess,
		}))
	}

	records, err := store.Load()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "run-0", records[0].RunID)
	assert.Equal(t, "run-2", records[2].RunID)
}

func TestAppend_FailureRecord(t *testing.T) {
	store := NewStoreWithDir(t.TempDir())

	require.NoError(t, store.Append(Record{
		RunID:   uuid.NewString(),
		Time:    time.Now().UTC(),
		Outcome: OutcomeFailure,
		Error:   "install runtime packages: dnf failed",
	}))

	records, err := store.Load()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, OutcomeFailure, records[0].Outcome)
	assert.Contains(t, records[0].Error, "dnf failed")
}

func TestAppend_TrimsToMaxRecords(t *testing.T) {
	store := NewStoreWithDir(t.TempDir())

	for i := 0; i < MaxRecords+5; i++ {
		require.NoError(t, store.Append(Record{
			RunID:   fmt.Sprintf("run-%d", i),
			Time:    time.Now().UTC(),
			Outcome: OutcomeSuccess,
		}))
	}

	records, err := store.Load()
	require.NoError(t, err)
	require.Len(t, records, MaxRecords)
	assert.Equal(t, "run-5", records[0].RunID)
}
