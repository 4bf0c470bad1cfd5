package journal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestJournal(t *testing.T) *Journal {
	t.Helper()
	j, err := Open(t.TempDir(), time.Hour)
	require.NoError(t, err)
	t.Cleanup(func() { j.Close() })
	return j
}

func TestJournalRecordAndRecent(t *testing.T) {
	j := openTestJournal(t)

	base := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	require.NoError(t, j.RecordScan("keyboard", "BX-001$SKU-A$10$0001", base))
	require.NoError(t, j.RecordScan("camera", "PAIR-123", base.Add(time.Second)))
	require.NoError(t, j.RecordScan("keyboard", "PAIR-456", base.Add(2*time.Second)))

	entries, err := j.Recent(10)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	// Newest first.
	assert.Equal(t, "PAIR-456", entries[0].RawText)
	assert.Equal(t, "PAIR-123", entries[1].RawText)
	assert.Equal(t, "BX-001$SKU-A$10$0001", entries[2].RawText)
	assert.Equal(t, "camera", entries[1].Source)
}

func TestJournalRecentLimit(t *testing.T) {
	j := openTestJournal(t)

	base := time.Now()
	for i := 0; i < 5; i++ {
		require.NoError(t, j.RecordScan("keyboard", "CODE", base.Add(time.Duration(i)*time.Millisecond)))
	}

	entries, err := j.Recent(2)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestJournalRecentEmpty(t *testing.T) {
	j := openTestJournal(t)

	entries, err := j.Recent(10)
	require.NoError(t, err)
	assert.Empty(t, entries)

	entries, err = j.Recent(0)
	require.NoError(t, err)
	assert.Nil(t, entries)
}

func TestJournalSurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	j, err := Open(dir, time.Hour)
	require.NoError(t, err)
	require.NoError(t, j.RecordScan("keyboard", "PERSISTED", time.Now()))
	require.NoError(t, j.Close())

	j, err = Open(dir, time.Hour)
	require.NoError(t, err)
	defer j.Close()

	entries, err := j.Recent(1)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "PERSISTED", entries[0].RawText)
}
