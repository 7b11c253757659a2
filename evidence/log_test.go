package evidence

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLog_RecordAndSnapshot(t *testing.T) {
	log := NewLog()
	log.Record("dataset", "3 similar cases")
	log.Record("rules", "2 red flags checked")

	items := log.Snapshot(false)
	require.Len(t, items, 2)
	assert.Equal(t, Item{Source: "dataset", Detail: "3 similar cases"}, items[0])
	assert.Equal(t, Item{Source: "rules", Detail: "2 red flags checked"}, items[1])

	// Non-clearing snapshot leaves the buffer intact.
	assert.Equal(t, 2, log.Len())
}

func TestLog_SnapshotClear(t *testing.T) {
	log := NewLog()
	log.Record("dataset", "1 similar cases")

	items := log.Snapshot(true)
	require.Len(t, items, 1)
	assert.Zero(t, log.Len(), "clearing snapshot drains the buffer")
	assert.Empty(t, log.Snapshot(true))
}

func TestLog_SnapshotIsACopy(t *testing.T) {
	log := NewLog()
	log.Record("dataset", "first")

	items := log.Snapshot(false)
	items[0].Detail = "mutated"

	assert.Equal(t, "first", log.Snapshot(false)[0].Detail)
}

func TestLog_ConcurrentRecord(t *testing.T) {
	log := NewLog()

	const writers = 8
	const perWriter = 50
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < perWriter; j++ {
				log.Record("dataset", fmt.Sprintf("writer %d item %d", i, j))
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, writers*perWriter, log.Len())
}
