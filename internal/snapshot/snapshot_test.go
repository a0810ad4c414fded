package snapshot

import (
	"bytes"
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRecordAppendsValidJSON(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/test_log.json"
	t.Setenv("MALLOC_LOG", path)
	filename = "" // force re-read of MALLOC_LOG for this test

	zones := []ZoneRecord{
		{
			Class:      "TINY",
			Address:    0x1000,
			TotalSize:  65536,
			UsedSize:   32,
			BlockCount: 1,
			Allocations: []BlockRecord{
				{Address: 0x1040, Size: 32},
			},
		},
	}

	require.NoError(t, Record(zones))
	require.NoError(t, Record(zones))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	dec := json.NewDecoder(bytes.NewReader(data))
	var first, second record
	require.NoError(t, dec.Decode(&first))
	require.NoError(t, dec.Decode(&second))

	require.Equal(t, uint64(0), first.SnapshotID)
	require.Equal(t, uint64(1), second.SnapshotID)
	require.Len(t, first.Zones, 1)
	require.Equal(t, "TINY", first.Zones[0].Class)
}
