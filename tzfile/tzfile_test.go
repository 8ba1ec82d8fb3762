package tzfile

import (
	"testing"

	"github.com/gopherzone/tzcore/tzif"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleFile() tzif.File {
	return tzif.File{
		Version: tzif.V2,
		V2Header: tzif.Header{
			Version: tzif.V2,
			Typecnt: 1,
			Charcnt: 4,
		},
		V2Data: tzif.V2DataBlock{
			LocalTimeTypeRecord: []tzif.LocalTimeTypeRecord{{Utoff: -8 * 3600, Dst: false, Idx: 0}},
			TimeZoneDesignation: []byte("PST\x00"),
			TransitionTypes:     []uint8{},
		},
		V2Footer: tzif.Footer{TZString: []byte("PST8")},
	}
}

func TestWriteReadRoundTrip(t *testing.T) {
	root := t.TempDir()
	name := "America/Los_Angeles"

	require.NoError(t, Write(root, name, sampleFile()))

	got, err := Read(root, name)
	require.NoError(t, err)
	assert.Equal(t, tzif.V2, got.Version)
	assert.Equal(t, int32(-8*3600), got.V2Data.LocalTimeTypeRecord[0].Utoff)
	assert.Equal(t, "PST8", string(got.V2Footer.TZString))
}

func TestWriteAllReadAll(t *testing.T) {
	root := t.TempDir()
	zones := map[string]tzif.File{
		"America/Los_Angeles": sampleFile(),
		"America/New_York":    sampleFile(),
	}
	require.NoError(t, WriteAll(root, zones))

	got, err := ReadAll(root, []string{"America/Los_Angeles", "America/New_York"})
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestReadMissingZone(t *testing.T) {
	root := t.TempDir()
	_, err := Read(root, "Nowhere/Here")
	assert.Error(t, err)
}
