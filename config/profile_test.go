package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const validProfile = `{
	"physical": [
		{"name": "main", "size": "0x1000"}
	],
	"rom-images": [
		{"name": "system-rom", "path": "roms/system.rom", "size": "0x3000"}
	],
	"regions": [
		{"name": "ram", "type": "ram", "start": "0x0000", "size": "0x1000", "permissions": "rw", "source": "main"}
	],
	"controllers": [
		{"name": "language-card", "type": "language-card", "size": "0x3000"}
	],
	"slots": {
		"io-region": "io",
		"enabled": true,
		"cards": [
			{"slot": 6, "type": "disk-ii"}
		]
	},
	"devices": []
}`

func TestLoadValidProfile(t *testing.T) {
	p, err := Load(strings.NewReader(validProfile))
	require.NoError(t, err)
	require.Len(t, p.Physical, 1)
	require.Equal(t, "main", p.Physical[0].Name)
	require.Equal(t, HexUint32(0x1000), p.Physical[0].Size)
	require.Equal(t, uint8(6), p.Slots.Cards[0].Slot)
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	_, err := Load(strings.NewReader(`{"bogus-field": true}`))
	require.Error(t, err)
}

func TestLoadRejectsMisalignedPhysicalSize(t *testing.T) {
	src := `{"physical": [{"name": "main", "size": "0x1001"}]}`
	_, err := Load(strings.NewReader(src))
	require.ErrorIs(t, err, ErrMisaligned)
}

func TestLoadRejectsMissingPhysicalName(t *testing.T) {
	src := `{"physical": [{"size": "0x1000"}]}`
	_, err := Load(strings.NewReader(src))
	require.ErrorIs(t, err, ErrMissingField)
}

func TestLoadRejectsUnknownRegionType(t *testing.T) {
	src := `{"regions": [{"name": "r", "type": "bogus", "start": "0x0", "size": "0x1000"}]}`
	_, err := Load(strings.NewReader(src))
	require.ErrorIs(t, err, ErrUnknownType)
}

func TestLoadRejectsMisalignedRegionStart(t *testing.T) {
	src := `{"regions": [{"name": "r", "type": "ram", "start": "0x0001", "size": "0x1000"}]}`
	_, err := Load(strings.NewReader(src))
	require.ErrorIs(t, err, ErrMisaligned)
}

func TestLoadRejectsOutOfRangeSlot(t *testing.T) {
	src := `{"slots": {"cards": [{"slot": 8, "type": "disk-ii"}]}}`
	_, err := Load(strings.NewReader(src))
	require.ErrorIs(t, err, ErrUnknownType)
}

func TestLoadRejectsMissingRomImageFields(t *testing.T) {
	src := `{"rom-images": [{"name": "x", "size": "0x1000"}]}`
	_, err := Load(strings.NewReader(src))
	require.ErrorIs(t, err, ErrMissingField)
}

func TestHexUint32RoundTrip(t *testing.T) {
	var h HexUint32
	require.NoError(t, h.UnmarshalJSON([]byte(`"0xC000"`)))
	require.Equal(t, HexUint32(0xC000), h)

	b, err := h.MarshalJSON()
	require.NoError(t, err)
	require.Equal(t, `"0xC000"`, string(b))
}
