package config

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// HexUint32 unmarshals a JSON string holding a hex value, with or without a
// leading "0x", into a uint32 (§6: "all hex strings are parsed as hex").
type HexUint32 uint32

func (h *HexUint32) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("config: hex value: %w", err)
	}

	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return fmt.Errorf("config: hex value %q: %w", s, err)
	}

	*h = HexUint32(v)
	return nil
}

func (h HexUint32) MarshalJSON() ([]byte, error) {
	return json.Marshal(fmt.Sprintf("0x%X", uint32(h)))
}
