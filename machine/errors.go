package machine

import "errors"

// Configuration errors (§7): all fatal at machine-build time.
var (
	ErrUnalignedRegion    = errors.New("machine: region start/size must be a multiple of the page size")
	ErrOverlappingRegion  = errors.New("machine: base regions overlap")
	ErrRegionGap          = errors.New("machine: base regions do not cover the full address space")
	ErrMissingPhysical    = errors.New("machine: region references an undefined physical memory")
	ErrUninitializedROM   = errors.New("machine: rom target's physical memory has no initial image")
	ErrSlotOutOfRange     = errors.New("machine: slot number must be in 1..=7")
	ErrSlotOccupied       = errors.New("machine: slot is already occupied")
	ErrSlotEmpty          = errors.New("machine: slot is empty")
	ErrLayerOutOfBounds   = errors.New("machine: layer range is not contained within the base address space")
	ErrLayerPriority      = errors.New("machine: layer priority collides with another active layer over an overlapping range")
	ErrTrapConflict       = errors.New("machine: a trap is already registered for this address and operation")
	ErrTrapNotFound       = errors.New("machine: no trap registered for this address and operation")
	ErrDuplicatePhysical  = errors.New("machine: physical memory name already defined")
	ErrPhysicalOutOfRange = errors.New("machine: offset is outside the physical memory's backing buffer")
)
