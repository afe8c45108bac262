package engine

import "errors"

// Mutation errors. Every one of them is returned before any state changes.
var (
	ErrOutOfBounds   = errors.New("cell outside the grid")
	ErrCellOccupied  = errors.New("cell already holds a building")
	ErrEmptyCell     = errors.New("cell holds no building")
	ErrSelfMerge     = errors.New("cannot merge a building with itself")
	ErrNotAdjacent   = errors.New("cells are not adjacent")
	ErrCellNotOwned  = errors.New("cell does not belong to the building")
	ErrUnknownRecord = errors.New("unknown building record")
	ErrUnknownDoor   = errors.New("unknown door")
	ErrLastDoor      = errors.New("cannot delete the last door")
	ErrInvalidInput  = errors.New("invalid input graph")
)
