package domain

import "errors"

// Sentinel errors for domain operations
var (
	// ErrDumpMissing indicates the saved item-ids reference document is absent
	ErrDumpMissing = errors.New("item ids dump not found")

	// ErrTableMissing indicates no qualifying item/id table exists in the dump
	ErrTableMissing = errors.New("item ids table not found in saved dump")

	// ErrNoMappings indicates the dump parsed but yielded zero name->id pairs
	ErrNoMappings = errors.New("no item ids extracted from saved dump")

	// ErrMarketUnreachable indicates the market API could not be reached
	ErrMarketUnreachable = errors.New("market api is unreachable")

	// ErrHuntNotFound indicates the requested hunt entry does not exist
	ErrHuntNotFound = errors.New("hunt entry not found")

	// ErrCharacterNotFound indicates the requested character does not exist
	ErrCharacterNotFound = errors.New("character not found")
)
