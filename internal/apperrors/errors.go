package apperrors

import "errors"

// Domain entity errors represent missing or invalid entities in the system.
// These errors indicate that a requested resource does not exist.
var (
	// ErrClientNotFound indicates that a client with the given ID does not exist.
	ErrClientNotFound = errors.New("client not found")

	// ErrPositionNotFound indicates that a position with the given ID does not exist.
	ErrPositionNotFound = errors.New("position not found")

	// ErrCalculatorNotFound indicates that an insurance calculator does not exist.
	ErrCalculatorNotFound = errors.New("insurance calculator not found")

	// ErrSnapshotNotFound indicates that a snapshot record does not exist.
	ErrSnapshotNotFound = errors.New("snapshot not found")

	// ErrGroupNotFound indicates that a position group does not exist.
	ErrGroupNotFound = errors.New("position group not found")

	// ErrSettingNotFound indicates that a system setting key has no value.
	ErrSettingNotFound = errors.New("setting not found")

	// ErrSymbolNotFound indicates that a quote lookup returned no result.
	ErrSymbolNotFound = errors.New("symbol not found")
)

// Business logic errors represent validation failures or constraint violations.
var (
	// ErrInvalidUUID indicates that a provided ID is not a valid UUID format.
	ErrInvalidUUID = errors.New("invalid UUID format")

	// ErrEmptyID indicates that a required ID parameter is empty or missing.
	ErrEmptyID = errors.New("ID cannot be empty")

	// ErrInvalidCurrency indicates a currency outside the supported set.
	ErrInvalidCurrency = errors.New("unsupported currency")

	// ErrInvalidDisplayCurrency indicates a display-currency selection that is
	// neither the hub nor the secondary display currency.
	ErrInvalidDisplayCurrency = errors.New("unsupported display currency")

	// ErrInvalidAssetClass indicates an unknown asset class name.
	ErrInvalidAssetClass = errors.New("unknown asset class")

	// ErrInvalidSubtotalMode indicates a subtotal mode other than computed or declared.
	ErrInvalidSubtotalMode = errors.New("unknown subtotal mode")

	// ErrInvalidAge indicates an insurance age outside 0..100.
	ErrInvalidAge = errors.New("insurance age out of range")

	// ErrDuplicateEntry indicates that an entity with the same unique constraint already exists.
	ErrDuplicateEntry = errors.New("duplicate entry")
)

// External feed errors. Feed failures are never fatal: callers retain the
// previous state and surface these as non-blocking notifications.
var (
	// ErrFeedUnavailable indicates the price or rate feed could not be reached
	// or returned an unusable payload.
	ErrFeedUnavailable = errors.New("external feed unavailable")
)

// Operation failure errors represent system-level failures when retrieving or
// processing data.
var (
	ErrFailedToRetrieveClients   = errors.New("failed to retrieve clients")
	ErrFailedToRetrievePositions = errors.New("failed to retrieve positions")
	ErrFailedToRetrieveRates     = errors.New("failed to retrieve exchange rates")
	ErrFailedToRetrieveSnapshots = errors.New("failed to retrieve snapshots")
	ErrFailedToSavePosition      = errors.New("failed to save position")
	ErrFailedToSaveSnapshot      = errors.New("failed to save snapshot")
	ErrFailedToSaveRates         = errors.New("failed to save exchange rates")
)
