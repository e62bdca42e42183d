package errors

import "net/http"

var (
	ErrInvalidTrainID = New(
		"INVALID_TRAIN_ID",
		"Train identifier is required",
		http.StatusBadRequest,
	)

	ErrInvalidTime = New(
		"INVALID_TIME",
		"Time must be in HH:MM format",
		http.StatusUnprocessableEntity,
	)

	ErrNoSeedTime = New(
		"NO_SEED_TIME",
		"Enter at least one departure time in HH:MM format to start autofill",
		http.StatusUnprocessableEntity,
	)

	ErrUnknownDirection = New(
		"UNKNOWN_DIRECTION",
		"Direction is unknown, times cannot be calculated",
		http.StatusUnprocessableEntity,
	)

	ErrUnknownTemplate = New(
		"UNKNOWN_TEMPLATE",
		"Operating section template not found",
		http.StatusNotFound,
	)

	ErrInvalidConnection = New(
		"INVALID_CONNECTION",
		"Connection info must name a station and a successor train",
		http.StatusUnprocessableEntity,
	)

	ErrUnsavedChanges = New(
		"UNSAVED_CHANGES",
		"Unsaved changes will be discarded, confirm to continue",
		http.StatusConflict,
	)

	ErrOperationInProgress = New(
		"OPERATION_IN_PROGRESS",
		"Another operation is still running for this session",
		http.StatusConflict,
	)

	ErrSessionNotFound = New(
		"SESSION_NOT_FOUND",
		"Editor session not found",
		http.StatusNotFound,
	)

	ErrNoTrainLoaded = New(
		"NO_TRAIN_LOADED",
		"No train is loaded in this session",
		http.StatusConflict,
	)

	ErrTrainNotFound = New(
		"TRAIN_NOT_FOUND",
		"Train not found",
		http.StatusNotFound,
	)

	ErrTrainWriteFailed = New(
		"TRAIN_WRITE_FAILED",
		"Failed to save the train record, nothing was changed",
		http.StatusBadGateway,
	)

	ErrSyncDiverged = New(
		"SYNC_DIVERGED",
		"Train record was saved but station entries were not updated, retry the save",
		http.StatusBadGateway,
	)

	ErrStoreUnavailable = New(
		"STORE_UNAVAILABLE",
		"Document store operation failed",
		http.StatusBadGateway,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
