package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/timetable-editor/internal/pkg/errors"
)

func TestAppError_WithDetailsDoesNotMutateSentinel(t *testing.T) {
	detailed := errors.ErrInvalidTime.WithDetails(map[string]interface{}{"station_id": "komoro"})

	assert.Equal(t, "komoro", detailed.Details["station_id"])
	assert.Nil(t, errors.ErrInvalidTime.Details)
	assert.True(t, stderrors.Is(detailed, errors.ErrInvalidTime))
}

func TestAppError_WrapKeepsCause(t *testing.T) {
	cause := fmt.Errorf("connection reset")
	wrapped := errors.ErrSyncDiverged.Wrap(cause)

	assert.True(t, stderrors.Is(wrapped, cause))
	assert.True(t, stderrors.Is(wrapped, errors.ErrSyncDiverged))
	assert.False(t, stderrors.Is(wrapped, errors.ErrTrainWriteFailed))
	assert.Contains(t, wrapped.Error(), "connection reset")
}

func TestAs(t *testing.T) {
	err := fmt.Errorf("save: %w", errors.ErrTrainWriteFailed)

	appErr, ok := errors.As(err)
	require.True(t, ok)
	assert.Equal(t, "TRAIN_WRITE_FAILED", appErr.Code)

	_, ok = errors.As(fmt.Errorf("plain"))
	assert.False(t, ok)
}
