package errors

import (
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		want string
	}{
		{
			name: "with cause",
			err:  NewParsingError("bad row", errors.New("strconv failed")),
			want: "[PARSING] bad row: strconv failed",
		},
		{
			name: "without cause",
			err:  NewValidationError("missing opponent"),
			want: "[VALIDATION] missing opponent",
		},
		{
			name: "not found",
			err:  NewNotFoundError("stats file"),
			want: "[NOT_FOUND] stats file not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := os.ErrNotExist
	err := NewStorageError("cannot open report", cause)

	assert.True(t, errors.Is(err, os.ErrNotExist))

	var appErr *AppError
	require.True(t, errors.As(fmt.Errorf("load: %w", err), &appErr))
	assert.Equal(t, ErrTypeStorage, appErr.Type)
}

func TestAppError_WithContext(t *testing.T) {
	err := NewParsingError("bad row", nil).
		WithContext("row", 7).
		WithContext("file", "season.csv")

	assert.Equal(t, 7, err.Context["row"])
	assert.Equal(t, "season.csv", err.Context["file"])
}

func TestIsType(t *testing.T) {
	err := NewConfigError("bad level", nil)

	assert.True(t, IsType(err, ErrTypeConfig))
	assert.False(t, IsType(err, ErrTypeParsing))
	assert.True(t, IsType(fmt.Errorf("wrap: %w", err), ErrTypeConfig))
	assert.False(t, IsType(errors.New("plain"), ErrTypeConfig))
}
