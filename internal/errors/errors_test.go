package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNotFoundErrorMessage(t *testing.T) {
	err := &NotFoundError{SearchedPaths: []string{"$PATH", "/usr/bin/mariadb"}}

	require.Contains(t, err.Error(), "mariadb client not found")
	require.Contains(t, err.Error(), "/usr/bin/mariadb")
}

func TestLaunchErrorAccessDenied(t *testing.T) {
	denied := &LaunchError{
		Output: "ERROR 1045 (28000): Access denied for user 'root'@'localhost'",
		Err:    ErrChannelClosed,
	}
	require.True(t, denied.AccessDenied())

	down := &LaunchError{
		Output: "ERROR 2002 (HY000): Can't connect to local server",
		Err:    ErrChannelClosed,
	}
	require.False(t, down.AccessDenied())
}

func TestLaunchErrorUnwrap(t *testing.T) {
	err := &LaunchError{Err: ErrChannelClosed}

	require.ErrorIs(t, err, ErrChannelClosed)
}

func TestTransportErrorUnwrap(t *testing.T) {
	err := &TransportError{Op: "run", Err: ErrPromptTimeout}

	require.ErrorIs(t, err, ErrPromptTimeout)
	require.Contains(t, err.Error(), "run")
}

func TestErrorTypesImplementMarker(t *testing.T) {
	for _, err := range []error{
		&NotFoundError{},
		&LaunchError{},
		&LoginError{},
		&ServerDownError{},
		&TransportError{},
	} {
		var driverErr DriverError

		require.True(t, stderrors.As(err, &driverErr))
		require.True(t, driverErr.IsDriverError())
	}
}
