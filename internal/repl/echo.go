package repl

import (
	"os"

	"golang.org/x/sys/unix"
)

// disableEcho clears the ECHO flag on the pty's line discipline so sent lines
// do not reappear in the output stream ahead of the child's reply.
func disableEcho(f *os.File) error {
	fd := int(f.Fd())

	termios, err := unix.IoctlGetTermios(fd, ioctlReadTermios)
	if err != nil {
		return err
	}

	termios.Lflag &^= unix.ECHO

	return unix.IoctlSetTermios(fd, ioctlWriteTermios, termios)
}
