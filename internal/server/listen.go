package server

import (
	"net"
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"golang.org/x/sys/unix"
)

// listen builds the listening endpoint stage by stage: create the socket,
// bind it to all interfaces on port, and activate it with the given accept
// queue capacity. Each stage reports its own failure so the fatal startup
// diagnostic names what went wrong.
func listen(port, backlog int, logger zerolog.Logger) (net.Listener, error) {
	fd, err := unix.Socket(unix.AF_INET, unix.SOCK_STREAM, 0)
	if err != nil {
		return nil, errors.Wrap(err, "could not create socket")
	}

	// Lets a restarted server rebind the port without waiting out TIME_WAIT.
	if err := unix.SetsockoptInt(fd, unix.SOL_SOCKET, unix.SO_REUSEADDR, 1); err != nil {
		logger.Warn().Err(err).Msg("setsockopt SO_REUSEADDR failed")
	}

	// Zero Addr is INADDR_ANY.
	if err := unix.Bind(fd, &unix.SockaddrInet4{Port: port}); err != nil {
		unix.Close(fd)
		return nil, errors.Wrapf(err, "could not bind socket to port %d", port)
	}

	if err := unix.Listen(fd, backlog); err != nil {
		unix.Close(fd)
		return nil, errors.Wrap(err, "could not listen on socket")
	}

	f := os.NewFile(uintptr(fd), "httpserv-listener")
	ln, err := net.FileListener(f)
	// FileListener duplicates the descriptor, so the original is closed
	// either way.
	f.Close()
	if err != nil {
		return nil, errors.Wrap(err, "could not wrap listening socket")
	}
	return ln, nil
}
