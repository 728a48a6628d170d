// Package server owns the listening endpoint, the accept loop, and the
// handling of each accepted connection.
//
// The server is deliberately single-threaded: every connection is serviced
// to completion, and closed, before the next accept. One request is read per
// connection with a single fixed-buffer read, the path is matched against a
// static route table, and a framed response is written back once.
package server

import (
	"io"
	"net"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/rehan-sk/httpserv/internal/request"
	"github.com/rehan-sk/httpserv/internal/response"
	"github.com/rehan-sk/httpserv/internal/routes"
)

// Config is the immutable startup configuration, built once before the serve
// loop and never changed.
type Config struct {
	Port           int
	Backlog        int
	ReadBufferSize int
}

// DefaultConfig returns the stock configuration: port 8080, backlog 10,
// 1024-byte read buffer.
func DefaultConfig() Config {
	return Config{
		Port:           8080,
		Backlog:        10,
		ReadBufferSize: 1024,
	}
}

// validate rejects configurations the serve loop cannot run with. The read
// buffer must hold at least one payload byte on top of the reserved slot.
func (c Config) validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return errors.Errorf("port %d out of range", c.Port)
	}
	if c.Backlog < 0 {
		return errors.Errorf("backlog %d must not be negative", c.Backlog)
	}
	if c.ReadBufferSize < 2 {
		return errors.Errorf("read buffer size %d too small, need at least 2 bytes", c.ReadBufferSize)
	}
	return nil
}

// Server serves canned responses over raw TCP, one connection at a time.
type Server struct {
	cfg    Config
	table  *routes.Table
	ln     net.Listener
	logger zerolog.Logger
}

// New returns an unstarted server. The route table is shared, read-only
// state; everything per-connection lives on the handler's stack.
func New(cfg Config, table *routes.Table, logger zerolog.Logger) *Server {
	return &Server{
		cfg:    cfg,
		table:  table,
		logger: logger,
	}
}

// Start creates, binds, and activates the listening endpoint. A failure
// here, including an unusable configuration, is a startup precondition
// failure; the caller is expected to abort.
func (s *Server) Start() error {
	if err := s.cfg.validate(); err != nil {
		return errors.Wrap(err, "invalid configuration")
	}
	ln, err := listen(s.cfg.Port, s.cfg.Backlog, s.logger)
	if err != nil {
		return err
	}
	s.ln = ln
	s.logger.Info().
		Str("addr", ln.Addr().String()).
		Int("backlog", s.cfg.Backlog).
		Msg("server listening")
	return nil
}

// Addr reports the bound listening address. Valid only after Start.
func (s *Server) Addr() net.Addr {
	return s.ln.Addr()
}

// Close releases the listening endpoint, which unblocks ServeForever.
func (s *Server) Close() error {
	return s.ln.Close()
}

// ServeForever accepts and services connections until the listener is
// closed. Each iteration blocks on accept, then hands the connection to
// handleConn synchronously: at most one connection is in flight at any time,
// and connections are serviced strictly in accept order. A transient accept
// failure is logged and the loop continues.
func (s *Server) ServeForever() {
	for {
		conn, err := s.ln.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				s.logger.Info().Msg("listener closed, stopping accept loop")
				return
			}
			s.logger.Error().Err(err).Msg("could not accept connection")
			continue
		}
		s.handleConn(conn)
	}
}

// handleConn services one accepted connection end to end and closes it on
// every exit path. The request is read with a single call into a fixed
// buffer; a request larger than the buffer is silently truncated to its
// first ReadBufferSize-1 bytes, matching the original fixed-recv behavior.
func (s *Server) handleConn(conn net.Conn) {
	peer := conn.RemoteAddr().String()
	defer func() {
		conn.Close()
		s.logger.Debug().Str("peer", peer).Msg("connection closed")
	}()

	s.logger.Info().Str("peer", peer).Msg("accepted connection")

	buf := make([]byte, s.cfg.ReadBufferSize-1)
	n, err := conn.Read(buf)
	if err != nil {
		if err == io.EOF {
			s.logger.Info().Str("peer", peer).Msg("client disconnected before sending data")
		} else {
			s.logger.Error().Err(err).Str("peer", peer).Msg("could not read request")
		}
		return
	}

	var entry routes.Entry
	if path, ok := request.ExtractPath(string(buf[:n])); ok {
		s.logger.Info().Str("peer", peer).Str("path", path).Msg("request")
		entry = s.table.Lookup(path)
	} else {
		s.logger.Info().Str("peer", peer).Msg("unparseable request line, serving default")
		entry = s.table.Default()
	}

	// At-most-once delivery: a short or failed write is logged, never
	// retried.
	if _, err := conn.Write(response.Frame(entry.Body, entry.ContentType)); err != nil {
		s.logger.Error().Err(err).Str("peer", peer).Msg("could not send response")
		return
	}
	s.logger.Debug().Str("peer", peer).Msg("response sent")
}
