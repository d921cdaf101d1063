// Package service implements the line-oriented command protocol.
//
// Requests arrive as newline-delimited JSON documents on a reader (normally
// stdin) and each produces exactly one JSON response line on a writer
// (normally stdout):
//
//	{"id": "1", "cmd": "ping", "args": {}}
//	{"id": "1", "ok": true, "data": {"message": "pong"}}
//
// Failures are responses too, never dropped lines:
//
//	{"id": "1", "ok": false, "error": {"code": "unknown_command", "message": "..."}}
//
// The dispatcher is plumbing only; all domain behavior lives in the
// registered handlers.
package service

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/gridshot/gridshot/pkg/grid"
)

// maxLineBytes caps a single request line; grids with many item records can
// produce large documents.
const maxLineBytes = 4 * 1024 * 1024

// Code is a machine-readable error code carried in failure responses.
type Code string

// Error codes for the protocol layer and handler failures.
const (
	CodeInvalidJSON    Code = "invalid_json"
	CodeInvalidRequest Code = "invalid_request"
	CodeUnknownCommand Code = "unknown_command"
	CodeInternal       Code = "internal_error"
)

// Request is one decoded command line.
type Request struct {
	ID   string         `json:"id"`
	Cmd  string         `json:"cmd"`
	Args map[string]any `json:"args"`
}

// Response is the reply for one request.
type Response struct {
	ID    string         `json:"id"`
	OK    bool           `json:"ok"`
	Data  map[string]any `json:"data,omitempty"`
	Error *ErrorInfo     `json:"error,omitempty"`
}

// ErrorInfo describes a failed request.
type ErrorInfo struct {
	Code    Code   `json:"code"`
	Message string `json:"message"`
}

// Handler processes the arguments of one command and returns the response
// data. A returned error becomes an internal_error response; it never stops
// the dispatch loop.
type Handler func(ctx context.Context, args map[string]any) (map[string]any, error)

// Dispatcher reads requests, routes them to handlers, and writes responses.
type Dispatcher struct {
	logger   *log.Logger
	handlers map[string]Handler
}

// New creates a dispatcher with the standard command set: "ping" and
// "createImageGrid" backed by the given builder. A nil logger disables
// logging.
func New(builder *grid.Builder, logger *log.Logger) *Dispatcher {
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	d := &Dispatcher{
		logger:   logger,
		handlers: make(map[string]Handler),
	}
	d.Register("ping", PingHandler)
	d.Register("createImageGrid", GridHandler(builder))
	return d
}

// Register installs a handler for cmd, replacing any previous one.
func (d *Dispatcher) Register(cmd string, h Handler) {
	d.handlers[cmd] = h
}

// Run processes requests from r until EOF or context cancellation. Protocol
// errors produce error responses; only read/write failures on the transport
// itself end the loop with an error.
//
// Cancellation is observed between lines. A read blocked on an idle stream
// keeps blocking until the next line or EOF; callers that need to unblock
// it must close the reader.
func (d *Dispatcher) Run(ctx context.Context, r io.Reader, w io.Writer) error {
	out := bufio.NewWriter(w)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		resp := d.dispatch(ctx, line)
		if err := writeResponse(out, resp); err != nil {
			return fmt.Errorf("write response: %w", err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read request: %w", err)
	}
	return nil
}

// dispatch handles one raw request line and always returns a response.
func (d *Dispatcher) dispatch(ctx context.Context, line string) Response {
	var req Request
	if err := json.Unmarshal([]byte(line), &req); err != nil {
		return errorResponse("", CodeInvalidJSON, fmt.Sprintf("Could not parse JSON: %v", err))
	}
	if req.ID == "" {
		return errorResponse("", CodeInvalidRequest, "Missing field: id")
	}
	if req.Cmd == "" {
		return errorResponse(req.ID, CodeInvalidRequest, "Missing field: cmd")
	}

	handler, ok := d.handlers[req.Cmd]
	if !ok {
		return errorResponse(req.ID, CodeUnknownCommand, fmt.Sprintf("Unknown command: %s", req.Cmd))
	}

	// Job id correlates every log line of one request across the handler.
	logger := d.logger.With("job", uuid.NewString(), "cmd", req.Cmd, "id", req.ID)
	logger.Debug("handling request")

	data, err := d.invoke(ctx, handler, req.Args)
	if err != nil {
		logger.Error("request failed", "err", err)
		return errorResponse(req.ID, CodeInternal, err.Error())
	}

	logger.Debug("request done")
	if data == nil {
		data = map[string]any{}
	}
	return Response{ID: req.ID, OK: true, Data: data}
}

// invoke runs a handler with panic isolation, so one bad request cannot take
// the service loop down.
func (d *Dispatcher) invoke(ctx context.Context, h Handler, args map[string]any) (data map[string]any, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("handler panic: %v", r)
		}
	}()
	return h(ctx, args)
}

// writeResponse marshals a response as one line and flushes it immediately,
// since the peer reads responses synchronously.
func writeResponse(out *bufio.Writer, resp Response) error {
	payload, err := json.Marshal(resp)
	if err != nil {
		return err
	}
	if _, err := out.Write(append(payload, '\n')); err != nil {
		return err
	}
	return out.Flush()
}

// errorResponse builds a failure response. A missing request id is reported
// as "unknown" so the peer can still correlate the line count.
func errorResponse(id string, code Code, message string) Response {
	if id == "" {
		id = "unknown"
	}
	return Response{
		ID:    id,
		OK:    false,
		Error: &ErrorInfo{Code: code, Message: message},
	}
}
