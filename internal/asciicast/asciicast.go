// Package asciicast writes terminal output as an asciicast v2 recording: a
// JSON header line followed by one JSON array per output event.
package asciicast

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"sync"
	"time"

	"github.com/atlanticdynamic/typecast/internal/clock"
)

// Version is the asciicast format version produced by this package.
const Version = 2

// EventType is the second element of an event array.
type EventType string

const (
	// EventOutput is data written to the terminal.
	EventOutput EventType = "o"
	// EventInput is data read from the keyboard.
	EventInput EventType = "i"
	// EventResize is a terminal size change, encoded as "COLSxROWS".
	EventResize EventType = "r"
)

var (
	ErrBadHeader = errors.New("invalid asciicast header")
	ErrBadEvent  = errors.New("invalid asciicast event")
)

// Header is the first line of a recording.
type Header struct {
	Version   int               `json:"version"`
	Width     int               `json:"width"`
	Height    int               `json:"height"`
	Timestamp int64             `json:"timestamp,omitempty"`
	Title     string            `json:"title,omitempty"`
	Env       map[string]string `json:"env,omitempty"`
}

// Event is one timed record.
type Event struct {
	Time float64
	Type EventType
	Data string
}

// MarshalJSON encodes the event as the [time, type, data] triple.
func (e Event) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{e.Time, e.Type, e.Data})
}

// UnmarshalJSON decodes a [time, type, data] triple.
func (e *Event) UnmarshalJSON(b []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return fmt.Errorf("%w: %w", ErrBadEvent, err)
	}
	if len(raw) != 3 {
		return fmt.Errorf("%w: expected 3 elements, got %d", ErrBadEvent, len(raw))
	}
	if err := json.Unmarshal(raw[0], &e.Time); err != nil {
		return fmt.Errorf("%w: time: %w", ErrBadEvent, err)
	}
	if err := json.Unmarshal(raw[1], &e.Type); err != nil {
		return fmt.Errorf("%w: type: %w", ErrBadEvent, err)
	}
	if err := json.Unmarshal(raw[2], &e.Data); err != nil {
		return fmt.Errorf("%w: data: %w", ErrBadEvent, err)
	}
	return nil
}

// Writer is an io.Writer that turns every Write into an output event stamped
// with the time elapsed on its clock since the writer was created.
type Writer struct {
	mu      sync.Mutex
	dst     io.Writer
	clock   clock.Clock
	start   time.Time
	header  Header
	started bool
}

// NewWriter creates a Writer. The header is written before the first event.
// A zero Version or Timestamp in h is filled in.
func NewWriter(dst io.Writer, clk clock.Clock, h Header) *Writer {
	start := clk.Now()
	if h.Version == 0 {
		h.Version = Version
	}
	if h.Timestamp == 0 {
		h.Timestamp = start.Unix()
	}
	return &Writer{
		dst:    dst,
		clock:  clk,
		start:  start,
		header: h,
	}
}

// WriteHeader writes the header line if it has not been written yet.
func (w *Writer) WriteHeader() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.writeHeader()
}

func (w *Writer) writeHeader() error {
	if w.started {
		return nil
	}
	if err := writeJSONLine(w.dst, w.header); err != nil {
		return err
	}
	w.started = true
	return nil
}

// Write records p as a single output event.
func (w *Writer) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.writeHeader(); err != nil {
		return 0, err
	}
	ev := Event{
		Time: seconds(w.clock.Now().Sub(w.start)),
		Type: EventOutput,
		Data: string(p),
	}
	if err := writeJSONLine(w.dst, ev); err != nil {
		return 0, err
	}
	return len(p), nil
}

// seconds converts d to fractional seconds with microsecond precision.
func seconds(d time.Duration) float64 {
	return math.Round(d.Seconds()*1e6) / 1e6
}

func writeJSONLine(w io.Writer, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	b = append(b, '\n')
	_, err = w.Write(b)
	return err
}

// Decode reads a whole recording.
func Decode(r io.Reader) (Header, []Event, error) {
	var h Header
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return h, nil, err
		}
		return h, nil, fmt.Errorf("%w: empty recording", ErrBadHeader)
	}
	if err := json.Unmarshal(sc.Bytes(), &h); err != nil {
		return h, nil, fmt.Errorf("%w: %w", ErrBadHeader, err)
	}
	if h.Version != Version {
		return h, nil, fmt.Errorf("%w: unsupported version %d", ErrBadHeader, h.Version)
	}

	var events []Event
	for sc.Scan() {
		if len(sc.Bytes()) == 0 {
			continue
		}
		var ev Event
		if err := json.Unmarshal(sc.Bytes(), &ev); err != nil {
			return h, events, fmt.Errorf("event %d: %w", len(events), err)
		}
		events = append(events, ev)
	}
	return h, events, sc.Err()
}
