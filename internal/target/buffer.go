package target

import (
	"strings"
	"sync"

	"github.com/atlanticdynamic/typecast/internal/markup"
)

var _ Target = (*Buffer)(nil)

// Buffer is an in-memory Target holding markup as a list of nodes, the way a
// DOM container holds its children. It is safe for concurrent use.
type Buffer struct {
	mu    sync.RWMutex
	nodes []*node
}

type node struct {
	raw     string
	command *commandSlot
}

type commandSlot struct {
	buf    *Buffer
	text   strings.Builder
	cursor bool
}

// NewBuffer creates an empty Buffer.
func NewBuffer() *Buffer {
	return &Buffer{}
}

func (b *Buffer) Append(m string) {
	if m == "" {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.nodes = append(b.nodes, &node{raw: m})
}

func (b *Buffer) OpenCommand() CommandSlot {
	slot := &commandSlot{buf: b, cursor: true}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.nodes = append(b.nodes, &node{command: slot})
	return slot
}

func (b *Buffer) Content() string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	var sb strings.Builder
	for _, n := range b.nodes {
		if n.command != nil {
			sb.WriteString(markup.Command(n.command.text.String(), n.command.cursor))
			continue
		}
		sb.WriteString(n.raw)
	}
	return sb.String()
}

func (b *Buffer) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.nodes = nil
}

// String returns the current markup.
func (b *Buffer) String() string {
	return b.Content()
}

func (s *commandSlot) Type(text string) {
	s.buf.mu.Lock()
	defer s.buf.mu.Unlock()
	s.text.WriteString(text)
}

func (s *commandSlot) Apply() {
	s.buf.mu.Lock()
	defer s.buf.mu.Unlock()
	s.cursor = false
}
