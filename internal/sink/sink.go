// Package sink implements the shared tag accumulator, sort, and writer of
// spec.md §4.7/§6, grounded on original_source/src/tag_writer.rs: a single
// lock guards the growing tag slice, tags are appended in locally-built
// batches (one per file's walk) so the lock is never held across a parse,
// the full set is stably sorted by name as byte strings, and the writer
// buffers one `name\tfile\taddress...\n` line per tag.
//
// spec.md also describes the original's mutex as "allowed to be poisoned"
// with recovery — that is a property of Rust's std::sync::Mutex, which
// Go's sync.Mutex has no equivalent of (a panicking goroutine does not
// taint the lock for later lockers). Add therefore builds its batch before
// ever taking the lock, so a panic during tag generation cannot happen
// while the lock is held in the first place — the Go-idiomatic way to get
// the same guarantee the original reached for poison-recovery to provide.
package sink

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/viant/treetags/internal/tag"
)

// Sink accumulates tags from concurrent workers and writes the final file.
type Sink struct {
	mu   sync.Mutex
	tags []tag.Tag
}

// New returns an empty Sink.
func New() *Sink {
	return &Sink{}
}

// Add appends batch to the accumulator under lock. Callers build batch
// (e.g. the tags from one file's walk) before calling Add so the lock is
// only ever held for the append itself.
func (s *Sink) Add(batch []tag.Tag) {
	if len(batch) == 0 {
		return
	}
	s.mu.Lock()
	s.tags = append(s.tags, batch...)
	s.mu.Unlock()
}

// Merge folds in tags parsed from a pre-existing tag file (append mode).
func (s *Sink) Merge(existing []tag.Tag) {
	s.Add(existing)
}

// Tags returns a stably-sorted-by-name copy of the accumulated tags.
// Sorting by name as byte strings matches spec.md §8 property 7; stability
// preserves relative order for equal names (e.g. overloaded symbols).
func (s *Sink) Tags() []tag.Tag {
	s.mu.Lock()
	out := make([]tag.Tag, len(s.tags))
	copy(out, s.tags)
	s.mu.Unlock()

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})
	return out
}

// Write truncates (or creates) path and writes one buffered line per tag,
// in the order returned by Tags.
func (s *Sink) Write(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("sink: creating %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, t := range s.Tags() {
		if _, err := w.WriteString(t.Line()); err != nil {
			return fmt.Errorf("sink: writing %s: %w", path, err)
		}
		if err := w.WriteByte('\n'); err != nil {
			return fmt.Errorf("sink: writing %s: %w", path, err)
		}
	}
	return w.Flush()
}

// addressTerminator is the trailing marker every well-formed address ends
// with, per spec.md §4.7's append-mode validation.
const addressTerminator = `;"`

// ParseExisting reads path and reconstructs the tags it contains, for
// append mode. Each line is split on tabs; lines with fewer than three
// fields, or whose address field (the third) does not end with the
// `;"` terminator, are rejected as malformed rather than silently
// skipped, since a corrupt pre-existing tag file is a fatal configuration
// error per spec.md §7.
func ParseExisting(path string) ([]tag.Tag, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("sink: reading %s: %w", path, err)
	}

	var tags []tag.Tag
	for i, line := range strings.Split(string(data), "\n") {
		if line == "" {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) < 3 {
			return nil, fmt.Errorf("sink: %s:%d: expected at least 3 tab-separated fields, got %d", path, i+1, len(fields))
		}
		address := fields[2]
		if !strings.HasSuffix(address, addressTerminator) {
			return nil, fmt.Errorf("sink: %s:%d: address %q missing %s terminator", path, i+1, address, addressTerminator)
		}

		t := tag.Tag{Name: fields[0], FileName: fields[1], Address: address, Fields: tag.NewFields()}
		for _, extra := range fields[3:] {
			if idx := strings.Index(extra, ":"); idx >= 0 {
				t.Fields.Set(extra[:idx], extra[idx+1:])
			} else {
				t.Kind = extra
			}
		}
		tags = append(tags, t)
	}
	return tags, nil
}
