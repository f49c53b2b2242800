package uuid

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"sync"
	"time"

	googleuuid "github.com/google/uuid"
)

// Generator produces UUIDv7 strings that sort in creation order, even when
// several are minted within the same millisecond.
type Generator struct {
	mu     sync.Mutex
	lastMs uint64
	seq    uint16
}

var defaultGenerator = &Generator{}

// New generates a new UUIDv7 based on the current timestamp.
func New() string {
	return defaultGenerator.At(time.Now())
}

// NewAt generates a UUIDv7 stamped with t.
func NewAt(t time.Time) string {
	return defaultGenerator.At(t)
}

// At generates a UUIDv7 stamped with t.
//
// Format (RFC 9562):
// - 48 bits: Unix timestamp in milliseconds
// - 4 bits: version (0111 = 7)
// - 12 bits: per-millisecond sequence
// - 2 bits: variant (10)
// - 62 bits: random data
func (g *Generator) At(t time.Time) string {
	ms := uint64(t.UnixMilli())

	g.mu.Lock()
	if ms <= g.lastMs {
		// Clock did not advance (or went backwards): keep ordering by
		// continuing from the last stamp.
		ms = g.lastMs
		g.seq++
		if g.seq > 0x0fff {
			ms++
			g.seq = 0
		}
	} else {
		g.seq = 0
	}
	g.lastMs = ms
	seq := g.seq
	g.mu.Unlock()

	var uuid [16]byte
	binary.BigEndian.PutUint64(uuid[0:8], ms<<16)
	binary.BigEndian.PutUint16(uuid[6:8], seq)

	if _, err := rand.Read(uuid[8:]); err != nil {
		// Fallback to standard UUIDv4 if random generation fails
		return googleuuid.New().String()
	}

	// Set version (4 bits) to 0111 (7)
	uuid[6] = (uuid[6] & 0x0f) | 0x70

	// Set variant (2 bits) to 10
	uuid[8] = (uuid[8] & 0x3f) | 0x80

	return formatUUID(uuid)
}

// formatUUID formats a 16-byte array as a UUID string
func formatUUID(uuid [16]byte) string {
	return fmt.Sprintf("%08x-%04x-%04x-%04x-%012x",
		binary.BigEndian.Uint32(uuid[0:4]),
		binary.BigEndian.Uint16(uuid[4:6]),
		binary.BigEndian.Uint16(uuid[6:8]),
		binary.BigEndian.Uint16(uuid[8:10]),
		uuid[10:16],
	)
}

// Time returns the creation instant encoded in a UUIDv7 string.
func Time(s string) (time.Time, error) {
	parsed, err := googleuuid.Parse(s)
	if err != nil {
		return time.Time{}, err
	}
	if parsed.Version() != 7 {
		return time.Time{}, fmt.Errorf("uuid %s is version %d, not 7", s, parsed.Version())
	}
	ms := binary.BigEndian.Uint64(append([]byte{0, 0}, parsed[0:6]...))
	return time.UnixMilli(int64(ms)), nil
}

// IsValid checks if a string is a valid UUID
func IsValid(s string) bool {
	_, err := googleuuid.Parse(s)
	return err == nil
}
