package secrets

import (
	"encoding/binary"
	"fmt"
	"math"
	"sort"
	"time"

	kerrors "github.com/PolarWolf314/zlang/internal/errors"
	"github.com/PolarWolf314/zlang/internal/memory"
	"go.mongodb.org/mongo-driver/bson"
)

const payloadVersion = 1

// payload is the BSON document sealed inside every envelope. Items are a
// sorted array rather than a BSON sub-document so that any note key,
// including "" or keys containing '.', '$' or NUL, survives the round trip.
type payload struct {
	Version int32         `bson:"v"`
	Items   []payloadItem `bson:"items"`
	History []string      `bson:"history"`
}

type payloadItem struct {
	Key   string   `bson:"key"`
	Value string   `bson:"value"`
	Tags  []string `bson:"tags"`

	// CreatedNs is the note timestamp in Unix nanoseconds. 0 stands for an
	// unset timestamp.
	CreatedNs int64 `bson:"created_ns"`
}

// Timestamps representable as int64 Unix nanoseconds.
var (
	minNanoTime = time.Unix(0, math.MinInt64)
	maxNanoTime = time.Unix(0, math.MaxInt64)
)

func toUnixNano(t time.Time) (int64, error) {
	if t.IsZero() {
		return 0, nil
	}
	if t.Before(minNanoTime) || t.After(maxNanoTime) {
		return 0, fmt.Errorf("timestamp %v out of range", t)
	}
	return t.UnixNano(), nil
}

func fromUnixNano(ns int64) time.Time {
	if ns == 0 {
		return time.Time{}
	}
	return time.Unix(0, ns).UTC()
}

// MarshalMemory encodes m deterministically: equal memories produce equal bytes.
func MarshalMemory(m *memory.Memory) ([]byte, error) {
	if m == nil {
		m = memory.New()
	}

	keys := make([]string, 0, len(m.Items))
	for k := range m.Items {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	p := payload{
		Version: payloadVersion,
		Items:   make([]payloadItem, 0, len(keys)),
		History: m.History,
	}
	for _, k := range keys {
		note := m.Items[k]
		created, err := toUnixNano(note.Timestamp)
		if err != nil {
			return nil, fmt.Errorf("failed to encode note %q: %w", k, err)
		}
		p.Items = append(p.Items, payloadItem{
			Key:       k,
			Value:     note.Value,
			Tags:      note.Tags,
			CreatedNs: created,
		})
	}

	data, err := bson.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("failed to encode memory: %w", err)
	}
	return data, nil
}

// UnmarshalMemory decodes a payload produced by MarshalMemory. Anything else
// fails with ErrMalformedPayload.
func UnmarshalMemory(data []byte) (*memory.Memory, error) {
	if len(data) < 5 || int(binary.LittleEndian.Uint32(data)) != len(data) {
		return nil, fmt.Errorf("%w: bad document length", kerrors.ErrMalformedPayload)
	}

	var p payload
	if err := bson.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("%w: %v", kerrors.ErrMalformedPayload, err)
	}
	if p.Version != payloadVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", kerrors.ErrMalformedPayload, p.Version)
	}

	m := &memory.Memory{
		Items:   make(map[string]memory.Note, len(p.Items)),
		History: p.History,
	}
	for _, it := range p.Items {
		if _, dup := m.Items[it.Key]; dup {
			return nil, fmt.Errorf("%w: duplicate key %q", kerrors.ErrMalformedPayload, it.Key)
		}
		m.Items[it.Key] = memory.Note{
			Value:     it.Value,
			Tags:      it.Tags,
			Timestamp: fromUnixNano(it.CreatedNs),
		}
	}

	return m, nil
}
