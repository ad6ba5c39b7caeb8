package secrets

import (
	"testing"
	"time"

	kerrors "github.com/PolarWolf314/zlang/internal/errors"
	"github.com/PolarWolf314/zlang/internal/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestMarshalMemory_Deterministic(t *testing.T) {
	ts := time.Date(2024, 5, 1, 12, 0, 0, 123456789, time.UTC)
	build := func(order []string) *memory.Memory {
		m := memory.New()
		for _, k := range order {
			m.Items[k] = memory.Note{Value: "v-" + k, Tags: []string{"t"}, Timestamp: ts}
		}
		m.History = []string{"save:a", "save:b", "save:c"}
		return m
	}

	a, err := MarshalMemory(build([]string{"a", "b", "c"}))
	require.NoError(t, err)
	b, err := MarshalMemory(build([]string{"c", "a", "b"}))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestMarshalMemory_TimestampExact(t *testing.T) {
	ts := time.Date(2031, 1, 2, 3, 4, 5, 999999999, time.UTC)
	m := memory.New()
	m.Items["k"] = memory.Note{Value: "v", Timestamp: ts}

	data, err := MarshalMemory(m)
	require.NoError(t, err)
	got, err := UnmarshalMemory(data)
	require.NoError(t, err)
	assert.True(t, got.Items["k"].Timestamp.Equal(ts))

	m.Items["k"] = memory.Note{Value: "zero"}
	data, err = MarshalMemory(m)
	require.NoError(t, err)
	got, err = UnmarshalMemory(data)
	require.NoError(t, err)
	assert.True(t, got.Items["k"].Timestamp.IsZero())
}

func TestUnmarshalMemory_RejectsUnknownVersion(t *testing.T) {
	data, err := bson.Marshal(payload{Version: 2})
	require.NoError(t, err)

	_, err = UnmarshalMemory(data)
	assert.ErrorIs(t, err, kerrors.ErrMalformedPayload)
}

func TestUnmarshalMemory_RejectsDuplicateKeys(t *testing.T) {
	data, err := bson.Marshal(payload{
		Version: payloadVersion,
		Items:   []payloadItem{{Key: "k", Value: "1"}, {Key: "k", Value: "2"}},
	})
	require.NoError(t, err)

	_, err = UnmarshalMemory(data)
	assert.ErrorIs(t, err, kerrors.ErrMalformedPayload)
}

func TestUnmarshalMemory_RejectsWrongFieldTypes(t *testing.T) {
	data, err := bson.Marshal(bson.M{"v": int32(payloadVersion), "items": "not an array"})
	require.NoError(t, err)

	_, err = UnmarshalMemory(data)
	assert.ErrorIs(t, err, kerrors.ErrMalformedPayload)
}

func TestMarshalMemory_StoresUnixNanoseconds(t *testing.T) {
	ts := time.Date(2024, 3, 1, 12, 30, 45, 123456789, time.UTC)
	m := memory.New()
	m.Items["k"] = memory.Note{Value: "v", Timestamp: ts}

	data, err := MarshalMemory(m)
	require.NoError(t, err)

	var doc struct {
		Items []bson.M `bson:"items"`
	}
	require.NoError(t, bson.Unmarshal(data, &doc))
	require.Len(t, doc.Items, 1)
	assert.Equal(t, ts.UnixNano(), doc.Items[0]["created_ns"])
	assert.NotContains(t, doc.Items[0], "created_s")
}

func TestMarshalMemory_RejectsUnrepresentableTimestamp(t *testing.T) {
	m := memory.New()
	m.Items["k"] = memory.Note{Value: "v", Timestamp: time.Date(3000, 1, 1, 0, 0, 0, 0, time.UTC)}

	_, err := MarshalMemory(m)
	assert.Error(t, err)
}
