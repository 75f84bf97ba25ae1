package customid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	tests := []struct {
		creator string
		unix    int64
	}{
		{"123456789012345678", 1700000000},
		{"1", 0},
		{"42", 1},
	}

	for _, tt := range tests {
		action, err := Decode(Encode(tt.creator, tt.unix))
		require.NoError(t, err)
		assert.Equal(t, FetchLink{CreatorId: tt.creator, Unix: tt.unix}, action)

		action, err = Decode(EncodeDelete(tt.creator, tt.unix))
		require.NoError(t, err)
		assert.Equal(t, DeleteRequest{CreatorId: tt.creator, Unix: tt.unix}, action)
	}
}

func TestEncodeFormat(t *testing.T) {
	assert.Equal(t, "42-1700000000", Encode("42", 1700000000))
	assert.Equal(t, "42-1700000000-del", EncodeDelete("42", 1700000000))
}

func TestDecodeMalformed(t *testing.T) {
	tests := []struct {
		name string
		id   string
	}{
		{"empty", ""},
		{"one segment", "42"},
		{"four segments", "42-1700000000-del-x"},
		{"many segments", "a-b-c-d-e"},
		{"non numeric timestamp", "42-yesterday"},
		{"non numeric timestamp with tag", "42-yesterday-del"},
		{"empty creator", "-1700000000"},
		{"empty timestamp", "42-"},
		{"unknown tag", "42-1700000000-edit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, err := Decode(tt.id)
			assert.ErrorIs(t, err, ErrMalformed)
			assert.Nil(t, action)
		})
	}
}

func TestActionInvitation(t *testing.T) {
	action, err := Decode("7-99-del")
	require.NoError(t, err)

	creator, unix := action.Invitation()
	assert.Equal(t, "7", creator)
	assert.Equal(t, int64(99), unix)
}
