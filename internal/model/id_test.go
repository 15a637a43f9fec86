package model

import (
	"errors"
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{name: "plain", input: "7", want: 7},
		{name: "zero padded", input: "007", want: 7},
		{name: "hash prefix", input: "#7", want: 7},
		{name: "large", input: "12345", want: 12345},
		{name: "zero", input: "0", wantErr: true},
		{name: "negative", input: "-3", wantErr: true},
		{name: "largest", input: strconv.Itoa(MaxID), want: MaxID},
		{name: "max int", input: strconv.Itoa(math.MaxInt), wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "letters", input: "abc", wantErr: true},
		{name: "double hash", input: "##7", wantErr: true},
		{name: "whitespace", input: " 7", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseID(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidID))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatID(t *testing.T) {
	assert.Equal(t, "#1", FormatID(1))
	assert.Equal(t, "#42", FormatID(42))
}
