package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseGroupOrder(t *testing.T) {
	tests := []struct {
		in      string
		want    GroupOrder
		wantErr bool
	}{
		{in: "", want: GroupOrderDate},
		{in: "date", want: GroupOrderDate},
		{in: " Name ", want: GroupOrderName},
		{in: "size", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseGroupOrder(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		assert.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}
