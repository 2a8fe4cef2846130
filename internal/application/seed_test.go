package application

import (
	"strings"
	"testing"
)

func TestDecodeSeed(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantLen int
		wantErr bool
	}{
		{
			name:    "two websites",
			doc:     `{"websites":[{"name":"Go","description":"d","url":"https://go.dev","category":"Docs"},{"name":"GH","description":"","url":"https://github.com","category":"Tools"}]}`,
			wantLen: 2,
		},
		{
			name:    "empty list",
			doc:     `{"websites":[]}`,
			wantLen: 0,
		},
		{
			name:    "missing websites key",
			doc:     `{"sites":[]}`,
			wantErr: true,
		},
		{
			name:    "not json",
			doc:     `<html>`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeSeed(strings.NewReader(tt.doc))
			if (err != nil) != tt.wantErr {
				t.Fatalf("DecodeSeed() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && len(got) != tt.wantLen {
				t.Errorf("expected %d entries, got %d", tt.wantLen, len(got))
			}
		})
	}
}
