package config

import (
	"testing"
)

func TestCheckDocument(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		data    string
		wantErr bool
	}{
		{
			name: "valid yaml",
			path: "bench.yaml",
			data: "filter: \"sort/.*\"\nsamples: 10\n",
		},
		{
			name: "valid yaml with sweep",
			path: "bench.yaml",
			data: `params:
  name: n
  op: "+"
  init: "0"
  step: "1"
  count: 3
`,
		},
		{
			name: "valid json",
			path: "bench.json",
			data: `{"reporter": "json", "noAnalysis": true}`,
		},
		{
			name:    "unknown field",
			path:    "bench.yaml",
			data:    "fliter: \".*\"\n",
			wantErr: true,
		},
		{
			name:    "wrong type for samples",
			path:    "bench.yaml",
			data:    "samples: lots\n",
			wantErr: true,
		},
		{
			name:    "bad sweep operator",
			path:    "bench.json",
			data:    `{"params": {"name": "n", "op": "-", "init": "0", "step": "1", "count": 1}}`,
			wantErr: true,
		},
		{
			name:    "sweep missing count",
			path:    "bench.json",
			data:    `{"params": {"name": "n", "op": "+", "init": "0", "step": "1"}}`,
			wantErr: true,
		},
		{
			name:    "malformed json",
			path:    "bench.json",
			data:    `{`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckDocument([]byte(tt.data), tt.path)
			if tt.wantErr && err == nil {
				t.Error("CheckDocument() should have failed")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("CheckDocument() error: %v", err)
			}
		})
	}
}
