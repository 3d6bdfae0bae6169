package cli

import "testing"

func TestResolveOutput(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		opts       renderOpts
		wantFormat string
		wantOutput string
		wantErr    bool
	}{
		{
			name:       "defaults to png next to input",
			input:      "art/tree.toml",
			opts:       renderOpts{},
			wantFormat: "png",
			wantOutput: "art/tree.png",
		},
		{
			name:       "format from output extension",
			input:      "tree.toml",
			opts:       renderOpts{output: "out.svg"},
			wantFormat: "svg",
			wantOutput: "out.svg",
		},
		{
			name:       "explicit format wins",
			input:      "tree.toml",
			opts:       renderOpts{format: "svg"},
			wantFormat: "svg",
			wantOutput: "tree.svg",
		},
		{
			name:       "upper-case format accepted",
			input:      "tree.toml",
			opts:       renderOpts{format: "PNG", output: "x.png"},
			wantFormat: "png",
			wantOutput: "x.png",
		},
		{
			name:    "unsupported extension",
			input:   "tree.toml",
			opts:    renderOpts{output: "out.pdf"},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			format, output, err := resolveOutput(tt.input, &tt.opts)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("resolveOutput() error = %v", err)
			}
			if format != tt.wantFormat {
				t.Errorf("format = %q, want %q", format, tt.wantFormat)
			}
			if output != tt.wantOutput {
				t.Errorf("output = %q, want %q", output, tt.wantOutput)
			}
		})
	}
}
