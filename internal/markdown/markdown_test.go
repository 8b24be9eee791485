// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package markdown

import (
	"strings"
	"testing"
)

func TestToHTML(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   []string
		reject []string
	}{
		{
			name:  "paragraphs",
			input: "Clouds drift over the pool.\n\nEvenings smell of roasted beans.",
			want:  []string{"<p>Clouds drift over the pool.</p>", "<p>Evenings smell of roasted beans.</p>"},
		},
		{
			name:  "emphasis",
			input: "Every morning your *infinity pool*.",
			want:  []string{"<em>infinity pool</em>"},
		},
		{
			name:  "typographer quotes",
			input: `A "quiet" estate`,
			want:  []string{"&ldquo;quiet&rdquo;"},
		},
		{
			name:   "raw html is not passed through",
			input:  "<script>alert(1)</script>",
			reject: []string{"<script>"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := ToHTML(tt.input)
			if err != nil {
				t.Fatalf("ToHTML: %v", err)
			}
			for _, w := range tt.want {
				if !strings.Contains(out, w) {
					t.Errorf("output %q missing %q", out, w)
				}
			}
			for _, r := range tt.reject {
				if strings.Contains(out, r) {
					t.Errorf("output %q should not contain %q", out, r)
				}
			}
		})
	}
}

func TestMustHTML(t *testing.T) {
	if got := MustHTML("plain"); strings.TrimSpace(got) != "<p>plain</p>" {
		t.Errorf("MustHTML: got %q", got)
	}
}
