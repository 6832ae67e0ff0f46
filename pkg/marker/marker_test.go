package marker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRuleSet_Match(t *testing.T) {
	tests := []struct {
		name string
		line string
		want bool
	}{
		{
			name: "add_marker",
			line: "//< var x = 1;\n",
			want: true,
		},
		{
			name: "remove_marker",
			line: "//> var x = 1;\n",
			want: true,
		},
		{
			name: "indented_marker",
			line: "    //< indented marker\n",
			want: true,
		},
		{
			name: "tab_indented_marker",
			line: "\t//> tabbed marker\n",
			want: true,
		},
		{
			name: "marker_without_terminator",
			line: "//< no newline",
			want: true,
		},
		{
			name: "plain_comment",
			line: "// normal comment\n",
			want: false,
		},
		{
			name: "code_line",
			line: "int x;\n",
			want: false,
		},
		{
			name: "marker_mid_line",
			line: "int x; //< trailing marker text\n",
			want: false,
		},
		{
			name: "empty_line",
			line: "\n",
			want: false,
		},
		{
			name: "whitespace_only",
			line: "   \t  \n",
			want: false,
		},
	}

	rules := NewRuleSet("//<", "//>")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, rules.Match(tt.line))
		})
	}
}

// Classification must be stable: matching the trimmed form of a line
// yields the same decision as matching the line itself.
func TestRuleSet_Match_TrimIdempotent(t *testing.T) {
	rules := NewRuleSet("//<", "//>")
	lines := []string{
		"  //< padded\n",
		"//> bare",
		"  int x;  \n",
	}
	for _, line := range lines {
		trimmed := "  " + line // re-padding never flips the decision
		assert.Equal(t, rules.Match(line), rules.Match(trimmed), "line %q", line)
	}
}

func TestRuleSet_FilterLines(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		want        string
		wantKept    int
		wantDropped int
	}{
		{
			name:        "mixed_lines",
			content:     "int x;\n//< remove me\n//> also remove\nint y;\n",
			want:        "int x;\nint y;\n",
			wantKept:    2,
			wantDropped: 2,
		},
		{
			name:        "no_markers",
			content:     "int x;\nint y;\n",
			want:        "int x;\nint y;\n",
			wantKept:    2,
			wantDropped: 0,
		},
		{
			name:        "all_markers",
			content:     "//< one\n//> two\n",
			want:        "",
			wantKept:    0,
			wantDropped: 2,
		},
		{
			name:        "empty_content",
			content:     "",
			want:        "",
			wantKept:    0,
			wantDropped: 0,
		},
		{
			name:        "no_trailing_terminator",
			content:     "int x;\n//< drop\nint y;",
			want:        "int x;\nint y;",
			wantKept:    2,
			wantDropped: 1,
		},
		{
			name:        "kept_lines_untouched",
			content:     "  int x;  \n\t//< drop\n",
			want:        "  int x;  \n",
			wantKept:    1,
			wantDropped: 1,
		},
		{
			name:        "crlf_terminated_marker",
			content:     "int x;\r\n//< drop\r\nint y;\r\n",
			want:        "int x;\r\nint y;\r\n",
			wantKept:    2,
			wantDropped: 1,
		},
	}

	rules := NewRuleSet("//<", "//>")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := rules.FilterLines([]byte(tt.content))
			require.NotNil(t, result)
			assert.Equal(t, tt.content, string(result.OriginalContent))
			assert.Equal(t, tt.want, string(result.FilteredContent))
			assert.Equal(t, tt.wantKept, result.Kept)
			assert.Equal(t, tt.wantDropped, result.Dropped)
			assert.Equal(t, tt.wantDropped > 0, result.WasModified)
		})
	}
}

func TestRuleSet_Validate(t *testing.T) {
	require.NoError(t, NewRuleSet("//<", "//>").Validate())

	err := NewRuleSet("//<", "").Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rule 1")
}
