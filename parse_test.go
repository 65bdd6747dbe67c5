package rainbow_test

import (
	"strings"
	"testing"

	"github.com/bjaus/rainbow"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cellsOf(t rainbow.Table) [][]string {
	out := make([][]string, len(t.Rows))
	for i, row := range t.Rows {
		out[i] = row.Cells
	}
	return out
}

func TestParse(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input   string
		delim   rune
		cells   [][]string
		columns int
	}{
		"comma rows": {
			input:   "a,b,c\n1,2,3",
			delim:   ',',
			cells:   [][]string{{"a", "b", "c"}, {"1", "2", "3"}},
			columns: 3,
		},
		"semicolon": {
			input:   "a;b;c",
			delim:   ';',
			cells:   [][]string{{"a", "b", "c"}},
			columns: 3,
		},
		"tab": {
			input:   "a\tb\n1\t2",
			delim:   '\t',
			cells:   [][]string{{"a", "b"}, {"1", "2"}},
			columns: 2,
		},
		"pipe": {
			input:   "a | b | c",
			delim:   '|',
			cells:   [][]string{{"a", "b", "c"}},
			columns: 3,
		},
		"quoted comma": {
			input:   `"hello, world",2`,
			delim:   ',',
			cells:   [][]string{{"hello, world", "2"}},
			columns: 2,
		},
		"escaped comma": {
			input:   `a\,b,c`,
			delim:   ',',
			cells:   [][]string{{"a,b", "c"}},
			columns: 2,
		},
		"blank lines skipped": {
			input:   "\n a,b \n\n   \n1,2\n",
			delim:   ',',
			cells:   [][]string{{"a", "b"}, {"1", "2"}},
			columns: 2,
		},
		"ragged rows": {
			input:   "a,b,c\n1\n1,2",
			delim:   ',',
			cells:   [][]string{{"a", "b", "c"}, {"1"}, {"1", "2"}},
			columns: 3,
		},
		"no delimiter": {
			input:   "hello",
			delim:   ',',
			cells:   [][]string{{"hello"}},
			columns: 1,
		},
		"crlf": {
			input:   "a,b\r\n1,2\r\n",
			delim:   ',',
			cells:   [][]string{{"a", "b"}, {"1", "2"}},
			columns: 2,
		},
		"byte order mark": {
			input:   "\uFEFFa;b\n1;2",
			delim:   ';',
			cells:   [][]string{{"a", "b"}, {"1", "2"}},
			columns: 2,
		},
		"wide characters": {
			input:   "名前|年齢\n太郎|30",
			delim:   '|',
			cells:   [][]string{{"名前", "年齢"}, {"太郎", "30"}},
			columns: 2,
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got := rainbow.Parse(tt.input)
			assert.Equal(t, tt.delim, got.Delimiter)
			assert.Equal(t, tt.cells, cellsOf(got))
			assert.Equal(t, tt.columns, got.ColumnCount)
			assert.False(t, got.Empty())
		})
	}
}

func TestParseEmpty(t *testing.T) {
	t.Parallel()
	for _, input := range []string{"", "\n\n", "  \n\t\n", "\r\n"} {
		got := rainbow.Parse(input)
		assert.True(t, got.Empty(), "input %q", input)
		assert.Empty(t, got.Rows)
		assert.Zero(t, got.ColumnCount)
		assert.Equal(t, ',', got.Delimiter)
	}
}

func TestParseKeepsRawLine(t *testing.T) {
	t.Parallel()
	got := rainbow.Parse("  \"a\" , b\\,c  \r\n\nx,y")
	require.Len(t, got.Rows, 2)
	assert.Equal(t, "  \"a\" , b\\,c  \r", got.Rows[0].Raw)
	assert.Equal(t, []string{"a", "b,c"}, got.Rows[0].Cells)
	assert.Equal(t, "x,y", got.Rows[1].Raw)
}

func TestParseUsesFirstLineDelimiterForAllRows(t *testing.T) {
	t.Parallel()
	got := rainbow.Parse("a;b;c\n1,2,3,4,5")
	assert.Equal(t, ';', got.Delimiter)
	assert.Equal(t, [][]string{{"a", "b", "c"}, {"1,2,3,4,5"}}, cellsOf(got))
	assert.Equal(t, 3, got.ColumnCount)
}

func TestParseWith(t *testing.T) {
	t.Parallel()
	got := rainbow.ParseWith("a,b|c\nd|e", '|')
	assert.Equal(t, '|', got.Delimiter)
	assert.Equal(t, [][]string{{"a,b", "c"}, {"d", "e"}}, cellsOf(got))
	assert.Equal(t, 2, got.ColumnCount)
}

func TestDetectDelimiter(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input string
		want  rune
	}{
		"empty":                       {input: "", want: ','},
		"only blank lines":            {input: "\n \n\t", want: ','},
		"no candidates":               {input: "hello world", want: ','},
		"comma":                       {input: "a,b,c", want: ','},
		"tab":                         {input: "a\tb\tc", want: '\t'},
		"semicolon":                   {input: "a;b;c", want: ';'},
		"pipe":                        {input: "a|b|c", want: '|'},
		"most frequent wins":          {input: "a,b;c;d", want: ';'},
		"tie comma over semicolon":    {input: "a,b;c", want: ','},
		"tie tab over pipe":           {input: "a\tb|c", want: '\t'},
		"tie semicolon over pipe":     {input: "a;b|c", want: ';'},
		"quoted delimiters ignored":   {input: `"a,b,c";d`, want: ';'},
		"escaped delimiters ignored":  {input: `a\,b\,c;d`, want: ';'},
		"all quoted":                  {input: `"a,b;c|d"`, want: ','},
		"leading blank lines":         {input: "\n\n  \na|b\n", want: '|'},
		"first line only":             {input: "a;b\n1,2,3,4,5\n6,7,8,9", want: ';'},
		"escaped quote opens nothing": {input: `\"a;b"`, want: ';'},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, rainbow.DetectDelimiter(tt.input))
		})
	}
}

func TestDetectDelimiterIgnoresLaterLines(t *testing.T) {
	t.Parallel()
	first := "a|b|c"
	for _, rest := range []string{"", "\n1,2,3,4", "\n1;2;3;4;5;6", "\n\t\t\t\t"} {
		assert.Equal(t, '|', rainbow.DetectDelimiter(first+rest))
	}
}

func TestParseLine(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		line  string
		delim rune
		want  []string
	}{
		"empty line":               {line: "", delim: ',', want: []string{""}},
		"single cell":              {line: "abc", delim: ',', want: []string{"abc"}},
		"trailing delimiter":       {line: "a,", delim: ',', want: []string{"a", ""}},
		"leading delimiter":        {line: ",a", delim: ',', want: []string{"", "a"}},
		"only delimiters":          {line: ",,", delim: ',', want: []string{"", "", ""}},
		"trims whitespace":         {line: " a ,\tb ", delim: ',', want: []string{"a", "b"}},
		"quotes stripped":          {line: `he said "hi"`, delim: ',', want: []string{"he said hi"}},
		"quoted space trimmed":     {line: `"  x  ",y`, delim: ',', want: []string{"x", "y"}},
		"quoted delimiter":         {line: `"a;b";c`, delim: ';', want: []string{"a;b", "c"}},
		"unterminated quote":       {line: `"a,b`, delim: ',', want: []string{"a,b"}},
		"dangling escape":          {line: `a\`, delim: ',', want: []string{"a"}},
		"escaped quote":            {line: `\"a,b`, delim: ',', want: []string{`"a`, "b"}},
		"escaped backslash":        {line: `a\\b,c`, delim: ',', want: []string{`a\b`, "c"}},
		"escaped delimiter":        {line: `a\|b|c`, delim: '|', want: []string{"a|b", "c"}},
		"escape inside quote":      {line: `"a\"b",c`, delim: ',', want: []string{`a"b`, "c"}},
		"other delimiters literal": {line: "a;b,c", delim: '|', want: []string{"a;b,c"}},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, rainbow.ParseLine(tt.line, tt.delim))
		})
	}
}

func TestParseLineMatchesSplitWithoutQuotes(t *testing.T) {
	t.Parallel()
	lines := []string{
		"a,b,c",
		"  spaced , out ,  ",
		",,,",
		"one",
		"x;y,z|w\tv",
		"üñí,çødé",
	}
	for _, delim := range rainbow.Delimiters() {
		for _, line := range lines {
			parts := strings.Split(line, string(delim))
			want := make([]string, len(parts))
			for i, p := range parts {
				want[i] = strings.TrimSpace(p)
			}
			assert.Equal(t, want, rainbow.ParseLine(line, delim), "line %q delim %q", line, delim)
		}
	}
}

func TestDelimiters(t *testing.T) {
	t.Parallel()
	got := rainbow.Delimiters()
	assert.Equal(t, []rune{',', '\t', ';', '|'}, got)
	// Returned slice must be a copy.
	got[0] = 'x'
	assert.Equal(t, ',', rainbow.Delimiters()[0])
}

func TestValidDelimiter(t *testing.T) {
	t.Parallel()
	for _, r := range []rune{',', '\t', ';', '|', ':', ' ', '¦'} {
		assert.True(t, rainbow.ValidDelimiter(r), "%q", r)
	}
	for _, r := range []rune{0, '"', '\\', '\r', '\n', 0xFFFD, -1} {
		assert.False(t, rainbow.ValidDelimiter(r), "%q", r)
	}
}

func TestDelimiterName(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "comma", rainbow.DelimiterName(','))
	assert.Equal(t, "tab", rainbow.DelimiterName('\t'))
	assert.Equal(t, "semicolon", rainbow.DelimiterName(';'))
	assert.Equal(t, "pipe", rainbow.DelimiterName('|'))
	assert.Equal(t, "':'", rainbow.DelimiterName(':'))
}

func TestParseDelimiter(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input string
		want  rune
		ok    bool
	}{
		"name":          {input: "semicolon", want: ';', ok: true},
		"tab name":      {input: "tab", want: '\t', ok: true},
		"tab escape":    {input: `\t`, want: '\t', ok: true},
		"literal":       {input: ":", want: ':', ok: true},
		"multibyte":     {input: "¦", want: '¦', ok: true},
		"empty":         {input: "", ok: false},
		"two chars":     {input: "::", ok: false},
		"quote":         {input: `"`, ok: false},
		"backslash":     {input: `\`, ok: false},
		"invalid utf-8": {input: "\xff", ok: false},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, ok := rainbow.ParseDelimiter(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
