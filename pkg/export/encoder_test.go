package export

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFormat(t *testing.T) {
	for _, name := range []string{"plain", "markdown", "xml"} {
		f, err := ParseFormat(name)
		assert.NoError(t, err)
		assert.Equal(t, Format(name), f)
	}

	_, err := ParseFormat("yaml")
	assert.Error(t, err)
}

func TestFormatExtension(t *testing.T) {
	assert.Equal(t, "txt", FormatPlain.Extension())
	assert.Equal(t, "md", FormatMarkdown.Extension())
	assert.Equal(t, "xml", FormatXML.Extension())
}

func TestEncodeFile_Plain(t *testing.T) {
	got := EncodeFile(FormatPlain, "src/main.go", "package main")
	want := "<<<EXPORT_FILE_BEGIN>>> \"src/main.go\"\npackage main\n<<<EXPORT_FILE_END>>> \"src/main.go\"\n"
	assert.Equal(t, want, got)
}

func TestEncodeFile_PlainNoEscaping(t *testing.T) {
	// The plain format carries content verbatim, markup and all.
	content := "<file path=\"x\"> ```go\n"
	got := EncodeFile(FormatPlain, "a", content)
	assert.Contains(t, got, content)
}

func TestEncodeFile_Markdown(t *testing.T) {
	got := EncodeFile(FormatMarkdown, "pkg/util.go", "func F() {}")
	want := "## pkg/util.go\n\n```go\nfunc F() {}\n```\n"
	assert.Equal(t, want, got)
}

func TestEncodeFile_MarkdownNoExtension(t *testing.T) {
	got := EncodeFile(FormatMarkdown, "Makefile", "all:")
	assert.True(t, strings.HasPrefix(got, "## Makefile\n\n```\n"), got)
}

func TestEncodeFile_XML(t *testing.T) {
	got := EncodeFile(FormatXML, "a.txt", "hello")
	assert.Equal(t, "<file path=\"a.txt\"><![CDATA[hello]]></file>\n", got)
}

func TestEncodeFile_XMLEscapesAttribute(t *testing.T) {
	got := EncodeFile(FormatXML, `we"ird&<.txt`, "x")
	assert.Contains(t, got, `path="we&quot;ird&amp;&lt;.txt"`)
}

func TestEncodeFile_XMLSplitsCDATATerminator(t *testing.T) {
	got := EncodeFile(FormatXML, "a", "data ]]> more")
	// The embedded terminator must not close the CDATA section.
	assert.NotContains(t, got, "<![CDATA[data ]]> more]]>")
	assert.Contains(t, got, "]]]]><![CDATA[>")
}

func TestEncodeAll(t *testing.T) {
	records := []FileRecord{
		{Path: "a.txt", Content: "one"},
		{Path: "b.txt", Content: "two"},
	}
	got := EncodeAll(FormatPlain, records)
	assert.Equal(t, EncodeFile(FormatPlain, "a.txt", "one")+EncodeFile(FormatPlain, "b.txt", "two"), got)
}

func TestEncodeAll_EmptyIsEmptyString(t *testing.T) {
	for _, f := range []Format{FormatPlain, FormatMarkdown, FormatXML} {
		assert.Equal(t, "", EncodeAll(f, nil))
	}
}

func TestWrapDocument(t *testing.T) {
	body := EncodeFile(FormatXML, "a", "x")
	got := WrapDocument(body)
	assert.True(t, strings.HasPrefix(got, "<export>\n"))
	assert.True(t, strings.HasSuffix(got, "</export>\n"))
	assert.Contains(t, got, body)
}
