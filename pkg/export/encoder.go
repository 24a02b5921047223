package export

import (
	"fmt"
	"path"
	"strings"
)

// Sentinel lines delimiting each file in the plain format, chosen to be
// unlikely to collide with source content.
const (
	plainBeginMarker = "<<<EXPORT_FILE_BEGIN>>>"
	plainEndMarker   = "<<<EXPORT_FILE_END>>>"
)

// Root element wrapping an unchunked XML export. Wrapping happens once at
// the document level, never per fragment, so chunked XML output is a
// fragment stream rather than a single well-formed document.
const (
	xmlDocumentOpen  = "<export>\n"
	xmlDocumentClose = "</export>\n"
)

var xmlAttrEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

// EncodeFile renders one (path, content) pair into a single fragment.
// Fragments are the atomic unit of chunking and are never subdivided.
func EncodeFile(format Format, filePath, content string) string {
	switch format {
	case FormatMarkdown:
		lang := strings.TrimPrefix(path.Ext(filePath), ".")
		return fmt.Sprintf("## %s\n\n```%s\n%s\n```\n", filePath, lang, content)
	case FormatXML:
		return fmt.Sprintf("<file path=\"%s\">%s</file>\n",
			xmlAttrEscaper.Replace(filePath), cdata(content))
	default:
		return fmt.Sprintf("%s %q\n%s\n%s %q\n",
			plainBeginMarker, filePath, content, plainEndMarker, filePath)
	}
}

// EncodeAll concatenates the fragments for the given records. An empty
// record list encodes to the empty string for every format.
func EncodeAll(format Format, records []FileRecord) string {
	var b strings.Builder
	for _, rec := range records {
		b.WriteString(EncodeFile(format, rec.Path, rec.Content))
	}
	return b.String()
}

// WrapDocument wraps the concatenated fragments of an unchunked XML export
// in the document root element. Callers must not apply it per segment of a
// chunked export.
func WrapDocument(body string) string {
	return xmlDocumentOpen + body + xmlDocumentClose
}

// cdata wraps content so it is never interpreted as markup. An embedded
// "]]>" terminator is split across two CDATA sections.
func cdata(content string) string {
	return "<![CDATA[" + strings.ReplaceAll(content, "]]>", "]]]]><![CDATA[>") + "]]>"
}
