package extract

import (
	"archive/zip"
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func buildDOCX(t *testing.T, documentXML string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(documentXML))
	require.NoError(t, err)

	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestSupported(t *testing.T) {
	require.True(t, Supported(MimePDF, "x.bin"))
	require.True(t, Supported(MimeDOCX, "x.bin"))
	require.True(t, Supported(MimeTXT, "x.bin"))
	require.True(t, Supported("application/octet-stream", "contract.PDF"))
	require.True(t, Supported("", "contract.docx"))
	require.True(t, Supported("", "notes.txt"))
	require.False(t, Supported("image/png", "scan.png"))
	require.False(t, Supported("application/zip", "contract.zip"))
}

func TestExtractPlainText(t *testing.T) {
	text, err := Extract([]byte("madde 1: taraflar"), MimeTXT, "contract.txt")
	require.NoError(t, err)
	require.Equal(t, "madde 1: taraflar", text)
}

func TestExtractUnknownFallsBackToUTF8(t *testing.T) {
	text, err := Extract([]byte("plain bytes"), "application/x-unknown", "contract.unknown")
	require.NoError(t, err)
	require.Equal(t, "plain bytes", text)
}

func TestExtractDOCX(t *testing.T) {
	doc := `<?xml version="1.0"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>Kira sözleşmesi</w:t></w:r><w:r><w:t xml:space="preserve"> madde 1</w:t></w:r></w:p>
    <w:p><w:r><w:t>Taraflar anlaşmıştır.</w:t></w:r></w:p>
  </w:body>
</w:document>`

	text, err := Extract(buildDOCX(t, doc), MimeDOCX, "contract.docx")
	require.NoError(t, err)
	require.Contains(t, text, "Kira sözleşmesi madde 1")
	require.Contains(t, text, "Taraflar anlaşmıştır.")
	require.Contains(t, text, "\n", "paragraph boundaries become newlines")
}

func TestExtractDOCXDispatchByExtension(t *testing.T) {
	doc := `<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body><w:p><w:r><w:t>hello</w:t></w:r></w:p></w:body></w:document>`

	// Declared MIME is wrong; the .docx extension wins over the UTF-8 fallback.
	text, err := Extract(buildDOCX(t, doc), "application/octet-stream", "contract.docx")
	require.NoError(t, err)
	require.Contains(t, text, "hello")
}

func TestExtractDOCXWithoutDocumentXML(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/styles.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte("<styles/>"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	_, err = Extract(buf.Bytes(), MimeDOCX, "contract.docx")
	require.Error(t, err)
}

func TestExtractCorruptPDF(t *testing.T) {
	_, err := Extract([]byte("definitely not a pdf"), MimePDF, "contract.pdf")
	require.Error(t, err)
}

func TestExtractCorruptDOCX(t *testing.T) {
	_, err := Extract([]byte("definitely not a zip"), MimeDOCX, "contract.docx")
	require.Error(t, err)
}
