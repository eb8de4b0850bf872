package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSanitizeFilename(t *testing.T) {
	cases := map[string]string{
		"contract.pdf":             "contract.pdf",
		"Kira Sözleşmesi (v2).pdf": "Kira_Sözleşmesi_v2_.pdf",
		"../../etc/passwd":         "passwd",
		"/tmp/evil.txt":            "evil.txt",
		"  padded.docx  ":          "padded.docx",
		"???":                      "_",
		"":                         "file",
	}
	for in, want := range cases {
		require.Equal(t, want, SanitizeFilename(in), "input %q", in)
	}
}

func TestBaseWithoutExt(t *testing.T) {
	require.Equal(t, "contract", BaseWithoutExt("contract.pdf"))
	require.Equal(t, "archive.tar", BaseWithoutExt("archive.tar.gz"))
	require.Equal(t, "noext", BaseWithoutExt("noext"))
}

func TestFormatFileSize(t *testing.T) {
	require.Equal(t, "512 B", FormatFileSize(512))
	require.Equal(t, "1.5 KB", FormatFileSize(1536))
	require.Equal(t, "2.0 MB", FormatFileSize(2*1024*1024))
}
