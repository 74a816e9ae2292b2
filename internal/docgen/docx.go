// Package docgen renders tool output as downloadable office files.
package docgen

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/gingfrederik/docx"
)

// DocxMIME is the content type for .docx attachments.
const DocxMIME = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// BuildDocx writes the submitted text into a Word document, one paragraph
// per line. The text is used as-is; markdown markers are not interpreted.
func BuildDocx(text string) (*bytes.Buffer, error) {
	f := docx.NewFile()
	for _, line := range strings.Split(text, "\n") {
		para := f.AddParagraph()
		para.AddText(line)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to build docx: %w", err)
	}
	return &buf, nil
}
