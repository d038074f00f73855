package assistant

import (
	"fmt"
	"strings"
)

// Attachment is a file the user attached to a chat message.
type Attachment struct {
	Name string `json:"name"`
	Type string `json:"type,omitempty"`
	URL  string `json:"url,omitempty"`
	Size int64  `json:"size,omitempty"`
}

// summarizeAttachments builds the markdown block appended to replies when the
// message carries attachments.
func summarizeAttachments(attachments []Attachment) string {
	if len(attachments) == 0 {
		return ""
	}

	lines := make([]string, 0, len(attachments))
	for _, att := range attachments {
		fileType := att.Type
		if fileType == "" {
			if i := strings.LastIndex(att.Name, "."); i >= 0 {
				fileType = att.Name[i+1:]
			}
		}
		fileType = strings.ToLower(fileType)

		switch {
		case strings.Contains(fileType, "pdf"):
			lines = append(lines, fmt.Sprintf("📄 Documento PDF: %s - Vou analisar este documento para você.", att.Name))
		case strings.Contains(fileType, "image"), strings.Contains(fileType, "jpg"), strings.Contains(fileType, "png"):
			lines = append(lines, fmt.Sprintf("🖼️ Imagem: %s - Vou analisar esta imagem.", att.Name))
		case strings.Contains(fileType, "doc"):
			lines = append(lines, fmt.Sprintf("📝 Documento Word: %s - Vou analisar este documento.", att.Name))
		default:
			lines = append(lines, fmt.Sprintf("📎 Arquivo: %s", att.Name))
		}
	}

	return "\n\n**Documentos anexados:**\n" + strings.Join(lines, "\n")
}
