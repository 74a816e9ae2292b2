package ai

// Prompt templates, one per tool. User text is interpolated directly into
// the instruction string; the only bound applied is a hard character cutoff
// on long source texts so the request stays within provider limits.

import (
	"fmt"
	"strings"
)

// Character budgets for long user-supplied source texts. The cutoff is a
// plain slice, not sentence-aware.
const (
	summarizeTextBudget   = 15000
	videoTranscriptBudget = 30000
)

// Truncate cuts s to at most max characters. The count is in runes, never
// bytes, so an accented character at the boundary stays intact.
func Truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}

// ImagePrompt builds the instruction for the image prompt engineering tool.
func ImagePrompt(idea, style string) string {
	return fmt.Sprintf(`Atue como um Engenheiro de Prompts Especialista em Midjourney v6 e DALL-E 3.
Sua missão: Transformar a ideia do usuário em UM prompt profissional em Inglês.
Ideia: "%s"
Estilo Visual Obrigatório: "%s"

Regras:
1. Escreva APENAS o prompt final em Inglês. Não coloque introduções.
2. Use palavras-chave técnicas poderosas (ex: 8k, photorealistic, cinematic lighting).`, idea, style)
}

// VideoPrompt builds the instruction for the video (Sora/Veo) prompt tool.
// Lighting and audio are optional refinements.
func VideoPrompt(idea, style, camera, lighting, audio string) string {
	var sb strings.Builder
	sb.WriteString("Atue como um Diretor de Cinematografia. Crie um prompt para IA de vídeo (Sora/Veo).\n")
	fmt.Fprintf(&sb, "Ideia: %q | Estilo: %q | Câmera: %q", idea, style, camera)
	if lighting != "" {
		fmt.Fprintf(&sb, " | Iluminação: %q", lighting)
	}
	if audio != "" {
		fmt.Fprintf(&sb, " | Áudio: %q", audio)
	}
	sb.WriteString("\nSaída: APENAS o prompt em Inglês detalhado, focado em movimento e fluidez.")
	return sb.String()
}

// VideoSummaryPrompt asks for a summary of a video transcript.
func VideoSummaryPrompt(transcript string) string {
	return "Resuma o seguinte vídeo: " + Truncate(transcript, videoTranscriptBudget)
}

// ABNTPrompt asks for academic (ABNT) formatting of a text.
func ABNTPrompt(text string) string {
	return "Formate o texto abaixo seguindo as normas da ABNT (use Markdown): " + text
}

// TextSummaryPrompt asks for a ~20% length summary.
func TextSummaryPrompt(text string) string {
	return "Resuma o texto mantendo os pontos principais (aprox 20% do tamanho): " + Truncate(text, summarizeTextBudget)
}

// SpreadsheetPrompt asks for tabular JSON data matching a user request.
func SpreadsheetPrompt(request string) string {
	return fmt.Sprintf(`Você é um Gerador de Dados para Excel.
PEDIDO: "%s"
Gere um JSON com 5 linhas de dados fictícios.
Responda APENAS o JSON.`, request)
}

// DocumentAnswerPrompt grounds a question on retrieved document chunks.
func DocumentAnswerPrompt(contextText, question string) string {
	return fmt.Sprintf("Contexto: %s\nPergunta: %s", contextText, question)
}

// TranslationPrompt rewrites or translates a text with a given tone.
func TranslationPrompt(text, tone, targetLang string) string {
	return fmt.Sprintf("Reescreva/Traduza o texto: '%s' para %s com tom %s. Apenas o texto traduzido.", text, targetLang, tone)
}

// SocialMediaPrompt asks for a platform-specific post.
func SocialMediaPrompt(topic, platform, tone string) string {
	return fmt.Sprintf("Crie um post para %s sobre '%s' com tom %s.", platform, topic, tone)
}

// EssayCorrectionPrompt asks for an ENEM-style correction with a fixed JSON
// output shape; the provider offers no structured-output contract, so the
// shape lives in the instruction.
func EssayCorrectionPrompt(theme, essay string) string {
	return fmt.Sprintf(`Corrija a redação sobre '%s': '%s'.
SAÍDA JSON: { "total_score": 0, "competencies": {...}, "feedback": "..." }`, theme, essay)
}

// InterviewPrompt asks for interview questions with model answers.
func InterviewPrompt(role, company, experience, description string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Crie 5 perguntas de entrevista para vaga %s na empresa %s.", role, company)
	if experience != "" {
		fmt.Fprintf(&sb, " Nível de experiência do candidato: %s.", experience)
	}
	if description != "" {
		fmt.Fprintf(&sb, " Descrição da vaga: %s.", description)
	}
	sb.WriteString("\nSAÍDA JSON: { \"questions\": [{ \"q\": \"...\", \"a\": \"...\" }], \"tips\": [\"...\"] }")
	return sb.String()
}

// StudyGuidePrompt asks for a Markdown study guide.
func StudyGuidePrompt(topic, level string) string {
	return fmt.Sprintf("Crie um guia de estudos Markdown sobre: %s. Nível: %s.", topic, level)
}

// CoverLetterPrompt writes a cover letter from a job description and CV.
func CoverLetterPrompt(jobDesc, cvText, tone string) string {
	prompt := fmt.Sprintf("Escreva Cover Letter para vaga '%s' baseada no CV '%s'.", jobDesc, cvText)
	if tone != "" {
		prompt += fmt.Sprintf(" Tom: %s.", tone)
	}
	return prompt
}
