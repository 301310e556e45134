package services

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"

	"jobfit/matching-api/internal/matching"
)

// ExtractionService turns an uploaded résumé file into the structured
// ParsedResume the matching engine consumes: plain text first, then
// regex-based skill/experience/education extraction.
type ExtractionService interface {
	ExtractText(filePath string) (string, error)
	ParseResume(text string) *matching.ParsedResume
}

type extractionService struct{}

func NewExtractionService() ExtractionService {
	return &extractionService{}
}

// Common technical skill vocabulary, matched case-insensitively. Novel
// skills outside these patterns still enter the pipeline when provided
// as structured input; this is the plain-text fallback.
var skillPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(Java|Python|JavaScript|TypeScript|Go|Golang|React|Angular|Vue|Node\.js|Spring|Hibernate|MySQL|PostgreSQL|MongoDB|AWS|Azure|Docker|Kubernetes|Git|Jenkins|Maven|Gradle)\b`),
	regexp.MustCompile(`(?i)\b(HTML|CSS|SQL|REST|GraphQL|JSON|XML|Microservices|Agile|Scrum|DevOps|CI/CD)\b`),
	regexp.MustCompile(`(?i)\b(Machine Learning|Data Science|Statistics|TensorFlow|PyTorch|Scikit-learn|Pandas|NumPy)\b`),
	regexp.MustCompile(`(?i)\b(Project Management|Leadership|Communication|Problem Solving|Teamwork|Time Management)\b`),
}

var (
	yearsOfExperiencePattern = regexp.MustCompile(`(?i)\b(\d+)\+?\s*(?:years?|yrs?)\s*(?:of\s+)?(?:experience|exp)\b`)
	rolePatterns             = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(?:worked|experience)\s+(?:as|in)\s+([^\n.,;]+)`),
		regexp.MustCompile(`(?i)\b(?:senior|junior|lead|principal|staff)\s+([a-zA-Z ]+?(?:engineer|developer|analyst|manager|architect|scientist))\b`),
	}
	educationPattern = regexp.MustCompile(`(?i)\b(PhD|Doctorate|Master(?:'s)?|MSc|MBA|Bachelor(?:'s)?|BSc|Associate|Diploma|Certificate)\b(?:[^\n]{0,60}?\b(?:of|in)\s+([A-Za-z ]+))?`)

	xmlTagPattern = regexp.MustCompile(`<[^>]*>`)
)

// ExtractText reads plain text out of a PDF or DOCX file.
func (e *extractionService) ExtractText(filePath string) (string, error) {
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return "", fmt.Errorf("file does not exist: %s", filePath)
	}

	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".pdf":
		return extractPDFText(filePath)
	case ".docx":
		return extractDocxText(filePath)
	default:
		return "", fmt.Errorf("unsupported file type: %s", filepath.Ext(filePath))
	}
}

func extractPDFText(filePath string) (string, error) {
	f, r, err := pdf.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	var textBuilder strings.Builder
	totalPage := r.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			// Skip unreadable pages, keep the rest
			continue
		}

		textBuilder.WriteString(text)
		textBuilder.WriteString("\n\n")
	}

	text := textBuilder.String()
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("no text content found in PDF")
	}

	return text, nil
}

func extractDocxText(filePath string) (string, error) {
	doc, err := docx.ReadDocxFile(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to open DOCX: %w", err)
	}
	defer doc.Close()

	text := xmlTagPattern.ReplaceAllString(doc.Editable().GetContent(), " ")
	text = CleanText(text)
	if text == "" {
		return "", fmt.Errorf("no text content found in DOCX")
	}

	return text, nil
}

// ParseResume extracts structured fields from résumé text. It never
// fails: a résumé yielding nothing is caught later by the engine's
// structurally-empty check.
func (e *extractionService) ParseResume(text string) *matching.ParsedResume {
	parsed := &matching.ParsedResume{
		Skills:     extractSkills(text),
		Experience: extractExperience(text),
		Education:  extractEducation(text),
	}
	return parsed
}

func extractSkills(text string) []string {
	var skills []string
	seen := make(map[string]bool)

	for _, pattern := range skillPatterns {
		for _, m := range pattern.FindAllStringSubmatch(text, -1) {
			skill := m[1]
			key := strings.ToLower(skill)
			if seen[key] {
				continue
			}
			seen[key] = true
			skills = append(skills, skill)
		}
	}

	return skills
}

// extractExperience finds role lines and the stated years of experience.
// Multiple "N years" claims collapse into one entry with the largest N so
// repeated mentions never add up.
func extractExperience(text string) []matching.ExperienceEntry {
	var entries []matching.ExperienceEntry

	maxYears := 0.0
	for _, m := range yearsOfExperiencePattern.FindAllStringSubmatch(text, -1) {
		if years, err := strconv.ParseFloat(m[1], 64); err == nil && years > maxYears {
			maxYears = years
		}
	}
	if maxYears > 0 {
		entries = append(entries, matching.ExperienceEntry{
			Title: fmt.Sprintf("%g years of experience", maxYears),
			Years: maxYears,
		})
	}

	seen := make(map[string]bool)
	for _, pattern := range rolePatterns {
		for _, m := range pattern.FindAllStringSubmatch(text, -1) {
			title := strings.TrimSpace(m[0])
			key := strings.ToLower(title)
			if seen[key] {
				continue
			}
			seen[key] = true
			entries = append(entries, matching.ExperienceEntry{Title: title})
		}
	}

	return entries
}

func extractEducation(text string) []matching.EducationEntry {
	var entries []matching.EducationEntry
	seen := make(map[string]bool)

	for _, m := range educationPattern.FindAllStringSubmatch(text, -1) {
		degree := strings.TrimSpace(m[0])
		key := strings.ToLower(degree)
		if seen[key] {
			continue
		}
		seen[key] = true
		entries = append(entries, matching.EducationEntry{Degree: degree})
	}

	return entries
}

// CleanText collapses whitespace and drops blank lines.
func CleanText(text string) string {
	text = strings.TrimSpace(text)

	lines := strings.Split(text, "\n")
	var cleanedLines []string

	for _, line := range lines {
		line = strings.Join(strings.Fields(line), " ")
		if line != "" {
			cleanedLines = append(cleanedLines, line)
		}
	}

	return strings.Join(cleanedLines, "\n")
}
