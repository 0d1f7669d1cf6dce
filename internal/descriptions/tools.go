package descriptions

import "sort"

// Tool names exposed by the MCP server
const (
	ToolExtractText  = "resume_extract_text"
	ToolParseFile    = "resume_parse_file"
	ToolParseText    = "resume_parse_text"
	ToolValidateFile = "resume_validate_file"
	ToolListFiles    = "resume_list_files"
	ToolServerInfo   = "resume_server_info"
)

const (
	// Extraction Tools
	ResumeExtractTextDescription = `Extract the plain text of a resume PDF.

**When to use:** Need the raw text of a resume, for example to review it before structuring or to feed it to another tool.

**How it works:** Tries positioned text extraction first, then a content stream decoder, then a raw scan of the file. The first readable result wins; the response names the strategy and lists every attempt.

**Examples:**
• "Get the text of resumes/jane_doe.pdf"
• "Show me what text can be read from candidate-42.pdf"

**Scanned documents:** A resume without a text layer is not an error. The response has scanned=true and a message asking for a text-based PDF or an OCR pass.

**Best practices:** Paths may be relative to the configured resume directory. Run resume_validate_file first on uploads of unknown origin.`

	ResumeParseFileDescription = `Extract and structure a resume PDF into a JSON record.

**When to use:** Need contact details, skills, work history, education and projects from a resume file.

**Output:** personalInfo (name, title, email, phone, location, website, summary), skills grouped in categories, experience entries with dates and achievements, education entries, and projects. Missing fields are empty strings and missing lists are empty arrays, never null.

**Examples:**
• "Parse resumes/jane_doe.pdf and list her employers"
• "What degree does the candidate in cv-2024.pdf hold?"

**Common workflows:**
1. Screening: resume_list_files → resume_parse_file for each match → compare skills
2. Import: resume_validate_file → resume_parse_file → store the record

**Best practices:** Check the scanned flag. A scanned resume returns an empty record and guidance in message.`

	ResumeParseTextDescription = `Structure resume text that has already been extracted.

**When to use:** The resume text comes from somewhere other than a PDF in the resume directory, such as a pasted résumé, a DOCX conversion or an OCR pass.

**Output:** The same JSON record as resume_parse_file. Text shorter than 20 characters or mostly unreadable yields an empty record.

**Examples:**
• "Parse this resume text I pasted"
• "Structure the OCR output of scan-17.pdf"`

	// File Tools
	ResumeValidateFileDescription = `Check a resume upload before processing it.

**When to use:** Before parsing files of unknown origin, or when resume_parse_file reports an unreadable document.

**Checks:** file exists inside the resume directory, has a .pdf extension, is not empty, is within the size limit, starts with a %PDF- header and has a readable page tree.

**Output:** valid, pages and size, or a message naming the failed check.`

	ResumeListFilesDescription = `List resume PDFs in the resume directory.

**When to use:** Find resumes to process, or narrow a directory down by candidate name.

**Matching:** The optional query matches file names case-insensitively, either as a substring or word by word ("jane cv" matches "Jane_Doe_CV.pdf"). Hidden directories are skipped.

**Examples:**
• "List all resumes"
• "Find resumes for Smith in the archive folder"`

	// Utility Tools
	ResumeServerInfoDescription = `Get server configuration, available tools and the resumes in the configured directory.

**When to use:** Starting a session, or checking why a file cannot be found.

**Output:** server name and version, resume directory, size limit, tool list and the resumes currently available.`
)

// ToolDescriptions maps tool names to their descriptions
var ToolDescriptions = map[string]string{
	ToolExtractText:  ResumeExtractTextDescription,
	ToolParseFile:    ResumeParseFileDescription,
	ToolParseText:    ResumeParseTextDescription,
	ToolValidateFile: ResumeValidateFileDescription,
	ToolListFiles:    ResumeListFilesDescription,
	ToolServerInfo:   ResumeServerInfoDescription,
}

// GetToolDescription returns the description for a tool
func GetToolDescription(toolName string) string {
	if desc, exists := ToolDescriptions[toolName]; exists {
		return desc
	}
	return "Tool description not available"
}

// GetAllToolNames returns the available tool names in sorted order
func GetAllToolNames() []string {
	names := make([]string, 0, len(ToolDescriptions))
	for name := range ToolDescriptions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
