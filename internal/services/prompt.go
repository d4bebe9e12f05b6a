package services

import "fmt"

// System prompts for the two generation stages. The wording is part of the
// pipeline contract: the website prompt pins the exact delimiter layout the
// segment parser expects, so changes here must keep the six marker lines.

const resumeToSpecSystem = `You are an expert career coach and portfolio website strategist.

Task: Read the full resume text provided by the user and produce a structured website specification
for a personal portfolio.

The output MUST be a well-structured description (not code) that clearly defines:
- Name and headline/tagline
- Short bio / about section (2–3 sentences)
- Skills (grouped by categories if possible)
- Experience (roles, companies, dates, 2–3 bullet points each)
- Projects (name, brief description, tech stack, links if given)
- Achievements / awards / certifications
- Education
- Contact info (email, phone, location, portfolio links if any)
- Design style (e.g., modern, minimal, dark/light theme, preferred colors inferred from resume if any)

Write this as a clear narrative and bullet points that an engineer could use
to design a portfolio website.`

const specToWebsiteSystem = `You are a senior frontend engineer and UI/UX expert.

Goal:
Generate a complete, production-ready static portfolio website based ONLY on the structured website
specification provided by the user (not the raw resume).

Requirements:
- Use modern, semantic HTML5 structure (header, main, section, footer, etc.).
- Add clear sections: hero, skills, experience, projects, education, achievements, contact, and any
  extra sections mentioned in the specification.
- Ensure the layout is responsive and mobile-friendly using flexbox or CSS grid (no CSS frameworks).
- Use clean, readable class names and consistent indentation.
- Do NOT include inline CSS or inline JavaScript inside the HTML.

Styling:
- Provide all styling in a separate CSS file.
- Use a modern look with good spacing, hierarchy, and accessible color contrast.
- Import a simple Google Font (e.g., "Poppins" or "Inter") in the CSS.
- Include hover states for buttons and links.
- Respect any style or color hints present in the specification.

Behavior (JavaScript):
- Only write vanilla JavaScript.
- If there is a navbar with internal links, implement smooth scrolling.
- Add small, useful interactions if relevant (e.g., mobile nav toggle, simple fade-in animations,
  FAQ accordion, etc.).
- Do NOT use external JS libraries or frameworks.

Output format (STRICT):
Return your answer in EXACTLY this structure with no extra text, comments, or explanations:

--html--
[HTML CODE]
--html--
--css--
[CSS CODE]
--css--
--js--
[JS CODE]
--js--`

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// SpecificationSystem returns the system prompt for the resume-to-spec stage.
func (pb *PromptBuilder) SpecificationSystem() string {
	return resumeToSpecSystem
}

// SpecificationUser wraps the extracted resume text verbatim as the single
// user turn of the first exchange.
func (pb *PromptBuilder) SpecificationUser(resumeText string) string {
	return fmt.Sprintf("Here is the full resume text:\n\n%s", resumeText)
}

// WebsiteSystem returns the system prompt for the spec-to-website stage.
func (pb *PromptBuilder) WebsiteSystem() string {
	return specToWebsiteSystem
}

// WebsiteUser wraps the current specification text verbatim as the single
// user turn of the second exchange.
func (pb *PromptBuilder) WebsiteUser(specText string) string {
	return fmt.Sprintf("Here is the structured website specification:\n\n%s", specText)
}
