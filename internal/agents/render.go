package agents

import (
	"strings"

	"github.com/jonathan/hireflow/internal/db"
)

// RenderJob renders a job as attribute/value text for an agent prompt.
// Identifying fields (id, owner) are always stripped so the agent
// reasons over content only; the title is withheld when includeTitle is
// false to keep it from biasing the scoring agent.
func RenderJob(job *db.Job, includeTitle bool) string {
	var sb strings.Builder
	if includeTitle {
		writeAttr(&sb, "title", &job.Title)
	}
	writeAttr(&sb, "summary", job.Summary)
	writeAttr(&sb, "skills", job.Skills)
	writeAttr(&sb, "experience_required", job.ExperienceRequired)
	writeAttr(&sb, "education_required", job.EducationRequired)
	writeAttr(&sb, "responsibilities", job.Responsibilities)
	return sb.String()
}

// RenderCandidate renders a candidate as attribute/value text. The name
// is withheld when includeName is false; the email is always included so
// the drafting agent can address the invitation.
func RenderCandidate(candidate *db.Candidate, includeName bool) string {
	var sb strings.Builder
	if includeName {
		writeAttr(&sb, "name", &candidate.Name)
	}
	writeAttr(&sb, "email", &candidate.Email)
	writeAttr(&sb, "phone", candidate.Phone)
	writeAttr(&sb, "skills", candidate.Skills)
	writeAttr(&sb, "education", candidate.Education)
	writeAttr(&sb, "experience", candidate.Experience)
	writeAttr(&sb, "certifications", candidate.Certifications)
	return sb.String()
}

func writeAttr(sb *strings.Builder, name string, value *string) {
	if value == nil {
		return
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return
	}
	sb.WriteString(name)
	sb.WriteString(": ")
	sb.WriteString(trimmed)
	sb.WriteString("\n")
}
