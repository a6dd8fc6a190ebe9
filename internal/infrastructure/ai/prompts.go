package ai

import (
	"fmt"
	"strings"

	"github.com/Tomas-vilte/MateReview/internal/domain/models"
)

// SystemPrompt le indica al modelo el formato de la review estructurada.
const SystemPrompt = `You are an expert code reviewer.  You receive:

1. A **git diff** of the latest commit.
2. **Linting results** from ruff.
3. **Formatting results** from ruff format --check.

Your job is to produce a concise, actionable review covering:

- **Summary** - one-paragraph overview of the change.
- **Issues** - a numbered list of problems (bugs, security, logic errors)
  with severity (error / warning / info) and the relevant file + line.
- **Lint & Format** - highlight the most important lint/format violations
  and suggest fixes.
- **Suggestions** - optional improvements (readability, performance, naming).
- **Verdict** - one of: LGTM, Needs Minor Fixes, or Needs Major Rework.

Keep the review concise. Do NOT repeat the diff verbatim.
`

// BuildReviewMessage arma el mensaje de usuario repartiendo el presupuesto de
// caracteres: 70% para el diff, 15% para lint y 15% para el chequeo de formato.
func BuildReviewMessage(commit models.CommitInfo, report models.LintReport, budget int) string {
	diffBudget := budget * 70 / 100
	lintBudget := budget * 15 / 100
	formatBudget := budget * 15 / 100

	var changedFiles strings.Builder
	for _, file := range commit.ChangedFiles {
		changedFiles.WriteString("- " + file + "\n")
	}

	return fmt.Sprintf(`## Commit `+"`%s`"+` — %s

### Changed files
%s
### Git diff
`+"```diff\n%s\n```"+`

### Ruff lint output
`+"```\n%s\n```"+`

### Ruff format check
`+"```\n%s\n```"+`

Please review this commit.
`,
		commit.ShortSHA(),
		commit.Message,
		changedFiles.String(),
		Truncate(commit.Diff, diffBudget),
		Truncate(report.Check, lintBudget),
		Truncate(report.FormatCheck, formatBudget),
	)
}
