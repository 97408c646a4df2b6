package report

import (
	"fmt"
	"strings"

	"github.com/search-rug/costminer/internal/dataset"
)

// MessageType selects the outreach message variant.
type MessageType string

const (
	MessageSurvey      MessageType = "survey"
	MessageSurveyPlain MessageType = "survey_plain"
	MessageExample     MessageType = "example"
)

// IssueTitle is the title used for every outreach issue.
const IssueTitle = "Cost-Related Misconfigurations Findings"

const signature = "The IaC Cost Patterns research team\n" +
	"Faculty of Science and Engineering\n" +
	"Rijksuniversiteit, Groningen"

const patternsSite = "https://search-rug.github.io/iac-cost-patterns/"

// RenderMessage produces the outreach body for one enriched entry.
func RenderMessage(entry dataset.Entry, messageType MessageType) (string, error) {
	switch messageType {
	case MessageSurvey:
		return renderSurvey(entry), nil
	case MessageSurveyPlain:
		return renderSurveyPlain(entry), nil
	case MessageExample:
		return renderExample(entry), nil
	default:
		return "", fmt.Errorf("unknown message type %q", messageType)
	}
}

func renderSurvey(entry dataset.Entry) string {
	check := entry.ExampleCheck
	resourceFileBlock := ""
	if entry.FailedChecksCount > 1 {
		resourceFileBlock = fmt.Sprintf("⚙️ **Resource:** `%s`  \n🔎 **File:** `%s`", check.Resource, check.FilePath)
	}

	message := fmt.Sprintf(`
Hi there! 👋

We are researching **cost considerations in cloud infrastructure**. As part of this project, we ran a static analysis tool (linter) on your repository to identify potential cost-related misconfigurations.

We found **%d potential issue%s** across **%d file%s**. Here’s an example:

✔️ **Issue:** %s
📃 **Description:** %s
%s

Are you interested in **more linter results**? Reply here. We’ll send **the report along with a short follow-up survey** (~5 min) to evaluate our tool and better understand cost considerations in open-source projects for our research. All data will be treated confidentially.

If you’re curious about our work, we are investigating how developers approach cost in cloud infrastructure, specifically Terraform and AWS CloudFormation. Our goal is to identify **patterns and anti-patterns** to help developers make **more cost-aware infrastructure decisions**. You can check out what we’ve discovered so far here: [%s](%s). If you have any questions or would like to discuss our research, don’t hesitate to reach out!

Thank you for your time and support! 🤗

%s
`,
		entry.FailedChecksCount, plural(entry.FailedChecksCount),
		entry.FilesCount, plural(entry.FilesCount),
		check.CheckName, check.Description, resourceFileBlock,
		patternsSite, patternsSite, signature)
	return strings.TrimSpace(message)
}

func renderSurveyPlain(entry dataset.Entry) string {
	someOf := ""
	if entry.FailedChecksCount != 1 {
		someOf = "some of "
	}

	message := fmt.Sprintf(`
Hi there! 👋

We are researching **cost considerations in cloud infrastructure**. As part of this project, we ran a static analysis tool (linter) on your repository to identify cost-related misconfigurations.

We found **%d potential issue%s** across **%d file%s**, %swhich might **significantly affect the cloud costs** of your project.

Are you interested in the **linter results**? Reply here. We’ll send **the report along with a short follow-up survey** (~5 min) to evaluate our tool and better understand cost considerations in open-source projects for our research. All data will be treated confidentially.

If you’re curious about our work, we are investigating how developers approach cost in cloud infrastructure, specifically Terraform and AWS CloudFormation. Our goal is to identify **patterns and anti-patterns** to help developers make **more cost-aware infrastructure decisions**. You can check out what we’ve discovered so far here: [%s](%s). If you have any questions or would like to discuss our research, don’t hesitate to reach out!

Thank you for your time and support! 🤗

%s
`,
		entry.FailedChecksCount, plural(entry.FailedChecksCount),
		entry.FilesCount, plural(entry.FilesCount),
		someOf, patternsSite, patternsSite, signature)
	return strings.TrimSpace(message)
}

func renderExample(entry dataset.Entry) string {
	check := entry.ExampleCheck

	message := fmt.Sprintf(`
Hi there! 👋

We are researching **cost considerations in cloud infrastructure**. As part of this project, we ran a static analysis tool (linter) on your repository and found the following potential misconfiguration that could lead to unnecessary costs:

✔️ **Issue:** %s
📃 **Description:** %s
⚙️ **Resource:** `+"`%s`"+`
🔎 **File:** `+"`%s`"+`
📍 **Line Range:** `+"`%v`"+`

Please let us know if this is helpful or if it makes sense for your project. If you have any questions or would like to discuss this further, feel free to reach out! Thanks for your time! 🤗

%s
`,
		check.CheckName, check.Description, check.Resource, check.FilePath,
		check.FileLineRange, signature)
	return strings.TrimSpace(message)
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
