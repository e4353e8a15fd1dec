// Package prompts provides the mortgage-guidance prompt template.
package prompts

import (
	"strings"
	"text/template"

	"github.com/cockroachdb/errors"
	mcp "github.com/metoro-io/mcp-golang"

	"github.com/Javier162380/abn-amro-mcp/tools"
)

const (
	// PromptName identifies the guidance prompt template.
	PromptName = "mortgage-guidance"

	promptDescription = "Frames a free-text question as a request to a Dutch mortgage advisor."
)

// GuidanceArgs is the prompt template input.
type GuidanceArgs struct {
	Question string `json:"question" jsonschema:"required,title=Question,description=The mortgage question to get guidance on"`
}

var guidanceTemplate = template.Must(template.New(PromptName).Parse(
	`You are a mortgage advisor for the Dutch housing market, working with ABN AMRO mortgage products.
Use the available mortgage calculation tools to ground every number in your answer; never invent rates, limits or tax amounts.
Explain Dutch mortgage concepts (NHG, loan-to-value, transfer tax, interest deduction) in plain language when they come up.

Question: {{.Question}}
`))

// Render fills the guidance template with the given question.
func Render(question string) (string, error) {
	var b strings.Builder
	if err := guidanceTemplate.Execute(&b, GuidanceArgs{Question: question}); err != nil {
		return "", errors.WithMessage(err, "failed to render prompt")
	}
	return b.String(), nil
}

// RegisterMCP registers the guidance prompt with an MCP server.
func RegisterMCP(registrator tools.McpPromptRegistrator) error {
	return registrator.RegisterPrompt(PromptName, promptDescription, func(args GuidanceArgs) (*mcp.PromptResponse, error) {
		text, err := Render(args.Question)
		if err != nil {
			return nil, err
		}
		return mcp.NewPromptResponse(promptDescription, mcp.NewPromptMessage(mcp.NewTextContent(text), mcp.RoleUser)), nil
	})
}
