package prompts_test

import (
	"testing"

	mcp "github.com/metoro-io/mcp-golang"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Javier162380/abn-amro-mcp/prompts"
)

func Test_Render(t *testing.T) {
	out, err := prompts.Render("Can I afford a 400k house on a 60k income?")
	require.NoError(t, err)

	assert.Contains(t, out, "mortgage advisor")
	assert.Contains(t, out, "Question: Can I afford a 400k house on a 60k income?")
}

type fakeRegistrator struct {
	name        string
	description string
	handler     any
}

func (f *fakeRegistrator) RegisterPrompt(name string, description string, handler any) error {
	f.name = name
	f.description = description
	f.handler = handler
	return nil
}

func Test_RegisterMCP(t *testing.T) {
	reg := &fakeRegistrator{}
	err := prompts.RegisterMCP(reg)
	require.NoError(t, err)

	assert.Equal(t, prompts.PromptName, reg.name)
	assert.NotEmpty(t, reg.description)

	handler, ok := reg.handler.(func(prompts.GuidanceArgs) (*mcp.PromptResponse, error))
	require.True(t, ok, "handler has the MCP prompt signature")

	resp, err := handler(prompts.GuidanceArgs{Question: "What is NHG?"})
	require.NoError(t, err)
	require.Len(t, resp.Messages, 1)
	assert.Equal(t, mcp.RoleUser, resp.Messages[0].Role)
	assert.Contains(t, resp.Messages[0].Content.TextContent.Text, "Question: What is NHG?")
}
