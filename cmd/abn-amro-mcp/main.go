// Command abn-amro-mcp serves the mortgage calculation tools over the
// MCP stdio transport.
package main

import (
	"flag"
	"os"

	"github.com/effective-security/xlog"
	mcp "github.com/metoro-io/mcp-golang"
	"github.com/metoro-io/mcp-golang/transport/stdio"

	"github.com/Javier162380/abn-amro-mcp/callbacks"
	"github.com/Javier162380/abn-amro-mcp/config"
	"github.com/Javier162380/abn-amro-mcp/internal/hypotheken"
	"github.com/Javier162380/abn-amro-mcp/prompts"
	"github.com/Javier162380/abn-amro-mcp/tools"
	"github.com/Javier162380/abn-amro-mcp/tools/facts"
	"github.com/Javier162380/abn-amro-mcp/tools/interestrate"
	"github.com/Javier162380/abn-amro-mcp/tools/maxmortgage"
)

var logger = xlog.NewPackageLogger("github.com/Javier162380/abn-amro-mcp", "main")

func main() {
	cfgFile := flag.String("cfg", "", "path to the server configuration file")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	// stdout carries the JSON-RPC channel, logs go to stderr
	xlog.SetFormatter(xlog.NewStringFormatter(os.Stderr))
	if *debug {
		xlog.SetGlobalLogLevel(xlog.DEBUG)
	} else {
		xlog.SetGlobalLogLevel(xlog.INFO)
	}

	if err := run(*cfgFile); err != nil {
		logger.KV(xlog.ERROR, "reason", "server failed", "err", err)
		os.Exit(1)
	}
}

func run(cfgFile string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}

	client := hypotheken.NewClient()
	if cfg.Upstream.BaseURL != "" {
		client.WithBaseURL(cfg.Upstream.BaseURL)
	}

	server := mcp.NewServer(stdio.NewStdioServerTransport())

	cb := callbacks.NewPackageLogger(logger)
	mcpTools := []tools.IMCPTool{
		interestrate.New(client).WithCallback(cb),
		maxmortgage.New(client).WithCallback(cb),
		facts.NewDeduction(),
		facts.NewGuarantee(),
		facts.NewTransferTax(),
	}
	for _, tool := range mcpTools {
		if err := tool.RegisterMCP(server); err != nil {
			return err
		}
		logger.KV(xlog.INFO, "registered", tool.Name())
	}

	if err := prompts.RegisterMCP(server); err != nil {
		return err
	}
	logger.KV(xlog.INFO, "registered", prompts.PromptName)

	if err := server.Serve(); err != nil {
		return err
	}

	done := make(chan struct{})
	<-done
	return nil
}
