// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	"fillmore-labs.com/clonecheck/internal/render"
)

const (
	serverName    = "clonecheck"
	serverVersion = "0.1.0"
	checkTool     = "check"
)

func newMCPCommand() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Serve the check as a Model Context Protocol tool on stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			h := checkHandler{logger: newLogger(cmd.ErrOrStderr(), verbose)}

			return server.ServeStdio(newMCPServer(h))
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log progress to stderr")

	return cmd
}

// newMCPServer creates a server exposing the check tool.
func newMCPServer(h checkHandler) *server.MCPServer {
	s := server.NewMCPServer(
		serverName,
		serverVersion,
		server.WithToolCapabilities(false),
	)

	tool := mcp.NewTool(checkTool,
		mcp.WithDescription("Find calls of Clone (or another duplication method) on values that are trivially copyable, "+
			"like numbers, strings or structs of those, and suggest the plain copy that replaces each call."),
		mcp.WithString("dir", mcp.Required(), mcp.Description("Absolute path of the Go module or package directory to check")),
		mcp.WithString("pattern", mcp.Description("Package pattern relative to dir, ./... when omitted")),
	)
	s.AddTool(tool, h.handle)

	return s
}

type checkHandler struct {
	logger *slog.Logger
}

// handle runs the check for the requested directory and returns the rendered findings.
func (h checkHandler) handle(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	dir, err := request.RequireString("dir")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	dir, err = filepath.Abs(dir)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	pattern := request.GetString("pattern", "./...")

	settings, err := LoadSettings(filepath.Join(dir, SettingsFile), true)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	logger := h.logger
	if logger == nil {
		logger = slog.Default()
	}

	out, n, err := check(ctx, logger, dir, settings, render.Options{Base: dir}, []string{pattern})
	if err != nil {
		return mcp.NewToolResultError("Failed to check packages: " + err.Error()), nil
	}

	if n == 0 {
		return mcp.NewToolResultText(fmt.Sprintf("No redundant duplication calls in %s.", pattern)), nil
	}

	return mcp.NewToolResultText(out), nil
}
