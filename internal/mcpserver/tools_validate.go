package mcpserver

import (
	"context"

	"github.com/erraggy/oaslint/validator"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type validateInput struct {
	File                    string `json:"file,omitempty"                       jsonschema:"Path to an OpenAPI file on disk"`
	Content                 string `json:"content,omitempty"                    jsonschema:"Inline OpenAPI document content (JSON or YAML)"`
	Strict                  *bool  `json:"strict,omitempty"                     jsonschema:"Enable ambiguous path template and duplicate parameter checks"`
	AllowFutureVersions     *bool  `json:"allow_future_versions,omitempty"      jsonschema:"Accept any 3.x openapi version newer than 3.1"`
	RequireRateLimitHeaders *bool  `json:"require_rate_limit_headers,omitempty" jsonschema:"Require X-RateLimit-Limit, X-RateLimit-Remaining and X-RateLimit-Reset headers on 2XX responses"`
	Offset                  int    `json:"offset,omitempty"                     jsonschema:"Skip the first N issues (for pagination)"`
	Limit                   int    `json:"limit,omitempty"                      jsonschema:"Maximum number of issues to return (default 100)"`
}

type validateIssue struct {
	Path      string   `json:"path"`
	Segments  []string `json:"segments"`
	Code      string   `json:"code"`
	Message   string   `json:"message"`
	Line      int      `json:"line,omitempty"`
	Column    int      `json:"column,omitempty"`
	EndLine   int      `json:"end_line,omitempty"`
	EndColumn int      `json:"end_column,omitempty"`
}

type validateOutput struct {
	Valid        bool            `json:"valid"`
	ResolvedRefs []string        `json:"resolved_refs"`
	IssueCount   int             `json:"issue_count"`
	Returned     int             `json:"returned"`
	Issues       []validateIssue `json:"issues,omitempty"`
}

// boolOr returns *p, or fallback when p is nil.
func boolOr(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}

func handleValidate(_ context.Context, _ *mcp.CallToolRequest, input validateInput) (*mcp.CallToolResult, validateOutput, error) {
	text, err := specInput{File: input.File, Content: input.Content}.load()
	if err != nil {
		return errResult(err), validateOutput{}, nil
	}

	// Apply config defaults when input fields are omitted (nil).
	opts := []validator.Option{
		validator.WithStrict(boolOr(input.Strict, cfg.ValidateStrict)),
		validator.WithAllowFutureVersions(boolOr(input.AllowFutureVersions, cfg.AllowFutureVersions)),
		validator.WithRequireRateLimitHeaders(boolOr(input.RequireRateLimitHeaders, cfg.RequireRateLimitHeaders)),
		validator.WithLogger(logger),
	}

	validateMu.Lock()
	result, err := validator.ValidateDocumentText(text, opts...)
	validateMu.Unlock()
	if err != nil {
		return errResult(err), validateOutput{}, nil
	}

	output := validateOutput{
		Valid:        result.Valid,
		ResolvedRefs: result.ResolvedRefs,
		IssueCount:   len(result.Issues),
	}
	output.Issues = makeSlice[validateIssue](len(result.Issues))
	for _, issue := range result.Issues {
		out := validateIssue{
			Path:     issue.PathString(),
			Segments: issue.Path,
			Code:     issue.Code,
			Message:  issue.Message,
		}
		if issue.Range != nil {
			out.Line = issue.Range.Start.Line
			out.Column = issue.Range.Start.Column
			out.EndLine = issue.Range.End.Line
			out.EndColumn = issue.Range.End.Column
		}
		output.Issues = append(output.Issues, out)
	}

	output.Issues = paginate(output.Issues, input.Offset, input.Limit)
	output.Returned = len(output.Issues)

	return nil, output, nil
}
