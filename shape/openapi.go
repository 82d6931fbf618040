package shape

import (
	"fmt"
	"maps"
	"regexp"
	"slices"
	"strings"

	"github.com/erraggy/oaslint/internal/httputil"
	"github.com/erraggy/oaslint/internal/issues"
	"github.com/erraggy/oaslint/internal/stringutil"
	"github.com/erraggy/oaslint/parser"
)

const versionPattern = `^\d+\.\d+\.\d+(-[0-9A-Za-z.-]+)?$`

// RateLimitHeaders are the headers every 2XX response must declare when
// Options.RequireRateLimitHeaders is set.
var RateLimitHeaders = []string{"X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset"}

var successCode = regexp.MustCompile(`^2(\d\d|XX)$`)

// supportedMinors lists the 3.x minor versions accepted without
// AllowFutureVersions.
var supportedMinors = []parser.Version{{Major: 3, Minor: 0}, {Major: 3, Minor: 1}}

// OpenAPI builds the schema tree for OpenAPI 3.x documents.
func OpenAPI(opts Options) Node {
	str := &String{}
	boolean := &Boolean{}
	strList := &Array{Items: str}
	anyNode := &Any{}
	count := &Integer{Min: Ptr[int64](0), Format: "int32"}
	externalDocs := &Object{
		Required:   []string{"url"},
		Properties: map[string]Node{"url": str, "description": str},
	}

	schema := &Object{AllowRef: true}
	schema.Properties = map[string]Node{
		"title":         str,
		"description":   str,
		"format":        str,
		"pattern":       &String{Rule: regexpRule},
		"required":      strList,
		"enum":          &Array{},
		"nullable":      boolean,
		"readOnly":      boolean,
		"writeOnly":     boolean,
		"deprecated":    boolean,
		"uniqueItems":   boolean,
		"minimum":       &Number{},
		"maximum":       &Number{},
		"multipleOf":    &Number{Min: Ptr(0.0)},
		"minLength":     count,
		"maxLength":     count,
		"minItems":      count,
		"maxItems":      count,
		"minProperties": count,
		"maxProperties": count,
		"items":         schema,
		"not":           schema,
		"properties":    &Object{Additional: schema},
		"allOf":         &Array{Items: schema, MinItems: 1},
		"anyOf":         &Array{Items: schema, MinItems: 1},
		"oneOf":         &Array{Items: schema, MinItems: 1},
		"externalDocs":  externalDocs,
		"default":       anyNode,
		"example":       anyNode,
	}
	schema.Rule = schemaFormatRule

	example := &Object{AllowRef: true, Properties: map[string]Node{"summary": str, "description": str, "value": anyNode}}
	mediaType := &Object{Properties: map[string]Node{
		"schema":   schema,
		"example":  anyNode,
		"examples": &Object{Additional: example},
	}}
	content := &Object{Additional: mediaType, Rule: mediaTypeKeysRule}

	header := &Object{AllowRef: true, Properties: map[string]Node{
		"description": str,
		"required":    boolean,
		"deprecated":  boolean,
		"schema":      schema,
		"content":     content,
	}}

	parameter := &Object{
		AllowRef: true,
		Required: []string{"name", "in"},
		Properties: map[string]Node{
			"name":            &String{MinLength: 1},
			"in":              &String{Enum: []string{"query", "header", "path", "cookie"}},
			"description":     str,
			"required":        boolean,
			"deprecated":      boolean,
			"allowEmptyValue": boolean,
			"style":           str,
			"explode":         boolean,
			"allowReserved":   boolean,
			"schema":          schema,
			"content":         content,
			"example":         anyNode,
			"examples":        &Object{Additional: example},
		},
		Rule: pathParameterRule,
	}

	response := &Object{
		AllowRef: true,
		Required: []string{"description"},
		Properties: map[string]Node{
			"description": str,
			"headers":     &Object{Additional: header},
			"content":     content,
			"links":       &Object{Additional: anyNode},
		},
	}
	responses := &Object{Additional: response, Rule: responseCodesRule}

	requestBody := &Object{
		AllowRef:   true,
		Required:   []string{"content"},
		Properties: map[string]Node{"description": str, "content": content, "required": boolean},
	}

	security := &Array{Items: &Object{Additional: strList}}

	server := &Object{
		Required: []string{"url"},
		Properties: map[string]Node{
			"url":         str,
			"description": str,
			"variables": &Object{Additional: &Object{
				Required: []string{"default"},
				Properties: map[string]Node{
					"default":     str,
					"description": str,
					"enum":        &Array{Items: str, MinItems: 1},
				},
			}},
		},
	}
	servers := &Array{Items: server}

	operation := &Object{
		Required: []string{"responses"},
		Properties: map[string]Node{
			"tags":         strList,
			"summary":      str,
			"description":  str,
			"operationId":  str,
			"externalDocs": externalDocs,
			"parameters":   &Array{Items: parameter},
			"requestBody":  requestBody,
			"responses":    responses,
			"callbacks":    &Object{Additional: anyNode},
			"deprecated":   boolean,
			"security":     security,
			"servers":      servers,
		},
	}
	if opts.RequireRateLimitHeaders {
		operation.Rule = rateLimitRule
	}

	pathItem := &Object{
		AllowRef: true,
		Properties: map[string]Node{
			"summary":     str,
			"description": str,
			"parameters":  &Array{Items: parameter},
			"servers":     servers,
		},
	}
	for _, method := range httputil.Methods {
		pathItem.Properties[method] = operation
	}

	securityScheme := &Object{
		AllowRef: true,
		Required: []string{"type"},
		Properties: map[string]Node{
			"type":        &String{Enum: []string{"apiKey", "http", "oauth2", "openIdConnect", "mutualTLS"}},
			"description": str,
			"name":        str,
			"in":          &String{Enum: []string{"query", "header", "cookie"}},
			"scheme":      str,
		},
	}

	info := &Object{
		Required: []string{"title", "version"},
		Properties: map[string]Node{
			"title":          str,
			"version":        str,
			"summary":        str,
			"description":    str,
			"termsOfService": str,
			"contact": &Object{Properties: map[string]Node{
				"name": str, "url": str, "email": &String{Rule: emailRule},
			}},
			"license": &Object{
				Required:   []string{"name"},
				Properties: map[string]Node{"name": str, "url": str, "identifier": str},
			},
		},
	}

	return &Object{
		Required: []string{"openapi", "info"},
		Properties: map[string]Node{
			"openapi":           &String{Pattern: versionPattern, Rule: versionRule(opts.AllowFutureVersions)},
			"info":              info,
			"jsonSchemaDialect": str,
			"servers":           servers,
			"paths":             &Object{Additional: pathItem, KeyPattern: `^/`},
			"webhooks":          &Object{Additional: pathItem},
			"components": &Object{Properties: map[string]Node{
				"schemas":         &Object{Additional: schema},
				"responses":       &Object{Additional: response},
				"parameters":      &Object{Additional: parameter},
				"examples":        &Object{Additional: example},
				"requestBodies":   &Object{Additional: requestBody},
				"headers":         &Object{Additional: header},
				"securitySchemes": &Object{Additional: securityScheme},
				"links":           &Object{Additional: anyNode},
				"callbacks":       &Object{Additional: anyNode},
				"pathItems":       &Object{Additional: pathItem},
			}},
			"security": security,
			"tags": &Array{Items: &Object{
				Required:   []string{"name"},
				Properties: map[string]Node{"name": str, "description": str, "externalDocs": externalDocs},
			}},
			"externalDocs": externalDocs,
		},
		Rule: pathsRequiredRule,
	}
}

func versionRule(allowFuture bool) Rule {
	return func(ctx *Context, value any, path []string) {
		v, err := parser.ParseVersion(value.(string))
		if err != nil {
			ctx.Report(path, issues.CodeInvalidFormat, "%v", err)
			return
		}
		for _, supported := range supportedMinors {
			if v.SameMinor(supported) {
				return
			}
		}
		if allowFuture && v.Major == 3 && !v.LessThan(supportedMinors[len(supportedMinors)-1]) {
			return
		}
		ctx.Report(path, issues.CodeUnsupportedVersion, "openapi version %s is not supported", value)
	}
}

// pathsRequiredRule requires paths for 3.0 documents and one of paths,
// webhooks, or components for 3.1 and later.
func pathsRequiredRule(ctx *Context, value any, path []string) {
	obj := value.(map[string]any)
	if _, ok := obj["paths"]; ok {
		return
	}
	version, _ := obj["openapi"].(string)
	v, err := parser.ParseVersion(version)
	if err != nil {
		return
	}
	if v.Major == 3 && v.Minor == 0 {
		ctx.Report(appendPath(path, "paths"), issues.CodeRequired, "paths is required")
		return
	}
	_, hasWebhooks := obj["webhooks"]
	_, hasComponents := obj["components"]
	if !hasWebhooks && !hasComponents {
		ctx.Report(appendPath(path, "paths"), issues.CodeRequired, "one of paths, webhooks or components is required")
	}
}

// pathParameterRule requires required: true on path parameters.
func pathParameterRule(ctx *Context, value any, path []string) {
	obj := value.(map[string]any)
	if obj["in"] != "path" {
		return
	}
	if required, _ := obj["required"].(bool); !required {
		ctx.Report(appendPath(path, "required"), issues.CodeInvalidValue, "path parameter %v must set required: true", obj["name"])
	}
}

// responseCodesRule requires every responses key to be a status code, a
// 1XX-5XX range, or default.
func responseCodesRule(ctx *Context, value any, path []string) {
	for _, code := range slices.Sorted(maps.Keys(value.(map[string]any))) {
		if !httputil.ValidateStatusCode(code) {
			ctx.Report(appendPath(path, code), issues.CodeInvalidFormat, "response code %q must be 100-599, 1XX-5XX or default", code)
		}
	}
}

func mediaTypeKeysRule(ctx *Context, value any, path []string) {
	for _, key := range slices.Sorted(maps.Keys(value.(map[string]any))) {
		if !stringutil.IsExtensionKey(key) && !httputil.IsValidMediaType(key) {
			ctx.Report(appendPath(path, key), issues.CodeInvalidFormat, "invalid media type %q", key)
		}
	}
}

func emailRule(ctx *Context, value any, path []string) {
	if !stringutil.IsValidEmail(value.(string)) {
		ctx.Report(path, issues.CodeInvalidFormat, "invalid email address %q", value)
	}
}

func regexpRule(ctx *Context, value any, path []string) {
	if _, err := regexp.Compile(value.(string)); err != nil {
		ctx.Report(path, issues.CodeInvalidFormat, "invalid regular expression: %v", err)
	}
}

// schemaFormatRule checks default, example, minimum, maximum, and enum values
// of integer and number schemas against the schema's format.
func schemaFormatRule(ctx *Context, value any, path []string) {
	obj := value.(map[string]any)
	typ, _ := obj["type"].(string)
	format, _ := obj["format"].(string)
	if (typ != "integer" && typ != "number") || format == "" {
		return
	}
	switch format {
	case "int32", "int64", "float", "double":
	default:
		return
	}

	check := func(v any, at []string) {
		if _, numeric := toFloat(v); !numeric {
			return
		}
		if msg := ctx.CheckFormat(format, v); msg != "" {
			ctx.Report(at, issues.CodeInvalidFormat, "%s for format %s", msg, format)
		}
	}
	for _, key := range []string{"default", "example", "minimum", "maximum"} {
		if v, ok := obj[key]; ok {
			check(v, appendPath(path, key))
		}
	}
	if enum, ok := obj["enum"].([]any); ok {
		for i, v := range enum {
			check(v, appendPath(path, "enum", fmt.Sprint(i)))
		}
	}
}

// rateLimitRule requires every 2XX response of an operation to declare the
// rate limit headers. Header names compare case-insensitively.
func rateLimitRule(ctx *Context, value any, path []string) {
	obj := value.(map[string]any)
	responses, ok := obj["responses"].(map[string]any)
	if !ok {
		return
	}
	for _, code := range slices.Sorted(maps.Keys(responses)) {
		if !successCode.MatchString(code) {
			continue
		}
		resolved, ok := ctx.Resolve(responses[code])
		if !ok {
			continue
		}
		response, ok := resolved.(map[string]any)
		if !ok {
			continue
		}
		headers, _ := response["headers"].(map[string]any)
		declared := make(map[string]struct{}, len(headers))
		for name := range headers {
			declared[strings.ToLower(name)] = struct{}{}
		}
		var missing []string
		for _, want := range RateLimitHeaders {
			if _, ok := declared[strings.ToLower(want)]; !ok {
				missing = append(missing, want)
			}
		}
		if len(missing) > 0 {
			ctx.Report(appendPath(path, "responses", code), issues.CodeMissingRateLimitHeaders,
				"%s response must declare headers %s", code, strings.Join(missing, ", "))
		}
	}
}

func appendPath(path []string, extra ...string) []string {
	out := make([]string, 0, len(path)+len(extra))
	out = append(out, path...)
	return append(out, extra...)
}
