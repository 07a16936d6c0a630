package http

import (
	"context"
	"strings"
	"sync"

	"github.com/itchyny/gojq"

	"github.com/halbind/halbind/resource"
)

var filterJQCodeCache sync.Map

// Filter applies a jq expression to an already-fetched payload. Compiled
// expressions are cached process-wide since CLI sessions tend to repeat them.
func (g *HTTPResourceServerGateway) Filter(ctx context.Context, value resource.Value, expression string) (resource.Value, error) {
	trimmedExpression := strings.TrimSpace(expression)
	if trimmedExpression == "" {
		return value, nil
	}

	code, err := cachedFilterJQCode(trimmedExpression)
	if err != nil {
		return nil, validationError("invalid jq expression", err)
	}

	runCtx := ctx
	if runCtx == nil {
		runCtx = context.Background()
	}
	iterator := code.RunWithContext(runCtx, jqInput(value))
	results := make([]any, 0, 1)
	for {
		item, ok := iterator.Next()
		if !ok {
			break
		}
		if itemErr, isErr := item.(error); isErr {
			return nil, validationError("failed to evaluate jq expression", itemErr)
		}
		results = append(results, item)
	}

	if len(results) == 0 {
		return nil, nil
	}
	if len(results) == 1 {
		return results[0], nil
	}
	return results, nil
}

// jqInput rewrites normalized payload values into the types gojq accepts:
// int64 becomes int, nested containers are converted in place.
func jqInput(value any) any {
	switch typed := value.(type) {
	case int64:
		return int(typed)
	case resource.FlatResource:
		return jqInput(map[string]any(typed))
	case map[string]any:
		converted := make(map[string]any, len(typed))
		for key, item := range typed {
			converted[key] = jqInput(item)
		}
		return converted
	case []any:
		converted := make([]any, len(typed))
		for idx, item := range typed {
			converted[idx] = jqInput(item)
		}
		return converted
	}
	return value
}

func cachedFilterJQCode(expression string) (*gojq.Code, error) {
	if cached, ok := filterJQCodeCache.Load(expression); ok {
		if typed, ok := cached.(*gojq.Code); ok && typed != nil {
			return typed, nil
		}
	}

	query, err := gojq.Parse(expression)
	if err != nil {
		return nil, err
	}
	code, err := gojq.Compile(query)
	if err != nil {
		return nil, err
	}

	actual, _ := filterJQCodeCache.LoadOrStore(expression, code)
	typed, _ := actual.(*gojq.Code)
	if typed == nil {
		return code, nil
	}
	return typed, nil
}
