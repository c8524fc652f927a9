package template

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/getchurch/church/pkg/provider"
	"github.com/getchurch/church/pkg/random"
)

// ErrUnknownExpression is returned for a placeholder the engine cannot
// evaluate.
var ErrUnknownExpression = errors.New("unknown template expression")

// Engine renders templates against a provider.Generic. It is safe for
// concurrent use; concurrent renders of a seeded engine interleave draws
// from the shared source.
type Engine struct {
	gen       *provider.Generic
	rnd       *random.Rand
	locale    string
	sequences *SequenceStore
}

// Option configures an Engine.
type Option func(*Engine)

// WithSequences shares a SequenceStore between engines.
func WithSequences(store *SequenceStore) Option {
	return func(e *Engine) {
		if store != nil {
			e.sequences = store
		}
	}
}

// New creates an engine drawing fields, random values and UUIDs from gen.
func New(gen *provider.Generic, opts ...Option) *Engine {
	e := &Engine{
		gen:       gen,
		rnd:       gen.Rand(),
		locale:    gen.Locale(),
		sequences: NewSequenceStore(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// templateRegex matches {{expression}} patterns with optional whitespace.
var templateRegex = regexp.MustCompile(`\{\{\s*([^}]+?)\s*\}\}`)

// Compiled patterns for function-call syntax (parenthesized arguments).
var (
	// random.int(min, max)
	randomIntPattern = regexp.MustCompile(`^random\.int\((-?\d+),\s*(-?\d+)\)$`)
	// random.float(min, max) or random.float(min, max, precision)
	randomFloatPattern = regexp.MustCompile(`^random\.float\((-?[0-9.]+),\s*(-?[0-9.]+)(?:,\s*(\d+))?\)$`)
	// random.string(length)
	randomStringPattern = regexp.MustCompile(`^random\.string\((\d+)\)$`)
	// sequence("name") or sequence("name", start)
	sequencePattern = regexp.MustCompile(`^sequence\("([^"]+)"(?:,\s*(-?\d+))?\)$`)
	// upper(value) or lower(value) or default(value, fallback)
	funcCallPattern = regexp.MustCompile(`^(\w+)\((.+)\)$`)
)

// Process evaluates every {{expression}} in tmpl. Rendering stops at the
// first expression that fails, and that error is returned.
func (e *Engine) Process(tmpl string) (string, error) {
	var firstErr error
	result := templateRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		if firstErr != nil {
			return match
		}
		inner := templateRegex.FindStringSubmatch(match)
		value, err := e.evaluate(strings.TrimSpace(inner[1]))
		if err != nil {
			firstErr = err
			return match
		}
		return value
	})
	if firstErr != nil {
		return "", firstErr
	}
	return result, nil
}

// evaluate processes a single template expression and returns its value.
func (e *Engine) evaluate(expr string) (string, error) {
	// Handle simple built-in variables (no arguments)
	switch expr {
	case "uuid":
		return rngUUID(e.rnd)
	case "uuid.short":
		id, err := rngUUID(e.rnd)
		if err != nil {
			return "", err
		}
		return id[:8], nil
	case "random.int":
		return funcRandomInt(e.rnd, 0, 100), nil
	case "random.float":
		return funcRandomFloat(e.rnd, 0, 1, -1), nil
	case "random.string":
		return funcRandomString(e.rnd, 10), nil
	}

	// Handle parenthesized function calls: random.int(1, 100), sequence("name"), etc.
	if result, handled, err := e.evaluateParenthesized(expr); handled {
		return result, err
	}

	// Provider catalog fields: address.city, food.fruit, ...
	p, err := e.gen.Field(expr)
	if err != nil {
		if errors.Is(err, provider.ErrUnknownField) {
			return "", fmt.Errorf("%w: %q", ErrUnknownExpression, expr)
		}
		return "", err
	}
	value, err := p()
	if err != nil {
		return "", fmt.Errorf("%s: %w", expr, err)
	}
	return value, nil
}

// evaluateParenthesized handles function-call syntax: func(arg1, arg2)
func (e *Engine) evaluateParenthesized(expr string) (string, bool, error) {
	// random.int(min, max)
	if matches := randomIntPattern.FindStringSubmatch(expr); matches != nil {
		min, err1 := strconv.Atoi(matches[1])
		max, err2 := strconv.Atoi(matches[2])
		if err := errors.Join(err1, err2); err != nil {
			return "", true, fmt.Errorf("%s: %w", expr, err)
		}
		return funcRandomInt(e.rnd, min, max), true, nil
	}

	// random.float(min, max) or random.float(min, max, precision)
	if matches := randomFloatPattern.FindStringSubmatch(expr); matches != nil {
		min, err1 := strconv.ParseFloat(matches[1], 64)
		max, err2 := strconv.ParseFloat(matches[2], 64)
		if err := errors.Join(err1, err2); err != nil {
			return "", true, fmt.Errorf("%s: %w", expr, err)
		}
		precision := -1
		if matches[3] != "" {
			precision, _ = strconv.Atoi(matches[3])
		}
		return funcRandomFloat(e.rnd, min, max, precision), true, nil
	}

	// random.string(length)
	if matches := randomStringPattern.FindStringSubmatch(expr); matches != nil {
		n, _ := strconv.Atoi(matches[1])
		return funcRandomString(e.rnd, n), true, nil
	}

	// sequence("name") or sequence("name", start)
	if matches := sequencePattern.FindStringSubmatch(expr); matches != nil {
		start := int64(1)
		if matches[2] != "" {
			start, _ = strconv.ParseInt(matches[2], 10, 64)
		}
		return strconv.FormatInt(e.sequences.Next(matches[1], start), 10), true, nil
	}

	// upper(value), lower(value), default(value, fallback)
	if matches := funcCallPattern.FindStringSubmatch(expr); matches != nil {
		funcName := matches[1]
		argsStr := matches[2]

		switch funcName {
		case "upper", "lower":
			value, err := e.resolveValue(argsStr)
			if err != nil {
				return "", true, err
			}
			if funcName == "upper" {
				return funcUpper(value, e.locale), true, nil
			}
			return funcLower(value, e.locale), true, nil
		case "default":
			args := splitFuncArgs(argsStr)
			if len(args) != 2 {
				return "", true, fmt.Errorf("%w: default takes 2 arguments: %q", ErrUnknownExpression, expr)
			}
			value, err := e.resolveValue(args[0])
			if err != nil {
				if errors.Is(err, ErrUnknownExpression) {
					return "", true, err
				}
				value = ""
			}
			return funcDefault(value, parseStringArg(args[1])), true, nil
		}
	}

	return "", false, nil
}

// resolveValue resolves a function argument. Quoted strings are literals;
// anything else is evaluated as an expression.
func (e *Engine) resolveValue(ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	if isQuoted(ref) {
		return ref[1 : len(ref)-1], nil
	}
	return e.evaluate(ref)
}

func isQuoted(s string) bool {
	return len(s) >= 2 &&
		((s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\''))
}

// parseStringArg removes surrounding quotes from a string argument if present.
func parseStringArg(s string) string {
	s = strings.TrimSpace(s)
	if isQuoted(s) {
		return s[1 : len(s)-1]
	}
	return s
}

// splitFuncArgs splits function arguments separated by commas,
// respecting quoted strings.
func splitFuncArgs(s string) []string {
	var args []string
	var current strings.Builder
	inQuote := false
	quoteChar := byte(0)

	for i := 0; i < len(s); i++ {
		ch := s[i]
		switch {
		case inQuote:
			current.WriteByte(ch)
			if ch == quoteChar {
				inQuote = false
			}
		case ch == '"' || ch == '\'':
			inQuote = true
			quoteChar = ch
			current.WriteByte(ch)
		case ch == ',':
			args = append(args, strings.TrimSpace(current.String()))
			current.Reset()
		default:
			current.WriteByte(ch)
		}
	}
	if current.Len() > 0 {
		args = append(args, strings.TrimSpace(current.String()))
	}
	return args
}
