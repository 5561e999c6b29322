package templating

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/tealiumiq/webformtags"
	"github.com/tealiumiq/webformtags/resolver"
)

const (
	tokenTypeSubmission  = "webform_submission"
	tokenTypeWebform     = "webform"
	tokenTypeCurrentDate = "current-date"
	submissionValuesName = "values"
)

var tokenRegexp = regexp.MustCompile(`\[([a-z][a-z0-9_\-]*)(?::([^\[\]\s]+))?\]`)

// TokenResolver replaces bracket tokens like [webform_submission:values:name:first] in submission values.
// Tokens it does not know are left as is.
type TokenResolver struct {
	clock webformtags.Clock
}

// NewTokenResolver creates token resolver using clock for current date tokens
func NewTokenResolver(clock webformtags.Clock) *TokenResolver {
	return &TokenResolver{clock: clock}
}

// Replace returns a copy of data with tokens in every string value replaced
func (tokenResolver *TokenResolver) Replace(data map[string]interface{}, submission *webformtags.Submission, webform *webformtags.Webform) map[string]interface{} {
	context := &tokenContext{
		submission: submission,
		webform:    webform,
		record:     submission.ToRecord(),
		now:        tokenResolver.clock.NowUTC(),
	}
	return context.replaceMap(data)
}

type tokenContext struct {
	submission *webformtags.Submission
	webform    *webformtags.Webform
	record     map[string]interface{}
	now        time.Time
}

func (context *tokenContext) replaceMap(data map[string]interface{}) map[string]interface{} {
	if data == nil {
		return nil
	}
	result := make(map[string]interface{}, len(data))
	for key, value := range data {
		result[key] = context.replaceValue(value)
	}
	return result
}

func (context *tokenContext) replaceValue(value interface{}) interface{} {
	switch typed := value.(type) {
	case string:
		return context.replaceString(typed)
	case map[string]interface{}:
		return context.replaceMap(typed)
	case []interface{}:
		result := make([]interface{}, 0, len(typed))
		for _, item := range typed {
			result = append(result, context.replaceValue(item))
		}
		return result
	}
	return value
}

func (context *tokenContext) replaceString(text string) string {
	if !strings.Contains(text, "[") {
		return text
	}
	return tokenRegexp.ReplaceAllStringFunc(text, func(token string) string {
		groups := tokenRegexp.FindStringSubmatch(token)
		replacement, ok := context.resolve(groups[1], groups[2])
		if !ok {
			return token
		}
		return replacement
	})
}

func (context *tokenContext) resolve(tokenType, name string) (string, bool) {
	switch tokenType {
	case tokenTypeSubmission:
		return context.resolveSubmission(name)
	case tokenTypeWebform:
		return context.resolveWebform(name)
	case tokenTypeCurrentDate:
		return context.resolveCurrentDate(name)
	}
	return "", false
}

func (context *tokenContext) resolveSubmission(name string) (string, bool) {
	if name == "" {
		return "", false
	}
	parts := strings.Split(name, ":")
	if parts[0] != submissionValuesName {
		if len(parts) != 1 {
			return "", false
		}
		value, ok := context.record[parts[0]]
		if !ok || parts[0] == webformtags.SubmissionDataKey {
			return "", false
		}
		return resolver.Stringify(value), true
	}

	switch len(parts) {
	case 2:
		return resolver.Stringify(context.submission.Data[parts[1]]), true
	case 3:
		nested, _ := context.submission.Data[parts[1]].(map[string]interface{})
		return resolver.Stringify(nested[parts[2]]), true
	}
	return "", false
}

func (context *tokenContext) resolveWebform(name string) (string, bool) {
	if context.webform == nil {
		return "", false
	}
	switch name {
	case "id":
		return context.webform.ID, true
	case "title":
		return context.webform.Title, true
	}
	return "", false
}

func (context *tokenContext) resolveCurrentDate(name string) (string, bool) {
	switch name {
	case "":
		return context.now.Format(time.RFC3339), true
	case "unix":
		return strconv.FormatInt(context.now.Unix(), 10), true
	}
	return "", false
}
