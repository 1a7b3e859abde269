// internal/app/system/inputval/inputval.go
package inputval

import (
	"fmt"
	"net/mail"
	"net/url"
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Errors maps a request field (its JSON name, dotted for nested fields) to a
// human-readable message. It is the error value handlers return for 422s.
type Errors map[string]string

func (e Errors) Error() string {
	keys := make([]string, 0, len(e))
	for k := range e {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Add records msg for field unless the field already has a message.
func (e Errors) Add(field, msg string) {
	if _, ok := e[field]; !ok {
		e[field] = msg
	}
}

// Err returns e as an error, or nil when empty.
func (e Errors) Err() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

// FieldError is a single failed rule.
type FieldError struct {
	Field   string // JSON name
	Label   string
	Rule    string
	Message string
}

// Result is the outcome of Validate. Errors are in struct field order.
type Result struct {
	Errors []FieldError
}

func (r *Result) HasErrors() bool { return len(r.Errors) > 0 }

// Err converts the result to an Errors value, or nil when valid.
func (r *Result) Err() error {
	if !r.HasErrors() {
		return nil
	}
	out := Errors{}
	for _, e := range r.Errors {
		out.Add(e.Field, e.Message)
	}
	return out
}

var (
	once sync.Once
	v    *validator.Validate
)

func engine() *validator.Validate {
	once.Do(func() {
		v = validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				return f.Name
			}
			return name
		})
		_ = v.RegisterValidation("email", func(fl validator.FieldLevel) bool {
			return IsValidEmail(fl.Field().String())
		})
		_ = v.RegisterValidation("httpurl", func(fl validator.FieldLevel) bool {
			return IsValidHTTPURL(fl.Field().String())
		})
		_ = v.RegisterValidation("objectid", func(fl validator.FieldLevel) bool {
			return IsValidObjectID(fl.Field().String())
		})
	})
	return v
}

// Validate checks s (a struct or pointer to struct) against its `validate`
// tags. The `label` tag supplies the human name used in messages.
func Validate(s any) *Result {
	res := &Result{}
	err := engine().Struct(s)
	if err == nil {
		return res
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		res.Errors = append(res.Errors, FieldError{Field: "body", Label: "Body", Rule: "invalid", Message: err.Error()})
		return res
	}
	root := reflect.TypeOf(s)
	for _, fe := range verrs {
		key, label := fieldMeta(root, fe)
		res.Errors = append(res.Errors, FieldError{
			Field:   key,
			Label:   label,
			Rule:    fe.Tag(),
			Message: message(label, fe),
		})
	}
	return res
}

// fieldMeta resolves the dotted JSON path and the label for a failed field.
func fieldMeta(root reflect.Type, fe validator.FieldError) (string, string) {
	// Namespace: "Input.contact.email"; StructNamespace: "Input.Contact.Email".
	jsonParts := strings.Split(fe.Namespace(), ".")[1:]
	goParts := strings.Split(fe.StructNamespace(), ".")[1:]

	t := root
	label := fe.StructField()
	for _, p := range goParts {
		for t.Kind() == reflect.Pointer || t.Kind() == reflect.Slice {
			t = t.Elem()
		}
		if t.Kind() != reflect.Struct {
			break
		}
		name := p
		if i := strings.IndexByte(name, '['); i >= 0 {
			name = name[:i]
		}
		sf, ok := t.FieldByName(name)
		if !ok {
			break
		}
		if l := sf.Tag.Get("label"); l != "" {
			label = l
		}
		t = sf.Type
	}
	return strings.Join(jsonParts, "."), label
}

func message(label string, fe validator.FieldError) string {
	isString := fe.Kind() == reflect.String
	switch fe.Tag() {
	case "required", "required_without", "required_with":
		return label + " is required."
	case "max", "lte":
		if isString {
			return fmt.Sprintf("%s must be at most %s characters.", label, fe.Param())
		}
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("%s must have at most %s items.", label, fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s.", label, fe.Param())
	case "min", "gte":
		if isString {
			return fmt.Sprintf("%s must be at least %s characters.", label, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s.", label, fe.Param())
	case "email":
		return "A valid email address is required."
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s.", label, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "url", "httpurl":
		return label + " must be a valid http(s) URL."
	case "objectid":
		return label + " is not a valid id."
	case "eqfield":
		return label + " does not match."
	case "datetime":
		return fmt.Sprintf("%s must match the format %s.", label, fe.Param())
	}
	return label + " is invalid."
}

// IsValidEmail reports whether s is a bare addr-spec (no display name).
// Single-label domains such as "localhost" are accepted.
func IsValidEmail(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" || strings.ContainsAny(s, " \t<>") {
		return false
	}
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s || addr.Name != "" {
		return false
	}
	at := strings.LastIndexByte(s, '@')
	local, domain := s[:at], s[at+1:]
	for _, part := range []string{local, domain} {
		if part == "" || strings.HasPrefix(part, ".") || strings.HasSuffix(part, ".") || strings.Contains(part, "..") {
			return false
		}
	}
	return true
}

// IsValidHTTPURL reports whether s is an absolute http or https URL.
func IsValidHTTPURL(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// IsValidObjectID reports whether s is a 24-character hex ObjectID.
func IsValidObjectID(s string) bool {
	_, err := primitive.ObjectIDFromHex(strings.TrimSpace(s))
	return err == nil
}
