package config

import (
	"fmt"
	"net"
	"os"
	"path/filepath"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/mayura-ui/mayura/internal/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	hostnamePattern = regexp.MustCompile(`^[a-zA-Z0-9]([a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(\.[a-zA-Z0-9]([a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*$`)
	dangerousChars  = []string{";", "&", "|", "$", "`", "(", ")", "<", ">", "\"", "'", "\\"}
)

// validatorInstance returns the shared validator. Field names in errors are
// the config or YAML keys, not the Go names.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			for _, key := range []string{"mapstructure", "yaml"} {
				name := strings.SplitN(f.Tag.Get(key), ",", 2)[0]
				if name != "" && name != "-" {
					return name
				}
			}
			return f.Name
		})

		_ = v.RegisterValidation("safe_host", func(fl validator.FieldLevel) bool {
			return validateHostname(fl.Field().String()) == nil
		})

		_ = v.RegisterValidation("safe_path", func(fl validator.FieldLevel) bool {
			return validatePath(fl.Field().String()) == nil
		})

		_ = v.RegisterValidation("origin", func(fl validator.FieldLevel) bool {
			s := fl.Field().String()
			return s != "" && !strings.ContainsAny(s, " \t\r\n")
		})

		validateInst = v
	})

	return validateInst
}

// GetValidator returns the configured validator for use outside the config
// package.
func GetValidator() *validator.Validate {
	return validatorInstance()
}

// validateConfig validates configuration values for security and correctness
func validateConfig(config *Config) error {
	var ve errors.ValidationErrors
	CollectFieldErrors(&ve, validatorInstance().Struct(config))
	return ve.Err(errors.ErrCodeConfigInvalid)
}

// CollectFieldErrors appends the failures in a validator error to ve. The
// leading struct name is dropped from each field path.
func CollectFieldErrors(ve *errors.ValidationErrors, err error) {
	if err == nil {
		return
	}
	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		ve.Add("", nil, err.Error())
		return
	}
	for _, fe := range fieldErrs {
		field := fe.Namespace()
		if i := strings.IndexByte(field, '.'); i >= 0 {
			field = field[i+1:]
		}
		ve.Add(field, fe.Value(), describe(fe))
	}
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "safe_host":
		return "is not a valid host name"
	case "safe_path":
		return "must be a relative path inside the project"
	case "origin":
		return "must be a non-empty pattern without whitespace"
	case "unique":
		return "must not contain duplicates"
	case "required_unless":
		return "is required"
	}
	return fmt.Sprintf("failed %q validation", fe.Tag())
}

// ValidationError is a configuration problem with suggested fixes.
type ValidationError struct {
	Field       string
	Value       interface{}
	Message     string
	Suggestions []string
}

func (ve *ValidationError) Error() string {
	return fmt.Sprintf("validation error in %s: %s", ve.Field, ve.Message)
}

// ValidationResult holds the result of configuration validation
type ValidationResult struct {
	Errors   []ValidationError
	Warnings []ValidationError
}

// HasErrors returns true if there are any validation errors
func (vr *ValidationResult) HasErrors() bool {
	return len(vr.Errors) > 0
}

// HasWarnings returns true if there are any validation warnings
func (vr *ValidationResult) HasWarnings() bool {
	return len(vr.Warnings) > 0
}

// String returns a formatted string of all validation issues
func (vr *ValidationResult) String() string {
	var b strings.Builder

	write := func(title string, issues []ValidationError) {
		if len(issues) == 0 {
			return
		}
		b.WriteString(title + ":\n")
		for _, issue := range issues {
			fmt.Fprintf(&b, "  • %s: %s\n", issue.Field, issue.Message)
			for _, s := range issue.Suggestions {
				fmt.Fprintf(&b, "    → %s\n", s)
			}
		}
	}
	write("Validation errors", vr.Errors)
	write("Validation warnings", vr.Warnings)

	return b.String()
}

// ValidateConfigWithDetails reports hard errors and conditions that work
// but are probably unintended.
func ValidateConfigWithDetails(config *Config) *ValidationResult {
	result := &ValidationResult{}

	var ve errors.ValidationErrors
	CollectFieldErrors(&ve, validatorInstance().Struct(config))
	for _, fe := range ve.Errors {
		result.Errors = append(result.Errors, ValidationError{Field: fe.Field, Value: fe.Value, Message: fe.Message})
	}

	if config.Showcase.Fixtures != "" && !pathExists(config.Showcase.Fixtures) {
		result.Warnings = append(result.Warnings, ValidationError{
			Field:   "showcase.fixtures",
			Value:   config.Showcase.Fixtures,
			Message: "file does not exist",
			Suggestions: []string{
				"Create the file or remove the setting to use the built-in fixtures",
			},
		})
	}

	if config.Showcase.Watch && config.Showcase.Fixtures == "" {
		result.Warnings = append(result.Warnings, ValidationError{
			Field:   "showcase.watch",
			Value:   true,
			Message: "nothing to watch without a fixtures file",
		})
	}

	if ip := net.ParseIP(config.Server.Host); ip != nil && ip.IsUnspecified() && len(config.Server.AllowedOrigins) == 0 {
		result.Warnings = append(result.Warnings, ValidationError{
			Field:   "server.allowed_origins",
			Value:   config.Server.AllowedOrigins,
			Message: "server listens on all interfaces but only same-origin websockets are accepted",
			Suggestions: []string{
				"Add the hosts browsers will connect from, e.g. \"*.example.com\"",
			},
		})
	}

	return result
}

func validateHostname(host string) error {
	for _, char := range dangerousChars {
		if strings.Contains(host, char) {
			return fmt.Errorf("contains dangerous character: %s", char)
		}
	}

	if net.ParseIP(host) != nil {
		return nil
	}

	if !hostnamePattern.MatchString(host) {
		return fmt.Errorf("invalid hostname format")
	}

	return nil
}

// validatePath validates a file path for security
func validatePath(path string) error {
	if path == "" {
		return fmt.Errorf("empty path")
	}

	cleanPath := filepath.Clean(path)

	if filepath.IsAbs(cleanPath) {
		return fmt.Errorf("path should be relative: %s", path)
	}

	if cleanPath == ".." || strings.HasPrefix(cleanPath, ".."+string(filepath.Separator)) {
		return errors.ErrPathTraversal(path)
	}

	for _, char := range dangerousChars {
		if strings.Contains(cleanPath, char) {
			return fmt.Errorf("path contains dangerous character: %s", char)
		}
	}

	return nil
}

func pathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
