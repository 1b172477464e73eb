// internal/app/system/catalog/validate.go
package catalog

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/dalemusser/technavigator/internal/domain/models"
	"github.com/go-playground/validator/v10"
)

var slugRE = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New()
		// Report dataset field names rather than Go field names.
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		_ = v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
			return slugRE.MatchString(fl.Field().String())
		})
		validate = v
	})
	return validate
}

// IsSlug reports whether s is a valid domain or stage id.
func IsSlug(s string) bool {
	return slugRE.MatchString(s)
}

// ValidateDomains checks every dataset invariant and returns all problems
// found, so a broken file can be fixed in one pass.
func ValidateDomains(records []models.DomainRecord) []string {
	if len(records) == 0 {
		return []string{"dataset is empty"}
	}

	var problems []string
	seen := make(map[string]int, len(records))
	for i, d := range records {
		where := fmt.Sprintf("domains[%d]", i)
		if d.ID != "" {
			where += " (" + d.ID + ")"
		}

		problems = append(problems, structProblems(where, d)...)

		if d.ApproxHours != nil && (math.IsNaN(*d.ApproxHours) || math.IsInf(*d.ApproxHours, 0)) {
			problems = append(problems, where+": approxHours must be finite")
		}

		if d.ID == "" {
			continue
		}
		if first, dup := seen[d.ID]; dup {
			problems = append(problems, fmt.Sprintf("%s: duplicate id (first at domains[%d])", where, first))
			continue
		}
		seen[d.ID] = i
	}
	return problems
}

// ValidateStages checks stage definitions. Domain references are not
// checked here; unresolved ids are tolerated and reported separately.
func ValidateStages(stages []models.RoadmapStage) []string {
	var problems []string
	seen := make(map[string]struct{}, len(stages))
	for i, st := range stages {
		where := fmt.Sprintf("stages[%d]", i)
		if st.ID != "" {
			where += " (" + st.ID + ")"
		}
		problems = append(problems, structProblems(where, st)...)
		if st.ID == "" {
			continue
		}
		if _, dup := seen[st.ID]; dup {
			problems = append(problems, where+": duplicate stage id")
			continue
		}
		seen[st.ID] = struct{}{}
	}
	return problems
}

func structProblems(where string, v any) []string {
	err := getValidator().Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{where + ": " + err.Error()}
	}
	out := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, fmt.Sprintf("%s: %s", where, describe(fe)))
	}
	return out
}

func describe(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "slug":
		return fmt.Sprintf("%s %q is not a lowercase slug", field, fe.Value())
	case "gte":
		return fmt.Sprintf("%s must be >= %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed %q", field, fe.Tag())
	}
}
