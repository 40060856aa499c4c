package evaluator

import (
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"photo-critic/apimodels"
)

func TestEvaluationSchemaMatchesDeclaredResultShape(t *testing.T) {
	checkObjectSchema(t, EvaluationSchema, reflect.TypeOf(apimodels.EvaluationResult{}))

	props := EvaluationSchema["properties"].(map[string]interface{})
	rules, ok := props["rules"].(map[string]interface{})
	assert.True(t, ok, "rules must be a nested object schema")
	checkObjectSchema(t, rules, reflect.TypeOf(apimodels.RuleSet{}))

	ruleProps := rules["properties"].(map[string]interface{})
	for _, name := range []string{"rule_of_thirds", "golden_ratio", "leading_lines"} {
		sub, ok := ruleProps[name].(map[string]interface{})
		assert.Truef(t, ok, "expected object schema for %q", name)
		checkObjectSchema(t, sub, reflect.TypeOf(apimodels.RuleJudgment{}))
	}

	tone, ok := ruleProps["light_and_shadow"].(map[string]interface{})
	assert.True(t, ok, "expected object schema for light_and_shadow")
	checkObjectSchema(t, tone, reflect.TypeOf(apimodels.ToneJudgment{}))

	toneProps := tone["properties"].(map[string]interface{})
	_, hasApplied := toneProps["applied"]
	assert.False(t, hasApplied, "light_and_shadow carries no applied flag")
}

// checkObjectSchema verifies that schema is a strict object schema whose
// properties and required list mirror the json tags of typ.
func checkObjectSchema(t *testing.T, schema map[string]interface{}, typ reflect.Type) {
	t.Helper()

	assert.Equal(t, "object", schema["type"], "schema for %s should be type object", typ.Name())
	assert.Equal(t, false, schema["additionalProperties"], "schema for %s must forbid extra properties", typ.Name())

	props, ok := schema["properties"].(map[string]interface{})
	assert.True(t, ok, "properties should be a map")

	required, ok := schema["required"].([]string)
	assert.True(t, ok, "required should be a string list")

	requiredSet := make(map[string]bool, len(required))
	for _, name := range required {
		requiredSet[name] = true
	}

	fieldCount := 0
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		if f.PkgPath != "" {
			// unexported field, skip
			continue
		}
		jsonName := jsonFieldName(f)
		if jsonName == "" {
			continue
		}
		fieldCount++
		_, present := props[jsonName]
		assert.Truef(t, present, "expected field %q in properties of %s", jsonName, typ.Name())
		assert.Truef(t, requiredSet[jsonName], "expected field %q to be required in %s", jsonName, typ.Name())
	}

	assert.Len(t, props, fieldCount, "schema for %s should declare exactly the struct's fields", typ.Name())
	assert.Len(t, required, fieldCount, "every field of %s should be required", typ.Name())
}

func jsonFieldName(f reflect.StructField) string {
	tag := f.Tag.Get("json")
	if tag == "" {
		return f.Name
	}
	name := strings.Split(tag, ",")[0]
	if name == "-" {
		return ""
	}
	return name
}

func TestEvaluationPromptNamesEveryScoredField(t *testing.T) {
	for _, name := range []string{
		"overall_score",
		"creativity_score",
		"composition_score",
		"technical_score",
		"rule_of_thirds",
		"golden_ratio",
		"leading_lines",
		"light_and_shadow",
		"text_explanation",
	} {
		assert.Containsf(t, EvaluationPrompt, name, "rubric should name %q", name)
	}
}
