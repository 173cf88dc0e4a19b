package config

import (
	"testing"
)

func TestSubstituteEnvVars_Simple(t *testing.T) {
	t.Setenv("TEST_VAR_SIMPLE", "hello")

	content, unresolved, required := substituteEnvVars("value = ${TEST_VAR_SIMPLE}")
	if content != "value = hello" {
		t.Errorf("expected 'value = hello', got %q", content)
	}
	if len(unresolved) != 0 || len(required) != 0 {
		t.Errorf("expected nothing missing, got %v %v", unresolved, required)
	}
}

func TestSubstituteEnvVars_Unset(t *testing.T) {
	// t.Setenv cannot unset, so use a name that is never set
	content, unresolved, required := substituteEnvVars("value = ${ARRLIST_TEST_NONEXISTENT_VAR_12345}")
	if content != "value = ${ARRLIST_TEST_NONEXISTENT_VAR_12345}" {
		t.Errorf("expected unchanged, got %q", content)
	}
	if len(unresolved) != 1 || unresolved[0] != "ARRLIST_TEST_NONEXISTENT_VAR_12345" {
		t.Errorf("expected [ARRLIST_TEST_NONEXISTENT_VAR_12345], got %v", unresolved)
	}
	if len(required) != 0 {
		t.Errorf("expected no required failures, got %v", required)
	}
}

func TestSubstituteEnvVars_SetButEmpty(t *testing.T) {
	t.Setenv("EMPTY_VAR_PLAIN", "")

	content, unresolved, _ := substituteEnvVars("value = '${EMPTY_VAR_PLAIN}'")
	if content != "value = ''" {
		t.Errorf("expected empty substitution, got %q", content)
	}
	if len(unresolved) != 0 {
		t.Errorf("set-but-empty is not unresolved, got %v", unresolved)
	}
}

func TestSubstituteEnvVars_Default(t *testing.T) {
	t.Setenv("UNSET_VAR_DEFAULT", "")

	content, unresolved, _ := substituteEnvVars("value = ${UNSET_VAR_DEFAULT:-default_value}")
	if content != "value = default_value" {
		t.Errorf("expected 'value = default_value', got %q", content)
	}
	if len(unresolved) != 0 {
		t.Errorf("expected no missing vars with default, got %v", unresolved)
	}
}

func TestSubstituteEnvVars_DefaultOverriddenByEnv(t *testing.T) {
	t.Setenv("SET_VAR_OVERRIDE", "from_env")

	content, _, _ := substituteEnvVars("value = ${SET_VAR_OVERRIDE:-default}")
	if content != "value = from_env" {
		t.Errorf("expected 'value = from_env', got %q", content)
	}
}

func TestSubstituteEnvVars_Required(t *testing.T) {
	t.Setenv("REQUIRED_VAR_TEST", "")

	content, unresolved, required := substituteEnvVars("value = ${REQUIRED_VAR_TEST:?API key is required}")
	if content != "value = ${REQUIRED_VAR_TEST:?API key is required}" {
		t.Errorf("expected unchanged, got %q", content)
	}
	if len(required) != 1 || required[0] != "REQUIRED_VAR_TEST: API key is required" {
		t.Errorf("expected error message, got %v", required)
	}
	if len(unresolved) != 0 {
		t.Errorf("required vars are not reported as unresolved, got %v", unresolved)
	}
}

func TestSubstituteEnvVars_Multiple(t *testing.T) {
	t.Setenv("VAR1_MULTI", "one")
	t.Setenv("VAR3_MULTI", "")

	content, unresolved, _ := substituteEnvVars("${VAR1_MULTI} ${ARRLIST_VAR2_NONEXISTENT} ${VAR3_MULTI:-three}")
	if content != "one ${ARRLIST_VAR2_NONEXISTENT} three" {
		t.Errorf("expected 'one ${ARRLIST_VAR2_NONEXISTENT} three', got %q", content)
	}
	if len(unresolved) != 1 || unresolved[0] != "ARRLIST_VAR2_NONEXISTENT" {
		t.Errorf("expected [ARRLIST_VAR2_NONEXISTENT], got %v", unresolved)
	}
}

func TestSubstituteEnvVars_SkipsComments(t *testing.T) {
	in := "# token = \"${ARRLIST_COMMENTED_OUT}\"\n  # ${VAR:?never}\nkey = 1"
	content, unresolved, required := substituteEnvVars(in)
	if content != in {
		t.Errorf("expected comments untouched, got %q", content)
	}
	if len(unresolved) != 0 || len(required) != 0 {
		t.Errorf("comments must not report variables, got %v %v", unresolved, required)
	}
}
