package main

import "testing"

func TestEnvironmentDeclareTwice(t *testing.T) {
	env := NewEnvironment()

	if err := env.Declare("x", TokenInteger, 0); err != nil {
		t.Fatal(err)
	}

	err := env.Declare("x", TokenDouble, 12)
	diagnostic, ok := err.(Diagnostic)
	if !ok || diagnostic.Category != CategoryType {
		t.Fatalf("expected a type diagnostic, got %v", err)
	}

	// the redeclaration must not alter the existing entry
	if err := env.Assign("x", IntegerValue(1), 0); err != nil {
		t.Fatal(err)
	}
	value, err := env.Read("x", 0)
	if err != nil {
		t.Fatal(err)
	}
	if value != IntegerValue(1) {
		t.Errorf("expected 1, got %v", value)
	}
}

func TestEnvironmentAssignUndeclared(t *testing.T) {
	env := NewEnvironment()

	err := env.Assign("y", IntegerValue(2), 5)
	diagnostic, ok := err.(Diagnostic)
	if !ok || diagnostic.Category != CategoryRuntime {
		t.Fatalf("expected a runtime diagnostic, got %v", err)
	}
	if diagnostic.Pos != 5 {
		t.Errorf("expected diagnostic at offset 5, got %d", diagnostic.Pos)
	}
}

func TestEnvironmentWidensIntegerToDouble(t *testing.T) {
	env := NewEnvironment()

	if err := env.Declare("y", TokenDouble, 0); err != nil {
		t.Fatal(err)
	}
	if err := env.Assign("y", IntegerValue(3), 0); err != nil {
		t.Fatal(err)
	}

	value, err := env.Read("y", 0)
	if err != nil {
		t.Fatal(err)
	}
	if value != DoubleValue(3) {
		t.Errorf("expected the stored value to be a double, got %#v", value)
	}
}

func TestEnvironmentRejectsNarrowing(t *testing.T) {
	env := NewEnvironment()

	if err := env.Declare("x", TokenInteger, 0); err != nil {
		t.Fatal(err)
	}

	err := env.Assign("x", DoubleValue(2.5), 0)
	diagnostic, ok := err.(Diagnostic)
	if !ok || diagnostic.Category != CategoryType {
		t.Fatalf("expected a type diagnostic, got %v", err)
	}

	// the failed assignment leaves the variable unset
	if _, err := env.Read("x", 0); err == nil {
		t.Error("expected reading an unset variable to fail")
	}
}

func TestEnvironmentReadUnset(t *testing.T) {
	env := NewEnvironment()

	if _, err := env.Read("x", 3); err == nil {
		t.Fatal("expected reading an undeclared variable to fail")
	}

	if err := env.Declare("x", TokenInteger, 0); err != nil {
		t.Fatal(err)
	}
	_, err := env.Read("x", 7)
	diagnostic, ok := err.(Diagnostic)
	if !ok || diagnostic.Category != CategoryRuntime {
		t.Fatalf("expected a runtime diagnostic, got %v", err)
	}
}
