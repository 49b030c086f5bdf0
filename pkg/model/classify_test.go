package model_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formulay/pkg/model"
)

func TestClassify_SupportedKinds(t *testing.T) {
	cases := map[string]model.FieldKind{
		"string":           model.KindText,
		"String":           model.KindText,
		"bool":             model.KindBoolean,
		"boolean":          model.KindBoolean,
		"Option<String>":   model.KindOptionalText,
		"Optional<bool>":   model.KindOptionalBoolean,
		"*string":          model.KindOptionalText,
		"*bool":            model.KindOptionalBoolean,
		"string?":          model.KindOptionalText,
		"optional<string>": model.KindOptionalText,
	}

	for raw, want := range cases {
		t.Run(raw, func(t *testing.T) {
			expr, err := model.ParseTypeExpr(raw)
			if err != nil {
				t.Fatalf("parse %q: %v", raw, err)
			}
			got, err := model.Classify(expr)
			if err != nil {
				t.Fatalf("classify %q: %v", raw, err)
			}
			if got != want {
				t.Fatalf("classify %q: want %s, got %s", raw, want, got)
			}
		})
	}
}

func TestClassify_UnsupportedShapes(t *testing.T) {
	for _, raw := range []string{
		"int",
		"f64",
		"Vec<String>",
		"Option<int>",
		"Option<Option<String>>",
		"Option<String, bool>",
		"**string",
		"Address",
		"Map<string, bool>",
	} {
		t.Run(raw, func(t *testing.T) {
			expr, err := model.ParseTypeExpr(raw)
			if err != nil {
				t.Fatalf("parse %q: %v", raw, err)
			}
			kind, err := model.Classify(expr)
			if !errors.Is(err, model.ErrUnsupportedFieldType) {
				t.Fatalf("expected ErrUnsupportedFieldType for %q, got kind=%s err=%v", raw, kind, err)
			}
			if kind != model.KindInvalid {
				t.Fatalf("expected invalid kind, got %s", kind)
			}
		})
	}
}

func TestParseTypeExpr(t *testing.T) {
	got, err := model.ParseTypeExpr(" Map< string , Option<bool> > ")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := model.TypeExpr{Name: "Map", Args: []model.TypeExpr{
		{Name: "string"},
		{Name: "Option", Args: []model.TypeExpr{{Name: "bool"}}},
	}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("type expr mismatch (-want +got):\n%s", diff)
	}
	if got.String() != "Map<string, Option<bool>>" {
		t.Fatalf("unexpected string form %q", got.String())
	}
}

func TestParseTypeExpr_Malformed(t *testing.T) {
	for _, raw := range []string{"", "Option<string", "Option<>", "<string>", "Map<string,>", "a>b"} {
		if _, err := model.ParseTypeExpr(raw); err == nil {
			t.Fatalf("expected error for %q", raw)
		}
	}
}

func TestTypeExprOf(t *testing.T) {
	type email string
	cases := []struct {
		typ  reflect.Type
		want string
	}{
		{reflect.TypeOf(""), "string"},
		{reflect.TypeOf(email("")), "string"},
		{reflect.TypeOf(true), "bool"},
		{reflect.TypeOf((*string)(nil)), "*string"},
		{reflect.TypeOf((**bool)(nil)), "**bool"},
		{reflect.TypeOf(0), "int"},
		{reflect.TypeOf([]string{}), "[]string"},
	}
	for _, tc := range cases {
		if got := model.TypeExprOf(tc.typ).String(); got != tc.want {
			t.Fatalf("TypeExprOf(%s): want %q, got %q", tc.typ, tc.want, got)
		}
	}
}

func TestFieldKind_Predicates(t *testing.T) {
	type row struct {
		Required, Optional, TextLike bool
		Family                       string
	}
	got := map[model.FieldKind]row{}
	for _, kind := range []model.FieldKind{model.KindText, model.KindBoolean, model.KindOptionalText, model.KindOptionalBoolean} {
		got[kind] = row{kind.Required(), kind.Optional(), kind.TextLike(), kind.Family()}
	}
	want := map[model.FieldKind]row{
		model.KindText:            {true, false, true, "txt"},
		model.KindBoolean:         {true, false, false, "checkbox"},
		model.KindOptionalText:    {false, true, true, "txt"},
		model.KindOptionalBoolean: {false, true, false, "checkbox"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("kind predicates mismatch (-want +got):\n%s", diff)
	}
}
