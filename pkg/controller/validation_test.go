package controller_test

import (
	"testing"

	"github.com/goliatone/go-formulay/pkg/controller"
	"github.com/goliatone/go-formulay/pkg/model"
)

// Every combination of values for one field of each kind: the predicate must
// hold exactly when the Text field is non-empty and the Boolean field is true.
func TestRequiredSatisfied_Exhaustive(t *testing.T) {
	schema := model.MustNewSchema("All",
		model.FieldDescriptor{Name: "text", Kind: model.KindText},
		model.FieldDescriptor{Name: "flag", Kind: model.KindBoolean},
		model.FieldDescriptor{Name: "opt_text", Kind: model.KindOptionalText},
		model.FieldDescriptor{Name: "opt_flag", Kind: model.KindOptionalBoolean},
	)
	def := controller.MustCompile(schema)

	texts := []model.Value{model.Text(""), model.Text("x")}
	flags := []model.Value{model.Bool(false), model.Bool(true)}
	optTexts := []model.Value{model.None(model.KindOptionalText), model.SomeText(""), model.SomeText("y")}
	optFlags := []model.Value{model.None(model.KindOptionalBoolean), model.SomeBool(false), model.SomeBool(true)}

	for _, text := range texts {
		for _, flag := range flags {
			for _, optText := range optTexts {
				for _, optFlag := range optFlags {
					record := model.MustNewRecord(schema, map[string]model.Value{
						"text": text, "flag": flag, "opt_text": optText, "opt_flag": optFlag,
					})
					want := text.Text() != "" && flag.Bool()
					if got := def.RequiredSatisfied(record); got != want {
						t.Fatalf("RequiredSatisfied(%s) = %v, want %v", record, got, want)
					}
				}
			}
		}
	}
}
