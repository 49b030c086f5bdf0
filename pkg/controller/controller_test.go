package controller_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap/zaptest"

	"github.com/goliatone/go-formulay/pkg/controller"
	"github.com/goliatone/go-formulay/pkg/model"
	"github.com/goliatone/go-formulay/pkg/testsupport"
)

func termsSchema() model.Schema {
	return model.MustNewSchema("Data",
		model.FieldDescriptor{Name: "email", Kind: model.KindText},
		model.FieldDescriptor{Name: "agree_to_terms", Kind: model.KindBoolean},
	)
}

func optionalSchema() model.Schema {
	return model.MustNewSchema("Prefs",
		model.FieldDescriptor{Name: "name", Kind: model.KindOptionalText},
		model.FieldDescriptor{Name: "subscribe", Kind: model.KindOptionalBoolean},
	)
}

type recorder struct {
	records []model.Record
	err     error
}

func (r *recorder) consume(_ context.Context, record model.Record) error {
	if r.err != nil {
		return r.err
	}
	r.records = append(r.records, record)
	return nil
}

func newController(t *testing.T, schema model.Schema, options ...controller.Option) (*controller.Definition, *controller.Controller) {
	t.Helper()
	def, err := controller.Compile(schema)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	options = append([]controller.Option{controller.WithLogger(zaptest.NewLogger(t))}, options...)
	ctrl, err := def.New(options...)
	if err != nil {
		t.Fatalf("new controller: %v", err)
	}
	return def, ctrl
}

func dispatch(t *testing.T, ctrl *controller.Controller, action controller.Action) bool {
	t.Helper()
	changed, err := ctrl.Dispatch(context.Background(), action)
	if err != nil {
		t.Fatalf("dispatch %s: %v", action.Name(), err)
	}
	return changed
}

func TestDefinition_ActionNames(t *testing.T) {
	def := controller.MustCompile(termsSchema())
	want := []string{"UpdateEmail", "UpdateAgreeToTerms", "Submit", "ShowRequiredWarnings"}
	if diff := cmp.Diff(want, def.ActionNames()); diff != "" {
		t.Fatalf("action names mismatch (-want +got):\n%s", diff)
	}
	if got := def.MustUpdate("agree_to_terms", model.Bool(true)).Name(); got != "UpdateAgreeToTerms" {
		t.Fatalf("unexpected update action name %q", got)
	}
}

func TestController_ZeroInitialState(t *testing.T) {
	schema := model.MustNewSchema("All",
		model.FieldDescriptor{Name: "a", Kind: model.KindText},
		model.FieldDescriptor{Name: "b", Kind: model.KindBoolean},
		model.FieldDescriptor{Name: "c", Kind: model.KindOptionalText},
		model.FieldDescriptor{Name: "d", Kind: model.KindOptionalBoolean},
	)
	_, ctrl := newController(t, schema)

	state := ctrl.State()
	want := map[string]any{"a": "", "b": false, "c": nil, "d": nil}
	if diff := cmp.Diff(want, state.Values.Map()); diff != "" {
		t.Fatalf("zero values mismatch (-want +got):\n%s", diff)
	}
	if state.Submitted || state.DisplayRequiredWarnings || state.Phase() != controller.PhaseEditing {
		t.Fatalf("unexpected initial flags:\n%s", testsupport.DumpState(state))
	}
}

func TestController_SubmitFailsValidation(t *testing.T) {
	sink := &recorder{}
	_, ctrl := newController(t, termsSchema(), controller.WithSubmitConsumer(sink.consume))
	before := ctrl.State()

	if !dispatch(t, ctrl, controller.Submit{}) {
		t.Fatalf("expected submit to report a state change")
	}

	state := ctrl.State()
	if len(sink.records) != 0 {
		t.Fatalf("expected no emission, got %v", sink.records)
	}
	if !state.DisplayRequiredWarnings {
		t.Fatalf("expected warnings to be displayed")
	}
	if state.Submitted {
		t.Fatalf("expected submitted to stay false")
	}
	if !state.Values.Equal(before.Values) {
		t.Fatalf("expected values untouched, got %s", state.Values)
	}
	if diff := cmp.Diff([]string{"email", "agree_to_terms"}, ctrl.Definition().Missing(state.Values)); diff != "" {
		t.Fatalf("missing fields mismatch (-want +got):\n%s", diff)
	}
}

func TestController_SubmitPassesValidation(t *testing.T) {
	sink := &recorder{}
	def, ctrl := newController(t, termsSchema(), controller.WithSubmitConsumer(sink.consume))

	dispatch(t, ctrl, controller.Submit{})
	dispatch(t, ctrl, def.MustUpdate("email", model.Text("a@b.com")))
	dispatch(t, ctrl, def.MustUpdate("agree_to_terms", model.Bool(true)))
	if !ctrl.State().DisplayRequiredWarnings {
		t.Fatalf("editing a field must not reset warnings")
	}
	dispatch(t, ctrl, controller.Submit{})

	if len(sink.records) != 1 {
		t.Fatalf("expected one emission, got %d", len(sink.records))
	}
	want := map[string]any{"email": "a@b.com", "agree_to_terms": true}
	if diff := cmp.Diff(want, sink.records[0].Map()); diff != "" {
		t.Fatalf("emitted record mismatch (-want +got):\n%s", diff)
	}
	state := ctrl.State()
	if !state.Submitted || state.DisplayRequiredWarnings || state.Phase() != controller.PhaseSubmitted {
		t.Fatalf("unexpected flags after submit:\n%s", testsupport.DumpState(state))
	}
}

func TestController_AllOptionalSubmitsTrivially(t *testing.T) {
	sink := &recorder{}
	_, ctrl := newController(t, optionalSchema(), controller.WithSubmitConsumer(sink.consume))

	dispatch(t, ctrl, controller.Submit{})

	if len(sink.records) != 1 {
		t.Fatalf("expected one emission, got %d", len(sink.records))
	}
	want := map[string]any{"name": nil, "subscribe": nil}
	if diff := cmp.Diff(want, sink.records[0].Map()); diff != "" {
		t.Fatalf("emitted record mismatch (-want +got):\n%s", diff)
	}
}

func TestController_InitialRecordAdoptedVerbatim(t *testing.T) {
	schema := termsSchema()
	initial := model.MustNewRecord(schema, map[string]model.Value{
		"email":          model.Text("test@gmail.com"),
		"agree_to_terms": model.Bool(false),
	})
	_, ctrl := newController(t, schema, controller.WithInitialRecord(initial))

	if got := ctrl.State().Values; !got.Equal(initial) {
		t.Fatalf("expected initial record %s, got %s", initial, got)
	}

	other := model.ZeroRecord(optionalSchema())
	def := controller.MustCompile(schema)
	if _, err := def.New(controller.WithInitialRecord(other)); !errors.Is(err, controller.ErrSchemaMismatch) {
		t.Fatalf("expected schema mismatch, got %v", err)
	}
}

func TestController_EnforcementDisabled(t *testing.T) {
	sink := &recorder{}
	_, ctrl := newController(t, termsSchema(),
		controller.WithSubmitConsumer(sink.consume),
		controller.WithEnforceRequiredFields(false),
	)

	dispatch(t, ctrl, controller.Submit{})

	if len(sink.records) != 1 {
		t.Fatalf("expected emission without validation, got %d", len(sink.records))
	}
	if diff := cmp.Diff(map[string]any{"email": "", "agree_to_terms": false}, sink.records[0].Map()); diff != "" {
		t.Fatalf("emitted record mismatch (-want +got):\n%s", diff)
	}
	if !ctrl.State().Submitted {
		t.Fatalf("expected submitted state")
	}
}

func TestController_UpdateIsIdempotent(t *testing.T) {
	def, ctrl := newController(t, termsSchema())
	action := def.MustUpdate("email", model.Text("a@b.com"))

	if !dispatch(t, ctrl, action) {
		t.Fatalf("expected first update to change state")
	}
	once := ctrl.State()
	if dispatch(t, ctrl, action) {
		t.Fatalf("expected repeated update to be a no-op")
	}
	twice := ctrl.State()
	if !once.Values.Equal(twice.Values) || once.Submitted != twice.Submitted || once.DisplayRequiredWarnings != twice.DisplayRequiredWarnings {
		t.Fatalf("state diverged:\n%s\nvs\n%s", testsupport.DumpState(once), testsupport.DumpState(twice))
	}
}

func TestController_SubmittedIsSticky(t *testing.T) {
	def, ctrl := newController(t, termsSchema(), controller.WithEnforceRequiredFields(false))

	dispatch(t, ctrl, controller.Submit{})
	dispatch(t, ctrl, def.MustUpdate("email", model.Text("changed")))

	if !ctrl.State().Submitted {
		t.Fatalf("expected submitted to survive edits")
	}

	ctrl.Reset()
	state := ctrl.State()
	if state.Submitted || state.DisplayRequiredWarnings {
		t.Fatalf("expected reset to clear flags, got\n%s", testsupport.DumpState(state))
	}
	if !state.Values.Equal(def.Zero()) {
		t.Fatalf("expected reset to restore zero values, got %s", state.Values)
	}
}

func TestController_ConsumerErrorPropagates(t *testing.T) {
	boom := errors.New("boom")
	sink := &recorder{err: boom}
	_, ctrl := newController(t, optionalSchema(), controller.WithSubmitConsumer(sink.consume))

	changed, err := ctrl.Dispatch(context.Background(), controller.Submit{})
	if !errors.Is(err, boom) {
		t.Fatalf("expected consumer error, got %v", err)
	}
	if changed || ctrl.State().Submitted {
		t.Fatalf("expected state untouched after consumer failure, got\n%s", testsupport.DumpState(ctrl.State()))
	}
}

func TestController_ShowRequiredWarningsKeepsValues(t *testing.T) {
	def, ctrl := newController(t, termsSchema())
	dispatch(t, ctrl, def.MustUpdate("email", model.Text("x")))
	before := ctrl.State()

	dispatch(t, ctrl, controller.ShowRequiredWarnings{})

	after := ctrl.State()
	if !after.DisplayRequiredWarnings || after.Submitted || !after.Values.Equal(before.Values) {
		t.Fatalf("unexpected state after ShowRequiredWarnings:\n%s", testsupport.DumpState(after))
	}
}

func TestController_ChangeListener(t *testing.T) {
	var phases []string
	def, ctrl := newController(t, termsSchema(),
		controller.WithChangeListener(func(s controller.State) {
			phases = append(phases, s.Phase().String())
		}),
	)

	dispatch(t, ctrl, def.MustUpdate("email", model.Text("a@b.com")))
	dispatch(t, ctrl, def.MustUpdate("email", model.Text("a@b.com")))
	dispatch(t, ctrl, controller.Submit{})
	dispatch(t, ctrl, def.MustUpdate("agree_to_terms", model.Bool(true)))
	dispatch(t, ctrl, controller.Submit{})

	want := []string{"Editing", "Editing", "Editing", "Submitted"}
	if diff := cmp.Diff(want, phases); diff != "" {
		t.Fatalf("listener calls mismatch (-want +got):\n%s", diff)
	}
}

func TestController_RejectsIllegalActions(t *testing.T) {
	def, ctrl := newController(t, termsSchema())
	other := controller.MustCompile(termsSchema())

	if _, err := ctrl.Dispatch(context.Background(), other.MustUpdate("email", model.Text("x"))); !errors.Is(err, controller.ErrForeignAction) {
		t.Fatalf("expected foreign action error, got %v", err)
	}
	if _, err := ctrl.Dispatch(context.Background(), controller.UpdateField{}); !errors.Is(err, controller.ErrForeignAction) {
		t.Fatalf("expected zero update to be rejected, got %v", err)
	}
	if _, err := def.Update("email", model.Bool(true)); !errors.Is(err, controller.ErrKindMismatch) {
		t.Fatalf("expected kind mismatch, got %v", err)
	}
	if _, err := def.Update("phone", model.Text("1")); !errors.Is(err, controller.ErrUnknownField) {
		t.Fatalf("expected unknown field, got %v", err)
	}
}

func TestController_SessionsAreIndependent(t *testing.T) {
	def := controller.MustCompile(termsSchema())
	first, err := def.New()
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	second, err := def.New(controller.WithSessionID("fixed"))
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	if _, err := first.Dispatch(context.Background(), def.MustUpdate("email", model.Text("a@b.com"))); err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	if v, _ := second.State().Values.Get("email"); v.Text() != "" {
		t.Fatalf("expected second session untouched, got %q", v.Text())
	}
	if first.SessionID() == "" || first.SessionID() == second.SessionID() || second.SessionID() != "fixed" {
		t.Fatalf("unexpected session ids %q / %q", first.SessionID(), second.SessionID())
	}
}

func TestCompile_RejectsCollidingIdentifiers(t *testing.T) {
	cases := map[string][]string{
		"snake and camel": {"agree_to_terms", "agreeToTerms"},
		"kebab and acronym": {"http-proxy", "HTTPProxy"},
	}
	for name, fields := range cases {
		t.Run(name, func(t *testing.T) {
			schema := model.MustNewSchema("Data",
				model.FieldDescriptor{Name: fields[0], Kind: model.KindBoolean},
				model.FieldDescriptor{Name: fields[1], Kind: model.KindBoolean},
			)
			def, err := controller.Compile(schema)
			if !errors.Is(err, model.ErrUnsupportedRecordShape) {
				t.Fatalf("expected unsupported shape, got %v (definition %v)", err, def)
			}
			var compileErr *model.CompileError
			if !errors.As(err, &compileErr) || compileErr.Record != "Data" {
				t.Fatalf("expected compile error for record Data, got %v", err)
			}
		})
	}
}
