// Package controller compiles a model.Schema into a form controller
// definition and runs controller instances for individual form sessions.
//
// A Definition is immutable and can be shared by any number of sessions. Each
// Controller owns its values, its submitted flag and its
// display-required-warnings overlay; it processes one Action at a time and is
// not safe for concurrent use.
//
//	def, _ := controller.Compile(schema)
//	ctrl, _ := def.New(controller.WithSubmitConsumer(send))
//	ctrl.Dispatch(ctx, def.MustUpdate("email", model.Text("a@b.com")))
//	ctrl.Dispatch(ctx, controller.Submit{})
package controller
