// Package dependencies is a checkit plugin that resolves named
// configuration values and passes them positionally into the validation
// block via Context.Deps.
//
//	schema.MustUse("dependencies",
//		dependencies.Registry{"user_repo": repo},
//		dependencies.Inject{"user_repo"},
//	)
//	schema.Validate(func(ctx *checkit.Context, i *checkit.Param) error {
//		repo := ctx.Dep(0).(*UserRepo)
//		...
//	})
//
// A registry value of type func() any is called at resolve time, so
// per-run values (clocks, connections) stay fresh. Registries accumulate
// across activations; the injection list is replaced. Derived schemas can
// re-activate with their own registry entries without touching the parent's.
package dependencies
