// Package lifecycle models the activate/dispose contract that scopes a
// resource to a UI component's mount-to-unmount window.
//
// A component re-runs its effects whenever a watched input changes. The
// Effect type makes that explicit: Run compares the new dependency list to
// the previous one and, only when they differ, disposes the old resource
// completely before activating the new one.
package lifecycle

// Disposable is a resource that must be released on deactivation.
type Disposable interface {
	Dispose()
}

// Func adapts a plain function to a Disposable.
type Func func()

// Dispose calls f.
func (f Func) Dispose() {
	if f != nil {
		f()
	}
}

// Effect holds at most one live Disposable and the dependency list it was
// activated under. The zero value has never run.
type Effect struct {
	deps   []any
	active Disposable
	hasRun bool
}

// Run activates the resource if the effect has never run or if deps differ
// from the previous call. The old resource is fully disposed before
// activate is invoked, so there is no window where both are live.
// Dependencies are compared pairwise with ==; a length change always
// re-runs.
func (e *Effect) Run(deps []any, activate func() Disposable) {
	if e.hasRun && sameDeps(e.deps, deps) {
		return
	}
	if e.active != nil {
		e.active.Dispose()
		e.active = nil
	}
	e.deps = deps
	e.hasRun = true
	if activate != nil {
		e.active = activate()
	}
}

// Dispose releases the live resource, if any. Safe to call repeatedly;
// a later Run reactivates.
func (e *Effect) Dispose() {
	if e.active != nil {
		e.active.Dispose()
		e.active = nil
	}
	e.hasRun = false
	e.deps = nil
}

func sameDeps(a, b []any) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
