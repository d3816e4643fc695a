// Package form is the generic controlled-form state used by the wizard
// steps: current values, per-field errors, touched flags and a submit gate
// that only fires the callback when validation passes.
package form

type Validator func(values map[string]string) map[string]string

type Form struct {
	initial  map[string]string
	validate Validator

	Values     map[string]string
	Errors     map[string]string
	Touched    map[string]bool
	Submitting bool
}

func New(initial map[string]string, validate Validator) *Form {
	f := &Form{initial: map[string]string{}, validate: validate}
	for k, v := range initial {
		f.initial[k] = v
	}
	f.Reset()
	return f
}

// HandleChange updates one field by name.
func (f *Form) HandleChange(name, value string) {
	f.Values[name] = value
}

// HandleBlur marks the field touched and re-runs validation.
func (f *Form) HandleBlur(name string) {
	f.Touched[name] = true
	f.runValidate()
}

// Submit marks every field touched, re-validates, and invokes onSubmit only
// when the error map is empty. An invalid form aborts silently, leaving the
// errors populated for display.
func (f *Form) Submit(onSubmit func(values map[string]string) error) error {
	for k := range f.Values {
		f.Touched[k] = true
	}
	f.runValidate()
	if len(f.Errors) > 0 {
		return nil
	}
	f.Submitting = true
	defer func() { f.Submitting = false }()
	return onSubmit(f.Values)
}

// Reset restores the initial values and clears errors and touched flags.
func (f *Form) Reset() {
	f.Values = map[string]string{}
	for k, v := range f.initial {
		f.Values[k] = v
	}
	f.Errors = map[string]string{}
	f.Touched = map[string]bool{}
	f.Submitting = false
}

func (f *Form) Valid() bool {
	f.runValidate()
	return len(f.Errors) == 0
}

func (f *Form) runValidate() {
	if f.validate == nil {
		f.Errors = map[string]string{}
		return
	}
	errs := f.validate(f.Values)
	if errs == nil {
		errs = map[string]string{}
	}
	f.Errors = errs
}
