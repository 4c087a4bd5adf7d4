package connect

import (
	"fmt"
	"reflect"

	"state-binder/internal/diagnostic"
)

// mergeUnion is the default props merger: a reflective union of the
// exported fields of own, state and dispatch props into P, matched by field
// name. A prop supplied by two sources with different values is a collision
// and is reported instead of silently resolved; supply a PropsMerger to
// settle such overlaps deliberately.
func mergeUnion[SP, DP, OP, P any](sp SP, dp DP, op OP) (P, error) {
	var out P
	var diags diagnostic.Diagnostics

	target := reflect.ValueOf(&out).Elem()
	if target.Kind() != reflect.Struct {
		diags.AddError("bad-props-type", "", fmt.Sprintf(
			"default merge requires struct props, got %v; supply MergeProps", target.Type()))
		return out, diags.Error()
	}

	setBy := make(map[string]string) // prop name -> source that set it

	sources := []struct {
		name string
		val  reflect.Value
	}{
		{"own props", reflect.ValueOf(op)},
		{"state props", reflect.ValueOf(sp)},
		{"dispatch props", reflect.ValueOf(dp)},
	}

	for _, src := range sources {
		copyProps(target, src.val, src.name, setBy, &diags)
	}

	return out, diags.Error()
}

func copyProps(target, src reflect.Value, source string, setBy map[string]string, diags *diagnostic.Diagnostics) {
	if !src.IsValid() {
		return
	}

	st := src.Type()
	if st.Kind() != reflect.Struct {
		diags.AddError("bad-prop-source", "", fmt.Sprintf(
			"%s must be a struct for the default merge, got %v; supply MergeProps", source, st))
		return
	}

	for i := 0; i < st.NumField(); i++ {
		f := st.Field(i)
		if !f.IsExported() {
			continue
		}

		fv := src.Field(i)

		tf, ok := target.Type().FieldByName(f.Name)
		if !ok {
			diags.AddError("unmapped-prop", f.Name, fmt.Sprintf(
				"%s field has no matching field in %v", source, target.Type()))
			continue
		}

		if !f.Type.AssignableTo(tf.Type) {
			diags.AddError("prop-type-mismatch", f.Name, fmt.Sprintf(
				"%s field is %v, props field is %v", source, f.Type, tf.Type))
			continue
		}

		if prev, dup := setBy[f.Name]; dup {
			if !valuesEqual(fv, target.FieldByName(f.Name)) {
				diags.AddError("prop-collision", f.Name, fmt.Sprintf(
					"supplied by both %s and %s with different values", prev, source))
			}
			continue
		}

		target.FieldByName(f.Name).Set(fv)
		setBy[f.Name] = source
	}
}

// propsEqual compares two computed prop values. Struct fields of func kind
// are compared by code pointer, since reflect.DeepEqual treats any non-nil
// func as unequal and that would defeat pure-component render skipping for
// dispatch props.
func propsEqual[P any](a, b P) bool {
	return valuesEqual(reflect.ValueOf(a), reflect.ValueOf(b))
}

func valuesEqual(a, b reflect.Value) bool {
	if !a.IsValid() || !b.IsValid() {
		return a.IsValid() == b.IsValid()
	}

	if a.Type() != b.Type() {
		return false
	}

	switch a.Kind() {
	case reflect.Func:
		return a.Pointer() == b.Pointer()
	case reflect.Struct:
		for i := 0; i < a.NumField(); i++ {
			if !a.Type().Field(i).IsExported() {
				continue
			}
			if !valuesEqual(a.Field(i), b.Field(i)) {
				return false
			}
		}
		return true
	default:
		return reflect.DeepEqual(a.Interface(), b.Interface())
	}
}
