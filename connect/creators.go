package connect

import (
	"fmt"
	"reflect"

	"state-binder/internal/diagnostic"
	"state-binder/store"
)

var actionType = reflect.TypeOf((*store.Action)(nil)).Elem()

// bindCreators rebuilds a struct of action creators so that every exported
// creator field dispatches the action it produces. A bound creator keeps
// the original signature and still returns the action. Exported non-func
// fields are copied through unchanged; nil creators stay nil.
func bindCreators[DP any](creators DP, dispatch store.Dispatcher) (DP, error) {
	var out DP
	var diags diagnostic.Diagnostics

	src := reflect.ValueOf(creators)
	if src.Kind() != reflect.Struct {
		diags.AddError("bad-creator-struct", "", fmt.Sprintf(
			"creator value must be a struct, got %v", src.Type()))
		return out, diags.Error()
	}

	dst := reflect.ValueOf(&out).Elem()

	for i := 0; i < src.NumField(); i++ {
		f := src.Type().Field(i)
		if !f.IsExported() {
			continue
		}

		fv := src.Field(i)
		if f.Type.Kind() != reflect.Func {
			dst.Field(i).Set(fv)
			continue
		}

		if fv.IsNil() {
			continue
		}

		if f.Type.NumOut() != 1 || !f.Type.Out(0).Implements(actionType) {
			diags.AddError("bad-action-creator", f.Name, fmt.Sprintf(
				"creator must return a single store.Action, has signature %v", f.Type))
			continue
		}

		dst.Field(i).Set(bindCreator(f.Type, fv, dispatch))
	}

	return out, diags.Error()
}

func bindCreator(typ reflect.Type, creator reflect.Value, dispatch store.Dispatcher) reflect.Value {
	return reflect.MakeFunc(typ, func(args []reflect.Value) []reflect.Value {
		var results []reflect.Value
		if typ.IsVariadic() {
			results = creator.CallSlice(args)
		} else {
			results = creator.Call(args)
		}

		if a, ok := results[0].Interface().(store.Action); ok && a != nil {
			dispatch(a)
		}

		return results
	})
}
